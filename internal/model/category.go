package model

import (
	"fmt"
	"strings"
)

// View selects which slice of the ledger is visible and which categories apply.
type View string

const (
	// ViewPersonal shows personal expenses.
	ViewPersonal View = "personal"
	// ViewCompany shows company-site purchases.
	ViewCompany View = "company"
	// ViewIncome shows income.
	ViewIncome View = "income"
)

// Views lists every view in display order.
var Views = []View{ViewPersonal, ViewCompany, ViewIncome}

// ParseView accepts a view name in any case.
func ParseView(s string) (View, error) {
	v := View(strings.ToLower(strings.TrimSpace(s)))
	switch v {
	case ViewPersonal, ViewCompany, ViewIncome:
		return v, nil
	default:
		return "", fmt.Errorf("unknown view %q: must be one of personal, company, income", s)
	}
}

// IsExpenseView reports whether the view lists expenses.
func (v View) IsExpenseView() bool {
	return v != ViewIncome
}

// String implements fmt.Stringer.
func (v View) String() string {
	return string(v)
}

// Category represents a label a transaction can be filed under.
type Category struct {
	ID    string
	Name  string
	Icon  string
	Color string
}
