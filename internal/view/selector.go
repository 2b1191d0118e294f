// Package view tracks the active view and derives what is visible in it.
package view

import (
	"sync"

	"github.com/Veraticus/tally/internal/categories"
	"github.com/Veraticus/tally/internal/model"
)

// Selector holds the active view. The zero value is not usable; call NewSelector.
type Selector struct {
	active model.View
	mu     sync.RWMutex
}

// NewSelector returns a selector on the personal view.
func NewSelector() *Selector {
	return &Selector{active: model.ViewPersonal}
}

// SetActive switches to v.
func (s *Selector) SetActive(v model.View) {
	s.mu.Lock()
	s.active = v
	s.mu.Unlock()
}

// Active returns the current view.
func (s *Selector) Active() model.View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// FilteredExpenses returns the expenses booked under v, preserving order.
// The income view has no expenses.
func FilteredExpenses(expenses []model.Expense, v model.View) []model.Expense {
	if v == model.ViewIncome {
		return []model.Expense{}
	}

	want := model.ExpenseTypeForView(v)
	out := make([]model.Expense, 0, len(expenses))
	for _, e := range expenses {
		if e.Type == want {
			out = append(out, e)
		}
	}
	return out
}

// CurrentTransactions returns income for the income view and the filtered
// expenses otherwise.
func CurrentTransactions(income []model.Income, filtered []model.Expense, v model.View) []model.Transaction {
	if v == model.ViewIncome {
		return model.IncomeAsTransactions(income)
	}
	return model.ExpensesAsTransactions(filtered)
}

// CategoriesForView returns the category partition for v.
func CategoriesForView(v model.View) []model.Category {
	return categories.ForView(v)
}

// Source provides the ledger collections.
type Source interface {
	Expenses() []model.Expense
	Income() []model.Income
}

// State is everything a presentation needs to render one view.
type State struct {
	View         model.View
	Transactions []model.Transaction
	Categories   []model.Category
}

// Snapshot derives the state of v from src.
func Snapshot(src Source, v model.View) State {
	filtered := FilteredExpenses(src.Expenses(), v)
	var income []model.Income
	if v == model.ViewIncome {
		income = src.Income()
	}

	return State{
		View:         v,
		Transactions: CurrentTransactions(income, filtered, v),
		Categories:   CategoriesForView(v),
	}
}
