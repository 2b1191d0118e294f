package model

import (
	"github.com/shopspring/decimal"
)

// TransactionKind discriminates the two transaction variants.
type TransactionKind string

const (
	// KindExpense marks an Expense.
	KindExpense TransactionKind = "expense"
	// KindIncome marks an Income.
	KindIncome TransactionKind = "income"
)

// ExpenseType records which ledger an expense was booked into.
type ExpenseType string

const (
	// ExpensePersonal is a private expense.
	ExpensePersonal ExpenseType = "PERSONAL"
	// ExpenseCompany is a purchase made for a company site.
	ExpenseCompany ExpenseType = "COMPANY"
)

// Transaction is either an Expense or an Income. The interface is sealed;
// switch on Kind() or use a type switch to reach the concrete record.
type Transaction interface {
	Kind() TransactionKind
	TransactionID() string
	TransactionAmount() decimal.Decimal
	TransactionCategory() string
	TransactionDate() Date
	TransactionDescription() string

	isTransaction()
}

// Expense is money spent, either personally or on behalf of the company.
type Expense struct {
	Date        Date            `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	ID          string          `json:"id"`
	Type        ExpenseType     `json:"type"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Reimbursed  bool            `json:"reimbursed"`
}

// Income is money received.
type Income struct {
	Date        Date            `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	ID          string          `json:"id"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
}

// Kind implements Transaction.
func (Expense) Kind() TransactionKind { return KindExpense }

// TransactionID implements Transaction.
func (e Expense) TransactionID() string { return e.ID }

// TransactionAmount implements Transaction.
func (e Expense) TransactionAmount() decimal.Decimal { return e.Amount }

// TransactionCategory implements Transaction.
func (e Expense) TransactionCategory() string { return e.Category }

// TransactionDate implements Transaction.
func (e Expense) TransactionDate() Date { return e.Date }

// TransactionDescription implements Transaction.
func (e Expense) TransactionDescription() string { return e.Description }

func (Expense) isTransaction() {}

// Kind implements Transaction.
func (Income) Kind() TransactionKind { return KindIncome }

// TransactionID implements Transaction.
func (i Income) TransactionID() string { return i.ID }

// TransactionAmount implements Transaction.
func (i Income) TransactionAmount() decimal.Decimal { return i.Amount }

// TransactionCategory implements Transaction.
func (i Income) TransactionCategory() string { return i.Category }

// TransactionDate implements Transaction.
func (i Income) TransactionDate() Date { return i.Date }

// TransactionDescription implements Transaction.
func (i Income) TransactionDescription() string { return i.Description }

func (Income) isTransaction() {}

// ExpenseTypeForView returns the expense type booked while the given view is active.
func ExpenseTypeForView(v View) ExpenseType {
	if v == ViewCompany {
		return ExpenseCompany
	}
	return ExpensePersonal
}

// ExpensesAsTransactions widens a slice of expenses.
func ExpensesAsTransactions(expenses []Expense) []Transaction {
	out := make([]Transaction, len(expenses))
	for i, e := range expenses {
		out[i] = e
	}
	return out
}

// IncomeAsTransactions widens a slice of income records.
func IncomeAsTransactions(income []Income) []Transaction {
	out := make([]Transaction, len(income))
	for i, inc := range income {
		out[i] = inc
	}
	return out
}
