// Package ledger owns the expense and income collections and every change
// made to them.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/Veraticus/tally/internal/model"
	"github.com/Veraticus/tally/internal/storage"
)

// Repository holds both transaction collections, each sorted by date with the
// most recent first. Every mutation is written to the store before it becomes
// visible; a failed write leaves the collections as they were.
type Repository struct {
	store    storage.Store
	newID    func() string
	expenses []model.Expense
	income   []model.Income
	mu       sync.Mutex
}

// Option configures a Repository.
type Option func(*Repository)

// WithIDGenerator replaces the UUID generator used for new records.
func WithIDGenerator(fn func() string) Option {
	return func(r *Repository) {
		r.newID = fn
	}
}

// Open loads both collections from store. Missing or corrupt collections
// start out empty.
func Open(ctx context.Context, store storage.Store, opts ...Option) (*Repository, error) {
	if store == nil {
		return nil, fmt.Errorf("store cannot be nil")
	}

	expenses, err := storage.LoadOr(ctx, store, storage.KeyExpenses, []model.Expense{})
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}
	income, err := storage.LoadOr(ctx, store, storage.KeyIncome, []model.Income{})
	if err != nil {
		return nil, fmt.Errorf("failed to load income: %w", err)
	}

	r := &Repository{
		store:    store,
		newID:    uuid.NewString,
		expenses: expenses,
		income:   income,
	}
	for _, opt := range opts {
		opt(r)
	}

	sortByDateDesc(r.expenses)
	sortByDateDesc(r.income)

	slog.Debug("Opened ledger",
		"expenses", len(r.expenses),
		"income", len(r.income))
	return r, nil
}

// AddExpense validates in and records it as an expense. The expense type is
// COMPANY when activeView is the company view and PERSONAL otherwise.
func (r *Repository) AddExpense(ctx context.Context, in Input, activeView model.View) (model.Expense, error) {
	parsed, err := in.parse()
	if err != nil {
		return model.Expense{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	expense := model.Expense{
		ID:          r.newID(),
		Type:        model.ExpenseTypeForView(activeView),
		Amount:      parsed.amount,
		Category:    parsed.category,
		Date:        parsed.date,
		Description: parsed.description,
	}

	next := make([]model.Expense, 0, len(r.expenses)+1)
	next = append(next, r.expenses...)
	next = append(next, expense)
	sortByDateDesc(next)

	if err := r.store.Save(ctx, storage.KeyExpenses, next); err != nil {
		return model.Expense{}, fmt.Errorf("failed to save expenses: %w", err)
	}
	r.expenses = next

	slog.Info("Added expense",
		"id", expense.ID,
		"type", expense.Type,
		"amount", expense.Amount.String(),
		"category", expense.Category,
		"date", expense.Date.String())
	return expense, nil
}

// AddIncome validates in and records it as income.
func (r *Repository) AddIncome(ctx context.Context, in Input) (model.Income, error) {
	parsed, err := in.parse()
	if err != nil {
		return model.Income{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	inc := model.Income{
		ID:          r.newID(),
		Amount:      parsed.amount,
		Category:    parsed.category,
		Date:        parsed.date,
		Description: parsed.description,
	}

	next := make([]model.Income, 0, len(r.income)+1)
	next = append(next, r.income...)
	next = append(next, inc)
	sortByDateDesc(next)

	if err := r.store.Save(ctx, storage.KeyIncome, next); err != nil {
		return model.Income{}, fmt.Errorf("failed to save income: %w", err)
	}
	r.income = next

	slog.Info("Added income",
		"id", inc.ID,
		"amount", inc.Amount.String(),
		"category", inc.Category,
		"date", inc.Date.String())
	return inc, nil
}

// AddTransaction adds income when activeView is the income view and an
// expense otherwise.
func (r *Repository) AddTransaction(ctx context.Context, in Input, activeView model.View) (model.Transaction, error) {
	if activeView == model.ViewIncome {
		inc, err := r.AddIncome(ctx, in)
		if err != nil {
			return nil, err
		}
		return inc, nil
	}

	expense, err := r.AddExpense(ctx, in, activeView)
	if err != nil {
		return nil, err
	}
	return expense, nil
}

// DeleteExpense removes the expense with the given id. Unknown ids are ignored.
func (r *Repository) DeleteExpense(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := indexOf(r.expenses, id)
	if idx < 0 {
		slog.Debug("Expense not found for delete", "id", id)
		return nil
	}

	next := make([]model.Expense, 0, len(r.expenses)-1)
	next = append(next, r.expenses[:idx]...)
	next = append(next, r.expenses[idx+1:]...)

	if err := r.store.Save(ctx, storage.KeyExpenses, next); err != nil {
		return fmt.Errorf("failed to save expenses: %w", err)
	}
	r.expenses = next

	slog.Info("Deleted expense", "id", id)
	return nil
}

// DeleteIncome removes the income record with the given id. Unknown ids are ignored.
func (r *Repository) DeleteIncome(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := indexOf(r.income, id)
	if idx < 0 {
		slog.Debug("Income not found for delete", "id", id)
		return nil
	}

	next := make([]model.Income, 0, len(r.income)-1)
	next = append(next, r.income[:idx]...)
	next = append(next, r.income[idx+1:]...)

	if err := r.store.Save(ctx, storage.KeyIncome, next); err != nil {
		return fmt.Errorf("failed to save income: %w", err)
	}
	r.income = next

	slog.Info("Deleted income", "id", id)
	return nil
}

// ToggleReimbursed flips the reimbursed flag of an expense. Unknown ids,
// including ids of income records, are ignored.
func (r *Repository) ToggleReimbursed(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := indexOf(r.expenses, id)
	if idx < 0 {
		slog.Debug("Expense not found for reimbursement toggle", "id", id)
		return nil
	}

	next := make([]model.Expense, len(r.expenses))
	copy(next, r.expenses)
	next[idx].Reimbursed = !next[idx].Reimbursed

	if err := r.store.Save(ctx, storage.KeyExpenses, next); err != nil {
		return fmt.Errorf("failed to save expenses: %w", err)
	}
	r.expenses = next

	slog.Info("Toggled reimbursement", "id", id, "reimbursed", next[idx].Reimbursed)
	return nil
}

// Expenses returns a copy of all expenses, most recent first.
func (r *Repository) Expenses() []model.Expense {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.Expense, len(r.expenses))
	copy(out, r.expenses)
	return out
}

// Income returns a copy of all income records, most recent first.
func (r *Repository) Income() []model.Income {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.Income, len(r.income))
	copy(out, r.income)
	return out
}

// Expense looks up an expense by id.
func (r *Repository) Expense(id string) (model.Expense, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if idx := indexOf(r.expenses, id); idx >= 0 {
		return r.expenses[idx], true
	}
	return model.Expense{}, false
}

// IncomeByID looks up an income record by id.
func (r *Repository) IncomeByID(id string) (model.Income, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if idx := indexOf(r.income, id); idx >= 0 {
		return r.income[idx], true
	}
	return model.Income{}, false
}

func indexOf[T model.Transaction](records []T, id string) int {
	for i, rec := range records {
		if rec.TransactionID() == id {
			return i
		}
	}
	return -1
}

// sortByDateDesc orders records newest first. Records sharing a date keep
// their relative order.
func sortByDateDesc[T model.Transaction](records []T) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].TransactionDate().After(records[j].TransactionDate())
	})
}
