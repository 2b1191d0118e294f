// Package testutil provides helpers for tests that need a ledger backed by a
// real SQLite file.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Veraticus/tally/internal/ledger"
	"github.com/Veraticus/tally/internal/model"
	"github.com/Veraticus/tally/internal/storage"
)

// Seed describes a transaction added before the test starts. Expenses take
// their type from View; the income view records income.
type Seed struct {
	View  model.View
	Input ledger.Input
}

// Expense returns a seed for an expense in v.
func Expense(v model.View, amount, category, date string) Seed {
	return Seed{View: v, Input: ledger.Input{Amount: amount, Category: category, Date: date}}
}

// Income returns a seed for an income record.
func Income(amount, category, date string) Seed {
	return Seed{View: model.ViewIncome, Input: ledger.Input{Amount: amount, Category: category, Date: date}}
}

// TestLedger is a repository over a migrated SQLite store in t.TempDir().
type TestLedger struct {
	Repo  *ledger.Repository
	Store *storage.SQLiteStore
	t     *testing.T
}

// SetupLedger creates the store, opens a repository on it and adds seeds in
// order. The store is closed when the test ends.
func SetupLedger(t *testing.T, seeds ...Seed) *TestLedger {
	t.Helper()
	ctx := context.Background()

	store, err := storage.NewSQLiteStore(filepath.Join(t.TempDir(), "tally.db"))
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})

	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	repo, err := ledger.Open(ctx, store)
	if err != nil {
		t.Fatalf("failed to open ledger: %v", err)
	}

	l := &TestLedger{Repo: repo, Store: store, t: t}
	for _, seed := range seeds {
		l.MustAdd(seed)
	}
	return l
}

// MustAdd adds seed or fails the test.
func (l *TestLedger) MustAdd(seed Seed) model.Transaction {
	l.t.Helper()
	txn, err := l.Repo.AddTransaction(context.Background(), seed.Input, seed.View)
	if err != nil {
		l.t.Fatalf("failed to seed %s transaction %+v: %v", seed.View, seed.Input, err)
	}
	return txn
}

// Reopen loads a fresh repository from the same store, showing exactly what
// was persisted.
func (l *TestLedger) Reopen() *ledger.Repository {
	l.t.Helper()
	repo, err := ledger.Open(context.Background(), l.Store)
	if err != nil {
		l.t.Fatalf("failed to reopen ledger: %v", err)
	}
	return repo
}
