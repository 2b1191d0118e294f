package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/tally/internal/common"
	"github.com/Veraticus/tally/internal/ledger"
	"github.com/Veraticus/tally/internal/model"
	"github.com/Veraticus/tally/internal/view"
)

// Ledger is the repository surface the UI drives.
type Ledger interface {
	view.Source
	AddTransaction(ctx context.Context, in ledger.Input, activeView model.View) (model.Transaction, error)
	DeleteExpense(ctx context.Context, id string) error
	DeleteIncome(ctx context.Context, id string) error
	ToggleReimbursed(ctx context.Context, id string) error
}

// addTransaction records in under v.
func (m Model) addTransaction(in ledger.Input, v model.View) tea.Cmd {
	ctx, repo := m.ctx, m.repo
	return func() tea.Msg {
		txn, err := repo.AddTransaction(ctx, in, v)
		if err != nil {
			if !errors.Is(err, common.ErrValidation) {
				slog.Error("Failed to add transaction", "view", v, "error", err)
			}
			return addFailedMsg{err: err}
		}
		return ledgerChangedMsg{
			status: fmt.Sprintf("Added %s %s", txn.Kind(), txn.TransactionAmount().StringFixed(2)),
		}
	}
}

// deleteTransaction removes txn from its collection.
func (m Model) deleteTransaction(txn model.Transaction) tea.Cmd {
	ctx, repo := m.ctx, m.repo
	return func() tea.Msg {
		var err error
		switch txn.Kind() {
		case model.KindIncome:
			err = repo.DeleteIncome(ctx, txn.TransactionID())
		default:
			err = repo.DeleteExpense(ctx, txn.TransactionID())
		}
		if err != nil {
			return errorMsg{err: err, context: "delete"}
		}
		return ledgerChangedMsg{status: "Deleted " + txn.TransactionDate().String() + " " + txn.TransactionAmount().StringFixed(2)}
	}
}

// toggleReimbursed flips the reimbursed flag of an expense.
func (m Model) toggleReimbursed(e model.Expense) tea.Cmd {
	ctx, repo := m.ctx, m.repo
	return func() tea.Msg {
		if err := repo.ToggleReimbursed(ctx, e.ID); err != nil {
			return errorMsg{err: err, context: "reimburse"}
		}
		status := "Marked reimbursed"
		if e.Reimbursed {
			status = "Marked not reimbursed"
		}
		return ledgerChangedMsg{status: status}
	}
}
