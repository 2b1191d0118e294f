package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/tally/internal/ledger"
	"github.com/Veraticus/tally/internal/model"
	"github.com/Veraticus/tally/internal/storage"
	"github.com/Veraticus/tally/internal/testutil"
	"github.com/Veraticus/tally/internal/tui/components"
)

var fixedNow = time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T) (Model, *ledger.Repository) {
	t.Helper()
	ctx := context.Background()
	repo, err := ledger.Open(ctx, storage.NewMemoryStore())
	require.NoError(t, err)

	m := New(ctx, repo,
		WithClock(func() time.Time { return fixedNow }),
		WithSize(100, 40),
		WithAltScreen(false),
	)
	return m, repo
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// send delivers msg and then feeds every resulting message back into the
// model, the way the bubbletea runtime would.
func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	queue := []tea.Msg{msg}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]

		updated, cmd := m.Update(next)
		var ok bool
		m, ok = updated.(Model)
		require.True(t, ok)

		queue = append(queue, drain(cmd)...)
	}
	return m
}

func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, drain(c)...)
		}
		return out
	case ledgerChangedMsg, addFailedMsg, errorMsg, components.FormSubmittedMsg, components.FormCancelledMsg:
		return []tea.Msg{msg}
	default:
		// Cursor blinks and quit requests are not fed back.
		return nil
	}
}

// typeInto replaces the focused field's text.
func typeInto(t *testing.T, m Model, field int, value string) Model {
	t.Helper()
	require.Equal(t, StateAdding, m.state)
	m.form.SetValue(field, value)
	return m
}

func TestNew_StartsOnPersonal(t *testing.T) {
	m, _ := newTestModel(t)
	assert.Equal(t, model.ViewPersonal, m.ActiveView())
	assert.Equal(t, StateList, m.state)
	assert.Empty(t, m.CurrentState().Transactions)
	assert.Equal(t, "food", m.CurrentState().Categories[0].ID)
}

func TestSwitchViews(t *testing.T) {
	m, _ := newTestModel(t)

	m = send(t, m, keyRunes("2"))
	assert.Equal(t, model.ViewCompany, m.ActiveView())
	assert.Equal(t, "site-3", m.CurrentState().Categories[0].ID)

	m = send(t, m, keyRunes("3"))
	assert.Equal(t, model.ViewIncome, m.ActiveView())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, model.ViewPersonal, m.ActiveView(), "tab wraps around")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, model.ViewCompany, m.ActiveView())
}

func TestAddThroughForm(t *testing.T) {
	m, repo := newTestModel(t)
	m = send(t, m, keyRunes("2"))
	m = send(t, m, keyRunes("a"))
	require.Equal(t, StateAdding, m.state)
	assert.Equal(t, "2024-03-15", m.form.Value(components.FieldDate), "date defaults to today")
	assert.Equal(t, "site-3", m.form.Value(components.FieldCategory))

	m = typeInto(t, m, components.FieldAmount, "250")
	m = typeInto(t, m, components.FieldDescription, "gravel")
	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.Equal(t, StateList, m.state)
	expenses := repo.Expenses()
	require.Len(t, expenses, 1)
	assert.Equal(t, model.ExpenseCompany, expenses[0].Type)
	assert.Equal(t, "gravel", expenses[0].Description)
	assert.Len(t, m.CurrentState().Transactions, 1)

	summary := m.statsPanel.Summary()
	assert.Equal(t, "250", summary.GrandTotal.String())
	assert.Contains(t, m.View(), "Added expense")
}

func TestAddValidationErrorShownInline(t *testing.T) {
	m, repo := newTestModel(t)
	m = send(t, m, keyRunes("a"))
	m = typeInto(t, m, components.FieldAmount, "-3")
	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.Equal(t, StateAdding, m.state, "form stays open")
	require.Error(t, m.form.Err())
	assert.Equal(t, components.FieldAmount, m.form.Focused())
	assert.Contains(t, m.View(), "invalid amount")
	assert.Empty(t, repo.Expenses())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, StateList, m.state)
}

func TestAddIncomeFromIncomeView(t *testing.T) {
	m, repo := newTestModel(t)
	m = send(t, m, keyRunes("3"))
	m = send(t, m, keyRunes("a"))
	m = typeInto(t, m, components.FieldAmount, "4000")
	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	require.Len(t, repo.Income(), 1)
	assert.Equal(t, "salary", repo.Income()[0].Category)
	assert.Empty(t, repo.Expenses())
}

func TestDeleteAndReimburse(t *testing.T) {
	m, repo := newTestModel(t)
	ctx := context.Background()

	_, err := repo.AddExpense(ctx, ledger.Input{Amount: "10", Category: "site-5", Date: "2024-03-10"}, model.ViewCompany)
	require.NoError(t, err)
	_, err = repo.AddExpense(ctx, ledger.Input{Amount: "20", Category: "site-7", Date: "2024-03-01"}, model.ViewCompany)
	require.NoError(t, err)

	m = send(t, m, keyRunes("2"))
	require.Len(t, m.CurrentState().Transactions, 2)

	m = send(t, m, keyRunes("r"))
	first := repo.Expenses()[0]
	assert.True(t, first.Reimbursed)
	assert.Equal(t, "20", m.statsPanel.Summary().Outstanding.String())

	m = send(t, m, keyRunes("r"))
	assert.False(t, repo.Expenses()[0].Reimbursed)

	m = send(t, m, keyRunes("d"))
	remaining := repo.Expenses()
	require.Len(t, remaining, 1)
	assert.Equal(t, "2024-03-01", remaining[0].Date.String())
	assert.Len(t, m.CurrentState().Transactions, 1)
}

func TestReimburseIgnoredForIncome(t *testing.T) {
	m, repo := newTestModel(t)
	_, err := repo.AddIncome(context.Background(), ledger.Input{Amount: "10", Category: "salary", Date: "2024-03-10"})
	require.NoError(t, err)

	m = send(t, m, keyRunes("3"))
	updated, cmd := m.Update(keyRunes("r"))
	assert.Nil(t, cmd)
	assert.Equal(t, StateList, updated.(Model).state)
}

func TestHelpAndQuit(t *testing.T) {
	m, _ := newTestModel(t)

	m = send(t, m, keyRunes("?"))
	assert.Equal(t, StateHelp, m.state)
	assert.Contains(t, m.View(), "toggle reimbursed")

	m = send(t, m, keyRunes("x"))
	assert.Equal(t, StateList, m.state)

	updated, cmd := m.Update(keyRunes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, updated.(Model).View())
}

func TestTypingQInFormDoesNotQuit(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, keyRunes("a"))
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = send(t, m, keyRunes("q"))
	assert.Equal(t, StateAdding, m.state)
}

func TestNextView(t *testing.T) {
	assert.Equal(t, model.ViewCompany, nextView(model.ViewPersonal))
	assert.Equal(t, model.ViewIncome, nextView(model.ViewCompany))
	assert.Equal(t, model.ViewPersonal, nextView(model.ViewIncome))
}

func TestChangesPersistToStore(t *testing.T) {
	l := testutil.SetupLedger(t,
		testutil.Expense(model.ViewCompany, "300", "site-11", "2024-03-12"),
		testutil.Expense(model.ViewCompany, "40", "site-12", "2024-02-28"),
	)
	m := New(context.Background(), l.Repo,
		WithClock(func() time.Time { return fixedNow }),
		WithInitialView(model.ViewCompany),
	)
	require.Len(t, m.CurrentState().Transactions, 2)
	assert.Equal(t, "300", m.statsPanel.Summary().GrandTotal.String(), "only March counts")

	m = send(t, m, keyRunes("r"))
	m = send(t, m, keyRunes("j"))
	m = send(t, m, keyRunes("d"))
	require.Len(t, m.CurrentState().Transactions, 1)

	persisted := l.Reopen().Expenses()
	require.Len(t, persisted, 1)
	assert.Equal(t, "site-11", persisted[0].Category)
	assert.True(t, persisted[0].Reimbursed)
}
