package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/tally/internal/model"
	"github.com/Veraticus/tally/internal/tui/themes"
)

func listFixture() []model.Transaction {
	return model.ExpensesAsTransactions([]model.Expense{
		{ID: "a", Type: model.ExpensePersonal, Amount: decimal.NewFromInt(12), Category: "food", Date: model.MustParseDate("2024-03-09"), Description: "ramen"},
		{ID: "b", Type: model.ExpensePersonal, Amount: decimal.NewFromInt(40), Category: "gone", Date: model.MustParseDate("2024-03-01"), Reimbursed: true},
	})
}

func TestTransactionList_Empty(t *testing.T) {
	m := NewTransactionList(themes.Default)
	_, ok := m.Selected()
	assert.False(t, ok)
	assert.Contains(t, m.View(), "No transactions yet")
}

func TestTransactionList_SelectionAndRender(t *testing.T) {
	m := NewTransactionList(themes.Default)
	m.Resize(100, 10)
	m.SetTransactions(model.ViewPersonal, listFixture())

	require.Equal(t, 2, m.Len())
	sel, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "a", sel.TransactionID())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	sel, _ = m.Selected()
	assert.Equal(t, "b", sel.TransactionID())

	out := m.View()
	assert.Contains(t, out, "Food")
	assert.Contains(t, out, "gone")
	assert.Contains(t, out, "40.00")
}

func TestTransactionList_CursorClampedAfterShrink(t *testing.T) {
	m := NewTransactionList(themes.Default)
	m.SetTransactions(model.ViewPersonal, listFixture())
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})

	m.SetTransactions(model.ViewPersonal, listFixture()[:1])
	sel, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "a", sel.TransactionID())
}

func TestTransactionList_ViewChangeResetsCursor(t *testing.T) {
	m := NewTransactionList(themes.Default)
	m.SetTransactions(model.ViewPersonal, listFixture())
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})

	income := model.IncomeAsTransactions([]model.Income{
		{ID: "i", Amount: decimal.NewFromInt(1), Category: "salary", Date: model.MustParseDate("2024-03-01")},
		{ID: "j", Amount: decimal.NewFromInt(1), Category: "salary", Date: model.MustParseDate("2024-02-01")},
	})
	m.SetTransactions(model.ViewIncome, income)
	sel, _ := m.Selected()
	assert.Equal(t, "i", sel.TransactionID())
	assert.NotContains(t, m.View(), "✓")
}
