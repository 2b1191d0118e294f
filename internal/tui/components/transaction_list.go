// Package components contains the building blocks of the terminal UI.
package components

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/tally/internal/categories"
	"github.com/Veraticus/tally/internal/cli"
	"github.com/Veraticus/tally/internal/model"
	"github.com/Veraticus/tally/internal/tui/themes"
)

// TransactionListModel shows the transactions of the active view.
type TransactionListModel struct {
	theme        themes.Theme
	view         model.View
	transactions []model.Transaction
	table        table.Model
	width        int
	height       int
}

// NewTransactionList creates an empty list.
func NewTransactionList(theme themes.Theme) TransactionListModel {
	t := table.New(
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Bold(false)
	s.Selected = theme.Selected
	t.SetStyles(s)

	m := TransactionListModel{
		theme:  theme,
		view:   model.ViewPersonal,
		table:  t,
		width:  80,
		height: 12,
	}
	m.updateColumns()
	return m
}

// SetTransactions replaces the rows, keeping the cursor in range.
func (m *TransactionListModel) SetTransactions(v model.View, txns []model.Transaction) {
	viewChanged := v != m.view
	m.view = v
	m.transactions = txns
	m.updateColumns()

	switch {
	case viewChanged || len(txns) == 0:
		m.table.SetCursor(0)
	case m.table.Cursor() >= len(txns):
		m.table.SetCursor(len(txns) - 1)
	}
}

// Selected returns the transaction under the cursor.
func (m TransactionListModel) Selected() (model.Transaction, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.transactions) {
		return nil, false
	}
	return m.transactions[idx], true
}

// Len returns the number of rows.
func (m TransactionListModel) Len() int {
	return len(m.transactions)
}

// Resize sets the space available to the list.
func (m *TransactionListModel) Resize(width, height int) {
	m.width = width
	m.height = height
	m.table.SetHeight(max(height-2, 3))
	m.updateColumns()
}

// Update forwards navigation keys to the table.
func (m TransactionListModel) Update(msg tea.Msg) (TransactionListModel, tea.Cmd) {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the list.
func (m TransactionListModel) View() string {
	if len(m.transactions) == 0 {
		return m.theme.StatusPending.Render("No transactions yet. Press a to add one.")
	}
	return m.table.View()
}

func (m *TransactionListModel) updateColumns() {
	amountWidth := 12
	dateWidth := 10
	categoryWidth := 16
	flagWidth := 0
	if m.view.IsExpenseView() {
		flagWidth = 3
	}

	descWidth := m.width - amountWidth - dateWidth - categoryWidth - flagWidth - 10
	if descWidth < 10 {
		descWidth = 10
	}

	columns := []table.Column{
		{Title: "Date", Width: dateWidth},
		{Title: "Amount", Width: amountWidth},
		{Title: "Category", Width: categoryWidth},
		{Title: "Description", Width: descWidth},
	}
	if m.view.IsExpenseView() {
		columns = append(columns, table.Column{Title: "✓", Width: flagWidth})
	}

	// Rows must match the column count before the columns change.
	m.table.SetRows(nil)
	m.table.SetColumns(columns)
	rows := make([]table.Row, len(m.transactions))
	for i, txn := range m.transactions {
		rows[i] = m.row(txn)
	}
	m.table.SetRows(rows)
}

func (m TransactionListModel) row(txn model.Transaction) table.Row {
	r := table.Row{
		txn.TransactionDate().String(),
		cli.FormatAmount(txn.TransactionAmount()),
		categories.DisplayName(m.view, txn.TransactionCategory()),
		txn.TransactionDescription(),
	}
	if m.view.IsExpenseView() {
		mark := ""
		if e, ok := txn.(model.Expense); ok && e.Reimbursed {
			mark = "✓"
		}
		r = append(r, mark)
	}
	return r
}
