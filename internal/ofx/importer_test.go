package ofx

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/tally/internal/ledger"
	"github.com/Veraticus/tally/internal/model"
	"github.com/Veraticus/tally/internal/storage"
)

func newTestLedger(t *testing.T) *ledger.Repository {
	t.Helper()
	repo, err := ledger.Open(context.Background(), storage.NewMemoryStore())
	require.NoError(t, err)
	return repo
}

func parseSample(t *testing.T, data string) []Entry {
	t.Helper()
	entries, err := NewParser().ParseFile(context.Background(), strings.NewReader(data))
	require.NoError(t, err)
	return entries
}

func defaultOptions() Options {
	return Options{
		ExpenseView:     model.ViewCompany,
		ExpenseCategory: "site-3",
		IncomeCategory:  "salary",
	}
}

func TestImport_MapsDebitsAndCredits(t *testing.T) {
	repo := newTestLedger(t)
	var progress bytes.Buffer

	result, err := NewImporter(repo, &progress).Import(context.Background(), parseSample(t, sampleBankOFX), defaultOptions())
	require.NoError(t, err)
	assert.Equal(t, Result{Expenses: 2, Income: 1}, result)
	assert.NotEmpty(t, progress.String())

	expenses := repo.Expenses()
	require.Len(t, expenses, 2)
	assert.Equal(t, "2024-03-20", expenses[0].Date.String(), "imported expenses keep date order")
	for _, e := range expenses {
		assert.Equal(t, model.ExpenseCompany, e.Type)
		assert.Equal(t, "site-3", e.Category)
		assert.True(t, e.Amount.IsPositive())
	}

	income := repo.Income()
	require.Len(t, income, 1)
	assert.True(t, decimal.NewFromInt(4200).Equal(income[0].Amount))
	assert.Equal(t, "salary", income[0].Category)
}

func TestImport_SkipsDuplicates(t *testing.T) {
	repo := newTestLedger(t)
	ctx := context.Background()

	_, err := repo.AddExpense(ctx, ledger.Input{
		Amount:      "25.50",
		Category:    "food",
		Date:        "2024-03-05",
		Description: "noodle bar",
	}, model.ViewPersonal)
	require.NoError(t, err)

	importer := NewImporter(repo, nil)
	entries := parseSample(t, sampleBankOFX)

	result, err := importer.Import(ctx, entries, defaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Duplicates)
	assert.Equal(t, 1, result.Expenses)
	assert.Equal(t, 1, result.Income)

	// Importing the same statement again adds nothing.
	result, err = importer.Import(ctx, entries, defaultOptions())
	require.NoError(t, err)
	assert.Equal(t, Result{Duplicates: 3}, result)
	assert.Len(t, repo.Expenses(), 2)
	assert.Len(t, repo.Income(), 1)
}

func TestImport_DuplicatesMatchKind(t *testing.T) {
	repo := newTestLedger(t)
	ctx := context.Background()

	// Same figures as the statement's payroll credit, but recorded as an expense.
	_, err := repo.AddExpense(ctx, ledger.Input{
		Amount:      "4200",
		Category:    "site-3",
		Date:        "2024-03-01",
		Description: "PAYROLL ACME",
	}, model.ViewCompany)
	require.NoError(t, err)

	result, err := NewImporter(repo, nil).Import(ctx, parseSample(t, sampleBankOFX), defaultOptions())
	require.NoError(t, err)
	assert.Equal(t, Result{Expenses: 2, Income: 1}, result)

	income := repo.Income()
	require.Len(t, income, 1)
	assert.Equal(t, "PAYROLL ACME", income[0].Description)
	assert.Len(t, repo.Expenses(), 3)
}

func TestDedupKey(t *testing.T) {
	date := model.MustParseDate("2024-03-01")
	assert.Equal(t,
		dedupKey(model.KindExpense, date, "10", "Rent "),
		dedupKey(model.KindExpense, date, "10", "rent"))
	assert.NotEqual(t,
		dedupKey(model.KindExpense, date, "10", "rent"),
		dedupKey(model.KindIncome, date, "10", "rent"))
}

func TestImport_DryRun(t *testing.T) {
	repo := newTestLedger(t)

	opts := defaultOptions()
	opts.DryRun = true
	result, err := NewImporter(repo, nil).Import(context.Background(), parseSample(t, sampleCreditCardOFX), opts)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Expenses)
	assert.Empty(t, repo.Expenses())
}

func TestImport_SkipsZeroAndTruncates(t *testing.T) {
	repo := newTestLedger(t)

	entries := []Entry{
		{Date: model.MustParseDate("2024-03-01"), Amount: decimal.Zero, Description: "balance inquiry"},
		{Date: model.MustParseDate("2024-03-02"), Amount: decimal.RequireFromString("-3"), Description: strings.Repeat("a", 250)},
	}
	opts := defaultOptions()
	opts.ExpenseView = model.ViewPersonal
	opts.ExpenseCategory = "other"

	result, err := NewImporter(repo, nil).Import(context.Background(), entries, opts)
	require.NoError(t, err)
	assert.Equal(t, Result{Expenses: 1, Skipped: 1}, result)

	expenses := repo.Expenses()
	require.Len(t, expenses, 1)
	assert.Len(t, expenses[0].Description, ledger.MaxDescriptionLength)
	assert.Equal(t, model.ExpensePersonal, expenses[0].Type)
}

func TestImport_RejectsBadOptions(t *testing.T) {
	repo := newTestLedger(t)
	importer := NewImporter(repo, nil)

	opts := defaultOptions()
	opts.ExpenseView = model.ViewIncome
	_, err := importer.Import(context.Background(), nil, opts)
	assert.Error(t, err)

	opts = defaultOptions()
	opts.IncomeCategory = " "
	_, err = importer.Import(context.Background(), nil, opts)
	assert.Error(t, err)
}
