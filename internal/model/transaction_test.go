package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{name: "valid date", input: "2024-03-01", want: NewDate(2024, time.March, 1)},
		{name: "surrounding spaces", input: " 2024-12-31 ", want: NewDate(2024, time.December, 31)},
		{name: "leap day", input: "2024-02-29", want: NewDate(2024, time.February, 29)},
		{name: "non leap year", input: "2023-02-29", wantErr: true},
		{name: "day out of range", input: "2024-04-31", wantErr: true},
		{name: "wrong layout", input: "01/03/2024", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2024, time.March, 5)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-05"`, string(data))

	var back Date
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, d.Equal(back))

	var fromTimestamp Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-03-05T18:30:00Z"`), &fromTimestamp))
	assert.Equal(t, "2024-03-05", fromTimestamp.String())

	var bad Date
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &bad))
	assert.Error(t, json.Unmarshal([]byte(`20240305`), &bad))
}

func TestParseView(t *testing.T) {
	tests := []struct {
		input   string
		want    View
		wantErr bool
	}{
		{input: "personal", want: ViewPersonal},
		{input: "Company", want: ViewCompany},
		{input: " INCOME ", want: ViewIncome},
		{input: "savings", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseView(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpenseTypeForView(t *testing.T) {
	assert.Equal(t, ExpenseCompany, ExpenseTypeForView(ViewCompany))
	assert.Equal(t, ExpensePersonal, ExpenseTypeForView(ViewPersonal))
	assert.Equal(t, ExpensePersonal, ExpenseTypeForView(ViewIncome))
}

func TestTransactionVariants(t *testing.T) {
	expense := Expense{
		ID:          "e1",
		Type:        ExpenseCompany,
		Amount:      decimal.RequireFromString("12.50"),
		Category:    "site-3",
		Date:        NewDate(2024, time.March, 1),
		Description: "cement",
	}
	income := Income{
		ID:       "i1",
		Amount:   decimal.NewFromInt(3000),
		Category: "salary",
		Date:     NewDate(2024, time.March, 10),
	}

	txns := append(ExpensesAsTransactions([]Expense{expense}), IncomeAsTransactions([]Income{income})...)
	require.Len(t, txns, 2)

	assert.Equal(t, KindExpense, txns[0].Kind())
	assert.Equal(t, "e1", txns[0].TransactionID())
	assert.Equal(t, "site-3", txns[0].TransactionCategory())
	assert.True(t, txns[0].TransactionAmount().Equal(decimal.RequireFromString("12.5")))

	assert.Equal(t, KindIncome, txns[1].Kind())
	assert.Equal(t, "2024-03-10", txns[1].TransactionDate().String())

	switch tx := txns[0].(type) {
	case Expense:
		assert.Equal(t, ExpenseCompany, tx.Type)
	default:
		t.Fatalf("unexpected variant %T", tx)
	}
}

func TestExpenseJSONFieldNames(t *testing.T) {
	expense := Expense{
		ID:          "abc",
		Type:        ExpensePersonal,
		Amount:      decimal.NewFromInt(50),
		Category:    "food",
		Date:        NewDate(2024, time.March, 1),
		Description: "lunch",
		Reimbursed:  true,
	}

	data, err := json.Marshal(expense)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))
	for _, key := range []string{"id", "type", "amount", "category", "date", "description", "reimbursed"} {
		assert.Contains(t, fields, key)
	}

	// Records written with numeric amounts and no reimbursed flag still load.
	var legacy Expense
	require.NoError(t, json.Unmarshal([]byte(`{"id":"x","type":"COMPANY","amount":19.9,"category":"site-5","date":"2024-01-02","description":"bolts"}`), &legacy))
	assert.False(t, legacy.Reimbursed)
	assert.True(t, legacy.Amount.Equal(decimal.RequireFromString("19.9")))
	assert.Equal(t, ExpenseCompany, legacy.Type)
}
