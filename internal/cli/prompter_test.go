package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/tally/internal/ledger"
	"github.com/Veraticus/tally/internal/model"
)

func newTestPrompter(input string) (*Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader(input), &out)
	p.now = func() time.Time { return time.Date(2024, time.March, 9, 15, 0, 0, 0, time.UTC) }
	return p, &out
}

func TestCompleteInput(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		view     model.View
		given    ledger.Input
		expected ledger.Input
	}{
		{
			name:     "everything prompted, category by number",
			input:    "12.50\n2\n\nlunch\n",
			view:     model.ViewPersonal,
			expected: ledger.Input{Amount: "12.50", Category: "shopping", Date: "2024-03-09", Description: "lunch"},
		},
		{
			name:     "category by id and explicit date",
			input:    "900\nsite-11\n2024-02-28\n\n",
			view:     model.ViewCompany,
			expected: ledger.Input{Amount: "900", Category: "site-11", Date: "2024-02-28"},
		},
		{
			name:     "blank category takes the first entry",
			input:    "3000\n\n\n\n",
			view:     model.ViewIncome,
			expected: ledger.Input{Amount: "3000", Category: "salary", Date: "2024-03-09"},
		},
		{
			name:     "fully flagged needs no input",
			input:    "",
			view:     model.ViewPersonal,
			given:    ledger.Input{Amount: "5", Category: "food"},
			expected: ledger.Input{Amount: "5", Category: "food", Date: "2024-03-09"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newTestPrompter(tt.input)
			got, err := p.CompleteInput(context.Background(), tt.view, tt.given)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCompleteInput_ListsPartition(t *testing.T) {
	p, out := newTestPrompter("1\n1\n\n\n")
	_, err := p.CompleteInput(context.Background(), model.ViewCompany, ledger.Input{})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Site 13")
	assert.NotContains(t, out.String(), "Food")
}

func TestCompleteInput_Cancelled(t *testing.T) {
	p, _ := newTestPrompter("1\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.CompleteInput(ctx, model.ViewPersonal, ledger.Input{})
	assert.ErrorIs(t, err, ErrInputCancelled)
}
