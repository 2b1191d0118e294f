package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/Veraticus/tally/internal/categories"
	"github.com/Veraticus/tally/internal/model"
	"github.com/Veraticus/tally/internal/stats"
)

const barWidth = 20

// FormatAmount renders an amount with two decimals and thousands separators.
func FormatAmount(d decimal.Decimal) string {
	fixed := d.Abs().StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if d.IsNegative() {
		b.WriteByte('-')
	}
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}

// Bar renders a horizontal bar filled in proportion to share (0..1).
func Bar(share float64, width int) string {
	if share < 0 {
		share = 0
	}
	if share > 1 {
		share = 1
	}
	filled := int(share*float64(width) + 0.5)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// RenderTransactions writes txns as a table. Category ids are shown by name
// when they belong to v's partition and as the raw id otherwise.
func RenderTransactions(w io.Writer, v model.View, txns []model.Transaction) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	header := "DATE\tAMOUNT\tCATEGORY\tDESCRIPTION\tID"
	if v.IsExpenseView() {
		header = "DATE\tAMOUNT\tCATEGORY\tDESCRIPTION\tREIMBURSED\tID"
	}
	if _, err := fmt.Fprintln(tw, header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, txn := range txns {
		cols := []string{
			txn.TransactionDate().String(),
			FormatAmount(txn.TransactionAmount()),
			categories.DisplayName(v, txn.TransactionCategory()),
			txn.TransactionDescription(),
		}
		if v.IsExpenseView() {
			mark := ""
			if e, ok := txn.(model.Expense); ok && e.Reimbursed {
				mark = SuccessIcon
			}
			cols = append(cols, mark)
		}
		cols = append(cols, txn.TransactionID())

		if _, err := fmt.Fprintln(tw, strings.Join(cols, "\t")); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	return tw.Flush()
}

// RenderSummary writes the per-category totals of summary with share bars.
func RenderSummary(w io.Writer, v model.View, summary stats.Summary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	for _, row := range summary.Totals {
		name := row.Category.Name
		if row.Orphan {
			name += " " + SubtleStyle.Render("(unknown)")
		}
		if _, err := fmt.Fprintf(tw, "%s %s\t%s\t%5.1f%%\t%s\t%d\n",
			ColorSwatch(row.Category.Color),
			name,
			FormatAmount(row.Total),
			row.Share*100,
			Bar(row.Share, barWidth),
			row.Count,
		); err != nil {
			return fmt.Errorf("failed to write summary row: %w", err)
		}
	}

	if _, err := fmt.Fprintf(tw, "\t\t\t\t\n%s\t%s\t\t\t%d\n", BoldStyle.Render("Total"), FormatAmount(summary.GrandTotal), summary.Count); err != nil {
		return fmt.Errorf("failed to write total: %w", err)
	}
	if v.IsExpenseView() {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t\t\t\n", "Awaiting reimbursement", FormatAmount(summary.Outstanding)); err != nil {
			return fmt.Errorf("failed to write outstanding: %w", err)
		}
	}

	return tw.Flush()
}
