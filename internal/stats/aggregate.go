// Package stats computes per-category totals over a date window.
package stats

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Veraticus/tally/internal/model"
)

// Window is an inclusive range of calendar dates.
type Window struct {
	Start model.Date
	End   model.Date
}

// Contains reports whether d falls within the window, bounds included.
func (w Window) Contains(d model.Date) bool {
	return !d.Before(w.Start) && !d.After(w.End)
}

// String formats the window as "start..end".
func (w Window) String() string {
	return w.Start.String() + ".." + w.End.String()
}

// Month returns the window covering the given calendar month.
func Month(year int, month time.Month) Window {
	first := model.NewDate(year, month, 1)
	last := model.DateOf(first.AddDate(0, 1, -1))
	return Window{Start: first, End: last}
}

// CurrentMonth returns the window covering now's calendar month, in now's location.
func CurrentMonth(now time.Time) Window {
	return Month(now.Year(), now.Month())
}

// ParseMonth parses a YYYY-MM string into a month window.
func ParseMonth(s string) (Window, error) {
	t, err := time.Parse("2006-01", strings.TrimSpace(s))
	if err != nil {
		return Window{}, fmt.Errorf("invalid month %q: expected YYYY-MM", s)
	}
	return Month(t.Year(), t.Month()), nil
}

// CategoryTotal is one row of a summary.
type CategoryTotal struct {
	Category model.Category
	Total    decimal.Decimal
	Share    float64
	Count    int
	Orphan   bool
}

// Summary is the aggregate of a set of transactions over a window.
type Summary struct {
	PerCategory map[string]decimal.Decimal
	Window      Window
	GrandTotal  decimal.Decimal
	Outstanding decimal.Decimal
	Totals      []CategoryTotal
	Count       int
}

// Aggregate sums transactions dated within window by category. Totals lists
// known categories in the order given, then category ids missing from cats
// in the order they were first seen. Outstanding is the sum of expenses in
// the window not yet reimbursed. Inputs are not modified.
func Aggregate(transactions []model.Transaction, cats []model.Category, window Window) Summary {
	summary := Summary{
		PerCategory: make(map[string]decimal.Decimal),
		Window:      window,
		GrandTotal:  decimal.Zero,
		Outstanding: decimal.Zero,
	}

	counts := make(map[string]int)
	var seen []string

	for _, txn := range transactions {
		if !window.Contains(txn.TransactionDate()) {
			continue
		}

		id := txn.TransactionCategory()
		amount := txn.TransactionAmount()

		if _, ok := summary.PerCategory[id]; !ok {
			seen = append(seen, id)
			summary.PerCategory[id] = decimal.Zero
		}
		summary.PerCategory[id] = summary.PerCategory[id].Add(amount)
		counts[id]++

		summary.GrandTotal = summary.GrandTotal.Add(amount)
		summary.Count++

		if e, ok := txn.(model.Expense); ok && !e.Reimbursed {
			summary.Outstanding = summary.Outstanding.Add(amount)
		}
	}

	known := make(map[string]bool, len(cats))
	for _, c := range cats {
		known[c.ID] = true
		if _, ok := summary.PerCategory[c.ID]; !ok {
			continue
		}
		summary.Totals = append(summary.Totals, summary.row(c, counts[c.ID], false))
	}

	for _, id := range seen {
		if known[id] {
			continue
		}
		summary.Totals = append(summary.Totals, summary.row(model.Category{ID: id, Name: id}, counts[id], true))
	}

	return summary
}

func (s Summary) row(c model.Category, count int, orphan bool) CategoryTotal {
	total := s.PerCategory[c.ID]
	share := 0.0
	if s.GrandTotal.IsPositive() {
		share = total.Div(s.GrandTotal).InexactFloat64()
	}
	return CategoryTotal{
		Category: c,
		Total:    total,
		Share:    share,
		Count:    count,
		Orphan:   orphan,
	}
}
