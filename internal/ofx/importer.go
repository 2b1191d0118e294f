package ofx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/schollz/progressbar/v3"

	"github.com/Veraticus/tally/internal/ledger"
	"github.com/Veraticus/tally/internal/model"
)

// Ledger is the part of the repository the importer writes through.
type Ledger interface {
	Expenses() []model.Expense
	Income() []model.Income
	AddExpense(ctx context.Context, in ledger.Input, activeView model.View) (model.Expense, error)
	AddIncome(ctx context.Context, in ledger.Input) (model.Income, error)
}

// Options controls how statement entries become ledger records.
type Options struct {
	ExpenseView     model.View
	ExpenseCategory string
	IncomeCategory  string
	DryRun          bool
}

// Result counts what an import did.
type Result struct {
	Expenses   int
	Income     int
	Duplicates int
	Skipped    int
}

// Importer writes statement entries into a ledger.
type Importer struct {
	ledger   Ledger
	progress io.Writer
}

// NewImporter creates an importer. Progress is drawn on progress; pass nil
// to disable it.
func NewImporter(l Ledger, progress io.Writer) *Importer {
	return &Importer{ledger: l, progress: progress}
}

// Import adds every entry that is not already in the ledger. Debits become
// expenses under opts.ExpenseView and credits become income. An entry is a
// duplicate when a record of the same kind with the same date, amount and
// description exists.
func (im *Importer) Import(ctx context.Context, entries []Entry, opts Options) (Result, error) {
	if opts.ExpenseView == model.ViewIncome {
		return Result{}, fmt.Errorf("expense view must be personal or company, got %q", opts.ExpenseView)
	}
	if strings.TrimSpace(opts.ExpenseCategory) == "" || strings.TrimSpace(opts.IncomeCategory) == "" {
		return Result{}, fmt.Errorf("expense and income categories are required")
	}

	existing := im.existingKeys()
	bar := im.newProgressBar(len(entries), opts.DryRun)

	var result Result
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		amount := entry.Amount.Abs()
		if amount.IsZero() {
			result.Skipped++
			im.advance(bar)
			continue
		}

		description := truncate(entry.Description, ledger.MaxDescriptionLength)
		kind := model.KindExpense
		if entry.IsCredit() {
			kind = model.KindIncome
		}
		key := dedupKey(kind, entry.Date, amount.String(), description)
		if existing[key] {
			slog.Debug("Skipping duplicate statement line",
				"fitid", entry.FITID,
				"date", entry.Date.String(),
				"amount", amount.String())
			result.Duplicates++
			im.advance(bar)
			continue
		}
		existing[key] = true

		in := ledger.Input{
			Amount:      amount.String(),
			Date:        entry.Date.String(),
			Description: description,
		}

		if entry.IsCredit() {
			in.Category = opts.IncomeCategory
			if !opts.DryRun {
				if _, err := im.ledger.AddIncome(ctx, in); err != nil {
					return result, fmt.Errorf("failed to import %s: %w", entry.FITID, err)
				}
			}
			result.Income++
		} else {
			in.Category = opts.ExpenseCategory
			if !opts.DryRun {
				if _, err := im.ledger.AddExpense(ctx, in, opts.ExpenseView); err != nil {
					return result, fmt.Errorf("failed to import %s: %w", entry.FITID, err)
				}
			}
			result.Expenses++
		}
		im.advance(bar)
	}

	slog.Info("Imported statement",
		"expenses", result.Expenses,
		"income", result.Income,
		"duplicates", result.Duplicates,
		"skipped", result.Skipped,
		"dry_run", opts.DryRun)
	return result, nil
}

func (im *Importer) existingKeys() map[string]bool {
	keys := make(map[string]bool)
	for _, e := range im.ledger.Expenses() {
		keys[dedupKey(e.Kind(), e.Date, e.Amount.String(), e.Description)] = true
	}
	for _, inc := range im.ledger.Income() {
		keys[dedupKey(inc.Kind(), inc.Date, inc.Amount.String(), inc.Description)] = true
	}
	return keys
}

func (im *Importer) newProgressBar(total int, dryRun bool) *progressbar.ProgressBar {
	if im.progress == nil || total == 0 {
		return nil
	}

	description := "[cyan][bold]Importing statement...[reset]"
	if dryRun {
		description = "[cyan][bold]Checking statement...[reset]"
	}

	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(im.progress),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(im.progress); err != nil {
				slog.Warn("Failed to write newline after progress bar", "error", err)
			}
		}),
	)
}

func (im *Importer) advance(bar *progressbar.ProgressBar) {
	if bar == nil {
		return
	}
	if err := bar.Add(1); err != nil {
		slog.Warn("Failed to update progress bar", "error", err)
	}
}

// dedupKey identifies a record by kind, date, amount and description. An
// expense never masks a credit with the same figures, nor the reverse.
func dedupKey(kind model.TransactionKind, date model.Date, amount, description string) string {
	return string(kind) + "|" + date.String() + "|" + amount + "|" + strings.ToLower(strings.TrimSpace(description))
}

func truncate(s string, limit int) string {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return strings.TrimSpace(string([]rune(s)[:limit]))
}
