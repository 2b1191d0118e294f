package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Veraticus/tally/internal/categories"
	"github.com/Veraticus/tally/internal/cli"
	"github.com/Veraticus/tally/internal/common"
	"github.com/Veraticus/tally/internal/model"
	"github.com/Veraticus/tally/internal/ofx"
)

func importOFXCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import-ofx <files...>",
		Short: "Import transactions from OFX/QFX files",
		Long: `Import a bank or credit card statement exported as OFX or QFX.

Debits become expenses in the chosen view and credits become income. Entries
already recorded with the same date, amount and description are skipped, so
importing overlapping statements is safe.

Examples:
  # Import one statement into personal expenses
  tally import-ofx ~/Downloads/checking_2024_03.qfx

  # Import a card used only for site purchases
  tally import-ofx --view company --category site-7 ~/Downloads/card_*.ofx

  # Preview without saving
  tally import-ofx --dry-run ~/Downloads/*.qfx`,
		Args: cobra.MinimumNArgs(1),
		RunE: runImportOFX,
	}

	cmd.Flags().String("view", string(model.ViewPersonal), "view for debits: personal or company")
	cmd.Flags().String("category", "", "category for debits (default: first category of the view)")
	cmd.Flags().String("income-category", categories.Default(model.ViewIncome).ID, "category for credits")
	cmd.Flags().BoolP("dry-run", "d", false, "preview import without saving")

	return cmd
}

func runImportOFX(cmd *cobra.Command, args []string) error {
	v, err := viewFlag(cmd)
	if err != nil {
		return err
	}
	if !v.IsExpenseView() {
		return common.NewUserError("invalid --view", fmt.Errorf("statements import into personal or company, not %s", v))
	}

	expenseCategory, _ := cmd.Flags().GetString("category")
	if expenseCategory == "" {
		expenseCategory = categories.Default(v).ID
	}
	incomeCategory, _ := cmd.Flags().GetString("income-category")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	files, err := expandFiles(args)
	if err != nil {
		return err
	}

	handler := cli.NewInterruptHandler(cmd.ErrOrStderr())
	ctx, stop := handler.HandleInterrupts(cmd.Context(), "Import",
		"Records added before the interruption are saved; run the import again to add the rest.")
	defer stop()

	repo, closeStore, err := initRepository(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	slog.Info("Importing OFX files",
		"file_count", len(files),
		"view", v,
		"dry_run", dryRun)

	parser := ofx.NewParser()
	importer := ofx.NewImporter(repo, cmd.ErrOrStderr())
	opts := ofx.Options{
		ExpenseView:     v,
		ExpenseCategory: expenseCategory,
		IncomeCategory:  incomeCategory,
		DryRun:          dryRun,
	}

	var total ofx.Result
	for _, path := range files {
		if ctx.Err() != nil {
			break
		}

		entries, err := parseFile(ctx, parser, path)
		if err != nil {
			slog.Error("Failed to parse OFX file",
				"file", path,
				"error", err)
			continue
		}
		if len(entries) == 0 {
			slog.Warn("No transactions found in file", "file", filepath.Base(path))
			continue
		}

		result, err := importer.Import(ctx, entries, opts)
		total = addResults(total, result)
		if err != nil {
			if handler.WasInterrupted() || errors.Is(err, context.Canceled) {
				break
			}
			return fmt.Errorf("failed to import %s: %w", filepath.Base(path), err)
		}

		slog.Info("Processed file",
			"file", filepath.Base(path),
			"entries", len(entries),
			"expenses", result.Expenses,
			"income", result.Income,
			"duplicates", result.Duplicates)
	}

	printImportSummary(cmd, total, dryRun)
	return nil
}

func parseFile(ctx context.Context, parser *ofx.Parser, path string) ([]ofx.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()
	return parser.ParseFile(ctx, f)
}

// expandFiles resolves glob patterns. Patterns that match nothing are kept
// when they name an existing file.
func expandFiles(patterns []string) ([]string, error) {
	var files []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) > 0 {
			files = append(files, matches...)
			continue
		}
		if _, err := os.Stat(pattern); err == nil {
			files = append(files, pattern)
		} else {
			slog.Warn("No files found matching pattern", "pattern", pattern)
		}
	}

	if len(files) == 0 {
		return nil, common.NewUserError("no files found to import", nil)
	}
	return files, nil
}

func addResults(a, b ofx.Result) ofx.Result {
	return ofx.Result{
		Expenses:   a.Expenses + b.Expenses,
		Income:     a.Income + b.Income,
		Duplicates: a.Duplicates + b.Duplicates,
		Skipped:    a.Skipped + b.Skipped,
	}
}

func printImportSummary(cmd *cobra.Command, r ofx.Result, dryRun bool) {
	out := cmd.OutOrStdout()
	verb := "Imported"
	if dryRun {
		verb = "Would import"
	}

	fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("%s %d expenses and %d income records", verb, r.Expenses, r.Income)))
	if r.Duplicates > 0 {
		fmt.Fprintln(out, cli.FormatInfo(fmt.Sprintf("Skipped %d already recorded", r.Duplicates)))
	}
	if r.Skipped > 0 {
		fmt.Fprintln(out, cli.FormatWarning(fmt.Sprintf("Skipped %d entries with a zero amount", r.Skipped)))
	}
	if dryRun {
		fmt.Fprintln(out, cli.FormatInfo("Dry run: nothing was saved"))
	}
}
