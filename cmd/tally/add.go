package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/tally/internal/categories"
	"github.com/Veraticus/tally/internal/cli"
	"github.com/Veraticus/tally/internal/common"
	"github.com/Veraticus/tally/internal/ledger"
	"github.com/Veraticus/tally/internal/model"
)

func addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an expense or income",
		Long: `Record a transaction in the chosen view. Expenses added in the company view
are filed as company purchases; everything else in personal. The income view
records income.

Missing fields are asked for interactively.

Examples:
  tally add --amount 12.50 --category food --description "ramen"
  tally add --view company --amount 1200 --category site-7
  tally add --view income`,
		Args: cobra.NoArgs,
		RunE: runAdd,
	}

	addViewFlag(cmd)
	cmd.Flags().String("amount", "", "amount, e.g. 12.50")
	cmd.Flags().String("category", "", "category id (see 'tally categories')")
	cmd.Flags().String("date", "", "date as YYYY-MM-DD (default today)")
	cmd.Flags().String("description", "", "free-form note")

	return cmd
}

func runAdd(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	v, err := viewFlag(cmd)
	if err != nil {
		return err
	}

	var in ledger.Input
	in.Amount, _ = cmd.Flags().GetString("amount")
	in.Category, _ = cmd.Flags().GetString("category")
	in.Date, _ = cmd.Flags().GetString("date")
	in.Description, _ = cmd.Flags().GetString("description")

	prompter := cli.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
	in, err = prompter.CompleteInput(ctx, v, in)
	if err != nil {
		if errors.Is(err, cli.ErrInputCancelled) {
			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatInfo("Nothing recorded."))
			return nil
		}
		return err
	}

	repo, closeStore, err := initRepository(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	txn, err := repo.AddTransaction(ctx, in, v)
	if err != nil {
		if errors.Is(err, common.ErrValidation) {
			return common.NewUserError("transaction not recorded", err)
		}
		return fmt.Errorf("failed to add transaction: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Recorded %s %s in %s (%s)",
		cli.FormatAmount(txn.TransactionAmount()),
		categories.DisplayName(v, txn.TransactionCategory()),
		describeKind(txn),
		txn.TransactionDate())))
	fmt.Fprintf(cmd.OutOrStdout(), "  id: %s\n", txn.TransactionID())

	if _, known := categories.Lookup(v, txn.TransactionCategory()); !known {
		fmt.Fprintln(cmd.OutOrStdout(), cli.FormatWarning(fmt.Sprintf("%q is not a %s category; it will be listed on its own", txn.TransactionCategory(), v)))
	}
	return nil
}

func describeKind(txn model.Transaction) string {
	switch t := txn.(type) {
	case model.Expense:
		if t.Type == model.ExpenseCompany {
			return "company expenses"
		}
		return "personal expenses"
	default:
		return "income"
	}
}
