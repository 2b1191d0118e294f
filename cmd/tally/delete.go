package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Veraticus/tally/internal/cli"
)

func deleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete an expense or income record",
		Long: `Delete the expense with the given id, or the income record when --income is set.
Deleting an id that does not exist changes nothing.`,
		Args: cobra.ExactArgs(1),
		RunE: runDelete,
	}
	cmd.Flags().Bool("income", false, "delete from income instead of expenses")
	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	id := strings.TrimSpace(args[0])
	income, _ := cmd.Flags().GetBool("income")

	repo, closeStore, err := initRepository(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	var found bool
	if income {
		_, found = repo.IncomeByID(id)
		err = repo.DeleteIncome(ctx, id)
	} else {
		_, found = repo.Expense(id)
		err = repo.DeleteExpense(ctx, id)
	}
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", id, err)
	}

	if !found {
		fmt.Fprintln(cmd.OutOrStdout(), cli.FormatInfo(fmt.Sprintf("No record with id %s; nothing deleted.", id)))
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Deleted "+id))
	return nil
}
