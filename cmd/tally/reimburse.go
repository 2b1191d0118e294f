package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Veraticus/tally/internal/cli"
)

func reimburseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reimburse <id>",
		Short: "Toggle the reimbursed flag of an expense",
		Long: `Mark an expense as reimbursed, or clear the mark when it is already set.
Running it twice restores the original state.`,
		Args: cobra.ExactArgs(1),
		RunE: runReimburse,
	}
}

func runReimburse(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	id := strings.TrimSpace(args[0])

	repo, closeStore, err := initRepository(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	if _, ok := repo.Expense(id); !ok {
		fmt.Fprintln(cmd.OutOrStdout(), cli.FormatInfo(fmt.Sprintf("No expense with id %s; nothing changed.", id)))
		return nil
	}

	if err := repo.ToggleReimbursed(ctx, id); err != nil {
		return fmt.Errorf("failed to update %s: %w", id, err)
	}

	updated, _ := repo.Expense(id)
	if updated.Reimbursed {
		fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("%s marked as reimbursed", id)))
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("%s marked as outstanding", id)))
	}
	return nil
}
