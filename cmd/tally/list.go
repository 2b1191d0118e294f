package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/tally/internal/cli"
	"github.com/Veraticus/tally/internal/view"
)

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the transactions of a view",
		Long:    `Print every transaction in the chosen view, newest first.`,
		Args:    cobra.NoArgs,
		RunE:    runList,
	}
	addViewFlag(cmd)
	return cmd
}

func runList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	v, err := viewFlag(cmd)
	if err != nil {
		return err
	}

	repo, closeStore, err := initRepository(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	state := view.Snapshot(repo, v)
	if len(state.Transactions) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), cli.InfoStyle.Render(fmt.Sprintf("No %s transactions yet. Use 'tally add --view %s' to record one.", v, v)))
		return nil
	}

	if err := cli.RenderTransactions(cmd.OutOrStdout(), v, state.Transactions); err != nil {
		return fmt.Errorf("failed to render transactions: %w", err)
	}
	return nil
}
