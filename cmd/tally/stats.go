package main

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Veraticus/tally/internal/cli"
	"github.com/Veraticus/tally/internal/common"
	"github.com/Veraticus/tally/internal/stats"
	"github.com/Veraticus/tally/internal/view"
)

func statsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show per-category totals for a month",
		Long: `Summarize a view for one calendar month: the total per category, each
category's share, and the grand total. Company purchases that are not
reimbursed yet are totalled separately.

Examples:
  tally stats
  tally stats --view company --month 2024-03`,
		Args: cobra.NoArgs,
		RunE: runStats,
	}
	addViewFlag(cmd)
	cmd.Flags().String("month", "", "month as YYYY-MM (default current month)")
	return cmd
}

func runStats(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	v, err := viewFlag(cmd)
	if err != nil {
		return err
	}

	window := stats.CurrentMonth(time.Now())
	if month, _ := cmd.Flags().GetString("month"); strings.TrimSpace(month) != "" {
		window, err = stats.ParseMonth(month)
		if err != nil {
			return common.NewUserError("invalid --month", err)
		}
	}

	repo, closeStore, err := initRepository(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	state := view.Snapshot(repo, v)
	summary := stats.Aggregate(state.Transactions, state.Categories, window)

	var body bytes.Buffer
	if err := cli.RenderSummary(&body, v, summary); err != nil {
		return fmt.Errorf("failed to render summary: %w", err)
	}

	title := fmt.Sprintf("%s %s · %s", cli.ChartIcon, v, window.Start.Format("January 2006"))
	fmt.Fprintln(cmd.OutOrStdout(), cli.RenderBox(title, strings.TrimRight(body.String(), "\n")))
	return nil
}
