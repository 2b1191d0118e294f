package main

import (
	"github.com/spf13/cobra"

	"github.com/Veraticus/tally/internal/tui"
	"github.com/Veraticus/tally/internal/tui/themes"
)

func uiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Browse and edit the ledger in the terminal UI",
		Long: `Open the interactive terminal UI.

Keys: 1/2/3 or tab switch views, a adds, d deletes, r toggles reimbursed,
? shows help and q quits.`,
		Args: cobra.NoArgs,
		RunE: runUI,
	}
	addViewFlag(cmd)
	cmd.Flags().Bool("inline", false, "render inline instead of on the alternate screen")
	cmd.Flags().Bool("monochrome", false, "render without colors")
	return cmd
}

func runUI(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	opts, err := uiOptions(cmd)
	if err != nil {
		return err
	}

	repo, closeStore, err := initRepository(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	return tui.Run(ctx, repo, opts...)
}

// uiOptions translates the ui flags into TUI options.
func uiOptions(cmd *cobra.Command) ([]tui.Option, error) {
	v, err := viewFlag(cmd)
	if err != nil {
		return nil, err
	}
	inline, _ := cmd.Flags().GetBool("inline")
	monochrome, _ := cmd.Flags().GetBool("monochrome")

	opts := []tui.Option{
		tui.WithInitialView(v),
		tui.WithAltScreen(!inline),
	}
	if monochrome {
		opts = append(opts, tui.WithTheme(themes.Monochrome))
	}
	return opts, nil
}
