package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Veraticus/tally/internal/categories"
	"github.com/Veraticus/tally/internal/cli"
	"github.com/Veraticus/tally/internal/model"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List the categories of a view",
		Long: `Display the categories available in a view. Use the id with 'tally add --category'.
With --all every view is printed.`,
		Args: cobra.NoArgs,
		RunE: runCategories,
	}
	addViewFlag(cmd)
	cmd.Flags().Bool("all", false, "list the categories of every view")
	return cmd
}

func runCategories(cmd *cobra.Command, _ []string) error {
	views := model.Views
	if all, _ := cmd.Flags().GetBool("all"); !all {
		v, err := viewFlag(cmd)
		if err != nil {
			return err
		}
		views = []model.View{v}
	}

	out := cmd.OutOrStdout()
	for i, v := range views {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, cli.FormatTitle(fmt.Sprintf("%s categories", v)))

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			cli.BoldStyle.Render("ID"),
			cli.BoldStyle.Render("Name"),
			cli.BoldStyle.Render("Color"))
		for _, c := range categories.ForView(v) {
			fmt.Fprintf(w, "%s\t%s %s\t%s %s\n", c.ID, c.Icon, c.Name, cli.ColorSwatch(c.Color), c.Color)
		}
		if err := w.Flush(); err != nil {
			return fmt.Errorf("failed to write categories: %w", err)
		}
	}
	return nil
}
