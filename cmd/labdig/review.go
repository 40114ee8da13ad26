package main

import (
	"github.com/Rekha-shivaraj/Lab-report-digitization/internal/tui"
	"github.com/spf13/cobra"
)

func reviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "review",
		Short: "Browse stored analyses interactively",
		Long: `Open an interactive browser over stored analyses: a list of saved
reports with a detail pane showing each test's status, interpretation
and advice.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			limit, _ := cmd.Flags().GetInt("limit")

			ctx := cmd.Context()
			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			return tui.Run(ctx, tui.Config{Storage: store, Limit: limit})
		},
	}

	cmd.Flags().Int("limit", 100, "maximum number of analyses to load")

	return cmd
}
