package main

import (
	"encoding/json"
	"fmt"

	"github.com/Rekha-shivaraj/Lab-report-digitization/internal/cli"
	"github.com/Rekha-shivaraj/Lab-report-digitization/internal/model"
	"github.com/Rekha-shivaraj/Lab-report-digitization/internal/service"
	"github.com/spf13/cobra"
)

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse previously analyzed reports",
	}

	cmd.AddCommand(historyListCmd())
	cmd.AddCommand(historyShowCmd())
	cmd.AddCommand(historyDeleteCmd())

	return cmd
}

func historyListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored analyses",
		RunE: func(cmd *cobra.Command, _ []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			reportType, _ := cmd.Flags().GetString("report-type")

			ctx := cmd.Context()
			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			records, err := store.ListAnalyses(ctx, service.AnalysisFilter{
				ReportType: model.ReportType(reportType),
				Limit:      limit,
			})
			if err != nil {
				return err
			}

			if len(records) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No stored analyses yet. Run `labdig analyze --save` first."))
				return nil
			}

			fmt.Println(cli.TitleStyle.Render("Stored Analyses"))
			for _, record := range records {
				fmt.Printf("%s  %s  %-12s  %d values, %d findings  %s\n",
					record.ID,
					record.CreatedAt.Format("2006-01-02 15:04"),
					record.Result.ReportType,
					len(record.Result.Values),
					len(record.Result.Findings),
					cli.SubtleStyle.Render(record.Source),
				)
			}

			counts, err := store.CountByReportType(ctx)
			if err != nil {
				return err
			}
			fmt.Println()
			for reportType, count := range counts {
				fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("%s: %d total", reportType, count)))
			}
			return nil
		},
	}

	cmd.Flags().Int("limit", 20, "maximum number of analyses to list")
	cmd.Flags().String("report-type", "", `filter by report type (e.g. "Lab Report")`)

	return cmd
}

func historyShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one stored analysis in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")

			ctx := cmd.Context()
			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			record, err := store.GetAnalysis(ctx, args[0])
			if err != nil {
				return err
			}

			if asJSON {
				data, marshalErr := json.MarshalIndent(record.Result, "", "  ")
				if marshalErr != nil {
					return fmt.Errorf("failed to encode result: %w", marshalErr)
				}
				fmt.Println(string(data))
				return nil
			}

			fmt.Println(cli.SubtitleStyle.Render(fmt.Sprintf("%s · %s · %s",
				record.ID, record.Source, record.CreatedAt.Format("2006-01-02 15:04"))))
			fmt.Println(cli.RenderAnalysis(&record.Result))
			return nil
		},
	}

	cmd.Flags().Bool("json", false, "print the raw analysis result as JSON")

	return cmd
}

func historyDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one stored analysis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteAnalysis(ctx, args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted analysis %s\n", args[0])
			return nil
		},
	}
}
