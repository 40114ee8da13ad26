package main

import (
	"fmt"
	"log/slog"

	"github.com/Rekha-shivaraj/Lab-report-digitization/internal/export"
	"github.com/Rekha-shivaraj/Lab-report-digitization/internal/model"
	"github.com/Rekha-shivaraj/Lab-report-digitization/internal/service"
	"github.com/spf13/cobra"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export stored analyses to Google Sheets",
		Long: `Write stored analyses to a Google Sheet, one row per test value.

Authentication comes from the environment: either
GOOGLE_SHEETS_SERVICE_ACCOUNT_PATH, or the OAuth2 trio
GOOGLE_SHEETS_CLIENT_ID / GOOGLE_SHEETS_CLIENT_SECRET /
GOOGLE_SHEETS_REFRESH_TOKEN.`,
		RunE: runExport,
	}

	cmd.Flags().String("spreadsheet-id", "", "existing spreadsheet to write to (default: create one)")
	cmd.Flags().String("report-type", "", `only export analyses of this report type (e.g. "Lab Report")`)
	cmd.Flags().Int("limit", 0, "maximum number of analyses to export (0 = all)")

	return cmd
}

func runExport(cmd *cobra.Command, _ []string) error {
	spreadsheetID, _ := cmd.Flags().GetString("spreadsheet-id")
	reportType, _ := cmd.Flags().GetString("report-type")
	limit, _ := cmd.Flags().GetInt("limit")

	ctx := cmd.Context()

	cfg := export.DefaultConfig()
	if err := cfg.LoadFromEnv(); err != nil {
		return err
	}
	if spreadsheetID != "" {
		cfg.SpreadsheetID = spreadsheetID
	}

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
		return fmt.Errorf("no stored analyses to export")
	}

	writer, err := export.NewWriter(ctx, cfg, slog.Default())
	if err != nil {
		return err
	}

	if err := writer.Write(ctx, records); err != nil {
		return err
	}

	slog.Info("export complete", "records", len(records))
	return nil
}
