package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Rekha-shivaraj/Lab-report-digitization/internal/cli"
	"github.com/Rekha-shivaraj/Lab-report-digitization/internal/engine"
	"github.com/Rekha-shivaraj/Lab-report-digitization/internal/model"
	"github.com/Rekha-shivaraj/Lab-report-digitization/internal/ocr"
	"github.com/Rekha-shivaraj/Lab-report-digitization/internal/service"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [files...]",
		Short: "Analyze transcribed report text into structured results",
		Long: `Analyze already-transcribed medical report text.

Reads report text from the given files (glob patterns work) or from
stdin when no files are given, extracts known test values, classifies
them against reference ranges, and prints interpretations and advice.

Examples:
  # Analyze a single transcription
  labdig analyze report.txt

  # Analyze a directory of transcriptions and save them
  labdig analyze ~/scans/*.txt --save

  # Pipe OCR output straight in
  tesseract scan.png - | labdig analyze --format json`,
		RunE: runAnalyze,
	}

	cmd.Flags().String("catalog", "", "path to a custom catalog YAML file (default: built-in)")
	cmd.Flags().StringP("format", "f", "text", "output format (text, json)")
	cmd.Flags().Bool("save", false, "persist results to the local database")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	catalogPath, _ := cmd.Flags().GetString("catalog")
	format, _ := cmd.Flags().GetString("format")
	save, _ := cmd.Flags().GetBool("save")

	if format != "text" && format != "json" {
		return fmt.Errorf("invalid format %q: expected text or json", format)
	}

	defs, err := loadCatalog(catalogPath)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	analyzer, err := engine.New(defs)
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	var store service.Storage
	if save {
		sqlStore, storeErr := openStorage(ctx)
		if storeErr != nil {
			return storeErr
		}
		defer func() { _ = sqlStore.Close() }()
		store = sqlStore
	}

	source := ocr.NewPlainText()

	// No files means stdin.
	if len(args) == 0 {
		text, readErr := source.ExtractText(ctx, os.Stdin)
		if readErr != nil {
			return readErr
		}
		return emitResult(ctx, analyzer.Analyze(text), "stdin", format, store)
	}

	files, err := collectFiles(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no files found to analyze")
	}

	slog.Info("analyzing report files", "file_count", len(files), "save", save)

	var bar *progressbar.ProgressBar
	if len(files) > 1 && format == "text" {
		bar = progressbar.Default(int64(len(files)), "analyzing")
	}

	failed := 0
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		f, openErr := os.Open(path) // #nosec G304 -- user-supplied report path
		if openErr != nil {
			slog.Error("failed to open file", "file", path, "error", openErr)
			failed++
			continue
		}

		text, readErr := source.ExtractText(ctx, f)
		_ = f.Close()
		if readErr != nil {
			slog.Error("failed to read file", "file", path, "error", readErr)
			failed++
			continue
		}

		result := analyzer.Analyze(text)
		if err := emitResult(ctx, result, filepath.Base(path), format, store); err != nil {
			return err
		}

		if bar != nil {
			_ = bar.Add(1)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files could not be analyzed", failed, len(files))
	}
	return nil
}

// emitResult prints one result in the requested format and optionally
// persists it.
func emitResult(ctx context.Context, result *model.AnalysisResult, sourceName, format string, store service.Storage) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		fmt.Println(string(data))
	default:
		if sourceName != "stdin" {
			fmt.Println(cli.SubtitleStyle.Render(sourceName))
		}
		fmt.Println(cli.RenderAnalysis(result))
	}

	if store == nil {
		return nil
	}

	record := &model.AnalysisRecord{Source: sourceName, Result: *result}
	if err := store.SaveAnalysis(ctx, record); err != nil {
		return fmt.Errorf("failed to save analysis for %s: %w", sourceName, err)
	}
	slog.Info("saved analysis", "id", record.ID, "source", sourceName)
	return nil
}
