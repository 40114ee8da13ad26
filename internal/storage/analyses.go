package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/Rekha-shivaraj/Lab-report-digitization/internal/common"
	"github.com/Rekha-shivaraj/Lab-report-digitization/internal/model"
	"github.com/Rekha-shivaraj/Lab-report-digitization/internal/service"
	"github.com/google/uuid"
)

var _ service.Storage = (*SQLiteStorage)(nil)

// SaveAnalysis persists one analysis result. A missing ID or timestamp
// is assigned here; the engine itself stays identity-free.
func (s *SQLiteStorage) SaveAnalysis(ctx context.Context, record *model.AnalysisRecord) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if record == nil {
		return fmt.Errorf("%w: record", ErrNilRecord)
	}
	if err := record.Result.Validate(); err != nil {
		return fmt.Errorf("refusing to save inconsistent analysis: %w", err)
	}

	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	result, err := json.Marshal(record.Result)
	if err != nil {
		return fmt.Errorf("failed to encode analysis result: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO analyses (id, source, report_type, result, created_at, value_count, finding_count)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		record.ID, record.Source, string(record.Result.ReportType), string(result),
		record.CreatedAt, len(record.Result.Values), len(record.Result.Findings))
	if err != nil {
		return fmt.Errorf("failed to save analysis: %w", err)
	}

	slog.Debug("saved analysis",
		"id", record.ID,
		"report_type", record.Result.ReportType,
		"values", len(record.Result.Values))
	return nil
}

// GetAnalysis returns one stored analysis by ID.
func (s *SQLiteStorage) GetAnalysis(ctx context.Context, id string) (*model.AnalysisRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, source, result, created_at
		FROM analyses
		WHERE id = ?`, id)

	record, err := scanAnalysis(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("analysis %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

// ListAnalyses returns stored analyses, newest first, honoring the
// filter's report type, limit, and offset.
func (s *SQLiteStorage) ListAnalyses(ctx context.Context, filter service.AnalysisFilter) ([]model.AnalysisRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, source, result, created_at
		FROM analyses`
	args := []any{}

	if filter.ReportType != "" {
		query += ` WHERE report_type = ?`
		args = append(args, string(filter.ReportType))
	}
	query += ` ORDER BY created_at DESC, id`
	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
		if filter.Offset > 0 {
			query += ` OFFSET ?`
			args = append(args, filter.Offset)
		}
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query analyses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []model.AnalysisRecord
	for rows.Next() {
		record, scanErr := scanAnalysis(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		records = append(records, *record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating analyses: %w", err)
	}

	slog.Debug("retrieved analyses", "count", len(records))
	return records, nil
}

// DeleteAnalysis removes one stored analysis by ID.
func (s *SQLiteStorage) DeleteAnalysis(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM analyses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete analysis: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("analysis %s: %w", id, common.ErrNotFound)
	}
	return nil
}

// CountByReportType returns how many stored analyses exist per report
// category.
func (s *SQLiteStorage) CountByReportType(ctx context.Context) (map[model.ReportType]int, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT report_type, COUNT(*)
		FROM analyses
		GROUP BY report_type`)
	if err != nil {
		return nil, fmt.Errorf("failed to count analyses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	counts := make(map[model.ReportType]int)
	for rows.Next() {
		var reportType string
		var count int
		if err := rows.Scan(&reportType, &count); err != nil {
			return nil, fmt.Errorf("failed to scan count: %w", err)
		}
		counts[model.ReportType(reportType)] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating counts: %w", err)
	}
	return counts, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row scanner) (*model.AnalysisRecord, error) {
	var record model.AnalysisRecord
	var result string

	if err := row.Scan(&record.ID, &record.Source, &result, &record.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan analysis: %w", err)
	}

	if err := json.Unmarshal([]byte(result), &record.Result); err != nil {
		return nil, fmt.Errorf("failed to decode analysis result: %w", err)
	}
	return &record, nil
}
