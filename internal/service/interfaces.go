// Package service defines the interfaces for the engine's external
// collaborators: persistence, text acquisition, and report export. The
// core pipeline depends on none of them.
package service

import (
	"context"
	"io"
	"time"

	"github.com/Rekha-shivaraj/Lab-report-digitization/internal/model"
)

// AnalysisFilter defines filtering options for stored analysis queries.
type AnalysisFilter struct {
	ReportType model.ReportType
	Limit      int
	Offset     int
}

// Storage is the contract for the persistence collaborator. The engine
// itself never touches storage; the hosting CLI saves results after an
// invocation completes.
type Storage interface {
	SaveAnalysis(ctx context.Context, record *model.AnalysisRecord) error
	GetAnalysis(ctx context.Context, id string) (*model.AnalysisRecord, error)
	ListAnalyses(ctx context.Context, filter AnalysisFilter) ([]model.AnalysisRecord, error)
	DeleteAnalysis(ctx context.Context, id string) error
	CountByReportType(ctx context.Context) (map[model.ReportType]int, error)
	Migrate(ctx context.Context) error
	Close() error
}

// TextSource is the OCR collaborator contract: it turns one report's
// source bytes into a single best-effort UTF-8 transcription, with
// pages already concatenated by newline upstream.
type TextSource interface {
	ExtractText(ctx context.Context, r io.Reader) (string, error)
}

// ReportWriter is the rendering/export collaborator contract.
type ReportWriter interface {
	Write(ctx context.Context, records []model.AnalysisRecord) error
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
