// Package engine orchestrates the analysis pipeline: normalize, detect
// the report type, extract catalog values, classify them, and generate
// interpretations and advice. One invocation per document, no shared
// mutable state, safe for arbitrary parallelism across documents.
package engine

import (
	"fmt"
	"log/slog"

	"github.com/Rekha-shivaraj/Lab-report-digitization/internal/advise"
	"github.com/Rekha-shivaraj/Lab-report-digitization/internal/catalog"
	"github.com/Rekha-shivaraj/Lab-report-digitization/internal/classify"
	"github.com/Rekha-shivaraj/Lab-report-digitization/internal/detect"
	"github.com/Rekha-shivaraj/Lab-report-digitization/internal/extract"
	"github.com/Rekha-shivaraj/Lab-report-digitization/internal/model"
	"github.com/Rekha-shivaraj/Lab-report-digitization/internal/normalize"
)

// Analyzer runs the report analysis pipeline over one document at a
// time. The catalog and advice tables are fixed at construction and
// shared read-only, so a single Analyzer serves concurrent callers.
type Analyzer struct {
	extractor *extract.Extractor
	advisor   *advise.Advisor
	defs      []model.TestDefinition
}

// New creates an analyzer for the given catalog. The catalog is the
// caller's configuration: pass catalog.Builtin() for the default rule
// set or a loaded user catalog for a customized one.
func New(defs []model.TestDefinition) (*Analyzer, error) {
	if len(defs) == 0 {
		return nil, fmt.Errorf("analyzer needs a non-empty test catalog")
	}
	if err := catalog.Validate(defs); err != nil {
		return nil, fmt.Errorf("invalid test catalog: %w", err)
	}

	owned := make([]model.TestDefinition, len(defs))
	copy(owned, defs)

	return &Analyzer{
		defs:      owned,
		extractor: extract.New(owned),
		advisor:   advise.NewAdvisor(),
	}, nil
}

// Analyze turns one document's OCR text into a structured result. It
// never fails: empty or garbage input still produces a well-formed
// result carrying the sentinel finding.
func (a *Analyzer) Analyze(rawText string) *model.AnalysisResult {
	text := normalize.Normalize(rawText)
	result := model.NewAnalysisResult(detect.ReportType(text))

	for _, def := range a.defs {
		if extracted, ok := a.extractor.Extract(text, def); ok {
			status := classify.Status(extracted.Value, def.LowNormal, def.HighNormal)
			result.Values[def.Name] = model.ResultValue{
				Value:      extracted.Value,
				Unit:       extracted.Unit,
				LowNormal:  def.LowNormal,
				HighNormal: def.HighNormal,
			}
			result.Interpretations[def.Name] = a.advisor.Interpret(def, status, extracted.Value)
			continue
		}

		if finding, ok := a.extractor.Fallback(text, def.Name); ok {
			result.Findings = append(result.Findings, finding)
		}
	}

	if len(result.Values) == 0 && len(result.Findings) == 0 {
		result.Findings = append(result.Findings, extract.SentinelFinding)
	}

	slog.Debug("analysis complete",
		"report_type", result.ReportType,
		"values", len(result.Values),
		"findings", len(result.Findings))

	return result
}

// Catalog returns a copy of the definitions this analyzer was built
// with.
func (a *Analyzer) Catalog() []model.TestDefinition {
	defs := make([]model.TestDefinition, len(a.defs))
	copy(defs, a.defs)
	return defs
}
