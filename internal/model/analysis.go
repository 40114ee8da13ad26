package model

import (
	"fmt"
	"time"
)

// ExtractedValue is one numeric token successfully bound to a catalog
// test during extraction.
type ExtractedValue struct {
	TestName string
	Unit     string
	Value    float64
}

// ResultValue is the wire form of an accepted value together with the
// reference range it was classified against.
type ResultValue struct {
	Unit       string  `json:"unit"`
	Value      float64 `json:"value"`
	LowNormal  float64 `json:"low_normal"`
	HighNormal Bound   `json:"high_normal"`
}

// Interpretation carries the classification outcome for one test plus
// the generated explanation and advice.
type Interpretation struct {
	Status             Status   `json:"status"`
	Interpretation     string   `json:"interpretation"`
	PreventiveMeasures []string `json:"preventive_measures"`
}

// AnalysisResult is the aggregate produced for one analyzed document.
// It is immutable after construction; Values and Interpretations share
// identical key sets, and Findings never mentions a key present in
// Values.
type AnalysisResult struct {
	ReportType      ReportType                `json:"report_type"`
	Values          map[string]ResultValue    `json:"values"`
	Interpretations map[string]Interpretation `json:"interpretations"`
	Findings        []string                  `json:"findings"`
}

// NewAnalysisResult returns an empty result with maps allocated so the
// JSON encoding always emits objects, never null.
func NewAnalysisResult(reportType ReportType) *AnalysisResult {
	return &AnalysisResult{
		ReportType:      reportType,
		Values:          make(map[string]ResultValue),
		Interpretations: make(map[string]Interpretation),
		Findings:        []string{},
	}
}

// Validate checks the structural invariants of the aggregate.
func (r *AnalysisResult) Validate() error {
	if len(r.Values) != len(r.Interpretations) {
		return fmt.Errorf("values and interpretations diverge: %d vs %d entries", len(r.Values), len(r.Interpretations))
	}
	for name := range r.Values {
		if _, ok := r.Interpretations[name]; !ok {
			return fmt.Errorf("test %q has a value but no interpretation", name)
		}
	}
	return nil
}

// AnalysisRecord is a persisted analysis as stored by the persistence
// collaborator: the result plus identity and provenance.
type AnalysisRecord struct {
	CreatedAt time.Time
	ID        string
	Source    string
	Result    AnalysisResult
}
