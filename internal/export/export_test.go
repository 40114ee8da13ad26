package export

import (
	"testing"
	"time"

	"github.com/Rekha-shivaraj/Lab-report-digitization/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "service account auth",
			mutate: func(c *Config) { c.ServiceAccountPath = "/tmp/key.json" },
		},
		{
			name: "oauth auth",
			mutate: func(c *Config) {
				c.ClientID = "id"
				c.ClientSecret = "secret"
				c.RefreshToken = "token"
			},
		},
		{
			name:    "no auth configured",
			mutate:  func(*Config) {},
			wantErr: true,
		},
		{
			name: "partial oauth is not enough",
			mutate: func(c *Config) {
				c.ClientID = "id"
			},
			wantErr: true,
		},
		{
			name: "zero batch size",
			mutate: func(c *Config) {
				c.ServiceAccountPath = "/tmp/key.json"
				c.BatchSize = 0
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPrepareRows(t *testing.T) {
	result := model.NewAnalysisResult(model.ReportTypeLab)
	result.Values["Hemoglobin"] = model.ResultValue{
		Value: 10.2, Unit: "g/dL", LowNormal: 12, HighNormal: model.NewBound(17),
	}
	result.Values["HDL"] = model.ResultValue{
		Value: 65, Unit: "mg/dL", LowNormal: 40, HighNormal: model.NoUpperLimit(),
	}
	result.Interpretations["Hemoglobin"] = model.Interpretation{Status: model.StatusLow, PreventiveMeasures: []string{}}
	result.Interpretations["HDL"] = model.Interpretation{Status: model.StatusNormal, PreventiveMeasures: []string{}}
	result.Findings = append(result.Findings, "Cholesterol was mentioned in the report but no numeric value was found.")

	records := []model.AnalysisRecord{{
		ID:        "abc-123",
		Source:    "report.txt",
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Result:    *result,
	}}

	rows := prepareRows(records)

	// Header plus one row per test value.
	require.Len(t, rows, 3)
	assert.Equal(t, "Test", rows[0][4])

	// Tests are sorted by name; HDL first.
	assert.Equal(t, "HDL", rows[1][4])
	assert.Equal(t, "unbounded", rows[1][8])
	assert.Equal(t, "Normal", rows[1][9])

	assert.Equal(t, "Hemoglobin", rows[2][4])
	assert.Equal(t, "Low", rows[2][9])

	// Findings attach to the first row of the record only.
	assert.Contains(t, rows[1][10], "Cholesterol")
	assert.Equal(t, "", rows[2][10])
}

func TestPrepareRows_RecordWithNoValues(t *testing.T) {
	result := model.NewAnalysisResult(model.ReportTypeMRI)
	result.Findings = append(result.Findings,
		"No numeric values detected: the report text was read but exact numbers were not found.")

	rows := prepareRows([]model.AnalysisRecord{{ID: "x", Result: *result}})

	require.Len(t, rows, 2)
	assert.Equal(t, "MRI Report", rows[1][3])
	assert.Contains(t, rows[1][10], "No numeric values detected")
}

func TestPrepareRows_NewestFirst(t *testing.T) {
	older := model.AnalysisRecord{
		ID:        "older",
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Result:    *model.NewAnalysisResult(model.ReportTypeLab),
	}
	newer := model.AnalysisRecord{
		ID:        "newer",
		CreatedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Result:    *model.NewAnalysisResult(model.ReportTypeLab),
	}

	rows := prepareRows([]model.AnalysisRecord{older, newer})

	require.Len(t, rows, 3)
	assert.Equal(t, "newer", rows[1][1])
	assert.Equal(t, "older", rows[2][1])
}
