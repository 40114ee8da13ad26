package cli

import (
	"testing"

	"github.com/Rekha-shivaraj/Lab-report-digitization/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestRenderAnalysis(t *testing.T) {
	result := model.NewAnalysisResult(model.ReportTypeLab)
	result.Values["Hemoglobin"] = model.ResultValue{
		Value: 10.2, Unit: "g/dL", LowNormal: 12, HighNormal: model.NewBound(17),
	}
	result.Interpretations["Hemoglobin"] = model.Interpretation{
		Status:             model.StatusLow,
		Interpretation:     "Your hemoglobin is 10.2 g/dL, below the normal range of 12-17 g/dL.",
		PreventiveMeasures: []string{"Include iron-rich foods in your diet."},
	}
	result.Findings = append(result.Findings,
		"Cholesterol was mentioned in the report but no numeric value was found.")

	out := RenderAnalysis(result)

	assert.Contains(t, out, "Lab Report")
	assert.Contains(t, out, "Hemoglobin")
	assert.Contains(t, out, "10.2")
	assert.Contains(t, out, "Low")
	assert.Contains(t, out, "iron-rich foods")
	assert.Contains(t, out, "Cholesterol was mentioned")
}

func TestRenderAnalysis_EmptyResult(t *testing.T) {
	result := model.NewAnalysisResult(model.ReportTypeLab)
	result.Findings = append(result.Findings,
		"No numeric values detected: the report text was read but exact numbers were not found.")

	out := RenderAnalysis(result)

	assert.Contains(t, out, "No test values were extracted.")
	assert.Contains(t, out, "No numeric values detected")
}
