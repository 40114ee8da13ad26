package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAnalysisResult_EmptyEncodesAsObjects(t *testing.T) {
	result := NewAnalysisResult(ReportTypeLab)

	data, err := json.Marshal(result)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"report_type": "Lab Report",
		"values": {},
		"interpretations": {},
		"findings": []
	}`, string(data))
}

func TestAnalysisResult_Validate(t *testing.T) {
	result := NewAnalysisResult(ReportTypeLab)
	result.Values["Hemoglobin"] = ResultValue{Value: 10.2, Unit: "g/dL", LowNormal: 12, HighNormal: NewBound(17)}
	result.Interpretations["Hemoglobin"] = Interpretation{Status: StatusLow, PreventiveMeasures: []string{}}

	assert.NoError(t, result.Validate())

	result.Values["HDL"] = ResultValue{Value: 65, Unit: "mg/dL", LowNormal: 40, HighNormal: NoUpperLimit()}
	err := result.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "diverge")
}

func TestAnalysisResult_ValueEncoding(t *testing.T) {
	result := NewAnalysisResult(ReportTypeLab)
	result.Values["HDL"] = ResultValue{Value: 65, Unit: "mg/dL", LowNormal: 40, HighNormal: NoUpperLimit()}
	result.Interpretations["HDL"] = Interpretation{
		Status:             StatusNormal,
		Interpretation:     "HDL is Normal at 65 mg/dL.",
		PreventiveMeasures: []string{},
	}

	data, err := json.Marshal(result)
	require.NoError(t, err)

	assert.Contains(t, string(data), `"high_normal":"unbounded"`)
	assert.Contains(t, string(data), `"preventive_measures":[]`)
}
