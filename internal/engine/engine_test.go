package engine

import (
	"sync"
	"testing"

	"github.com/Rekha-shivaraj/Lab-report-digitization/internal/catalog"
	"github.com/Rekha-shivaraj/Lab-report-digitization/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	a, err := New(catalog.Builtin())
	require.NoError(t, err)
	return a
}

func TestNew_RejectsBadCatalogs(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)

	defs := catalog.Builtin()
	defs[0].Synonyms = nil
	_, err = New(defs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid test catalog")
}

func TestAnalyze_LowHemoglobin(t *testing.T) {
	a := newAnalyzer(t)

	result := a.Analyze("hemoglobin: 10.2 g/dl")

	require.Contains(t, result.Values, "Hemoglobin")
	value := result.Values["Hemoglobin"]
	assert.InDelta(t, 10.2, value.Value, 1e-9)
	assert.Equal(t, "g/dL", value.Unit)
	assert.InDelta(t, 12, value.LowNormal, 1e-9)
	assert.Equal(t, model.NewBound(17), value.HighNormal)

	require.Contains(t, result.Interpretations, "Hemoglobin")
	assert.Equal(t, model.StatusLow, result.Interpretations["Hemoglobin"].Status)
}

func TestAnalyze_UnboundedHDLIsNormal(t *testing.T) {
	a := newAnalyzer(t)

	result := a.Analyze("hdl 65 mg/dl")

	require.Contains(t, result.Interpretations, "HDL")
	assert.Equal(t, model.StatusNormal, result.Interpretations["HDL"].Status)
	assert.True(t, result.Values["HDL"].HighNormal.Unbounded)
}

func TestAnalyze_MentionWithoutValueBecomesFinding(t *testing.T) {
	a := newAnalyzer(t)

	result := a.Analyze("cholesterol panel was ordered but results are awaited")

	assert.NotContains(t, result.Values, "Cholesterol")
	assert.Contains(t, result.Findings,
		"Cholesterol was mentioned in the report but no numeric value was found.")
}

func TestAnalyze_EmptyInputYieldsSentinelFinding(t *testing.T) {
	a := newAnalyzer(t)

	result := a.Analyze("")

	assert.Empty(t, result.Values)
	assert.Empty(t, result.Interpretations)
	assert.Equal(t, []string{
		"No numeric values detected: the report text was read but exact numbers were not found.",
	}, result.Findings)
}

func TestAnalyze_HighQTcInterpretationCarriesValueAndUnit(t *testing.T) {
	a := newAnalyzer(t)

	result := a.Analyze("qtc interval: 520 ms")

	require.Contains(t, result.Interpretations, "QTc Interval")
	interp := result.Interpretations["QTc Interval"]
	assert.Equal(t, model.StatusHigh, interp.Status)
	assert.Contains(t, interp.Interpretation, "520")
	assert.Contains(t, interp.Interpretation, "ms")
	assert.Equal(t, model.ReportTypeECG, result.ReportType)
}

func TestAnalyze_ImplausibleValueOnlySurfacesAsFinding(t *testing.T) {
	a := newAnalyzer(t)

	result := a.Analyze("hemoglobin: 102 g/dl")

	assert.NotContains(t, result.Values, "Hemoglobin")
	require.Len(t, result.Findings, 1)
	assert.Contains(t, result.Findings[0], "Hemoglobin")
	assert.Contains(t, result.Findings[0], "requires verification")
}

func TestAnalyze_OCRArtifactsAreCorrected(t *testing.T) {
	a := newAnalyzer(t)

	result := a.Analyze("HEM0GLOBIN:   10.2  G/DL")

	require.Contains(t, result.Values, "Hemoglobin")
	assert.InDelta(t, 10.2, result.Values["Hemoglobin"].Value, 1e-9)
}

func TestAnalyze_ReportTypeDetection(t *testing.T) {
	a := newAnalyzer(t)

	assert.Equal(t, model.ReportTypeEEG,
		a.Analyze("eeg with mri correlation: alpha rhythm preserved").ReportType)
	assert.Equal(t, model.ReportTypeLab,
		a.Analyze("hemoglobin: 10.2 g/dl").ReportType)
}

func TestAnalyze_InvariantsHoldAcrossMixedInput(t *testing.T) {
	a := newAnalyzer(t)

	text := "hemoglobin: 10.2 g/dl\n" +
		"hdl 65 mg/dl\n" +
		"platelet count 9,000,000 /cumm\n" + // implausible
		"fasting glucose: 126 mg/dl\n" +
		"cholesterol pending" // no digits after, so a bare mention

	result := a.Analyze(text)
	require.NoError(t, result.Validate())

	// Values and interpretations share key sets.
	for name := range result.Values {
		assert.Contains(t, result.Interpretations, name)
	}

	// A finding never duplicates a key present in values.
	for name := range result.Values {
		for _, finding := range result.Findings {
			assert.NotContains(t, finding, name)
		}
	}

	assert.Contains(t, result.Values, "Fasting Glucose")
	assert.Equal(t, model.StatusHigh, result.Interpretations["Fasting Glucose"].Status)
	assert.NotContains(t, result.Values, "Platelet Count")
}

func TestAnalyze_SafeForConcurrentUse(t *testing.T) {
	a := newAnalyzer(t)
	texts := []string{
		"hemoglobin: 10.2 g/dl",
		"hdl 65 mg/dl",
		"qtc interval: 520 ms",
		"",
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(text string) {
			defer wg.Done()
			result := a.Analyze(text)
			assert.NoError(t, result.Validate())
		}(texts[i%len(texts)])
	}
	wg.Wait()
}

func TestAnalyze_Deterministic(t *testing.T) {
	a := newAnalyzer(t)
	text := "hemoglobin: 10.2 g/dl\nhdl 65 mg/dl\ncholesterol pending"

	first := a.Analyze(text)
	second := a.Analyze(text)
	assert.Equal(t, first, second)
}
