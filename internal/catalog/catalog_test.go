package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Rekha-shivaraj/Lab-report-digitization/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltin_IsValid(t *testing.T) {
	defs := Builtin()

	require.NotEmpty(t, defs)
	assert.NoError(t, Validate(defs))
}

func TestBuiltin_CarriesScenarioBounds(t *testing.T) {
	byName := make(map[string]model.TestDefinition)
	for _, def := range Builtin() {
		byName[def.Name] = def
	}

	hgb, ok := byName["Hemoglobin"]
	require.True(t, ok)
	assert.Equal(t, 12.0, hgb.LowNormal)
	assert.Equal(t, model.NewBound(17), hgb.HighNormal)
	assert.Equal(t, "g/dL", hgb.Unit)

	hdl, ok := byName["HDL"]
	require.True(t, ok)
	assert.Equal(t, 40.0, hdl.LowNormal)
	assert.True(t, hdl.HighNormal.Unbounded)

	qtc, ok := byName["QTc Interval"]
	require.True(t, ok)
	assert.Equal(t, 350.0, qtc.LowNormal)
	assert.Equal(t, model.NewBound(460), qtc.HighNormal)
	assert.Equal(t, "ms", qtc.Unit)
}

func TestValidate_RejectsDuplicates(t *testing.T) {
	defs := Builtin()
	defs = append(defs, defs[0])

	err := Validate(defs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate test name")
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")

	require.NoError(t, Save(path, Builtin()))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Builtin(), loaded)
}

func TestLoad_RejectsBadFiles(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "not yaml",
			content: "{{{",
			wantErr: "failed to parse",
		},
		{
			name:    "empty catalog",
			content: "version: 1\ntests: []\n",
			wantErr: "no tests",
		},
		{
			name:    "future version",
			content: "version: 99\ntests:\n  - name: X\n",
			wantErr: "newer than supported",
		},
		{
			name: "invalid definition",
			content: `version: 1
tests:
  - name: Hemoglobin
    unit: g/dL
    synonyms: [hemoglobin]
    low_normal: 17
    high_normal: 12
    plausible_min: 3
    plausible_max: 25
`,
			wantErr: "invalid catalog",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0600))

			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
