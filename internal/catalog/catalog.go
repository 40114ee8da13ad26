// Package catalog provides the test catalog driving extraction: the
// built-in rule set plus YAML load/save so the catalog can be edited
// as versioned static data without touching extraction code.
package catalog

import (
	"fmt"
	"os"

	"github.com/Rekha-shivaraj/Lab-report-digitization/internal/model"
	"gopkg.in/yaml.v3"
)

// File is the on-disk shape of a catalog document.
type File struct {
	Version int                    `yaml:"version"`
	Tests   []model.TestDefinition `yaml:"tests"`
}

// CurrentVersion is the catalog file format version this build writes.
const CurrentVersion = 1

// Validate checks every definition and rejects duplicate test names.
func Validate(defs []model.TestDefinition) error {
	seen := make(map[string]bool, len(defs))
	for i := range defs {
		if err := defs[i].Validate(); err != nil {
			return err
		}
		if seen[defs[i].Name] {
			return fmt.Errorf("duplicate test name %q", defs[i].Name)
		}
		seen[defs[i].Name] = true
	}
	return nil
}

// Load reads and validates a catalog YAML file.
func Load(path string) ([]model.TestDefinition, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-supplied catalog path
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}
	if file.Version > CurrentVersion {
		return nil, fmt.Errorf("catalog version %d is newer than supported version %d", file.Version, CurrentVersion)
	}
	if len(file.Tests) == 0 {
		return nil, fmt.Errorf("catalog file contains no tests")
	}

	if err := Validate(file.Tests); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	return file.Tests, nil
}

// Save writes definitions to a catalog YAML file.
func Save(path string, defs []model.TestDefinition) error {
	if err := Validate(defs); err != nil {
		return fmt.Errorf("refusing to save invalid catalog: %w", err)
	}

	data, err := yaml.Marshal(File{Version: CurrentVersion, Tests: defs})
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write catalog file: %w", err)
	}
	return nil
}
