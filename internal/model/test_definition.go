package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// unboundedToken is the wire representation of a missing upper limit.
const unboundedToken = "unbounded"

// Bound is a numeric reference limit that may be absent entirely,
// modeling tests like HDL where no upper limit exists and higher
// values are never abnormal. It serializes as a plain number or the
// string "unbounded".
type Bound struct {
	Value     float64
	Unbounded bool
}

// NewBound returns a finite bound at the given value.
func NewBound(v float64) Bound {
	return Bound{Value: v}
}

// NoUpperLimit returns the unbounded sentinel.
func NoUpperLimit() Bound {
	return Bound{Unbounded: true}
}

func (b Bound) String() string {
	if b.Unbounded {
		return unboundedToken
	}
	return strconv.FormatFloat(b.Value, 'f', -1, 64)
}

// MarshalJSON encodes a finite bound as a number and an unbounded one
// as the string "unbounded".
func (b Bound) MarshalJSON() ([]byte, error) {
	if b.Unbounded {
		return json.Marshal(unboundedToken)
	}
	return json.Marshal(b.Value)
}

// UnmarshalJSON accepts either a number or the string "unbounded".
func (b *Bound) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s != unboundedToken {
			return fmt.Errorf("invalid bound %q: expected a number or %q", s, unboundedToken)
		}
		*b = Bound{Unbounded: true}
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("invalid bound: %w", err)
	}
	*b = Bound{Value: v}
	return nil
}

// MarshalYAML mirrors the JSON encoding for catalog files.
func (b Bound) MarshalYAML() (any, error) {
	if b.Unbounded {
		return unboundedToken, nil
	}
	return b.Value, nil
}

// UnmarshalYAML accepts either a number or the string "unbounded".
func (b *Bound) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err == nil {
		if s != unboundedToken {
			return fmt.Errorf("invalid bound %q: expected a number or %q", s, unboundedToken)
		}
		*b = Bound{Unbounded: true}
		return nil
	}

	var v float64
	if err := unmarshal(&v); err != nil {
		return fmt.Errorf("invalid bound: %w", err)
	}
	*b = Bound{Value: v}
	return nil
}

// TestDefinition is one immutable catalog entry driving extraction and
// classification for a single lab test. Definitions are built once at
// startup and shared read-only across concurrent analyses.
type TestDefinition struct {
	Name         string   `json:"name" yaml:"name"`
	Unit         string   `json:"unit" yaml:"unit"`
	Synonyms     []string `json:"synonyms" yaml:"synonyms"`
	LowNormal    float64  `json:"low_normal" yaml:"low_normal"`
	HighNormal   Bound    `json:"high_normal" yaml:"high_normal"`
	PlausibleMin float64  `json:"plausible_min" yaml:"plausible_min"`
	PlausibleMax float64  `json:"plausible_max" yaml:"plausible_max"`
}

// Validate ensures the definition has usable data.
func (d *TestDefinition) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("test name is required")
	}

	if len(d.Synonyms) == 0 {
		return fmt.Errorf("test %q needs at least one synonym", d.Name)
	}
	for i, syn := range d.Synonyms {
		if strings.TrimSpace(syn) == "" {
			return fmt.Errorf("test %q has an empty synonym at position %d", d.Name, i)
		}
	}

	if !d.HighNormal.Unbounded && d.LowNormal > d.HighNormal.Value {
		return fmt.Errorf("test %q: low normal %g exceeds high normal %g", d.Name, d.LowNormal, d.HighNormal.Value)
	}

	if d.PlausibleMin > d.PlausibleMax {
		return fmt.Errorf("test %q: plausible min %g exceeds plausible max %g", d.Name, d.PlausibleMin, d.PlausibleMax)
	}
	if d.LowNormal < d.PlausibleMin {
		return fmt.Errorf("test %q: low normal %g below plausible min %g", d.Name, d.LowNormal, d.PlausibleMin)
	}
	if !d.HighNormal.Unbounded && d.HighNormal.Value > d.PlausibleMax {
		return fmt.Errorf("test %q: high normal %g above plausible max %g", d.Name, d.HighNormal.Value, d.PlausibleMax)
	}

	return nil
}

// Plausible reports whether a parsed value falls inside the sanity
// envelope. Values outside it are treated as OCR noise, not results.
func (d *TestDefinition) Plausible(v float64) bool {
	return v >= d.PlausibleMin && v <= d.PlausibleMax
}

// ReferenceRange renders the normal range for display, e.g.
// "12-17 g/dL" or "40 mg/dL or above" for unbounded tests.
func (d *TestDefinition) ReferenceRange() string {
	low := strconv.FormatFloat(d.LowNormal, 'f', -1, 64)
	if d.HighNormal.Unbounded {
		return fmt.Sprintf("%s %s or above", low, d.Unit)
	}
	return fmt.Sprintf("%s-%s %s", low, d.HighNormal.String(), d.Unit)
}
