// Package advise generates the human-readable half of an analysis:
// per-test interpretation text and preventive advice. Both are pure
// lookups in a table keyed by (test name, status); combinations
// without an authored entry resolve to a generic templated sentence
// and an empty advice list, which is the documented default rather
// than a gap.
package advise

import (
	"strconv"
	"strings"

	"github.com/Rekha-shivaraj/Lab-report-digitization/internal/model"
)

// key identifies one authored table entry.
type key struct {
	Test   string
	Status model.Status
}

// entry holds an interpretation template and its advice list.
// Templates interpolate the caller-supplied value and bounds via
// {test}, {value}, {unit}, {low}, {high} and {range} placeholders so
// generated text always reflects the actual report.
type entry struct {
	interpretation string
	advice         []string
}

// Advisor resolves (test, status) pairs against the authored table.
// The table is built once and shared read-only across analyses.
type Advisor struct {
	entries map[key]entry
}

// NewAdvisor returns an advisor over the built-in authored table.
func NewAdvisor() *Advisor {
	return &Advisor{entries: authoredEntries()}
}

// Interpret produces the interpretation for one classified value.
// PreventiveMeasures is always non-nil.
func (a *Advisor) Interpret(def model.TestDefinition, status model.Status, value float64) model.Interpretation {
	if e, ok := a.entries[key{Test: def.Name, Status: status}]; ok {
		advice := make([]string, len(e.advice))
		copy(advice, e.advice)
		return model.Interpretation{
			Status:             status,
			Interpretation:     expand(e.interpretation, def, status, value),
			PreventiveMeasures: advice,
		}
	}

	return model.Interpretation{
		Status:             status,
		Interpretation:     expand(genericTemplate, def, status, value),
		PreventiveMeasures: []string{},
	}
}

// genericTemplate is the fallback for any combination the table does
// not author.
const genericTemplate = "{test} is {status} at {value} {unit} (normal: {range}). Further medical evaluation recommended."

func expand(tpl string, def model.TestDefinition, status model.Status, value float64) string {
	r := strings.NewReplacer(
		"{test}", def.Name,
		"{status}", string(status),
		"{value}", formatNumber(value),
		"{unit}", def.Unit,
		"{low}", formatNumber(def.LowNormal),
		"{high}", def.HighNormal.String(),
		"{range}", def.ReferenceRange(),
	)
	return r.Replace(tpl)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
