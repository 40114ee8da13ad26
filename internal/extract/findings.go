package extract

import (
	"fmt"
	"strings"
)

// SentinelFinding is emitted when an entire document yields no
// classified results and no per-test findings.
const SentinelFinding = "No numeric values detected: the report text was read but exact numbers were not found."

// Fallback runs the flexible match for a test whose strict extraction
// produced no accepted value. Two sub-cases, in order: the test name
// followed anywhere later in the text by a numeric token yields a
// "requires verification" note; a bare mention with no number after it
// yields a "no numeric value" note. If the name never appears the test
// is simply absent and ok is false.
//
// Presence is naive lowercased substring matching, which can
// over-trigger on short test names; that is accepted as an
// approximation rather than patched.
func (e *Extractor) Fallback(text, testName string) (finding string, ok bool) {
	lower, known := e.name[testName]
	if !known {
		return "", false
	}

	if m := e.loose[testName].FindStringSubmatch(text); m != nil {
		return fmt.Sprintf("%s: possible value %s found near the test name, requires verification against the original report.", testName, m[1]), true
	}

	if strings.Contains(text, lower) {
		return fmt.Sprintf("%s was mentioned in the report but no numeric value was found.", testName), true
	}

	return "", false
}
