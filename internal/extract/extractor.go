// Package extract binds numeric tokens in normalized report text to
// catalog tests. Strict extraction tries each synonym pattern in
// catalog order; the flexible fallback produces advisory findings for
// tests that were mentioned but never yielded an accepted value.
package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Rekha-shivaraj/Lab-report-digitization/internal/model"
)

// numberToken matches a numeric literal with optional thousands
// separators and decimal points. OCR artifacts can produce more than
// one dot; parseNumber resolves those.
const numberToken = `([0-9]+(?:[.,][0-9]+)*)`

// Extractor evaluates catalog synonym patterns against normalized
// text. Patterns are compiled once at construction and the extractor
// is safe for concurrent use.
type Extractor struct {
	strict map[string][]*regexp.Regexp
	loose  map[string]*regexp.Regexp
	name   map[string]string
}

// New creates an extractor with precompiled patterns for every
// definition. Synonym order is preserved: it is the precedence order.
func New(defs []model.TestDefinition) *Extractor {
	e := &Extractor{
		strict: make(map[string][]*regexp.Regexp, len(defs)),
		loose:  make(map[string]*regexp.Regexp, len(defs)),
		name:   make(map[string]string, len(defs)),
	}

	for _, def := range defs {
		patterns := make([]*regexp.Regexp, 0, len(def.Synonyms))
		for _, syn := range def.Synonyms {
			patterns = append(patterns, compileSynonym(syn))
		}
		e.strict[def.Name] = patterns

		lower := strings.ToLower(def.Name)
		e.name[def.Name] = lower
		e.loose[def.Name] = regexp.MustCompile(regexp.QuoteMeta(lower) + `\D*?` + numberToken)
	}

	return e
}

// compileSynonym builds the strict pattern for one synonym: the
// synonym token, an optional separator, an optional comparison prefix,
// then a numeric literal. The left boundary keeps short synonyms from
// matching inside longer words.
func compileSynonym(syn string) *regexp.Regexp {
	return regexp.MustCompile(`(?:^|[^a-z0-9])` + regexp.QuoteMeta(strings.ToLower(syn)) + `\s*[:=-]?\s*[<>]?\s*` + numberToken)
}

// Extract scans normalized text for a value bound to the given test.
// Synonyms are tried in catalog order and the first one yielding a
// syntactically valid number wins; later synonyms are not consulted
// even if the winner's value is then rejected as implausible.
func (e *Extractor) Extract(text string, def model.TestDefinition) (model.ExtractedValue, bool) {
	for _, re := range e.strict[def.Name] {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		value, ok := parseNumber(m[1])
		if !ok {
			continue
		}

		// Implausible values are OCR noise: discard and let the
		// flexible fallback surface a lower-confidence finding.
		if !def.Plausible(value) {
			return model.ExtractedValue{}, false
		}

		return model.ExtractedValue{
			TestName: def.Name,
			Value:    value,
			Unit:     def.Unit,
		}, true
	}

	return model.ExtractedValue{}, false
}

// parseNumber converts a matched numeric token to a float64. Commas
// are thousands separators and are dropped. When OCR produces more
// than one decimal point, all but the first collapse into digits, so
// "10.2.3" reads as 10.23 rather than losing the fraction.
func parseNumber(token string) (float64, bool) {
	token = strings.TrimSpace(token)
	token = strings.TrimLeft(token, "<>")
	token = strings.TrimRight(token, "%")
	token = strings.ReplaceAll(token, ",", "")

	if strings.Count(token, ".") > 1 {
		first := strings.Index(token, ".")
		token = token[:first+1] + strings.ReplaceAll(token[first+1:], ".", "")
	}

	value, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
