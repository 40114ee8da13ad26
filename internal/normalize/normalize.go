// Package normalize cleans raw OCR text before extraction: Unicode
// normalization, case folding, whitespace collapsing, and a small set
// of character-confusion corrections for known OCR failure modes.
//
// The confusion corrections are heuristic and can occasionally alter
// genuine text; that is an accepted trade-off for cleaner numeric
// extraction downstream.
package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	spaceRun   = regexp.MustCompile(`[ \t\r\f\v]+`)
	newlineRun = regexp.MustCompile(` ?\n[\n ]*`)
)

// Normalize applies the full cleanup pass in fixed order. It is a pure
// function: empty input comes back empty, and it never fails.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	// NFKC folds ligatures (ﬁ → fi) and width variants that OCR
	// engines emit for scanned print.
	text := norm.NFKC.String(raw)
	text = strings.ToLower(text)
	text = spaceRun.ReplaceAllString(text, " ")
	text = newlineRun.ReplaceAllString(text, "\n")
	text = fixConfusions(text)

	return strings.TrimSpace(text)
}

// fixConfusions rewrites characters OCR commonly misreads, using the
// immediate neighbors to decide: a pipe next to letters is a lost "l",
// a zero between letters is "o", and letter shapes between digits are
// really digits.
func fixConfusions(s string) string {
	rs := []rune(s)
	out := make([]rune, len(rs))
	copy(out, rs)

	var prev, next rune
	for i, r := range rs {
		prev, next = 0, 0
		if i > 0 {
			prev = rs[i-1]
		}
		if i < len(rs)-1 {
			next = rs[i+1]
		}

		switch r {
		case '|':
			if isLetter(prev) || isLetter(next) {
				out[i] = 'l'
			}
		case '0':
			if isLetter(prev) && isLetter(next) {
				out[i] = 'o'
			}
		case 'o':
			if isDigit(prev) && isDigit(next) {
				out[i] = '0'
			}
		case 'l', 'i':
			if isDigit(prev) && isDigit(next) {
				out[i] = '1'
			}
		}
	}

	return string(out)
}

func isLetter(r rune) bool {
	return r >= 'a' && r <= 'z'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
