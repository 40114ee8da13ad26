// Package ocr holds text acquisition for the analyzer. Actual optical
// character recognition happens upstream; this package ships the
// reference TextSource for reports that already arrive as plain text.
package ocr

import (
	"context"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/Rekha-shivaraj/Lab-report-digitization/internal/service"
)

// PlainText implements service.TextSource for already-transcribed
// reports: it reads the stream as UTF-8, repairing any invalid byte
// sequences rather than failing.
type PlainText struct{}

var _ service.TextSource = PlainText{}

// NewPlainText creates a plain-text source.
func NewPlainText() PlainText {
	return PlainText{}
}

// ExtractText reads the full report text from r.
func (PlainText) ExtractText(ctx context.Context, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read report text: %w", err)
	}

	if utf8.Valid(data) {
		return string(data), nil
	}
	return strings.ToValidUTF8(string(data), string(utf8.RuneError)), nil
}
