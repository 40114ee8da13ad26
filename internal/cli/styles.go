// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"github.com/Rekha-shivaraj/Lab-report-digitization/internal/model"
	"github.com/charmbracelet/lipgloss"
)

var (
	// PrimaryColor is the main theme color.
	PrimaryColor = lipgloss.Color("#4ECDC4") // Teal
	// NormalColor indicates values inside their reference range.
	NormalColor = lipgloss.Color("#4ECDC4")
	// LowColor indicates values below their reference range.
	LowColor = lipgloss.Color("#74B9FF") // Blue
	// HighColor indicates values above their reference range.
	HighColor = lipgloss.Color("#FF6B6B") // Red
	// WarningColor indicates findings and caution messages.
	WarningColor = lipgloss.Color("#FFE66D") // Yellow
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666") // Gray

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// SubtitleStyle is used for secondary headings.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			MarginBottom(1)

	// NormalStyle formats in-range values.
	NormalStyle = lipgloss.NewStyle().
			Foreground(NormalColor)

	// LowStyle formats below-range values.
	LowStyle = lipgloss.NewStyle().
			Foreground(LowColor).
			Bold(true)

	// HighStyle formats above-range values.
	HighStyle = lipgloss.NewStyle().
			Foreground(HighColor).
			Bold(true)

	// WarningStyle formats findings.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// BoldStyle makes text bold.
	BoldStyle = lipgloss.NewStyle().
			Bold(true)

	// BoxStyle is used for bordered content boxes.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333")).
			Padding(1, 2)
)

// StatusStyle returns the style for a classification status.
func StatusStyle(status model.Status) lipgloss.Style {
	switch status {
	case model.StatusLow:
		return LowStyle
	case model.StatusHigh:
		return HighStyle
	case model.StatusNormal:
		return NormalStyle
	default:
		return SubtleStyle
	}
}
