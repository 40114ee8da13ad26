package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/Rekha-shivaraj/Lab-report-digitization/internal/model"
)

// RenderAnalysis renders one analysis result for the terminal.
func RenderAnalysis(result *model.AnalysisResult) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(string(result.ReportType)))
	b.WriteString("\n")

	if len(result.Values) == 0 {
		b.WriteString(SubtleStyle.Render("No test values were extracted."))
		b.WriteString("\n")
	} else {
		names := make([]string, 0, len(result.Values))
		for name := range result.Values {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			value := result.Values[name]
			interp := result.Interpretations[name]

			b.WriteString(fmt.Sprintf("%s  %s %s  %s  %s\n",
				BoldStyle.Render(name),
				formatNumber(value.Value),
				value.Unit,
				StatusStyle(interp.Status).Render(string(interp.Status)),
				SubtleStyle.Render(fmt.Sprintf("(normal: %s-%s)", formatNumber(value.LowNormal), value.HighNormal.String())),
			))
			b.WriteString("  " + interp.Interpretation + "\n")
			for _, advice := range interp.PreventiveMeasures {
				b.WriteString(SubtleStyle.Render("  • "+advice) + "\n")
			}
		}
	}

	if len(result.Findings) > 0 {
		b.WriteString("\n")
		b.WriteString(SubtitleStyle.Render("Findings"))
		b.WriteString("\n")
		for _, finding := range result.Findings {
			b.WriteString(WarningStyle.Render("  ! "+finding) + "\n")
		}
	}

	return b.String()
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
