// Package detect classifies normalized report text into a report
// category via keyword voting with fixed precedence.
package detect

import (
	"strings"

	"github.com/Rekha-shivaraj/Lab-report-digitization/internal/model"
)

// keywordSet pairs a report type with the tokens that vote for it.
type keywordSet struct {
	reportType model.ReportType
	keywords   []string
}

// Sets are checked in order; the first hit wins. A report mentioning
// both EEG and ECG terms is therefore classified EEG. Anything with no
// keyword hit defaults to a lab report.
var keywordSets = []keywordSet{
	{model.ReportTypeEEG, []string{"eeg", "electroencephalogram", "spikes", "alpha", "epileptiform"}},
	{model.ReportTypeMRI, []string{"mri", "hippocampi", "ventricles", "atrophy"}},
	{model.ReportTypeECG, []string{"ecg", "ekg", "qrs", "t wave", "heart rate", "qtc"}},
}

// ReportType returns the detected category for normalized text. It is
// total: every input maps to some category.
func ReportType(text string) model.ReportType {
	for _, set := range keywordSets {
		for _, kw := range set.keywords {
			if strings.Contains(text, kw) {
				return set.reportType
			}
		}
	}
	return model.ReportTypeLab
}
