package detect

import (
	"testing"

	"github.com/Rekha-shivaraj/Lab-report-digitization/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestReportType(t *testing.T) {
	tests := []struct {
		name string
		text string
		want model.ReportType
	}{
		{
			name: "eeg keywords",
			text: "eeg shows no epileptiform discharges",
			want: model.ReportTypeEEG,
		},
		{
			name: "mri keywords",
			text: "mri brain: hippocampi are symmetric",
			want: model.ReportTypeMRI,
		},
		{
			name: "ecg keywords",
			text: "ecg: qrs duration within limits",
			want: model.ReportTypeECG,
		},
		{
			name: "eeg wins over mri",
			text: "mri correlation advised after electroencephalogram",
			want: model.ReportTypeEEG,
		},
		{
			name: "eeg wins over ecg",
			text: "ecg normal, eeg shows alpha rhythm",
			want: model.ReportTypeEEG,
		},
		{
			name: "mri wins over ecg",
			text: "ecg unremarkable, cortical atrophy noted",
			want: model.ReportTypeMRI,
		},
		{
			name: "no keywords defaults to lab",
			text: "hemoglobin: 10.2 g/dl",
			want: model.ReportTypeLab,
		},
		{
			name: "empty text defaults to lab",
			text: "",
			want: model.ReportTypeLab,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReportType(tt.text))
		})
	}
}
