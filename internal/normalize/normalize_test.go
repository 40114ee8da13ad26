package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty input stays empty",
			input: "",
			want:  "",
		},
		{
			name:  "lowercases text",
			input: "HEMOGLOBIN: 10.2 G/DL",
			want:  "hemoglobin: 10.2 g/dl",
		},
		{
			name:  "collapses whitespace runs",
			input: "hemoglobin   \t 10.2",
			want:  "hemoglobin 10.2",
		},
		{
			name:  "collapses newline runs",
			input: "hemoglobin 10.2\n\n  \ncreatinine 1.1",
			want:  "hemoglobin 10.2\ncreatinine 1.1",
		},
		{
			name:  "pipe next to letters becomes l",
			input: "p|atelet count 210000",
			want:  "platelet count 210000",
		},
		{
			name:  "zero between letters becomes o",
			input: "hem0globin 10.2",
			want:  "hemoglobin 10.2",
		},
		{
			name:  "o between digits becomes zero",
			input: "platelets 21o000",
			want:  "platelets 210000",
		},
		{
			name:  "l between digits becomes one",
			input: "wbc count 7l00",
			want:  "wbc count 7100",
		},
		{
			name:  "i between digits becomes one",
			input: "glucose 1i2",
			want:  "glucose 112",
		},
		{
			name:  "ligature decomposed before matching",
			input: "ﬁnding: glucose 98",
			want:  "finding: glucose 98",
		},
		{
			name:  "trims surrounding whitespace",
			input: "  hdl 65 mg/dl \n",
			want:  "hdl 65 mg/dl",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	input := "HEM0GLOBIN:   10.2  G/DL\n\n\nHDL  65"
	once := Normalize(input)
	assert.Equal(t, once, Normalize(once))
}
