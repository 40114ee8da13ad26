package classify

import (
	"testing"

	"github.com/Rekha-shivaraj/Lab-report-digitization/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name  string
		high  model.Bound
		value float64
		low   float64
		want  model.Status
	}{
		{name: "below range", value: 10.2, low: 12, high: model.NewBound(17), want: model.StatusLow},
		{name: "inside range", value: 14, low: 12, high: model.NewBound(17), want: model.StatusNormal},
		{name: "above range", value: 18.5, low: 12, high: model.NewBound(17), want: model.StatusHigh},
		{name: "exactly at low bound is normal", value: 12, low: 12, high: model.NewBound(17), want: model.StatusNormal},
		{name: "exactly at high bound is normal", value: 17, low: 12, high: model.NewBound(17), want: model.StatusNormal},
		{name: "just below low bound", value: 11.999, low: 12, high: model.NewBound(17), want: model.StatusLow},
		{name: "just above high bound", value: 17.001, low: 12, high: model.NewBound(17), want: model.StatusHigh},
		{name: "unbounded high at low bound", value: 40, low: 40, high: model.NoUpperLimit(), want: model.StatusNormal},
		{name: "unbounded high never classifies high", value: 10000, low: 40, high: model.NoUpperLimit(), want: model.StatusNormal},
		{name: "unbounded high still classifies low", value: 32, low: 40, high: model.NoUpperLimit(), want: model.StatusLow},
		{name: "zero width range", value: 0, low: 0, high: model.NewBound(0), want: model.StatusNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Status(tt.value, tt.low, tt.high))
		})
	}
}
