// Package classify maps an extracted value and its reference range to
// a status. The policy is total over well-formed bounds and never
// fails.
package classify

import "github.com/Rekha-shivaraj/Lab-report-digitization/internal/model"

// Status classifies value against the [lowNormal, highNormal] range.
// Both ends are inclusive for Normal. An unbounded high means no value
// at or above lowNormal is ever High, modeling tests like HDL where
// higher is better.
func Status(value, lowNormal float64, highNormal model.Bound) model.Status {
	if value < lowNormal {
		return model.StatusLow
	}
	if highNormal.Unbounded {
		return model.StatusNormal
	}
	if value > highNormal.Value {
		return model.StatusHigh
	}
	return model.StatusNormal
}
