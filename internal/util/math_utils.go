package util

import "math"

// RoundToOneDecimal rounds v to one decimal place. Used for the
// average-score aggregate shown on teacher rosters.
func RoundToOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
