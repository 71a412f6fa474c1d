package recommend

import "strconv"

// Score is a match percentage held as tenths of a percent, so 667 is 66.7%.
type Score int

const (
	MinScore Score = 0
	MaxScore Score = 1000
)

// ComputeScore returns matched/required as a percentage rounded half-up to one
// decimal place. A job with no required skills scores exactly zero.
func ComputeScore(matched, required int) Score {
	if required <= 0 || matched <= 0 {
		return MinScore
	}
	if matched >= required {
		return MaxScore
	}
	// round(1000*m/r) with halves going up, in integers
	return Score((2000*matched + required) / (2 * required))
}

func (s Score) Float64() float64 {
	return float64(s) / 10
}

func (s Score) String() string {
	return strconv.FormatFloat(s.Float64(), 'f', 1, 64)
}
