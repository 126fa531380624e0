package analyzer

import "math"

// sqaleHoursPerPoint is the fixed remediation cost per cognitive
// complexity point (~9 minutes).
const sqaleHoursPerPoint = 0.15

// maintainabilityIndex computes the composite 0-100 quality score from
// Halstead volume, the cyclomatic proxy, and logical line count. The
// cyclomatic count is the intended input here, not cognitive
// complexity; standard maintainability index formulas are defined over
// cyclomatic complexity.
func maintainabilityIndex(volume float64, cyclomatic, linesOfCode int) float64 {
	// Floors avoid non-positive logarithms.
	v := math.Max(volume, 1.0)
	loc := max(linesOfCode, 1)
	cc := max(cyclomatic, 1)

	raw := 171 - 5.2*math.Log(v) - 0.23*float64(cc) - 16.2*math.Log(float64(loc))
	normalized := math.Max(0, raw*100/171)

	return round2(math.Min(100, normalized))
}

// sqaleDebtHours estimates remediation time in hours.
func sqaleDebtHours(cognitive int) float64 {
	return round2(float64(cognitive) * sqaleHoursPerPoint)
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
