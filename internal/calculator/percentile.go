package calculator

import "math"

// Clamp bounds value into [min, max].
func Clamp(value, min, max float64) float64 {
	return math.Min(max, math.Max(min, value))
}

// Percentile returns the p-quantile (p in 0..1) of an ascending-sorted slice,
// linearly interpolating between the two bracketing order statistics at the
// fractional rank index (n-1)*p.
func Percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if len(sorted) == 1 {
		return sorted[0]
	}

	idx := Clamp(float64(len(sorted)-1)*p, 0, float64(len(sorted)-1))
	low := int(math.Floor(idx))
	high := int(math.Ceil(idx))
	if low == high {
		return sorted[low]
	}
	weight := idx - float64(low)
	return sorted[low]*(1-weight) + sorted[high]*weight
}
