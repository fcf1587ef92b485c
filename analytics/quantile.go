package analytics

import "sort"

// Quantile returns the q-th quantile of values using index-based selection
// (no interpolation): the element at floor(len*q) of the ascending-sorted
// input, clamped to a valid index. An empty input yields 0.
func Quantile(values []float64, q float64) float64 {
	if len(values) == 0 {
		return 0
	}

	// Work on a copy to avoid mutating the caller's slice.
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	idx := int(float64(len(sorted)) * q)
	if idx < 0 {
		idx = 0
	}
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}
