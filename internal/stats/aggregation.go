package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Mean calculates the arithmetic mean of a slice of float64 values.
// Returns 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return stat.Mean(values, nil)
}

// Median calculates the empirical 0.5 quantile of a slice of float64
// values. Returns 0 for an empty slice.
func Median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	return stat.Quantile(0.5, stat.Empirical, sorted, nil)
}

// Histogram holds equal-width bucket counts over a value range. Dividers
// has one more element than Counts; bucket i covers
// [Dividers[i], Dividers[i+1]).
type Histogram struct {
	Dividers []float64 `json:"dividers"`
	Counts   []float64 `json:"counts"`
}

// NewHistogram buckets values into the given number of equal-width bins.
// Returns nil when there are no values or no bins.
func NewHistogram(values []float64, bins int) *Histogram {
	if len(values) == 0 || bins < 1 {
		return nil
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	lo := sorted[0]
	hi := sorted[len(sorted)-1]
	if lo == hi {
		// All values identical: a single degenerate bucket.
		return &Histogram{
			Dividers: []float64{lo, hi},
			Counts:   []float64{float64(len(sorted))},
		}
	}

	dividers := make([]float64, bins+1)
	width := (hi - lo) / float64(bins)
	for i := range dividers {
		dividers[i] = lo + width*float64(i)
	}
	// The maximum value must fall strictly below the last divider for
	// stat.Histogram to count it.
	dividers[bins] = math.Nextafter(hi, math.Inf(1))

	counts := stat.Histogram(nil, dividers, sorted, nil)
	return &Histogram{Dividers: dividers, Counts: counts}
}
