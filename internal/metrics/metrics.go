// Package metrics reduces a combined signal vector to summary statistics.
package metrics

import "math"

// #region metrics

// Metrics summarizes a non-empty signal vector.
type Metrics struct {
	Min   float64
	Max   float64
	Mean  float64
	Count int
}

// #endregion metrics

// #region aggregate

// Aggregate computes min/max/mean/count over signals via a linear scan.
// The caller guarantees signals is non-empty. Negative values flow through
// min/max unmodified. Mean is rounded to 2 decimal places, half away
// from zero.
func Aggregate(signals []float64) Metrics {
	min := signals[0]
	max := signals[0]
	sum := 0.0
	for _, v := range signals {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		sum += v
	}

	return Metrics{
		Min:   min,
		Max:   max,
		Mean:  round2(sum / float64(len(signals))),
		Count: len(signals),
	}
}

// #endregion aggregate

// #region helpers

// round2 rounds to 2 decimal places, half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// #endregion helpers
