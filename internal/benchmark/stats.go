package benchmark

import (
	"fmt"
	"math"
)

// One-sided z-scores for the 90th and 99th percentiles of a normal
// distribution.
const (
	z90 = 1.282
	z99 = 2.326
)

// EstimatePercentiles derives approximate P90/P99 (in nanoseconds) from
// summary statistics using a normal-distribution approximation. Latency is
// typically right-skewed, so this is a known approximation for the case
// where only summary statistics are available, not a substitute for raw
// samples. Estimates are clamped so that median <= p90 <= p99 <= max even
// when the inputs violate the usual ordering.
func EstimatePercentiles(minNs, maxNs, medianNs, meanNs, stddevNs float64) (p90, p99 float64) {
	if stddevNs <= 0 {
		// Zero variance, every sample is the median.
		return medianNs, medianNs
	}

	p90 = meanNs + z90*stddevNs
	p99 = meanNs + z99*stddevNs

	p90 = math.Min(p90, maxNs)
	p99 = math.Min(p99, maxNs)

	p90 = math.Max(p90, medianNs)
	p99 = math.Max(p99, p90)

	return p90, p99
}

// Consistency scores how stable a trace is as the complement of its
// coefficient of variation, clamped to [0, 1]. A trace with no meaningful
// mean is perfectly consistent by convention.
func Consistency(mean, stddev float64) float64 {
	if mean <= 0 {
		return 1.0
	}
	return math.Max(0.0, 1.0-stddev/mean)
}

// GeometricMean combines per-trace scores into one number without letting a
// second-scale trace drown out a microsecond-scale one. Non-positive scores
// are skipped in the product; an empty input yields 0.
func GeometricMean(scores []float64) float64 {
	if len(scores) == 0 {
		return 0.0
	}
	product := 1.0
	for _, s := range scores {
		if s > 0 {
			product *= s
		}
	}
	return math.Pow(product, 1.0/float64(len(scores)))
}

// Weights control the composite score. The score is latency-like (lower is
// better); the consistency term penalizes unstable traces in proportion to
// their mean so the penalty stays in the same unit.
type Weights struct {
	Median      float64 `mapstructure:"median"`
	P90         float64 `mapstructure:"p90"`
	Mean        float64 `mapstructure:"mean"`
	P99         float64 `mapstructure:"p99"`
	Consistency float64 `mapstructure:"consistency"`
}

// DefaultWeights returns the standard weighting scheme.
func DefaultWeights() Weights {
	return Weights{
		Median:      0.35, // P50 - typical performance
		P90:         0.25, // consistency
		Mean:        0.20, // average
		P99:         0.10, // worst case
		Consistency: 0.10, // penalty for variance
	}
}

// Sum returns the total of all weights.
func (w Weights) Sum() float64 {
	return w.Median + w.P90 + w.Mean + w.P99 + w.Consistency
}

// Validate checks that the weights form a proper weighting scheme.
func (w Weights) Validate() error {
	for _, v := range []float64{w.Median, w.P90, w.Mean, w.P99, w.Consistency} {
		if v < 0 {
			return fmt.Errorf("weights must be non-negative, got %+v", w)
		}
	}
	if s := w.Sum(); math.Abs(s-1.0) > 1e-9 {
		return fmt.Errorf("weights must sum to 1.0, got %.6f", s)
	}
	return nil
}

// Score computes the weighted composite score for a trace in milliseconds.
func (w Weights) Score(m TraceMetrics) float64 {
	return w.Median*m.MedianMs +
		w.P90*m.P90Ms +
		w.Mean*m.MeanMs +
		w.P99*m.P99Ms +
		w.Consistency*(1.0-m.Consistency)*m.MeanMs
}
