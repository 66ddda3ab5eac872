// Package analysis provides statistical analysis for fetch latency samples.
package analysis

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary describes one latency sample set, in milliseconds.
type Summary struct {
	Count  int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	Median float64
	P95    float64
	P99    float64
}

// Summarize computes summary statistics for a latency sample.
// Returns nil for an empty sample.
func Summarize(sample []float64) *Summary {
	if len(sample) == 0 {
		return nil
	}

	sorted := make([]float64, len(sample))
	copy(sorted, sample)
	sort.Float64s(sorted)

	return &Summary{
		Count:  len(sorted),
		Mean:   stat.Mean(sorted, nil),
		StdDev: stat.StdDev(sorted, nil),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		P95:    stat.Quantile(0.95, stat.Empirical, sorted, nil),
		P99:    stat.Quantile(0.99, stat.Empirical, sorted, nil),
	}
}

// EffectSize contains effect size metrics for two latency samples, e.g.
// cold-cache versus warm-cache fetch times.
type EffectSize struct {
	CohensD        float64 // (mean1 - mean2) / pooled_std.
	Interpretation string  // "negligible", "small", "medium", "large".
}

// ComputeEffectSize computes Cohen's d effect size between two samples.
func ComputeEffectSize(sample1, sample2 []float64) *EffectSize {
	if len(sample1) == 0 || len(sample2) == 0 {
		return &EffectSize{Interpretation: "undefined"}
	}

	mean1 := stat.Mean(sample1, nil)
	mean2 := stat.Mean(sample2, nil)
	std1 := stat.StdDev(sample1, nil)
	std2 := stat.StdDev(sample2, nil)

	n1 := float64(len(sample1))
	n2 := float64(len(sample2))
	pooled := math.Sqrt(((n1-1)*std1*std1 + (n2-1)*std2*std2) / (n1 + n2 - 2))

	var d float64
	if pooled > 0 {
		d = (mean1 - mean2) / pooled
	}

	return &EffectSize{
		CohensD:        d,
		Interpretation: interpretEffectSize(math.Abs(d)),
	}
}

func interpretEffectSize(d float64) string {
	switch {
	case d < 0.2:
		return "negligible"
	case d < 0.5:
		return "small"
	case d < 0.8:
		return "medium"
	default:
		return "large"
	}
}

// Speedup returns how many times faster sample2's mean is than sample1's.
// A cold/warm pair of samples yields the observed cache speedup.
func Speedup(sample1, sample2 []float64) float64 {
	if len(sample1) == 0 || len(sample2) == 0 {
		return 0
	}
	mean2 := stat.Mean(sample2, nil)
	if mean2 == 0 {
		return math.Inf(1)
	}
	return stat.Mean(sample1, nil) / mean2
}
