package analysis

import (
	"fmt"
)

// Comparison contains a statistical comparison between two latency
// samples, typically cold-cache versus warm-cache fetches.
type Comparison struct {
	Label1     string
	Label2     string
	Summary1   *Summary
	Summary2   *Summary
	EffectSize *EffectSize
	Speedup    float64
}

// Compare summarizes both samples and computes the effect size between
// them. Returns nil if either sample is empty.
func Compare(label1 string, sample1 []float64, label2 string, sample2 []float64) *Comparison {
	if len(sample1) == 0 || len(sample2) == 0 {
		return nil
	}
	return &Comparison{
		Label1:     label1,
		Label2:     label2,
		Summary1:   Summarize(sample1),
		Summary2:   Summarize(sample2),
		EffectSize: ComputeEffectSize(sample1, sample2),
		Speedup:    Speedup(sample1, sample2),
	}
}

// String returns a human-readable summary of the comparison.
func (c *Comparison) String() string {
	return fmt.Sprintf(
		"%s vs %s:\n"+
			"  %s: mean=%.2fms, median=%.2fms, p95=%.2fms\n"+
			"  %s: mean=%.2fms, median=%.2fms, p95=%.2fms\n"+
			"  Effect size: %.2f (%s)\n"+
			"  Speedup: %.1fx",
		c.Label1, c.Label2,
		c.Label1, c.Summary1.Mean, c.Summary1.Median, c.Summary1.P95,
		c.Label2, c.Summary2.Mean, c.Summary2.Median, c.Summary2.P95,
		c.EffectSize.CohensD, c.EffectSize.Interpretation,
		c.Speedup,
	)
}
