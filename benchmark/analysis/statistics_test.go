package analysis

import (
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	sample := []float64{10, 20, 30, 40, 50}
	s := Summarize(sample)
	if s == nil {
		t.Fatal("Summarize() = nil")
	}
	if s.Count != 5 {
		t.Errorf("Count = %d, want 5", s.Count)
	}
	if s.Mean != 30 {
		t.Errorf("Mean = %v, want 30", s.Mean)
	}
	if s.Min != 10 || s.Max != 50 {
		t.Errorf("Min, Max = %v, %v, want 10, 50", s.Min, s.Max)
	}
	if s.Median != 30 {
		t.Errorf("Median = %v, want 30", s.Median)
	}
}

func TestSummarize_Empty(t *testing.T) {
	if s := Summarize(nil); s != nil {
		t.Errorf("Summarize(nil) = %+v, want nil", s)
	}
}

func TestSummarize_DoesNotMutateInput(t *testing.T) {
	sample := []float64{50, 10, 30}
	Summarize(sample)
	if sample[0] != 50 || sample[1] != 10 || sample[2] != 30 {
		t.Errorf("input mutated: %v", sample)
	}
}

func TestComputeEffectSize(t *testing.T) {
	// Clearly separated distributions produce a large effect.
	cold := []float64{100, 110, 105, 95, 102}
	warm := []float64{1, 2, 1, 3, 2}

	es := ComputeEffectSize(cold, warm)
	if es.Interpretation != "large" {
		t.Errorf("Interpretation = %q, want large", es.Interpretation)
	}
	if es.CohensD <= 0 {
		t.Errorf("CohensD = %v, want > 0 for slower first sample", es.CohensD)
	}
}

func TestComputeEffectSize_IdenticalSamples(t *testing.T) {
	sample := []float64{5, 6, 7, 8}
	es := ComputeEffectSize(sample, sample)
	if es.Interpretation != "negligible" {
		t.Errorf("Interpretation = %q, want negligible", es.Interpretation)
	}
}

func TestComputeEffectSize_Empty(t *testing.T) {
	es := ComputeEffectSize(nil, []float64{1})
	if es.Interpretation != "undefined" {
		t.Errorf("Interpretation = %q, want undefined", es.Interpretation)
	}
}

func TestSpeedup(t *testing.T) {
	cold := []float64{100, 100}
	warm := []float64{10, 10}
	if got := Speedup(cold, warm); got != 10 {
		t.Errorf("Speedup() = %v, want 10", got)
	}
	if got := Speedup(cold, []float64{0}); !math.IsInf(got, 1) {
		t.Errorf("Speedup() with zero-mean second sample = %v, want +Inf", got)
	}
}
