package simulation

import (
	"testing"
)

func TestComputeWorkloadMetrics_Uniform(t *testing.T) {
	keys := []string{"a", "b", "c", "d", "a", "b", "c", "d"}
	m := ComputeWorkloadMetrics(keys)
	if m.Lookups != 8 || m.UniqueKeys != 4 {
		t.Errorf("Lookups, UniqueKeys = %d, %d, want 8, 4", m.Lookups, m.UniqueKeys)
	}
	if m.Concentration != 0 {
		t.Errorf("Concentration = %v, want 0 for uniform traffic", m.Concentration)
	}
}

func TestComputeWorkloadMetrics_Skewed(t *testing.T) {
	// One key carries almost all traffic.
	keys := make([]string, 0, 104)
	for i := 0; i < 100; i++ {
		keys = append(keys, "hot")
	}
	keys = append(keys, "a", "b", "c", "d")

	m := ComputeWorkloadMetrics(keys)
	if m.Concentration < 0.5 {
		t.Errorf("Concentration = %v, want > 0.5 for skewed traffic", m.Concentration)
	}
	if m.TopKeyShare < 0.9 {
		t.Errorf("TopKeyShare = %v, want > 0.9", m.TopKeyShare)
	}
}

func TestComputeWorkloadMetrics_Empty(t *testing.T) {
	m := ComputeWorkloadMetrics(nil)
	if m.Lookups != 0 || m.UniqueKeys != 0 || m.Concentration != 0 {
		t.Errorf("ComputeWorkloadMetrics(nil) = %+v, want zeros", m)
	}
}

func TestRecommendCapacity(t *testing.T) {
	results := []Result{
		{Capacity: 100, Lookups: 100, Hits: 90, Misses: 10},
		{Capacity: 10, Lookups: 100, Hits: 40, Misses: 60},
		{Capacity: 50, Lookups: 100, Hits: 80, Misses: 20},
	}

	got := RecommendCapacity(results, 0.75)
	if got.Capacity != 50 {
		t.Errorf("RecommendCapacity(0.75) = %d, want 50", got.Capacity)
	}

	// Unreachable target falls back to the largest capacity tried.
	got = RecommendCapacity(results, 0.99)
	if got.Capacity != 100 {
		t.Errorf("RecommendCapacity(0.99) = %d, want 100", got.Capacity)
	}
}
