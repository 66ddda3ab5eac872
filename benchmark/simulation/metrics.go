package simulation

import (
	"sort"
)

// WorkloadMetrics describes how skewed a key-access sequence is.
// Skew is what makes a small cache effective: the more traffic the hot
// keys carry, the less capacity is needed for a given hit rate.
type WorkloadMetrics struct {
	Lookups    int
	UniqueKeys int

	// Concentration is the Gini coefficient of per-key lookup counts.
	// 0 means uniform traffic, values near 1 mean a few keys dominate.
	Concentration float64

	// TopKeyShare is the fraction of lookups going to the hottest 10%
	// of keys.
	TopKeyShare float64
}

// ComputeWorkloadMetrics computes skew metrics for a key sequence.
func ComputeWorkloadMetrics(keys []string) *WorkloadMetrics {
	counts := make(map[string]int)
	for _, k := range keys {
		counts[k]++
	}

	m := &WorkloadMetrics{
		Lookups:    len(keys),
		UniqueKeys: len(counts),
	}
	if len(counts) == 0 {
		return m
	}

	values := make([]int, 0, len(counts))
	for _, v := range counts {
		values = append(values, v)
	}
	sort.Ints(values)

	m.Concentration = gini(values)
	m.TopKeyShare = topShare(values, len(keys), 0.1)
	return m
}

// gini computes the Gini coefficient of an ascending-sorted count slice.
func gini(sorted []int) float64 {
	n := float64(len(sorted))
	var sum, weighted float64
	for i, v := range sorted {
		sum += float64(v)
		weighted += float64(i+1) * float64(v)
	}
	if sum == 0 {
		return 0
	}
	return (2*weighted)/(n*sum) - (n+1)/n
}

// topShare returns the fraction of lookups carried by the top fraction
// of keys in an ascending-sorted count slice.
func topShare(sorted []int, total int, fraction float64) float64 {
	if total == 0 {
		return 0
	}
	top := int(float64(len(sorted)) * fraction)
	if top < 1 {
		top = 1
	}
	var hits int
	for i := len(sorted) - top; i < len(sorted); i++ {
		hits += sorted[i]
	}
	return float64(hits) / float64(total)
}

// RecommendCapacity returns the smallest replayed capacity whose hit
// rate meets the target, or the largest capacity tried when none does.
// Results may be in any order.
func RecommendCapacity(results []Result, targetHitRate float64) Result {
	sorted := make([]Result, len(results))
	copy(sorted, results)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Capacity < sorted[j].Capacity
	})

	var best Result
	for _, res := range sorted {
		best = res
		if res.HitRate() >= targetHitRate {
			return res
		}
	}
	return best
}
