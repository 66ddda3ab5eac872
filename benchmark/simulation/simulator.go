// Package simulation replays key-access workloads against an LRU cache
// model to estimate hit rates for candidate cache capacities before
// committing to one in production.
package simulation

import (
	"fmt"
	"math/rand"

	"github.com/hashicorp/golang-lru/v2/simplelru"
)

// Result is the outcome of replaying one workload at one capacity.
type Result struct {
	Capacity int
	Lookups  int
	Hits     int
	Misses   int
}

// HitRate returns hits/lookups as a fraction in [0, 1].
func (r Result) HitRate() float64 {
	if r.Lookups == 0 {
		return 0
	}
	return float64(r.Hits) / float64(r.Lookups)
}

// Replay runs the key sequence through an LRU cache of the given capacity.
// The model matches the client's store: a lookup refreshes recency, a miss
// inserts and may evict the least recently accessed key. TTL expiry is not
// modeled; the estimate is an upper bound on the real hit rate.
func Replay(keys []string, capacity int) (Result, error) {
	cache, err := simplelru.NewLRU[string, struct{}](capacity, nil)
	if err != nil {
		return Result{}, fmt.Errorf("capacity %d: %w", capacity, err)
	}

	res := Result{Capacity: capacity}
	for _, key := range keys {
		res.Lookups++
		if _, ok := cache.Get(key); ok {
			res.Hits++
			continue
		}
		res.Misses++
		cache.Add(key, struct{}{})
	}
	return res, nil
}

// ReplayCapacities replays one workload at several capacities.
func ReplayCapacities(keys []string, capacities []int) ([]Result, error) {
	results := make([]Result, 0, len(capacities))
	for _, capacity := range capacities {
		res, err := Replay(keys, capacity)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

// Workload generates key-access sequences shaped like the client's
// traffic: a population of customers where a small set of regulars
// accounts for most lookups.
type Workload struct {
	// Customers is the population size.
	Customers int

	// Regulars is how many customers form the hot set.
	Regulars int

	// RegularShare is the fraction of lookups hitting the hot set.
	RegularShare float64

	// Seed makes the sequence reproducible.
	Seed int64
}

// Keys generates n cache keys for the workload.
func (w Workload) Keys(n int) []string {
	rng := rand.New(rand.NewSource(w.Seed))

	regulars := w.Regulars
	if regulars <= 0 || regulars > w.Customers {
		regulars = w.Customers
	}

	keys := make([]string, n)
	for i := range keys {
		var id int
		if rng.Float64() < w.RegularShare {
			id = rng.Intn(regulars)
		} else {
			id = rng.Intn(w.Customers)
		}
		keys[i] = fmt.Sprintf("customer:c%d", id)
	}
	return keys
}
