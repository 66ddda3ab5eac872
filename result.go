package larder

import (
	"time"

	"github.com/elitebeauty/larder/clinic"
)

// Result is the outcome of one fetch attempt. It is immutable after
// construction. A cache hit has FromCache set and zero Elapsed.
type Result[T any] struct {
	Value     T
	Err       error
	Elapsed   time.Duration
	FromCache bool
}

// Ok reports whether the fetch succeeded.
func (r Result[T]) Ok() bool { return r.Err == nil }

// BatchResult aggregates the results of a batch fetch. Results holds one
// entry per input request, in input order, regardless of completion order.
type BatchResult[T any] struct {
	Results   []Result[T]
	Elapsed   time.Duration
	Successes int
	Failures  int

	// CacheHitRate is the fraction of results served from cache,
	// independent of success or failure.
	CacheHitRate float64
}

// Overview is the aggregate of one composite customer fetch: several
// heterogeneous fetches issued fully in parallel, each reported
// individually so one failure does not hide the others.
type Overview struct {
	Customer     Result[*clinic.Customer]
	Appointments Result[[]clinic.Appointment]
	History      Result[[]clinic.Treatment]
	TimeSlots    Result[[]clinic.TimeSlot]
	Satisfaction Result[*clinic.SatisfactionReport]

	Successes    int
	Failures     int
	CacheHitRate float64
	Elapsed      time.Duration
}

// CacheStats is a point-in-time snapshot of the client's cache counters.
type CacheStats struct {
	Hits    uint64
	Misses  uint64
	Entries int

	// MemoryBytes approximates the cache footprint as key length plus
	// serialized value length plus a fixed per-entry overhead.
	MemoryBytes int64
}

// HitRate returns hits/(hits+misses) as a fraction in [0, 1], or 0 before
// any lookup has been observed.
func (s CacheStats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}
