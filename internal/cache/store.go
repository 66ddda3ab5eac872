// Package cache implements a TTL-bounded in-memory store with LRU eviction
// under a fixed entry cap.
//
// Every entry carries its own time-to-live. Expiry is detected in two
// places: opportunistically during Get, and by SweepExpired, which callers
// run on a fixed interval. Eviction removes the entry with the oldest
// access time; a recency index keeps that choice O(1) per eviction.
package cache

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/simplelru"
	"go.uber.org/zap"

	"github.com/elitebeauty/larder/internal/stats"
)

// entryOverhead approximates the fixed bookkeeping cost of one entry
// (map bucket, timestamps, counters) for memory accounting. The resulting
// figure is a heuristic, not a measurement.
const entryOverhead = 120

// entry is a stored value with its expiry and access metadata.
type entry struct {
	value          any
	createdAt      time.Time
	ttl            time.Duration
	accessCount    uint64
	lastAccessedAt time.Time
	approxBytes    int64
}

func (e *entry) expired(now time.Time) bool {
	return now.Sub(e.createdAt) > e.ttl
}

// Store is a bounded key-value store with per-entry TTLs.
// A Store is safe for concurrent use by multiple goroutines.
type Store struct {
	mu      sync.Mutex
	entries map[string]*entry
	// recency orders keys by last access; its oldest key is always the
	// entry with the smallest lastAccessedAt. Never at capacity on its
	// own: eviction happens explicitly before insertion.
	recency *simplelru.LRU[string, struct{}]
	max     int

	hits   uint64
	misses uint64
	bytes  int64

	now       func() time.Time
	collector stats.Collector
	logger    *zap.Logger
}

// Config configures a Store.
type Config struct {
	// MaxEntries is the entry cap. Must be > 0.
	MaxEntries int

	// Collector receives cache metrics. If nil, metrics are discarded.
	Collector stats.Collector

	// Logger logs evictions and sweeps. If nil, a no-op logger is used.
	Logger *zap.Logger

	// Now overrides the clock, for tests. If nil, time.Now is used.
	Now func() time.Time
}

// New creates a Store with the given configuration.
func New(cfg Config) *Store {
	if cfg.Collector == nil {
		cfg.Collector = stats.NewNoop()
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	// Capacity max+1 so that inserting after an explicit eviction never
	// triggers the index's own silent eviction.
	recency, err := simplelru.NewLRU[string, struct{}](cfg.MaxEntries+1, nil)
	if err != nil {
		// Only possible with a non-positive capacity.
		panic(err)
	}

	return &Store{
		entries:   make(map[string]*entry, cfg.MaxEntries),
		recency:   recency,
		max:       cfg.MaxEntries,
		now:       cfg.Now,
		collector: cfg.Collector,
		logger:    cfg.Logger,
	}
}

// Get returns the value stored under key if present and unexpired.
// A hit refreshes the entry's access metadata; an expired entry is removed
// and counted as a miss.
func (s *Store) Get(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ent, ok := s.entries[key]
	if ok && ent.expired(s.now()) {
		s.removeLocked(key, ent)
		s.collector.IncCounter(stats.MetricCacheExpirations, 1)
		ok = false
	}
	if !ok {
		s.misses++
		s.collector.IncCounter(stats.MetricCacheMisses, 1)
		return nil, false
	}

	ent.accessCount++
	ent.lastAccessedAt = s.now()
	s.recency.Get(key) // move to most recent
	s.hits++
	s.collector.IncCounter(stats.MetricCacheHits, 1)
	return ent.value, true
}

// Put stores value under key with the given TTL, overwriting any existing
// entry. If the store is full and key is not already present, the least
// recently accessed entry is evicted first.
func (s *Store) Put(key string, value any, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.entries[key]; ok {
		s.bytes -= old.approxBytes
	} else if len(s.entries) >= s.max {
		s.evictOldestLocked()
	}

	now := s.now()
	ent := &entry{
		value:          value,
		createdAt:      now,
		ttl:            ttl,
		accessCount:    1,
		lastAccessedAt: now,
		approxBytes:    approxSize(key, value),
	}
	s.entries[key] = ent
	s.recency.Add(key, struct{}{})
	s.bytes += ent.approxBytes
	s.publishSizeLocked()
}

// Clear removes all entries and resets the hit and miss counters.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[string]*entry, s.max)
	s.recency.Purge()
	s.hits = 0
	s.misses = 0
	s.bytes = 0
	s.publishSizeLocked()
}

// SweepExpired removes every expired entry and returns how many were
// removed. It runs under the store lock, so callers only block for the
// time of one scan over the current entries.
func (s *Store) SweepExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	var removed int
	for key, ent := range s.entries {
		if ent.expired(now) {
			s.removeLocked(key, ent)
			removed++
		}
	}
	if removed > 0 {
		s.collector.IncCounter(stats.MetricCacheExpirations, int64(removed))
		s.publishSizeLocked()
		s.logger.Debug("swept expired entries", zap.Int("removed", removed))
	}
	return removed
}

// Len returns the current number of entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Stats is a point-in-time snapshot of the store's counters.
type Stats struct {
	Hits        uint64
	Misses      uint64
	Entries     int
	MemoryBytes int64
}

// HitRate returns hits/(hits+misses) as a fraction in [0, 1].
// It is 0 before any lookup has been observed.
func (st Stats) HitRate() float64 {
	total := st.Hits + st.Misses
	if total == 0 {
		return 0
	}
	return float64(st.Hits) / float64(total)
}

// Stats returns a snapshot of the store's counters. It does not mutate
// store state.
func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Stats{
		Hits:        s.hits,
		Misses:      s.misses,
		Entries:     len(s.entries),
		MemoryBytes: s.bytes,
	}
}

// evictOldestLocked removes the entry with the oldest lastAccessedAt.
func (s *Store) evictOldestLocked() {
	key, _, ok := s.recency.GetOldest()
	if !ok {
		return
	}
	if ent, ok := s.entries[key]; ok {
		s.removeLocked(key, ent)
	}
	s.collector.IncCounter(stats.MetricCacheEvictions, 1)
	s.logger.Debug("evicted entry", zap.String("key", key))
}

func (s *Store) removeLocked(key string, ent *entry) {
	delete(s.entries, key)
	s.recency.Remove(key)
	s.bytes -= ent.approxBytes
}

func (s *Store) publishSizeLocked() {
	s.collector.SetGauge(stats.MetricCacheEntries, int64(len(s.entries)))
	s.collector.SetGauge(stats.MetricCacheBytes, s.bytes)
}

// approxSize estimates an entry's memory footprint as key length plus
// JSON-serialized value length plus a fixed overhead.
func approxSize(key string, value any) int64 {
	size := int64(len(key)) + entryOverhead
	if data, err := json.Marshal(value); err == nil {
		size += int64(len(data))
	}
	return size
}
