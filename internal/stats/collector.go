// Package stats provides a unified interface for collecting metrics.
package stats

// Metric names used throughout the library.
const (
	// Fetch metrics.
	MetricFetches       = "larder_fetches_total"
	MetricFetchErrors   = "larder_fetch_errors_total"
	MetricFetchTimeouts = "larder_fetch_timeouts_total"
	MetricFetchDuration = "larder_fetch_duration_seconds"

	// Cache metrics.
	MetricCacheHits        = "larder_cache_hits_total"
	MetricCacheMisses      = "larder_cache_misses_total"
	MetricCacheEvictions   = "larder_cache_evictions_total"
	MetricCacheExpirations = "larder_cache_expirations_total"
	MetricCacheEntries     = "larder_cache_entries"
	MetricCacheBytes       = "larder_cache_memory_bytes"

	// Batch metrics.
	MetricBatches   = "larder_batches_total"
	MetricBatchSize = "larder_batch_size"
)

// Collector defines the interface for collecting metrics.
type Collector interface {
	// IncCounter increments a counter metric by delta.
	IncCounter(name string, delta int64)

	// SetGauge sets a gauge metric to value.
	SetGauge(name string, value int64)

	// ObserveHistogram records a value in a histogram metric.
	ObserveHistogram(name string, value float64)
}
