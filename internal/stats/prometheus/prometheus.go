// Package prometheus provides a Prometheus-based stats collector.
package prometheus

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/elitebeauty/larder/internal/stats"
)

// Collector implements stats.Collector using Prometheus metrics.
// The library's known metrics are registered eagerly; unknown names are
// registered lazily on first use.
type Collector struct {
	registry prometheus.Registerer

	mu         sync.Mutex
	counters   map[string]prometheus.Counter
	gauges     map[string]prometheus.Gauge
	histograms map[string]prometheus.Histogram
}

// Compile-time check that Collector implements stats.Collector.
var _ stats.Collector = (*Collector)(nil)

// New creates a new Prometheus collector.
// If registry is nil, prometheus.DefaultRegisterer is used.
func New(registry prometheus.Registerer) *Collector {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	c := &Collector{
		registry:   registry,
		counters:   make(map[string]prometheus.Counter),
		gauges:     make(map[string]prometheus.Gauge),
		histograms: make(map[string]prometheus.Histogram),
	}

	for _, name := range []string{
		stats.MetricFetches,
		stats.MetricFetchErrors,
		stats.MetricFetchTimeouts,
		stats.MetricCacheHits,
		stats.MetricCacheMisses,
		stats.MetricCacheEvictions,
		stats.MetricCacheExpirations,
		stats.MetricBatches,
	} {
		c.counters[name] = c.registerCounter(name)
	}
	for _, name := range []string{
		stats.MetricCacheEntries,
		stats.MetricCacheBytes,
	} {
		c.gauges[name] = c.registerGauge(name)
	}
	for _, name := range []string{
		stats.MetricFetchDuration,
		stats.MetricBatchSize,
	} {
		c.histograms[name] = c.registerHistogram(name)
	}

	return c
}

// IncCounter increments a counter metric.
func (c *Collector) IncCounter(name string, delta int64) {
	c.mu.Lock()
	counter, ok := c.counters[name]
	if !ok {
		counter = c.registerCounter(name)
		c.counters[name] = counter
	}
	c.mu.Unlock()
	counter.Add(float64(delta))
}

// SetGauge sets a gauge metric.
func (c *Collector) SetGauge(name string, value int64) {
	c.mu.Lock()
	gauge, ok := c.gauges[name]
	if !ok {
		gauge = c.registerGauge(name)
		c.gauges[name] = gauge
	}
	c.mu.Unlock()
	gauge.Set(float64(value))
}

// ObserveHistogram records a value in a histogram.
func (c *Collector) ObserveHistogram(name string, value float64) {
	c.mu.Lock()
	histogram, ok := c.histograms[name]
	if !ok {
		histogram = c.registerHistogram(name)
		c.histograms[name] = histogram
	}
	c.mu.Unlock()
	histogram.Observe(value)
}

func (c *Collector) registerCounter(name string) prometheus.Counter {
	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: name,
		Help: name,
	})
	if err := c.registry.Register(counter); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing
			}
		}
		// Registration failed but the unregistered metric still works.
	}
	return counter
}

func (c *Collector) registerGauge(name string) prometheus.Gauge {
	gauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: name,
		Help: name,
	})
	if err := c.registry.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing
			}
		}
	}
	return gauge
}

func (c *Collector) registerHistogram(name string) prometheus.Histogram {
	histogram := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    name,
		Help:    name,
		Buckets: prometheus.DefBuckets,
	})
	if err := c.registry.Register(histogram); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing
			}
		}
	}
	return histogram
}
