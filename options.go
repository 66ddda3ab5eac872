package larder

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/elitebeauty/larder/internal/stats"
)

// Option configures a Client.
type Option interface {
	apply(*options)
}

// options holds the client configuration.
type options struct {
	source         DataSource
	maxConcurrency int
	timeout        time.Duration
	defaultTTL     time.Duration
	maxEntries     int
	sweepInterval  time.Duration
	stats          stats.Collector
	logger         *zap.Logger
	clock          func() time.Time
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		maxConcurrency: 4,
		timeout:        5 * time.Second,
		defaultTTL:     5 * time.Minute,
		maxEntries:     1000,
		sweepInterval:  30 * time.Second,
		stats:          stats.NewNoop(),
		logger:         zap.NewNop(),
		clock:          time.Now,
	}
}

// validate rejects configurations the client cannot run with.
func (o *options) validate() error {
	if o.maxConcurrency <= 0 {
		return fmt.Errorf("larder: max concurrency must be positive, got %d", o.maxConcurrency)
	}
	if o.timeout <= 0 {
		return fmt.Errorf("larder: operation timeout must be positive, got %v", o.timeout)
	}
	if o.defaultTTL < 0 {
		return fmt.Errorf("larder: default TTL must not be negative, got %v", o.defaultTTL)
	}
	if o.maxEntries <= 0 {
		return fmt.Errorf("larder: max cache entries must be positive, got %d", o.maxEntries)
	}
	return nil
}

// optionFunc wraps a function to implement Option.
type optionFunc func(*options)

// Compile-time check that optionFunc implements Option.
var _ Option = optionFunc(nil)

func (f optionFunc) apply(o *options) { f(o) }

// WithSource sets the data source the client fetches from.
func WithSource(s DataSource) Option {
	return optionFunc(func(o *options) {
		o.source = s
	})
}

// WithMaxConcurrency bounds how many fetches a batch runs at once.
// Default is 4.
func WithMaxConcurrency(n int) Option {
	return optionFunc(func(o *options) {
		o.maxConcurrency = n
	})
}

// WithOperationTimeout bounds how long one data-source call may take.
// Default is 5 seconds.
func WithOperationTimeout(d time.Duration) Option {
	return optionFunc(func(o *options) {
		o.timeout = d
	})
}

// WithDefaultTTL sets the TTL used by Fetch when no entity-specific TTL
// applies. Default is 5 minutes.
func WithDefaultTTL(d time.Duration) Option {
	return optionFunc(func(o *options) {
		o.defaultTTL = d
	})
}

// WithMaxCacheEntries caps the number of cached entries.
// Default is 1000.
func WithMaxCacheEntries(n int) Option {
	return optionFunc(func(o *options) {
		o.maxEntries = n
	})
}

// WithSweepInterval sets how often the background sweep removes expired
// entries. Zero or negative disables the sweep; expired entries are then
// only removed when looked up. Default is 30 seconds.
func WithSweepInterval(d time.Duration) Option {
	return optionFunc(func(o *options) {
		o.sweepInterval = d
	})
}

// WithStats sets the stats collector.
// If not set, a no-op collector is used.
func WithStats(c stats.Collector) Option {
	return optionFunc(func(o *options) {
		o.stats = c
	})
}

// WithLogger sets the logger.
// If not set, a no-op logger is used.
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(o *options) {
		o.logger = l
	})
}

// WithClock overrides the cache's clock. Intended for tests that need to
// control entry expiry.
func WithClock(now func() time.Time) Option {
	return optionFunc(func(o *options) {
		o.clock = now
	})
}
