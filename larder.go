// Package larder provides a cache-aware client for beauty clinic service
// data. It memoizes per-entity fetches with entity-specific TTLs, bounds
// how many data-source calls run at once, and tolerates partial failure in
// batch and composite fetches.
//
// Example usage:
//
//	client, err := larder.New(
//	    larder.WithSource(mocksource.New()),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	res := client.Customer(ctx, "c1")
//	if res.Ok() {
//	    fmt.Printf("customer: %s %s\n", res.Value.FirstName, res.Value.LastName)
//	}
package larder

import (
	"errors"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/elitebeauty/larder/internal/cache"
	"github.com/elitebeauty/larder/internal/runner"
	"github.com/elitebeauty/larder/internal/stats"
)

// Sentinel errors for well-defined error conditions.
var (
	// ErrNoSource indicates no data source was provided.
	ErrNoSource = errors.New("larder: no data source provided")

	// ErrClosed indicates the client has been closed.
	ErrClosed = errors.New("larder: client closed")

	// ErrTimeout indicates a data-source call exceeded the operation
	// timeout.
	ErrTimeout = runner.ErrTimeout
)

// Per-entity TTLs, chosen by expected data volatility.
const (
	customerTTL       = 5 * time.Minute
	appointmentsTTL   = time.Minute
	historyTTL        = 10 * time.Minute
	satisfactionTTL   = 10 * time.Minute
	recommendationTTL = 30 * time.Minute
	timeSlotsTTL      = 30 * time.Second
	reviewsTTL        = 10 * time.Minute
	ratingTTL         = 10 * time.Minute
)

// Client fetches clinic service data through an in-memory cache.
// A Client is safe for concurrent use by multiple goroutines.
type Client struct {
	source         DataSource
	store          *cache.Store
	stats          stats.Collector
	logger         *zap.Logger
	sf             singleflight.Group
	timeout        time.Duration
	maxConcurrency int
	defaultTTL     time.Duration
	closed         atomic.Bool

	sweepStop chan struct{}
	sweepDone chan struct{}
}

// New creates a new Client with the given options.
// A data source is required; everything else has sensible defaults.
func New(opts ...Option) (*Client, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt.apply(&cfg)
	}

	if cfg.source == nil {
		return nil, ErrNoSource
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	c := &Client{
		source: cfg.source,
		store: cache.New(cache.Config{
			MaxEntries: cfg.maxEntries,
			Collector:  cfg.stats,
			Logger:     cfg.logger.Named("cache"),
			Now:        cfg.clock,
		}),
		stats:          cfg.stats,
		logger:         cfg.logger,
		timeout:        cfg.timeout,
		maxConcurrency: cfg.maxConcurrency,
		defaultTTL:     cfg.defaultTTL,
		sweepStop:      make(chan struct{}),
		sweepDone:      make(chan struct{}),
	}

	if cfg.sweepInterval > 0 {
		go c.sweepLoop(cfg.sweepInterval)
	} else {
		close(c.sweepDone)
	}

	c.logger.Debug("client initialized",
		zap.Int("maxConcurrency", c.maxConcurrency),
		zap.Duration("operationTimeout", c.timeout),
		zap.Int("maxCacheEntries", cfg.maxEntries),
		zap.Duration("sweepInterval", cfg.sweepInterval),
	)

	return c, nil
}

// Close stops the background sweep. After Close, fetches return ErrClosed.
func (c *Client) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return ErrClosed
	}
	close(c.sweepStop)
	<-c.sweepDone
	return nil
}

// Stats returns a snapshot of the cache counters. It does not mutate
// cache state.
func (c *Client) Stats() CacheStats {
	st := c.store.Stats()
	return CacheStats{
		Hits:        st.Hits,
		Misses:      st.Misses,
		Entries:     st.Entries,
		MemoryBytes: st.MemoryBytes,
	}
}

// ClearCache removes all cached entries and resets the hit/miss counters.
func (c *Client) ClearCache() {
	c.store.Clear()
	c.logger.Debug("cache cleared")
}

// sweepLoop removes expired entries on a fixed interval until Close.
func (c *Client) sweepLoop(interval time.Duration) {
	defer close(c.sweepDone)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.store.SweepExpired()
		case <-c.sweepStop:
			return
		}
	}
}
