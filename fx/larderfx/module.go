// Package larderfx provides an fx module for a larder client backed by a
// caller-provided data source.
package larderfx

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/elitebeauty/larder"
	"github.com/elitebeauty/larder/internal/stats"
	"github.com/elitebeauty/larder/internal/stats/logger"
)

// Config holds configuration for the larder client.
// Zero fields fall back to the library defaults.
type Config struct {
	// MaxConcurrency bounds how many fetches a batch runs at once.
	MaxConcurrency int

	// OperationTimeout bounds one data-source call.
	OperationTimeout time.Duration

	// DefaultTTL is used for fetches without an entity-specific TTL.
	DefaultTTL time.Duration

	// MaxCacheEntries caps the number of cached entries.
	MaxCacheEntries int
}

// Module provides a larder client.
// Requires a *zap.Logger and a larder.DataSource to be provided.
var Module = fx.Module("larder",
	fx.Provide(
		newStatsCollector,
		newClient,
	),
)

func newStatsCollector(log *zap.Logger) stats.Collector {
	return logger.New(log.Named("larder.stats"))
}

// Params holds dependencies for creating the client.
type Params struct {
	fx.In

	Config    Config
	Source    larder.DataSource
	Logger    *zap.Logger
	Collector stats.Collector
	Lifecycle fx.Lifecycle
}

// Result holds the provided client.
type Result struct {
	fx.Out

	Client *larder.Client
}

func newClient(p Params) (Result, error) {
	opts := []larder.Option{
		larder.WithSource(p.Source),
		larder.WithStats(p.Collector),
		larder.WithLogger(p.Logger.Named("larder")),
	}
	if p.Config.MaxConcurrency > 0 {
		opts = append(opts, larder.WithMaxConcurrency(p.Config.MaxConcurrency))
	}
	if p.Config.OperationTimeout > 0 {
		opts = append(opts, larder.WithOperationTimeout(p.Config.OperationTimeout))
	}
	if p.Config.DefaultTTL > 0 {
		opts = append(opts, larder.WithDefaultTTL(p.Config.DefaultTTL))
	}
	if p.Config.MaxCacheEntries > 0 {
		opts = append(opts, larder.WithMaxCacheEntries(p.Config.MaxCacheEntries))
	}

	client, err := larder.New(opts...)
	if err != nil {
		return Result{}, err
	}

	p.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})

	return Result{Client: client}, nil
}
