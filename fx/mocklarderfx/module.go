// Package mocklarderfx provides an fx module for a larder client backed by
// the in-memory mock source. Useful for testing.
package mocklarderfx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/elitebeauty/larder"
	"github.com/elitebeauty/larder/internal/stats"
	"github.com/elitebeauty/larder/internal/stats/logger"
	"github.com/elitebeauty/larder/mocksource"
)

// Module provides a mock-backed larder client for testing.
// Requires a *zap.Logger to be provided.
var Module = fx.Module("mocklarder",
	fx.Provide(
		newStatsCollector,
		newMockSource,
		newClient,
	),
)

func newStatsCollector(log *zap.Logger) stats.Collector {
	return logger.New(log.Named("larder.stats"))
}

func newMockSource(log *zap.Logger) *mocksource.Source {
	return mocksource.New(mocksource.WithLogger(log.Named("mocksource")))
}

// Params holds dependencies for creating the client.
type Params struct {
	fx.In

	Logger    *zap.Logger
	Collector stats.Collector
	Source    *mocksource.Source
	Lifecycle fx.Lifecycle
}

// Result holds the provided client. The *mocksource.Source itself is also
// provided, so tests can depend on it directly for failure injection.
type Result struct {
	fx.Out

	Client *larder.Client
}

func newClient(p Params) (Result, error) {
	client, err := larder.New(
		larder.WithSource(p.Source),
		larder.WithStats(p.Collector),
		larder.WithLogger(p.Logger.Named("larder")),
	)
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
