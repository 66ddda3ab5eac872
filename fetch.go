package larder

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/elitebeauty/larder/clinic"
	"github.com/elitebeauty/larder/internal/runner"
	"github.com/elitebeauty/larder/internal/stats"
)

// cacheKey builds a deterministic key of the form
// "{entityType}:{discriminator}". Composite discriminators are joined
// with ":" as well.
func cacheKey(entity string, discriminators ...string) string {
	return entity + ":" + strings.Join(discriminators, ":")
}

// fetchCached is the shared get-or-fetch path behind every entity wrapper.
// On a hit it returns the cached value with zero elapsed time. On a miss
// it runs op under the operation timeout, caches the value on success with
// the given TTL, and never caches a failure. Concurrent misses on the same
// key are collapsed into a single data-source call.
func fetchCached[T any](ctx context.Context, c *Client, key string, ttl time.Duration, op func(context.Context) (T, error)) Result[T] {
	if c.closed.Load() {
		return Result[T]{Err: ErrClosed}
	}
	c.stats.IncCounter(stats.MetricFetches, 1)

	if v, ok := c.store.Get(key); ok {
		return Result[T]{Value: v.(T), FromCache: true}
	}

	v, _, shared := c.sf.Do(key, func() (any, error) {
		out := runner.Run(ctx, c.timeout, op)
		if out.Err == nil {
			c.store.Put(key, out.Value, ttl)
		}
		return out, nil
	})
	out := v.(runner.Outcome[T])

	c.stats.ObserveHistogram(stats.MetricFetchDuration, out.Elapsed.Seconds())
	if out.Err != nil {
		if errors.Is(out.Err, ErrTimeout) {
			c.stats.IncCounter(stats.MetricFetchTimeouts, 1)
		}
		c.stats.IncCounter(stats.MetricFetchErrors, 1)
		c.logger.Debug("fetch failed",
			zap.String("key", key),
			zap.Bool("shared", shared),
			zap.Duration("elapsed", out.Elapsed),
			zap.Error(out.Err),
		)
		return Result[T]{Err: out.Err, Elapsed: out.Elapsed}
	}

	return Result[T]{Value: out.Value, Elapsed: out.Elapsed}
}

// Fetch runs an arbitrary keyed operation through the cache with the
// client's default TTL. Entity wrappers below should be preferred; Fetch
// exists for values with no entity-specific TTL.
func Fetch[T any](ctx context.Context, c *Client, entity, discriminator string, op func(context.Context) (T, error)) Result[T] {
	return fetchCached(ctx, c, cacheKey(entity, discriminator), c.defaultTTL, op)
}

// Customer fetches a customer profile. Cached for 5 minutes.
func (c *Client) Customer(ctx context.Context, customerID string) Result[*clinic.Customer] {
	return fetchCached(ctx, c, cacheKey("customer", customerID), customerTTL,
		func(ctx context.Context) (*clinic.Customer, error) {
			return c.source.Customer(ctx, customerID)
		})
}

// Appointments fetches a customer's upcoming appointments. Cached for
// 1 minute.
func (c *Client) Appointments(ctx context.Context, customerID string) Result[[]clinic.Appointment] {
	return fetchCached(ctx, c, cacheKey("appointments", customerID), appointmentsTTL,
		func(ctx context.Context) ([]clinic.Appointment, error) {
			return c.source.Appointments(ctx, customerID)
		})
}

// TreatmentHistory fetches a customer's completed treatments. Cached for
// 10 minutes.
func (c *Client) TreatmentHistory(ctx context.Context, customerID string) Result[[]clinic.Treatment] {
	return fetchCached(ctx, c, cacheKey("history", customerID), historyTTL,
		func(ctx context.Context) ([]clinic.Treatment, error) {
			return c.source.TreatmentHistory(ctx, customerID)
		})
}

// Satisfaction fetches a clinic's satisfaction report. Cached for
// 10 minutes.
func (c *Client) Satisfaction(ctx context.Context, clinicID string) Result[*clinic.SatisfactionReport] {
	return fetchCached(ctx, c, cacheKey("satisfaction", clinicID), satisfactionTTL,
		func(ctx context.Context) (*clinic.SatisfactionReport, error) {
			return c.source.Satisfaction(ctx, clinicID)
		})
}

// TreatmentsByConcern fetches treatments recommended for a skin concern.
// Cached for 30 minutes.
func (c *Client) TreatmentsByConcern(ctx context.Context, concern string) Result[[]clinic.TreatmentOption] {
	return fetchCached(ctx, c, cacheKey("treatments-by-concern", concern), recommendationTTL,
		func(ctx context.Context) ([]clinic.TreatmentOption, error) {
			return c.source.TreatmentsByConcern(ctx, concern)
		})
}

// TreatmentsBySkinType fetches treatments suited to a skin type. Cached
// for 30 minutes.
func (c *Client) TreatmentsBySkinType(ctx context.Context, skinType string) Result[[]clinic.TreatmentOption] {
	return fetchCached(ctx, c, cacheKey("treatments-by-skin-type", skinType), recommendationTTL,
		func(ctx context.Context) ([]clinic.TreatmentOption, error) {
			return c.source.TreatmentsBySkinType(ctx, skinType)
		})
}

// TimeSlots fetches the open booking slots for a date. Slots churn
// quickly, so they are cached for only 30 seconds.
func (c *Client) TimeSlots(ctx context.Context, date string) Result[[]clinic.TimeSlot] {
	return fetchCached(ctx, c, cacheKey("timeslots", date), timeSlotsTTL,
		func(ctx context.Context) ([]clinic.TimeSlot, error) {
			return c.source.TimeSlots(ctx, date)
		})
}

// Reviews fetches customer reviews for a treatment. Cached for 10 minutes.
func (c *Client) Reviews(ctx context.Context, treatment string) Result[[]clinic.Review] {
	return fetchCached(ctx, c, cacheKey("reviews", treatment), reviewsTTL,
		func(ctx context.Context) ([]clinic.Review, error) {
			return c.source.Reviews(ctx, treatment)
		})
}

// AverageRating fetches the average star rating for a treatment. Cached
// for 10 minutes.
func (c *Client) AverageRating(ctx context.Context, treatment string) Result[float64] {
	return fetchCached(ctx, c, cacheKey("rating", treatment), ratingTTL,
		func(ctx context.Context) (float64, error) {
			return c.source.AverageRating(ctx, treatment)
		})
}
