package larder

import (
	"context"
	"sync"
	"time"

	"github.com/elitebeauty/larder/clinic"
	"github.com/elitebeauty/larder/internal/stats"
)

// FetchFunc is one deferred fetch inside a batch.
type FetchFunc[T any] func(context.Context) Result[T]

// FetchBatch runs the given fetches with the client's concurrency bound
// and returns their results in input order.
//
// The input is partitioned into consecutive groups of at most
// maxConcurrency fetches. Within a group every fetch runs concurrently;
// the next group does not start until the previous one has fully
// resolved. A failing fetch yields a failure Result in its slot and
// never aborts its siblings or later groups.
func FetchBatch[T any](ctx context.Context, c *Client, fetches []FetchFunc[T]) BatchResult[T] {
	start := time.Now()
	results := make([]Result[T], len(fetches))

	for lo := 0; lo < len(fetches); lo += c.maxConcurrency {
		hi := min(lo+c.maxConcurrency, len(fetches))

		var wg sync.WaitGroup
		for i := lo; i < hi; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i] = fetches[i](ctx)
			}(i)
		}
		wg.Wait()
	}

	batch := summarize(results)
	batch.Elapsed = time.Since(start)

	c.stats.IncCounter(stats.MetricBatches, 1)
	c.stats.ObserveHistogram(stats.MetricBatchSize, float64(len(fetches)))
	return batch
}

// BatchCustomers fetches several customer profiles under the client's
// concurrency bound, preserving input order.
func (c *Client) BatchCustomers(ctx context.Context, customerIDs []string) BatchResult[*clinic.Customer] {
	fetches := make([]FetchFunc[*clinic.Customer], len(customerIDs))
	for i, id := range customerIDs {
		fetches[i] = func(ctx context.Context) Result[*clinic.Customer] {
			return c.Customer(ctx, id)
		}
	}
	return FetchBatch(ctx, c, fetches)
}

// summarize derives the aggregate counters from a full result list.
func summarize[T any](results []Result[T]) BatchResult[T] {
	batch := BatchResult[T]{Results: results}
	var hits int
	for _, r := range results {
		if r.Ok() {
			batch.Successes++
		} else {
			batch.Failures++
		}
		if r.FromCache {
			hits++
		}
	}
	if len(results) > 0 {
		batch.CacheHitRate = float64(hits) / float64(len(results))
	}
	return batch
}

// CustomerOverview issues the composite fetch for one customer: profile,
// appointments, treatment history, open slots for date, and the clinic's
// satisfaction report, all fully in parallel. Individual failures are
// reported per field; the other fields still resolve.
func (c *Client) CustomerOverview(ctx context.Context, customerID, date, clinicID string) *Overview {
	start := time.Now()
	o := &Overview{}

	var wg sync.WaitGroup
	wg.Add(5)
	go func() { defer wg.Done(); o.Customer = c.Customer(ctx, customerID) }()
	go func() { defer wg.Done(); o.Appointments = c.Appointments(ctx, customerID) }()
	go func() { defer wg.Done(); o.History = c.TreatmentHistory(ctx, customerID) }()
	go func() { defer wg.Done(); o.TimeSlots = c.TimeSlots(ctx, date) }()
	go func() { defer wg.Done(); o.Satisfaction = c.Satisfaction(ctx, clinicID) }()
	wg.Wait()

	var hits, total int
	count := func(ok, fromCache bool) {
		total++
		if ok {
			o.Successes++
		} else {
			o.Failures++
		}
		if fromCache {
			hits++
		}
	}
	count(o.Customer.Ok(), o.Customer.FromCache)
	count(o.Appointments.Ok(), o.Appointments.FromCache)
	count(o.History.Ok(), o.History.FromCache)
	count(o.TimeSlots.Ok(), o.TimeSlots.FromCache)
	count(o.Satisfaction.Ok(), o.Satisfaction.FromCache)

	o.CacheHitRate = float64(hits) / float64(total)
	o.Elapsed = time.Since(start)
	return o
}
