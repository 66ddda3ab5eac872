package larder

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/elitebeauty/larder/clinic"
	"github.com/elitebeauty/larder/mocksource"
)

// testClock is a mutable clock for driving entry expiry.
type testClock struct {
	mu sync.Mutex
	t  time.Time
}

func newTestClock() *testClock {
	return &testClock{t: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *testClock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *testClock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

// countingSource counts data-source calls per entity type.
type countingSource struct {
	*mocksource.Source
	customerCalls atomic.Int64
}

func (s *countingSource) Customer(ctx context.Context, customerID string) (*clinic.Customer, error) {
	s.customerCalls.Add(1)
	return s.Source.Customer(ctx, customerID)
}

func newTestClient(t *testing.T, opts ...Option) *Client {
	t.Helper()
	client, err := New(append([]Option{
		WithSource(mocksource.New()),
		WithSweepInterval(0),
	}, opts...)...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}

func TestNew_RequiresSource(t *testing.T) {
	_, err := New()
	if !errors.Is(err, ErrNoSource) {
		t.Errorf("New() error = %v, want ErrNoSource", err)
	}
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"zero concurrency", WithMaxConcurrency(0)},
		{"negative timeout", WithOperationTimeout(-time.Second)},
		{"negative default TTL", WithDefaultTTL(-time.Minute)},
		{"zero cache entries", WithMaxCacheEntries(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(WithSource(mocksource.New()), tt.opt); err == nil {
				t.Error("New() error = nil, want config error")
			}
		})
	}
}

func TestClient_CustomerMissThenHit(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	first := client.Customer(ctx, "c1")
	if !first.Ok() {
		t.Fatalf("Customer() error = %v", first.Err)
	}
	if first.FromCache {
		t.Error("first fetch FromCache = true, want false")
	}
	if first.Value.CustomerID != "c1" {
		t.Errorf("CustomerID = %q, want %q", first.Value.CustomerID, "c1")
	}

	second := client.Customer(ctx, "c1")
	if !second.Ok() {
		t.Fatalf("repeat Customer() error = %v", second.Err)
	}
	if !second.FromCache {
		t.Error("repeat fetch FromCache = false, want true")
	}
	if second.Elapsed != 0 {
		t.Errorf("cache hit Elapsed = %v, want 0", second.Elapsed)
	}

	st := client.Stats()
	if st.Hits != 1 || st.Misses != 1 {
		t.Errorf("Stats() = %+v, want 1 hit, 1 miss", st)
	}
	if got := st.HitRate(); got != 0.5 {
		t.Errorf("HitRate() = %v, want 0.5", got)
	}
}

func TestClient_FetchExpiresAfterDefaultTTL(t *testing.T) {
	clock := newTestClock()
	client := newTestClient(t,
		WithMaxCacheEntries(100),
		WithDefaultTTL(5*time.Second),
		WithClock(clock.now),
	)
	ctx := context.Background()

	op := func(ctx context.Context) (string, error) { return "v", nil }

	if res := Fetch(ctx, client, "profile", "c1", op); !res.Ok() || res.FromCache {
		t.Fatalf("first Fetch() = %+v, want fresh success", res)
	}
	if res := Fetch(ctx, client, "profile", "c1", op); !res.FromCache || res.Elapsed != 0 {
		t.Fatalf("second Fetch() = %+v, want cache hit with zero elapsed", res)
	}

	clock.advance(6 * time.Second)

	if res := Fetch(ctx, client, "profile", "c1", op); !res.Ok() || res.FromCache {
		t.Fatalf("Fetch() after expiry = %+v, want fresh success", res)
	}
}

func TestClient_FailureNeverCached(t *testing.T) {
	src := mocksource.New()
	client := newTestClient(t, WithSource(src))
	ctx := context.Background()

	injected := errors.New("backend down")
	src.FailWith("customer", injected)

	res := client.Customer(ctx, "c1")
	if res.Ok() || !errors.Is(res.Err, injected) {
		t.Fatalf("Customer() = %+v, want injected failure", res)
	}
	if res.FromCache {
		t.Error("failure FromCache = true, want false")
	}
	if client.Stats().Entries != 0 {
		t.Errorf("Entries = %d after failed fetch, want 0", client.Stats().Entries)
	}

	// Once the backend recovers, the next fetch goes to the source.
	src.FailWith("customer", nil)
	res = client.Customer(ctx, "c1")
	if !res.Ok() || res.FromCache {
		t.Fatalf("Customer() after recovery = %+v, want fresh success", res)
	}
}

func TestClient_Timeout(t *testing.T) {
	client := newTestClient(t,
		WithSource(mocksource.New(mocksource.WithLatency(time.Second))),
		WithOperationTimeout(20*time.Millisecond),
	)

	res := client.Customer(context.Background(), "c1")
	if !errors.Is(res.Err, ErrTimeout) {
		t.Fatalf("Customer() error = %v, want ErrTimeout", res.Err)
	}
	if res.Elapsed < 20*time.Millisecond {
		t.Errorf("Elapsed = %v, want >= timeout", res.Elapsed)
	}
	if client.Stats().Entries != 0 {
		t.Error("timed-out fetch was cached")
	}
}

func TestClient_SingleflightCollapsesConcurrentMisses(t *testing.T) {
	src := &countingSource{Source: mocksource.New(mocksource.WithLatency(50 * time.Millisecond))}
	client := newTestClient(t, WithSource(src))
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if res := client.Customer(ctx, "c1"); !res.Ok() {
				t.Errorf("Customer() error = %v", res.Err)
			}
		}()
	}
	wg.Wait()

	if calls := src.customerCalls.Load(); calls != 1 {
		t.Errorf("source called %d times for one key, want 1", calls)
	}
}

func TestClient_EntityTypesUseDistinctKeys(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	client.Customer(ctx, "c1")
	client.Appointments(ctx, "c1")
	client.TreatmentHistory(ctx, "c1")

	if got := client.Stats().Entries; got != 3 {
		t.Errorf("Entries = %d, want 3 distinct entries for one discriminator", got)
	}
}

func TestClient_ClearCache(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	client.Customer(ctx, "c1")
	client.Customer(ctx, "c1")
	client.ClearCache()

	st := client.Stats()
	if st.Hits != 0 || st.Misses != 0 || st.Entries != 0 {
		t.Errorf("Stats() after ClearCache() = %+v, want all zero", st)
	}

	if res := client.Customer(ctx, "c1"); res.FromCache {
		t.Error("fetch after ClearCache() FromCache = true, want false")
	}
}

func TestClient_BackgroundSweep(t *testing.T) {
	clock := newTestClock()
	client := newTestClient(t,
		WithDefaultTTL(time.Second),
		WithClock(clock.now),
		WithSweepInterval(10*time.Millisecond),
	)
	ctx := context.Background()

	op := func(ctx context.Context) (int, error) { return 1, nil }
	Fetch(ctx, client, "profile", "a", op)
	Fetch(ctx, client, "profile", "b", op)

	clock.advance(2 * time.Second)

	deadline := time.Now().Add(time.Second)
	for client.Stats().Entries > 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if got := client.Stats().Entries; got != 0 {
		t.Errorf("Entries = %d after sweep, want 0", got)
	}
	// The sweep itself must not count misses.
	if got := client.Stats().Misses; got != 2 {
		t.Errorf("Misses = %d, want 2 (one per initial fetch)", got)
	}
}

func TestClient_Close(t *testing.T) {
	client, err := New(WithSource(mocksource.New()))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := client.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if err := client.Close(); !errors.Is(err, ErrClosed) {
		t.Errorf("Close() second call error = %v, want ErrClosed", err)
	}
	if res := client.Customer(context.Background(), "c1"); !errors.Is(res.Err, ErrClosed) {
		t.Errorf("Customer() after Close error = %v, want ErrClosed", res.Err)
	}
}

func TestClient_EndToEndScenario(t *testing.T) {
	clock := newTestClock()
	src := &countingSource{Source: mocksource.New()}
	client := newTestClient(t,
		WithSource(src),
		WithMaxCacheEntries(100),
		WithClock(clock.now),
	)
	ctx := context.Background()

	res := client.Customer(ctx, "c1")
	if !res.Ok() || res.FromCache {
		t.Fatalf("first fetch = %+v, want fresh success", res)
	}

	res = client.Customer(ctx, "c1")
	if !res.Ok() || !res.FromCache || res.Elapsed != 0 {
		t.Fatalf("immediate repeat = %+v, want instant cache hit", res)
	}

	clock.advance(customerTTL + time.Second)

	res = client.Customer(ctx, "c1")
	if !res.Ok() || res.FromCache {
		t.Fatalf("fetch after TTL = %+v, want fresh success", res)
	}
	if calls := src.customerCalls.Load(); calls != 2 {
		t.Errorf("source calls = %d, want 2", calls)
	}
}
