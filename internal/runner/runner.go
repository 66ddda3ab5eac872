// Package runner executes a single data-source operation with a timeout
// bound and elapsed-time measurement.
package runner

import (
	"context"
	"errors"
	"time"
)

// ErrTimeout indicates the operation did not complete within its bound.
var ErrTimeout = errors.New("runner: operation timed out")

// Outcome is the uniform result shape of one bounded operation.
// Exactly one of Value and Err is meaningful.
type Outcome[T any] struct {
	Value   T
	Err     error
	Elapsed time.Duration
}

// Run executes op with a deadline of timeout and measures how long it took.
// The derived context is cancelled when the deadline fires, so a
// well-behaved operation stops working once the caller has given up on it;
// a result arriving after the deadline is discarded.
func Run[T any](ctx context.Context, timeout time.Duration, op func(context.Context) (T, error)) Outcome[T] {
	start := time.Now()

	opCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type opResult struct {
		value T
		err   error
	}
	// Buffered so a late completion does not leak the goroutine.
	done := make(chan opResult, 1)

	go func() {
		value, err := op(opCtx)
		done <- opResult{value: value, err: err}
	}()

	select {
	case r := <-done:
		if r.err != nil {
			return Outcome[T]{Err: r.err, Elapsed: time.Since(start)}
		}
		return Outcome[T]{Value: r.value, Elapsed: time.Since(start)}
	case <-opCtx.Done():
		err := opCtx.Err()
		if errors.Is(err, context.DeadlineExceeded) {
			err = ErrTimeout
		}
		return Outcome[T]{Err: err, Elapsed: time.Since(start)}
	}
}
