package runner

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRun_Success(t *testing.T) {
	out := Run(context.Background(), time.Second, func(ctx context.Context) (string, error) {
		return "value", nil
	})

	if out.Err != nil {
		t.Fatalf("Run() error = %v", out.Err)
	}
	if out.Value != "value" {
		t.Errorf("Value = %q, want %q", out.Value, "value")
	}
	if out.Elapsed < 0 {
		t.Errorf("Elapsed = %v, want >= 0", out.Elapsed)
	}
}

func TestRun_OperationError(t *testing.T) {
	opErr := errors.New("upstream unavailable")
	out := Run(context.Background(), time.Second, func(ctx context.Context) (int, error) {
		return 0, opErr
	})

	if !errors.Is(out.Err, opErr) {
		t.Errorf("Run() error = %v, want %v", out.Err, opErr)
	}
}

func TestRun_Timeout(t *testing.T) {
	start := time.Now()
	out := Run(context.Background(), 20*time.Millisecond, func(ctx context.Context) (int, error) {
		select {
		case <-time.After(5 * time.Second):
			return 1, nil
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	})

	if !errors.Is(out.Err, ErrTimeout) {
		t.Fatalf("Run() error = %v, want ErrTimeout", out.Err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("Run() blocked %v, want to return around the timeout", elapsed)
	}
	if out.Elapsed < 20*time.Millisecond {
		t.Errorf("Elapsed = %v, want >= timeout", out.Elapsed)
	}
}

func TestRun_TimeoutCancelsOperation(t *testing.T) {
	cancelled := make(chan struct{})
	Run(context.Background(), 10*time.Millisecond, func(ctx context.Context) (int, error) {
		<-ctx.Done()
		close(cancelled)
		return 0, ctx.Err()
	})

	select {
	case <-cancelled:
	case <-time.After(time.Second):
		t.Error("operation context was not cancelled after timeout")
	}
}

func TestRun_ParentCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	out := Run(ctx, time.Minute, func(ctx context.Context) (int, error) {
		<-ctx.Done()
		return 0, ctx.Err()
	})

	if !errors.Is(out.Err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", out.Err)
	}
}
