package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

var errTransient = errors.New("connection refused")

func TestRetry(t *testing.T) {
	ctx := context.Background()

	// Success on first try
	calls := 0
	err := Retry(ctx, 3, time.Millisecond, func() error {
		calls++
		return nil
	})
	if err != nil || calls != 1 {
		t.Errorf("Retry() = %v after %d calls, want nil after 1", err, calls)
	}

	// Non-retryable error stops immediately
	permanent := errors.New("bad auth")
	calls = 0
	err = Retry(ctx, 3, time.Millisecond, func() error {
		calls++
		return permanent
	})
	if err != permanent || calls != 1 {
		t.Errorf("Retry() = %v after %d calls, want permanent error after 1", err, calls)
	}

	// Retryable error triggers retries until success
	calls = 0
	err = Retry(ctx, 3, time.Millisecond, func() error {
		calls++
		if calls < 3 {
			return &RetryableError{Err: errTransient}
		}
		return nil
	})
	if err != nil || calls != 3 {
		t.Errorf("Retry() = %v after %d calls, want nil after 3", err, calls)
	}

	// Exhausted attempts return the last error
	err = Retry(ctx, 2, time.Millisecond, func() error {
		return &RetryableError{Err: errTransient}
	})
	if !errors.Is(err, errTransient) {
		t.Errorf("Retry() = %v, want wrapped transient error", err)
	}
}

func TestRetryContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	err := Retry(ctx, 3, time.Hour, func() error {
		return &RetryableError{Err: errTransient}
	})
	if err != context.Canceled {
		t.Errorf("Should return context error: %v", err)
	}
}

func TestDialRedisUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	// Port 1 is reserved and refuses connections.
	if _, err := DialRedis(ctx, "redis://127.0.0.1:1/0", 1); err == nil {
		t.Error("DialRedis should fail against a closed port")
	}
}
