package syncstate

import (
	"context"
	"errors"
	log "log/slog"
	"time"

	"github.com/sethvargo/go-retry"
)

// Retry executes task with Fibonacci backoff up to 5 retries.
// If retries are exhausted, gaveUpTask is invoked (when not nil) and the final error is returned.
func Retry(ctx context.Context, task func(ctx context.Context) error, gaveUpTask func(ctx context.Context)) error {
	b := retry.NewFibonacci(1 * time.Second)
	if err := retry.Do(ctx, retry.WithMaxRetries(5, b), task); err != nil {
		log.Warn(err.Error() + ", gave up")
		if gaveUpTask != nil {
			gaveUpTask(ctx)
		}
		return err
	}
	return nil
}

// ShouldRetry reports whether the error is retryable (non-nil and not a known permanent failure).
func ShouldRetry(err error) bool {
	if err == nil {
		return false
	}
	// Context cancellations/timeouts are permanent from the caller's POV.
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	// Encoding problems won't heal on retry.
	var e Error
	if errors.As(err, &e) && e.Code == MarshalFailure {
		return false
	}
	return true
}

// retryingStore decorates a Store with Fibonacci-backoff retries on transient
// Fetch/Put errors. The transactional boundary stays retry-free; hardening a
// flaky backend belongs to the adapter layer, behind the Store contract.
type retryingStore struct {
	inner Store
}

// NewRetryingStore wraps store so transient errors are retried before they
// surface to a property read or a flush.
func NewRetryingStore(store Store) Store {
	return &retryingStore{inner: store}
}

func (s *retryingStore) Fetch(ctx context.Context, key string) (bool, []byte, error) {
	var found bool
	var value []byte
	err := Retry(ctx, func(ctx context.Context) error {
		var err error
		found, value, err = s.inner.Fetch(ctx, key)
		if ShouldRetry(err) {
			return retry.RetryableError(err)
		}
		return err
	}, nil)
	return found, value, err
}

func (s *retryingStore) Put(ctx context.Context, key string, value []byte) error {
	return Retry(ctx, func(ctx context.Context) error {
		err := s.inner.Put(ctx, key, value)
		if ShouldRetry(err) {
			return retry.RetryableError(err)
		}
		return err
	}, nil)
}
