// Package retry provides a bounded backoff policy for store read operations.
package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"

	"itam-control-plane/internal/platform/apperror"
)

// Policy bounds retries for transient store failures. Only errors classified
// as store_unavailable are retried; everything else fails immediately.
// Mutations must not go through a Policy: append is not idempotent at the
// store layer.
type Policy struct {
	// MaxAttempts is the total number of attempts including the first (min 1).
	MaxAttempts int
	// BaseDelay is the initial backoff interval between attempts.
	BaseDelay time.Duration
}

// Default returns the recommended read-retry policy: 3 attempts, 100ms base delay.
func Default() Policy {
	return Policy{MaxAttempts: 3, BaseDelay: 100 * time.Millisecond}
}

// Do runs op, retrying on retryable errors with exponential backoff until
// MaxAttempts is exhausted or ctx is done. The last error is returned.
func (p Policy) Do(ctx context.Context, op func() error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	base := p.BaseDelay
	if base <= 0 {
		base = 100 * time.Millisecond
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = base
	bo.MaxElapsedTime = 0 // bounded by attempt count, not wall clock

	wrapped := func() error {
		err := op()
		if err != nil && !apperror.IsRetryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	return backoff.Retry(wrapped, backoff.WithContext(backoff.WithMaxRetries(bo, uint64(attempts-1)), ctx))
}
