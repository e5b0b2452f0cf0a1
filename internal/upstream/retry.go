package upstream

import (
	"context"
	"time"
)

// Defaults for RetryWithBackoff.
const (
	DefaultMaxAttempts  = 3
	DefaultInitialDelay = time.Second
)

// wait sleeps for d or until the context is done. Overridden in tests.
var wait = func(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RetryWithBackoff invokes op until it succeeds or the attempt budget is
// spent, doubling the delay between attempts. Only transient failures (see
// IsRetryable) are retried; any other failure propagates unchanged without
// consuming the budget. The combinator knows nothing about op's semantics.
func RetryWithBackoff[T any](ctx context.Context, op func(context.Context) (T, error), maxAttempts int, initialDelay time.Duration) (T, error) {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	delay := initialDelay
	for attempt := 1; ; attempt++ {
		value, err := op(ctx)
		if err == nil {
			return value, nil
		}

		if attempt >= maxAttempts || !IsRetryable(err) {
			return value, err
		}

		retryCount.Inc()
		if waitErr := wait(ctx, delay); waitErr != nil {
			return value, err
		}
		delay *= 2
	}
}
