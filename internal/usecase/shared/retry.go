package shared

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"catalog-service/internal/domain/aggregate"
	"catalog-service/internal/pkg/errs"
)

var ErrMaxRetriesExceeded = errs.New("command failed after max retries")

type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 3, BaseDelay: 50 * time.Millisecond, MaxDelay: time.Second}
}

// RetryOnConflict re-runs fn while it fails with AggregateVersionOutdatedError. fn must
// re-read the aggregate on every attempt; a retry with the same stale version can never
// succeed. Any other error is returned immediately.
func RetryOnConflict[T any](ctx context.Context, logger *slog.Logger, policy RetryPolicy, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	attempts := max(policy.MaxAttempts, 1)

	for attempt := 0; attempt < attempts; attempt++ {
		result, err := fn(ctx)
		if err == nil {
			return result, nil
		}
		if !aggregate.IsOutdated(err) {
			return zero, err
		}
		if attempt == attempts-1 {
			logger.Warn("command still conflicting after max retries",
				"attempts", attempt+1,
				"error", err.Error())
			return zero, errs.Mark(err, ErrMaxRetriesExceeded)
		}

		wait := backoff(attempt, policy.BaseDelay, policy.MaxDelay)
		logger.Debug("retrying command after version conflict",
			"attempt", attempt+1,
			"wait_ms", wait.Milliseconds())

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(wait):
		}
	}
	return zero, ErrMaxRetriesExceeded
}

func backoff(attempt int, base, ceiling time.Duration) time.Duration {
	if base <= 0 {
		return 0
	}
	wait := time.Duration(1<<attempt) * base
	if ceiling > 0 && wait > ceiling {
		wait = ceiling
	}
	jitter := time.Duration(rand.Int64N(int64(wait/5) + 1))
	return wait + jitter
}
