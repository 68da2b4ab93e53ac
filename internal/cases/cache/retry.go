package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"contactcentre/pkg/platform/sentinel"
)

// retryOnContention runs fn until it stops failing with redis.TxFailedErr or the
// policy's attempts run out. It returns the number of attempts made.
// Exhaustion is reported as sentinel.ErrContention.
func retryOnContention(ctx context.Context, p RetryPolicy, fn func() error) (int, error) {
	maxAttempts := p.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	delay := p.InitialDelay

	for attempt := 1; ; attempt++ {
		err := fn()
		if err == nil || !errors.Is(err, redis.TxFailedErr) {
			return attempt, err
		}
		if attempt >= maxAttempts {
			return attempt, errors.Join(sentinel.ErrContention, err)
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return attempt, ctx.Err()
		case <-timer.C:
		}
		delay = nextDelay(delay, p)
	}
}

func nextDelay(current time.Duration, p RetryPolicy) time.Duration {
	mult := p.Multiplier
	if mult < 1 {
		mult = 1
	}
	next := time.Duration(float64(current) * mult)
	if p.MaxDelay > 0 && next > p.MaxDelay {
		return p.MaxDelay
	}
	return next
}
