package utils

import (
	"context"
	"math/rand"
	"time"
)

// RetryPolicy describes a bounded retry with exponential backoff and jitter.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	// Jitter is the fraction of the computed delay randomly added or removed,
	// in [0, 1]. 0.2 means the actual delay lands within +/-20%.
	Jitter float64
}

// Delay returns the backoff before attempt n (0-based). Attempt 0 runs
// immediately.
func (p RetryPolicy) Delay(attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}
	d := p.BaseDelay << (attempt - 1)
	if p.MaxDelay > 0 && d > p.MaxDelay {
		d = p.MaxDelay
	}
	if p.Jitter > 0 {
		spread := float64(d) * p.Jitter
		d = time.Duration(float64(d) + (rand.Float64()*2-1)*spread)
		if d < 0 {
			d = 0
		}
	}
	return d
}

// RetryUntil runs fn until it reports done, the policy is exhausted, or ctx is
// cancelled. fn's error is remembered only for the final attempt.
func RetryUntil(ctx context.Context, policy RetryPolicy, fn func(ctx context.Context) (done bool, err error)) (bool, error) {
	var lastErr error
	for attempt := 0; attempt < policy.MaxAttempts; attempt++ {
		if d := policy.Delay(attempt); d > 0 {
			t := time.NewTimer(d)
			select {
			case <-ctx.Done():
				t.Stop()
				return false, ctx.Err()
			case <-t.C:
			}
		}
		done, err := fn(ctx)
		if done {
			return true, nil
		}
		lastErr = err
	}
	return false, lastErr
}
