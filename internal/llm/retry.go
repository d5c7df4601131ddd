package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// RetryProvider is a decorator that retries transient errors with
// exponential backoff and jitter.
type RetryProvider struct {
	inner  Provider
	config RetryConfig
}

// WithRetry wraps a Provider with retry logic.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &RetryProvider{inner: p, config: cfg}
}

type retryPolicy int

const (
	retryNever retryPolicy = iota
	retryOnce
	retryAlways
)

// policyFor decides how a failed attempt is retried. A truncated response
// or a rejected key fails the same way every time. Invalid output gets a
// single second chance.
func policyFor(err error) retryPolicy {
	switch {
	case errors.As(err, new(*ErrMaxTokensExceeded)), errors.Is(err, errAuthRejected):
		return retryNever
	case errors.As(err, new(*ErrInvalidResponse)):
		return retryOnce
	default:
		return retryAlways
	}
}

// Generate retries inner until it succeeds, the error is permanent, the
// attempts run out or ctx is done. Per-attempt timeouts from an inner
// TimeoutProvider are retried like any outage.
func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var lastErr error
	retriedOnce := false
	maxAttempts := max(r.config.MaxAttempts, 1)

	for attempt := range maxAttempts {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return nil, err
		}
		switch policyFor(err) {
		case retryNever:
			return nil, err
		case retryOnce:
			if retriedOnce {
				return nil, err
			}
			retriedOnce = true
		}

		if attempt == maxAttempts-1 {
			break
		}

		timer := time.NewTimer(r.backoff(attempt, err))
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	return nil, lastErr
}

func (r *RetryProvider) ModelID() string {
	return r.inner.ModelID()
}

// backoff computes the wait before the attempt after attempt. A rate
// limit's RetryAfter takes precedence.
func (r *RetryProvider) backoff(attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	wait := float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(attempt))
	wait = min(wait, float64(r.config.MaxWait))

	// ±20% jitter
	wait += wait * 0.2 * (2*rand.Float64() - 1)
	return time.Duration(max(wait, 0))
}
