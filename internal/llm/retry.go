package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// RetryPolicy is exponential backoff with jitter.
type RetryPolicy struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultRetryPolicy returns three attempts starting at one second.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		InitialWait: time.Second,
		MaxWait:     10 * time.Second,
		Multiplier:  2,
	}
}

// Wait returns the delay before retry number attempt, counting from 0.
func (p RetryPolicy) Wait(attempt int) time.Duration {
	wait := float64(p.InitialWait) * math.Pow(p.Multiplier, float64(attempt))
	wait = min(wait, float64(p.MaxWait))
	wait += wait * 0.2 * (2*rand.Float64() - 1)
	return time.Duration(max(wait, 0))
}

type retrying struct {
	inner  Provider
	policy RetryPolicy
}

// WithRetry retries transient failures of p. Rate limits honor their
// RetryAfter. A schema mismatch is retried once. Truncation and context
// errors are returned at once.
func WithRetry(p Provider, policy RetryPolicy) Provider {
	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = 1
	}
	return &retrying{inner: p, policy: policy}
}

func (r *retrying) Generate(ctx context.Context, req Request) (*Response, error) {
	var err error
	schemaRetried := false

	for attempt := range r.policy.MaxAttempts {
		var resp *Response
		resp, err = r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		if !retryable(err, &schemaRetried) || attempt == r.policy.MaxAttempts-1 {
			return nil, err
		}

		wait := r.policy.Wait(attempt)
		var rl *RateLimitError
		if errors.As(err, &rl) && rl.RetryAfter > 0 {
			wait = rl.RetryAfter
		}

		t := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			t.Stop()
			return nil, ctx.Err()
		case <-t.C:
		}
	}
	return nil, err
}

func (r *retrying) ModelID() string {
	return r.inner.ModelID()
}

func retryable(err error, schemaRetried *bool) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var truncated *TruncatedError
	if errors.As(err, &truncated) {
		return false
	}
	var invalid *InvalidResponseError
	if errors.As(err, &invalid) {
		if *schemaRetried {
			return false
		}
		*schemaRetried = true
	}
	return true
}
