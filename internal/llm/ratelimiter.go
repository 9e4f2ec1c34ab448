package llm

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"
)

// RateLimitedProvider spaces gateway calls so a shared API key stays under
// the provider's per-minute quota.
type RateLimitedProvider struct {
	next    Provider
	limiter *rate.Limiter
}

// NewRateLimitedProvider allows at most rpm calls per minute through to
// next, with bursts up to rpm. A non-positive rpm returns next unchanged.
func NewRateLimitedProvider(next Provider, rpm int) Provider {
	if rpm <= 0 {
		return next
	}
	return &RateLimitedProvider{
		next:    next,
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(rpm)), rpm),
	}
}

func (r *RateLimitedProvider) Name() string {
	return r.next.Name()
}

// Complete waits for a slot, giving up when ctx ends first.
func (r *RateLimitedProvider) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("waiting for %s rate limit: %w", r.next.Name(), err)
	}
	return r.next.Complete(ctx, req)
}
