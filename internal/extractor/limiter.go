package extractor

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"docextractor/internal/domain"
	"docextractor/internal/port"
)

type rateLimitedExtractor struct {
	limiter *rate.Limiter
	next    port.DocumentExtractor
}

// NewLimiter returns a limiter allowing perMinute calls per minute with an
// equal burst, or nil when perMinute is not positive.
func NewLimiter(perMinute int) *rate.Limiter {
	if perMinute <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute)
}

// NewRateLimited wraps next so each call waits for a limiter token first.
// A nil limiter returns next unchanged.
func NewRateLimited(limiter *rate.Limiter, next port.DocumentExtractor) port.DocumentExtractor {
	if limiter == nil {
		return next
	}
	return &rateLimitedExtractor{limiter: limiter, next: next}
}

func (e *rateLimitedExtractor) Extract(ctx context.Context, input port.ExtractInput) (*domain.DocumentData, error) {
	if err := e.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("waiting for provider rate limit: %w", err)
	}
	return e.next.Extract(ctx, input)
}
