// Package ratelimit spaces out requests per platform so a run does not
// hammer any single job board.
package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"jobdigest/internal/model"
)

// PlatformLimiter enforces a minimum delay between requests to the same
// platform. All sources for a run share one instance.
type PlatformLimiter struct {
	mu       sync.Mutex
	lastCall map[string]time.Time // key: platform name
	minDelay time.Duration
}

// NewPlatformLimiter creates a limiter enforcing minDelay between
// consecutive requests to the same platform.
func NewPlatformLimiter(minDelay time.Duration) *PlatformLimiter {
	return &PlatformLimiter{
		lastCall: make(map[string]time.Time),
		minDelay: minDelay,
	}
}

// Wait blocks until enough time has passed since the last request to the
// given platform. Returns an error if the context is cancelled while
// waiting.
func (l *PlatformLimiter) Wait(ctx context.Context, platform string) error {
	l.mu.Lock()
	last, ok := l.lastCall[platform]
	now := time.Now()

	if !ok || now.Sub(last) >= l.minDelay {
		l.lastCall[platform] = now
		l.mu.Unlock()
		return nil
	}

	remaining := l.minDelay - now.Sub(last)
	l.mu.Unlock()

	select {
	case <-ctx.Done():
		return fmt.Errorf("rate limiter wait for %s: %w", platform, ctx.Err())
	case <-time.After(remaining):
	}

	l.mu.Lock()
	l.lastCall[platform] = time.Now()
	l.mu.Unlock()

	return nil
}

// Ensure Source implements model.JobSource.
var _ model.JobSource = (*Source)(nil)

// Source is a decorator enforcing platform-level rate limiting before
// delegating to the wrapped JobSource.
type Source struct {
	inner   model.JobSource
	limiter *PlatformLimiter
}

// New wraps a JobSource with rate limiting keyed on its name.
func New(inner model.JobSource, limiter *PlatformLimiter) *Source {
	return &Source{inner: inner, limiter: limiter}
}

func (s *Source) Name() string { return s.inner.Name() }

// Fetch waits for the limiter to allow a request, then delegates.
func (s *Source) Fetch(ctx context.Context, roles, locations []string) ([]model.RawJob, error) {
	if err := s.limiter.Wait(ctx, s.inner.Name()); err != nil {
		return nil, err
	}
	return s.inner.Fetch(ctx, roles, locations)
}
