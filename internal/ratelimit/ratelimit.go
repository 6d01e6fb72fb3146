// Package ratelimit provides named token-bucket limiters for the book
// metadata APIs. Each provider gets its own limiter so a burst against one
// API never starves the others.
package ratelimit

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// Conservative defaults per provider. Open Library asks for at most one
// request per second from unauthenticated clients; the others tolerate a
// little more.
var providerRates = map[string]int{
	"googlebooks": 2,
	"openlibrary": 1,
	"hardcover":   2,
}

// Limiter wraps rate.Limiter with the provider name for logging.
type Limiter struct {
	limiter *rate.Limiter
	name    string
}

// New creates a limiter allowing requestsPerSecond, with burst equal to
// the rate.
func New(name string, requestsPerSecond int) *Limiter {
	if requestsPerSecond <= 0 {
		requestsPerSecond = 1
	}
	return &Limiter{
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond),
		name:    name,
	}
}

// ForProvider returns a limiter tuned for the named provider, defaulting
// to 1 req/s for unknown names.
func ForProvider(name string) *Limiter {
	return New(name, providerRates[name])
}

// Wait blocks until the limiter allows a request, or the context is done.
func (l *Limiter) Wait(ctx context.Context) error {
	if err := l.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait for %s: %w", l.name, err)
	}
	return nil
}

// Allow reports whether a request may proceed without blocking.
func (l *Limiter) Allow() bool {
	return l.limiter.Allow()
}

// Name returns the provider name this limiter belongs to.
func (l *Limiter) Name() string {
	return l.name
}
