// Package ratelimit provides request throttling for the contact endpoint.
//
// The Limiter interface hides whether counting happens in process memory or
// in a shared Redis instance, so the endpoint logic stays the same when the
// deployment grows past a single instance.
package ratelimit

import (
	"context"
	"time"
)

// Decision is the outcome of a rate-limit check.
type Decision struct {
	Allowed   bool
	Remaining int
	// ResetTime is when the current window ends. When Allowed is false the
	// caller should retry after this time.
	ResetTime time.Time
}

// Limiter decides whether a request identified by key may proceed.
// Implementations must be safe for concurrent use.
type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
}
