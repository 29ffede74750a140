// Package ratelimit limits how often a key (usually a client IP) may hit an
// endpoint within a sliding window.
package ratelimit

import (
	"context"
	"time"
)

// Result is the outcome of a single Allow call.
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	// ResetAt is when the oldest counted request leaves the window.
	ResetAt time.Time
}

// Store counts requests per key.
type Store interface {
	// Allow records a request for key and reports whether it fits in limit
	// requests per window. Denied requests are not recorded.
	Allow(ctx context.Context, key string, limit int, window time.Duration) (Result, error)
}
