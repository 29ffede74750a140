package storage

import "context"

// VisitStorage keeps running per-page visit totals.
type VisitStorage interface {
	// IncrVisits adds one visit to page and returns the new total.
	IncrVisits(ctx context.Context, page string) (int64, error)
	// Visits returns the total for page, zero when it was never visited.
	Visits(ctx context.Context, page string) (int64, error)
}
