package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs in the same backend as the domain data,
// so a job inserted inside a transaction only becomes visible on commit.
type JobStorage interface {
	// AddJob inserts a job and reports whether it was added (false when a
	// unique job with the same arguments already exists).
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
