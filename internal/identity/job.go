package identity

import (
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// BatchJobArgs asks a worker to fill an identity batch.
type BatchJobArgs struct {
	// BatchID is unique so a batch never has two live jobs.
	BatchID string `json:"batchId" river:"unique"`

	maxAttempts int
}

func (args BatchJobArgs) Kind() string { return "IssueIdentityBatchJob" }

func (args BatchJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
