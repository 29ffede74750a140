package worker

import (
	"context"
	"errors"
	"fmt"

	"civic/internal/identity"
	"civic/pkg/domain"
	"civic/pkg/logger"
	"civic/pkg/serrors"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// IdentityBatchWorker fills identity batches enqueued by identity.Service.EnqueueBatch.
// Retries and backoff are left to river; the service records each failed run
// on the batch itself.
type IdentityBatchWorker struct {
	river.WorkerDefaults[identity.BatchJobArgs]

	identities identity.Service
}

func NewIdentityBatchWorker(identities identity.Service) *IdentityBatchWorker {
	return &IdentityBatchWorker{identities: identities}
}

// Work processes one batch. A batch that no longer exists, or a job whose
// arguments cannot name one, is cancelled instead of retried.
func (w *IdentityBatchWorker) Work(ctx context.Context, job *river.Job[identity.BatchJobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.Int("attempt", job.Attempt),
		zap.String("batchID", job.Args.BatchID))

	id, err := uuid.Parse(job.Args.BatchID)
	if err != nil {
		logger.Error(ctx, "invalid batch id in job args", zap.Error(err))

		return river.JobCancel(err) //nolint: wrapcheck
	}

	if err := w.identities.ProcessBatch(ctx, domain.BatchID(id)); err != nil {
		if errors.Is(err, serrors.ErrNotFound) {
			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error in processing identity batch", zap.Error(err))

		return fmt.Errorf("could not process identity batch: %w", err)
	}

	logger.Info(ctx, "identity batch processed successfully")

	return nil
}
