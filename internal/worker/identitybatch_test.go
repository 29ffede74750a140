package worker_test

import (
	"context"
	"errors"
	"testing"

	"civic/internal/identity"
	mockidentity "civic/internal/identity/mock"
	"civic/internal/worker"
	"civic/pkg/domain"
	"civic/pkg/logger"
	"civic/pkg/serrors"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func makeJob(id int64, batchID string) *river.Job[identity.BatchJobArgs] {
	return &river.Job[identity.BatchJobArgs]{
		JobRow: &rivertype.JobRow{ID: id, Attempt: 1},
		Args:   identity.BatchJobArgs{BatchID: batchID},
	}
}

func newTestWorker(t *testing.T) (*mockidentity.MockService, *worker.IdentityBatchWorker) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mock := mockidentity.NewMockService(ctrl)

	return mock, worker.NewIdentityBatchWorker(mock)
}

func TestIdentityBatchWorker_Work_Success(t *testing.T) {
	mock, w := newTestWorker(t)
	id := uuid.New()

	mock.EXPECT().ProcessBatch(gomock.Any(), domain.BatchID(id)).Return(nil)
	require.NoError(t, w.Work(context.Background(), makeJob(1, id.String())))
}

func TestIdentityBatchWorker_Work_NotFoundCancels(t *testing.T) {
	mock, w := newTestWorker(t)
	id := uuid.New()

	mock.EXPECT().ProcessBatch(gomock.Any(), domain.BatchID(id)).Return(serrors.With(serrors.ErrNotFound, "batch not found"))

	err := w.Work(context.Background(), makeJob(2, id.String()))
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestIdentityBatchWorker_Work_InvalidArgsCancels(t *testing.T) {
	_, w := newTestWorker(t)

	err := w.Work(context.Background(), makeJob(3, "not-a-uuid"))
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestIdentityBatchWorker_Work_GenericErrorRetried(t *testing.T) {
	mock, w := newTestWorker(t)
	id := uuid.New()
	cause := errors.New("pg down")

	mock.EXPECT().ProcessBatch(gomock.Any(), domain.BatchID(id)).Return(cause)

	err := w.Work(context.Background(), makeJob(4, id.String()))
	require.ErrorIs(t, err, cause)
	var cancelErr *river.JobCancelError
	require.NotErrorAs(t, err, &cancelErr, "did not expect JobCancelError")
	var snoozeErr *river.JobSnoozeError
	require.NotErrorAs(t, err, &snoozeErr, "did not expect JobSnoozeError")
}
