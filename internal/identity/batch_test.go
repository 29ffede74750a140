package identity_test

import (
	"context"
	"errors"
	"testing"

	"civic/pkg/domain"
	"civic/pkg/serrors"
	"civic/pkg/storage"
	mockstorage "civic/pkg/storage/mock"
	"civic/pkg/tckn"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func pendingBatch(size, generated int, attempts uint) *domain.IdentityBatch {
	return &domain.IdentityBatch{
		ID:        domain.BatchID(uuid.New()),
		UserID:    domain.UserID(uuid.New()),
		Size:      size,
		Generated: generated,
		Attempts:  attempts,
		Status:    domain.BatchStatusPending,
	}
}

func TestService_ProcessBatch_Completes(t *testing.T) {
	ctrl, st, s := newTestService(t, nil)
	batch := pendingBatch(5, 2, 0)

	st.EXPECT().BatchByID(gomock.Any(), batch.ID).Return(batch, nil)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().NumbersInUse(gomock.Any(), gomock.Len(3)).Return(nil, nil)
		tx.EXPECT().StoreIdentities(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, identities ...domain.DigitalIdentity) ([]domain.DigitalIdentity, error) {
				seen := map[string]bool{}
				for _, identity := range identities {
					require.Equal(t, batch.UserID, identity.UserID)
					require.Equal(t, batch.ID, *identity.BatchID)
					require.True(t, tckn.Validate(identity.Number))
					require.False(t, seen[identity.Number])
					seen[identity.Number] = true
				}

				return identities, nil
			},
		)
		tx.EXPECT().UpdateBatch(gomock.Any(), batch.ID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.BatchID, updates storage.BatchUpdates) (*domain.IdentityBatch, error) {
				require.Equal(t, domain.BatchStatusCompleted, updates.Status)
				require.Equal(t, 5, *updates.Generated)
				require.Empty(t, *updates.LastError)
				require.False(t, updates.IncrementAttempts)

				return batch, nil
			},
		)
	})

	require.NoError(t, s.ProcessBatch(context.Background(), batch.ID))
}

func TestService_ProcessBatch_ReplacesTakenNumbers(t *testing.T) {
	ctrl, st, s := newTestService(t, nil)
	batch := pendingBatch(2, 0, 0)

	var first []string
	st.EXPECT().BatchByID(gomock.Any(), batch.ID).Return(batch, nil)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		gomock.InOrder(
			tx.EXPECT().NumbersInUse(gomock.Any(), gomock.Len(2)).DoAndReturn(
				func(_ context.Context, numbers []string) ([]string, error) {
					first = append([]string(nil), numbers...)

					return []string{numbers[0]}, nil
				},
			),
			tx.EXPECT().NumbersInUse(gomock.Any(), gomock.Len(2)).Return(nil, nil),
		)
		tx.EXPECT().StoreIdentities(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, identities ...domain.DigitalIdentity) ([]domain.DigitalIdentity, error) {
				require.NotEqual(t, first[0], identities[0].Number)
				require.Equal(t, first[1], identities[1].Number)

				return identities, nil
			},
		)
		tx.EXPECT().UpdateBatch(gomock.Any(), batch.ID, gomock.Any()).Return(batch, nil)
	})

	require.NoError(t, s.ProcessBatch(context.Background(), batch.ID))
}

func TestService_ProcessBatch_NotPendingIsNoop(t *testing.T) {
	_, st, s := newTestService(t, nil)

	for _, status := range []domain.BatchStatus{domain.BatchStatusCompleted, domain.BatchStatusFailed} {
		batch := pendingBatch(3, 3, 1)
		batch.Status = status
		st.EXPECT().BatchByID(gomock.Any(), batch.ID).Return(batch, nil)

		require.NoError(t, s.ProcessBatch(context.Background(), batch.ID))
	}
}

func TestService_ProcessBatch_NotFound(t *testing.T) {
	_, st, s := newTestService(t, nil)
	id := domain.BatchID(uuid.New())

	st.EXPECT().BatchByID(gomock.Any(), id).Return(nil, nil)
	require.ErrorIs(t, s.ProcessBatch(context.Background(), id), serrors.ErrNotFound)
}

func TestService_ProcessBatch_FailureIsRecorded(t *testing.T) {
	tests := []struct {
		name       string
		attempts   uint
		wantStatus domain.BatchStatus
	}{
		{name: "retry left", attempts: 0, wantStatus: ""},
		{name: "last attempt marks failed", attempts: 2, wantStatus: domain.BatchStatusFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl, st, s := newTestService(t, nil)
			batch := pendingBatch(1, 0, tt.attempts)
			cause := errors.New("pg down")

			st.EXPECT().BatchByID(gomock.Any(), batch.ID).Return(batch, nil)
			expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
				tx.EXPECT().NumbersInUse(gomock.Any(), gomock.Any()).Return(nil, cause)
			})
			st.EXPECT().UpdateBatch(gomock.Any(), batch.ID, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ domain.BatchID, updates storage.BatchUpdates) (*domain.IdentityBatch, error) {
					require.True(t, updates.IncrementAttempts)
					require.Contains(t, *updates.LastError, "pg down")
					require.Equal(t, tt.wantStatus, updates.Status)

					return batch, nil
				},
			)

			err := s.ProcessBatch(context.Background(), batch.ID)
			require.ErrorIs(t, err, cause)
		})
	}
}
