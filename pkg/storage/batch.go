package storage

import (
	"context"

	"civic/pkg/domain"
)

// BatchUpdates lists the fields to change on a batch. Zero values are left
// untouched; updated_at is always refreshed.
type BatchUpdates struct {
	Status domain.BatchStatus
	// Generated, when set, replaces the generated counter.
	Generated *int
	// LastError, when set, replaces the last error. An empty string clears it.
	LastError *string
	// IncrementAttempts bumps the attempts counter by one.
	IncrementAttempts bool
}

// BatchStorage persists identity batches.
type BatchStorage interface {
	StoreBatch(ctx context.Context, batch domain.IdentityBatch) (*domain.IdentityBatch, error)
	// BatchByID returns a batch regardless of owner, or nil. Used by workers.
	BatchByID(ctx context.Context, ID domain.BatchID) (*domain.IdentityBatch, error)
	// UserBatchByID returns the user's batch, or nil.
	UserBatchByID(ctx context.Context, userID domain.UserID, ID domain.BatchID) (*domain.IdentityBatch, error)
	// UpdateBatch applies updates and returns the updated batch, or nil when not found.
	UpdateBatch(ctx context.Context, ID domain.BatchID, updates BatchUpdates) (*domain.IdentityBatch, error)
}

// FeedbackStorage persists visitor feedback.
type FeedbackStorage interface {
	StoreFeedback(ctx context.Context, feedback domain.Feedback) (*domain.Feedback, error)
	// RecentFeedback returns up to limit entries, newest first.
	RecentFeedback(ctx context.Context, limit uint) ([]domain.Feedback, error)
}
