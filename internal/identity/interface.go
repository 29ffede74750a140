package identity

import (
	"context"

	"civic/pkg/domain"
)

// ValidationResult reports whether a number is a valid identity number and,
// when it is not, which rule it broke.
type ValidationResult struct {
	Number string `json:"number"`
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

//go:generate mockgen -package mockidentity -source=interface.go -destination=mock/mockidentity.go *
type Service interface {
	Validate(number string) ValidationResult
	GenerateNumbers(n int) ([]string, error)

	Issue(ctx context.Context, userID domain.UserID, holder domain.Holder) (*domain.DigitalIdentity, error)
	Get(ctx context.Context, userID domain.UserID, ID domain.IdentityID) (*domain.DigitalIdentity, error)
	Delete(ctx context.Context, userID domain.UserID, ID domain.IdentityID) error
	List(ctx context.Context,
		userID domain.UserID,
		cursor string,
		limit uint) ([]domain.DigitalIdentity, string, error)

	EnqueueBatch(ctx context.Context, userID domain.UserID, size int) (*domain.IdentityBatch, error)
	Batch(ctx context.Context, userID domain.UserID, ID domain.BatchID) (*domain.IdentityBatch, error)
	ProcessBatch(ctx context.Context, ID domain.BatchID) error
}
