package storage

import (
	"context"
	"time"

	"civic/pkg/domain"

	"github.com/google/uuid"
)

// Cursor is a keyset pagination position: rows strictly older than
// (CreatedAt, ID) come next.
type Cursor struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

// IsZero reports whether the cursor points at the first page.
func (c Cursor) IsZero() bool { return c.CreatedAt.IsZero() }

// UserIdentities is a page of identities plus the cursor of the next page,
// which is nil on the last page.
type UserIdentities struct {
	Identities []domain.DigitalIdentity
	Next       *Cursor
}

// IdentityStorage persists issued digital identities. Soft-deleted rows are
// invisible to every read.
type IdentityStorage interface {
	// StoreIdentities inserts identities and returns them with generated
	// fields filled in. It returns ErrDuplicateNumber when a number is taken.
	StoreIdentities(ctx context.Context, identities ...domain.DigitalIdentity) ([]domain.DigitalIdentity, error)
	// NumbersInUse returns the subset of numbers held by live identities.
	NumbersInUse(ctx context.Context, numbers []string) ([]string, error)
	// IdentityByID returns the user's identity, or nil when not found.
	IdentityByID(ctx context.Context, userID domain.UserID, ID domain.IdentityID) (*domain.DigitalIdentity, error)
	// UserIdentities returns up to limit identities older than cursor, newest first.
	UserIdentities(ctx context.Context, userID domain.UserID, cursor Cursor, limit uint) (UserIdentities, error)
	// DeleteIdentity soft-deletes the user's identity and returns it, or nil when not found.
	DeleteIdentity(ctx context.Context, userID domain.UserID, ID domain.IdentityID) (*domain.DigitalIdentity, error)
}
