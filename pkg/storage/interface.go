// Package storage defines the persistence interfaces the services depend on.
// Concrete backends live in subpackages (postgres).
//
//go:generate mockgen -package mockstorage -destination=mock/mockstorage.go civic/pkg/storage Storage,AllStorage,VisitStorage
package storage

import "context"

// AllStorage combines every domain-specific storage capability.
type AllStorage interface {
	IdentityStorage
	BatchStorage
	FeedbackStorage
	JobStorage
}

// TxStorage is a storage handle bound to an open transaction. It becomes
// unusable after Commit or Rollback.
type TxStorage interface {
	AllStorage

	Commit() error
	Rollback() error
}

// Storage is the non-transactional handle owned by the application.
type Storage interface {
	AllStorage

	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error
	// Close releases the underlying connection pool.
	Close() error

	// Begin starts a transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx runs cb inside a transaction, committing when cb returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
