package storage

import "errors"

var (
	// ErrAlreadyInTx is returned by Begin when the handle is already transactional.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned by Commit or Rollback outside a transaction.
	ErrNotInTx = errors.New("not in tx")
	// ErrDuplicateNumber is returned when a live identity already holds the number.
	ErrDuplicateNumber = errors.New("identity number already in use")
)
