package storage

import "errors"

// Common errors returned by storage implementations.
var (
	// ErrAlreadyInTx is returned when an operation requiring a non-transactional
	// handle is attempted inside a transaction.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned when Commit or Rollback is called outside a transaction.
	ErrNotInTx = errors.New("not in tx")
	// ErrUnsupportedDriver is returned when the configured driver is unknown.
	ErrUnsupportedDriver = errors.New("unsupported storage driver")
	// ErrDuplicate is returned when a write violates a unique constraint.
	ErrDuplicate = errors.New("duplicate key")
)
