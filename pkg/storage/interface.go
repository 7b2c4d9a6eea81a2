// Package storage defines the storage contract the user repository relies on.
// It abstracts persistence and transaction management so that different
// relational backends (in-memory SQLite, PostgreSQL) can provide it.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import "context"

// AllStorage is the set of domain capabilities available both inside and
// outside a transaction.
type AllStorage interface {
	UserStorage
}

// TxStorage is a storage handle bound to an open transaction. It becomes
// unusable after Commit or Rollback.
type TxStorage interface {
	AllStorage

	// Commit finalizes the transaction.
	Commit() error
	// Rollback aborts the transaction, discarding all uncommitted changes.
	Rollback() error
}

// Storage is the non-transactional root handle.
type Storage interface {
	AllStorage

	// Close releases the underlying connections. For an in-memory database
	// this also discards all data.
	Close() error
	// Migrate brings the schema up to the latest embedded migration.
	Migrate(ctx context.Context) error

	// Begin starts a new transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx begins a transaction, invokes cb with it and commits when cb
	// returns nil, rolling back otherwise.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
