package storage

import (
	"context"

	"usermgmt/pkg/domain"
)

// UserStorage is the row-level contract of the users table. Lookups report a
// missing row as a nil user and a nil error; turning that into a domain error
// is the repository's job.
type UserStorage interface {
	// InsertUser appends a row and returns the user with its assigned ID.
	// The ID of the input is ignored.
	InsertUser(ctx context.Context, user domain.User) (domain.User, error)
	// UserByID returns the user with the given ID, or nil.
	UserByID(ctx context.Context, id domain.UserID) (*domain.User, error)
	// UserByEmail returns the user with the given email, or nil.
	UserByEmail(ctx context.Context, email string) (*domain.User, error)
	// UserCountByEmail returns how many rows carry the given email.
	UserCountByEmail(ctx context.Context, email string) (int64, error)
	// UpdateUserStatus sets the status of a user and returns the updated row,
	// or nil when no user has that ID.
	UpdateUserStatus(ctx context.Context, id domain.UserID, status domain.UserStatus) (*domain.User, error)
}
