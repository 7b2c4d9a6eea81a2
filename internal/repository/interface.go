package repository

import (
	"context"

	"usermgmt/pkg/domain"
)

// Repository persists users and enforces the invariants that must hold for
// every stored row.
//
//go:generate mockgen -package mockrepository -source=interface.go -destination=mock/mockrepository.go *
type Repository interface {
	// Save validates the user (age, then name, then email uniqueness) and
	// stores it, returning the user with its assigned ID.
	Save(ctx context.Context, user domain.User) (*domain.User, error)
	// FindByID returns the user or a domain.ErrUserNotFound error.
	FindByID(ctx context.Context, id domain.UserID) (*domain.User, error)
	// GetByEmail returns the user or a domain.ErrUserNotFound error.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// EmailExists reports whether a user with the email is stored.
	EmailExists(ctx context.Context, email string) (bool, error)
	// UpdateStatus persists a new status and returns the updated user, or a
	// domain.ErrUserNotFound error.
	UpdateStatus(ctx context.Context, id domain.UserID, status domain.UserStatus) (*domain.User, error)
}
