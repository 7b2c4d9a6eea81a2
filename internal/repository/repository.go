// Package repository maps users to and from storage rows and guards the
// persistence invariants: minimum age, non-blank name and unique email.
package repository

import (
	"context"
	"errors"
	"fmt"

	"usermgmt/internal/config"
	"usermgmt/pkg/domain"
	"usermgmt/pkg/logger"
	"usermgmt/pkg/storage"

	"go.uber.org/zap"
)

// Options configure the validation rules applied before a user is stored.
type Options struct {
	// MinAge is the youngest age accepted by Save.
	MinAge int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MinAge: cfg.Users.MinAge,
	}
}

// repository is the storage backed implementation of Repository.
type repository struct {
	options Options
	storage storage.Storage
}

// New creates a Repository that owns the given storage handle. A non-positive
// MinAge falls back to domain.DefaultMinAge.
func New(storage storage.Storage, options Options) Repository {
	if options.MinAge <= 0 {
		options.MinAge = domain.DefaultMinAge
	}

	return &repository{
		options: options,
		storage: storage,
	}
}

func (r *repository) Save(ctx context.Context, user domain.User) (*domain.User, error) {
	if err := domain.ValidateAge(user.Age, r.options.MinAge); err != nil {
		return nil, err
	}
	if err := domain.ValidateName(user.Name); err != nil {
		return nil, err
	}
	if user.Status == "" {
		user.Status = domain.UserStatusActive
	}

	var saved domain.User
	// within one transaction the count rejects known emails early; the unique
	// index still decides races between concurrent creates, which surface as
	// storage.ErrDuplicate on insert.
	if err := r.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		count, err := tx.UserCountByEmail(ctx, user.Email)
		if err != nil {
			return err //nolint: wrapcheck
		}
		if count > 0 {
			return domain.NewDuplicateEmail(user.Email)
		}

		saved, err = tx.InsertUser(ctx, user)
		if errors.Is(err, storage.ErrDuplicate) {
			return domain.NewDuplicateEmail(user.Email)
		}

		return err //nolint: wrapcheck
	}); err != nil {
		return nil, err //nolint: wrapcheck
	}

	logger.Debug(ctx, "user saved", zap.Int64("id", int64(saved.ID)), zap.String("email", saved.Email))

	return &saved, nil
}

func (r *repository) FindByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	user, err := r.storage.UserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not find user by id: %w", err)
	}
	if user == nil {
		return nil, domain.NewUserNotFoundByID(id)
	}

	return user, nil
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := r.storage.UserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("could not find user by email: %w", err)
	}
	if user == nil {
		return nil, domain.NewUserNotFoundByEmail(email)
	}

	return user, nil
}

func (r *repository) EmailExists(ctx context.Context, email string) (bool, error) {
	count, err := r.storage.UserCountByEmail(ctx, email)
	if err != nil {
		return false, fmt.Errorf("could not check email: %w", err)
	}

	return count > 0, nil
}

func (r *repository) UpdateStatus(
	ctx context.Context,
	id domain.UserID,
	status domain.UserStatus) (*domain.User, error) {
	user, err := r.storage.UpdateUserStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("could not update user status: %w", err)
	}
	if user == nil {
		return nil, domain.NewUserNotFoundByID(id)
	}

	logger.Debug(ctx, "user status updated", zap.Int64("id", int64(id)), zap.String("status", string(status)))

	return user, nil
}
