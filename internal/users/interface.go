package users

import (
	"context"

	"usermgmt/pkg/domain"
)

//go:generate mockgen -package mockusers -source=interface.go -destination=mock/mockusers.go *
type Service interface {
	Create(ctx context.Context, email, name string, age int, status domain.UserStatus) (*domain.User, error)
	GetByID(ctx context.Context, id domain.UserID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UpdateStatus(ctx context.Context, id domain.UserID, status domain.UserStatus) (*domain.User, error)
	ValidateAge(age int) error
	ValidateName(name string) error
}
