package handler

import (
	"context"

	"usermgmt/internal/api/specs/v1specs"
	"usermgmt/pkg/domain"
	"usermgmt/pkg/logger"

	"go.uber.org/zap"
)

// DomainUserToV1Specs converts a domain user to its API representation.
func DomainUserToV1Specs(in *domain.User) *v1specs.User {
	return &v1specs.User{
		ID:     int64(in.ID),
		Email:  in.Email,
		Name:   in.Name,
		Age:    in.Age,
		Status: v1specs.UserStatus(in.Status),
	}
}

// CreateUser registers a new user. An omitted status is left to the service
// default.
func (h *Handler) CreateUser(ctx context.Context, req *v1specs.CreateUserRequest) (*v1specs.User, error) {
	logger.Info(ctx, "creating user", zap.String("email", req.Email))

	user, err := h.deps.Users.Create(ctx, req.Email, req.Name, req.Age, domain.UserStatus(req.Status.Value))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	logger.Info(ctx, "user created", zap.Int64("id", int64(user.ID)))

	return DomainUserToV1Specs(user), nil
}

// GetUser returns a user by id.
func (h *Handler) GetUser(ctx context.Context, params v1specs.GetUserParams) (*v1specs.User, error) {
	user, err := h.deps.Users.GetByID(ctx, domain.UserID(params.ID))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return DomainUserToV1Specs(user), nil
}

// GetUserByEmail returns a user by email.
func (h *Handler) GetUserByEmail(ctx context.Context, params v1specs.GetUserByEmailParams) (*v1specs.User, error) {
	user, err := h.deps.Users.GetByEmail(ctx, params.Email)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return DomainUserToV1Specs(user), nil
}

// CheckEmail reports whether an email is registered. The email is echoed as
// given.
func (h *Handler) CheckEmail(ctx context.Context, params v1specs.CheckEmailParams) (*v1specs.EmailCheck, error) {
	exists, err := h.deps.Users.EmailExists(ctx, params.Email)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return &v1specs.EmailCheck{
		Email:     params.Email,
		Exists:    exists,
		Available: !exists,
	}, nil
}

// UpdateUserStatus persists a new status for a user.
func (h *Handler) UpdateUserStatus(
	ctx context.Context,
	req *v1specs.UpdateStatusRequest,
	params v1specs.UpdateUserStatusParams) (*v1specs.User, error) {
	user, err := h.deps.Users.UpdateStatus(ctx, domain.UserID(params.ID), domain.UserStatus(req.Status))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return DomainUserToV1Specs(user), nil
}
