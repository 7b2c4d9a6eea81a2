package handler_test

import (
	"context"
	"testing"

	"usermgmt/internal/api/handler"
	"usermgmt/internal/api/specs/v1specs"
	"usermgmt/pkg/domain"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var ann = &domain.User{ID: 1, Email: "a@b.com", Name: "Ann", Age: 25, Status: domain.UserStatusActive}

func TestDomainUserToV1Specs(t *testing.T) {
	require.Equal(t, &v1specs.User{
		ID:     1,
		Email:  "a@b.com",
		Name:   "Ann",
		Age:    25,
		Status: v1specs.UserStatusActive,
	}, handler.DomainUserToV1Specs(ann))
}

func TestCreateUser_DefaultStatusLeftToService(t *testing.T) {
	svc, h := newTestHandler(t)
	ctx := context.Background()

	svc.EXPECT().Create(ctx, "a@b.com", "Ann", 25, domain.UserStatus("")).Return(ann, nil)

	res, err := h.CreateUser(ctx, &v1specs.CreateUserRequest{Email: "a@b.com", Name: "Ann", Age: 25})
	require.NoError(t, err)
	require.Equal(t, int64(1), res.ID)
	require.Equal(t, v1specs.UserStatusActive, res.Status)
}

func TestCreateUser_ExplicitStatus(t *testing.T) {
	svc, h := newTestHandler(t)
	ctx := context.Background()
	inactive := *ann
	inactive.Status = domain.UserStatusInactive

	svc.EXPECT().Create(ctx, "a@b.com", "Ann", 25, domain.UserStatusInactive).Return(&inactive, nil)

	res, err := h.CreateUser(ctx, &v1specs.CreateUserRequest{
		Email:  "a@b.com",
		Name:   "Ann",
		Age:    25,
		Status: v1specs.NewOptUserStatus(v1specs.UserStatusInactive),
	})
	require.NoError(t, err)
	require.Equal(t, v1specs.UserStatusInactive, res.Status)
}

func TestCreateUser_DomainErrorsPassThrough(t *testing.T) {
	svc, h := newTestHandler(t)
	ctx := context.Background()
	dup := domain.NewDuplicateEmail("a@b.com")

	svc.EXPECT().Create(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, dup)

	res, err := h.CreateUser(ctx, &v1specs.CreateUserRequest{Email: "a@b.com", Name: "Ann", Age: 25})
	require.Nil(t, res)
	require.ErrorIs(t, err, domain.ErrDuplicateEmail)

	mapped := h.NewError(ctx, err)
	require.Equal(t, 409, mapped.StatusCode)
	require.Equal(t, "duplicate email: a@b.com already exists", mapped.Response.Detail)
}

func TestGetUser(t *testing.T) {
	svc, h := newTestHandler(t)
	ctx := context.Background()

	svc.EXPECT().GetByID(ctx, domain.UserID(1)).Return(ann, nil)
	res, err := h.GetUser(ctx, v1specs.GetUserParams{ID: 1})
	require.NoError(t, err)
	require.Equal(t, "Ann", res.Name)

	svc.EXPECT().GetByID(ctx, domain.UserID(99999)).Return(nil, domain.NewUserNotFoundByID(99999))
	_, err = h.GetUser(ctx, v1specs.GetUserParams{ID: 99999})
	require.ErrorIs(t, err, domain.ErrUserNotFound)
	require.Equal(t, "user with id '99999' not found", err.Error())
}

func TestGetUserByEmail(t *testing.T) {
	svc, h := newTestHandler(t)
	ctx := context.Background()

	svc.EXPECT().GetByEmail(ctx, "a@b.com").Return(ann, nil)
	res, err := h.GetUserByEmail(ctx, v1specs.GetUserByEmailParams{Email: "a@b.com"})
	require.NoError(t, err)
	require.Equal(t, int64(1), res.ID)

	svc.EXPECT().GetByEmail(ctx, "x@b.com").Return(nil, domain.NewUserNotFoundByEmail("x@b.com"))
	_, err = h.GetUserByEmail(ctx, v1specs.GetUserByEmailParams{Email: "x@b.com"})
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestCheckEmail(t *testing.T) {
	svc, h := newTestHandler(t)
	ctx := context.Background()

	svc.EXPECT().EmailExists(ctx, "a@b.com").Return(false, nil)
	res, err := h.CheckEmail(ctx, v1specs.CheckEmailParams{Email: "a@b.com"})
	require.NoError(t, err)
	require.Equal(t, &v1specs.EmailCheck{Email: "a@b.com", Exists: false, Available: true}, res)

	svc.EXPECT().EmailExists(ctx, "a@b.com").Return(true, nil)
	res, err = h.CheckEmail(ctx, v1specs.CheckEmailParams{Email: "a@b.com"})
	require.NoError(t, err)
	require.Equal(t, &v1specs.EmailCheck{Email: "a@b.com", Exists: true, Available: false}, res)
}

func TestUpdateUserStatus(t *testing.T) {
	svc, h := newTestHandler(t)
	ctx := context.Background()
	inactive := *ann
	inactive.Status = domain.UserStatusInactive

	svc.EXPECT().UpdateStatus(ctx, domain.UserID(1), domain.UserStatusInactive).Return(&inactive, nil)
	res, err := h.UpdateUserStatus(ctx,
		&v1specs.UpdateStatusRequest{Status: v1specs.UserStatusInactive},
		v1specs.UpdateUserStatusParams{ID: 1})
	require.NoError(t, err)
	require.Equal(t, v1specs.UserStatusInactive, res.Status)

	svc.EXPECT().UpdateStatus(ctx, domain.UserID(2), domain.UserStatusActive).Return(nil, domain.NewUserNotFoundByID(2))
	_, err = h.UpdateUserStatus(ctx,
		&v1specs.UpdateStatusRequest{Status: v1specs.UserStatusActive},
		v1specs.UpdateUserStatusParams{ID: 2})
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}
