package repository_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"usermgmt/internal/repository"
	"usermgmt/pkg/domain"
	"usermgmt/pkg/serrors"
	"usermgmt/pkg/storage"
	mockstorage "usermgmt/pkg/storage/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRepository(t *testing.T) (*gomock.Controller, *mockstorage.MockStorage, repository.Repository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	r := repository.New(st, repository.Options{MinAge: domain.DefaultMinAge})

	return ctrl, st, r
}

// expectWithTx wires Storage.WithTx to execute the callback with a MockAllStorage.
func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func TestRepository_Save_Success(t *testing.T) {
	ctrl, st, r := newTestRepository(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UserCountByEmail(gomock.Any(), "a@b.com").Return(int64(0), nil)
		tx.EXPECT().InsertUser(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u domain.User) (domain.User, error) {
				require.Equal(t, domain.UserStatusActive, u.Status, "empty status defaults to active")
				u.ID = 1

				return u, nil
			},
		)
	})

	user, err := r.Save(context.Background(), domain.User{Email: "a@b.com", Name: "Ann", Age: 25})
	require.NoError(t, err)
	require.Equal(t, domain.UserID(1), user.ID)
	require.Equal(t, "Ann", user.Name)
}

func TestRepository_Save_InvalidAge_NoStorageCalls(t *testing.T) {
	_, _, r := newTestRepository(t)

	_, err := r.Save(context.Background(), domain.User{Email: "a@b.com", Name: "Ann", Age: 17})
	require.ErrorIs(t, err, domain.ErrInvalidAge)
}

func TestRepository_Save_InvalidName_NoStorageCalls(t *testing.T) {
	_, _, r := newTestRepository(t)

	for _, name := range []string{"", "   ", "\t"} {
		_, err := r.Save(context.Background(), domain.User{Email: "a@b.com", Name: name, Age: 30})
		require.ErrorIs(t, err, domain.ErrInvalidUserName)
	}
}

func TestRepository_Save_ValidationOrder(t *testing.T) {
	_, _, r := newTestRepository(t)
	ctx := context.Background()

	// age and name both invalid: age wins.
	_, err := r.Save(ctx, domain.User{Email: "a@b.com", Name: " ", Age: 10})
	require.ErrorIs(t, err, domain.ErrInvalidAge)
	require.NotErrorIs(t, err, domain.ErrInvalidUserName)
}

func TestRepository_Save_DuplicateEmail(t *testing.T) {
	ctrl, st, r := newTestRepository(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UserCountByEmail(gomock.Any(), "a@b.com").Return(int64(1), nil)
	})

	_, err := r.Save(context.Background(), domain.User{Email: "a@b.com", Name: "Ann", Age: 25})
	require.ErrorIs(t, err, domain.ErrDuplicateEmail)
	require.Contains(t, err.Error(), "duplicate email")
}

func TestRepository_Save_ConcurrentDuplicateOnInsert(t *testing.T) {
	ctrl, st, r := newTestRepository(t)

	// another transaction inserted the email after the count was taken
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UserCountByEmail(gomock.Any(), "a@b.com").Return(int64(0), nil)
		tx.EXPECT().InsertUser(gomock.Any(), gomock.Any()).Return(domain.User{},
			fmt.Errorf("could not insert user: %w: %w", storage.ErrDuplicate, errors.New("unique violation")))
	})

	_, err := r.Save(context.Background(), domain.User{Email: "a@b.com", Name: "Ann", Age: 25})
	require.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestRepository_Save_StorageErrorNotRewrapped(t *testing.T) {
	ctrl, st, r := newTestRepository(t)
	boom := fmt.Errorf("could not count users by email: %w", errors.New("db closed"))

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UserCountByEmail(gomock.Any(), gomock.Any()).Return(int64(0), boom)
	})

	_, err := r.Save(context.Background(), domain.User{Email: "a@b.com", Name: "Ann", Age: 25})
	require.ErrorIs(t, err, boom)
	require.Equal(t, "could not count users by email: db closed", err.Error())
}

func TestRepository_Save_StorageError(t *testing.T) {
	ctrl, st, r := newTestRepository(t)
	boom := errors.New("disk on fire")

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UserCountByEmail(gomock.Any(), gomock.Any()).Return(int64(0), nil)
		tx.EXPECT().InsertUser(gomock.Any(), gomock.Any()).Return(domain.User{}, boom)
	})

	_, err := r.Save(context.Background(), domain.User{Email: "a@b.com", Name: "Ann", Age: 25})
	require.ErrorIs(t, err, boom)
	require.Nil(t, serrors.KindOf(err))
}

func TestRepository_FindByID(t *testing.T) {
	_, st, r := newTestRepository(t)
	ctx := context.Background()

	st.EXPECT().UserByID(gomock.Any(), domain.UserID(7)).Return(&domain.User{ID: 7, Name: "Ann"}, nil)
	user, err := r.FindByID(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, domain.UserID(7), user.ID)

	st.EXPECT().UserByID(gomock.Any(), domain.UserID(99999)).Return(nil, nil)
	_, err = r.FindByID(ctx, 99999)
	require.ErrorIs(t, err, domain.ErrUserNotFound)
	require.Contains(t, err.Error(), "99999")

	boom := errors.New("boom")
	st.EXPECT().UserByID(gomock.Any(), domain.UserID(1)).Return(nil, boom)
	_, err = r.FindByID(ctx, 1)
	require.ErrorIs(t, err, boom)
	require.NotErrorIs(t, err, domain.ErrUserNotFound)
}

func TestRepository_GetByEmail(t *testing.T) {
	_, st, r := newTestRepository(t)
	ctx := context.Background()

	st.EXPECT().UserByEmail(gomock.Any(), "a@b.com").Return(&domain.User{ID: 1, Email: "a@b.com"}, nil)
	user, err := r.GetByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	require.Equal(t, "a@b.com", user.Email)

	st.EXPECT().UserByEmail(gomock.Any(), "x@b.com").Return(nil, nil)
	user, err = r.GetByEmail(ctx, "x@b.com")
	require.ErrorIs(t, err, domain.ErrUserNotFound)
	require.Nil(t, user)
}

func TestRepository_EmailExists(t *testing.T) {
	_, st, r := newTestRepository(t)
	ctx := context.Background()

	st.EXPECT().UserCountByEmail(gomock.Any(), "a@b.com").Return(int64(0), nil)
	exists, err := r.EmailExists(ctx, "a@b.com")
	require.NoError(t, err)
	require.False(t, exists)

	st.EXPECT().UserCountByEmail(gomock.Any(), "a@b.com").Return(int64(1), nil)
	exists, err = r.EmailExists(ctx, "a@b.com")
	require.NoError(t, err)
	require.True(t, exists)

	st.EXPECT().UserCountByEmail(gomock.Any(), "a@b.com").Return(int64(0), errors.New("boom"))
	_, err = r.EmailExists(ctx, "a@b.com")
	require.Error(t, err)
	require.NotErrorIs(t, err, domain.ErrUserNotFound)
}

func TestRepository_UpdateStatus(t *testing.T) {
	_, st, r := newTestRepository(t)
	ctx := context.Background()

	st.EXPECT().UpdateUserStatus(gomock.Any(), domain.UserID(3), domain.UserStatusInactive).
		Return(&domain.User{ID: 3, Status: domain.UserStatusInactive}, nil)
	user, err := r.UpdateStatus(ctx, 3, domain.UserStatusInactive)
	require.NoError(t, err)
	require.Equal(t, domain.UserStatusInactive, user.Status)

	st.EXPECT().UpdateUserStatus(gomock.Any(), domain.UserID(4), domain.UserStatusInactive).Return(nil, nil)
	_, err = r.UpdateStatus(ctx, 4, domain.UserStatusInactive)
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestNew_DefaultMinAge(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := repository.New(mockstorage.NewMockStorage(ctrl), repository.Options{})

	_, err := r.Save(context.Background(), domain.User{Email: "a@b.com", Name: "Ann", Age: domain.DefaultMinAge - 1})
	require.ErrorIs(t, err, domain.ErrInvalidAge)
}
