package sqldb_test

import (
	"context"
	"strings"
	"testing"

	"usermgmt/pkg/domain"
	"usermgmt/pkg/storage"
	"usermgmt/pkg/storage/sqldb"

	"github.com/stretchr/testify/require"
)

func newUser(email string) domain.User {
	return domain.User{
		Email:  email,
		Name:   "Ann",
		Age:    25,
		Status: domain.UserStatusActive,
	}
}

// runUserStorageSuite exercises the users table contract against any driver.
func runUserStorageSuite(t *testing.T, db *sqldb.SQL) {
	t.Helper()
	ctx := context.Background()

	t.Run("insert assigns increasing ids", func(t *testing.T) {
		first, err := db.InsertUser(ctx, newUser("first@example.com"))
		require.NoError(t, err)
		require.NotZero(t, first.ID)

		second, err := db.InsertUser(ctx, newUser("second@example.com"))
		require.NoError(t, err)
		require.Greater(t, second.ID, first.ID)
		require.Equal(t, "second@example.com", second.Email)
	})

	t.Run("insert ignores caller supplied id", func(t *testing.T) {
		u := newUser("preset@example.com")
		u.ID = 424242

		saved, err := db.InsertUser(ctx, u)
		require.NoError(t, err)
		require.NotEqual(t, domain.UserID(424242), saved.ID)
	})

	t.Run("duplicate email violates unique constraint", func(t *testing.T) {
		_, err := db.InsertUser(ctx, newUser("unique@example.com"))
		require.NoError(t, err)

		_, err = db.InsertUser(ctx, newUser("unique@example.com"))
		require.Error(t, err)
	})

	t.Run("select by id round trips", func(t *testing.T) {
		in := domain.User{Email: "rt@example.com", Name: "Bob", Age: 40, Status: domain.UserStatusInactive}
		saved, err := db.InsertUser(ctx, in)
		require.NoError(t, err)

		got, err := db.UserByID(ctx, saved.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		in.ID = saved.ID
		require.Equal(t, in, *got)
	})

	t.Run("select by id miss returns nil", func(t *testing.T) {
		got, err := db.UserByID(ctx, 99999)
		require.NoError(t, err)
		require.Nil(t, got)
	})

	t.Run("select and count by email", func(t *testing.T) {
		count, err := db.UserCountByEmail(ctx, "mail@example.com")
		require.NoError(t, err)
		require.Zero(t, count)

		got, err := db.UserByEmail(ctx, "mail@example.com")
		require.NoError(t, err)
		require.Nil(t, got)

		saved, err := db.InsertUser(ctx, newUser("mail@example.com"))
		require.NoError(t, err)

		count, err = db.UserCountByEmail(ctx, "mail@example.com")
		require.NoError(t, err)
		require.Equal(t, int64(1), count)

		got, err = db.UserByEmail(ctx, "mail@example.com")
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Equal(t, saved.ID, got.ID)
	})

	t.Run("update status", func(t *testing.T) {
		saved, err := db.InsertUser(ctx, newUser("status@example.com"))
		require.NoError(t, err)

		updated, err := db.UpdateUserStatus(ctx, saved.ID, domain.UserStatusInactive)
		require.NoError(t, err)
		require.NotNil(t, updated)
		require.Equal(t, domain.UserStatusInactive, updated.Status)

		got, err := db.UserByID(ctx, saved.ID)
		require.NoError(t, err)
		require.Equal(t, domain.UserStatusInactive, got.Status)
	})

	t.Run("insert of a taken email is a duplicate", func(t *testing.T) {
		_, err := db.InsertUser(ctx, newUser("twice@example.com"))
		require.NoError(t, err)

		_, err = db.InsertUser(ctx, newUser("twice@example.com"))
		require.ErrorIs(t, err, storage.ErrDuplicate)
		require.Equal(t, 1, strings.Count(err.Error(), "could not insert user"))
	})

	t.Run("update status of missing user returns nil", func(t *testing.T) {
		updated, err := db.UpdateUserStatus(ctx, 99999, domain.UserStatusInactive)
		require.NoError(t, err)
		require.Nil(t, updated)
	})
}

func TestSQLite_Users(t *testing.T) {
	runUserStorageSuite(t, setupSQLite(t))
}

func TestPostgres_Users(t *testing.T) {
	runUserStorageSuite(t, setupPostgres(t))
}

func TestSQLite_SeparateHandlesDoNotShareData(t *testing.T) {
	ctx := context.Background()
	a := setupSQLite(t)
	b := setupSQLite(t)

	_, err := a.InsertUser(ctx, newUser("only-a@example.com"))
	require.NoError(t, err)

	count, err := b.UserCountByEmail(ctx, "only-a@example.com")
	require.NoError(t, err)
	require.Zero(t, count)
}
