package sqldb

import (
	"context"
	"fmt"

	"usermgmt/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	usersTable = "users"
)

// InsertUser stores a new row. Postgres reports the generated id through
// RETURNING; the sqlite3 goqu dialect has no RETURNING support, so the id is
// read from the driver's last insert id instead. A taken email fails with
// storage.ErrDuplicate.
func (s *SQL) InsertUser(ctx context.Context, user domain.User) (domain.User, error) {
	var row SQLUser
	row.FromDomain(user)

	ds := s.Builder.Insert(usersTable).Rows(row)

	if s.driver == DriverPostgres {
		var inserted SQLUser
		if _, err := ds.Returning(&SQLUser{}).Executor().ScanStructContext(ctx, &inserted); err != nil {
			return domain.User{}, insertError(err)
		}

		return *inserted.ToDomain(), nil
	}

	res, err := ds.Executor().ExecContext(ctx)
	if err != nil {
		return domain.User{}, insertError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.User{}, fmt.Errorf("could not read inserted user id: %w", err)
	}
	user.ID = domain.UserID(id)

	return user, nil
}

// UserByID returns the user with the given id, or nil when absent.
func (s *SQL) UserByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	var row SQLUser
	found, err := s.Builder.From(usersTable).
		Where(goqu.I("id").Eq(int64(id))).
		ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not select user by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UserByEmail returns the user with the given email, or nil when absent.
func (s *SQL) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var row SQLUser
	found, err := s.Builder.From(usersTable).
		Where(goqu.I("email").Eq(email)).
		ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not select user by email: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UserCountByEmail counts rows with the given email.
func (s *SQL) UserCountByEmail(ctx context.Context, email string) (int64, error) {
	count, err := s.Builder.From(usersTable).
		Where(goqu.I("email").Eq(email)).
		CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count users by email: %w", err)
	}

	return count, nil
}

// UpdateUserStatus sets the status of the given user and returns the stored row.
func (s *SQL) UpdateUserStatus(ctx context.Context, id domain.UserID, status domain.UserStatus) (*domain.User, error) {
	res, err := s.Builder.Update(usersTable).
		Set(goqu.Record{"status": string(status)}).
		Where(goqu.I("id").Eq(int64(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not update user status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("could not read affected rows: %w", err)
	}
	if affected == 0 {
		return nil, nil
	}

	return s.UserByID(ctx, id)
}
