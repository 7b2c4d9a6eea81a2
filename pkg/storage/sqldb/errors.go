package sqldb

import (
	"errors"
	"fmt"

	"usermgmt/pkg/storage"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// isUniqueViolation reports whether err is a unique constraint failure of
// either backend.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		return liteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
	}

	return false
}

func insertError(err error) error {
	if isUniqueViolation(err) {
		return fmt.Errorf("could not insert user: %w: %w", storage.ErrDuplicate, err)
	}

	return fmt.Errorf("could not insert user: %w", err)
}
