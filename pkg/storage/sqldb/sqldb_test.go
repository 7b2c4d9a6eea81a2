package sqldb_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"usermgmt/pkg/storage"
	"usermgmt/pkg/storage/sqldb"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testUser     = "postgres"
	testPassword = "postgres"
	testDB       = "testdb"
)

// setupSQLite opens a fresh, migrated in-memory database.
func setupSQLite(t *testing.T) *sqldb.SQL {
	t.Helper()
	ctx := context.Background()

	db, err := sqldb.New(ctx, sqldb.Options{Driver: sqldb.DriverSQLite, DSN: sqldb.MemoryDSN})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(ctx))
	t.Cleanup(func() { _ = db.Close() })

	return db
}

type postgresContainer struct {
	Container testcontainers.Container
	Host      string
	Port      int
}

func startPostgresContainer(ctx context.Context) (*postgresContainer, error) {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{"5432"},
		Env: map[string]string{
			"POSTGRES_USER":     testUser,
			"POSTGRES_PASSWORD": testPassword,
			"POSTGRES_DB":       testDB,
		},
		WaitingFor: wait.ForListeningPort("5432"),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("could not start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get container host: %w", err)
	}

	mappedPort, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return nil, fmt.Errorf("could not get mapped port: %w", err)
	}

	return &postgresContainer{
		Container: container,
		Host:      host,
		Port:      mappedPort.Int(),
	}, nil
}

// setupPostgres starts a throwaway postgres container and returns a migrated
// handle. Skipped with -short since it needs a container runtime.
func setupPostgres(t *testing.T) *sqldb.SQL {
	t.Helper()
	if testing.Short() {
		t.Skip("postgres container tests are skipped in short mode")
	}
	ctx := context.Background()

	pgContainer, err := startPostgresContainer(ctx)
	require.NoError(t, err)

	db, err := sqldb.New(ctx, sqldb.Options{
		Driver: sqldb.DriverPostgres,
		DSN: fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			testUser, testPassword, pgContainer.Host, pgContainer.Port, testDB),
		ConnMaxLifetime:    time.Minute,
		ConnMaxIdleTime:    time.Minute,
		MaxOpenConnections: 5,
		MaxIdleConnections: 1,
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(ctx))

	t.Cleanup(func() {
		_ = db.Close()
		_ = pgContainer.Container.Terminate(ctx)
	})

	return db
}

func TestNew_UnsupportedDriver(t *testing.T) {
	_, err := sqldb.New(context.Background(), sqldb.Options{Driver: "oracle"})
	require.ErrorIs(t, err, storage.ErrUnsupportedDriver)
}

func TestNew_SQLiteDefaultsToMemory(t *testing.T) {
	db, err := sqldb.New(context.Background(), sqldb.Options{Driver: sqldb.DriverSQLite})
	require.NoError(t, err)
	defer db.Close()

	require.Equal(t, sqldb.DriverSQLite, db.Driver())
	require.Nil(t, db.Pool)
}

func TestMigrate_Idempotent(t *testing.T) {
	db := setupSQLite(t)

	require.NoError(t, db.Migrate(context.Background()))
}

func TestDescription(t *testing.T) {
	require.Equal(t, "SQLite (In-Memory)", setupSQLite(t).Description())

	db, err := sqldb.New(context.Background(), sqldb.Options{
		Driver: sqldb.DriverSQLite,
		DSN:    "file:" + t.TempDir() + "/users.db",
	})
	require.NoError(t, err)
	defer db.Close()
	require.Equal(t, "SQLite", db.Description())
}
