package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"usermgmt/internal/config"

	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)

	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, 18, cfg.Users.MinAge)
	require.Equal(t, "sqlite", cfg.Database.Driver)
	require.Equal(t, ":memory:", cfg.Database.DSN)
	require.True(t, cfg.Database.AutoMigrate)
	require.Equal(t, []string{"*"}, cfg.CORS.AllowOrigins)
	require.Equal(t, 10*time.Second, cfg.GracefulShutdownTimeout)
	require.Equal(t, "0.0.0.0:8000", cfg.HTTPAddr())
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
environment: production
app:
  name: Users
  version: 2.0.0
users:
  minAge: 21
http:
  host: 127.0.0.1
  port: 9000
cors:
  allowOrigins: ["https://a.example", "https://b.example"]
database:
  driver: postgres
  dsn: postgres://u:p@localhost:5432/users
`), 0o600))

	t.Setenv("PORT", "9100")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, "Users", cfg.App.Name)
	require.Equal(t, 21, cfg.Users.MinAge)
	require.Equal(t, "127.0.0.1:9100", cfg.HTTPAddr())
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowOrigins)
	require.Equal(t, "postgres", cfg.Database.Driver)
}

func TestLoad_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("users: [unclosed"), 0o600))

	_, err := config.Load(path)
	require.Error(t, err)
}

func TestLoad_LegacyEnvNames(t *testing.T) {
	t.Setenv("MIN_USER_AGE", "21")
	t.Setenv("DATABASE_URL", "sqlite:///:memory:")
	t.Setenv("ALLOW_ORIGINS", `["https://a.example", "https://b.example"]`)
	t.Setenv("ALLOW_CREDENTIALS", "false")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)

	require.Equal(t, 21, cfg.Users.MinAge)
	require.Equal(t, "sqlite", cfg.Database.Driver)
	require.Equal(t, ":memory:", cfg.Database.DSN)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowOrigins)
	require.False(t, cfg.CORS.AllowCredentials)
}

func TestLoad_PostgresURLSelectsDriver(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgresql://u:p@localhost:5432/users")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)
	require.Equal(t, "postgres", cfg.Database.Driver)
	require.Equal(t, "postgresql://u:p@localhost:5432/users", cfg.Database.DSN)
}

func TestLoad_ValidationNamesYAMLKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
environment: staging
http:
  port: 70000
database:
  driver: mysql
`), 0o600))

	_, err := config.Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "environment: oneof=development production")
	require.Contains(t, err.Error(), "http.port: max=65535")
	require.Contains(t, err.Error(), "database.driver: oneof=sqlite postgres")
}
