package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, logging, business rules, the HTTP
// server, the database connection and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" validate:"oneof=development production" yaml:"environment"`

	// App describes the service in the root endpoint, health checks and API docs.
	App struct {
		Name        string `env:"APP_NAME" env-default:"User Management API" yaml:"name"`
		Version     string `env:"APP_VERSION" env-default:"1.0.0" yaml:"version"`
		Description string `env:"APP_DESCRIPTION" env-default:"User management API" yaml:"description"`
	} `yaml:"app"`

	// Log configures the zap logger and its optional rotating file sink.
	Log struct {
		// Level is one of debug, info, warn, error. Empty picks a default per environment.
		Level string `env:"LOG_LEVEL" env-default:"" yaml:"level"`
		// File, when set, receives a copy of every log entry.
		File       string `env:"LOG_FILE" env-default:"" yaml:"file"`
		MaxSizeMB  int    `env:"LOG_MAX_SIZE_MB" env-default:"100" validate:"min=0" yaml:"maxSizeMB"`
		MaxBackups int    `env:"LOG_MAX_BACKUPS" env-default:"3" validate:"min=0" yaml:"maxBackups"`
		MaxAgeDays int    `env:"LOG_MAX_AGE_DAYS" env-default:"28" validate:"min=0" yaml:"maxAgeDays"`
		Compress   bool   `env:"LOG_COMPRESS" env-default:"false" yaml:"compress"`
	} `yaml:"log"`

	// Users holds the business rules applied to user records.
	Users struct {
		// MinAge is the youngest age accepted on creation.
		MinAge int `env:"USERS_MIN_AGE,MIN_USER_AGE" env-default:"18" validate:"min=0" yaml:"minAge"`
	} `yaml:"users"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Host is the interface the HTTP server binds to
		Host string `env:"HOST" env-default:"0.0.0.0" yaml:"host"`
		// Port is the TCP port the HTTP server listens on
		Port int `env:"PORT" env-default:"8000" validate:"min=1,max=65535" yaml:"port"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" validate:"startswith=/" yaml:"metricsPath"`
		// Pprof mounts the profiling handlers under /debug/pprof/
		Pprof bool `env:"HTTP_PPROF" env-default:"false" yaml:"pprof"`
	} `yaml:"http"`

	// CORS lists what cross-origin callers may do.
	CORS struct {
		AllowOrigins     []string `env:"CORS_ALLOW_ORIGINS,ALLOW_ORIGINS" env-default:"*" env-separator:"," yaml:"allowOrigins"`
		AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS,ALLOW_CREDENTIALS" env-default:"true" yaml:"allowCredentials"`
		AllowMethods     []string `env:"CORS_ALLOW_METHODS,ALLOW_METHODS" env-default:"*" env-separator:"," yaml:"allowMethods"`
		AllowHeaders     []string `env:"CORS_ALLOW_HEADERS,ALLOW_HEADERS" env-default:"*" env-separator:"," yaml:"allowHeaders"`
	} `yaml:"cors"`

	// Database contains all database connection related configurations
	Database struct {
		// Driver is either sqlite or postgres
		Driver string `env:"DATABASE_DRIVER" env-default:"sqlite" validate:"oneof=sqlite postgres" yaml:"driver"`
		// DSN is the driver specific data source, ":memory:" for a process-local sqlite database.
		// URL forms such as "sqlite:///:memory:" or "postgres://..." also select the driver.
		DSN string `env:"DATABASE_DSN,DATABASE_URL" env-default:":memory:" yaml:"dsn"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" validate:"min=0" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"2" validate:"min=0" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
		// AutoMigrate applies the embedded migrations when the server starts
		AutoMigrate bool `env:"DATABASE_AUTO_MIGRATE" env-default:"true" yaml:"autoMigrate"`
	} `yaml:"database"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// HTTPAddr returns the host:port pair the server listens on.
func (c *Config) HTTPAddr() string {
	return net.JoinHostPort(c.HTTP.Host, strconv.Itoa(c.HTTP.Port))
}

// Load receives the path for yaml config file and returns a filled and
// validated Config struct. A missing file is not an error: the configuration
// is then read from the environment and defaults only.
func Load(configPath string) (*Config, error) {
	var cfg Config

	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read config from env: %w", err)
		}
	} else if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// normalize accepts the settings formats of earlier deployments: database
// URLs carrying the driver as scheme and JSON style lists in env values.
func (c *Config) normalize() {
	dsn := c.Database.DSN
	switch {
	case strings.HasPrefix(dsn, sqliteURLPrefix):
		c.Database.Driver, c.Database.DSN = "sqlite", strings.TrimPrefix(dsn, sqliteURLPrefix)
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		c.Database.Driver = "postgres"
	}

	c.CORS.AllowOrigins = normalizeList(c.CORS.AllowOrigins)
	c.CORS.AllowMethods = normalizeList(c.CORS.AllowMethods)
	c.CORS.AllowHeaders = normalizeList(c.CORS.AllowHeaders)
}

const sqliteURLPrefix = "sqlite:///"

// normalizeList strips JSON list punctuation, so ["a", "b"] split on commas
// yields a and b.
func normalizeList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, item := range in {
		item = strings.Trim(strings.TrimSpace(item), `[]"' `)
		if item != "" {
			out = append(out, item)
		}
	}

	return out
}
