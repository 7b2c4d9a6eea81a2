// Package main provides the CLI entrypoint for the user management service.
// It wires subcommands (serve, migrate), loads configuration, and initializes logging.
package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"log"
	"os"

	"usermgmt/internal/config"
	"usermgmt/pkg/logger"
	"usermgmt/pkg/storage/sqldb"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// getStorage opens the configured database and returns it along with a
// cleanup function closing it.
func getStorage(ctx context.Context, cfg *config.Config) (*sqldb.SQL, func()) {
	strg, err := sqldb.New(ctx, sqldb.Options{
		Driver:             cfg.Database.Driver,
		DSN:                cfg.Database.DSN,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
		MaxOpenConnections: cfg.Database.MaxOpenConnections,
		MaxIdleConnections: cfg.Database.MaxIdleConnections,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create storage", zap.String("driver", cfg.Database.Driver), zap.Error(err))
	}

	return strg, func() {
		logger.Info(ctx, "closing storage...")
		if err = strg.Close(); err != nil {
			logger.Warn(ctx, "could not close storage", zap.Error(err))
		}
	}
}

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use: "usermgmt",
	}

	// there is no way to access flags before command execution in cobra.
	// configPath here is parsed using the standard flags package.
	// following line is just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	configPath := flag.String("c", "config.yml", "The config file path")
	flag.Parse()

	// a .env file only seeds the environment; real variables win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatal("could not load .env file: ", err)
	}

	log.Println("loading config ...")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file: ", err)
	}

	if err := logger.Setup(logger.Options{
		Environment: cfg.Environment,
		Level:       cfg.Log.Level,
		File:        cfg.Log.File,
		MaxSizeMB:   cfg.Log.MaxSizeMB,
		MaxBackups:  cfg.Log.MaxBackups,
		MaxAgeDays:  cfg.Log.MaxAgeDays,
		Compress:    cfg.Log.Compress,
	}); err != nil {
		log.Fatal("could not setup logger: ", err)
	}

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		migrateCommand(cfg),
		serveCommand(cfg),
	)

	err = rootCmd.Execute()
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
