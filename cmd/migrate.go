package main

import (
	"context"

	"usermgmt/internal/config"
	"usermgmt/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCommand constructs the 'migrate' subcommand that applies the embedded
// goose migrations of the configured driver. It is mostly useful for postgres;
// an in-memory sqlite database is migrated by serve on start.
func migrateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getStorage(ctx, cfg)
			defer closeStrg()

			if err := strg.Migrate(ctx); err != nil {
				logger.Fatal(ctx, "could not migrate database", zap.String("driver", strg.Driver()), zap.Error(err))
			}
			logger.Info(ctx, "database migrated", zap.String("driver", strg.Driver()))
		},
	}

	return cmd
}
