package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"usermgmt/internal/api"
	"usermgmt/internal/api/handler"
	"usermgmt/internal/config"
	"usermgmt/internal/repository"
	"usermgmt/internal/users"
	"usermgmt/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// runServer serves until ctx is cancelled, then shuts the server down within
// the configured grace period.
func runServer(ctx context.Context, cfg *config.Config, server *http.Server) error {
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info(ctx, "starting webserver...", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("could not start webserver: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
		defer cancel()

		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop webserver: %w", err)
		}

		return nil
	})

	return g.Wait() //nolint: wrapcheck
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the API server",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := getStorage(ctx, cfg)
			defer closeStrg()

			if cfg.Database.AutoMigrate {
				if err := strg.Migrate(ctx); err != nil {
					logger.Fatal(ctx, "could not migrate database", zap.Error(err))
				}
			}

			repo := repository.New(strg, repository.NewOptions(cfg))
			svc := users.New(repo, users.NewOptions(cfg))

			server, err := api.NewServer(
				api.Deps{Deps: handler.Deps{Users: svc}},
				api.NewOptions(cfg, strg.Description()),
			)
			if err != nil {
				logger.Fatal(ctx, "could not create webserver", zap.Error(err))
			}

			logger.Info(ctx, "service started",
				zap.String("name", cfg.App.Name),
				zap.String("version", cfg.App.Version),
				zap.String("environment", cfg.Environment),
				zap.String("repository", strg.Description()),
				zap.String("docs", "http://"+server.Addr+"/docs/"),
			)

			if err := runServer(ctx, cfg, server); err != nil {
				logger.Error(ctx, "webserver failed", zap.Error(err))
			}

			logger.Info(ctx, "service stopped", zap.String("name", cfg.App.Name))
		},
	}

	return cmd
}
