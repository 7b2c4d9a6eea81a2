package handler

import (
	"context"

	"usermgmt/internal/api/specs/v1specs"
	"usermgmt/pkg/logger"
)

const statusHealthy = "healthy"

// Root reports that the API is running.
func (h *Handler) Root(ctx context.Context) (*v1specs.RootResponse, error) {
	logger.Info(ctx, "handling root endpoint")

	return &v1specs.RootResponse{
		Message: h.options.Name + " is running",
		Version: h.options.Version,
		Status:  statusHealthy,
	}, nil
}

// Health is a static liveness check.
func (h *Handler) Health(ctx context.Context) (*v1specs.HealthResponse, error) {
	logger.Debug(ctx, "health check requested")

	return &v1specs.HealthResponse{
		Status:     statusHealthy,
		Service:    h.options.Name,
		Repository: h.options.Repository,
		Version:    h.options.Version,
	}, nil
}
