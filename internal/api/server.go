// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the user management service.
package api

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"usermgmt/internal/api/handler"
	"usermgmt/internal/api/specs/v1specs"
	"usermgmt/internal/config"
	"usermgmt/pkg/controller"
	"usermgmt/pkg/logger"
	"usermgmt/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/trace/noop"
)

// v1Spec contains the embedded OpenAPI document of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

const (
	specPath = "/specs/v1.yaml"
	docsPath = "/docs/"
	// apiPattern hands every path not served by the mux to the generated server.
	apiPattern = "/"

	meterName = "usermgmt/internal/api"
)

// timeoutBody is returned by http.TimeoutHandler when a request exceeds RequestTimeout.
const timeoutBody = `{"error":"application error","detail":"request timed out"}`

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
// Zero durations fall back to the net/http defaults.
type Options struct {
	// Handler describes the service in the root and health endpoints.
	Handler handler.Options
	// CORS lists the allowed cross-origin callers.
	CORS controller.CORSOptions

	// Addr is the TCP address the server listens on, e.g. "0.0.0.0:8000".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout is the global timeout applied via http.TimeoutHandler for handling requests.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// Pprof mounts the profiling handlers under /debug/pprof/.
	Pprof bool

	// Registerer and Gatherer back the metrics endpoint. Nil means the
	// Prometheus default registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewOptions constructs an Options value from the provided application configuration.
// repository names the storage backend reported by the health endpoint.
func NewOptions(cfg *config.Config, repository string) Options {
	return Options{
		Handler: handler.Options{
			Name:       cfg.App.Name,
			Version:    cfg.App.Version,
			Repository: repository,
		},
		CORS: controller.CORSOptions{
			AllowOrigins:     cfg.CORS.AllowOrigins,
			AllowCredentials: cfg.CORS.AllowCredentials,
			AllowMethods:     cfg.CORS.AllowMethods,
			AllowHeaders:     cfg.CORS.AllowHeaders,
		},

		Addr:              cfg.HTTPAddr(),
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		Pprof:             cfg.HTTP.Pprof,
	}
}

type Deps struct {
	handler.Deps
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
// It sets up:
// - Prometheus metrics endpoint (MetricsPath)
// - OpenTelemetry metrics exporter (Prometheus) feeding the generated server
//   and the request metrics middleware
// - Embedded OpenAPI spec and Swagger UI
// - user API routes backed by the generated server and handlers
// - pprof endpoints for profiling, when enabled
// The mux is wrapped, innermost first, with metrics, the request timeout,
// logging, CORS and panic recovery.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	registerer, gatherer := opts.Registerer, opts.Gatherer
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	metricsPath := opts.MetricsPath
	if metricsPath == "" {
		metricsPath = "/metrics"
	}

	mux := http.NewServeMux()

	// prometheus metrics server
	mux.Handle("GET "+metricsPath, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	// otel
	exp, err := otelprom.New(otelprom.WithRegisterer(registerer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exp),
		sdkmetric.WithView(sdkmetric.NewView(
			sdkmetric.Instrument{Name: controller.RequestDurationMetric, Kind: sdkmetric.InstrumentKindHistogram},
			sdkmetric.Stream{Aggregation: sdkmetric.AggregationExplicitBucketHistogram{
				Boundaries: metrics.DefaultBuckets,
			}},
		)),
	)

	// specs file
	mux.HandleFunc("GET "+specPath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// swagger playground
	mux.Handle(docsPath, v5emb.New(
		opts.Handler.Name,
		specPath,
		docsPath,
	))

	// api
	h := handler.New(deps.Deps, opts.Handler)
	v1Srv, err := v1specs.NewServer(h,
		v1specs.WithMeterProvider(mp),
		v1specs.WithTracerProvider(noop.NewTracerProvider()),
		v1specs.WithErrorHandler(h.HandleError),
		v1specs.WithNotFound(h.NotFound),
		v1specs.WithMethodNotAllowed(h.MethodNotAllowed))
	if err != nil {
		return nil, fmt.Errorf("could not create v1 api server: %w", err)
	}
	mux.Handle(apiPattern, v1Srv)

	if opts.Pprof {
		controller.RegisterPprof(mux)
	}

	withMetrics, err := controller.WithMetrics(mp.Meter(meterName), func(r *http.Request) string {
		if r.Pattern != apiPattern {
			return r.Pattern
		}
		if route, ok := v1Srv.FindPath(r.Method, r.URL); ok {
			return route.PathPattern()
		}

		return ""
	})
	if err != nil {
		return nil, fmt.Errorf("could not create metrics middleware: %w", err)
	}

	next := withMetrics(mux)
	if opts.RequestTimeout > 0 {
		next = http.TimeoutHandler(next, opts.RequestTimeout, timeoutBody)
	}
	next = controller.WithLogger(next)
	next = controller.WithCORS(opts.CORS)(next)
	next = controller.WithRecovery(next)

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           next,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
		ErrorLog:          slog.NewLogLogger(logger.Slog(context.Background()).Handler(), slog.LevelError),
	}, nil
}
