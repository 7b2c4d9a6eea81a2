package controller

import (
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// unmatchedRoute labels requests no route matched, keeping the label set
// bounded.
const unmatchedRoute = "unmatched"

// Instrument names recorded by WithMetrics.
const (
	RequestsMetric        = "http.server.requests"
	RequestDurationMetric = "http.server.request.duration"
)

// RouteFunc names the route a request was served by, or "" when none matched.
// It is called after the handler returns.
type RouteFunc func(r *http.Request) string

// MuxPattern is a RouteFunc reading the pattern an *http.ServeMux matched.
// The middleware must then wrap the mux directly, since the mux stores the
// pattern on the request it receives.
func MuxPattern(r *http.Request) string { return r.Pattern }

// WithMetrics returns a middleware recording a request counter and a latency
// histogram labelled by method, status code and the route named by route.
func WithMetrics(meter metric.Meter, route RouteFunc) (func(http.Handler) http.Handler, error) {
	requests, err := meter.Int64Counter(RequestsMetric,
		metric.WithDescription("Number of HTTP requests served."),
		metric.WithUnit("{request}"))
	if err != nil {
		return nil, fmt.Errorf("could not create request counter: %w", err)
	}
	duration, err := meter.Float64Histogram(RequestDurationMetric,
		metric.WithDescription("Duration of HTTP requests."),
		metric.WithUnit("s"))
	if err != nil {
		return nil, fmt.Errorf("could not create duration histogram: %w", err)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			name := route(r)
			if name == "" {
				name = unmatchedRoute
			}
			attrs := metric.WithAttributes(
				attribute.String("http.request.method", r.Method),
				attribute.String("http.route", name),
				attribute.Int("http.response.status_code", rec.status),
			)
			requests.Add(r.Context(), 1, attrs)
			duration.Record(r.Context(), time.Since(start).Seconds(), attrs)
		})
	}, nil
}
