package controller_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"usermgmt/pkg/controller"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func routeCounts(t *testing.T, reader sdkmetric.Reader) map[string]int64 {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	counts := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "http.server.requests" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			for _, dp := range sum.DataPoints {
				route, _ := dp.Attributes.Value(attribute.Key("http.route"))
				counts[route.AsString()] += dp.Value
			}
		}
	}

	return counts
}

func TestWithMetrics_LabelsByRoutePattern(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	mw, err := controller.WithMetrics(mp.Meter("test"), controller.MuxPattern)
	require.NoError(t, err)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /users/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := mw(mux)

	for _, path := range []string{"/users/1", "/users/2", "/nope"} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	counts := routeCounts(t, reader)
	require.Equal(t, int64(2), counts["GET /users/{id}"])
	require.Equal(t, int64(1), counts["unmatched"])
}

func TestWithMetrics_CustomRouteFunc(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	mw, err := controller.WithMetrics(mp.Meter("test"), func(r *http.Request) string {
		if r.URL.Path == "/known" {
			return "/known"
		}

		return ""
	})
	require.NoError(t, err)

	h := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/known", nil))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/other", nil))

	counts := routeCounts(t, reader)
	require.Equal(t, int64(1), counts["/known"])
	require.Equal(t, int64(1), counts["unmatched"])
}
