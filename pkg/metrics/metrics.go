// Package metrics holds the Prometheus collectors and histogram settings
// shared across the application.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// Outcome label values of UserOperations.
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// UserOperations counts user service calls by operation and outcome. Rejected
// calls failed with a domain error (validation, duplicate, not found), errored
// calls with anything else.
var UserOperations = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint: gochecknoglobals
	Namespace: "usermgmt",
	Name:      "user_operations_total",
	Help:      "Number of user service operations by outcome.",
}, []string{"operation", "outcome"})
