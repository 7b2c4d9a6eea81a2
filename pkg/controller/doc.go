// Package controller contains HTTP middlewares and helper handlers used by the API server.
//
// Provided middlewares:
//   - WithRecovery: Turns handler panics into a 500 JSON error response.
//   - WithCORS: Adds CORS headers from configurable allow-lists and handles OPTIONS preflight.
//   - WithLogger: Attaches a request-scoped logger and request ID to the context and logs access info.
//   - WithMetrics: Records request counts and latencies per matched route through OpenTelemetry.
//
// Provided helpers:
//   - WriteError: Writes the uniform {"error", "detail"} JSON body.
//   - RegisterPprof: Mounts net/http/pprof handlers under /debug/pprof/.
package controller
