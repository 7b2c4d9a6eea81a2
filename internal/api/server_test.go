package api_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"usermgmt/internal/api"
	"usermgmt/internal/api/handler"
	"usermgmt/internal/repository"
	"usermgmt/internal/users"
	"usermgmt/pkg/controller"
	"usermgmt/pkg/domain"
	"usermgmt/pkg/storage/sqldb"

	"github.com/go-faster/jx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

// newTestServer builds the full stack on a fresh in-memory database.
func newTestServer(t *testing.T, pprof bool) *httptest.Server {
	t.Helper()
	ctx := context.Background()

	db, err := sqldb.New(ctx, sqldb.Options{Driver: sqldb.DriverSQLite, DSN: sqldb.MemoryDSN})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(ctx))
	t.Cleanup(func() { _ = db.Close() })

	repo := repository.New(db, repository.Options{MinAge: domain.DefaultMinAge})
	svc := users.New(repo, users.Options{MinAge: domain.DefaultMinAge})

	registry := prometheus.NewRegistry()
	srv, err := api.NewServer(api.Deps{Deps: handler.Deps{Users: svc}}, api.Options{
		Handler: handler.Options{Name: "User Management API", Version: "1.0.0", Repository: db.Description()},
		CORS: controller.CORSOptions{
			AllowOrigins:     []string{"*"},
			AllowCredentials: true,
			AllowMethods:     []string{"*"},
			AllowHeaders:     []string{"*"},
		},
		RequestTimeout: 5 * time.Second,
		MetricsPath:    "/metrics",
		Pprof:          pprof,
		Registerer:     registry,
		Gatherer:       registry,
	})
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)

	return ts
}

type response struct {
	status int
	body   string
	header http.Header
}

func do(t *testing.T, ts *httptest.Server, method, path, body string) response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequestWithContext(context.Background(), method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	return response{status: res.StatusCode, body: string(data), header: res.Header}
}

func field(t *testing.T, body, name string) string {
	t.Helper()

	var value string
	require.NoError(t, jx.DecodeStr(body).Obj(func(d *jx.Decoder, key string) error {
		if key != name {
			return d.Skip()
		}
		raw, err := d.Raw()
		value = strings.Trim(raw.String(), `"`)

		return err
	}))

	return value
}

func TestScenario_CreateThenDuplicate(t *testing.T) {
	ts := newTestServer(t, false)

	res := do(t, ts, http.MethodPost, "/users", `{"email":"a@b.com","name":"Ann","age":25}`)
	require.Equal(t, http.StatusCreated, res.status)
	require.JSONEq(t, `{"id":1,"email":"a@b.com","name":"Ann","age":25,"status":"active"}`, res.body)

	res = do(t, ts, http.MethodPost, "/users", `{"email":"a@b.com","name":"Ann","age":25}`)
	require.Equal(t, http.StatusConflict, res.status)
	require.Equal(t, "duplicate email", field(t, res.body, "error"))
	require.Contains(t, field(t, res.body, "detail"), "duplicate email")

	// the first user is untouched
	res = do(t, ts, http.MethodGet, "/users/1", "")
	require.Equal(t, http.StatusOK, res.status)
	require.Equal(t, "Ann", field(t, res.body, "name"))
}

func TestScenario_SchemaErrors(t *testing.T) {
	bodies := map[string]string{
		"not an object":  `[1,2]`,
		"malformed":      `{"email":`,
		"trailing data":  `{"email":"a@b.com","name":"Ann","age":25}{"x":1}`,
		"trailing token": `{"email":"a@b.com","name":"Ann","age":25} trailing`,
		"missing age":    `{"email":"a@b.com","name":"Ann"}`,
		"missing name":   `{"email":"a@b.com","age":25}`,
		"age not int":    `{"email":"a@b.com","name":"Ann","age":"old"}`,
		"bad email":      `{"email":"not-an-email","name":"Ann","age":25}`,
		"unknown status": `{"email":"a@b.com","name":"Ann","age":25,"status":"banned"}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			ts := newTestServer(t, false)

			res := do(t, ts, http.MethodPost, "/users", body)
			require.Equal(t, http.StatusUnprocessableEntity, res.status)
			require.Equal(t, "validation error", field(t, res.body, "error"))

			// nothing was stored
			res = do(t, ts, http.MethodGet, "/users/check-email/a@b.com", "")
			require.Equal(t, "false", field(t, res.body, "exists"))
		})
	}
}

func TestScenario_UpdateStatusSchemaErrors(t *testing.T) {
	ts := newTestServer(t, false)

	res := do(t, ts, http.MethodPost, "/users", `{"email":"s@b.com","name":"Sam","age":30}`)
	require.Equal(t, http.StatusCreated, res.status)
	id := field(t, res.body, "id")

	for _, body := range []string{`{"status":"banned"}`, `{}`, `{"status":"inactive"}{}`} {
		res = do(t, ts, http.MethodPatch, "/users/"+id+"/status", body)
		require.Equal(t, http.StatusUnprocessableEntity, res.status, body)
		require.Equal(t, "validation error", field(t, res.body, "error"))
	}

	res = do(t, ts, http.MethodGet, "/users/"+id, "")
	require.Equal(t, "active", field(t, res.body, "status"))
}

func TestServer_RoutingErrorsUseErrorBody(t *testing.T) {
	ts := newTestServer(t, false)

	res := do(t, ts, http.MethodGet, "/nope", "")
	require.Equal(t, http.StatusNotFound, res.status)
	require.Equal(t, "application/json", res.header.Get("Content-Type"))
	require.Equal(t, "not found", field(t, res.body, "error"))

	res = do(t, ts, http.MethodDelete, "/users/1", "")
	require.Equal(t, http.StatusMethodNotAllowed, res.status)
	require.Equal(t, "method not allowed", field(t, res.body, "error"))
	require.NotEmpty(t, res.header.Get("Allow"))
}

func TestScenario_UnderageIsRejectedBeforeWrite(t *testing.T) {
	ts := newTestServer(t, false)

	res := do(t, ts, http.MethodPost, "/users", `{"email":"kid@b.com","name":"Kid","age":17}`)
	require.Equal(t, http.StatusBadRequest, res.status)
	require.Equal(t, "invalid age", field(t, res.body, "error"))

	res = do(t, ts, http.MethodGet, "/users/check-email/kid@b.com", "")
	require.JSONEq(t, `{"email":"kid@b.com","exists":false,"available":true}`, res.body)
}

func TestScenario_BlankNames(t *testing.T) {
	ts := newTestServer(t, false)

	for _, name := range []string{"", "   ", "\\t\\n"} {
		res := do(t, ts, http.MethodPost, "/users", `{"email":"n@b.com","name":"`+name+`","age":30}`)
		require.Equal(t, http.StatusBadRequest, res.status, "name %q", name)
		require.Equal(t, "invalid user name", field(t, res.body, "error"))
	}
}

func TestScenario_ValidationOrder(t *testing.T) {
	ts := newTestServer(t, false)

	res := do(t, ts, http.MethodPost, "/users", `{"email":"a@b.com","name":"Ann","age":25}`)
	require.Equal(t, http.StatusCreated, res.status)

	// duplicate email, blank name and underage: age is reported first
	res = do(t, ts, http.MethodPost, "/users", `{"email":"a@b.com","name":" ","age":3}`)
	require.Equal(t, "invalid age", field(t, res.body, "error"))

	// duplicate email and blank name: name is reported next
	res = do(t, ts, http.MethodPost, "/users", `{"email":"a@b.com","name":" ","age":30}`)
	require.Equal(t, "invalid user name", field(t, res.body, "error"))

	res = do(t, ts, http.MethodPost, "/users", `{"email":"a@b.com","name":"Ann","age":30}`)
	require.Equal(t, "duplicate email", field(t, res.body, "error"))
}

func TestScenario_RoundTripByIDAndEmail(t *testing.T) {
	ts := newTestServer(t, false)

	res := do(t, ts, http.MethodPost, "/users", `{"email":"bob@x.io","name":"Bob","age":41,"status":"inactive"}`)
	require.Equal(t, http.StatusCreated, res.status)
	created := res.body
	id := field(t, created, "id")
	require.NotEmpty(t, id)

	res = do(t, ts, http.MethodGet, "/users/"+id, "")
	require.Equal(t, http.StatusOK, res.status)
	require.JSONEq(t, created, res.body)

	res = do(t, ts, http.MethodGet, "/users/email/bob@x.io", "")
	require.Equal(t, http.StatusOK, res.status)
	require.JSONEq(t, created, res.body)
}

func TestScenario_NotFound(t *testing.T) {
	ts := newTestServer(t, false)

	res := do(t, ts, http.MethodGet, "/users/99999", "")
	require.Equal(t, http.StatusNotFound, res.status)
	require.Equal(t, "user not found", field(t, res.body, "error"))

	res = do(t, ts, http.MethodGet, "/users/email/ghost@b.com", "")
	require.Equal(t, http.StatusNotFound, res.status)

	res = do(t, ts, http.MethodGet, "/users/abc", "")
	require.Equal(t, http.StatusUnprocessableEntity, res.status)
	require.Equal(t, "validation error", field(t, res.body, "error"))
}

func TestScenario_CheckEmailBeforeAndAfterCreate(t *testing.T) {
	ts := newTestServer(t, false)

	res := do(t, ts, http.MethodGet, "/users/check-email/c@d.com", "")
	require.JSONEq(t, `{"email":"c@d.com","exists":false,"available":true}`, res.body)

	res = do(t, ts, http.MethodPost, "/users", `{"email":"c@d.com","name":"Cid","age":50}`)
	require.Equal(t, http.StatusCreated, res.status)

	res = do(t, ts, http.MethodGet, "/users/check-email/c@d.com", "")
	require.JSONEq(t, `{"email":"c@d.com","exists":true,"available":false}`, res.body)
}

func TestScenario_UpdateStatus(t *testing.T) {
	ts := newTestServer(t, false)

	res := do(t, ts, http.MethodPost, "/users", `{"email":"s@b.com","name":"Sam","age":30}`)
	require.Equal(t, http.StatusCreated, res.status)
	id := field(t, res.body, "id")

	res = do(t, ts, http.MethodPatch, "/users/"+id+"/status", `{"status":"inactive"}`)
	require.Equal(t, http.StatusOK, res.status)
	require.Equal(t, "inactive", field(t, res.body, "status"))

	res = do(t, ts, http.MethodGet, "/users/"+id, "")
	require.Equal(t, "inactive", field(t, res.body, "status"))

	res = do(t, ts, http.MethodPatch, "/users/424242/status", `{"status":"active"}`)
	require.Equal(t, http.StatusNotFound, res.status)
}

func TestServer_HealthRootAndRequestID(t *testing.T) {
	ts := newTestServer(t, false)

	res := do(t, ts, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, res.status)
	require.Equal(t, "SQLite (In-Memory)", field(t, res.body, "repository"))
	require.NotEmpty(t, res.header.Get(controller.RequestIDHeader))

	res = do(t, ts, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, res.status)
	require.Equal(t, "healthy", field(t, res.body, "status"))
}

func TestServer_DocsSpecAndMetrics(t *testing.T) {
	ts := newTestServer(t, false)

	res := do(t, ts, http.MethodGet, "/specs/v1.yaml", "")
	require.Equal(t, http.StatusOK, res.status)
	require.Contains(t, res.body, "openapi: 3.0.3")

	res = do(t, ts, http.MethodGet, "/docs/", "")
	require.Equal(t, http.StatusOK, res.status)
	require.Contains(t, strings.ToLower(res.body), "swagger")

	do(t, ts, http.MethodGet, "/users/99999", "")
	res = do(t, ts, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, res.status)
	require.Contains(t, res.body, "http_server_request_duration_seconds")
	require.Contains(t, res.body, `http_route="/users/{id}"`)
	require.Contains(t, res.body, `http_route="GET /specs/v1.yaml"`)
}

func TestServer_Pprof(t *testing.T) {
	res := do(t, newTestServer(t, false), http.MethodGet, "/debug/pprof/", "")
	require.Equal(t, http.StatusNotFound, res.status)

	res = do(t, newTestServer(t, true), http.MethodGet, "/debug/pprof/", "")
	require.Equal(t, http.StatusOK, res.status)
}

func TestServer_CORSPreflight(t *testing.T) {
	ts := newTestServer(t, false)

	req, err := http.NewRequestWithContext(context.Background(), http.MethodOptions, ts.URL+"/users", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://app.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	res, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	require.Equal(t, http.StatusNoContent, res.StatusCode)
	require.Equal(t, "https://app.example", res.Header.Get("Access-Control-Allow-Origin"))
}
