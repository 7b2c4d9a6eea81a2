package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"usermgmt/pkg/controller"

	"github.com/stretchr/testify/require"
)

var permissive = controller.CORSOptions{
	AllowOrigins:     []string{"*"},
	AllowCredentials: true,
	AllowMethods:     []string{"*"},
	AllowHeaders:     []string{"*"},
}

func TestWithCORS_Preflight(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodOptions, "/anything", nil)
	req.Header.Set("Origin", "https://app.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type, X-Request-Id")
	rec := httptest.NewRecorder()

	controller.WithCORS(permissive)(next).ServeHTTP(rec, req)

	require.False(t, called, "next handler should not be called for OPTIONS preflight")
	res := rec.Result()
	require.Equal(t, http.StatusNoContent, res.StatusCode)

	require.Equal(t, "https://app.example", res.Header.Get("Access-Control-Allow-Origin"))
	require.Equal(t, "true", res.Header.Get("Access-Control-Allow-Credentials"))
	require.Equal(t, "Content-Type, X-Request-Id", res.Header.Get("Access-Control-Allow-Headers"))
	require.Contains(t, res.Header.Get("Access-Control-Allow-Methods"), http.MethodPatch)
}

func TestWithCORS_NormalRequest(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/path", nil)
	req.Header.Set("Origin", "https://app.example")
	rec := httptest.NewRecorder()

	controller.WithCORS(permissive)(next).ServeHTTP(rec, req)

	require.True(t, called, "next handler should be called for non-OPTIONS request")
	res := rec.Result()
	require.Equal(t, http.StatusTeapot, res.StatusCode)
	require.Equal(t, "https://app.example", res.Header.Get("Access-Control-Allow-Origin"))
	require.Equal(t, "Origin", res.Header.Get("Vary"))
}

func TestWithCORS_WildcardWithoutCredentials(t *testing.T) {
	opts := permissive
	opts.AllowCredentials = false

	req := httptest.NewRequest(http.MethodGet, "/path", nil)
	req.Header.Set("Origin", "https://app.example")
	rec := httptest.NewRecorder()

	controller.WithCORS(opts)(http.NotFoundHandler()).ServeHTTP(rec, req)

	require.Equal(t, "*", rec.Result().Header.Get("Access-Control-Allow-Origin"))
	require.Empty(t, rec.Result().Header.Get("Access-Control-Allow-Credentials"))
}

func TestWithCORS_DisallowedOrigin(t *testing.T) {
	opts := controller.CORSOptions{
		AllowOrigins: []string{"https://good.example"},
		AllowMethods: []string{http.MethodGet},
		AllowHeaders: []string{"Content-Type"},
	}
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	mw := controller.WithCORS(opts)(next)

	req := httptest.NewRequest(http.MethodOptions, "/path", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec := httptest.NewRecorder()
	mw.ServeHTTP(rec, req)
	require.Equal(t, http.StatusForbidden, rec.Result().StatusCode)
	require.False(t, called)

	req = httptest.NewRequest(http.MethodGet, "/path", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	mw.ServeHTTP(rec, req)
	require.True(t, called)
	require.Empty(t, rec.Result().Header.Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/path", nil)
	req.Header.Set("Origin", "https://good.example")
	rec = httptest.NewRecorder()
	mw.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Result().StatusCode)
	require.Equal(t, "https://good.example", rec.Result().Header.Get("Access-Control-Allow-Origin"))
	require.Equal(t, "GET", rec.Result().Header.Get("Access-Control-Allow-Methods"))
	require.Equal(t, "Content-Type", rec.Result().Header.Get("Access-Control-Allow-Headers"))
}
