package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"usermgmt/pkg/controller"

	"github.com/stretchr/testify/require"
)

func TestWithRecovery_PanicBecomes500(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("kaboom")
	})

	rec := httptest.NewRecorder()
	require.NotPanics(t, func() {
		controller.WithRecovery(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.JSONEq(t, `{"error":"application error","detail":"internal server error"}`, rec.Body.String())
}

func TestWithRecovery_AbortHandlerIsRethrown(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	})

	require.Panics(t, func() {
		controller.WithRecovery(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

func TestWithRecovery_PassThrough(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	rec := httptest.NewRecorder()
	controller.WithRecovery(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusAccepted, rec.Code)
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	controller.WriteError(rec, http.StatusConflict, "duplicate email", `a "quoted" detail`)

	require.Equal(t, http.StatusConflict, rec.Code)
	require.JSONEq(t, `{"error":"duplicate email","detail":"a \"quoted\" detail"}`, rec.Body.String())
}
