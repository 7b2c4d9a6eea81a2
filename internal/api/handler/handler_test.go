package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"usermgmt/internal/api/handler"
	mockusers "usermgmt/internal/users/mock"
	"usermgmt/pkg/domain"
	"usermgmt/pkg/serrors"

	"github.com/ogen-go/ogen/ogenerrors"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testOptions = handler.Options{
	Name:       "User Management API",
	Version:    "1.0.0",
	Repository: "SQLite (In-Memory)",
}

func newTestHandler(t *testing.T) (*mockusers.MockService, *handler.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := mockusers.NewMockService(ctrl)

	return svc, handler.New(handler.Deps{Users: svc}, testOptions)
}

func TestNewError_Mapping(t *testing.T) {
	h := handler.New(handler.Deps{}, testOptions)
	ctx := context.Background()

	cases := []struct {
		name     string
		err      error
		status   int
		category string
	}{
		{"invalid age", domain.NewInvalidAge(18), http.StatusBadRequest, handler.CategoryInvalidAge},
		{"invalid name", domain.NewInvalidUserName(), http.StatusBadRequest, handler.CategoryInvalidUserName},
		{"duplicate", domain.NewDuplicateEmail("a@b.com"), http.StatusConflict, handler.CategoryDuplicateEmail},
		{"not found", domain.NewUserNotFoundByID(9), http.StatusNotFound, handler.CategoryUserNotFound},
		{"bad request", serrors.With(serrors.ErrBadRequest, "bad"), http.StatusUnprocessableEntity, handler.CategoryValidation},
		{"internal", serrors.Wrap(serrors.ErrInternal, errors.New("x"), "y"), http.StatusInternalServerError, handler.CategoryApplication},
		{"plain", errors.New("boom"), http.StatusInternalServerError, handler.CategoryApplication},
		{"bare kind", domain.ErrUserNotFound, http.StatusNotFound, handler.CategoryUserNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := h.NewError(ctx, tc.err)
			require.Equal(t, tc.status, res.StatusCode)
			require.Equal(t, tc.category, res.Response.Error)
			require.Equal(t, tc.err.Error(), res.Response.Detail)
		})
	}
}

func TestHandleError_DecodeErrorsAreValidationErrors(t *testing.T) {
	h := handler.New(handler.Deps{}, testOptions)

	cases := map[string]error{
		"request": &ogenerrors.DecodeRequestError{Err: errors.New("unexpected trailing data")},
		"params":  &ogenerrors.DecodeParamsError{Err: errors.New(`invalid: id (parse "abc")`)},
	}
	for name, err := range cases {
		t.Run(name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.HandleError(context.Background(), rec, httptest.NewRequest(http.MethodPost, "/users", nil), err)

			require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			require.Contains(t, rec.Body.String(), `"error":"validation error"`)
		})
	}
}

func TestHandleError_OtherErrorsAreApplicationErrors(t *testing.T) {
	h := handler.New(handler.Deps{}, testOptions)

	rec := httptest.NewRecorder()
	h.HandleError(context.Background(), rec, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("encode failed"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"error":"application error","detail":"encode failed"}`, rec.Body.String())
}

func TestNotFound(t *testing.T) {
	h := handler.New(handler.Deps{}, testOptions)

	rec := httptest.NewRecorder()
	h.NotFound(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"error":"not found","detail":"no route for GET /nope"}`, rec.Body.String())
}

func TestMethodNotAllowed(t *testing.T) {
	h := handler.New(handler.Deps{}, testOptions)

	rec := httptest.NewRecorder()
	h.MethodNotAllowed(rec, httptest.NewRequest(http.MethodDelete, "/users/1", nil), "GET")
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	require.Equal(t, "GET", rec.Header().Get("Allow"))
	require.Contains(t, rec.Body.String(), `"error":"method not allowed"`)

	rec = httptest.NewRecorder()
	h.MethodNotAllowed(rec, httptest.NewRequest(http.MethodOptions, "/users/1", nil), "GET")
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Empty(t, rec.Body.String())
}

func TestRoot(t *testing.T) {
	_, h := newTestHandler(t)

	res, err := h.Root(context.Background())
	require.NoError(t, err)
	require.Equal(t, "User Management API is running", res.Message)
	require.Equal(t, "1.0.0", res.Version)
	require.Equal(t, "healthy", res.Status)
}

func TestHealth(t *testing.T) {
	_, h := newTestHandler(t)

	res, err := h.Health(context.Background())
	require.NoError(t, err)
	require.Equal(t, "healthy", res.Status)
	require.Equal(t, "User Management API", res.Service)
	require.Equal(t, "SQLite (In-Memory)", res.Repository)
	require.Equal(t, "1.0.0", res.Version)
}
