// Package handler implements the generated v1specs.Handler on top of the
// users service, and maps service and routing errors to status codes and the
// uniform error body.
package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"usermgmt/internal/api/specs/v1specs"
	"usermgmt/internal/users"
	"usermgmt/pkg/controller"
	"usermgmt/pkg/domain"
	"usermgmt/pkg/logger"
	"usermgmt/pkg/serrors"

	"github.com/ogen-go/ogen/ogenerrors"
	"go.uber.org/zap"
)

// Error categories of the uniform error body.
const (
	CategoryInvalidAge       = "invalid age"
	CategoryInvalidUserName  = "invalid user name"
	CategoryDuplicateEmail   = "duplicate email"
	CategoryUserNotFound     = "user not found"
	CategoryValidation       = "validation error"
	CategoryApplication      = "application error"
	CategoryNotFound         = "not found"
	CategoryMethodNotAllowed = "method not allowed"
)

type Deps struct {
	Users users.Service
}

// Options describe the service in the root and health endpoints.
type Options struct {
	Name       string
	Version    string
	Repository string
}

type Handler struct {
	deps    Deps
	options Options
}

// Ensure Handler implements v1specs.Handler.
var _ v1specs.Handler = (*Handler)(nil)

func New(deps Deps, options Options) *Handler {
	return &Handler{
		deps:    deps,
		options: options,
	}
}

// NewError maps err to its status code and error body. Domain kinds keep their
// message as detail; unexpected errors are logged and reported as a generic
// application error carrying the error text.
func (h *Handler) NewError(ctx context.Context, err error) *v1specs.ErrorStatusCode {
	res := &v1specs.ErrorStatusCode{Response: v1specs.Error{Detail: err.Error()}}

	switch serrors.KindOf(err) {
	case domain.ErrInvalidAge:
		res.StatusCode, res.Response.Error = http.StatusBadRequest, CategoryInvalidAge
	case domain.ErrInvalidUserName:
		res.StatusCode, res.Response.Error = http.StatusBadRequest, CategoryInvalidUserName
	case domain.ErrDuplicateEmail:
		res.StatusCode, res.Response.Error = http.StatusConflict, CategoryDuplicateEmail
	case domain.ErrUserNotFound:
		res.StatusCode, res.Response.Error = http.StatusNotFound, CategoryUserNotFound
	case serrors.ErrBadRequest:
		res.StatusCode, res.Response.Error = http.StatusUnprocessableEntity, CategoryValidation
	default:
		res.StatusCode, res.Response.Error = http.StatusInternalServerError, CategoryApplication
		logger.Error(ctx, "request failed", zap.Error(err))

		return res
	}

	logger.Warn(ctx, "request rejected",
		zap.String("category", res.Response.Error),
		zap.String("detail", res.Response.Detail))

	return res
}

// HandleError writes errors raised by the generated server before a handler
// method runs. Undecodable parameters and bodies are schema errors.
func (h *Handler) HandleError(ctx context.Context, w http.ResponseWriter, _ *http.Request, err error) {
	var (
		paramsErr  *ogenerrors.DecodeParamsError
		requestErr *ogenerrors.DecodeRequestError
	)
	if errors.As(err, &paramsErr) || errors.As(err, &requestErr) {
		err = serrors.Wrap(serrors.ErrBadRequest, err, "invalid request")
	}

	res := h.NewError(ctx, err)
	controller.WriteError(w, res.StatusCode, res.Response.Error, res.Response.Detail)
}

// NotFound answers requests no operation matches.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	controller.WriteError(w, http.StatusNotFound, CategoryNotFound,
		fmt.Sprintf("no route for %s %s", r.Method, r.URL.Path))
}

// MethodNotAllowed answers requests whose path exists under other methods.
// OPTIONS requests that reach it get the allowed methods and no body.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request, allowed string) {
	w.Header().Set("Allow", allowed)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)

		return
	}

	controller.WriteError(w, http.StatusMethodNotAllowed, CategoryMethodNotAllowed,
		fmt.Sprintf("method %s not allowed, use one of: %s", r.Method, allowed))
}
