// Code generated by ogen, DO NOT EDIT.

package v1specs

import (
	"context"
)

// Handler handles operations described by OpenAPI v3 specification.
type Handler interface {
	// CheckEmail implements checkEmail operation.
	//
	// Check whether an email is registered.
	//
	// GET /users/check-email/{email}
	CheckEmail(ctx context.Context, params CheckEmailParams) (*EmailCheck, error)
	// CreateUser implements createUser operation.
	//
	// Fails with 400 for an invalid age or name, 409 when the email is
	// already registered and 422 for a malformed or schema-invalid body.
	//
	// POST /users
	CreateUser(ctx context.Context, req *CreateUserRequest) (*User, error)
	// GetUser implements getUser operation.
	//
	// Fails with 404 for an unknown id and 422 for a non-integer id.
	//
	// GET /users/{id}
	GetUser(ctx context.Context, params GetUserParams) (*User, error)
	// GetUserByEmail implements getUserByEmail operation.
	//
	// Fails with 404 when no user has the email.
	//
	// GET /users/email/{email}
	GetUserByEmail(ctx context.Context, params GetUserByEmailParams) (*User, error)
	// Health implements health operation.
	//
	// Health check.
	//
	// GET /health
	Health(ctx context.Context) (*HealthResponse, error)
	// Root implements root operation.
	//
	// Root endpoint.
	//
	// GET /
	Root(ctx context.Context) (*RootResponse, error)
	// UpdateUserStatus implements updateUserStatus operation.
	//
	// Fails with 404 for an unknown id and 422 for an invalid body.
	//
	// PATCH /users/{id}/status
	UpdateUserStatus(ctx context.Context, req *UpdateStatusRequest, params UpdateUserStatusParams) (*User, error)
	// NewError creates *ErrorStatusCode from error returned by handler.
	//
	// Used for common default response.
	NewError(ctx context.Context, err error) *ErrorStatusCode
}

// Server implements http server based on OpenAPI v3 specification and
// calls Handler to handle requests.
type Server struct {
	h Handler
	baseServer
}

// NewServer creates new Server.
func NewServer(h Handler, opts ...ServerOption) (*Server, error) {
	s, err := newServerConfig(opts...).baseServer()
	if err != nil {
		return nil, err
	}
	return &Server{
		h:          h,
		baseServer: s,
	}, nil
}
