// Code generated by ogen, DO NOT EDIT.

package v1specs

import (
	"context"

	ht "github.com/ogen-go/ogen/http"
)

// UnimplementedHandler is no-op Handler which returns http.ErrNotImplemented.
type UnimplementedHandler struct{}

var _ Handler = UnimplementedHandler{}

// CheckEmail implements checkEmail operation.
//
// Check whether an email is registered.
//
// GET /users/check-email/{email}
func (UnimplementedHandler) CheckEmail(ctx context.Context, params CheckEmailParams) (r *EmailCheck, _ error) {
	return r, ht.ErrNotImplemented
}

// CreateUser implements createUser operation.
//
// Fails with 400 for an invalid age or name, 409 when the email is
// already registered and 422 for a malformed or schema-invalid body.
//
// POST /users
func (UnimplementedHandler) CreateUser(ctx context.Context, req *CreateUserRequest) (r *User, _ error) {
	return r, ht.ErrNotImplemented
}

// GetUser implements getUser operation.
//
// Fails with 404 for an unknown id and 422 for a non-integer id.
//
// GET /users/{id}
func (UnimplementedHandler) GetUser(ctx context.Context, params GetUserParams) (r *User, _ error) {
	return r, ht.ErrNotImplemented
}

// GetUserByEmail implements getUserByEmail operation.
//
// Fails with 404 when no user has the email.
//
// GET /users/email/{email}
func (UnimplementedHandler) GetUserByEmail(ctx context.Context, params GetUserByEmailParams) (r *User, _ error) {
	return r, ht.ErrNotImplemented
}

// Health implements health operation.
//
// Health check.
//
// GET /health
func (UnimplementedHandler) Health(ctx context.Context) (r *HealthResponse, _ error) {
	return r, ht.ErrNotImplemented
}

// Root implements root operation.
//
// Root endpoint.
//
// GET /
func (UnimplementedHandler) Root(ctx context.Context) (r *RootResponse, _ error) {
	return r, ht.ErrNotImplemented
}

// UpdateUserStatus implements updateUserStatus operation.
//
// Fails with 404 for an unknown id and 422 for an invalid body.
//
// PATCH /users/{id}/status
func (UnimplementedHandler) UpdateUserStatus(ctx context.Context, req *UpdateStatusRequest, params UpdateUserStatusParams) (r *User, _ error) {
	return r, ht.ErrNotImplemented
}

// NewError creates *ErrorStatusCode from error returned by handler.
//
// Used for common default response.
func (UnimplementedHandler) NewError(ctx context.Context, err error) (r *ErrorStatusCode) {
	r = new(ErrorStatusCode)
	return r
}
