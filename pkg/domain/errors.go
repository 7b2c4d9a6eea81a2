package domain

import "usermgmt/pkg/serrors"

// Kinds returned by the user repository and service.
var (
	ErrInvalidAge      = serrors.NewKind("INVALID_AGE")
	ErrInvalidUserName = serrors.NewKind("INVALID_USER_NAME")
	ErrDuplicateEmail  = serrors.NewKind("DUPLICATE_EMAIL")
	ErrUserNotFound    = serrors.NewKind("USER_NOT_FOUND")
)

// NewInvalidAge builds the error for an age below minAge.
func NewInvalidAge(minAge int) *serrors.Error {
	return serrors.With(ErrInvalidAge, "age must be greater than or equal to %d", minAge)
}

// NewInvalidUserName builds the error for an empty or blank name.
func NewInvalidUserName() *serrors.Error {
	return serrors.With(ErrInvalidUserName, "name cannot be empty or contain only whitespace")
}

// NewDuplicateEmail builds the error for an email that is already registered.
func NewDuplicateEmail(email string) *serrors.Error {
	return serrors.With(ErrDuplicateEmail, "duplicate email: %s already exists", email)
}

// NewUserNotFoundByID builds the error for a missing user id.
func NewUserNotFoundByID(id UserID) *serrors.Error {
	return serrors.With(ErrUserNotFound, "user with id '%d' not found", id)
}

// NewUserNotFoundByEmail builds the error for a missing email.
func NewUserNotFoundByEmail(email string) *serrors.Error {
	return serrors.With(ErrUserNotFound, "user with email '%s' not found", email)
}
