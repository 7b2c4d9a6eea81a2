package domain

import (
	"fmt"
	"strings"
)

// DefaultMinAge is the youngest age accepted when no other minimum is configured.
const DefaultMinAge = 18

// UserID identifies a stored user. Zero means the user has not been persisted yet.
type UserID int64

// UserStatus is the lifecycle state of a user account.
type UserStatus string

const (
	// UserStatusActive is the status assigned to new users.
	UserStatusActive UserStatus = "active"
	// UserStatusInactive marks a disabled account.
	UserStatusInactive UserStatus = "inactive"
)

// Valid reports whether s is one of the known statuses.
func (s UserStatus) Valid() bool {
	return s == UserStatusActive || s == UserStatusInactive
}

// ParseUserStatus converts raw input into a UserStatus. An empty string yields
// the default active status.
func ParseUserStatus(raw string) (UserStatus, error) {
	if raw == "" {
		return UserStatusActive, nil
	}

	s := UserStatus(strings.ToLower(raw))
	if !s.Valid() {
		return "", fmt.Errorf("unknown user status %q", raw)
	}

	return s, nil
}

// User is the single entity managed by the service.
type User struct {
	// ID is assigned by storage on creation and never changes afterwards.
	ID UserID `json:"id"`
	// Email is unique across all users.
	Email string `json:"email"`
	// Name is never empty once whitespace is trimmed.
	Name string `json:"name"`
	// Age is at least the configured minimum.
	Age int `json:"age"`
	// Status defaults to UserStatusActive.
	Status UserStatus `json:"status"`
}

// ValidateAge fails with ErrInvalidAge when age is below minAge.
func ValidateAge(age, minAge int) error {
	if age < minAge {
		return NewInvalidAge(minAge)
	}

	return nil
}

// ValidateName fails with ErrInvalidUserName when name is empty or whitespace only.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return NewInvalidUserName()
	}

	return nil
}
