// Code generated by ogen, DO NOT EDIT.

package v1specs

import (
	"fmt"

	"github.com/go-faster/errors"
)

func (s *ErrorStatusCode) Error() string {
	return fmt.Sprintf("code %d: %+v", s.StatusCode, s.Response)
}

// Ref: #/components/schemas/CreateUserRequest
type CreateUserRequest struct {
	Email string `json:"email"`
	// Must not be empty or whitespace only.
	Name string `json:"name"`
	// Must be at least the configured minimum age (18 by default).
	Age    int           `json:"age"`
	Status OptUserStatus `json:"status"`
}

// GetEmail returns the value of Email.
func (s *CreateUserRequest) GetEmail() string {
	return s.Email
}

// GetName returns the value of Name.
func (s *CreateUserRequest) GetName() string {
	return s.Name
}

// GetAge returns the value of Age.
func (s *CreateUserRequest) GetAge() int {
	return s.Age
}

// GetStatus returns the value of Status.
func (s *CreateUserRequest) GetStatus() OptUserStatus {
	return s.Status
}

// SetEmail sets the value of Email.
func (s *CreateUserRequest) SetEmail(val string) {
	s.Email = val
}

// SetName sets the value of Name.
func (s *CreateUserRequest) SetName(val string) {
	s.Name = val
}

// SetAge sets the value of Age.
func (s *CreateUserRequest) SetAge(val int) {
	s.Age = val
}

// SetStatus sets the value of Status.
func (s *CreateUserRequest) SetStatus(val OptUserStatus) {
	s.Status = val
}

// Ref: #/components/schemas/EmailCheck
type EmailCheck struct {
	Email     string `json:"email"`
	Exists    bool   `json:"exists"`
	Available bool   `json:"available"`
}

// GetEmail returns the value of Email.
func (s *EmailCheck) GetEmail() string {
	return s.Email
}

// GetExists returns the value of Exists.
func (s *EmailCheck) GetExists() bool {
	return s.Exists
}

// GetAvailable returns the value of Available.
func (s *EmailCheck) GetAvailable() bool {
	return s.Available
}

// SetEmail sets the value of Email.
func (s *EmailCheck) SetEmail(val string) {
	s.Email = val
}

// SetExists sets the value of Exists.
func (s *EmailCheck) SetExists(val bool) {
	s.Exists = val
}

// SetAvailable sets the value of Available.
func (s *EmailCheck) SetAvailable(val bool) {
	s.Available = val
}

// Ref: #/components/schemas/Error
type Error struct {
	// Error category: invalid age, invalid user name, duplicate email,
	// user not found, validation error or application error.
	Error  string `json:"error"`
	Detail string `json:"detail"`
}

// GetError returns the value of Error.
func (s *Error) GetError() string {
	return s.Error
}

// GetDetail returns the value of Detail.
func (s *Error) GetDetail() string {
	return s.Detail
}

// SetError sets the value of Error.
func (s *Error) SetError(val string) {
	s.Error = val
}

// SetDetail sets the value of Detail.
func (s *Error) SetDetail(val string) {
	s.Detail = val
}

// ErrorStatusCode wraps Error with StatusCode.
type ErrorStatusCode struct {
	StatusCode int
	Response   Error
}

// GetStatusCode returns the value of StatusCode.
func (s *ErrorStatusCode) GetStatusCode() int {
	return s.StatusCode
}

// GetResponse returns the value of Response.
func (s *ErrorStatusCode) GetResponse() Error {
	return s.Response
}

// SetStatusCode sets the value of StatusCode.
func (s *ErrorStatusCode) SetStatusCode(val int) {
	s.StatusCode = val
}

// SetResponse sets the value of Response.
func (s *ErrorStatusCode) SetResponse(val Error) {
	s.Response = val
}

// Ref: #/components/schemas/HealthResponse
type HealthResponse struct {
	Status     string `json:"status"`
	Service    string `json:"service"`
	Repository string `json:"repository"`
	Version    string `json:"version"`
}

// GetStatus returns the value of Status.
func (s *HealthResponse) GetStatus() string {
	return s.Status
}

// GetService returns the value of Service.
func (s *HealthResponse) GetService() string {
	return s.Service
}

// GetRepository returns the value of Repository.
func (s *HealthResponse) GetRepository() string {
	return s.Repository
}

// GetVersion returns the value of Version.
func (s *HealthResponse) GetVersion() string {
	return s.Version
}

// SetStatus sets the value of Status.
func (s *HealthResponse) SetStatus(val string) {
	s.Status = val
}

// SetService sets the value of Service.
func (s *HealthResponse) SetService(val string) {
	s.Service = val
}

// SetRepository sets the value of Repository.
func (s *HealthResponse) SetRepository(val string) {
	s.Repository = val
}

// SetVersion sets the value of Version.
func (s *HealthResponse) SetVersion(val string) {
	s.Version = val
}

// NewOptUserStatus returns new OptUserStatus with value set to v.
func NewOptUserStatus(v UserStatus) OptUserStatus {
	return OptUserStatus{
		Value: v,
		Set:   true,
	}
}

// OptUserStatus is optional UserStatus.
type OptUserStatus struct {
	Value UserStatus
	Set   bool
}

// IsSet returns true if OptUserStatus was set.
func (o OptUserStatus) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptUserStatus) Reset() {
	var v UserStatus
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptUserStatus) SetTo(v UserStatus) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptUserStatus) Get() (v UserStatus, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptUserStatus) Or(d UserStatus) UserStatus {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// Ref: #/components/schemas/RootResponse
type RootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Status  string `json:"status"`
}

// GetMessage returns the value of Message.
func (s *RootResponse) GetMessage() string {
	return s.Message
}

// GetVersion returns the value of Version.
func (s *RootResponse) GetVersion() string {
	return s.Version
}

// GetStatus returns the value of Status.
func (s *RootResponse) GetStatus() string {
	return s.Status
}

// SetMessage sets the value of Message.
func (s *RootResponse) SetMessage(val string) {
	s.Message = val
}

// SetVersion sets the value of Version.
func (s *RootResponse) SetVersion(val string) {
	s.Version = val
}

// SetStatus sets the value of Status.
func (s *RootResponse) SetStatus(val string) {
	s.Status = val
}

// Ref: #/components/schemas/UpdateStatusRequest
type UpdateStatusRequest struct {
	Status UserStatus `json:"status"`
}

// GetStatus returns the value of Status.
func (s *UpdateStatusRequest) GetStatus() UserStatus {
	return s.Status
}

// SetStatus sets the value of Status.
func (s *UpdateStatusRequest) SetStatus(val UserStatus) {
	s.Status = val
}

// Ref: #/components/schemas/User
type User struct {
	ID     int64      `json:"id"`
	Email  string     `json:"email"`
	Name   string     `json:"name"`
	Age    int        `json:"age"`
	Status UserStatus `json:"status"`
}

// GetID returns the value of ID.
func (s *User) GetID() int64 {
	return s.ID
}

// GetEmail returns the value of Email.
func (s *User) GetEmail() string {
	return s.Email
}

// GetName returns the value of Name.
func (s *User) GetName() string {
	return s.Name
}

// GetAge returns the value of Age.
func (s *User) GetAge() int {
	return s.Age
}

// GetStatus returns the value of Status.
func (s *User) GetStatus() UserStatus {
	return s.Status
}

// SetID sets the value of ID.
func (s *User) SetID(val int64) {
	s.ID = val
}

// SetEmail sets the value of Email.
func (s *User) SetEmail(val string) {
	s.Email = val
}

// SetName sets the value of Name.
func (s *User) SetName(val string) {
	s.Name = val
}

// SetAge sets the value of Age.
func (s *User) SetAge(val int) {
	s.Age = val
}

// SetStatus sets the value of Status.
func (s *User) SetStatus(val UserStatus) {
	s.Status = val
}

// Ref: #/components/schemas/UserStatus
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

// AllValues returns all UserStatus values.
func (UserStatus) AllValues() []UserStatus {
	return []UserStatus{
		UserStatusActive,
		UserStatusInactive,
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s UserStatus) MarshalText() ([]byte, error) {
	switch s {
	case UserStatusActive:
		return []byte(s), nil
	case UserStatusInactive:
		return []byte(s), nil
	default:
		return nil, errors.Errorf("invalid value: %q", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *UserStatus) UnmarshalText(data []byte) error {
	switch UserStatus(data) {
	case UserStatusActive:
		*s = UserStatusActive
		return nil
	case UserStatusInactive:
		*s = UserStatusInactive
		return nil
	default:
		return errors.Errorf("invalid value: %q", data)
	}
}
