// Code generated by ogen, DO NOT EDIT.

package v1specs

// OperationName is the ogen operation name
type OperationName = string

const (
	CheckEmailOperation       OperationName = "CheckEmail"
	CreateUserOperation       OperationName = "CreateUser"
	GetUserOperation          OperationName = "GetUser"
	GetUserByEmailOperation   OperationName = "GetUserByEmail"
	HealthOperation           OperationName = "Health"
	RootOperation             OperationName = "Root"
	UpdateUserStatusOperation OperationName = "UpdateUserStatus"
)
