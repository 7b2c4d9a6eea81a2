// Package domain contains the User entity, its status values, the business
// validators shared by the repository and the service, and the semantic error
// kinds those layers return. Nothing here depends on storage or transport.
package domain
