// Package usermgmt holds the resources embedded into the service binary.
package usermgmt

import "embed"

// Migrations contains the goose SQL migrations, one directory per storage driver.
//
//go:embed migrations
var Migrations embed.FS
