// Package specs holds the OpenAPI documents of the API. Package v1specs is
// generated from v1.yaml.
package specs

//go:generate go run github.com/ogen-go/ogen/cmd/ogen@v1.14.0 --target v1specs --package v1specs --clean v1.yaml
