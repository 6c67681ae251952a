//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// - github.com/pressly/goose/v3/cmd/goose (go.mod tool block, ad-hoc migration status)
// - github.com/matryer/moq (//go:generate lines next to the mocked interfaces)
