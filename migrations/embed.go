// Package migrations holds the goose SQL migrations applied at startup and in e2e tests.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
