package migrations

import "embed"

// FS holds the goose migrations for the orders database.
//
//go:embed *.sql
var FS embed.FS
