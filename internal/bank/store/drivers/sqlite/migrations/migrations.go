// Package migrations embeds the SQLite schema migration files so the binary
// can apply them without shipping loose .sql files alongside it.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
