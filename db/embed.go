// Package db carries the SQL migrations of every supported backend.
package db

import "embed"

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var Migrations embed.FS

// MigrationsDir returns the directory inside Migrations for a dialect.
func MigrationsDir(dialect string) string {
	return "migrations/" + dialect
}
