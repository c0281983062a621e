// Package migrations embeds the SQL schema migrations and applies them with
// goose at application startup.
//
// Each supported driver has its own migration directory because the
// auto-increment and timestamp syntax differs between PostgreSQL and SQLite.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Migrate applies all pending migrations to db using the goose dialect and
// migration directory matching the given driver name ("pgx" or "sqlite3").
func Migrate(db *sql.DB, driver string) error {
	var dialect, dir string
	switch driver {
	case "pgx":
		dialect, dir = "pgx", "postgres"
	case "sqlite3":
		dialect, dir = "sqlite3", "sqlite"
	default:
		return fmt.Errorf("migration error: unsupported driver %q", driver)
	}

	subFS, err := fs.Sub(embedMigrations, dir)
	if err != nil {
		return fmt.Errorf("migration error reading embedded migrations: %w", err)
	}
	goose.SetBaseFS(subFS)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
