package store

import (
	"context"
	"database/sql"
	"fmt"

	"bookshelf/internal/config"
	"bookshelf/internal/logger"
	"bookshelf/migrations"
)

// DB wraps the standard library connection pool together with the driver
// name so that schema migrations can pick the matching goose dialect.
type DB struct {
	*sql.DB
	driver string
	logger *logger.Logger
}

// Open establishes a database connection for the configured driver.
//
// Supported drivers:
//   - "pgx" for PostgreSQL
//   - "sqlite3" for SQLite (local runs and development)
func Open(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case "pgx":
		return NewConnectPostgres(ctx, cfg, log)
	case "sqlite3":
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.Driver)
	}
}

// Migrate applies all pending embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}
