// Package migrations embeds the goose SQL migrations of both supported
// database dialects.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

// Goose dialect names, also used as the migration directory of each dialect.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"
)

var ErrNilDB = errors.New("db is nil")

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

var migrationDirs = map[string]string{
	DialectPostgres: "postgres",
	DialectSQLite:   "sqlite",
}

// Migrate applies every pending migration of dialect to db.
func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return ErrNilDB
	}

	dir, ok := migrationDirs[dialect]
	if !ok {
		return fmt.Errorf("migration error: unknown dialect %q", dialect)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
