// Package store persists packaging logs in PostgreSQL (pgx) or SQLite
// (go-sqlite3). Queries are built with squirrel using the placeholder format
// of the connected dialect, and driver errors are classified so transient
// failures are retried before surfacing as the sentinel errors in errors.go.
package store
