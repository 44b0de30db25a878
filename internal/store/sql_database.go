package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-waste-tracker/internal/config"
	"github.com/MKhiriev/go-waste-tracker/internal/logger"
	"github.com/MKhiriev/go-waste-tracker/migrations"
)

// DB wraps a database/sql pool together with the dialect specific pieces the
// repositories need: the placeholder format and the error classifier.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	retryDelays        []time.Duration
	logger             *logger.Logger
}

// ErrorClassificator tells transient driver errors apart from permanent ones.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}

var defaultRetryDelays = []time.Duration{100 * time.Millisecond, 300 * time.Millisecond, 500 * time.Millisecond}

// NewConnectDB opens the database selected by cfg.Driver.
func NewConnectDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

func newDB(conn *sql.DB, dialect string, classifier ErrorClassificator, log *logger.Logger) *DB {
	var placeholder sq.PlaceholderFormat = sq.Question
	if dialect == migrations.DialectPostgres {
		placeholder = sq.Dollar
	}

	return &DB{
		DB:                 conn,
		dialect:            dialect,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholder),
		errorClassificator: classifier,
		retryDelays:        defaultRetryDelays,
		logger:             log,
	}
}

// Migrate applies the embedded migrations of the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// withRetry runs op again after each retryable error, once per configured
// delay.
func (db *DB) withRetry(ctx context.Context, op func() error) error {
	err := op()
	for _, delay := range db.retryDelays {
		if err == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		logger.FromContext(ctx).Warn().Err(err).Str("func", "DB.withRetry").Dur("delay", delay).Msg("retrying database operation")

		select {
		case <-ctx.Done():
			return err
		case <-time.After(delay):
		}

		err = op()
	}

	return err
}

// execAffectingOne runs a statement that targets one row by id and user and
// reports notFound when nothing matched.
func (db *DB) execAffectingOne(ctx context.Context, funcName string, notFound error, query string, args []any) error {
	var res sql.Result
	err := db.withRetry(ctx, func() error {
		var execErr error
		res, execErr = db.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return notFound
	}

	return nil
}

// queryAll runs query with retries and scans every row with scan. An empty
// result is an empty slice.
func queryAll[T any](ctx context.Context, db *DB, funcName, query string, args []any, scan func(rowScanner) (T, error)) ([]T, error) {
	l := logger.FromContext(ctx)

	var rows *sql.Rows
	err := db.withRetry(ctx, func() error {
		var queryErr error
		rows, queryErr = db.DB.QueryContext(ctx, query, args...)
		return queryErr
	})
	if err != nil {
		l.Err(err).Str("func", funcName).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		item, scanErr := scan(rows)
		if scanErr != nil {
			l.Err(scanErr).Str("func", funcName).Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		l.Err(rowsErr).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return items, nil
}

// inTx runs fn inside a transaction. The transaction is committed when fn
// returns nil and rolled back otherwise, including on panic.
func (db *DB) inTx(ctx context.Context, funcName string, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin: %w", ErrTransaction, err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
			panic(r)
		}
	}()

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.FromContext(ctx).Err(rbErr).Str("func", funcName).Msg("failed to roll back transaction")
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("failed to commit transaction")
		return fmt.Errorf("%w: commit: %w", ErrTransaction, err)
	}

	return nil
}
