// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-waste-tracker/internal/logger"
	"github.com/MKhiriev/go-waste-tracker/models"
)

// packagingLogRepository is the SQL implementation of
// [PackagingLogRepository]. It works against the "packaging_logs" table
// through the embedded [*DB], for both PostgreSQL and SQLite.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// the request's trace id.
type packagingLogRepository struct {
	*DB
	logger *logger.Logger
}

func NewPackagingLogRepository(db *DB, logger *logger.Logger) PackagingLogRepository {
	return &packagingLogRepository{
		DB:     db,
		logger: logger,
	}
}

// Insert stores a new log. A primary key collision is reported as
// [ErrLogAlreadyExists].
func (p *packagingLogRepository) Insert(ctx context.Context, log models.PackagingLog) error {
	l := logger.FromContext(ctx)

	query, args, err := buildInsertLogQuery(p.builder, log)
	if err != nil {
		l.Err(err).Str("func", "packagingLogRepository.Insert").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var res sql.Result
	err = p.withRetry(ctx, func() error {
		var execErr error
		res, execErr = p.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		if p.errorClassificator.IsUniqueViolation(err) {
			return fmt.Errorf("%w: %w", ErrLogAlreadyExists, err)
		}
		l.Err(err).Str("func", "packagingLogRepository.Insert").Str("user_id", log.UserID).Msg("failed to insert packaging log")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrLogNotSaved
	}

	return nil
}

// Update overwrites the editable columns of an existing log owned by
// log.UserID.
func (p *packagingLogRepository) Update(ctx context.Context, log models.PackagingLog) error {
	query, args, err := buildUpdateLogQuery(p.builder, log)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return p.execAffectingOne(ctx, "packagingLogRepository.Update", ErrLogNotFound, query, args)
}

func (p *packagingLogRepository) Delete(ctx context.Context, userID, logID string) error {
	query, args, err := buildDeleteLogQuery(p.builder, userID, logID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return p.execAffectingOne(ctx, "packagingLogRepository.Delete", ErrLogNotFound, query, args)
}

func (p *packagingLogRepository) SetImageURL(ctx context.Context, userID, logID, imageURL string) error {
	query, args, err := buildSetImageURLQuery(p.builder, userID, logID, imageURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return p.execAffectingOne(ctx, "packagingLogRepository.SetImageURL", ErrLogNotFound, query, args)
}

// ListByUser returns every log of the user, newest first. An empty result
// is an empty slice.
func (p *packagingLogRepository) ListByUser(ctx context.Context, userID string) ([]models.PackagingLog, error) {
	query, args, err := buildListByUserQuery(p.builder, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return queryAll(ctx, p.DB, "packagingLogRepository.ListByUser", query, args, scanPackagingLog)
}

func (p *packagingLogRepository) GetByID(ctx context.Context, userID, logID string) (models.PackagingLog, error) {
	query, args, err := buildGetByIDQuery(p.builder, userID, logID)
	if err != nil {
		return models.PackagingLog{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	log, err := scanPackagingLog(p.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.PackagingLog{}, ErrLogNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "packagingLogRepository.GetByID").
			Str("user_id", userID).
			Str("log_id", logID).
			Msg("failed to get packaging log")
		return models.PackagingLog{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return log, nil
}
