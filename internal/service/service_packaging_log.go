// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-waste-tracker/internal/logger"
	"github.com/MKhiriev/go-waste-tracker/internal/metrics"
	"github.com/MKhiriev/go-waste-tracker/internal/packaging"
	"github.com/MKhiriev/go-waste-tracker/internal/store"
	"github.com/MKhiriev/go-waste-tracker/internal/utils"
	"github.com/MKhiriev/go-waste-tracker/internal/workers"
	"github.com/MKhiriev/go-waste-tracker/models"
)

// packagingLogService stores packaging logs and classifies every new or
// edited log against the user's previous purchase of the same item.
//
// The classification always runs on a snapshot of the user's logs read
// before the write, so a log is never compared with itself.
type packagingLogService struct {
	repository store.PackagingLogRepository
	engine     *packaging.Engine
	images     workers.ImageEnqueuer
	newID      utils.IDGenerator
	metrics    *metrics.Metrics

	logger *logger.Logger
}

func NewPackagingLogService(
	repository store.PackagingLogRepository,
	engine *packaging.Engine,
	images workers.ImageEnqueuer,
	m *metrics.Metrics,
	logger *logger.Logger,
) PackagingLogService {
	return &packagingLogService{
		repository: repository,
		engine:     engine,
		images:     images,
		newID:      utils.NewID,
		metrics:    m,
		logger:     logger,
	}
}

func (s *packagingLogService) List(ctx context.Context, userID string) ([]packaging.LogView, error) {
	logs, err := s.repository.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing packaging logs: %w", err)
	}

	return s.engine.Annotate(packaging.SortNewestFirst(logs), logs), nil
}

func (s *packagingLogService) ListByDay(ctx context.Context, userID string) ([]packaging.DayView, error) {
	logs, err := s.repository.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing packaging logs: %w", err)
	}

	return s.engine.AnnotateDays(packaging.GroupByDay(logs), logs), nil
}

// Create stores a new log for userID. The waste tier is snapshotted from the
// taxonomy; free-text packaging takes the caller's flag and defaults to
// high waste.
func (s *packagingLogService) Create(ctx context.Context, userID string, input models.PackagingLogInput) (LogResult, error) {
	log := logger.FromContext(ctx)

	existing, err := s.repository.ListByUser(ctx, userID)
	if err != nil {
		return LogResult{}, fmt.Errorf("error reading packaging history: %w", err)
	}

	entry := models.PackagingLog{
		ID:     s.newID(),
		UserID: userID,
	}
	s.applyInput(&entry, input)

	result := s.classify(existing, entry)
	if err = s.repository.Insert(ctx, result.Log); err != nil {
		log.Err(err).Str("func", "packagingLogService.Create").Str("user_id", userID).Msg("failed to insert packaging log")
		return LogResult{}, fmt.Errorf("error saving packaging log: %w", err)
	}

	s.metrics.RecordLogClassified(string(result.Classification.SwitchType))
	s.enqueueImage(result.Log)

	return result, nil
}

// Update edits an existing log and classifies it again. The stored image URL
// is kept; a renamed item gets a fresh image lookup. The stored waste tier
// survives edits that keep the packaging and send no tier of their own.
func (s *packagingLogService) Update(ctx context.Context, userID, logID string, input models.PackagingLogInput) (LogResult, error) {
	log := logger.FromContext(ctx)

	current, err := s.repository.GetByID(ctx, userID, logID)
	if err != nil {
		return LogResult{}, fmt.Errorf("error reading packaging log: %w", err)
	}

	existing, err := s.repository.ListByUser(ctx, userID)
	if err != nil {
		return LogResult{}, fmt.Errorf("error reading packaging history: %w", err)
	}

	entry := current
	s.applyInput(&entry, input)
	if input.IsLowWaste == nil && entry.PackagingType == current.PackagingType {
		entry.IsLowWaste = current.IsLowWaste
	}

	result := s.classify(existing, entry)
	if err = s.repository.Update(ctx, result.Log); err != nil {
		log.Err(err).Str("func", "packagingLogService.Update").Str("log_id", logID).Msg("failed to update packaging log")
		return LogResult{}, fmt.Errorf("error updating packaging log: %w", err)
	}

	s.metrics.RecordLogClassified(string(result.Classification.SwitchType))
	if !strings.EqualFold(current.FoodItemName, result.Log.FoodItemName) {
		s.enqueueImage(result.Log)
	}

	return result, nil
}

func (s *packagingLogService) Delete(ctx context.Context, userID, logID string) error {
	if err := s.repository.Delete(ctx, userID, logID); err != nil {
		return fmt.Errorf("error deleting packaging log: %w", err)
	}

	return nil
}

func (s *packagingLogService) applyInput(entry *models.PackagingLog, input models.PackagingLogInput) {
	entry.CreatedAt = strings.TrimSpace(input.CreatedAt)
	entry.FoodItemName = strings.TrimSpace(input.FoodItemName)
	entry.PackagingType = strings.TrimSpace(input.PackagingType)
	entry.Quantity = input.Quantity
	entry.Notes = nil
	if input.Notes != nil {
		if notes := strings.TrimSpace(*input.Notes); notes != "" {
			entry.Notes = &notes
		}
	}

	lowWaste, known := s.engine.Taxonomy().IsLowWaste(entry.PackagingType)
	if !known {
		lowWaste = input.IsLowWaste != nil && *input.IsLowWaste
	}
	entry.IsLowWaste = lowWaste
}

func (s *packagingLogService) classify(existing []models.PackagingLog, entry models.PackagingLog) LogResult {
	classification, previous := packaging.ClassifyLog(existing, entry)
	classification.Apply(&entry)

	return LogResult{
		Log:            entry,
		Classification: classification,
		Feedback:       s.engine.Feedback(entry, previous),
	}
}

func (s *packagingLogService) enqueueImage(entry models.PackagingLog) {
	if s.images == nil {
		return
	}

	s.images.Enqueue(models.ImageJob{
		RecordID:     entry.ID,
		UserID:       entry.UserID,
		FoodItemName: entry.FoodItemName,
	})
}
