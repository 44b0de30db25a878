package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-waste-tracker/internal/logger"
	"github.com/MKhiriev/go-waste-tracker/internal/packaging"
	"github.com/MKhiriev/go-waste-tracker/internal/store"
	"github.com/MKhiriev/go-waste-tracker/models"
)

// analyticsService derives charts, the scoreboard and insights from the
// user's full log collection on every call. Nothing is cached or stored.
type analyticsService struct {
	repository store.PackagingLogRepository
	engine     *packaging.Engine

	logger *logger.Logger
}

func NewAnalyticsService(repository store.PackagingLogRepository, engine *packaging.Engine, logger *logger.Logger) AnalyticsService {
	return &analyticsService{
		repository: repository,
		engine:     engine,
		logger:     logger,
	}
}

func (s *analyticsService) Summaries(ctx context.Context, userID string, r packaging.TimeRange, today string) ([]models.DailySummary, error) {
	if userID == "" {
		return nil, ErrNoUserID
	}

	logs, err := s.repository.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error reading packaging logs: %w", err)
	}

	summaries, err := packaging.FilterByRange(s.engine.Summarize(logs), r, today)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return summaries, nil
}

func (s *analyticsService) Scoreboard(ctx context.Context, userID string) (models.Scoreboard, error) {
	if userID == "" {
		return models.Scoreboard{}, ErrNoUserID
	}

	logs, err := s.repository.ListByUser(ctx, userID)
	if err != nil {
		return models.Scoreboard{}, fmt.Errorf("error reading packaging logs: %w", err)
	}

	return s.engine.Scoreboard(logs), nil
}

func (s *analyticsService) Insights(ctx context.Context, userID, today string) ([]models.Insight, error) {
	if userID == "" {
		return nil, ErrNoUserID
	}

	logs, err := s.repository.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error reading packaging logs: %w", err)
	}

	insights, err := s.engine.Insights(logs, today)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return insights, nil
}
