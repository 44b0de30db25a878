package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-waste-tracker/internal/adapter"
	"github.com/MKhiriev/go-waste-tracker/internal/logger"
	"github.com/MKhiriev/go-waste-tracker/internal/packaging"
	"github.com/MKhiriev/go-waste-tracker/internal/store"
	"github.com/MKhiriev/go-waste-tracker/models"
)

// maxHighWasteItems caps the number of distinct items sent to the
// generative model in one request.
const maxHighWasteItems = 10

type alternativesService struct {
	repository store.PackagingLogRepository
	engine     *packaging.Engine
	generative adapter.GenerativeAdapter

	logger *logger.Logger
}

func NewAlternativesService(
	repository store.PackagingLogRepository,
	engine *packaging.Engine,
	generative adapter.GenerativeAdapter,
	logger *logger.Logger,
) AlternativesService {
	return &alternativesService{
		repository: repository,
		engine:     engine,
		generative: generative,
		logger:     logger,
	}
}

// Suggest asks the generative model for low-waste alternatives to the user's
// most recent high-waste purchases. A user without high-waste purchases gets
// an empty list and the model is not called.
func (s *alternativesService) Suggest(ctx context.Context, userID string) ([]models.PackagingAlternative, error) {
	if userID == "" {
		return nil, ErrNoUserID
	}

	logs, err := s.repository.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error reading packaging logs: %w", err)
	}

	items := s.engine.HighWasteItems(logs, maxHighWasteItems)
	if len(items) == 0 {
		return []models.PackagingAlternative{}, nil
	}

	alternatives, err := s.generative.SuggestAlternatives(ctx, items)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "alternativesService.Suggest").Int("items", len(items)).Msg("generative adapter failed")
		return nil, fmt.Errorf("error suggesting alternatives: %w", err)
	}

	return alternatives, nil
}
