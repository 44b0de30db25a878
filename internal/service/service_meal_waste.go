package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-waste-tracker/internal/logger"
	"github.com/MKhiriev/go-waste-tracker/internal/mealwaste"
	"github.com/MKhiriev/go-waste-tracker/internal/packaging"
	"github.com/MKhiriev/go-waste-tracker/internal/store"
	"github.com/MKhiriev/go-waste-tracker/internal/utils"
	"github.com/MKhiriev/go-waste-tracker/models"
)

// mealWasteService logs served meals and the share of each portion that was
// thrown away, and derives the daily consumption charts from them.
type mealWasteService struct {
	repository store.MealRepository
	newID      utils.IDGenerator
	now        func() time.Time

	logger *logger.Logger
}

func NewMealWasteService(repository store.MealRepository, logger *logger.Logger) MealWasteService {
	return &mealWasteService{
		repository: repository,
		newID:      utils.NewID,
		now:        time.Now,
		logger:     logger,
	}
}

func (s *mealWasteService) ListMeals(ctx context.Context, userID string) ([]models.Meal, error) {
	meals, err := s.repository.ListMeals(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing meals: %w", err)
	}

	for i := range meals {
		meals[i].WastePercentage = mealwaste.ServingWastePercentage(meals[i].Portions)
	}
	return meals, nil
}

// AddMeal adds the portions to the user's meal of the same name on the same
// day, creating that meal when there is none. New non-empty notes replace
// the stored ones.
func (s *mealWasteService) AddMeal(ctx context.Context, userID string, input models.MealInput) (models.Meal, error) {
	log := logger.FromContext(ctx)
	now := s.now().UTC().Format(time.RFC3339)

	mealName := strings.TrimSpace(input.MealName)
	servedAt := strings.TrimSpace(input.ServedAt)
	notes := trimmedOrNil(input.Notes)

	serving, err := s.repository.FindServing(ctx, userID, mealName, models.DateKey(servedAt))
	created := errors.Is(err, store.ErrMealNotFound)
	switch {
	case created:
		serving = models.FoodServing{
			ID:        s.newID(),
			UserID:    userID,
			MealName:  mealName,
			ServedAt:  servedAt,
			Notes:     notes,
			CreatedAt: now,
		}
	case err != nil:
		return models.Meal{}, fmt.Errorf("error reading meals: %w", err)
	case notes != nil:
		serving.Notes = notes
	}

	portions := make([]models.ServedPortion, 0, len(input.Portions))
	for _, p := range input.Portions {
		if err = mealwaste.ValidateQuantity(p.QuantityServed); err != nil {
			return models.Meal{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
		portions = append(portions, models.ServedPortion{
			ID:             s.newID(),
			ServingID:      serving.ID,
			UserID:         userID,
			FoodItemName:   strings.TrimSpace(p.FoodItemName),
			QuantityServed: p.QuantityServed,
			UnitServed:     strings.TrimSpace(p.UnitServed),
			Description:    trimmedOrNil(p.Description),
			CreatedAt:      now,
		})
	}

	if err = s.repository.SaveMeal(ctx, serving, created, portions); err != nil {
		log.Err(err).Str("func", "mealWasteService.AddMeal").Str("user_id", userID).Msg("failed to save meal")
		return models.Meal{}, fmt.Errorf("error saving meal: %w", err)
	}

	return s.getMeal(ctx, userID, serving.ID)
}

// RecordWaste stores how much of one portion of the meal was wasted. A
// second call for the same portion replaces the first.
func (s *mealWasteService) RecordWaste(ctx context.Context, userID, servingID string, input models.WasteInput) (models.Meal, error) {
	portion, err := s.repository.GetPortion(ctx, userID, input.PortionID)
	if err != nil {
		return models.Meal{}, fmt.Errorf("error reading portion: %w", err)
	}
	if portion.ServingID != servingID {
		return models.Meal{}, fmt.Errorf("error reading portion: %w", store.ErrPortionNotFound)
	}

	fraction, err := mealwaste.WastedFraction(input.WastedPercentage)
	if err != nil {
		return models.Meal{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	entry := models.WasteEntry{
		ID:              s.newID(),
		ServedPortionID: portion.ID,
		UserID:          userID,
		WastedFraction:  fraction,
		Description:     trimmedOrNil(input.Description),
		Reason:          mealwaste.ResolveChoice(input.Reason, input.OtherReason),
		DisposalAction:  mealwaste.ResolveChoice(input.DisposalAction, input.OtherDisposalAction),
		CreatedAt:       s.now().UTC().Format(time.RFC3339),
	}
	if err = s.repository.UpsertWaste(ctx, entry); err != nil {
		return models.Meal{}, fmt.Errorf("error saving waste entry: %w", err)
	}

	return s.getMeal(ctx, userID, servingID)
}

func (s *mealWasteService) DeleteMeal(ctx context.Context, userID, servingID string) error {
	if err := s.repository.DeleteMeal(ctx, userID, servingID); err != nil {
		return fmt.Errorf("error deleting meal: %w", err)
	}

	return nil
}

func (s *mealWasteService) Summaries(ctx context.Context, userID string, r packaging.TimeRange, today string) ([]models.WasteSummary, error) {
	meals, err := s.repository.ListMeals(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error reading meals: %w", err)
	}

	summaries, err := packaging.FilterByRange(mealwaste.Summarize(meals), r, today)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return summaries, nil
}

func (s *mealWasteService) Insights(ctx context.Context, userID, today string) ([]models.Insight, error) {
	meals, err := s.repository.ListMeals(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error reading meals: %w", err)
	}

	insights, err := mealwaste.Insights(mealwaste.Summarize(meals), today)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return insights, nil
}

func (s *mealWasteService) getMeal(ctx context.Context, userID, servingID string) (models.Meal, error) {
	meal, err := s.repository.GetMeal(ctx, userID, servingID)
	if err != nil {
		return models.Meal{}, fmt.Errorf("error reading meal: %w", err)
	}

	meal.WastePercentage = mealwaste.ServingWastePercentage(meal.Portions)
	return meal, nil
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	if t := strings.TrimSpace(*s); t != "" {
		return &t
	}
	return nil
}
