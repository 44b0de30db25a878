package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-waste-tracker/internal/inventory"
	"github.com/MKhiriev/go-waste-tracker/internal/logger"
	"github.com/MKhiriev/go-waste-tracker/internal/store"
	"github.com/MKhiriev/go-waste-tracker/internal/utils"
	"github.com/MKhiriev/go-waste-tracker/internal/workers"
	"github.com/MKhiriev/go-waste-tracker/models"
)

// foodItemService keeps the user's fridge and pantry inventory. Expiry
// status is computed on read against the caller's "today".
type foodItemService struct {
	repository store.FoodItemRepository
	images     workers.ImageEnqueuer
	newID      utils.IDGenerator
	now        func() time.Time

	logger *logger.Logger
}

func NewFoodItemService(repository store.FoodItemRepository, images workers.ImageEnqueuer, logger *logger.Logger) FoodItemService {
	return &foodItemService{
		repository: repository,
		images:     images,
		newID:      utils.NewID,
		now:        time.Now,
		logger:     logger,
	}
}

// List returns the user's items ordered by expiry date. A non-empty
// expiresOn keeps only the items expiring on that date.
func (s *foodItemService) List(ctx context.Context, userID, today, expiresOn string) ([]models.FoodItemView, error) {
	items, err := s.repository.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing food items: %w", err)
	}

	views, err := inventory.Views(items, today)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if expiresOn != "" {
		return inventory.ExpiringOn(views, expiresOn), nil
	}
	return views, nil
}

// Create stores a new item and queues an image lookup for it.
func (s *foodItemService) Create(ctx context.Context, userID string, input models.FoodItemInput, today string) (models.FoodItemView, error) {
	now := s.now().UTC().Format(time.RFC3339)
	item := models.FoodItem{
		ID:         s.newID(),
		UserID:     userID,
		Name:       strings.TrimSpace(input.Name),
		ExpiryDate: input.ExpiryDate,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if input.Amount != nil {
		if amount := strings.TrimSpace(*input.Amount); amount != "" {
			item.Amount = &amount
		}
	}

	view, err := inventory.View(item, today)
	if err != nil {
		return models.FoodItemView{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err = s.repository.Insert(ctx, item); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "foodItemService.Create").Str("user_id", userID).Msg("failed to insert food item")
		return models.FoodItemView{}, fmt.Errorf("error saving food item: %w", err)
	}

	if s.images != nil {
		s.images.Enqueue(models.ImageJob{
			Target:       models.ImageTargetFoodItem,
			RecordID:     item.ID,
			UserID:       userID,
			FoodItemName: item.Name,
		})
	}

	return view, nil
}

func (s *foodItemService) Delete(ctx context.Context, userID, itemID string) error {
	if err := s.repository.Delete(ctx, userID, itemID); err != nil {
		return fmt.Errorf("error deleting food item: %w", err)
	}

	return nil
}

func (s *foodItemService) Alerts(ctx context.Context, userID, today string) (models.ExpiryAlerts, error) {
	items, err := s.repository.ListByUser(ctx, userID)
	if err != nil {
		return models.ExpiryAlerts{}, fmt.Errorf("error listing food items: %w", err)
	}

	alerts, err := inventory.Alerts(items, today)
	if err != nil {
		return models.ExpiryAlerts{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return alerts, nil
}
