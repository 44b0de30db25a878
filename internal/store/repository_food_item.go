package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-waste-tracker/internal/logger"
	"github.com/MKhiriev/go-waste-tracker/models"
)

// foodItemRepository is the SQL implementation of [FoodItemRepository]
// over the "food_items" table.
type foodItemRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

func NewFoodItemRepository(db *DB, logger *logger.Logger) FoodItemRepository {
	return &foodItemRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (f *foodItemRepository) Insert(ctx context.Context, item models.FoodItem) error {
	query, args, err := buildInsertFoodItemQuery(f.builder, item)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var res sql.Result
	err = f.withRetry(ctx, func() error {
		var execErr error
		res, execErr = f.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		if f.errorClassificator.IsUniqueViolation(err) {
			return fmt.Errorf("%w: %w", ErrFoodItemAlreadyExists, err)
		}
		logger.FromContext(ctx).Err(err).Str("func", "foodItemRepository.Insert").Str("user_id", item.UserID).Msg("failed to insert food item")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrFoodItemNotSaved
	}

	return nil
}

// ListByUser returns the user's items, soonest expiry first.
func (f *foodItemRepository) ListByUser(ctx context.Context, userID string) ([]models.FoodItem, error) {
	query, args, err := buildListFoodItemsQuery(f.builder, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return queryAll(ctx, f.DB, "foodItemRepository.ListByUser", query, args, scanFoodItem)
}

func (f *foodItemRepository) GetByID(ctx context.Context, userID, itemID string) (models.FoodItem, error) {
	query, args, err := buildGetFoodItemQuery(f.builder, userID, itemID)
	if err != nil {
		return models.FoodItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	item, err := scanFoodItem(f.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.FoodItem{}, ErrFoodItemNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "foodItemRepository.GetByID").
			Str("item_id", itemID).
			Msg("failed to get food item")
		return models.FoodItem{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return item, nil
}

func (f *foodItemRepository) Delete(ctx context.Context, userID, itemID string) error {
	query, args, err := buildDeleteFoodItemQuery(f.builder, userID, itemID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return f.execAffectingOne(ctx, "foodItemRepository.Delete", ErrFoodItemNotFound, query, args)
}

// SetImageURL also bumps updated_at.
func (f *foodItemRepository) SetImageURL(ctx context.Context, userID, itemID, imageURL string) error {
	updatedAt := f.now().UTC().Format(time.RFC3339)
	query, args, err := buildSetFoodItemImageQuery(f.builder, userID, itemID, imageURL, updatedAt)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return f.execAffectingOne(ctx, "foodItemRepository.SetImageURL", ErrFoodItemNotFound, query, args)
}
