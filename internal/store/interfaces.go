package store

import (
	"context"

	"github.com/MKhiriev/go-waste-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// PackagingLogRepository persists packaging logs. Every method is scoped to
// a single user; a log owned by somebody else behaves as if it did not exist.
type PackagingLogRepository interface {
	Insert(ctx context.Context, log models.PackagingLog) error
	Update(ctx context.Context, log models.PackagingLog) error
	Delete(ctx context.Context, userID, logID string) error
	ListByUser(ctx context.Context, userID string) ([]models.PackagingLog, error)
	GetByID(ctx context.Context, userID, logID string) (models.PackagingLog, error)
	SetImageURL(ctx context.Context, userID, logID, imageURL string) error
}

// FoodItemRepository persists the user's food inventory.
type FoodItemRepository interface {
	Insert(ctx context.Context, item models.FoodItem) error
	ListByUser(ctx context.Context, userID string) ([]models.FoodItem, error)
	GetByID(ctx context.Context, userID, itemID string) (models.FoodItem, error)
	Delete(ctx context.Context, userID, itemID string) error
	SetImageURL(ctx context.Context, userID, itemID, imageURL string) error
}

// MealRepository persists served meals, their portions and the waste
// recorded for each portion.
type MealRepository interface {
	ListMeals(ctx context.Context, userID string) ([]models.Meal, error)
	GetMeal(ctx context.Context, userID, servingID string) (models.Meal, error)
	FindServing(ctx context.Context, userID, mealName, date string) (models.FoodServing, error)
	SaveMeal(ctx context.Context, serving models.FoodServing, created bool, portions []models.ServedPortion) error
	GetPortion(ctx context.Context, userID, portionID string) (models.ServedPortion, error)
	UpsertWaste(ctx context.Context, entry models.WasteEntry) error
	DeleteMeal(ctx context.Context, userID, servingID string) error
}
