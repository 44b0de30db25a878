package store

import "github.com/MKhiriev/go-waste-tracker/internal/logger"

// Storages aggregates the repositories handed to the service layer.
type Storages struct {
	PackagingLogRepository PackagingLogRepository
	FoodItemRepository     FoodItemRepository
	MealRepository         MealRepository
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		PackagingLogRepository: NewPackagingLogRepository(db, log),
		FoodItemRepository:     NewFoodItemRepository(db, log),
		MealRepository:         NewMealRepository(db, log),
	}
}
