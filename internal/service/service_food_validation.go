package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-waste-tracker/internal/logger"
	"github.com/MKhiriev/go-waste-tracker/internal/packaging"
	"github.com/MKhiriev/go-waste-tracker/internal/validators"
	"github.com/MKhiriev/go-waste-tracker/models"
)

// foodValidation holds the checks shared by the inventory and meal-waste
// validation wrappers.
type foodValidation struct {
	validator validators.Validator
}

func (v foodValidation) user(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return ErrNoUserID
	}
	return nil
}

func (v foodValidation) identity(userID, id string) error {
	if err := v.user(userID); err != nil {
		return err
	}
	if err := validators.ValidateID(id); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}

func (v foodValidation) input(ctx context.Context, funcName string, input any) error {
	if err := v.validator.Validate(ctx, input); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", funcName).Msg("rejected input")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}

// FoodItemValidationService validates caller input before delegating to the
// wrapped FoodItemService.
type FoodItemValidationService struct {
	foodValidation
	inner  FoodItemService
	logger *logger.Logger
}

func NewFoodItemValidationService(logger *logger.Logger) *FoodItemValidationService {
	return &FoodItemValidationService{
		foodValidation: foodValidation{validator: validators.NewFoodValidator()},
		logger:         logger,
	}
}

func (v *FoodItemValidationService) Wrap(inner FoodItemService) FoodItemService {
	v.inner = inner
	return v
}

func (v *FoodItemValidationService) List(ctx context.Context, userID, today, expiresOn string) ([]models.FoodItemView, error) {
	if err := v.user(userID); err != nil {
		return nil, err
	}
	if expiresOn != "" {
		if err := packaging.ValidateDate(expiresOn); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
	}

	return v.inner.List(ctx, userID, today, expiresOn)
}

func (v *FoodItemValidationService) Create(ctx context.Context, userID string, input models.FoodItemInput, today string) (models.FoodItemView, error) {
	if err := v.user(userID); err != nil {
		return models.FoodItemView{}, err
	}
	if err := v.input(ctx, "FoodItemValidationService.Create", input); err != nil {
		return models.FoodItemView{}, err
	}

	return v.inner.Create(ctx, userID, input, today)
}

func (v *FoodItemValidationService) Delete(ctx context.Context, userID, itemID string) error {
	if err := v.identity(userID, itemID); err != nil {
		return err
	}

	return v.inner.Delete(ctx, userID, itemID)
}

func (v *FoodItemValidationService) Alerts(ctx context.Context, userID, today string) (models.ExpiryAlerts, error) {
	if err := v.user(userID); err != nil {
		return models.ExpiryAlerts{}, err
	}

	return v.inner.Alerts(ctx, userID, today)
}

// MealWasteValidationService validates caller input before delegating to the
// wrapped MealWasteService.
type MealWasteValidationService struct {
	foodValidation
	inner  MealWasteService
	logger *logger.Logger
}

func NewMealWasteValidationService(logger *logger.Logger) *MealWasteValidationService {
	return &MealWasteValidationService{
		foodValidation: foodValidation{validator: validators.NewFoodValidator()},
		logger:         logger,
	}
}

func (v *MealWasteValidationService) Wrap(inner MealWasteService) MealWasteService {
	v.inner = inner
	return v
}

func (v *MealWasteValidationService) ListMeals(ctx context.Context, userID string) ([]models.Meal, error) {
	if err := v.user(userID); err != nil {
		return nil, err
	}

	return v.inner.ListMeals(ctx, userID)
}

func (v *MealWasteValidationService) AddMeal(ctx context.Context, userID string, input models.MealInput) (models.Meal, error) {
	if err := v.user(userID); err != nil {
		return models.Meal{}, err
	}
	if err := v.input(ctx, "MealWasteValidationService.AddMeal", input); err != nil {
		return models.Meal{}, err
	}

	return v.inner.AddMeal(ctx, userID, input)
}

func (v *MealWasteValidationService) RecordWaste(ctx context.Context, userID, servingID string, input models.WasteInput) (models.Meal, error) {
	if err := v.identity(userID, servingID); err != nil {
		return models.Meal{}, err
	}
	if err := v.input(ctx, "MealWasteValidationService.RecordWaste", input); err != nil {
		return models.Meal{}, err
	}

	return v.inner.RecordWaste(ctx, userID, servingID, input)
}

func (v *MealWasteValidationService) DeleteMeal(ctx context.Context, userID, servingID string) error {
	if err := v.identity(userID, servingID); err != nil {
		return err
	}

	return v.inner.DeleteMeal(ctx, userID, servingID)
}

func (v *MealWasteValidationService) Summaries(ctx context.Context, userID string, r packaging.TimeRange, today string) ([]models.WasteSummary, error) {
	if err := v.user(userID); err != nil {
		return nil, err
	}

	return v.inner.Summaries(ctx, userID, r, today)
}

func (v *MealWasteValidationService) Insights(ctx context.Context, userID, today string) ([]models.Insight, error) {
	if err := v.user(userID); err != nil {
		return nil, err
	}

	return v.inner.Insights(ctx, userID, today)
}
