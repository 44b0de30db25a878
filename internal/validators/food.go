package validators

import (
	"context"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/go-waste-tracker/models"
	"github.com/google/uuid"
)

const (
	maxAmountLength   = 100
	maxMealNameLength = 100
	maxUnitLength     = 50
	maxChoiceLength   = 100
)

// FoodValidator implements Validator for the inventory and meal-waste
// inputs.
type FoodValidator struct {
}

func NewFoodValidator() Validator {
	return &FoodValidator{}
}

// Validate dispatches on the dynamic type of obj. Field restriction is not
// supported; every field of the input is checked.
//
// Supported types: models.FoodItemInput, models.MealInput and
// models.WasteInput, by value or pointer.
func (v *FoodValidator) Validate(_ context.Context, obj any, _ ...string) error {
	switch value := obj.(type) {
	case models.FoodItemInput:
		return validateFoodItem(value)
	case *models.FoodItemInput:
		return validateFoodItem(*value)
	case models.MealInput:
		return validateMeal(value)
	case *models.MealInput:
		return validateMeal(*value)
	case models.WasteInput:
		return validateWaste(value)
	case *models.WasteInput:
		return validateWaste(*value)
	default:
		return ErrUnsupportedType
	}
}

// ValidateID checks a server-assigned identifier.
func ValidateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidID
	}
	return nil
}

func validateFoodItem(input models.FoodItemInput) error {
	if err := checkName(input.Name, ErrEmptyFoodItemName, ErrFoodItemNameTooLong, maxFoodItemNameLength); err != nil {
		return err
	}
	if _, err := time.Parse(time.DateOnly, input.ExpiryDate); err != nil {
		return ErrInvalidExpiryDate
	}
	if input.Amount != nil && utf8.RuneCountInString(*input.Amount) > maxAmountLength {
		return ErrAmountTooLong
	}
	return nil
}

func validateMeal(input models.MealInput) error {
	if err := checkName(input.MealName, ErrEmptyMealName, ErrMealNameTooLong, maxMealNameLength); err != nil {
		return err
	}
	if !isValidTimestamp(input.ServedAt) {
		return ErrInvalidServedAt
	}
	if input.Notes != nil && utf8.RuneCountInString(*input.Notes) > maxNotesLength {
		return ErrNotesTooLong
	}
	if len(input.Portions) == 0 {
		return ErrNoPortions
	}

	for _, p := range input.Portions {
		if err := checkName(p.FoodItemName, ErrEmptyFoodItemName, ErrFoodItemNameTooLong, maxFoodItemNameLength); err != nil {
			return err
		}
		if !(p.QuantityServed > 0) || math.IsInf(p.QuantityServed, 1) {
			return ErrInvalidServedAmount
		}
		if err := checkName(p.UnitServed, ErrEmptyUnit, ErrUnitTooLong, maxUnitLength); err != nil {
			return err
		}
		if p.Description != nil && utf8.RuneCountInString(*p.Description) > maxNotesLength {
			return ErrDescriptionTooLong
		}
	}
	return nil
}

func validateWaste(input models.WasteInput) error {
	if err := ValidateID(input.PortionID); err != nil {
		return err
	}
	if math.IsNaN(input.WastedPercentage) || input.WastedPercentage < 0 || input.WastedPercentage > 100 {
		return ErrInvalidWastedShare
	}
	if input.Description != nil && utf8.RuneCountInString(*input.Description) > maxNotesLength {
		return ErrDescriptionTooLong
	}
	for _, s := range []string{input.Reason, input.OtherReason, input.DisposalAction, input.OtherDisposalAction} {
		if utf8.RuneCountInString(s) > maxChoiceLength {
			return ErrChoiceTooLong
		}
	}
	return nil
}

func checkName(s string, empty, tooLong error, limit int) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return empty
	}
	if utf8.RuneCountInString(s) > limit {
		return tooLong
	}
	return nil
}
