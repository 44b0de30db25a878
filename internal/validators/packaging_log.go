package validators

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/go-waste-tracker/models"
	"github.com/google/uuid"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldID targets the server-assigned identifier of a packaging log.
	FieldID = "id"

	// FieldUserID targets the owner of a packaging log.
	FieldUserID = "user_id"

	// FieldCreatedAt targets the purchase date chosen by the user.
	FieldCreatedAt = "created_at"

	// FieldFoodItemName targets the free-text food item name.
	FieldFoodItemName = "food_item_name"

	// FieldPackagingType targets the taxonomy id or free-text packaging.
	FieldPackagingType = "packaging_type"

	FieldQuantity = "quantity"
	FieldNotes    = "notes"
)

const (
	maxFoodItemNameLength  = 200
	maxPackagingTypeLength = 100
	maxNotesLength         = 1000
)

// PackagingLogValidator implements Validator for packaging logs and the
// create/edit input of a packaging log.
type PackagingLogValidator struct {
}

// NewPackagingLogValidator constructs a new PackagingLogValidator
// and returns it as the Validator interface.
func NewPackagingLogValidator() Validator {
	return &PackagingLogValidator{}
}

// Validate dispatches validation based on the dynamic type of obj.
//
// Supported types:
//   - models.PackagingLogInput / *models.PackagingLogInput
//   - models.PackagingLog / *models.PackagingLog
//
// Returns ErrUnsupportedType if obj does not match any known model.
func (v *PackagingLogValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.PackagingLogInput:
		return v.validateInput(ctx, value, fields...)
	case *models.PackagingLogInput:
		return v.validateInput(ctx, *value, fields...)

	case models.PackagingLog:
		return v.validateLog(ctx, value, fields...)
	case *models.PackagingLog:
		return v.validateLog(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateInput validates the user-editable fields of a packaging log.
//
// Default validated fields: CreatedAt, FoodItemName, PackagingType,
// Quantity, Notes.
func (v *PackagingLogValidator) validateInput(_ context.Context, input models.PackagingLogInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCreatedAt, FieldFoodItemName, FieldPackagingType, FieldQuantity, FieldNotes}
	}

	for _, f := range fields {
		switch f {
		case FieldCreatedAt:
			if !isValidTimestamp(input.CreatedAt) {
				return ErrInvalidCreatedAt
			}
		case FieldFoodItemName:
			name := strings.TrimSpace(input.FoodItemName)
			if name == "" {
				return ErrEmptyFoodItemName
			}
			if utf8.RuneCountInString(name) > maxFoodItemNameLength {
				return ErrFoodItemNameTooLong
			}
		case FieldPackagingType:
			pt := strings.TrimSpace(input.PackagingType)
			if pt == "" {
				return ErrEmptyPackagingType
			}
			if utf8.RuneCountInString(pt) > maxPackagingTypeLength {
				return ErrPackagingTypeTooLong
			}
		case FieldQuantity:
			if input.Quantity <= 0 {
				return ErrInvalidQuantity
			}
		case FieldNotes:
			if input.Notes != nil && utf8.RuneCountInString(*input.Notes) > maxNotesLength {
				return ErrNotesTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateLog validates the identity fields of a stored packaging log.
//
// Default validated fields: ID, UserID.
func (v *PackagingLogValidator) validateLog(_ context.Context, log models.PackagingLog, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldUserID}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if _, err := uuid.Parse(log.ID); err != nil {
				return ErrInvalidLogID
			}
		case FieldUserID:
			if strings.TrimSpace(log.UserID) == "" {
				return ErrInvalidUserID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// isValidTimestamp accepts a plain YYYY-MM-DD date or an RFC 3339 timestamp.
func isValidTimestamp(s string) bool {
	if _, err := time.Parse(time.DateOnly, s); err == nil {
		return true
	}
	if _, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return true
	}
	return false
}
