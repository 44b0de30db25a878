package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID        = errors.New("invalid user ID")
	ErrInvalidLogID         = errors.New("invalid packaging log ID")
	ErrInvalidCreatedAt     = errors.New("invalid purchase date, expected YYYY-MM-DD or an ISO-8601 timestamp")
	ErrEmptyFoodItemName    = errors.New("food item name is required")
	ErrFoodItemNameTooLong  = errors.New("food item name is too long")
	ErrEmptyPackagingType   = errors.New("packaging type is required")
	ErrPackagingTypeTooLong = errors.New("packaging type is too long")
	ErrInvalidQuantity      = errors.New("quantity must be a whole number greater than 0")
	ErrNotesTooLong         = errors.New("notes are too long")

	ErrInvalidID           = errors.New("invalid id")
	ErrInvalidExpiryDate   = errors.New("invalid expiry date, expected YYYY-MM-DD")
	ErrAmountTooLong       = errors.New("amount is too long")
	ErrEmptyMealName       = errors.New("meal name is required")
	ErrMealNameTooLong     = errors.New("meal name is too long")
	ErrInvalidServedAt     = errors.New("invalid serving date, expected YYYY-MM-DD or an ISO-8601 timestamp")
	ErrNoPortions          = errors.New("at least one portion is required")
	ErrEmptyUnit           = errors.New("unit is required")
	ErrUnitTooLong         = errors.New("unit is too long")
	ErrDescriptionTooLong  = errors.New("description is too long")
	ErrInvalidServedAmount = errors.New("served quantity must be greater than 0")
	ErrInvalidWastedShare  = errors.New("wasted percentage must be between 0 and 100")
	ErrChoiceTooLong       = errors.New("reason or disposal action is too long")
)
