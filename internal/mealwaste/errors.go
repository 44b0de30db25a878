package mealwaste

import "errors"

var (
	ErrInvalidWastePercentage = errors.New("wasted percentage must be between 0 and 100")
	ErrInvalidQuantity        = errors.New("served quantity must be greater than 0")
)
