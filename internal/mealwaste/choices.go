package mealwaste

import (
	"math"
	"strings"
)

// Other is the choice that is replaced by a free-text value when one is given.
const Other = "Other"

var (
	MealTypes = []string{"Breakfast", "Brunch", "Lunch", "Dinner", "Snack", Other}

	WasteReasons = []string{"Too much served", "Didn't like taste", "Expired", "Accident", Other}

	DisposalActions = []string{
		"Composted", "General Waste", "Fed to pets", "Saved for later",
		"Recycled", "Gave away", "Down the drain", Other,
	}
)

// ResolveChoice returns the value stored for a picked choice. "Other" (or an
// empty choice) is replaced by the trimmed free text when that is set.
func ResolveChoice(choice, otherText string) string {
	choice = strings.TrimSpace(choice)
	if choice != "" && choice != Other {
		return choice
	}
	if other := strings.TrimSpace(otherText); other != "" {
		return other
	}
	return Other
}

// WastedFraction converts a wasted percentage in [0, 100] into the stored
// fraction of the served quantity.
func WastedFraction(percentage float64) (float64, error) {
	if percentage < 0 || percentage > 100 || math.IsNaN(percentage) {
		return 0, ErrInvalidWastePercentage
	}
	return percentage / 100, nil
}

// ValidateQuantity rejects non-positive served quantities.
func ValidateQuantity(q float64) error {
	if !(q > 0) {
		return ErrInvalidQuantity
	}
	return nil
}
