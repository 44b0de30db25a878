package models

// FoodServing is one meal served on a given day. A meal groups the portions
// that were put on the table.
type FoodServing struct {
	ID       string  `json:"id"`
	UserID   string  `json:"user_id"`
	MealName string  `json:"meal_name"`
	ServedAt string  `json:"served_at"`
	Notes    *string `json:"notes,omitempty"`

	CreatedAt string `json:"created_at"`
}

// Date returns the calendar date part (YYYY-MM-DD) of ServedAt.
func (s FoodServing) Date() string {
	return DateKey(s.ServedAt)
}

// ServedPortion is a single food item of a meal.
type ServedPortion struct {
	ID             string  `json:"id"`
	ServingID      string  `json:"serving_id"`
	UserID         string  `json:"user_id"`
	FoodItemName   string  `json:"custom_food_item_name"`
	QuantityServed float64 `json:"quantity_served"`
	UnitServed     string  `json:"unit_served"`
	Description    *string `json:"description,omitempty"`

	CreatedAt string `json:"created_at"`
}

// WasteEntry records how much of a portion was thrown away. A portion has
// at most one waste entry.
type WasteEntry struct {
	ID              string `json:"id"`
	ServedPortionID string `json:"served_portion_id"`
	UserID          string `json:"user_id"`

	// WastedFraction is in [0, 1].
	WastedFraction float64 `json:"quantity_wasted_as_fraction_of_served"`

	Description    *string `json:"user_waste_description,omitempty"`
	Reason         string  `json:"waste_reason"`
	DisposalAction string  `json:"disposal_action_taken"`
	CreatedAt      string  `json:"created_at"`
}

// PortionWithWaste is a served portion and its waste entry, if one was
// recorded.
type PortionWithWaste struct {
	ServedPortion
	Waste *WasteEntry `json:"waste,omitempty"`
}

// Meal is a serving with all of its portions.
type Meal struct {
	Serving  FoodServing        `json:"serving"`
	Portions []PortionWithWaste `json:"portions"`

	// WastePercentage averages the wasted fraction over the portions that
	// have a waste entry. Nil when none has.
	WastePercentage *float64 `json:"waste_percentage,omitempty"`
}

// PortionInput describes one portion of a meal being added.
type PortionInput struct {
	FoodItemName   string  `json:"custom_food_item_name"`
	QuantityServed float64 `json:"quantity_served"`
	UnitServed     string  `json:"unit_served"`
	Description    *string `json:"description,omitempty"`
}

// MealInput adds portions to the meal of that name on the ServedAt day,
// creating the meal when it does not exist yet.
type MealInput struct {
	MealName string         `json:"meal_name"`
	ServedAt string         `json:"served_at"`
	Notes    *string        `json:"notes,omitempty"`
	Portions []PortionInput `json:"portions"`
}

// WasteInput records the waste of one portion. WastedPercentage is in
// [0, 100]; a reason or disposal action of "Other" is replaced by the
// matching free-text field when it is set.
type WasteInput struct {
	PortionID           string  `json:"portion_id"`
	WastedPercentage    float64 `json:"wasted_percentage"`
	Description         *string `json:"description,omitempty"`
	Reason              string  `json:"reason"`
	OtherReason         string  `json:"other_reason,omitempty"`
	DisposalAction      string  `json:"disposal_action"`
	OtherDisposalAction string  `json:"other_disposal_action,omitempty"`
}

// WasteSummary aggregates the portions served on one calendar day.
type WasteSummary struct {
	Date               string  `json:"date"`
	PercentageConsumed float64 `json:"percentage_consumed"`
	PercentageWasted   float64 `json:"percentage_wasted"`
}

// Day implements the dated-aggregate contract used by range filtering.
func (s WasteSummary) Day() string {
	return s.Date
}
