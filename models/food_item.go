package models

// FoodItem is one item kept in the user's fridge or pantry.
type FoodItem struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Name   string `json:"name"`

	// ExpiryDate is a plain YYYY-MM-DD calendar date.
	ExpiryDate string `json:"expiry_date"`

	// Amount is free text ("2 packs", "500 g").
	Amount   *string `json:"amount,omitempty"`
	ImageURL *string `json:"image_url,omitempty"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// FoodItemInput carries the user-editable fields of a food item.
type FoodItemInput struct {
	Name       string  `json:"name"`
	ExpiryDate string  `json:"expiry_date"`
	Amount     *string `json:"amount,omitempty"`
}

// ExpiryStatus tells how close a food item is to its expiry date.
type ExpiryStatus string

const (
	ExpiryExpired      ExpiryStatus = "expired"
	ExpiryExpiringSoon ExpiryStatus = "expiring_soon"
	ExpiryFresh        ExpiryStatus = "fresh"
)

// FoodItemView is a food item together with its expiry status as seen on a
// given day.
type FoodItemView struct {
	FoodItem
	Status          ExpiryStatus `json:"status"`
	DaysUntilExpiry int          `json:"days_until_expiry"`
}

// ExpiryAlerts lists the items that need attention: expired ones oldest
// first, then the ones expiring within the warning window, soonest first.
type ExpiryAlerts struct {
	Expired      []FoodItemView `json:"expired"`
	ExpiringSoon []FoodItemView `json:"expiring_soon"`
}
