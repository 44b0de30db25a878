package inventory

import (
	"cmp"
	"slices"
	"time"

	"github.com/MKhiriev/go-waste-tracker/internal/packaging"
	"github.com/MKhiriev/go-waste-tracker/models"
)

// WarningDays is how many days ahead an item counts as expiring soon.
// An item expiring today is expiring soon, not expired.
const WarningDays = 3

const dateLayout = "2006-01-02"

// DaysUntil returns the number of calendar days from today to expiry.
// Negative values mean the item has already expired.
func DaysUntil(expiry, today string) (int, error) {
	if err := packaging.ValidateDate(expiry); err != nil {
		return 0, err
	}
	if err := packaging.ValidateDate(today); err != nil {
		return 0, err
	}

	e, _ := time.Parse(dateLayout, expiry)
	t, _ := time.Parse(dateLayout, today)
	return int(e.Sub(t).Hours() / 24), nil
}

// StatusOf maps a day difference onto an expiry status.
func StatusOf(daysUntil int) models.ExpiryStatus {
	switch {
	case daysUntil < 0:
		return models.ExpiryExpired
	case daysUntil <= WarningDays:
		return models.ExpiryExpiringSoon
	default:
		return models.ExpiryFresh
	}
}

// View annotates item with its status as seen on today.
func View(item models.FoodItem, today string) (models.FoodItemView, error) {
	days, err := DaysUntil(item.ExpiryDate, today)
	if err != nil {
		return models.FoodItemView{}, err
	}
	return models.FoodItemView{FoodItem: item, Status: StatusOf(days), DaysUntilExpiry: days}, nil
}

// Views annotates every item and orders them by expiry date, then name.
func Views(items []models.FoodItem, today string) ([]models.FoodItemView, error) {
	views := make([]models.FoodItemView, 0, len(items))
	for _, item := range items {
		v, err := View(item, today)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}

	slices.SortStableFunc(views, func(a, b models.FoodItemView) int {
		return cmp.Or(
			cmp.Compare(a.ExpiryDate, b.ExpiryDate),
			cmp.Compare(a.Name, b.Name),
		)
	})
	return views, nil
}

// ExpiringOn returns the views whose expiry date is exactly date.
func ExpiringOn(views []models.FoodItemView, date string) []models.FoodItemView {
	out := make([]models.FoodItemView, 0)
	for _, v := range views {
		if v.ExpiryDate == date {
			out = append(out, v)
		}
	}
	return out
}

// Alerts splits the items needing attention into expired and expiring soon.
// Both lists keep the ascending expiry order of Views.
func Alerts(items []models.FoodItem, today string) (models.ExpiryAlerts, error) {
	views, err := Views(items, today)
	if err != nil {
		return models.ExpiryAlerts{}, err
	}

	alerts := models.ExpiryAlerts{
		Expired:      make([]models.FoodItemView, 0),
		ExpiringSoon: make([]models.FoodItemView, 0),
	}
	for _, v := range views {
		switch v.Status {
		case models.ExpiryExpired:
			alerts.Expired = append(alerts.Expired, v)
		case models.ExpiryExpiringSoon:
			alerts.ExpiringSoon = append(alerts.ExpiringSoon, v)
		}
	}
	return alerts, nil
}
