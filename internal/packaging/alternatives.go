package packaging

import "github.com/MKhiriev/go-waste-tracker/models"

// HighWasteItems picks the food items most recently bought in high-waste
// packaging, one entry per item name, newest first, at most limit entries.
// The waste tier is the snapshot stored on each log.
func (e *Engine) HighWasteItems(logs Collection, limit int) []models.HighWasteItem {
	items := make([]models.HighWasteItem, 0, limit)
	for _, log := range SortNewestFirst(logs) {
		if len(items) >= limit {
			break
		}
		if log.IsLowWaste || containsItem(items, log.FoodItemName) {
			continue
		}
		items = append(items, models.HighWasteItem{
			FoodItemName:   log.FoodItemName,
			PackagingType:  log.PackagingType,
			PackagingLabel: e.taxonomy.Label(log.PackagingType),
		})
	}
	return items
}

func containsItem(items []models.HighWasteItem, name string) bool {
	for _, item := range items {
		if sameItem(item.FoodItemName, name) {
			return true
		}
	}
	return false
}
