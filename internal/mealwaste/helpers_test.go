package mealwaste

import "github.com/MKhiriev/go-waste-tracker/models"

func portion(id string, wasted *float64) models.PortionWithWaste {
	p := models.PortionWithWaste{ServedPortion: models.ServedPortion{ID: id, FoodItemName: "item-" + id, QuantityServed: 1, UnitServed: "plate"}}
	if wasted != nil {
		p.Waste = &models.WasteEntry{ServedPortionID: id, WastedFraction: *wasted, Reason: "Too much served"}
	}
	return p
}

func fraction(f float64) *float64 { return &f }

func meal(id, servedAt string, portions ...models.PortionWithWaste) models.Meal {
	return models.Meal{
		Serving:  models.FoodServing{ID: id, UserID: "user-1", MealName: "Dinner", ServedAt: servedAt},
		Portions: portions,
	}
}

func summary(date string, wasted float64) models.WasteSummary {
	return models.WasteSummary{Date: date, PercentageConsumed: 100 - wasted, PercentageWasted: wasted}
}
