package mealwaste

import (
	"math"
	"slices"
	"strings"

	"github.com/MKhiriev/go-waste-tracker/models"
)

// ServingWastePercentage averages the wasted fraction over the portions that
// have a waste entry. It returns nil when no portion has one.
func ServingWastePercentage(portions []models.PortionWithWaste) *float64 {
	sum, n := 0.0, 0
	for _, p := range portions {
		if p.Waste == nil {
			continue
		}
		sum += p.Waste.WastedFraction
		n++
	}
	if n == 0 {
		return nil
	}
	pct := round2(sum / float64(n) * 100)
	return &pct
}

type dayTotals struct {
	items    int
	consumed float64
}

// Summarize builds one WasteSummary per serving date, oldest first.
//
// Every portion counts as one item. A portion without a waste entry was
// fully eaten; otherwise the consumed share is one minus the wasted
// fraction. A day whose meals have no portions reports zero for both
// percentages.
func Summarize(meals []models.Meal) []models.WasteSummary {
	days := make(map[string]*dayTotals)
	for _, meal := range meals {
		date := meal.Serving.Date()
		t, ok := days[date]
		if !ok {
			t = &dayTotals{}
			days[date] = t
		}
		for _, p := range meal.Portions {
			t.items++
			if p.Waste == nil {
				t.consumed++
				continue
			}
			t.consumed += 1 - p.Waste.WastedFraction
		}
	}

	summaries := make([]models.WasteSummary, 0, len(days))
	for date, t := range days {
		s := models.WasteSummary{Date: date}
		if t.items > 0 {
			consumed := t.consumed / float64(t.items) * 100
			s.PercentageConsumed = round2(consumed)
			s.PercentageWasted = round2(100 - consumed)
		}
		summaries = append(summaries, s)
	}

	slices.SortFunc(summaries, func(a, b models.WasteSummary) int {
		return strings.Compare(a.Date, b.Date)
	})
	return summaries
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
