package mealwaste

import (
	"fmt"

	"github.com/MKhiriev/go-waste-tracker/internal/packaging"
	"github.com/MKhiriev/go-waste-tracker/models"
)

// trailingWindowDays matches the packaging trend window.
const trailingWindowDays = 7

// Insights generates tips and encouragement from the daily summaries as
// seen on the given day.
func Insights(summaries []models.WasteSummary, today string) ([]models.Insight, error) {
	if err := packaging.ValidateDate(today); err != nil {
		return nil, err
	}

	todaySummary := findSummary(summaries, today)
	average, hasAverage, err := trailingAverage(summaries, today)
	if err != nil {
		return nil, err
	}

	var insights []models.Insight
	add := func(t models.InsightType, msg string) {
		insights = append(insights, models.Insight{Type: t, Message: msg})
	}

	if todaySummary != nil {
		wasted := todaySummary.PercentageWasted
		switch {
		case wasted == 0:
			add(models.InsightEncouragement, "Amazing! Zero waste today! You're a sustainability superstar!")
		case wasted <= 10:
			add(models.InsightEncouragement, "Great job on keeping waste low today! Every little bit helps.")
		case wasted <= 25:
			add(models.InsightEncouragement, "Good effort! You're mindful of your consumption.")
			add(models.InsightTip, "Tip: Try planning meals for the next few days to use up ingredients.")
		case wasted <= 50:
			add(models.InsightWarning, "A bit of waste today, but awareness is the first step!")
			add(models.InsightTip, "Tip: Check 'use-by' dates regularly and prioritize older items.")
		default:
			add(models.InsightWarning, "Let's focus on reducing waste tomorrow.")
			add(models.InsightTip, "Tip: Serve smaller portions initially; you can always have seconds!")
		}

		if hasAverage {
			switch {
			case wasted < average:
				add(models.InsightEncouragement, fmt.Sprintf(
					"Fantastic! Your waste today (%.1f%%) is lower than your recent average (%.1f%%). Keep up the great habits!",
					wasted, average))
			case wasted > average && average < wasted*0.8:
				add(models.InsightWarning, fmt.Sprintf(
					"Heads up! Waste today (%.1f%%) is higher than your recent average (%.1f%%). Let's get back on track!",
					wasted, average))
				add(models.InsightTip, "Tip: Revisit your shopping list to avoid overbuying, especially impulse buys.")
			}
		}
	} else {
		add(models.InsightTip, "Log your meals and waste to see your trends and get helpful tips!")
	}

	if len(summaries) > 0 && len(summaries) < 3 {
		add(models.InsightTip, "Keep logging for a few more days to unlock more detailed trend insights!")
	}

	if hasAverage && average > 30 && (todaySummary == nil || todaySummary.PercentageWasted > 30) {
		add(models.InsightWarning, "Pattern detected: Your average waste seems a bit high. Small changes can make a big difference!")
		add(models.InsightTip, "Sustainability Tip: Explore creative ways to use leftovers. Many websites offer recipes for leftover ingredients!")
	}

	return insights, nil
}

func findSummary(summaries []models.WasteSummary, date string) *models.WasteSummary {
	for i := range summaries {
		if summaries[i].Date == date {
			return &summaries[i]
		}
	}
	return nil
}

// trailingAverage averages PercentageWasted over the summaries dated within
// the trailing window before today, today excluded.
func trailingAverage(summaries []models.WasteSummary, today string) (float64, bool, error) {
	cutoff, err := packaging.CutoffDate(today, trailingWindowDays)
	if err != nil {
		return 0, false, err
	}

	sum, n := 0.0, 0
	for _, s := range summaries {
		if s.Date >= cutoff && s.Date < today {
			sum += s.PercentageWasted
			n++
		}
	}
	if n == 0 {
		return 0, false, nil
	}
	return sum / float64(n), true, nil
}
