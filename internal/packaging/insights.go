package packaging

import (
	"fmt"

	"github.com/MKhiriev/go-waste-tracker/models"
)

// trailingWindowDays is the number of calendar days before today averaged
// for the trend comparison.
const trailingWindowDays = 7

// Insights generates short tips and encouragement for the collection as seen
// on the given day. An empty collection yields a single encouragement.
func (e *Engine) Insights(logs Collection, today string) ([]models.Insight, error) {
	if err := ValidateDate(today); err != nil {
		return nil, err
	}

	if len(logs) == 0 {
		return []models.Insight{{
			Type:    models.InsightEncouragement,
			Message: "Start logging your purchases to track your packaging choices and discover low-waste swaps!",
		}}, nil
	}

	summaries := e.Summarize(logs)
	todaySummary := findSummary(summaries, today)
	average, hasAverage, err := trailingAverage(summaries, today, trailingWindowDays)
	if err != nil {
		return nil, err
	}

	var insights []models.Insight
	add := func(t models.InsightType, msg string) {
		insights = append(insights, models.Insight{Type: t, Message: msg})
	}

	if todaySummary != nil {
		pct := todaySummary.LowWastePercentage
		switch {
		case pct == 100:
			add(models.InsightAchievement, "Amazing! Every purchase today was low waste!")
		case pct >= 75:
			add(models.InsightEncouragement, "Great job choosing low-waste packaging today! Every little bit helps.")
		case pct >= 50:
			add(models.InsightEncouragement, "Good effort! You're mindful of your packaging choices.")
			add(models.InsightTip, "Tip: Bring your own containers and bags when you shop.")
		case pct >= 25:
			add(models.InsightWarning, "Quite a bit of plastic today, but awareness is the first step!")
			add(models.InsightTip, "Tip: Check bulk stores and farmer's markets for loose produce.")
		default:
			add(models.InsightWarning, "Let's focus on choosing low-waste packaging next time.")
			add(models.InsightTip, "Tip: Glass, metal and paper packaging are easier to recycle than plastic.")
		}

		if hasAverage {
			current := float64(pct)
			switch {
			case current > average:
				add(models.InsightEncouragement, fmt.Sprintf(
					"Fantastic! Your low-waste share today (%.1f%%) is higher than your recent average (%.1f%%). Keep up the great habits!",
					current, average))
			case current < average && current < average*0.8:
				add(models.InsightWarning, fmt.Sprintf(
					"Heads up! Your low-waste share today (%.1f%%) is lower than your recent average (%.1f%%). Let's get back on track!",
					current, average))
				add(models.InsightTip, "Tip: Plan your shopping list ahead to avoid impulse buys in single-use packaging.")
			}
		}
	} else {
		add(models.InsightTip, "Log today's purchases to see your trends and get helpful tips!")
	}

	if len(summaries) > 0 && len(summaries) < 3 {
		add(models.InsightTip, "Keep logging for a few more days to unlock more detailed trend insights!")
	}

	if hasAverage && average < 50 && (todaySummary == nil || todaySummary.LowWastePercentage < 50) {
		add(models.InsightWarning, "Pattern detected: most of your recent purchases came in high-waste packaging. Small changes can make a big difference!")
		add(models.InsightTip, "Sustainability Tip: Swap one regular purchase for a version sold loose or in glass.")
	}

	if swaps := e.SustainableSwaps(logs); swaps > 0 {
		add(models.InsightAchievement, fmt.Sprintf("You've made %d sustainable %s so far!", swaps, plural(swaps, "swap", "swaps")))
	}

	if pt, ok := mostFrequentHighWaste(logs); ok {
		add(models.InsightTip, fmt.Sprintf(
			"Your most frequent high-waste packaging is %s. Look for low-waste alternatives for these items.",
			e.taxonomy.Label(pt)))
	}

	return insights, nil
}

func findSummary(summaries []models.DailySummary, date string) *models.DailySummary {
	for i := range summaries {
		if summaries[i].Date == date {
			return &summaries[i]
		}
	}
	return nil
}

// trailingAverage averages LowWastePercentage over the summaries dated within
// the days calendar days before today, today excluded. The second result is
// false when there is no such summary.
func trailingAverage(summaries []models.DailySummary, today string, days int) (float64, bool, error) {
	cutoff, err := CutoffDate(today, days)
	if err != nil {
		return 0, false, err
	}

	sum, n := 0, 0
	for _, s := range summaries {
		if s.Date >= cutoff && s.Date < today {
			sum += s.LowWastePercentage
			n++
		}
	}
	if n == 0 {
		return 0, false, nil
	}
	return float64(sum) / float64(n), true, nil
}

// mostFrequentHighWaste returns the packaging type logged most often among
// high-waste logs. Ties go to the type seen first.
func mostFrequentHighWaste(logs Collection) (string, bool) {
	counts := make(map[string]int)
	var order []string
	for _, log := range logs {
		if log.IsLowWaste {
			continue
		}
		if _, ok := counts[log.PackagingType]; !ok {
			order = append(order, log.PackagingType)
		}
		counts[log.PackagingType]++
	}

	best, bestCount := "", 0
	for _, pt := range order {
		if counts[pt] > bestCount {
			best, bestCount = pt, counts[pt]
		}
	}
	return best, bestCount > 0
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
