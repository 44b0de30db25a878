package packaging

import (
	"sort"

	"github.com/MKhiriev/go-waste-tracker/models"
)

// Summarize folds logs into one DailySummary per calendar date, sorted by
// date ascending. Dates without logs are absent. The grouping key is the
// date prefix of the stored created_at string.
func (e *Engine) Summarize(logs Collection) []models.DailySummary {
	buckets := make(map[string]*tally)
	for _, log := range logs {
		date := log.Date()
		t, ok := buckets[date]
		if !ok {
			t = &tally{}
			buckets[date] = t
		}
		t.add(e.taxonomy, log)
	}

	summaries := make([]models.DailySummary, 0, len(buckets))
	for date, t := range buckets {
		summaries = append(summaries, models.DailySummary{
			Date:               date,
			TotalChoicesLogged: t.total,
			LowWasteChoices:    t.low,
			TotalSwapsMade:     t.swaps,
			LowWastePercentage: t.percentage(),
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Date < summaries[j].Date
	})

	return summaries
}
