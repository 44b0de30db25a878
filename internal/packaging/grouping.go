package packaging

import (
	"sort"

	"github.com/MKhiriev/go-waste-tracker/models"
)

// SortNewestFirst returns a copy of logs ordered by date, full created_at
// and id, newest first.
func SortNewestFirst(logs Collection) []models.PackagingLog {
	sorted := make([]models.PackagingLog, len(logs))
	copy(sorted, logs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return newer(sorted[i], sorted[j])
	})
	return sorted
}

// GroupByDay groups logs by calendar date for the logged-items list.
// Days are ordered newest first, as are the logs inside each day.
func GroupByDay(logs Collection) []models.DayGroup {
	groups := make([]models.DayGroup, 0)
	for _, log := range SortNewestFirst(logs) {
		date := log.Date()
		if n := len(groups); n > 0 && groups[n-1].Date == date {
			groups[n-1].Logs = append(groups[n-1].Logs, log)
			continue
		}
		groups = append(groups, models.DayGroup{Date: date, Logs: []models.PackagingLog{log}})
	}
	return groups
}
