package packaging

import (
	"math"

	"github.com/MKhiriev/go-waste-tracker/models"
)

// tally is the counting routine shared by daily summaries and the scoreboard.
type tally struct {
	total int
	low   int
	swaps int
}

func (t *tally) add(taxonomy Taxonomy, log models.PackagingLog) {
	t.total++
	if log.IsLowWaste {
		t.low++
	}
	if isSustainableSwap(taxonomy, log) {
		t.swaps++
	}
}

// percentage returns the rounded share of low-waste choices, or 0 when
// nothing was counted.
func (t tally) percentage() int {
	return percent(t.low, t.total)
}

func percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

// isSustainableSwap reports whether log records a switch from a high-waste
// taxonomy entry to low-waste packaging. The previous type is resolved
// through the taxonomy on every call; free-text previous values never count.
func isSustainableSwap(taxonomy Taxonomy, log models.PackagingLog) bool {
	if !log.MadeSwitch || !log.IsLowWaste || log.PreviousPackagingType == nil {
		return false
	}
	prevLow, known := taxonomy.IsLowWaste(*log.PreviousPackagingType)
	return known && !prevLow
}

// Scoreboard computes lifetime counters over the whole collection.
func (e *Engine) Scoreboard(logs Collection) models.Scoreboard {
	var t tally
	for _, log := range logs {
		t.add(e.taxonomy, log)
	}

	return models.Scoreboard{
		TotalItems:         t.total,
		LowWasteItems:      t.low,
		HighWasteItems:     t.total - t.low,
		LowWastePercentage: t.percentage(),
	}
}

// SustainableSwaps counts the sustainable switches in the whole collection.
func (e *Engine) SustainableSwaps(logs Collection) int {
	var t tally
	for _, log := range logs {
		t.add(e.taxonomy, log)
	}
	return t.swaps
}
