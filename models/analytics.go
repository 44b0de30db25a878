package models

// DailySummary aggregates all packaging logs of a single calendar day.
// Summaries are always derived from logs and never stored.
type DailySummary struct {
	Date               string `json:"date"`
	TotalChoicesLogged int    `json:"totalChoicesLogged"`
	LowWasteChoices    int    `json:"lowWasteChoices"`
	TotalSwapsMade     int    `json:"totalSwapsMade"`
	LowWastePercentage int    `json:"lowWastePercentage"`
}

// Day implements the dated-aggregate contract used by range filtering.
func (s DailySummary) Day() string {
	return s.Date
}

// Scoreboard holds lifetime counters over the whole log collection.
type Scoreboard struct {
	TotalItems         int `json:"totalItems"`
	LowWasteItems      int `json:"lowWasteItems"`
	HighWasteItems     int `json:"highWasteItems"`
	LowWastePercentage int `json:"lowWastePercentage"`
}

// DayGroup is a set of logs sharing one calendar date, used by the
// logged-items list.
type DayGroup struct {
	Date string         `json:"date"`
	Logs []PackagingLog `json:"logs"`
}

// InsightType classifies a generated insight message.
type InsightType string

const (
	InsightTip           InsightType = "tip"
	InsightEncouragement InsightType = "encouragement"
	InsightWarning       InsightType = "warning"
	InsightAchievement   InsightType = "achievement"
)

// Insight is a short human-readable message shown next to the charts.
type Insight struct {
	Type    InsightType `json:"type"`
	Message string      `json:"message"`
}
