package packaging

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// TimeRange selects the window of daily summaries shown on charts.
type TimeRange string

const (
	RangeWeek       TimeRange = "week"
	RangeMonth      TimeRange = "month"
	RangeThreeMonth TimeRange = "3months"
	RangeYear       TimeRange = "year"
)

var rangeDays = map[TimeRange]int{
	RangeWeek:       7,
	RangeMonth:      30,
	RangeThreeMonth: 90,
	RangeYear:       365,
}

// ParseTimeRange parses a range selector. An empty value selects RangeMonth.
func ParseTimeRange(s string) (TimeRange, error) {
	if s == "" {
		return RangeMonth, nil
	}
	r := TimeRange(s)
	if _, ok := rangeDays[r]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeRange, s)
	}
	return r, nil
}

// Days returns the window length in days, or 0 for an unknown range.
func (r TimeRange) Days() int {
	return rangeDays[r]
}

// Today formats now as a UTC calendar date.
func Today(now time.Time) string {
	return now.UTC().Format(dateLayout)
}

// ValidateDate checks that s is a YYYY-MM-DD calendar date.
func ValidateDate(s string) error {
	if _, err := time.Parse(dateLayout, s); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return nil
}

// CutoffDate returns the calendar date days before today.
// Both values are plain civil dates; the arithmetic is done in UTC so no
// local offset can shift the result.
func CutoffDate(today string, days int) (string, error) {
	t, err := time.Parse(dateLayout, today)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, today)
	}
	return t.AddDate(0, 0, -days).Format(dateLayout), nil
}

// Dated is a per-day aggregate keyed by a YYYY-MM-DD date.
type Dated interface {
	Day() string
}

// FilterByRange returns the aggregates dated on or after the cutoff of r
// relative to today. The input is never modified.
func FilterByRange[T Dated](items []T, r TimeRange, today string) ([]T, error) {
	days, ok := rangeDays[r]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimeRange, string(r))
	}

	cutoff, err := CutoffDate(today, days)
	if err != nil {
		return nil, err
	}

	filtered := make([]T, 0, len(items))
	for _, item := range items {
		if item.Day() >= cutoff {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}
