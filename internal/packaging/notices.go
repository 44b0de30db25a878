package packaging

import (
	"fmt"

	"github.com/MKhiriev/go-waste-tracker/models"
)

// Tone tells the presentation layer how to render a notice.
type Tone string

const (
	TonePositive Tone = "positive"
	ToneNegative Tone = "negative"
	ToneNeutral  Tone = "neutral"
	ToneNone     Tone = "none"
)

// SwitchNotice is a short message about a packaging choice.
type SwitchNotice struct {
	Message     string `json:"message"`
	Description string `json:"description,omitempty"`
	Tone        Tone   `json:"tone"`
}

// Describe renders the switch stored on log. previous is the purchase the
// switch was recorded against; its stored waste tier decides the tone the
// same way Classify does. When previous is nil or no longer carries the
// stored packaging, the tier falls back to the taxonomy. Packaging values
// missing from the taxonomy are shown as their raw strings.
func (e *Engine) Describe(log models.PackagingLog, previous *models.PackagingLog) SwitchNotice {
	if !log.MadeSwitch || log.PreviousPackagingType == nil {
		return SwitchNotice{Tone: ToneNone}
	}

	prevType := *log.PreviousPackagingType
	if previous == nil || previous.PackagingType != prevType {
		lowWaste, _ := e.taxonomy.IsLowWaste(prevType)
		previous = &models.PackagingLog{PackagingType: prevType, IsLowWaste: lowWaste}
	}

	current := e.taxonomy.Label(log.PackagingType)
	previousLabel := e.taxonomy.Label(prevType)

	switch Classify(log.PackagingType, log.IsLowWaste, previous).SwitchType {
	case SwitchSustainable:
		return SwitchNotice{
			Message: fmt.Sprintf("Sustainable Switch! From %s to %s.", previousLabel, current),
			Tone:    TonePositive,
		}
	case SwitchUnsustainable:
		return SwitchNotice{
			Message: fmt.Sprintf("Unsustainable Switch: From %s (low waste) to %s.", previousLabel, current),
			Tone:    ToneNegative,
		}
	case SwitchSameWasteLevel:
		if log.IsLowWaste {
			return SwitchNotice{
				Message: fmt.Sprintf("Packaging Changed (still low waste): From %s to %s.", previousLabel, current),
				Tone:    ToneNeutral,
			}
		}
		return SwitchNotice{
			Message: fmt.Sprintf("Packaging Changed: From %s to %s. (Both high waste)", previousLabel, current),
			Tone:    ToneNeutral,
		}
	default:
		return SwitchNotice{Tone: ToneNone}
	}
}

// LogView is a log together with the notice describing its stored switch.
type LogView struct {
	models.PackagingLog
	SwitchNotice SwitchNotice `json:"switch_notice"`
}

// DayView is a DayGroup whose logs carry their switch notices.
type DayView struct {
	Date string    `json:"date"`
	Logs []LogView `json:"logs"`
}

// Annotate pairs every log with its switch notice, keeping the order of
// logs. The previous purchases are looked up in history.
func (e *Engine) Annotate(logs, history Collection) []LogView {
	views := make([]LogView, 0, len(logs))
	for _, log := range logs {
		views = append(views, LogView{
			PackagingLog: log,
			SwitchNotice: e.Describe(log, PreviousLog(history, log)),
		})
	}
	return views
}

// AnnotateDays annotates the logs of every group.
func (e *Engine) AnnotateDays(groups []models.DayGroup, history Collection) []DayView {
	days := make([]DayView, 0, len(groups))
	for _, g := range groups {
		days = append(days, DayView{Date: g.Date, Logs: e.Annotate(g.Logs, history)})
	}
	return days
}

// Feedback builds the message shown right after current was created or
// edited, comparing it with the previous purchase of the same item.
// previous may be nil for an item logged for the first time.
func (e *Engine) Feedback(current models.PackagingLog, previous *models.PackagingLog) SwitchNotice {
	item := current.FoodItemName
	currentLabel := e.taxonomy.Label(current.PackagingType)

	if previous == nil {
		if current.IsLowWaste {
			return SwitchNotice{
				Message:     fmt.Sprintf("Great start with %q!", item),
				Description: fmt.Sprintf("Choosing %s is a fantastic low-waste option.", currentLabel),
				Tone:        TonePositive,
			}
		}
		return SwitchNotice{
			Message:     fmt.Sprintf("You logged %q with %s.", item, currentLabel),
			Description: "For future purchases, see if you can find a lower-waste packaging option!",
			Tone:        ToneNeutral,
		}
	}

	previousLabel := e.taxonomy.Label(previous.PackagingType)

	if previous.PackagingType == current.PackagingType {
		if current.IsLowWaste {
			return SwitchNotice{
				Message:     fmt.Sprintf("Consistent low-waste choice for %q! Great job!", item),
				Description: fmt.Sprintf("You previously used %s and stuck with a good option!", previousLabel),
				Tone:        TonePositive,
			}
		}
		notes := "-"
		if previous.Notes != nil && *previous.Notes != "" {
			notes = *previous.Notes
		}
		return SwitchNotice{
			Message: fmt.Sprintf("You previously logged %q with the same packaging.", item),
			Description: fmt.Sprintf("Consider looking for options with less waste! You noted: %q last time. "+
				"Check local stores or farmer's markets.", notes),
			Tone: ToneNeutral,
		}
	}

	switch {
	case current.IsLowWaste && !previous.IsLowWaste:
		return SwitchNotice{
			Message:     fmt.Sprintf("Fantastic switch for %q!", item),
			Description: fmt.Sprintf("You went from %s to %s. That's a great improvement!", previousLabel, currentLabel),
			Tone:        TonePositive,
		}
	case !current.IsLowWaste && previous.IsLowWaste:
		return SwitchNotice{
			Message: fmt.Sprintf("%q packaging changed.", item),
			Description: fmt.Sprintf("You previously used %s (low waste), but now logged %s. "+
				"Try to stick to low-waste options!", previousLabel, currentLabel),
			Tone: ToneNegative,
		}
	case current.IsLowWaste && previous.IsLowWaste:
		return SwitchNotice{
			Message: fmt.Sprintf("%q packaging changed, but still low waste.", item),
			Description: fmt.Sprintf("From %s to %s. Keep up the good work choosing sustainable options!",
				previousLabel, currentLabel),
			Tone: ToneNeutral,
		}
	default:
		return SwitchNotice{
			Message:     fmt.Sprintf("Packaging for %q changed.", item),
			Description: fmt.Sprintf("From %s to %s. Still aiming for low-waste options!", previousLabel, currentLabel),
			Tone:        ToneNeutral,
		}
	}
}
