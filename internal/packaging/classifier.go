package packaging

import (
	"github.com/MKhiriev/go-waste-tracker/models"
)

// SwitchType is the classification of a packaging transition between two
// purchases of the same food item.
type SwitchType string

const (
	SwitchNone           SwitchType = "none"
	SwitchSustainable    SwitchType = "sustainable"
	SwitchUnsustainable  SwitchType = "unsustainable"
	SwitchSameWasteLevel SwitchType = "same_waste_level"
)

// Classification is the result of the switch classifier. The caller persists
// MadeSwitch and PreviousPackagingType onto the log.
type Classification struct {
	MadeSwitch            bool       `json:"made_switch"`
	PreviousPackagingType *string    `json:"previous_packaging_type"`
	SwitchType            SwitchType `json:"switch_type"`
}

// Classify decides whether buying currentType (with the given waste tier)
// after previous is a packaging switch.
//
// Identical packaging strings are never a switch. The waste tier of the
// previous purchase is the snapshot stored on the previous log.
func Classify(currentType string, currentIsLowWaste bool, previous *models.PackagingLog) Classification {
	if previous == nil || previous.PackagingType == currentType {
		return Classification{SwitchType: SwitchNone}
	}

	prevType := previous.PackagingType
	c := Classification{
		MadeSwitch:            true,
		PreviousPackagingType: &prevType,
	}

	switch {
	case !previous.IsLowWaste && currentIsLowWaste:
		c.SwitchType = SwitchSustainable
	case previous.IsLowWaste && !currentIsLowWaste:
		c.SwitchType = SwitchUnsustainable
	default:
		c.SwitchType = SwitchSameWasteLevel
	}

	return c
}

// PreviousLog finds the most recent purchase of the same food item made on a
// calendar date strictly earlier than the date of current. The log with
// current.ID is excluded so an edited log is never compared with itself.
// Returns nil when there is no such log.
func PreviousLog(logs Collection, current models.PackagingLog) *models.PackagingLog {
	date := current.Date()

	var found *models.PackagingLog
	for i := range logs {
		candidate := logs[i]
		if current.ID != "" && candidate.ID == current.ID {
			continue
		}
		if current.UserID != "" && candidate.UserID != current.UserID {
			continue
		}
		if !sameItem(candidate.FoodItemName, current.FoodItemName) {
			continue
		}
		if candidate.Date() >= date {
			continue
		}
		if found == nil || newer(candidate, *found) {
			found = &logs[i]
		}
	}

	if found == nil {
		return nil
	}
	prev := *found
	return &prev
}

// ClassifyLog looks up the previous purchase of current in logs and
// classifies the transition. The previous log is returned alongside for
// feedback rendering.
func ClassifyLog(logs Collection, current models.PackagingLog) (Classification, *models.PackagingLog) {
	prev := PreviousLog(logs, current)
	return Classify(current.PackagingType, current.IsLowWaste, prev), prev
}

// Apply copies the switch metadata of c onto log.
func (c Classification) Apply(log *models.PackagingLog) {
	log.MadeSwitch = c.MadeSwitch
	log.PreviousPackagingType = c.PreviousPackagingType
}
