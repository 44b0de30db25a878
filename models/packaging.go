// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PackagingType is a single entry of the packaging taxonomy.
// The set of types is static reference data and is never persisted per user.
type PackagingType struct {
	// ID is the stable identifier stored on packaging logs (e.g. "GLASS").
	ID string `json:"id"`

	// Label is the human-readable description shown to users.
	Label string `json:"label"`

	// IsLowWaste reports whether purchases in this packaging count as
	// low-waste choices.
	IsLowWaste bool `json:"is_low_waste"`
}

// PackagingLog represents one purchase event logged by a user.
type PackagingLog struct {
	// ID is the server-assigned unique identifier of the log.
	ID string `json:"id"`

	// UserID is the owner of the log. Logs are never shared between users.
	UserID string `json:"user_id"`

	// CreatedAt is the purchase timestamp chosen by the user, stored verbatim
	// as ISO-8601 text. Only its leading YYYY-MM-DD part is significant for
	// grouping and ordering.
	CreatedAt string `json:"created_at"`

	// FoodItemName is free text, matched case-insensitively across logs.
	FoodItemName string `json:"food_item_name"`

	// PackagingType is a taxonomy id, or free text for "other" packaging.
	PackagingType string `json:"packaging_type"`

	// IsLowWaste is a snapshot of the taxonomy tier taken when the log was
	// written. It is never recomputed afterwards.
	IsLowWaste bool `json:"is_low_waste"`

	// Quantity is the number of items purchased. Always positive.
	Quantity int `json:"quantity"`

	// Notes is optional free text.
	Notes *string `json:"notes,omitempty"`

	// ImageURL is resolved asynchronously after the log is inserted.
	ImageURL *string `json:"image_url,omitempty"`

	// MadeSwitch is set by the switch classifier.
	MadeSwitch bool `json:"made_switch"`

	// PreviousPackagingType is the packaging of the prior log this entry
	// switched from, or nil when no switch was made.
	PreviousPackagingType *string `json:"previous_packaging_type,omitempty"`
}

// dateLayout is the calendar date format shared by every log type.
const dateLayout = "2006-01-02"

// Date returns the calendar date part (YYYY-MM-DD) of CreatedAt.
// The value is sliced from the stored text and never re-parsed, so it cannot
// drift by a day because of time zone interpretation.
func (l PackagingLog) Date() string {
	return DateKey(l.CreatedAt)
}

// DateKey returns the YYYY-MM-DD prefix of a stored timestamp. Values shorter
// than a date are returned unchanged.
func DateKey(ts string) string {
	if len(ts) < len(dateLayout) {
		return ts
	}
	return ts[:len(dateLayout)]
}

// PackagingLogInput carries the user-editable fields of a packaging log for
// create and edit requests.
type PackagingLogInput struct {
	CreatedAt     string  `json:"created_at"`
	FoodItemName  string  `json:"food_item_name"`
	PackagingType string  `json:"packaging_type"`
	Quantity      int     `json:"quantity"`
	Notes         *string `json:"notes,omitempty"`

	// IsLowWaste is only honoured for free-text packaging types that are not
	// part of the taxonomy. For known types the taxonomy value is used. An
	// edit that leaves it unset and keeps the packaging keeps the stored tier.
	IsLowWaste *bool `json:"is_low_waste,omitempty"`
}
