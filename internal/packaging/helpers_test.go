// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package packaging

import "github.com/MKhiriev/go-waste-tracker/models"

func strPtr(s string) *string { return &s }

func logAt(id, item, createdAt, packagingType string, lowWaste bool) models.PackagingLog {
	return models.PackagingLog{
		ID:            id,
		UserID:        "user-1",
		CreatedAt:     createdAt,
		FoodItemName:  item,
		PackagingType: packagingType,
		IsLowWaste:    lowWaste,
		Quantity:      1,
	}
}

func switched(l models.PackagingLog, previous string) models.PackagingLog {
	l.MadeSwitch = true
	l.PreviousPackagingType = strPtr(previous)
	return l
}
