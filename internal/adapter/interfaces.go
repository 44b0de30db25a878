// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides clients for the third-party APIs the waste tracker
// depends on.
//
// [GenerativeAdapter] asks a generative-text model for packaging alternatives
// and [ImageLookup] resolves an ingredient photo for a food item. Both are
// built on resty and translate provider HTTP statuses into the sentinel
// errors from errors.go via mapHTTPError, so callers can use [errors.Is]
// (e.g. [ErrRateLimited] for 429, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-waste-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// GenerativeAdapter suggests lower-waste packaging for items the user bought
// in high-waste packaging.
type GenerativeAdapter interface {
	// SuggestAlternatives sends items to the model and returns the parsed
	// alternatives. Returns [ErrNotConfigured] when no API key is set and
	// [ErrInvalidResponse] (wrapped) when the model output is not the
	// expected JSON document.
	SuggestAlternatives(ctx context.Context, items []models.HighWasteItem) ([]models.PackagingAlternative, error)
}

// ImageLookup finds a representative image for a food item.
type ImageLookup interface {
	// FindImage returns the image URL for foodName, or an empty string when
	// the provider knows no matching ingredient.
	FindImage(ctx context.Context, foodName string) (string, error)
}
