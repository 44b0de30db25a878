// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package inventory computes the expiry state of the food items a user
// keeps at home.
//
// Expiry dates are plain YYYY-MM-DD calendar dates. Day differences are
// computed between two civil dates in UTC, so the local time zone of the
// server never shifts an item into a different status.
package inventory
