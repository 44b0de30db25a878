// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package mealwaste turns served meals and their waste entries into daily
// consumption summaries and short insights.
//
// Meals are bucketed by the calendar date of the serving, using the same
// YYYY-MM-DD keys as the packaging analytics, so both charts share the
// range filtering of package packaging.
package mealwaste
