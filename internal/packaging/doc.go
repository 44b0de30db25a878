// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package packaging implements the packaging-swap detection and the
// day-bucketed analytics engine of the waste tracker.
//
// Every function in this package is pure: it operates on an explicit
// Collection of packaging logs supplied by the caller and never performs I/O.
// The packaging taxonomy is an immutable Taxonomy value injected into the
// Engine rather than process-wide state.
//
// Core concepts:
//   - Taxonomy: the static list of packaging types and their waste tier.
//   - Classify / ClassifyLog: decide whether a purchase is a switch from the
//     previous purchase of the same food item.
//   - Engine.Summarize / Engine.Scoreboard: fold logs into daily summaries and
//     lifetime counters sharing a single counting routine.
//   - FilterByRange: restrict a summary series to a week, month, 3 months or a year.
//   - Engine.Insights: short tips and encouragement derived from the summaries.
//
// All dates are handled as YYYY-MM-DD strings sliced from the stored
// created_at value. They are never re-parsed through a time zone.
package packaging
