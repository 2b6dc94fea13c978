// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators enforces the structural rules records must satisfy
// before they are submitted to the task service.
//
// Validation here is deliberately local and cheap: it catches records the
// server would refuse with a 400 (missing titles, out-of-range priorities,
// malformed tag names) so the mistake surfaces as a typed error instead of
// a round trip. Cross-record rules — name uniqueness, project membership —
// stay with the server, which is the only party that can answer them.
package validators

import "github.com/MKhiriev/go-tick-sdk/models"

// RecordValidator validates one record of each writable entity type.
// Implementations return a sentinel error from this package (or a wrapped
// one) describing the first violated rule.
type RecordValidator interface {
	Task(t models.Task) error
	Tag(t models.Tag) error
	Filter(f models.Filter) error
	Habit(h models.Habit) error
}
