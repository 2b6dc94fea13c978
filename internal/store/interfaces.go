// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists the client-side session between runs: the signon
// token, device id, inbox project id, and the last sync checkpoint. Losing
// the session is never fatal, it only costs a fresh signon and a full sync.
package store

import (
	"context"

	"github.com/MKhiriev/go-tick-sdk/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SessionRepository stores the single local session. The client holds at
// most one; Save replaces whatever was there before.
type SessionRepository interface {
	// Load returns the stored session, or [ErrSessionNotFound] when none has
	// been saved yet.
	Load(ctx context.Context) (models.Session, error)

	// Save persists the session, replacing any previous one.
	Save(ctx context.Context, session models.Session) error

	// UpdateCheckpoint overwrites only the stored checkpoint, leaving the
	// rest of the session untouched. Returns [ErrSessionNotFound] when no
	// session exists to update.
	UpdateCheckpoint(ctx context.Context, checkpoint int64) error

	// Clear removes the stored session. Clearing an empty store is a no-op.
	Clear(ctx context.Context) error
}
