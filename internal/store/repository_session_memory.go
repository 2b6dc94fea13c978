// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-tick-sdk/models"
)

// memorySessionRepository keeps the session in process memory only. Used
// when no database path is configured: the client works normally but needs
// a fresh signon and a full sync on every start.
type memorySessionRepository struct {
	mu      sync.RWMutex
	session models.Session
	stored  bool
}

// NewMemorySessionRepository builds an empty in-memory [SessionRepository].
func NewMemorySessionRepository() SessionRepository {
	return &memorySessionRepository{}
}

func (r *memorySessionRepository) Load(_ context.Context) (models.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.stored {
		return models.Session{}, ErrSessionNotFound
	}
	return r.session, nil
}

func (r *memorySessionRepository) Save(_ context.Context, session models.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if session.UpdatedAt.IsZero() {
		session.UpdatedAt = time.Now().UTC()
	}
	r.session = session
	r.stored = true
	return nil
}

func (r *memorySessionRepository) UpdateCheckpoint(_ context.Context, checkpoint int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.stored {
		return ErrSessionNotFound
	}
	r.session.Checkpoint = checkpoint
	r.session.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *memorySessionRepository) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.session = models.Session{}
	r.stored = false
	return nil
}
