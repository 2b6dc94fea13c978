// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-tick-sdk/internal/logger"
	"github.com/MKhiriev/go-tick-sdk/models"
)

// sessionRepository is the SQLite-backed implementation of
// [SessionRepository]. The session lives in a single-row table so that Save
// is a plain upsert and Load never needs ordering.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured tracing of database interactions.
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionRepository constructs a [SessionRepository] backed by the
// provided database connection and logger.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// Load retrieves the stored session.
//
// Error handling:
//   - no row → [ErrSessionNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *sessionRepository) Load(ctx context.Context) (models.Session, error) {
	log := logger.FromContext(ctx)

	var session models.Session
	row := r.db.QueryRowContext(ctx, loadSession)

	err := row.Scan(
		&session.Username,
		&session.Token,
		&session.DeviceID,
		&session.InboxID,
		&session.Checkpoint,
		&session.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.Load").Msg("error: scanning error")
		return models.Session{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return session, nil
}

// Save upserts the session into the single session row.
func (r *sessionRepository) Save(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	if session.UpdatedAt.IsZero() {
		session.UpdatedAt = time.Now().UTC()
	}

	res, err := r.db.ExecContext(ctx, saveSession,
		session.Username,
		session.Token,
		session.DeviceID,
		session.InboxID,
		session.Checkpoint,
		session.UpdatedAt,
	)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.Save").Msg("error: executing upsert")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrSessionNotSaved
	}

	return nil
}

// UpdateCheckpoint rewrites only the checkpoint column.
//
// Error handling:
//   - zero rows affected (no session saved yet) → [ErrSessionNotFound].
func (r *sessionRepository) UpdateCheckpoint(ctx context.Context, checkpoint int64) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, updateSessionCheckpoint, checkpoint, time.Now().UTC())
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.UpdateCheckpoint").Msg("error: executing update")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// Clear deletes the session row. Deleting nothing is success.
func (r *sessionRepository) Clear(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, clearSession); err != nil {
		log.Err(err).Str("func", "*sessionRepository.Clear").Msg("error: executing delete")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}
