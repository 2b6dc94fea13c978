// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-tick-sdk/internal/adapter"
	"github.com/MKhiriev/go-tick-sdk/internal/logger"
	"github.com/MKhiriev/go-tick-sdk/internal/store"
	"github.com/MKhiriev/go-tick-sdk/internal/utils"
	"github.com/MKhiriev/go-tick-sdk/models"
)

type authService struct {
	adapter     adapter.ServerAdapter
	sessions    store.SessionRepository
	checkpoints CheckpointStore
	ids         *utils.UUIDGenerator
	logger      *logger.Logger
}

// NewAuthService builds the sign-on and session façade.
func NewAuthService(serverAdapter adapter.ServerAdapter, sessions store.SessionRepository, checkpoints CheckpointStore, log *logger.Logger) AuthService {
	return &authService{
		adapter:     serverAdapter,
		sessions:    sessions,
		checkpoints: checkpoints,
		ids:         utils.NewUUIDGenerator(),
		logger:      log,
	}
}

// Signon implements [AuthService]. A fresh session always starts at
// checkpoint 0: the first sync after signing on must be full.
func (s *authService) Signon(ctx context.Context, username, password string) (models.Session, error) {
	resp, err := s.adapter.Signon(ctx, models.SignonRequest{Username: username, Password: password})
	if err != nil {
		return models.Session{}, fmt.Errorf("signon: %w", err)
	}

	session := models.Session{
		Username:   username,
		Token:      resp.Token,
		DeviceID:   s.ids.Generate(),
		InboxID:    resp.InboxID,
		Checkpoint: 0,
		UpdatedAt:  time.Now().UTC(),
	}

	if session.InboxID == "" {
		// Some signon responses omit the inbox id; the status endpoint
		// always carries it.
		if status, statusErr := s.adapter.GetUserStatus(ctx); statusErr == nil {
			session.InboxID = status.InboxID
		}
	}

	if err = s.sessions.Save(ctx, session); err != nil {
		return models.Session{}, fmt.Errorf("persist session: %w", err)
	}
	s.checkpoints.Reset()

	s.logger.Info().Str("username", username).Msg("signed on, session persisted")
	return session, nil
}

// RestoreSession implements [AuthService].
func (s *authService) RestoreSession(ctx context.Context) (models.Session, error) {
	session, err := s.sessions.Load(ctx)
	if err != nil {
		return models.Session{}, err
	}

	s.adapter.SetToken(session.Token)
	s.checkpoints.SetCheckpoint(session.Checkpoint)

	s.logger.Debug().
		Str("username", session.Username).
		Int64("checkpoint", session.Checkpoint).
		Msg("session restored")

	return session, nil
}

// Logout implements [AuthService].
func (s *authService) Logout(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	s.adapter.SetToken("")
	s.checkpoints.Reset()

	s.logger.Info().Msg("logged out")
	return nil
}
