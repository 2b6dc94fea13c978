// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-tick-sdk/internal/adapter"
	"github.com/MKhiriev/go-tick-sdk/internal/config"
	"github.com/MKhiriev/go-tick-sdk/internal/logger"
	"github.com/MKhiriev/go-tick-sdk/internal/service"
	"github.com/MKhiriev/go-tick-sdk/internal/store"
	"github.com/MKhiriev/go-tick-sdk/internal/workers"
	"github.com/MKhiriev/go-tick-sdk/models"
	"github.com/rs/zerolog"
)

// ErrNoCredentials is returned by EnsureSession when there is neither a
// persisted session nor enough configuration to sign on.
var ErrNoCredentials = errors.New("no persisted session and no credentials configured")

// App is the composition root: one constructed App is one configured client
// with its transport, session store, service façades, and background
// workers wired together.
type App struct {
	Config   *config.StructuredConfig
	Logger   *logger.Logger
	Adapter  adapter.ServerAdapter
	Sessions store.SessionRepository
	Services *service.Services
	Workers  *workers.Workers

	db *store.DB
}

// NewApp wires a client from the given configuration. With an empty
// session-database DSN the session lives in memory only and each run signs
// on again.
func NewApp(ctx context.Context, cfg *config.StructuredConfig) (*App, error) {
	log := newLogger(cfg.Log)

	var (
		sessions store.SessionRepository
		db       *store.DB
	)
	if cfg.Storage.DB.DSN == "" {
		sessions = store.NewMemorySessionRepository()
	} else {
		var err error
		db, err = store.NewConnectSQLite(ctx, cfg.Storage.DB, log)
		if err != nil {
			return nil, fmt.Errorf("open session database: %w", err)
		}
		if err = db.Migrate(); err != nil {
			return nil, fmt.Errorf("migrate session database: %w", err)
		}
		sessions = store.NewSessionRepository(db, log)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		return nil, fmt.Errorf("build server adapter: %w", err)
	}

	services := service.NewServices(serverAdapter, sessions, cfg, log)

	return &App{
		Config:   cfg,
		Logger:   log,
		Adapter:  serverAdapter,
		Sessions: sessions,
		Services: services,
		Workers:  workers.NewWorkers(services.SyncJob),
		db:       db,
	}, nil
}

// EnsureSession makes the app ready for authenticated calls. API-token
// sessions are ready as constructed; otherwise the persisted session is
// restored, and when there is none the configured username and password
// sign on fresh.
func (a *App) EnsureSession(ctx context.Context) (models.Session, error) {
	if a.Config.App.APIToken != "" {
		return models.Session{Token: a.Config.App.APIToken}, nil
	}

	session, err := a.Services.Auth.RestoreSession(ctx)
	if err == nil {
		a.Logger.Debug().Str("username", session.Username).Msg("session restored")
		return session, nil
	}
	if !errors.Is(err, store.ErrSessionNotFound) {
		return models.Session{}, fmt.Errorf("restore session: %w", err)
	}

	if a.Config.App.Username == "" || a.Config.App.Password == "" {
		return models.Session{}, ErrNoCredentials
	}

	session, err = a.Services.Auth.Signon(ctx, a.Config.App.Username, a.Config.App.Password)
	if err != nil {
		return models.Session{}, fmt.Errorf("signon: %w", err)
	}
	return session, nil
}

// StartWorkers launches the background jobs, currently the periodic delta
// sync.
func (a *App) StartWorkers() {
	a.Workers.Run()
}

// Close stops background jobs and releases the session database.
func (a *App) Close() error {
	a.Services.SyncJob.Stop()
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

func newLogger(cfg config.Log) *logger.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	if cfg.File != "" {
		return logger.NewFileLogger("client", cfg.File, level)
	}
	return logger.NewLogger("client", level)
}
