// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-tick-sdk/internal/config"
	"github.com/MKhiriev/go-tick-sdk/internal/fakeapi"
	"github.com/MKhiriev/go-tick-sdk/internal/logger"
	"github.com/MKhiriev/go-tick-sdk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, mutate func(*config.StructuredConfig)) *App {
	t.Helper()

	fake := fakeapi.NewServer(fakeapi.Config{
		Username: "ann@example.com",
		Password: "hunter2",
	}, logger.Nop())
	ts := httptest.NewServer(fake.Router())
	t.Cleanup(ts.Close)

	cfg := &config.StructuredConfig{
		App:     config.App{Username: "ann@example.com", Password: "hunter2"},
		Adapter: config.Adapter{BaseURL: ts.URL, RequestTimeout: 5 * time.Second},
		Workers: config.Workers{SyncInterval: time.Minute},
		Log:     config.Log{Level: "error"},
	}
	if mutate != nil {
		mutate(cfg)
	}

	app, err := NewApp(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })
	return app
}

func TestNewApp_WiresAllComponents(t *testing.T) {
	app := newTestApp(t, nil)

	assert.NotNil(t, app.Adapter)
	assert.NotNil(t, app.Sessions)
	assert.NotNil(t, app.Services)
	assert.NotNil(t, app.Workers)
}

func TestEnsureSession_SignsOnWithConfiguredCredentials(t *testing.T) {
	app := newTestApp(t, nil)

	session, err := app.EnsureSession(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", session.Username)
	assert.NotEmpty(t, session.Token)

	// A second call restores the persisted session instead of signing on.
	restored, err := app.EnsureSession(context.Background())
	require.NoError(t, err)
	assert.Equal(t, session.Token, restored.Token)
}

func TestEnsureSession_NoCredentials(t *testing.T) {
	app := newTestApp(t, func(cfg *config.StructuredConfig) {
		cfg.App.Username = ""
		cfg.App.Password = ""
	})

	_, err := app.EnsureSession(context.Background())
	assert.ErrorIs(t, err, ErrNoCredentials)
}

func TestEnsureSession_APITokenNeedsNoSignon(t *testing.T) {
	app := newTestApp(t, func(cfg *config.StructuredConfig) {
		cfg.App = config.App{APIToken: "open-api-token"}
	})

	session, err := app.EnsureSession(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "open-api-token", session.Token)
	assert.Equal(t, models.AuthModeAPIToken, app.Adapter.AuthMode())
}

func TestNewApp_SQLiteSessionStore(t *testing.T) {
	app := newTestApp(t, func(cfg *config.StructuredConfig) {
		cfg.Storage.DB.DSN = ":memory:"
	})

	session, err := app.EnsureSession(context.Background())
	require.NoError(t, err)

	loaded, err := app.Sessions.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, session.Token, loaded.Token)
}
