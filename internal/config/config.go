// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the SDK and
// its CLI. It aggregates all sub-configurations and is populated by merging
// values from explicit overrides, environment variables, an optional JSON
// file, and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//
// All environment lookups are additionally prefixed with "TICK_", so the
// username for example is read from TICK_APP_USERNAME.
type StructuredConfig struct {
	// App holds account credentials and client identity settings.
	App App `envPrefix:"APP_"`

	// Adapter holds settings for the outbound HTTP transport to the task
	// service.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds configuration for the local persistence backends,
	// currently the SQLite session database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background jobs such as the periodic
	// sync loop.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds logging output settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged behind the values
	// already loaded from overrides and environment variables.
	// Populated via the TICK_CONFIG environment variable or the --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds account credentials and the identity this client presents to the
// task service.
type App struct {
	// Username is the account email used for password sign-on.
	// Env: TICK_APP_USERNAME
	Username string `env:"USERNAME"`

	// Password is the account password used for password sign-on.
	// Must be kept confidential.
	// Env: TICK_APP_PASSWORD
	Password string `env:"PASSWORD"`

	// APIToken is an Open API token. When set, the client authenticates with
	// the token instead of a password session; server-enforced write
	// restrictions for token clients then apply.
	// Env: TICK_APP_API_TOKEN
	APIToken string `env:"API_TOKEN"`

	// DeviceID is the stable device identifier embedded in the x-device
	// header. Generated once and persisted with the session when empty.
	// Env: TICK_APP_DEVICE_ID
	DeviceID string `env:"DEVICE_ID"`

	// Version is the semantic version string of the running client
	// (e.g. "1.2.3"). Exposed via the CLI version command.
	// Env: TICK_APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds settings for the outbound HTTP transport layer.
type Adapter struct {
	// BaseURL is the root URL of the task service API
	// (e.g. "https://api.ticktick.com").
	// Env: TICK_ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request before the client cancels it (e.g. "30s", "1m").
	// Env: TICK_ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// UserAgent is the User-Agent header sent on every request. The web API
	// expects a browser-like agent string.
	// Env: TICK_ADAPTER_USER_AGENT
	UserAgent string `env:"USER_AGENT"`

	// Debug enables wire-level request/response logging in the HTTP client.
	// Env: TICK_ADAPTER_DEBUG
	Debug bool `env:"DEBUG"`
}

// Storage groups the configuration for local storage backends.
type Storage struct {
	// DB holds the local session database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite session database.
type DB struct {
	// DSN is the SQLite data source name, normally a file path
	// (e.g. "~/.tick/session.db" or "file:session.db?cache=shared").
	// Env: TICK_STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// SyncInterval defines how often the background sync job runs
	// (e.g. "5m", "30s").
	// Env: TICK_WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// Log holds logging output settings.
type Log struct {
	// Level is the minimum zerolog level emitted ("debug", "info", "warn",
	// "error").
	// Env: TICK_LOG_LEVEL
	Level string `env:"LEVEL"`

	// File is an optional path for rotated log output. When empty, logs go
	// to stderr.
	// Env: TICK_LOG_FILE
	File string `env:"FILE"`
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources in the following priority order (first source wins for
// non-zero fields):
//  1. Explicit overrides (normally CLI flags)
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// overrides may be nil when the caller has no flag-derived values.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(overrides *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withOverrides(overrides).
		withEnv().
		withJSON().
		withDefaults().
		build()
}
