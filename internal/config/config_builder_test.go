package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs fails
// validation: a zero-value StructuredConfig has no base URL or timeouts.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
	assert.Nil(t, cfg)
}

// TestBuild_DefaultsAlone verifies that the built-in defaults on their own
// form a valid configuration.
func TestBuild_DefaultsAlone(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, cfg.Adapter.BaseURL)
	assert.Equal(t, DefaultUserAgent, cfg.Adapter.UserAgent)
	assert.NotZero(t, cfg.Adapter.RequestTimeout)
	assert.NotZero(t, cfg.Workers.SyncInterval)
	assert.NotEmpty(t, cfg.Storage.DB.DSN)
	assert.Equal(t, "info", cfg.Log.Level)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0"}},
		&StructuredConfig{App: App{Username: "user@example.com"}},
	)
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "user@example.com", cfg.App.Username)
}

// TestBuild_EarlierConfigWins verifies the priority rule: mergo only fills
// zero fields, so a config appended earlier overrides one appended later.
func TestBuild_EarlierConfigWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{BaseURL: "https://override.example.com"}},
		&StructuredConfig{Adapter: Adapter{BaseURL: "https://env.example.com"}},
	)
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "https://override.example.com", cfg.Adapter.BaseURL)
}

// ── withOverrides ─────────────────────────────────────────────────────────────

// TestWithOverrides_ReturnsBuilder verifies the fluent interface.
func TestWithOverrides_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withOverrides(nil))
}

// TestWithOverrides_NilIsNoOp verifies that nil overrides append nothing.
func TestWithOverrides_NilIsNoOp(t *testing.T) {
	b := newConfigBuilder()
	b.withOverrides(nil)
	assert.Empty(t, b.configs)
}

// TestWithOverrides_AppendsConfig verifies that overrides become the first,
// highest-priority stage.
func TestWithOverrides_AppendsConfig(t *testing.T) {
	b := newConfigBuilder()
	b.withOverrides(&StructuredConfig{App: App{Username: "flag-user"}})
	b.withEnv()

	require.GreaterOrEqual(t, len(b.configs), 2)
	assert.Equal(t, "flag-user", b.configs[0].App.Username)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_AppendsOneConfig verifies that withEnv appends exactly one entry.
func TestWithEnv_AppendsOneConfig(t *testing.T) {
	b := newConfigBuilder()
	b.withEnv()
	assert.Len(t, b.configs, 1)
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("TICK_APP_VERSION", "env-version")
	t.Setenv("TICK_APP_USERNAME", "env-user")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "env-user", b.configs[0].App.Username)
}

// TestWithEnv_NoErrorOnEmptyEnv verifies that withEnv does not set b.err
// when no relevant env vars are present.
func TestWithEnv_NoErrorOnEmptyEnv(t *testing.T) {
	b := newConfigBuilder()
	b.withEnv()
	assert.NoError(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_ReturnsBuilder verifies the fluent interface.
func TestWithJSON_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withJSON())
}

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no config has a JSONFilePath.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_AppendsConfig_WhenValidFile verifies that a valid JSON file is
// parsed and appended.
func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "json-version"
	payload.App.Username = "json-user"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[1].App.Version)
	assert.Equal(t, "json-user", b.configs[1].App.Username)
}

// TestWithJSON_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_SetsError_WhenMalformedJSON verifies that invalid JSON content
// sets b.err.
func TestWithJSON_SetsError_WhenMalformedJSON(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "bad-*.json")
	require.NoError(t, err)
	_, err = f.WriteString("{not valid json")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: f.Name()})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesFirstPath verifies that when multiple configs carry a
// JSONFilePath, the first non-empty one wins, matching the overall priority
// rule that earlier stages override later ones.
func TestWithJSON_UsesFirstPath(t *testing.T) {
	first := StructuredJSONConfig{}
	first.App.Version = "first-wins"
	firstPath := writeTempJSONConfig(t, first)

	second := StructuredJSONConfig{}
	second.App.Version = "second-loses"
	secondPath := writeTempJSONConfig(t, second)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: firstPath},
		&StructuredConfig{JSONFilePath: secondPath},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "first-wins", b.configs[2].App.Version)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

// TestGetStructuredConfig_PriorityOrder runs the full pipeline and verifies
// that flags beat environment, environment beats JSON, and JSON beats
// defaults.
func TestGetStructuredConfig_PriorityOrder(t *testing.T) {
	// Arrange
	payload := StructuredJSONConfig{}
	payload.App.Version = "json-version"
	payload.App.Username = "json-user"
	payload.Adapter.BaseURL = "https://json.example.com"
	payload.Workers.SyncInterval = Duration(time.Minute)
	path := writeTempJSONConfig(t, payload)

	t.Setenv("TICK_CONFIG", path)
	t.Setenv("TICK_APP_USERNAME", "env-user")

	overrides := &StructuredConfig{App: App{Version: "flag-version"}}

	// Act
	cfg, err := GetStructuredConfig(overrides)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "flag-version", cfg.App.Version, "flags beat JSON")
	assert.Equal(t, "env-user", cfg.App.Username, "env beats JSON")
	assert.Equal(t, "https://json.example.com", cfg.Adapter.BaseURL, "JSON beats defaults")
	assert.Equal(t, time.Minute, cfg.Workers.SyncInterval, "JSON beats defaults")
	assert.Equal(t, DefaultUserAgent, cfg.Adapter.UserAgent, "defaults fill the rest")
}

// TestGetStructuredConfig_InvalidLogLevel verifies that validation rejects
// unknown log level names.
func TestGetStructuredConfig_InvalidLogLevel(t *testing.T) {
	cfg, err := GetStructuredConfig(&StructuredConfig{Log: Log{Level: "verbose"}})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidLogConfigs)
	assert.Nil(t, cfg)
}
