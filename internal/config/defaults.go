package config

import (
	"os"
	"path/filepath"
	"time"
)

// Default values applied as the lowest-priority configuration stage.
const (
	// DefaultBaseURL is the production API root.
	DefaultBaseURL = "https://api.ticktick.com"

	// DefaultUserAgent mimics the web client; the v2 API rejects some
	// requests from non-browser agents.
	DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	defaultRequestTimeout = 30 * time.Second
	defaultSyncInterval   = 5 * time.Minute
	defaultLogLevel       = "info"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			BaseURL:        DefaultBaseURL,
			RequestTimeout: defaultRequestTimeout,
			UserAgent:      DefaultUserAgent,
		},
		Storage: Storage{
			DB: DB{
				DSN: defaultDSN(),
			},
		},
		Workers: Workers{
			SyncInterval: defaultSyncInterval,
		},
		Log: Log{
			Level: defaultLogLevel,
		},
	}
}

// defaultDSN places the session database under the user's home directory,
// falling back to the working directory when the home cannot be resolved.
func defaultDSN() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "tick.db"
	}

	return filepath.Join(home, ".tick", "tick.db")
}
