// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envNamespace is prepended to every environment variable lookup so the SDK
// does not collide with unrelated variables like USERNAME or CONFIG.
const envNamespace = "TICK_"

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types, all under the
// [envNamespace] prefix.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg any) error {
	err := env.ParseWithOptions(cfg, env.Options{Prefix: envNamespace})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
