// Package config provides configuration loading, merging, and validation
// facilities for the SDK and its CLI.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources override later ones):
//  1. Explicit overrides (CLI flags)
//  2. Environment variables (TICK_ prefix)
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [GetStructuredConfig].
package config
