// Package config loads the application configuration from environment
// variables, command-line flags, and an optional JSON file, merging the
// sources in priority order and validating the result.
package config
