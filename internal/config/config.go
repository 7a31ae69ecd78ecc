// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Default values applied when no configuration source provides one.
const (
	// DefaultHTTPAddress is the address the HTTP server binds to when
	// no address is configured.
	DefaultHTTPAddress = ":8080"

	// DefaultAuthToken is the shared secret expected by the auth gate
	// in the "Authorization: Bearer <token>" header of non-GET requests.
	// Override it in any real deployment.
	DefaultAuthToken = "my-secret-token"

	// DefaultRequestTimeout bounds a single inbound request.
	DefaultRequestTimeout = 30 * time.Second
)

// StructuredConfig is the top-level configuration container for the
// go-user-directory application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the shared auth token
	// and the credential hashing key.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged after the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control
// authentication and credential hashing.
type App struct {
	// AuthToken is the static shared secret required in the
	// "Authorization: Bearer <token>" header of every non-GET request.
	// Must be kept confidential.
	// Env: APP_AUTH_TOKEN
	AuthToken string `env:"AUTH_TOKEN"`

	// HashKey is the secret key used when hashing user passwords
	// with HMAC-SHA256. Must be kept confidential and must not change
	// for the lifetime of the directory, otherwise stored digests stop
	// matching freshly computed ones.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
