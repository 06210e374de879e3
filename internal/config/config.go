// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the dating
// client. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, an optional JSON
// file and finally the built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds session settings such as the auto-login credentials.
	App App `envPrefix:"APP_"`

	// Adapter holds the REST endpoint and request settings.
	Adapter Adapter

	// Stream holds the event-stream endpoint settings.
	Stream Stream `envPrefix:"STREAM_"`

	// Storage holds configuration for the local preferences database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds logger output settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds session-level settings.
type App struct {
	// Email is the account used for automatic login at startup and after
	// the backend forces re-authentication. Optional.
	// Env: APP_EMAIL
	Email string `env:"EMAIL"`

	// Password pairs with Email.
	// Env: APP_PASSWORD
	Password string `env:"PASSWORD"`
}

// Adapter holds the REST transport settings. The endpoint variable names are
// not prefixed so they match the names the backend deployment documents.
type Adapter struct {
	// HTTPAddress is the REST base URL, e.g. "http://localhost:8000".
	// Env: API_BASE_URL
	HTTPAddress string `env:"API_BASE_URL"`

	// StreamAddress is the event-stream URL, e.g. "ws://localhost:8000/ws".
	// Env: WS_URL
	StreamAddress string `env:"WS_URL"`

	// RequestTimeout bounds a single outbound REST request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"ADAPTER_REQUEST_TIMEOUT"`

	// AuthEntryPoint is where the client navigates when the credential can
	// no longer be refreshed.
	// Env: ADAPTER_AUTH_ENTRY_POINT
	AuthEntryPoint string `env:"ADAPTER_AUTH_ENTRY_POINT"`
}

// Stream holds the event-stream connection settings.
type Stream struct {
	// ReconnectDelay is the constant pause between a close and the next
	// connection attempt.
	// Env: STREAM_RECONNECT_DELAY
	ReconnectDelay time.Duration `env:"RECONNECT_DELAY"`

	// PingInterval is how often keepalive pings are written.
	// Env: STREAM_PING_INTERVAL
	PingInterval time.Duration `env:"PING_INTERVAL"`

	// HandshakeTimeout bounds the WebSocket opening handshake.
	// Env: STREAM_HANDSHAKE_TIMEOUT
	HandshakeTimeout time.Duration `env:"HANDSHAKE_TIMEOUT"`
}

// Storage groups the configuration for the local storage backend.
type Storage struct {
	// DB holds the SQLite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path (e.g. "dating-client.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// RefreshInterval is how often matches and linked-account status are
	// reloaded while a session is active.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name.
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// File is the log file path. Empty means a "logs" file next to the
	// executable.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources. Earlier sources take precedence; later ones only fill fields that
// are still zero:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
