// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected *StructuredConfig
	}{
		{
			name:     "no flags",
			args:     []string{},
			expected: &StructuredConfig{},
		},
		{
			name: "endpoints",
			args: []string{"-api-url", "https://api.example.com", "-ws-url", "wss://api.example.com/ws"},
			expected: &StructuredConfig{
				Adapter: Adapter{
					HTTPAddress:   "https://api.example.com",
					StreamAddress: "wss://api.example.com/ws",
				},
			},
		},
		{
			name: "durations",
			args: []string{
				"-request-timeout", "20s",
				"-reconnect-delay", "1s",
				"-ping-interval", "10s",
				"-handshake-timeout", "4s",
				"-refresh-interval", "5m",
			},
			expected: &StructuredConfig{
				Adapter: Adapter{RequestTimeout: 20 * time.Second},
				Stream: Stream{
					ReconnectDelay:   time.Second,
					PingInterval:     10 * time.Second,
					HandshakeTimeout: 4 * time.Second,
				},
				Workers: Workers{RefreshInterval: 5 * time.Minute},
			},
		},
		{
			name: "session and storage",
			args: []string{"-email", "ann@example.com", "-password", "pw", "-d", "prefs.db", "-auth-entry-point", "/signin"},
			expected: &StructuredConfig{
				App:     App{Email: "ann@example.com", Password: "pw"},
				Adapter: Adapter{AuthEntryPoint: "/signin"},
				Storage: Storage{DB: DB{DSN: "prefs.db"}},
			},
		},
		{
			name: "log and short config alias",
			args: []string{"-log-level", "debug", "-log-file", "out.log", "-c", "cfg.json"},
			expected: &StructuredConfig{
				Log:          Log{Level: "debug", File: "out.log"},
				JSONFilePath: "cfg.json",
			},
		},
		{
			name:     "long config alias",
			args:     []string{"-config", "other.json"},
			expected: &StructuredConfig{JSONFilePath: "other.json"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg)
		})
	}
}

func TestParseFlags_InvalidDuration(t *testing.T) {
	cfg, err := parseFlags([]string{"-reconnect-delay", "later"})

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error parsing flags")
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	cfg, err := parseFlags([]string{"-a", "localhost:8080"})

	require.Error(t, err)
	assert.Nil(t, cfg)
}
