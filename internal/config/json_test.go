// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"app": { "email": "ann@example.com", "password": "pw" },
		"adapter": {
			"api_base_url": "https://api.example.com",
			"ws_url": "wss://api.example.com/ws",
			"request_timeout": "30s",
			"auth_entry_point": "/login"
		},
		"stream": {
			"reconnect_delay": "2s",
			"ping_interval": "15s",
			"handshake_timeout": 5000000000
		},
		"storage": { "db": { "dsn": "/var/lib/dating/prefs.db" } },
		"workers": { "refresh_interval": "1h" },
		"log": { "level": "error", "file": "/var/log/dating.log" }
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "ann@example.com", cfg.App.Email)
	assert.Equal(t, "pw", cfg.App.Password)

	assert.Equal(t, "https://api.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "wss://api.example.com/ws", cfg.Adapter.StreamAddress)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/login", cfg.Adapter.AuthEntryPoint)

	assert.Equal(t, 2*time.Second, cfg.Stream.ReconnectDelay)
	assert.Equal(t, 15*time.Second, cfg.Stream.PingInterval)
	assert.Equal(t, 5*time.Second, cfg.Stream.HandshakeTimeout)

	assert.Equal(t, "/var/lib/dating/prefs.db", cfg.Storage.DB.DSN)
	assert.Equal(t, time.Hour, cfg.Workers.RefreshInterval)

	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, "/var/log/dating.log", cfg.Log.File)

	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"adapter": `), 0o600))

	cfg, err := parseJSON(p)

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"stream": {"reconnect_delay": "soon"}}`), 0o600))

	cfg, err := parseJSON(p)

	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestParseJSON_EmptyObject(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{}`), 0o600))

	cfg, err := parseJSON(p)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseJSON_PartialObject(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"adapter": {"api_base_url": "http://10.0.0.2:8000"}}`), 0o600))

	cfg, err := parseJSON(p)

	require.NoError(t, err)
	assert.Equal(t, "http://10.0.0.2:8000", cfg.Adapter.HTTPAddress)
	assert.Empty(t, cfg.Adapter.StreamAddress)
	assert.Zero(t, cfg.Stream.ReconnectDelay)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(3 * time.Second).MarshalJSON()

	require.NoError(t, err)
	assert.JSONEq(t, `"3s"`, string(b))
}
