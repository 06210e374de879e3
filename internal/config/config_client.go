// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds session settings derived from the structured config.
type ClientApp struct {
	// Email and Password enable automatic login when both are set.
	Email    string
	Password string
}

// HasCredentials reports whether automatic login is configured.
func (a ClientApp) HasCredentials() bool {
	return a.Email != "" && a.Password != ""
}

// ClientAdapter holds network settings used by the REST transport layer.
type ClientAdapter struct {
	// HTTPAddress is the REST base URL.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
	// AuthEntryPoint is the navigation target after a failed refresh.
	AuthEntryPoint string
}

// ClientStream holds the event-stream settings.
type ClientStream struct {
	// URL is the WebSocket endpoint.
	URL string
	// ReconnectDelay is the constant pause before reconnecting.
	ReconnectDelay time.Duration
	// PingInterval is the keepalive period.
	PingInterval time.Duration
	// HandshakeTimeout bounds the opening handshake.
	HandshakeTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background job settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the refresh job runs.
	RefreshInterval time.Duration
}

// ClientLog contains logger settings.
type ClientLog struct {
	Level string
	File  string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Stream  ClientStream
	Storage ClientStorage
	Workers ClientWorkers
	Log     ClientLog
}

// GetClientConfig builds and validates the client config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			Email:    cfg.App.Email,
			Password: cfg.App.Password,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			AuthEntryPoint: cfg.Adapter.AuthEntryPoint,
		},
		Stream: ClientStream{
			URL:              cfg.Adapter.StreamAddress,
			ReconnectDelay:   cfg.Stream.ReconnectDelay,
			PingInterval:     cfg.Stream.PingInterval,
			HandshakeTimeout: cfg.Stream.HandshakeTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Workers: ClientWorkers{RefreshInterval: cfg.Workers.RefreshInterval},
		Log: ClientLog{
			Level: cfg.Log.Level,
			File:  cfg.Log.File,
		},
	}
}
