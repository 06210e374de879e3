// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Fallbacks applied when no source sets a value.
const (
	DefaultHTTPAddress      = "http://localhost:8000"
	DefaultStreamAddress    = "ws://localhost:8000/ws"
	DefaultRequestTimeout   = 15 * time.Second
	DefaultAuthEntryPoint   = "/auth"
	DefaultReconnectDelay   = 3 * time.Second
	DefaultPingInterval     = 30 * time.Second
	DefaultHandshakeTimeout = 10 * time.Second
	DefaultDSN              = "dating-client.db"
	DefaultRefreshInterval  = time.Minute
	DefaultLogLevel         = "info"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			StreamAddress:  DefaultStreamAddress,
			RequestTimeout: DefaultRequestTimeout,
			AuthEntryPoint: DefaultAuthEntryPoint,
		},
		Stream: Stream{
			ReconnectDelay:   DefaultReconnectDelay,
			PingInterval:     DefaultPingInterval,
			HandshakeTimeout: DefaultHandshakeTimeout,
		},
		Storage: Storage{DB: DB{DSN: DefaultDSN}},
		Workers: Workers{RefreshInterval: DefaultRefreshInterval},
		Log:     Log{Level: DefaultLogLevel},
	}
}
