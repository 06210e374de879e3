// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"os"
	"time"
)

// ParseFlags parses configuration flags from the process arguments.
//
// Flags:
//
//	-api-url REST base URL (e.g. "http://localhost:8000")
//	-ws-url event-stream URL (e.g. "ws://localhost:8000/ws")
//	-request-timeout request timeout (e.g. "15s")
//	-auth-entry-point navigation target after a failed refresh
//	-reconnect-delay event-stream reconnect delay (e.g. "3s")
//	-ping-interval event-stream keepalive period
//	-handshake-timeout event-stream handshake timeout
//	-d local database DSN
//	-refresh-interval background refresh period
//	-email auto-login email
//	-password auto-login password
//	-log-level zerolog level name
//	-log-file log file path
//	-c/-config json file path with configs
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(os.Args[1:])
}

func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("dating-client", flag.ContinueOnError)

	var (
		apiURL           string
		wsURL            string
		requestTimeout   time.Duration
		authEntryPoint   string
		reconnectDelay   time.Duration
		pingInterval     time.Duration
		handshakeTimeout time.Duration
		databaseDSN      string
		refreshInterval  time.Duration
		email            string
		password         string
		logLevel         string
		logFile          string
		jsonConfigPath   string
	)

	fs.StringVar(&apiURL, "api-url", "", "REST base URL")
	fs.StringVar(&wsURL, "ws-url", "", "Event-stream URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	fs.StringVar(&authEntryPoint, "auth-entry-point", "", "Navigation target after a failed refresh")
	fs.DurationVar(&reconnectDelay, "reconnect-delay", 0, "Event-stream reconnect delay (e.g., 3s)")
	fs.DurationVar(&pingInterval, "ping-interval", 0, "Event-stream ping interval")
	fs.DurationVar(&handshakeTimeout, "handshake-timeout", 0, "Event-stream handshake timeout")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Background refresh interval")
	fs.StringVar(&email, "email", "", "Auto-login email")
	fs.StringVar(&password, "password", "", "Auto-login password")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Email:    email,
			Password: password,
		},
		Adapter: Adapter{
			HTTPAddress:    apiURL,
			StreamAddress:  wsURL,
			RequestTimeout: requestTimeout,
			AuthEntryPoint: authEntryPoint,
		},
		Stream: Stream{
			ReconnectDelay:   reconnectDelay,
			PingInterval:     pingInterval,
			HandshakeTimeout: handshakeTimeout,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Workers: Workers{RefreshInterval: refreshInterval},
		Log: Log{
			Level: logLevel,
			File:  logFile,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
