// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for the JSON file source.
// Durations accept either Go duration strings ("3s") or nanoseconds.
type StructuredJSONConfig struct {
	App struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	} `json:"app,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"api_base_url"`
		StreamAddress  string   `json:"ws_url"`
		RequestTimeout Duration `json:"request_timeout"`
		AuthEntryPoint string   `json:"auth_entry_point"`
	} `json:"adapter,omitempty"`

	Stream struct {
		ReconnectDelay   Duration `json:"reconnect_delay"`
		PingInterval     Duration `json:"ping_interval"`
		HandshakeTimeout Duration `json:"handshake_timeout"`
	} `json:"stream,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Workers struct {
		RefreshInterval Duration `json:"refresh_interval"`
	} `json:"workers,omitempty"`

	Log struct {
		Level string `json:"level"`
		File  string `json:"file"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Email:    jsonCfg.App.Email,
			Password: jsonCfg.App.Password,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			StreamAddress:  jsonCfg.Adapter.StreamAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			AuthEntryPoint: jsonCfg.Adapter.AuthEntryPoint,
		},
		Stream: Stream{
			ReconnectDelay:   time.Duration(jsonCfg.Stream.ReconnectDelay),
			PingInterval:     time.Duration(jsonCfg.Stream.PingInterval),
			HandshakeTimeout: time.Duration(jsonCfg.Stream.HandshakeTimeout),
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Workers: Workers{
			RefreshInterval: time.Duration(jsonCfg.Workers.RefreshInterval),
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
			File:  jsonCfg.Log.File,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
