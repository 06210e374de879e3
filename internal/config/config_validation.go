// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

func (cfg *ClientConfig) validate() error {
	if err := validateURL(cfg.Adapter.HTTPAddress, "http", "https"); err != nil || cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: base url %q", ErrInvalidAdapterConfigs, cfg.Adapter.HTTPAddress)
	}
	if !strings.HasPrefix(cfg.Adapter.AuthEntryPoint, "/") {
		return fmt.Errorf("%w: auth entry point %q", ErrInvalidAdapterConfigs, cfg.Adapter.AuthEntryPoint)
	}

	if err := validateURL(cfg.Stream.URL, "ws", "wss"); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidStreamConfigs, err)
	}
	if cfg.Stream.ReconnectDelay <= 0 || cfg.Stream.PingInterval <= 0 || cfg.Stream.HandshakeTimeout <= 0 {
		return ErrInvalidStreamConfigs
	}

	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.RefreshInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if (cfg.App.Email == "") != (cfg.App.Password == "") {
		return ErrInvalidAppConfigs
	}

	return nil
}

func validateURL(raw string, schemes ...string) error {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return err
	}
	if u.Host == "" {
		return fmt.Errorf("url %q has no host", raw)
	}
	for _, s := range schemes {
		if u.Scheme == s {
			return nil
		}
	}
	return fmt.Errorf("url %q must use one of %v", raw, schemes)
}
