// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads the process environment into a fresh [StructuredConfig]
// following the `env` and `envPrefix` tags.
//
// Variables that are exported but blank count as unset, so `API_BASE_URL=`
// in a shell does not hide the flag, JSON or default value of that field.
func parseEnv() (*StructuredConfig, error) {
	environ := env.ToMap(os.Environ())
	for key, value := range environ {
		if strings.TrimSpace(value) == "" {
			delete(environ, key)
		}
	}

	cfg, err := env.ParseAsWithOptions[StructuredConfig](env.Options{Environment: environ})
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	return &cfg, nil
}
