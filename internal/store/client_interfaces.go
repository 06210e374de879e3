// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// PreferencesRepository is a durable key-value store for client-local
// settings such as theme and language.
type PreferencesRepository interface {
	// Get returns the value stored under key or [ErrPreferenceNotFound].
	Get(ctx context.Context, key string) (string, error)
	// Set inserts or replaces the value stored under key.
	Set(ctx context.Context, key, value string) error
	// All returns every stored preference.
	All(ctx context.Context) (map[string]string, error)
}

// ErrorClassificator decides whether a database error is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
