// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-dating-client/internal/logger"
)

const (
	maxWriteAttempts = 3
	writeRetryDelay  = 50 * time.Millisecond
)

type preferencesRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewPreferencesRepository returns a SQLite-backed [PreferencesRepository].
func NewPreferencesRepository(db *DB, logger *logger.Logger) PreferencesRepository {
	return &preferencesRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (p *preferencesRepository) Get(ctx context.Context, key string) (string, error) {
	log := p.logger

	query, args, err := buildGetPreferenceQuery(key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = p.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrPreferenceNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "preferencesRepository.Get").
			Str("key", key).
			Msg("failed to query preference")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

// Set upserts the value. Writes that hit a locked database file are retried.
func (p *preferencesRepository) Set(ctx context.Context, key, value string) error {
	log := p.logger

	query, args, err := buildUpsertPreferenceQuery(key, value, p.now())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	for attempt := 1; ; attempt++ {
		_, err = p.DB.ExecContext(ctx, query, args...)
		if err == nil {
			return nil
		}
		if attempt >= maxWriteAttempts || p.errorClassificator == nil || p.errorClassificator.Classify(err) != Retryable {
			break
		}

		log.Warn().Err(err).
			Str("func", "preferencesRepository.Set").
			Int("attempt", attempt).
			Msg("database busy, retrying preference write")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(writeRetryDelay):
		}
	}

	log.Err(err).
		Str("func", "preferencesRepository.Set").
		Str("key", key).
		Msg("failed to upsert preference")
	return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
}

func (p *preferencesRepository) All(ctx context.Context) (map[string]string, error) {
	log := p.logger

	query, args, err := buildSelectAllPreferencesQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "preferencesRepository.All").Msg("failed to query preferences")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	prefs := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err = rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		prefs[key] = value
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return prefs, nil
}
