// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const preferencesTable = "preferences"

// SQLite accepts '?' placeholders, which is squirrel's default format.
var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildGetPreferenceQuery(key string) (string, []any, error) {
	return sqlite.
		Select("value").
		From(preferencesTable).
		Where(sq.Eq{"key": key}).
		Limit(1).
		ToSql()
}

func buildUpsertPreferenceQuery(key, value string, updatedAt time.Time) (string, []any, error) {
	return sqlite.
		Insert(preferencesTable).
		Columns("key", "value", "updated_at").
		Values(key, value, updatedAt.UTC()).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func buildSelectAllPreferencesQuery() (string, []any, error) {
	return sqlite.
		Select("key", "value").
		From(preferencesTable).
		OrderBy("key").
		ToSql()
}
