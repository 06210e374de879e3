// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Theme is the persisted UI color scheme preference.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// DefaultTheme is used when nothing was persisted yet.
const DefaultTheme = ThemeSystem

// Valid reports whether t is a known theme.
func (t Theme) Valid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}

// Language is the persisted interface language preference.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageRussian Language = "ru"
)

// DefaultLanguage is used when nothing was persisted yet.
const DefaultLanguage = LanguageEnglish

// Valid reports whether l is a supported language.
func (l Language) Valid() bool {
	return l == LanguageEnglish || l == LanguageRussian
}

// Preference keys in the local key-value storage.
const (
	PreferenceTheme    = "theme"
	PreferenceLanguage = "language"
)

// Settings is the snapshot of local user settings.
type Settings struct {
	Theme          Theme
	Language       Language
	TelegramLinked bool
}
