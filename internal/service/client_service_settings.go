// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-dating-client/internal/adapter"
	"github.com/MKhiriev/go-dating-client/internal/logger"
	"github.com/MKhiriev/go-dating-client/internal/store"
	"github.com/MKhiriev/go-dating-client/models"
)

type clientSettingsService struct {
	preferences store.PreferencesRepository
	adapter     adapter.ServerAdapter
	logger      *logger.Logger

	mu       sync.RWMutex
	settings models.Settings
}

func NewClientSettingsService(preferences store.PreferencesRepository, serverAdapter adapter.ServerAdapter, log *logger.Logger) ClientSettingsService {
	return &clientSettingsService{
		preferences: preferences,
		adapter:     serverAdapter,
		logger:      log.WithComponent("settings"),
		settings: models.Settings{
			Theme:    models.DefaultTheme,
			Language: models.DefaultLanguage,
		},
	}
}

func (s *clientSettingsService) Apply(ctx context.Context) (models.Settings, error) {
	prefs, err := s.preferences.All(ctx)
	if err != nil {
		return s.Settings(), fmt.Errorf("%w: %w", ErrLoadingPreferences, err)
	}

	theme := models.Theme(prefs[models.PreferenceTheme])
	if !theme.Valid() {
		if theme != "" {
			s.logger.Warn().Str("theme", string(theme)).Msg("unknown persisted theme, using default")
		}
		theme = models.DefaultTheme
	}

	language := models.Language(prefs[models.PreferenceLanguage])
	if !language.Valid() {
		if language != "" {
			s.logger.Warn().Str("language", string(language)).Msg("unknown persisted language, using default")
		}
		language = models.DefaultLanguage
	}

	s.mu.Lock()
	s.settings.Theme = theme
	s.settings.Language = language
	settings := s.settings
	s.mu.Unlock()

	s.logger.Debug().Str("theme", string(theme)).Str("language", string(language)).Msg("settings applied")
	return settings, nil
}

func (s *clientSettingsService) SetTheme(ctx context.Context, theme models.Theme) error {
	if !theme.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, theme)
	}
	if err := s.preferences.Set(ctx, models.PreferenceTheme, string(theme)); err != nil {
		return fmt.Errorf("%w: %w", ErrSavingPreference, err)
	}

	s.mu.Lock()
	s.settings.Theme = theme
	s.mu.Unlock()
	return nil
}

func (s *clientSettingsService) SetLanguage(ctx context.Context, language models.Language) error {
	if !language.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidLanguage, language)
	}
	if err := s.preferences.Set(ctx, models.PreferenceLanguage, string(language)); err != nil {
		return fmt.Errorf("%w: %w", ErrSavingPreference, err)
	}

	s.mu.Lock()
	s.settings.Language = language
	s.mu.Unlock()
	return nil
}

func (s *clientSettingsService) Settings() models.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

func (s *clientSettingsService) CheckTelegramStatus(ctx context.Context) (models.TelegramStatus, error) {
	status, err := s.adapter.TelegramStatus(ctx)
	if err != nil {
		return models.TelegramStatus{}, fmt.Errorf("%w: %w", ErrTelegramStatusUnknown, mapAdapterError(err))
	}

	s.mu.Lock()
	s.settings.TelegramLinked = status.Linked
	s.mu.Unlock()

	return status, nil
}

func (s *clientSettingsService) TelegramLink(ctx context.Context) (models.TelegramLink, error) {
	link, err := s.adapter.TelegramLink(ctx)
	if err != nil {
		return models.TelegramLink{}, mapAdapterError(err)
	}
	return link, nil
}
