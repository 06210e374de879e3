// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-dating-client/internal/adapter"
	"github.com/MKhiriev/go-dating-client/internal/config"
	"github.com/MKhiriev/go-dating-client/internal/logger"
	"github.com/MKhiriev/go-dating-client/internal/service"
	"github.com/MKhiriev/go-dating-client/internal/store"
	"github.com/MKhiriev/go-dating-client/internal/stream"
)

// App wires the services to the process lifecycle.
type App struct {
	cfg        *config.ClientConfig
	services   *service.ClientServices
	events     stream.EventStream
	redirector *Redirector
	closer     io.Closer
	logger     *logger.Logger
}

// NewApp builds storage, the request adapter, the event stream and the
// services from cfg. The returned App owns all of them.
func NewApp(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	redirector := NewRedirector()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, redirector, log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	events, err := stream.NewClient(cfg.Stream, log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create event stream: %w", err)
	}

	services := service.NewClientServices(storages, serverAdapter, events, log)

	return newApp(cfg, services, events, redirector, storages, log), nil
}

func newApp(
	cfg *config.ClientConfig,
	services *service.ClientServices,
	events stream.EventStream,
	redirector *Redirector,
	closer io.Closer,
	log *logger.Logger,
) *App {
	return &App{
		cfg:        cfg,
		services:   services,
		events:     events,
		redirector: redirector,
		closer:     closer,
		logger:     log.WithComponent("app"),
	}
}

// Run implements Client. It returns nil when ctx is cancelled and
// [ErrAuthenticationRequired] when the session is lost without configured
// credentials.
func (a *App) Run(ctx context.Context) error {
	defer a.shutdown()

	if settings, err := a.services.SettingsService.Apply(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("using default settings")
	} else {
		a.logger.Info().
			Str("theme", string(settings.Theme)).
			Str("language", string(settings.Language)).
			Msg("settings applied")
	}

	if err := a.startSession(ctx); err != nil {
		return err
	}

	a.services.ChatService.Subscribe()
	a.services.RefreshJob.Start(ctx, a.cfg.Workers.RefreshInterval)

	for {
		select {
		case <-ctx.Done():
			a.logger.Info().Msg("client stopped")
			return nil
		case location := <-a.redirector.Redirects():
			a.logger.Warn().Str("location", location).Msg("session lost, redirected to authentication")
			a.events.Disconnect()

			if !a.cfg.App.HasCredentials() {
				return ErrAuthenticationRequired
			}
			if err := a.login(ctx); err != nil {
				return err
			}
		}
	}
}

// startSession restores the session when the backend still accepts it and
// logs in with configured credentials otherwise.
func (a *App) startSession(ctx context.Context) error {
	err := a.services.AuthService.LoadUser(ctx)
	if err == nil {
		a.logger.Info().Msg("session restored")
		a.warmUp(ctx)
		return nil
	}
	a.logger.Debug().Err(err).Msg("no active session")

	if !a.cfg.App.HasCredentials() {
		return ErrAuthenticationRequired
	}
	return a.login(ctx)
}

func (a *App) login(ctx context.Context) error {
	user, err := a.services.AuthService.Login(ctx, a.cfg.App.Email, a.cfg.App.Password)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return fmt.Errorf("login: %w", err)
	}

	a.logger.Info().Str("user_id", user.ID).Str("name", user.Name).Msg("authenticated")
	a.warmUp(ctx)
	return nil
}

// warmUp fills the caches the refresh job keeps current afterwards.
func (a *App) warmUp(ctx context.Context) {
	if err := a.services.ChatService.LoadMatches(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("failed to load matches")
	}
	if _, err := a.services.SettingsService.CheckTelegramStatus(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("failed to check telegram status")
	}
}

func (a *App) shutdown() {
	a.services.RefreshJob.Stop()
	a.services.ChatService.Unsubscribe()
	a.events.Disconnect()

	if a.closer != nil {
		if err := a.closer.Close(); err != nil {
			a.logger.Err(err).Msg("failed to close local storage")
		}
	}
}
