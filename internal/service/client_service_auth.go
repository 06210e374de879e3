// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-dating-client/internal/adapter"
	"github.com/MKhiriev/go-dating-client/internal/logger"
	"github.com/MKhiriev/go-dating-client/internal/stream"
	"github.com/MKhiriev/go-dating-client/internal/utils"
	"github.com/MKhiriev/go-dating-client/models"
)

type clientAuthService struct {
	adapter adapter.ServerAdapter
	events  stream.EventStream
	logger  *logger.Logger

	mu   sync.RWMutex
	user *models.Profile
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, events stream.EventStream, log *logger.Logger) ClientAuthService {
	return &clientAuthService{
		adapter: serverAdapter,
		events:  events,
		logger:  log.WithComponent("auth"),
	}
}

func (a *clientAuthService) Login(ctx context.Context, email, password string) (models.Profile, error) {
	resp, err := a.adapter.Login(ctx, models.Credentials{Email: email, Password: password})
	if err != nil {
		a.logger.Err(err).Str("email", email).Msg("login failed")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrLoginOnServer, mapLoginError(err))
	}

	a.setUser(&resp.User)
	a.logSession(resp.Access)

	// the stream authenticates with the same access token
	a.events.Connect(ctx, resp.Access)

	return resp.User, nil
}

func (a *clientAuthService) Register(ctx context.Context, email, password, name string) (models.Profile, error) {
	_, err := a.adapter.Register(ctx, models.Registration{Email: email, Password: password, Name: name})
	if err != nil {
		a.logger.Err(err).Str("email", email).Msg("registration failed")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrRegisterOnServer, mapRegisterError(err))
	}

	return a.Login(ctx, email, password)
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	defer func() {
		a.events.Disconnect()
		a.setUser(nil)
	}()

	if err := a.adapter.Logout(ctx); err != nil {
		a.logger.Err(err).Msg("logout failed")
		return fmt.Errorf("%w: %w", ErrLogoutOnServer, mapAdapterError(err))
	}

	a.logger.Info().Msg("logged out")
	return nil
}

func (a *clientAuthService) LoadUser(ctx context.Context) error {
	user, err := a.adapter.Me(ctx)
	if err != nil {
		a.setUser(nil)
		return mapAdapterError(err)
	}

	a.setUser(&user)
	a.connectStream(ctx)
	return nil
}

// connectStream opens the live stream for a restored session. A session
// carried only by the refresh cookie is traded for an access token first.
func (a *clientAuthService) connectStream(ctx context.Context) {
	token := a.adapter.Token()
	if token == "" {
		var err error
		if token, err = a.adapter.Refresh(ctx); err != nil {
			a.logger.Warn().Err(err).Msg("restored session has no access token, live stream inactive")
			return
		}
	}
	a.events.Connect(ctx, token)
}

func (a *clientAuthService) CurrentUser() (models.Profile, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.user == nil {
		return models.Profile{}, false
	}
	return *a.user, true
}

func (a *clientAuthService) IsAuthenticated() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.user != nil
}

func (a *clientAuthService) setUser(user *models.Profile) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if user == nil {
		a.user = nil
		return
	}
	u := *user
	a.user = &u
}

func (a *clientAuthService) logSession(access string) {
	session, err := utils.ParseSession(access)
	if err != nil && !errors.Is(err, utils.ErrEmptyToken) {
		a.logger.Debug().Err(err).Msg("access token claims are unreadable")
	}

	event := a.logger.Info().Str("user_id", session.UserID())
	if exp, ok := session.Expiry(); ok {
		event = event.Time("expires_at", exp)
	}
	event.Msg("logged in")
}
