// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer the dating client uses to talk
// to the backend REST API.
//
// The primary abstraction is [ServerAdapter]. Its HTTP implementation
// ([NewHTTPServerAdapter]) attaches the held bearer credential to every
// request and, when the backend answers 401, trades the refresh cookie for a
// new credential and replays the request exactly once. When that refresh
// fails the credential is dropped and the [Navigator] is sent to the
// authentication entry point.
//
// Failures are reported as [*TransportError], [*HTTPError] or
// [*AuthenticationError]. HTTPError matches the status sentinels in
// errors.go with [errors.Is] (e.g. [ErrConflict] for 409).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-dating-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the dating backend. Implementations
// own the bearer credential, the refresh-and-replay cycle and the mapping of
// transport failures to the error types defined in this package.
type ServerAdapter interface {
	// SetToken replaces the held credential.
	SetToken(token string)

	// Token returns the held credential, or an empty string.
	Token() string

	// ClearToken drops the held credential.
	ClearToken()

	// Do performs one exchange described by req and decodes a JSON response
	// body into result (which may be nil). It is the primitive the named
	// operations below are built on.
	Do(ctx context.Context, req Request, result any) error

	// Login exchanges credentials for an access token and stores it.
	Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error)

	// Refresh trades the refresh cookie for a new access token and stores
	// it. Unlike the refresh inside Do, a failure neither clears the held
	// credential nor navigates.
	Refresh(ctx context.Context) (string, error)

	// Register creates an account. It does not log in.
	Register(ctx context.Context, reg models.Registration) (models.RegisterResponse, error)

	// Logout ends the backend session and clears the held credential. The
	// credential is cleared even when the request fails.
	Logout(ctx context.Context) error

	// Me returns the profile of the authenticated user.
	Me(ctx context.Context) (models.Profile, error)

	// GetProfile returns the editable profile of the authenticated user.
	GetProfile(ctx context.Context) (models.Profile, error)

	// UpdateProfile sends a partial update; unset fields are left untouched
	// by the backend.
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.Profile, error)

	// Discover returns candidate profiles matching filters.
	Discover(ctx context.Context, filters models.DiscoverFilters) ([]models.Profile, error)

	// Swipe records a like/pass decision about another user.
	Swipe(ctx context.Context, swipe models.Swipe) (models.SwipeResult, error)

	// Matches lists the current user's matches with their last message.
	Matches(ctx context.Context) ([]models.Match, error)

	// ChatMessages lists messages of a chat. A non-empty cursor requests the
	// page before it.
	ChatMessages(ctx context.Context, chatID, cursor string) ([]models.Message, error)

	// SendMessage appends a message to a chat and returns it as stored.
	SendMessage(ctx context.Context, chatID string, msg models.OutgoingMessage) (models.Message, error)

	// TelegramLink returns the bot name and one-time token used to bind a
	// Telegram account.
	TelegramLink(ctx context.Context) (models.TelegramLink, error)

	// TelegramStatus reports whether a Telegram account is linked.
	TelegramStatus(ctx context.Context) (models.TelegramStatus, error)
}

// Navigator receives the single navigation the adapter is allowed to trigger:
// a redirect to the authentication entry point after a failed refresh.
type Navigator interface {
	Navigate(location string)
}

// NavigatorFunc adapts a plain function to [Navigator].
type NavigatorFunc func(location string)

// Navigate calls f(location).
func (f NavigatorFunc) Navigate(location string) {
	f(location)
}
