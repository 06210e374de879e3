// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the client-side state services of the dating client.
//
// Each service caches one slice of session state (the current user, the own
// profile, the discovery feed, chats, settings) on top of the request adapter,
// the event stream and local storage. Caches are guarded by per-service
// mutexes and are safe for concurrent use.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-dating-client/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_services_mock.go -package=mock

// ClientAuthService owns the authenticated session: it logs in and out,
// keeps the current user and hands the access token to the event stream.
type ClientAuthService interface {
	// Login authenticates with email and password, caches the returned user
	// and connects the event stream with the issued access token.
	Login(ctx context.Context, email, password string) (models.Profile, error)

	// Register creates an account and then logs in with the same credentials.
	Register(ctx context.Context, email, password, name string) (models.Profile, error)

	// Logout ends the server session. The event stream is disconnected and
	// the cached user dropped even when the request fails; the request error
	// is still returned.
	Logout(ctx context.Context) error

	// LoadUser refreshes the cached user from the backend. On failure the
	// cache is cleared and the error returned.
	LoadUser(ctx context.Context) error

	// CurrentUser returns the cached user. ok is false when logged out.
	CurrentUser() (user models.Profile, ok bool)

	IsAuthenticated() bool
}

// ClientProfileService caches the user's own editable profile.
type ClientProfileService interface {
	Load(ctx context.Context) (models.Profile, error)

	// Update sends a partial update and caches the server's result.
	Update(ctx context.Context, update models.ProfileUpdate) (models.Profile, error)

	Profile() (profile models.Profile, ok bool)
}

// ClientDiscoverService walks the discovery feed one candidate at a time.
type ClientDiscoverService interface {
	// Load fetches candidates for the current filters and rewinds to the
	// first one.
	Load(ctx context.Context) error

	Profiles() []models.Profile

	// Current returns the candidate being shown, or [ErrNoProfiles].
	Current() (models.Profile, error)

	// Swipe records action for the current candidate and advances. Moving
	// past the last candidate wraps to the first.
	Swipe(ctx context.Context, action models.SwipeAction) (models.SwipeResult, error)

	// SetFilters stores filters and reloads the feed.
	SetFilters(ctx context.Context, filters models.DiscoverFilters) error

	Filters() models.DiscoverFilters
}

// ClientChatService caches matches and chat messages and keeps them current
// from the event stream.
type ClientChatService interface {
	LoadMatches(ctx context.Context) error
	Matches() []models.Match

	// LoadMessages replaces the cached messages of chatID.
	LoadMessages(ctx context.Context, chatID string) error

	// LoadOlderMessages prepends the page before cursor to the cache.
	LoadOlderMessages(ctx context.Context, chatID, cursor string) error

	Messages(chatID string) []models.Message

	// SendMessage posts text and appends the stored message to the cache.
	SendMessage(ctx context.Context, chatID, text string) (models.Message, error)

	// SetCurrentChat selects a chat and loads its messages. An empty chatID
	// clears the selection.
	SetCurrentChat(ctx context.Context, chatID string) error
	CurrentChat() string

	TypingUsers(chatID string) []string
	IsOnline(userID string) bool

	// SendTyping and MarkRead are best effort stream writes.
	SendTyping(chatID string, typing bool)
	MarkRead(chatID, messageID string)

	// Subscribe registers the stream handlers. Calling it twice is a no-op.
	Subscribe()
	Unsubscribe()
}

// ClientSettingsService persists local preferences and tracks the Telegram
// binding.
type ClientSettingsService interface {
	// Apply loads persisted preferences. Missing or unknown values fall back
	// to defaults.
	Apply(ctx context.Context) (models.Settings, error)

	SetTheme(ctx context.Context, theme models.Theme) error
	SetLanguage(ctx context.Context, language models.Language) error
	Settings() models.Settings

	// CheckTelegramStatus asks the backend and caches the linked flag.
	CheckTelegramStatus(ctx context.Context) (models.TelegramStatus, error)
	TelegramLink(ctx context.Context) (models.TelegramLink, error)
}

// ClientRefreshJob periodically reloads matches and the Telegram status
// while a session is active.
type ClientRefreshJob interface {
	// Start launches the background goroutine, stopping a previous one
	// first. A non-positive interval defaults to one minute.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the goroutine and waits for it to exit.
	Stop()
}
