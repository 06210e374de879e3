// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Errors returned by the client services. Adapter failures are wrapped so
// callers can match both the service sentinel and the adapter error.
var (
	ErrLoginOnServer    = errors.New("login on server failed")
	ErrRegisterOnServer = errors.New("register on server failed")
	ErrLogoutOnServer   = errors.New("logout on server failed")

	ErrWrongCredentials      = errors.New("wrong email or password")
	ErrEmailAlreadyExists    = errors.New("email is already registered")
	ErrSessionExpired        = errors.New("session expired, login required")
	ErrNotAuthenticated      = errors.New("not authenticated")
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrResourceNotFound      = errors.New("resource not found")
	ErrForbidden             = errors.New("access forbidden")
	ErrServerUnavailable     = errors.New("server unavailable")
	ErrEmptyMessage          = errors.New("message text is empty")
	ErrNoProfiles            = errors.New("no profiles to show")
	ErrNoChatSelected        = errors.New("chat id is empty")
	ErrInvalidTheme          = errors.New("invalid theme")
	ErrInvalidLanguage       = errors.New("invalid language")
	ErrInvalidSwipeAction    = errors.New("invalid swipe action")
	ErrLoadingPreferences    = errors.New("failed to load preferences")
	ErrSavingPreference      = errors.New("failed to save preference")
	ErrTelegramStatusUnknown = errors.New("telegram status unavailable")
)
