// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session describes the access token currently held by the client.
//
// The backend treats the token as opaque, but when it is a JWT its
// registered claims are decoded (without signature verification) so the
// client can report who is logged in and until when. For opaque tokens the
// embedded claims stay zero.
type Session struct {
	// RegisteredClaims exposes sub, exp, iat and friends when available.
	jwt.RegisteredClaims

	// AccessToken is the raw bearer credential.
	AccessToken string `json:"-"`
}

// UserID returns the "sub" claim, or an empty string for opaque tokens.
func (s Session) UserID() string {
	return s.Subject
}

// Expiry returns the "exp" claim. ok is false when the token carries none.
func (s Session) Expiry() (time.Time, bool) {
	if s.ExpiresAt == nil {
		return time.Time{}, false
	}
	return s.ExpiresAt.Time, true
}

// Expired reports whether the token is past its "exp" claim at now.
// Tokens without an expiry never report as expired; the server decides.
func (s Session) Expired(now time.Time) bool {
	exp, ok := s.Expiry()
	return ok && !now.Before(exp)
}

// String returns the raw access token.
func (s Session) String() string {
	return s.AccessToken
}
