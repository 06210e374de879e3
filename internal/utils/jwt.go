// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-dating-client/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptyToken is returned by [ParseSession] for a blank token.
var ErrEmptyToken = errors.New("empty access token")

// ParseSession describes an access token as a [models.Session].
//
// The signature is NOT verified: the client cannot hold the backend's key and
// only reads the registered claims (sub, exp, iat) for diagnostics. A token
// that is not a JWT is still a valid opaque credential, so it yields a
// Session with zero claims and a nil error.
//
// Example usage:
//
//	session, err := utils.ParseSession(access)
//	if exp, ok := session.Expiry(); ok {
//	    log.Info().Time("expires_at", exp).Msg("logged in")
//	}
func ParseSession(token string) (models.Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return models.Session{}, ErrEmptyToken
	}

	session := models.Session{AccessToken: token}
	if strings.Count(token, ".") != 2 {
		return session, nil
	}

	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return session, fmt.Errorf("error parsing access token claims: %w", err)
	}
	session.RegisteredClaims = *claims

	return session, nil
}

// BearerHeader formats token for the Authorization header.
func BearerHeader(token string) string {
	return "Bearer " + token
}
