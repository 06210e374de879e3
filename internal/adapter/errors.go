// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

// Status sentinels. An [*HTTPError] matches the sentinel for its status code
// with errors.Is.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)

var (
	// ErrAuthenticationFailed is matched by every [*AuthenticationError].
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrEmptyAccessToken is returned when a login or refresh response
	// carries no access token.
	ErrEmptyAccessToken = errors.New("empty access token in response")
)

// TransportError reports a failure before any response was received:
// DNS, connection refused, timeout or cancelled context.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: transport error: %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// HTTPError reports a non-2xx response that was not recovered by a refresh.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("http error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("http error: status %d: %s", e.StatusCode, e.Body)
}

// Is reports whether target is the status sentinel for e.StatusCode.
func (e *HTTPError) Is(target error) bool {
	sentinel := statusSentinel(e.StatusCode)
	return sentinel != nil && sentinel == target
}

// AuthenticationError reports that a 401 could not be recovered because the
// refresh exchange failed. Err holds the refresh failure.
type AuthenticationError struct {
	Err error
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("%v: %v", ErrAuthenticationFailed, e.Err)
}

func (e *AuthenticationError) Is(target error) bool {
	return target == ErrAuthenticationFailed
}

func (e *AuthenticationError) Unwrap() error {
	return e.Err
}
