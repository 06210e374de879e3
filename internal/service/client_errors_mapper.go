// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-dating-client/internal/adapter"
)

// mapAdapterError translates an adapter failure into a service error. The
// original error stays in the chain so adapter sentinels still match.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var sentinel error
	switch {
	case errors.Is(err, adapter.ErrAuthenticationFailed):
		sentinel = ErrSessionExpired
	case errors.Is(err, adapter.ErrBadRequest):
		sentinel = ErrInvalidDataProvided
	case errors.Is(err, adapter.ErrUnauthorized):
		sentinel = ErrNotAuthenticated
	case errors.Is(err, adapter.ErrForbidden):
		sentinel = ErrForbidden
	case errors.Is(err, adapter.ErrNotFound):
		sentinel = ErrResourceNotFound
	case errors.Is(err, adapter.ErrInternalServerError), errors.Is(err, adapter.ErrBadGateway):
		sentinel = ErrServerUnavailable
	default:
		var transportErr *adapter.TransportError
		if errors.As(err, &transportErr) {
			sentinel = ErrServerUnavailable
		}
	}

	if sentinel == nil {
		return err
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}

// mapLoginError treats 401 on the login exchange as bad credentials rather
// than an expired session.
func mapLoginError(err error) error {
	if errors.Is(err, adapter.ErrUnauthorized) && !errors.Is(err, adapter.ErrAuthenticationFailed) {
		return fmt.Errorf("%w: %w", ErrWrongCredentials, err)
	}
	return mapAdapterError(err)
}

// mapRegisterError reports 409 as an already registered email.
func mapRegisterError(err error) error {
	if errors.Is(err, adapter.ErrConflict) {
		return fmt.Errorf("%w: %w", ErrEmailAlreadyExists, err)
	}
	return mapAdapterError(err)
}
