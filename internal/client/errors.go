// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

// ErrAuthenticationRequired is returned by Run when no session can be
// established and no credentials are configured to log in with.
var ErrAuthenticationRequired = errors.New("authentication required: configure APP_EMAIL and APP_PASSWORD")
