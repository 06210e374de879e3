// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities used across
// different parts of the client: HTTP client initialization, access token
// inspection and identifier generation.
package utils
