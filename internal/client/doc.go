// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client is the application root of the dating client.
//
// It builds every component explicitly (storage, request adapter, event
// stream, services), owns the auth redirect channel the adapter navigates
// through, and runs the session lifecycle until the context is cancelled.
package client
