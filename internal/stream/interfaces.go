// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package stream implements the client side of the backend's live event
// stream: one WebSocket connection per session, typed decoding of inbound
// frames, per-type subscriber fan-out and a constant-delay reconnect loop
// that runs until Disconnect is called.
package stream

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/event_stream_mock.go -package=mock

// EventStream is the surface services use to talk to the live stream.
type EventStream interface {
	// Connect opens the stream with token unless it is already open or
	// connecting. Failures are retried in the background.
	Connect(ctx context.Context, token string)

	// Disconnect closes the stream and cancels any pending reconnect.
	Disconnect()

	// Send writes event when the stream is open and drops it otherwise.
	Send(event Event)

	// On registers handler for frames of eventType under key. Keys are
	// unique per event type: registering a key that is already present
	// keeps the first handler and returns its Subscription.
	On(eventType EventType, key string, handler Handler) Subscription

	// Off removes a registration. Removing twice is a no-op.
	Off(sub Subscription)

	State() State
}

// Handler receives decoded events. Handlers run one at a time.
type Handler func(Event)

// Subscription identifies one registration made with On.
type Subscription struct {
	Type EventType
	id   string
}
