// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package stream

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-dating-client/models"
)

// EventType is the "type" discriminator carried by every stream frame.
type EventType string

const (
	EventMessage  EventType = "message"
	EventMatch    EventType = "match"
	EventTyping   EventType = "typing"
	EventPresence EventType = "presence"
	EventRead     EventType = "read"
)

// ErrMissingType is returned for frames without a "type" field.
var ErrMissingType = errors.New("stream frame has no type")

// Event is a decoded stream frame.
type Event interface {
	Type() EventType
}

// MessageEvent delivers a new chat message. The message fields sit next to
// "type" in the frame.
type MessageEvent struct {
	models.Message
}

func (MessageEvent) Type() EventType { return EventMessage }

// MatchEvent announces a new mutual match.
type MatchEvent struct {
	models.Match
}

func (MatchEvent) Type() EventType { return EventMatch }

// TypingEvent reports that a user started or stopped typing in a chat.
type TypingEvent struct {
	ChatID string `json:"chat_id"`
	UserID string `json:"user_id"`
	Typing bool   `json:"typing"`
}

func (TypingEvent) Type() EventType { return EventTyping }

// PresenceEvent reports a user going online or offline.
type PresenceEvent struct {
	UserID string `json:"user_id"`
	Online bool   `json:"online"`
}

func (PresenceEvent) Type() EventType { return EventPresence }

// ReadEvent marks messages of a chat as read up to MessageID.
type ReadEvent struct {
	ChatID    string `json:"chat_id"`
	UserID    string `json:"user_id,omitempty"`
	MessageID string `json:"message_id,omitempty"`
}

func (ReadEvent) Type() EventType { return EventRead }

// RawEvent carries a frame of a type this client does not model.
type RawEvent struct {
	Kind   EventType
	Fields map[string]json.RawMessage
}

func (e RawEvent) Type() EventType { return e.Kind }

type envelope struct {
	Type EventType `json:"type"`
}

// DecodeEvent parses a frame into its typed event. Unknown types decode into
// a [RawEvent].
func DecodeEvent(data []byte) (Event, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode stream frame: %w", err)
	}
	if env.Type == "" {
		return nil, ErrMissingType
	}

	switch env.Type {
	case EventMessage:
		return decodeAs[MessageEvent](data)
	case EventMatch:
		return decodeAs[MatchEvent](data)
	case EventTyping:
		return decodeAs[TypingEvent](data)
	case EventPresence:
		return decodeAs[PresenceEvent](data)
	case EventRead:
		return decodeAs[ReadEvent](data)
	default:
		fields := make(map[string]json.RawMessage)
		if err := json.Unmarshal(data, &fields); err != nil {
			return nil, fmt.Errorf("decode %s frame: %w", env.Type, err)
		}
		delete(fields, "type")
		return RawEvent{Kind: env.Type, Fields: fields}, nil
	}
}

func decodeAs[T Event](data []byte) (Event, error) {
	var event T
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, fmt.Errorf("decode %s frame: %w", event.Type(), err)
	}
	return event, nil
}

// EncodeEvent serialises event as a flat JSON object with its "type" field.
func EncodeEvent(event Event) ([]byte, error) {
	fields := make(map[string]json.RawMessage)

	if raw, ok := event.(RawEvent); ok {
		for k, v := range raw.Fields {
			fields[k] = v
		}
	} else {
		payload, err := json.Marshal(event)
		if err != nil {
			return nil, fmt.Errorf("encode %s event: %w", event.Type(), err)
		}
		if err = json.Unmarshal(payload, &fields); err != nil {
			return nil, fmt.Errorf("encode %s event: %w", event.Type(), err)
		}
	}

	kind, err := json.Marshal(event.Type())
	if err != nil {
		return nil, err
	}
	fields["type"] = kind

	return json.Marshal(fields)
}
