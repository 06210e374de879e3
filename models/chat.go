// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Message is a single chat message.
type Message struct {
	ID         string `json:"id"`
	ChatID     string `json:"chat_id"`
	FromUserID string `json:"from_user_id"`
	Text       string `json:"text,omitempty"`
	ImageURL   string `json:"image_url,omitempty"`
	CreatedAt  string `json:"created_at"`
	Read       bool   `json:"read"`
}

// OutgoingMessage is the body of POST /chats/{id}/messages.
// At least one of Text or ImageURL is expected by the backend.
type OutgoingMessage struct {
	Text     string `json:"text,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

// Match pairs the other user's profile with the chat opened for the match.
type Match struct {
	User        Profile  `json:"user"`
	ChatID      string   `json:"chat_id"`
	LastMessage *Message `json:"last_message,omitempty"`
}
