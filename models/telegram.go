// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TelegramLink holds what the user needs to bind the Telegram bot.
type TelegramLink struct {
	BotUsername string `json:"bot_username"`
	BindToken   string `json:"bind_token"`
}

// TelegramStatus reports whether a Telegram account is bound.
type TelegramStatus struct {
	Linked     bool   `json:"linked"`
	TGUsername string `json:"tg_username,omitempty"`
}
