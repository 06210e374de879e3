// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/go-dating-client/internal/adapter"
	"github.com/MKhiriev/go-dating-client/internal/logger"
	"github.com/MKhiriev/go-dating-client/internal/stream"
	"github.com/MKhiriev/go-dating-client/models"
)

type clientChatService struct {
	adapter adapter.ServerAdapter
	events  stream.EventStream
	logger  *logger.Logger

	mu          sync.RWMutex
	matches     []models.Match
	messages    map[string][]models.Message
	currentChat string
	typing      map[string][]string
	online      map[string]struct{}

	subsMu sync.Mutex
	subs   []stream.Subscription
}

func NewClientChatService(serverAdapter adapter.ServerAdapter, events stream.EventStream, log *logger.Logger) ClientChatService {
	return &clientChatService{
		adapter:  serverAdapter,
		events:   events,
		logger:   log.WithComponent("chat"),
		messages: make(map[string][]models.Message),
		typing:   make(map[string][]string),
		online:   make(map[string]struct{}),
	}
}

func (c *clientChatService) LoadMatches(ctx context.Context) error {
	matches, err := c.adapter.Matches(ctx)
	if err != nil {
		return mapAdapterError(err)
	}

	c.mu.Lock()
	c.matches = matches
	c.mu.Unlock()

	return nil
}

func (c *clientChatService) Matches() []models.Match {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.matches)
}

func (c *clientChatService) LoadMessages(ctx context.Context, chatID string) error {
	if chatID == "" {
		return ErrNoChatSelected
	}

	messages, err := c.adapter.ChatMessages(ctx, chatID, "")
	if err != nil {
		return mapAdapterError(err)
	}

	c.mu.Lock()
	c.messages[chatID] = messages
	c.mu.Unlock()

	return nil
}

func (c *clientChatService) LoadOlderMessages(ctx context.Context, chatID, cursor string) error {
	if chatID == "" {
		return ErrNoChatSelected
	}

	older, err := c.adapter.ChatMessages(ctx, chatID, cursor)
	if err != nil {
		return mapAdapterError(err)
	}

	c.mu.Lock()
	c.messages[chatID] = append(older, c.messages[chatID]...)
	c.mu.Unlock()

	return nil
}

func (c *clientChatService) Messages(chatID string) []models.Message {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.messages[chatID])
}

func (c *clientChatService) SendMessage(ctx context.Context, chatID, text string) (models.Message, error) {
	if chatID == "" {
		return models.Message{}, ErrNoChatSelected
	}
	if strings.TrimSpace(text) == "" {
		return models.Message{}, ErrEmptyMessage
	}

	msg, err := c.adapter.SendMessage(ctx, chatID, models.OutgoingMessage{Text: text})
	if err != nil {
		return models.Message{}, mapAdapterError(err)
	}

	c.appendMessage(chatID, msg)
	return msg, nil
}

func (c *clientChatService) SetCurrentChat(ctx context.Context, chatID string) error {
	c.mu.Lock()
	c.currentChat = chatID
	c.mu.Unlock()

	if chatID == "" {
		return nil
	}
	return c.LoadMessages(ctx, chatID)
}

func (c *clientChatService) CurrentChat() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.currentChat
}

func (c *clientChatService) TypingUsers(chatID string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.typing[chatID])
}

func (c *clientChatService) IsOnline(userID string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.online[userID]
	return ok
}

func (c *clientChatService) SendTyping(chatID string, typing bool) {
	c.events.Send(stream.TypingEvent{ChatID: chatID, Typing: typing})
}

func (c *clientChatService) MarkRead(chatID, messageID string) {
	c.events.Send(stream.ReadEvent{ChatID: chatID, MessageID: messageID})
}

func (c *clientChatService) Subscribe() {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()

	if len(c.subs) > 0 {
		return
	}
	c.subs = []stream.Subscription{
		c.events.On(stream.EventMessage, "chat.message", c.onMessage),
		c.events.On(stream.EventMatch, "chat.match", c.onMatch),
		c.events.On(stream.EventTyping, "chat.typing", c.onTyping),
		c.events.On(stream.EventPresence, "chat.presence", c.onPresence),
	}
}

func (c *clientChatService) Unsubscribe() {
	c.subsMu.Lock()
	subs := c.subs
	c.subs = nil
	c.subsMu.Unlock()

	for _, sub := range subs {
		c.events.Off(sub)
	}
}

func (c *clientChatService) onMessage(e stream.Event) {
	ev, ok := e.(stream.MessageEvent)
	if !ok {
		return
	}
	c.appendMessage(ev.ChatID, ev.Message)
}

func (c *clientChatService) onMatch(e stream.Event) {
	ev, ok := e.(stream.MatchEvent)
	if !ok {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if slices.ContainsFunc(c.matches, func(m models.Match) bool { return m.ChatID == ev.ChatID }) {
		return
	}
	c.matches = append(c.matches, ev.Match)
	c.logger.Info().Str("chat_id", ev.ChatID).Str("user_id", ev.User.ID).Msg("new match")
}

func (c *clientChatService) onTyping(e stream.Event) {
	ev, ok := e.(stream.TypingEvent)
	if !ok {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	users := slices.DeleteFunc(c.typing[ev.ChatID], func(id string) bool { return id == ev.UserID })
	if ev.Typing {
		users = append(users, ev.UserID)
	}
	if len(users) == 0 {
		delete(c.typing, ev.ChatID)
		return
	}
	c.typing[ev.ChatID] = users
}

func (c *clientChatService) onPresence(e stream.Event) {
	ev, ok := e.(stream.PresenceEvent)
	if !ok {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if ev.Online {
		c.online[ev.UserID] = struct{}{}
		return
	}
	delete(c.online, ev.UserID)
}

// appendMessage adds msg to its chat and updates the match preview. A
// message already cached (the echo of our own send) is not duplicated.
func (c *clientChatService) appendMessage(chatID string, msg models.Message) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cached := c.messages[chatID]
	if msg.ID != "" && slices.ContainsFunc(cached, func(m models.Message) bool { return m.ID == msg.ID }) {
		return
	}
	c.messages[chatID] = append(cached, msg)

	for i := range c.matches {
		if c.matches[i].ChatID == chatID {
			last := msg
			c.matches[i].LastMessage = &last
			break
		}
	}
}
