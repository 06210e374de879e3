// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package stream

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/MKhiriev/go-dating-client/internal/config"
	"github.com/MKhiriev/go-dating-client/internal/logger"
	"github.com/MKhiriev/go-dating-client/internal/utils"
	"github.com/gorilla/websocket"
)

const writeTimeout = 10 * time.Second

// Client is the WebSocket implementation of [EventStream].
type Client struct {
	endpoint       *url.URL
	dialer         *websocket.Dialer
	reconnectDelay time.Duration
	pingInterval   time.Duration
	pongTimeout    time.Duration
	ids            *utils.UUIDGenerator
	logger         *logger.Logger

	mu       sync.Mutex
	state    State
	conn     *websocket.Conn
	token    string
	timer    *time.Timer
	epoch    uint64
	stopPing context.CancelFunc

	writeMu    sync.Mutex // serialises all conn writes (ping, send, close)
	dispatchMu sync.Mutex // handlers never run concurrently

	subsMu sync.RWMutex
	subs   map[EventType][]subscriber
}

type subscriber struct {
	id      string
	key     string
	handler Handler
}

// NewClient creates a stream client for cfg.URL. It does not connect.
func NewClient(cfg config.ClientStream, log *logger.Logger) (*Client, error) {
	endpoint, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid stream url: %w", err)
	}
	if endpoint.Scheme != "ws" && endpoint.Scheme != "wss" {
		return nil, fmt.Errorf("invalid stream url %q: scheme must be ws or wss", cfg.URL)
	}

	reconnectDelay := cfg.ReconnectDelay
	if reconnectDelay <= 0 {
		reconnectDelay = config.DefaultReconnectDelay
	}
	pingInterval := cfg.PingInterval
	if pingInterval <= 0 {
		pingInterval = config.DefaultPingInterval
	}

	dialer := *websocket.DefaultDialer
	if cfg.HandshakeTimeout > 0 {
		dialer.HandshakeTimeout = cfg.HandshakeTimeout
	}

	return &Client{
		endpoint:       endpoint,
		dialer:         &dialer,
		reconnectDelay: reconnectDelay,
		pingInterval:   pingInterval,
		pongTimeout:    2 * pingInterval,
		ids:            utils.NewUUIDGenerator(),
		logger:         log.WithComponent("stream"),
		subs:           make(map[EventType][]subscriber),
	}, nil
}

// State implements [EventStream].
func (c *Client) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Connect implements [EventStream]. The dial is bounded by ctx and the
// handshake timeout; a failed dial, like any later close, schedules another
// attempt with the same token after the reconnect delay.
func (c *Client) Connect(ctx context.Context, token string) {
	c.connect(ctx, token, false, 0)
}

func (c *Client) connect(ctx context.Context, token string, scheduled bool, scheduledEpoch uint64) {
	c.mu.Lock()
	if scheduled {
		if scheduledEpoch != c.epoch || c.state != StateClosed {
			c.mu.Unlock()
			return
		}
	} else {
		if c.state == StateOpen || c.state == StateConnecting {
			c.mu.Unlock()
			return
		}
		c.epoch++
	}
	c.stopTimerLocked()
	c.state = StateConnecting
	c.token = token
	epoch := c.epoch
	c.mu.Unlock()

	conn, _, err := c.dialer.DialContext(ctx, c.endpointWithToken(token), nil)

	c.mu.Lock()
	if epoch != c.epoch {
		c.mu.Unlock()
		if conn != nil {
			_ = conn.Close()
		}
		return
	}
	if err != nil {
		c.state = StateClosed
		c.scheduleReconnectLocked(token)
		c.mu.Unlock()
		c.logger.Warn().Err(err).
			Str("url", c.endpoint.Redacted()).
			Dur("retry_in", c.reconnectDelay).
			Msg("stream dial failed")
		return
	}

	pingCtx, stopPing := context.WithCancel(context.Background())
	c.conn = conn
	c.state = StateOpen
	c.stopPing = stopPing
	c.mu.Unlock()

	c.logger.Info().Str("url", c.endpoint.Redacted()).Msg("stream connected")

	go c.pingLoop(pingCtx, conn)
	go c.readLoop(conn, epoch)
}

// Disconnect implements [EventStream]. It also invalidates a reconnect
// timer that has already fired but not yet run.
func (c *Client) Disconnect() {
	c.mu.Lock()
	c.epoch++
	c.stopTimerLocked()
	conn := c.conn
	c.conn = nil
	if c.stopPing != nil {
		c.stopPing()
		c.stopPing = nil
	}
	c.state = StateDisconnected
	c.mu.Unlock()

	if conn == nil {
		return
	}

	c.writeMu.Lock()
	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeTimeout))
	c.writeMu.Unlock()
	_ = conn.Close()

	c.logger.Info().Msg("stream disconnected")
}

// Send implements [EventStream]. Encoding and write failures are logged.
func (c *Client) Send(event Event) {
	c.mu.Lock()
	conn := c.conn
	open := c.state == StateOpen
	c.mu.Unlock()

	if !open || conn == nil {
		c.logger.Debug().Str("type", string(event.Type())).Msg("stream not open, dropping outbound event")
		return
	}

	data, err := EncodeEvent(event)
	if err != nil {
		c.logger.Error().Err(err).Msg("failed to encode outbound event")
		return
	}

	c.writeMu.Lock()
	_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	err = conn.WriteMessage(websocket.TextMessage, data)
	c.writeMu.Unlock()
	if err != nil {
		c.logger.Warn().Err(err).Str("type", string(event.Type())).Msg("failed to write outbound event")
	}
}

// On implements [EventStream].
func (c *Client) On(eventType EventType, key string, handler Handler) Subscription {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()

	for _, s := range c.subs[eventType] {
		if s.key == key {
			return Subscription{Type: eventType, id: s.id}
		}
	}

	sub := Subscription{Type: eventType, id: c.ids.Generate()}
	c.subs[eventType] = append(c.subs[eventType], subscriber{id: sub.id, key: key, handler: handler})
	return sub
}

// Off implements [EventStream].
func (c *Client) Off(sub Subscription) {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()

	list := c.subs[sub.Type]
	for i := range list {
		if list[i].id == sub.id {
			list = append(list[:i:i], list[i+1:]...)
			break
		}
	}
	if len(list) == 0 {
		delete(c.subs, sub.Type)
		return
	}
	c.subs[sub.Type] = list
}

func (c *Client) handlers(eventType EventType) []Handler {
	c.subsMu.RLock()
	defer c.subsMu.RUnlock()

	list := c.subs[eventType]
	handlers := make([]Handler, 0, len(list))
	for _, s := range list {
		handlers = append(handlers, s.handler)
	}
	return handlers
}

func (c *Client) readLoop(conn *websocket.Conn, epoch uint64) {
	extend := func() error {
		return conn.SetReadDeadline(time.Now().Add(c.pongTimeout))
	}
	conn.SetPongHandler(func(string) error { return extend() })
	_ = extend()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			c.handleClose(conn, epoch, err)
			return
		}
		_ = extend()

		c.dispatch(data)
	}
}

func (c *Client) dispatch(data []byte) {
	event, err := DecodeEvent(data)
	if err != nil {
		c.logger.Warn().Err(err).Int("size", len(data)).Msg("dropping malformed stream frame")
		return
	}

	handlers := c.handlers(event.Type())

	c.dispatchMu.Lock()
	defer c.dispatchMu.Unlock()
	for _, h := range handlers {
		h(event)
	}
}

func (c *Client) handleClose(conn *websocket.Conn, epoch uint64, cause error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != conn || c.epoch != epoch {
		return
	}

	c.conn = nil
	if c.stopPing != nil {
		c.stopPing()
		c.stopPing = nil
	}
	c.state = StateClosed
	_ = conn.Close()

	c.logger.Warn().Err(cause).Dur("retry_in", c.reconnectDelay).Msg("stream closed")
	c.scheduleReconnectLocked(c.token)
}

// pingLoop sends periodic pings on the given connection. It exits when the
// context is cancelled or the connection changes.
func (c *Client) pingLoop(ctx context.Context, conn *websocket.Conn) {
	ticker := time.NewTicker(c.pingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.mu.Lock()
			cc := c.conn
			c.mu.Unlock()
			if cc != conn {
				return
			}
			c.writeMu.Lock()
			_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			err := conn.WriteMessage(websocket.PingMessage, nil)
			c.writeMu.Unlock()
			if err != nil {
				return
			}
		}
	}
}

// scheduleReconnectLocked arms the reconnect timer. c.mu must be held.
func (c *Client) scheduleReconnectLocked(token string) {
	c.stopTimerLocked()
	epoch := c.epoch
	c.timer = time.AfterFunc(c.reconnectDelay, func() {
		c.connect(context.Background(), token, true, epoch)
	})
}

func (c *Client) stopTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Client) endpointWithToken(token string) string {
	u := *c.endpoint
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()
	return u.String()
}
