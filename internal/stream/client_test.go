// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package stream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-dating-client/internal/config"
	"github.com/MKhiriev/go-dating-client/internal/logger"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testReconnectDelay = 50 * time.Millisecond
	waitFor            = 2 * time.Second
	tick               = 5 * time.Millisecond
)

// serverConn is the backend side of one accepted connection.
type serverConn struct {
	conn     *websocket.Conn
	token    string
	received chan []byte
	writeMu  sync.Mutex
}

func (s *serverConn) write(t *testing.T, frame string) {
	t.Helper()
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	require.NoError(t, s.conn.WriteMessage(websocket.TextMessage, []byte(frame)))
}

// testServer is a fake event-stream backend that hands every accepted
// connection to the test through conns.
type testServer struct {
	*httptest.Server
	conns    chan *serverConn
	attempts atomic.Int32
	reject   atomic.Bool
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ts := &testServer{conns: make(chan *serverConn, 16)}
	upgrader := websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}

	ts.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ts.attempts.Add(1)
		if ts.reject.Load() {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		sc := &serverConn{conn: conn, token: r.URL.Query().Get("token"), received: make(chan []byte, 16)}
		go func() {
			defer close(sc.received)
			for {
				_, data, err := conn.ReadMessage()
				if err != nil {
					return
				}
				sc.received <- data
			}
		}()
		ts.conns <- sc
	}))
	t.Cleanup(ts.Close)

	return ts
}

func (ts *testServer) wsURL() string {
	return "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
}

func (ts *testServer) accept(t *testing.T) *serverConn {
	t.Helper()
	select {
	case sc := <-ts.conns:
		return sc
	case <-time.After(waitFor):
		t.Fatal("timed out waiting for stream connection")
		return nil
	}
}

func (ts *testServer) expectNoConnection(t *testing.T, within time.Duration) {
	t.Helper()
	select {
	case <-ts.conns:
		t.Fatal("unexpected stream connection")
	case <-time.After(within):
	}
}

func newTestClient(t *testing.T, url string) *Client {
	t.Helper()
	c, err := NewClient(config.ClientStream{
		URL:              url,
		ReconnectDelay:   testReconnectDelay,
		PingInterval:     time.Second,
		HandshakeTimeout: time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(c.Disconnect)
	return c
}

// eventSink collects events delivered to a handler.
type eventSink struct {
	mu     sync.Mutex
	events []Event
}

func (s *eventSink) handle(e Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
}

func (s *eventSink) snapshot() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Event(nil), s.events...)
}

func TestNewClient_InvalidURL(t *testing.T) {
	_, err := NewClient(config.ClientStream{URL: "http://localhost:8000/ws"}, logger.Nop())
	require.Error(t, err)

	_, err = NewClient(config.ClientStream{URL: "://bad"}, logger.Nop())
	require.Error(t, err)
}

func TestConnect_SendsTokenAsQuery(t *testing.T) {
	ts := newTestServer(t)
	c := newTestClient(t, ts.wsURL())

	c.Connect(context.Background(), "tok1")

	sc := ts.accept(t)
	assert.Equal(t, "tok1", sc.token)
	assert.Equal(t, StateOpen, c.State())
}

func TestConnect_NoOpWhenOpen(t *testing.T) {
	ts := newTestServer(t)
	c := newTestClient(t, ts.wsURL())

	c.Connect(context.Background(), "tok1")
	ts.accept(t)

	c.Connect(context.Background(), "tok2")

	ts.expectNoConnection(t, 3*testReconnectDelay)
	assert.EqualValues(t, 1, ts.attempts.Load())
	assert.Equal(t, StateOpen, c.State())
}

func TestSend_DroppedWhenNotOpen(t *testing.T) {
	ts := newTestServer(t)
	c := newTestClient(t, ts.wsURL())

	c.Send(TypingEvent{ChatID: "c1", Typing: true})

	assert.Equal(t, StateDisconnected, c.State())
	assert.Zero(t, ts.attempts.Load())
}

func TestSend_WritesTypedFrame(t *testing.T) {
	ts := newTestServer(t)
	c := newTestClient(t, ts.wsURL())

	c.Connect(context.Background(), "tok1")
	sc := ts.accept(t)

	c.Send(TypingEvent{ChatID: "c1", UserID: "u1", Typing: true})

	select {
	case data := <-sc.received:
		assert.JSONEq(t, `{"type":"typing","chat_id":"c1","user_id":"u1","typing":true}`, string(data))
	case <-time.After(waitFor):
		t.Fatal("frame not received")
	}
}

func TestDispatch_InRegistrationOrder(t *testing.T) {
	ts := newTestServer(t)
	c := newTestClient(t, ts.wsURL())

	var mu sync.Mutex
	var order []string
	record := func(name string) Handler {
		return func(Event) {
			mu.Lock()
			defer mu.Unlock()
			order = append(order, name)
		}
	}
	c.On(EventMessage, "first", record("first"))
	c.On(EventMessage, "second", record("second"))
	c.On(EventPresence, "presence", record("presence"))

	c.Connect(context.Background(), "tok1")
	sc := ts.accept(t)
	sc.write(t, `{"type":"message","id":"m1","chat_id":"c1","from_user_id":"u2","text":"hi","created_at":"2026-01-01T00:00:00Z"}`)

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(order) == 2
	}, waitFor, tick)

	mu.Lock()
	assert.Equal(t, []string{"first", "second"}, order)
	mu.Unlock()
}

func TestDispatch_TypedPayload(t *testing.T) {
	ts := newTestServer(t)
	c := newTestClient(t, ts.wsURL())

	sink := &eventSink{}
	c.On(EventMessage, "sink", sink.handle)

	c.Connect(context.Background(), "tok1")
	sc := ts.accept(t)
	sc.write(t, `{"type":"message","id":"m1","chat_id":"c1","from_user_id":"u2","text":"hi","created_at":"2026-01-01T00:00:00Z"}`)

	require.Eventually(t, func() bool { return len(sink.snapshot()) == 1 }, waitFor, tick)

	msg, ok := sink.snapshot()[0].(MessageEvent)
	require.True(t, ok)
	assert.Equal(t, "m1", msg.ID)
	assert.Equal(t, "c1", msg.ChatID)
	assert.Equal(t, "hi", msg.Text)
}

func TestOn_SameKeyRegisteredOnce(t *testing.T) {
	ts := newTestServer(t)
	c := newTestClient(t, ts.wsURL())

	sink := &eventSink{}
	first := c.On(EventMatch, "sink", sink.handle)
	second := c.On(EventMatch, "sink", sink.handle)
	assert.Equal(t, first, second)

	other := &eventSink{}
	c.On(EventTyping, "sink", other.handle)

	c.Connect(context.Background(), "tok1")
	sc := ts.accept(t)
	sc.write(t, `{"type":"match","chat_id":"c7","user":{"id":"u3","name":"Maria"}}`)
	sc.write(t, `{"type":"typing","chat_id":"c7","user_id":"u3","typing":true}`)

	require.Eventually(t, func() bool { return len(other.snapshot()) == 1 }, waitFor, tick)
	assert.Len(t, sink.snapshot(), 1)

	c.Off(second)
	sc.write(t, `{"type":"match","chat_id":"c8","user":{"id":"u4","name":"Lena"}}`)
	sc.write(t, `{"type":"typing","chat_id":"c7","user_id":"u3","typing":false}`)

	require.Eventually(t, func() bool { return len(other.snapshot()) == 2 }, waitFor, tick)
	assert.Len(t, sink.snapshot(), 1)
}

func TestOff_StopsDelivery(t *testing.T) {
	ts := newTestServer(t)
	c := newTestClient(t, ts.wsURL())

	removed := &eventSink{}
	kept := &eventSink{}
	sub := c.On(EventMatch, "removed", removed.handle)
	c.On(EventMatch, "kept", kept.handle)

	c.Off(sub)
	c.Off(sub)

	c.Connect(context.Background(), "tok1")
	sc := ts.accept(t)
	sc.write(t, `{"type":"match","chat_id":"c7","user":{"id":"u3","name":"Maria"}}`)

	require.Eventually(t, func() bool { return len(kept.snapshot()) == 1 }, waitFor, tick)
	assert.Empty(t, removed.snapshot())

	match, ok := kept.snapshot()[0].(MatchEvent)
	require.True(t, ok)
	assert.Equal(t, "c7", match.ChatID)
	assert.Equal(t, "Maria", match.User.Name)
}

func TestDispatch_MalformedFrameDropped(t *testing.T) {
	ts := newTestServer(t)
	c := newTestClient(t, ts.wsURL())

	sink := &eventSink{}
	c.On(EventPresence, "sink", sink.handle)

	c.Connect(context.Background(), "tok1")
	sc := ts.accept(t)
	sc.write(t, `{not json`)
	sc.write(t, `{"user_id":"u1"}`)
	sc.write(t, `{"type":"presence","user_id":"u1","online":true}`)

	require.Eventually(t, func() bool { return len(sink.snapshot()) == 1 }, waitFor, tick)
	assert.Equal(t, PresenceEvent{UserID: "u1", Online: true}, sink.snapshot()[0])
	assert.Equal(t, StateOpen, c.State())
}

func TestDispatch_UnknownTypeAsRaw(t *testing.T) {
	ts := newTestServer(t)
	c := newTestClient(t, ts.wsURL())

	sink := &eventSink{}
	c.On("gift", "sink", sink.handle)

	c.Connect(context.Background(), "tok1")
	sc := ts.accept(t)
	sc.write(t, `{"type":"gift","from":"u9"}`)

	require.Eventually(t, func() bool { return len(sink.snapshot()) == 1 }, waitFor, tick)
	raw, ok := sink.snapshot()[0].(RawEvent)
	require.True(t, ok)
	assert.Equal(t, EventType("gift"), raw.Type())
	assert.JSONEq(t, `"u9"`, string(raw.Fields["from"]))
}

func TestDispatch_HandlerMayUnsubscribe(t *testing.T) {
	ts := newTestServer(t)
	c := newTestClient(t, ts.wsURL())

	var calls atomic.Int32
	var sub Subscription
	sub = c.On(EventRead, "once", func(Event) {
		calls.Add(1)
		c.Off(sub)
	})

	c.Connect(context.Background(), "tok1")
	sc := ts.accept(t)
	sc.write(t, `{"type":"read","chat_id":"c1"}`)
	sc.write(t, `{"type":"read","chat_id":"c1"}`)

	require.Eventually(t, func() bool { return calls.Load() == 1 }, waitFor, tick)
	time.Sleep(3 * testReconnectDelay)
	assert.EqualValues(t, 1, calls.Load())
}

func TestReconnect_AfterServerClose(t *testing.T) {
	ts := newTestServer(t)
	c := newTestClient(t, ts.wsURL())

	c.Connect(context.Background(), "tok1")
	first := ts.accept(t)
	require.NoError(t, first.conn.Close())

	second := ts.accept(t)
	assert.Equal(t, "tok1", second.token)
	require.Eventually(t, func() bool { return c.State() == StateOpen }, waitFor, tick)
}

func TestReconnect_AfterDialFailure(t *testing.T) {
	ts := newTestServer(t)
	ts.reject.Store(true)
	c := newTestClient(t, ts.wsURL())

	c.Connect(context.Background(), "tok1")
	assert.Equal(t, StateClosed, c.State())

	require.Eventually(t, func() bool { return ts.attempts.Load() >= 2 }, waitFor, tick)
	ts.reject.Store(false)

	sc := ts.accept(t)
	assert.Equal(t, "tok1", sc.token)
}

func TestDisconnect_CancelsScheduledReconnect(t *testing.T) {
	ts := newTestServer(t)
	c := newTestClient(t, ts.wsURL())

	c.Connect(context.Background(), "tok1")
	sc := ts.accept(t)
	require.NoError(t, sc.conn.Close())
	require.Eventually(t, func() bool { return c.State() == StateClosed }, waitFor, tick)

	c.Disconnect()

	ts.expectNoConnection(t, 4*testReconnectDelay)
	assert.Equal(t, StateDisconnected, c.State())
}

func TestDisconnect_ClosesConnection(t *testing.T) {
	ts := newTestServer(t)
	c := newTestClient(t, ts.wsURL())

	c.Connect(context.Background(), "tok1")
	sc := ts.accept(t)

	c.Disconnect()

	select {
	case _, ok := <-sc.received:
		assert.False(t, ok)
	case <-time.After(waitFor):
		t.Fatal("server connection not closed")
	}
	ts.expectNoConnection(t, 4*testReconnectDelay)
	assert.Equal(t, StateDisconnected, c.State())

	c.Connect(context.Background(), "tok2")
	again := ts.accept(t)
	assert.Equal(t, "tok2", again.token)
}

func TestSend_AfterDisconnectIsDropped(t *testing.T) {
	ts := newTestServer(t)
	c := newTestClient(t, ts.wsURL())

	c.Connect(context.Background(), "tok1")
	sc := ts.accept(t)
	c.Disconnect()

	c.Send(ReadEvent{ChatID: "c1"})

	for data := range sc.received {
		var frame map[string]any
		if json.Unmarshal(data, &frame) == nil {
			t.Fatalf("unexpected frame after disconnect: %s", data)
		}
	}
}
