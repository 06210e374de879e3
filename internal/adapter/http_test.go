// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-dating-client/internal/config"
	"github.com/MKhiriev/go-dating-client/internal/logger"
	"github.com/MKhiriev/go-dating-client/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingNavigator collects navigation targets.
type recordingNavigator struct {
	mu        sync.Mutex
	locations []string
}

func (n *recordingNavigator) Navigate(location string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.locations = append(n.locations, location)
}

func (n *recordingNavigator) Locations() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.locations...)
}

func newTestAdapter(t *testing.T, serverURL string) (*httpServerAdapter, *recordingNavigator) {
	t.Helper()
	nav := &recordingNavigator{}
	adapterCfg := config.ClientAdapter{
		HTTPAddress:    serverURL,
		RequestTimeout: 5 * time.Second,
		AuthEntryPoint: "/auth",
	}

	a, err := NewHTTPServerAdapter(adapterCfg, nav, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter), nav
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// constructor

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: "  "}, nil, logger.Nop())
	require.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "http://localhost:8000/", want: "http://localhost:8000"},
		{raw: "localhost:8000", want: "http://localhost:8000"},
		{raw: "https://api.example.com/v1", want: "https://api.example.com/v1"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Do: headers and decoding

func TestDo_AttachesHeadersAndQuery(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/discover", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok1", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "yes", r.Header.Get("X-Extra"))
		assert.Equal(t, "25", r.URL.Query().Get("age_min"))
		writeJSON(t, w, http.StatusOK, []models.Profile{{ID: "1", Name: "Anna"}})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	a, _ := newTestAdapter(t, srv.URL)
	a.SetToken("tok1")

	var got []models.Profile
	err := a.Do(context.Background(), Request{
		Method:  http.MethodGet,
		Path:    "/discover",
		Query:   models.DiscoverFilters{AgeMin: 25}.Query(),
		Headers: map[string]string{"X-Extra": "yes"},
	}, &got)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Anna", got[0].Name)
}

func TestDo_NoAuthorizationWithoutCredential(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/auth/me", func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNoContent)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	a, _ := newTestAdapter(t, srv.URL)

	var got models.Profile
	require.NoError(t, a.Do(context.Background(), Request{Method: http.MethodGet, Path: "/auth/me"}, &got))
	assert.Equal(t, models.Profile{}, got)
}

func TestDo_DecodeError(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/matches", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	a, _ := newTestAdapter(t, srv.URL)

	var got []models.Match
	err := a.Do(context.Background(), Request{Method: http.MethodGet, Path: "/matches"}, &got)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

// Do: error taxonomy

func TestDo_HTTPErrorStatuses(t *testing.T) {
	tests := []struct {
		status   int
		sentinel error
	}{
		{status: http.StatusBadRequest, sentinel: ErrBadRequest},
		{status: http.StatusForbidden, sentinel: ErrForbidden},
		{status: http.StatusNotFound, sentinel: ErrNotFound},
		{status: http.StatusConflict, sentinel: ErrConflict},
		{status: http.StatusInternalServerError, sentinel: ErrInternalServerError},
		{status: http.StatusBadGateway, sentinel: ErrBadGateway},
		{status: http.StatusTeapot, sentinel: nil},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("nope"))
			}))
			defer srv.Close()

			a, nav := newTestAdapter(t, srv.URL)
			a.SetToken("tok1")

			err := a.Do(context.Background(), Request{Method: http.MethodGet, Path: "/profiles/me"}, nil)

			var httpErr *HTTPError
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, tt.status, httpErr.StatusCode)
			assert.Equal(t, "nope", httpErr.Body)
			if tt.sentinel != nil {
				assert.ErrorIs(t, err, tt.sentinel)
			}
			assert.Equal(t, "tok1", a.Token())
			assert.Empty(t, nav.Locations())
		})
	}
}

func TestDo_UnauthorizedWithoutCredential_NoRefresh(t *testing.T) {
	var refreshCalls atomic.Int32
	r := chi.NewRouter()
	r.Get("/profiles/me", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	r.Post("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls.Add(1)
		writeJSON(t, w, http.StatusOK, models.RefreshResponse{Access: "tok2"})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	a, nav := newTestAdapter(t, srv.URL)

	err := a.Do(context.Background(), Request{Method: http.MethodGet, Path: "/profiles/me"}, nil)

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Zero(t, refreshCalls.Load())
	assert.Empty(t, nav.Locations())
}

func TestDo_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	a, _ := newTestAdapter(t, url)

	err := a.Do(context.Background(), Request{Method: http.MethodGet, Path: "/matches"}, nil)

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, http.MethodGet, transportErr.Method)
	assert.Equal(t, "/matches", transportErr.Path)
}

func TestDo_CancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a, _ := newTestAdapter(t, srv.URL)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := a.Do(ctx, Request{Method: http.MethodGet, Path: "/matches"}, nil)

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.ErrorIs(t, err, context.Canceled)
}

// Do: refresh and replay

// TestDo_RefreshAndReplay covers the canonical flow: tok1 is rejected, the
// refresh exchange issues tok2 and the original call is replayed with it.
func TestDo_RefreshAndReplay(t *testing.T) {
	var refreshCalls, protectedCalls atomic.Int32
	r := chi.NewRouter()
	r.Get("/matches", func(w http.ResponseWriter, r *http.Request) {
		protectedCalls.Add(1)
		if r.Header.Get("Authorization") != "Bearer tok2" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		writeJSON(t, w, http.StatusOK, []models.Match{{ChatID: "c1"}})
	})
	r.Post("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls.Add(1)
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, models.RefreshResponse{Access: "tok2"})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	a, nav := newTestAdapter(t, srv.URL)
	a.SetToken("tok1")

	got, err := a.Matches(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "c1", got[0].ChatID)
	assert.Equal(t, "tok2", a.Token())
	assert.EqualValues(t, 1, refreshCalls.Load())
	assert.EqualValues(t, 2, protectedCalls.Load())
	assert.Empty(t, nav.Locations())
}

func TestDo_UnauthorizedDuringReplay_IsTerminal(t *testing.T) {
	var refreshCalls, protectedCalls atomic.Int32
	r := chi.NewRouter()
	r.Get("/matches", func(w http.ResponseWriter, r *http.Request) {
		protectedCalls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	})
	r.Post("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls.Add(1)
		writeJSON(t, w, http.StatusOK, models.RefreshResponse{Access: "tok2"})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	a, nav := newTestAdapter(t, srv.URL)
	a.SetToken("tok1")

	err := a.Do(context.Background(), Request{Method: http.MethodGet, Path: "/matches"}, nil)

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.StatusCode)
	assert.False(t, errors.Is(err, ErrAuthenticationFailed))
	assert.EqualValues(t, 1, refreshCalls.Load())
	assert.EqualValues(t, 2, protectedCalls.Load())
	assert.Equal(t, "tok2", a.Token())
	assert.Empty(t, nav.Locations())
}

func TestDo_ReplayBodyDecodedRegardlessOfStatus(t *testing.T) {
	var protectedCalls atomic.Int32
	r := chi.NewRouter()
	r.Get("/tg/status", func(w http.ResponseWriter, r *http.Request) {
		if protectedCalls.Add(1) == 1 {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		writeJSON(t, w, http.StatusNotFound, models.TelegramStatus{Linked: true, TGUsername: "maria"})
	})
	r.Post("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.RefreshResponse{Access: "tok2"})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	a, nav := newTestAdapter(t, srv.URL)
	a.SetToken("tok1")

	got, err := a.TelegramStatus(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.TelegramStatus{Linked: true, TGUsername: "maria"}, got)
	assert.EqualValues(t, 2, protectedCalls.Load())
	assert.Equal(t, "tok2", a.Token())
	assert.Empty(t, nav.Locations())
}

func TestDo_RefreshFailure(t *testing.T) {
	tests := []struct {
		name      string
		refresh   http.HandlerFunc
		transport bool
	}{
		{
			name: "non-2xx",
			refresh: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			},
		},
		{
			name: "empty access token",
			refresh: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"access":""}`))
			},
		},
		{
			name: "malformed body",
			refresh: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{`))
			},
		},
		{
			name: "connection dropped",
			refresh: func(w http.ResponseWriter, r *http.Request) {
				hj, ok := w.(http.Hijacker)
				if !ok {
					t.Error("response writer does not support hijacking")
					return
				}
				conn, _, err := hj.Hijack()
				if err != nil {
					t.Error(err)
					return
				}
				_ = conn.Close()
			},
			transport: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var protectedCalls atomic.Int32
			r := chi.NewRouter()
			r.Get("/profiles/me", func(w http.ResponseWriter, r *http.Request) {
				protectedCalls.Add(1)
				w.WriteHeader(http.StatusUnauthorized)
			})
			r.Post("/auth/refresh", tt.refresh)
			srv := httptest.NewServer(r)
			defer srv.Close()

			a, nav := newTestAdapter(t, srv.URL)
			a.SetToken("tok1")

			_, err := a.GetProfile(context.Background())

			var authErr *AuthenticationError
			require.ErrorAs(t, err, &authErr)
			assert.ErrorIs(t, err, ErrAuthenticationFailed)
			assert.Empty(t, a.Token())
			assert.Equal(t, []string{"/auth"}, nav.Locations())
			assert.EqualValues(t, 1, protectedCalls.Load())
			if tt.transport {
				var transportErr *TransportError
				assert.ErrorAs(t, err, &transportErr)
			}
		})
	}
}

func TestRefresh(t *testing.T) {
	t.Run("stores the issued token", func(t *testing.T) {
		r := chi.NewRouter()
		r.Post("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.Header.Get("Authorization"))
			writeJSON(t, w, http.StatusOK, models.RefreshResponse{Access: "tok2"})
		})
		srv := httptest.NewServer(r)
		defer srv.Close()

		a, nav := newTestAdapter(t, srv.URL)

		token, err := a.Refresh(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "tok2", token)
		assert.Equal(t, "tok2", a.Token())
		assert.Empty(t, nav.Locations())
	})

	t.Run("failure keeps state", func(t *testing.T) {
		r := chi.NewRouter()
		r.Post("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
		srv := httptest.NewServer(r)
		defer srv.Close()

		a, nav := newTestAdapter(t, srv.URL)
		a.SetToken("tok1")

		_, err := a.Refresh(context.Background())

		assert.ErrorIs(t, err, ErrUnauthorized)
		assert.Equal(t, "tok1", a.Token())
		assert.Empty(t, nav.Locations())
	})
}

// TestDo_RefreshUsesCookieFromLogin verifies that the refresh cookie issued
// at login travels with the refresh exchange.
func TestDo_RefreshUsesCookieFromLogin(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "refresh_token", Value: "r1", Path: "/", HttpOnly: true})
		writeJSON(t, w, http.StatusOK, models.LoginResponse{Access: "tok1"})
	})
	r.Get("/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok2" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		writeJSON(t, w, http.StatusOK, models.Profile{ID: "u1"})
	})
	r.Post("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie("refresh_token")
		if err != nil || c.Value != "r1" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		writeJSON(t, w, http.StatusOK, models.RefreshResponse{Access: "tok2"})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	a, nav := newTestAdapter(t, srv.URL)

	_, err := a.Login(context.Background(), models.Credentials{Email: "ann@example.com", Password: "pw"})
	require.NoError(t, err)

	me, err := a.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "u1", me.ID)
	assert.Empty(t, nav.Locations())
}

func TestDo_NilNavigator(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/matches", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	r.Post("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: srv.URL, RequestTimeout: time.Second}, nil, logger.Nop())
	require.NoError(t, err)
	a.SetToken("tok1")

	_, err = a.Matches(context.Background())
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

// named operations

func TestLogin_StoresToken(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var creds models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "ann@example.com", creds.Email)
		assert.Equal(t, "pw", creds.Password)
		writeJSON(t, w, http.StatusOK, models.LoginResponse{Access: "tok1", User: models.Profile{ID: "u1", Name: "Ann"}})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	a, _ := newTestAdapter(t, srv.URL)

	resp, err := a.Login(context.Background(), models.Credentials{Email: "ann@example.com", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, "u1", resp.User.ID)
	assert.Equal(t, "tok1", a.Token())
}

func TestLogin_EmptyAccess(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.LoginResponse{})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	a, _ := newTestAdapter(t, srv.URL)

	_, err := a.Login(context.Background(), models.Credentials{Email: "a", Password: "b"})

	assert.ErrorIs(t, err, ErrEmptyAccessToken)
	assert.Empty(t, a.Token())
}

func TestLogin_WrongPassword(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"invalid credentials"}`))
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	a, _ := newTestAdapter(t, srv.URL)

	_, err := a.Login(context.Background(), models.Credentials{Email: "a", Password: "b"})

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestRegister_Success(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/auth/register", func(w http.ResponseWriter, r *http.Request) {
		var reg models.Registration
		require.NoError(t, json.NewDecoder(r.Body).Decode(&reg))
		assert.Equal(t, "Ann", reg.Name)
		writeJSON(t, w, http.StatusCreated, models.RegisterResponse{ID: "u1", Email: reg.Email})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	a, _ := newTestAdapter(t, srv.URL)

	resp, err := a.Register(context.Background(), models.Registration{Email: "ann@example.com", Password: "pw", Name: "Ann"})

	require.NoError(t, err)
	assert.Equal(t, "u1", resp.ID)
	assert.Empty(t, a.Token())
}

func TestRegister_Conflict(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/auth/register", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	a, _ := newTestAdapter(t, srv.URL)

	_, err := a.Register(context.Background(), models.Registration{Email: "ann@example.com"})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestLogout_ClearsToken(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr bool
	}{
		{name: "success", status: http.StatusNoContent},
		{name: "server error", status: http.StatusInternalServerError, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := chi.NewRouter()
			r.Post("/auth/logout", func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "Bearer tok1", r.Header.Get("Authorization"))
				w.WriteHeader(tt.status)
			})
			srv := httptest.NewServer(r)
			defer srv.Close()

			a, _ := newTestAdapter(t, srv.URL)
			a.SetToken("tok1")

			err := a.Logout(context.Background())

			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Empty(t, a.Token())
		})
	}
}

func TestUpdateProfile_SendsOnlySetFields(t *testing.T) {
	r := chi.NewRouter()
	r.Patch("/profiles/me", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"bio": "hi"}, body)
		writeJSON(t, w, http.StatusOK, models.Profile{ID: "u1", Bio: "hi"})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	a, _ := newTestAdapter(t, srv.URL)
	bio := "hi"

	got, err := a.UpdateProfile(context.Background(), models.ProfileUpdate{Bio: &bio})

	require.NoError(t, err)
	assert.Equal(t, "hi", got.Bio)
}

func TestDiscover_FilterQuery(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/discover", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "20", q.Get("age_min"))
		assert.Equal(t, "30", q.Get("age_max"))
		assert.Equal(t, "10", q.Get("distance_km"))
		assert.Equal(t, "art,music", q.Get("tags"))
		writeJSON(t, w, http.StatusOK, []models.Profile{{ID: "2"}, {ID: "3"}})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	a, _ := newTestAdapter(t, srv.URL)

	got, err := a.Discover(context.Background(), models.DiscoverFilters{AgeMin: 20, AgeMax: 30, DistanceKm: 10, Tags: []string{"art", "music"}})

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestSwipe(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/swipe", func(w http.ResponseWriter, r *http.Request) {
		var swipe models.Swipe
		require.NoError(t, json.NewDecoder(r.Body).Decode(&swipe))
		assert.Equal(t, "u2", swipe.ToUserID)
		assert.Equal(t, models.SwipeLike, swipe.Action)
		writeJSON(t, w, http.StatusOK, models.SwipeResult{Match: true, ChatID: "c9"})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	a, _ := newTestAdapter(t, srv.URL)

	got, err := a.Swipe(context.Background(), models.Swipe{ToUserID: "u2", Action: models.SwipeLike})
	require.NoError(t, err)
	assert.True(t, got.Match)
	assert.Equal(t, "c9", got.ChatID)

	_, err = a.Swipe(context.Background(), models.Swipe{ToUserID: "u2", Action: "superlike"})
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestChatMessages_Cursor(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/chats/{chatID}/messages", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "c1", chi.URLParam(r, "chatID"))
		cursor := r.URL.Query().Get("cursor")
		if cursor == "" {
			writeJSON(t, w, http.StatusOK, []models.Message{{ID: "m2"}, {ID: "m3"}})
			return
		}
		assert.Equal(t, "m2", cursor)
		writeJSON(t, w, http.StatusOK, []models.Message{{ID: "m1"}})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	a, _ := newTestAdapter(t, srv.URL)

	latest, err := a.ChatMessages(context.Background(), "c1", "")
	require.NoError(t, err)
	assert.Len(t, latest, 2)

	older, err := a.ChatMessages(context.Background(), "c1", "m2")
	require.NoError(t, err)
	require.Len(t, older, 1)
	assert.Equal(t, "m1", older[0].ID)
}

func TestSendMessage(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/chats/{chatID}/messages", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"text": "hello"}, body)
		writeJSON(t, w, http.StatusCreated, models.Message{ID: "m1", ChatID: chi.URLParam(r, "chatID"), Text: "hello"})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	a, _ := newTestAdapter(t, srv.URL)

	got, err := a.SendMessage(context.Background(), "c1", models.OutgoingMessage{Text: "hello"})

	require.NoError(t, err)
	assert.Equal(t, "c1", got.ChatID)
	assert.Equal(t, "hello", got.Text)
}

func TestTelegramEndpoints(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/tg/link", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.TelegramLink{BotUsername: "dating_bot", BindToken: "b1"})
	})
	r.Get("/tg/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.TelegramStatus{Linked: true, TGUsername: "ann"})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	a, _ := newTestAdapter(t, srv.URL)

	link, err := a.TelegramLink(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "dating_bot", link.BotUsername)

	status, err := a.TelegramStatus(context.Background())
	require.NoError(t, err)
	assert.True(t, status.Linked)
	assert.Equal(t, "ann", status.TGUsername)
}

func TestToken_Accessors(t *testing.T) {
	a, _ := newTestAdapter(t, "http://localhost:8000")

	assert.Empty(t, a.Token())
	a.SetToken("  tok1 ")
	assert.Equal(t, "tok1", a.Token())
	a.ClearToken()
	assert.Empty(t, a.Token())
}
