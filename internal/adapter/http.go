// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-dating-client/internal/config"
	"github.com/MKhiriev/go-dating-client/internal/logger"
	"github.com/MKhiriev/go-dating-client/internal/utils"
	"github.com/MKhiriev/go-dating-client/models"
	"github.com/go-resty/resty/v2"
)

const refreshPath = "/auth/refresh"

// Request describes one exchange with the backend. Path is relative to the
// configured base URL.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Headers map[string]string
	Body    any
}

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	navigator      Navigator
	authEntryPoint string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout. The client keeps cookies, so the refresh cookie set at login
// travels with the refresh exchange.
//
// navigator receives the auth entry point when a refresh fails; nil disables
// navigation.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, navigator Navigator, log *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewAPIClient(baseURL, adapterCfg.RequestTimeout)
	client.SetLogger(restyLogger{log})

	if navigator == nil {
		navigator = NavigatorFunc(func(string) {})
	}

	authEntryPoint := adapterCfg.AuthEntryPoint
	if authEntryPoint == "" {
		authEntryPoint = config.DefaultAuthEntryPoint
	}

	return &httpServerAdapter{
		client:         client,
		navigator:      navigator,
		authEntryPoint: authEntryPoint,
		logger:         log.WithComponent("adapter"),
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// ClearToken implements [ServerAdapter].
func (h *httpServerAdapter) ClearToken() {
	h.SetToken("")
}

// Do implements [ServerAdapter].
//
// A 401 answered to a request that carried a credential triggers one refresh
// exchange. On success the request is replayed once with the new credential
// and the replay's body is decoded into result whatever its status, except
// that a second 401 is returned as an [*HTTPError]. On refresh failure the credential is cleared, the navigator
// is sent to the auth entry point and an [*AuthenticationError] is returned.
func (h *httpServerAdapter) Do(ctx context.Context, req Request, result any) error {
	token := h.Token()

	resp, err := h.send(ctx, req, token)
	if err != nil {
		return err
	}

	if resp.StatusCode() == http.StatusUnauthorized && token != "" {
		return h.refreshAndReplay(ctx, req, result)
	}

	if err = mapHTTPError(resp); err != nil {
		return err
	}

	return decodeBody(resp, result)
}

func (h *httpServerAdapter) refreshAndReplay(ctx context.Context, req Request, result any) error {
	token, err := h.refresh(ctx)
	if err != nil {
		h.ClearToken()
		h.logger.Warn().Err(err).
			Str("path", req.Path).
			Str("location", h.authEntryPoint).
			Msg("credential refresh failed, redirecting to auth entry point")
		h.navigator.Navigate(h.authEntryPoint)
		return &AuthenticationError{Err: err}
	}

	resp, err := h.send(ctx, req, token)
	if err != nil {
		return err
	}
	if resp.StatusCode() == http.StatusUnauthorized {
		return mapHTTPError(resp)
	}
	if !resp.IsSuccess() {
		h.logger.Debug().
			Str("path", req.Path).
			Int("status", resp.StatusCode()).
			Msg("decoding non-2xx replay body")
	}

	return decodeBody(resp, result)
}

// refresh trades the refresh cookie for a new access token and stores it.
func (h *httpServerAdapter) refresh(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Post(refreshPath)
	if err != nil {
		return "", &TransportError{Method: http.MethodPost, Path: refreshPath, Err: err}
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var refreshed models.RefreshResponse
	if err = decodeBody(resp, &refreshed); err != nil {
		return "", err
	}
	if refreshed.Access == "" {
		return "", ErrEmptyAccessToken
	}

	h.SetToken(refreshed.Access)
	h.logger.Debug().Msg("credential refreshed")

	return refreshed.Access, nil
}

func (h *httpServerAdapter) send(ctx context.Context, req Request, token string) (*resty.Response, error) {
	r := h.client.R().SetContext(ctx)
	if len(req.Query) > 0 {
		r.SetQueryParamsFromValues(req.Query)
	}
	for k, v := range req.Headers {
		r.SetHeader(k, v)
	}
	if token != "" {
		r.SetHeader("Authorization", utils.BearerHeader(token))
	}
	if req.Body != nil {
		r.SetBody(req.Body)
	}

	resp, err := r.Execute(req.Method, req.Path)
	if err != nil {
		h.logger.Debug().Err(err).
			Str("method", req.Method).
			Str("path", req.Path).
			Msg("request failed before response")
		return nil, &TransportError{Method: req.Method, Path: req.Path, Err: err}
	}

	h.logger.Debug().
		Str("method", req.Method).
		Str("path", req.Path).
		Int("status", resp.StatusCode()).
		Dur("took", resp.Time()).
		Msg("request completed")

	return resp, nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /auth/login and stores the returned access token.
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error) {
	var resp models.LoginResponse
	err := h.Do(ctx, Request{Method: http.MethodPost, Path: "/auth/login", Body: creds}, &resp)
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if resp.Access == "" {
		return models.LoginResponse{}, fmt.Errorf("login: %w", ErrEmptyAccessToken)
	}

	h.SetToken(resp.Access)
	return resp, nil
}

// Refresh implements [ServerAdapter]. It POSTs to /auth/refresh.
func (h *httpServerAdapter) Refresh(ctx context.Context) (string, error) {
	token, err := h.refresh(ctx)
	if err != nil {
		return "", fmt.Errorf("refresh request: %w", err)
	}
	return token, nil
}

// Register implements [ServerAdapter]. It POSTs to POST /auth/register.
func (h *httpServerAdapter) Register(ctx context.Context, reg models.Registration) (models.RegisterResponse, error) {
	var resp models.RegisterResponse
	if err := h.Do(ctx, Request{Method: http.MethodPost, Path: "/auth/register", Body: reg}, &resp); err != nil {
		return models.RegisterResponse{}, fmt.Errorf("register request: %w", err)
	}
	return resp, nil
}

// Logout implements [ServerAdapter]. It POSTs to POST /auth/logout.
func (h *httpServerAdapter) Logout(ctx context.Context) error {
	defer h.ClearToken()

	if err := h.Do(ctx, Request{Method: http.MethodPost, Path: "/auth/logout"}, nil); err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	return nil
}

// Me implements [ServerAdapter]. It GETs /auth/me.
func (h *httpServerAdapter) Me(ctx context.Context) (models.Profile, error) {
	var profile models.Profile
	if err := h.Do(ctx, Request{Method: http.MethodGet, Path: "/auth/me"}, &profile); err != nil {
		return models.Profile{}, fmt.Errorf("me request: %w", err)
	}
	return profile, nil
}

// GetProfile implements [ServerAdapter]. It GETs /profiles/me.
func (h *httpServerAdapter) GetProfile(ctx context.Context) (models.Profile, error) {
	var profile models.Profile
	if err := h.Do(ctx, Request{Method: http.MethodGet, Path: "/profiles/me"}, &profile); err != nil {
		return models.Profile{}, fmt.Errorf("get profile request: %w", err)
	}
	return profile, nil
}

// UpdateProfile implements [ServerAdapter]. It PATCHes /profiles/me with the
// fields set in update.
func (h *httpServerAdapter) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.Profile, error) {
	var profile models.Profile
	if err := h.Do(ctx, Request{Method: http.MethodPatch, Path: "/profiles/me", Body: update}, &profile); err != nil {
		return models.Profile{}, fmt.Errorf("update profile request: %w", err)
	}
	return profile, nil
}

// Discover implements [ServerAdapter]. It GETs /discover with the non-zero
// filters as query parameters.
func (h *httpServerAdapter) Discover(ctx context.Context, filters models.DiscoverFilters) ([]models.Profile, error) {
	var profiles []models.Profile
	if err := h.Do(ctx, Request{Method: http.MethodGet, Path: "/discover", Query: filters.Query()}, &profiles); err != nil {
		return nil, fmt.Errorf("discover request: %w", err)
	}
	return profiles, nil
}

// Swipe implements [ServerAdapter]. It POSTs the decision to /swipe.
func (h *httpServerAdapter) Swipe(ctx context.Context, swipe models.Swipe) (models.SwipeResult, error) {
	if !swipe.Action.Valid() {
		return models.SwipeResult{}, fmt.Errorf("swipe: %w: unknown action %q", ErrBadRequest, swipe.Action)
	}

	var result models.SwipeResult
	if err := h.Do(ctx, Request{Method: http.MethodPost, Path: "/swipe", Body: swipe}, &result); err != nil {
		return models.SwipeResult{}, fmt.Errorf("swipe request: %w", err)
	}
	return result, nil
}

// Matches implements [ServerAdapter]. It GETs /matches.
func (h *httpServerAdapter) Matches(ctx context.Context) ([]models.Match, error) {
	var matches []models.Match
	if err := h.Do(ctx, Request{Method: http.MethodGet, Path: "/matches"}, &matches); err != nil {
		return nil, fmt.Errorf("matches request: %w", err)
	}
	return matches, nil
}

// ChatMessages implements [ServerAdapter]. It GETs /chats/{id}/messages,
// adding ?cursor= when cursor is set.
func (h *httpServerAdapter) ChatMessages(ctx context.Context, chatID, cursor string) ([]models.Message, error) {
	req := Request{Method: http.MethodGet, Path: chatMessagesPath(chatID)}
	if cursor != "" {
		req.Query = url.Values{"cursor": []string{cursor}}
	}

	var messages []models.Message
	if err := h.Do(ctx, req, &messages); err != nil {
		return nil, fmt.Errorf("chat messages request: %w", err)
	}
	return messages, nil
}

// SendMessage implements [ServerAdapter]. It POSTs to /chats/{id}/messages.
func (h *httpServerAdapter) SendMessage(ctx context.Context, chatID string, msg models.OutgoingMessage) (models.Message, error) {
	var message models.Message
	if err := h.Do(ctx, Request{Method: http.MethodPost, Path: chatMessagesPath(chatID), Body: msg}, &message); err != nil {
		return models.Message{}, fmt.Errorf("send message request: %w", err)
	}
	return message, nil
}

// TelegramLink implements [ServerAdapter]. It GETs /tg/link.
func (h *httpServerAdapter) TelegramLink(ctx context.Context) (models.TelegramLink, error) {
	var link models.TelegramLink
	if err := h.Do(ctx, Request{Method: http.MethodGet, Path: "/tg/link"}, &link); err != nil {
		return models.TelegramLink{}, fmt.Errorf("telegram link request: %w", err)
	}
	return link, nil
}

// TelegramStatus implements [ServerAdapter]. It GETs /tg/status.
func (h *httpServerAdapter) TelegramStatus(ctx context.Context) (models.TelegramStatus, error) {
	var status models.TelegramStatus
	if err := h.Do(ctx, Request{Method: http.MethodGet, Path: "/tg/status"}, &status); err != nil {
		return models.TelegramStatus{}, fmt.Errorf("telegram status request: %w", err)
	}
	return status, nil
}

func chatMessagesPath(chatID string) string {
	return "/chats/" + url.PathEscape(chatID) + "/messages"
}
