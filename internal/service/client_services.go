// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-dating-client/internal/adapter"
	"github.com/MKhiriev/go-dating-client/internal/logger"
	"github.com/MKhiriev/go-dating-client/internal/store"
	"github.com/MKhiriev/go-dating-client/internal/stream"
)

// ClientServices bundles the client services sharing one adapter and one
// event stream.
type ClientServices struct {
	AuthService     ClientAuthService
	ProfileService  ClientProfileService
	DiscoverService ClientDiscoverService
	ChatService     ClientChatService
	SettingsService ClientSettingsService
	RefreshJob      ClientRefreshJob
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, events stream.EventStream, log *logger.Logger) *ClientServices {
	authSvc := NewClientAuthService(serverAdapter, events, log)
	chatSvc := NewClientChatService(serverAdapter, events, log)
	settingsSvc := NewClientSettingsService(storages.Preferences, serverAdapter, log)

	return &ClientServices{
		AuthService:     authSvc,
		ProfileService:  NewClientProfileService(serverAdapter),
		DiscoverService: NewClientDiscoverService(serverAdapter),
		ChatService:     chatSvc,
		SettingsService: settingsSvc,
		RefreshJob:      NewClientRefreshJob(authSvc, chatSvc, settingsSvc, log),
	}
}
