// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-dating-client/internal/adapter"
	"github.com/MKhiriev/go-dating-client/models"
)

type clientProfileService struct {
	adapter adapter.ServerAdapter

	mu      sync.RWMutex
	profile *models.Profile
}

func NewClientProfileService(serverAdapter adapter.ServerAdapter) ClientProfileService {
	return &clientProfileService{adapter: serverAdapter}
}

func (p *clientProfileService) Load(ctx context.Context) (models.Profile, error) {
	profile, err := p.adapter.GetProfile(ctx)
	if err != nil {
		return models.Profile{}, mapAdapterError(err)
	}

	p.set(profile)
	return profile, nil
}

func (p *clientProfileService) Update(ctx context.Context, update models.ProfileUpdate) (models.Profile, error) {
	profile, err := p.adapter.UpdateProfile(ctx, update)
	if err != nil {
		return models.Profile{}, mapAdapterError(err)
	}

	p.set(profile)
	return profile, nil
}

func (p *clientProfileService) Profile() (models.Profile, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.profile == nil {
		return models.Profile{}, false
	}
	return *p.profile, true
}

func (p *clientProfileService) set(profile models.Profile) {
	p.mu.Lock()
	p.profile = &profile
	p.mu.Unlock()
}
