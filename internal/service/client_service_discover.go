// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/go-dating-client/internal/adapter"
	"github.com/MKhiriev/go-dating-client/models"
)

type clientDiscoverService struct {
	adapter adapter.ServerAdapter

	mu       sync.RWMutex
	profiles []models.Profile
	current  int
	filters  models.DiscoverFilters
}

func NewClientDiscoverService(serverAdapter adapter.ServerAdapter) ClientDiscoverService {
	return &clientDiscoverService{adapter: serverAdapter}
}

func (d *clientDiscoverService) Load(ctx context.Context) error {
	d.mu.RLock()
	filters := d.filters
	d.mu.RUnlock()

	profiles, err := d.adapter.Discover(ctx, filters)
	if err != nil {
		return mapAdapterError(err)
	}

	d.mu.Lock()
	d.profiles = profiles
	d.current = 0
	d.mu.Unlock()

	return nil
}

func (d *clientDiscoverService) Profiles() []models.Profile {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Clone(d.profiles)
}

func (d *clientDiscoverService) Current() (models.Profile, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if len(d.profiles) == 0 {
		return models.Profile{}, ErrNoProfiles
	}
	return d.profiles[d.current], nil
}

func (d *clientDiscoverService) Swipe(ctx context.Context, action models.SwipeAction) (models.SwipeResult, error) {
	if !action.Valid() {
		return models.SwipeResult{}, fmt.Errorf("%w: %q", ErrInvalidSwipeAction, action)
	}

	candidate, err := d.Current()
	if err != nil {
		return models.SwipeResult{}, err
	}

	result, err := d.adapter.Swipe(ctx, models.Swipe{ToUserID: candidate.ID, Action: action})
	if err != nil {
		return models.SwipeResult{}, mapAdapterError(err)
	}

	d.advance(candidate.ID)
	return result, nil
}

func (d *clientDiscoverService) SetFilters(ctx context.Context, filters models.DiscoverFilters) error {
	filters.Tags = slices.Clone(filters.Tags)

	d.mu.Lock()
	d.filters = filters
	d.mu.Unlock()

	return d.Load(ctx)
}

func (d *clientDiscoverService) Filters() models.DiscoverFilters {
	d.mu.RLock()
	defer d.mu.RUnlock()

	f := d.filters
	f.Tags = slices.Clone(f.Tags)
	return f
}

// advance moves past swipedID, wrapping to the first candidate. A reload
// that happened during the swipe request already rewound the feed.
func (d *clientDiscoverService) advance(swipedID string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(d.profiles) == 0 || d.profiles[d.current].ID != swipedID {
		return
	}
	if d.current < len(d.profiles)-1 {
		d.current++
		return
	}
	d.current = 0
}
