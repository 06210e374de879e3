// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"net/url"
	"strconv"
	"strings"
)

// SwipeAction is the decision recorded for a discovery candidate.
type SwipeAction string

const (
	SwipeLike SwipeAction = "like"
	SwipePass SwipeAction = "pass"
)

// Valid reports whether a is one of the known swipe actions.
func (a SwipeAction) Valid() bool {
	return a == SwipeLike || a == SwipePass
}

// Swipe is the body of POST /swipe.
type Swipe struct {
	ToUserID string      `json:"to_user_id"`
	Action   SwipeAction `json:"action"`
}

// SwipeResult tells whether the swipe produced a mutual match.
// ChatID is set only when Match is true.
type SwipeResult struct {
	Match  bool   `json:"match"`
	ChatID string `json:"chat_id,omitempty"`
}

// DiscoverFilters narrows the discovery feed. Zero values are not sent.
type DiscoverFilters struct {
	AgeMin     int
	AgeMax     int
	DistanceKm int
	Tags       []string
}

// Query encodes the non-zero filters as GET /discover query parameters.
// Tags are comma-joined into a single parameter.
func (f DiscoverFilters) Query() url.Values {
	q := url.Values{}
	if f.AgeMin > 0 {
		q.Set("age_min", strconv.Itoa(f.AgeMin))
	}
	if f.AgeMax > 0 {
		q.Set("age_max", strconv.Itoa(f.AgeMax))
	}
	if f.DistanceKm > 0 {
		q.Set("distance_km", strconv.Itoa(f.DistanceKm))
	}
	if len(f.Tags) > 0 {
		q.Set("tags", strings.Join(f.Tags, ","))
	}
	return q
}
