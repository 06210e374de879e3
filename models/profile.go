// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LookingFor enumerates the relationship goals a user can advertise.
type LookingFor string

const (
	LookingForFriendship LookingFor = "friendship"
	LookingForDating     LookingFor = "dating"
	LookingForLongTerm   LookingFor = "long_term"
)

// Photo is a single profile picture.
type Photo struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	IsPrimary bool   `json:"is_primary"`
}

// Location is the coarse position a profile is shown at.
type Location struct {
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
	City string  `json:"city"`
}

// Preferences holds the discovery constraints a user sets for candidates.
type Preferences struct {
	AgeMin     int `json:"age_min"`
	AgeMax     int `json:"age_max"`
	DistanceKm int `json:"distance_km"`
}

// Profile is the public card of a user as returned by /auth/me,
// /profiles/me and the discovery feed.
type Profile struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Age         int          `json:"age"`
	Bio         string       `json:"bio,omitempty"`
	Photos      []Photo      `json:"photos"`
	Location    Location     `json:"location"`
	Tags        []string     `json:"tags"`
	LookingFor  []LookingFor `json:"looking_for"`
	Preferences Preferences  `json:"preferences"`
}

// PrimaryPhoto returns the photo flagged as primary, falling back to the
// first one. ok is false when the profile has no photos.
func (p Profile) PrimaryPhoto() (Photo, bool) {
	for _, photo := range p.Photos {
		if photo.IsPrimary {
			return photo, true
		}
	}
	if len(p.Photos) > 0 {
		return p.Photos[0], true
	}
	return Photo{}, false
}

// ProfileUpdate is a partial profile sent with PATCH /profiles/me.
// Nil fields are omitted from the request body and left unchanged.
type ProfileUpdate struct {
	Name        *string      `json:"name,omitempty"`
	Age         *int         `json:"age,omitempty"`
	Bio         *string      `json:"bio,omitempty"`
	Photos      []Photo      `json:"photos,omitempty"`
	Location    *Location    `json:"location,omitempty"`
	Tags        []string     `json:"tags,omitempty"`
	LookingFor  []LookingFor `json:"looking_for,omitempty"`
	Preferences *Preferences `json:"preferences,omitempty"`
}
