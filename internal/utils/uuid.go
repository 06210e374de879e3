// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "github.com/google/uuid"

// UUIDGenerator hands out time-ordered string ids, used as subscription
// handles by the event stream. The zero value is ready to use.
type UUIDGenerator struct {
	newV7 func() (uuid.UUID, error)
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{newV7: uuid.NewV7}
}

// Generate returns a UUIDv7 string. If the clock-based generator fails a
// random v4 id is returned instead; ids stay unique, only ordering is lost.
func (g *UUIDGenerator) Generate() string {
	newV7 := g.newV7
	if newV7 == nil {
		newV7 = uuid.NewV7
	}

	id, err := newV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
