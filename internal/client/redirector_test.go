// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-dating-client/internal/adapter"
)

func TestRedirector_NavigateDoesNotBlock(t *testing.T) {
	r := NewRedirector()
	var nav adapter.Navigator = r

	nav.Navigate("/auth")
	nav.Navigate("/auth") // coalesced

	assert.Equal(t, "/auth", <-r.Redirects())
	select {
	case loc := <-r.Redirects():
		t.Fatalf("unexpected second redirect %q", loc)
	default:
	}
}
