// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

// Redirector is the channel-backed navigation sink handed to the request
// adapter. Navigate never blocks; redirects that arrive while one is still
// pending are coalesced into it.
type Redirector struct {
	ch chan string
}

func NewRedirector() *Redirector {
	return &Redirector{ch: make(chan string, 1)}
}

// Navigate implements adapter.Navigator.
func (r *Redirector) Navigate(location string) {
	select {
	case r.ch <- location:
	default:
	}
}

// Redirects delivers requested locations to the application loop.
func (r *Redirector) Redirects() <-chan string {
	return r.ch
}
