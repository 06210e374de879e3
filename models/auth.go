// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials is the body of POST /auth/login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the body of POST /auth/register.
type Registration struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginResponse carries the issued access token and the logged in user.
type LoginResponse struct {
	Access string  `json:"access"`
	User   Profile `json:"user"`
}

// RegisterResponse identifies the freshly created account.
type RegisterResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// RefreshResponse is returned by POST /auth/refresh.
type RefreshResponse struct {
	Access string `json:"access"`
}
