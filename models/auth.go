// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoginRequest carries the credentials supplied by the caller.
// It is transient and never persisted.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest carries the data needed to create a new account.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is returned to the caller after a successful authentication.
type LoginResult struct {
	// Message is a human readable greeting, e.g. "Welcome a@b.com".
	Message string `json:"message"`

	// AccessToken is the short-lived signed token.
	AccessToken string `json:"accessToken"`

	// RefreshToken is the longer-lived signed token carrying the same claims.
	RefreshToken string `json:"refreshToken"`
}

// Identity is the caller identity recovered from a verified access token.
type Identity struct {
	UserID int64  `json:"id"`
	Email  string `json:"email"`
}
