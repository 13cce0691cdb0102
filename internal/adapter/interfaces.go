// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the notes-auth HTTP API.
//
// [ServerAdapter] hides the transport from the command-line client. Non-2xx
// responses are mapped to the sentinel errors in errors.go so that callers can
// use [errors.Is] (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-notes-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter talks to the notes-auth server.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	// Login and Register call it on success.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none is set.
	Token() string

	// Register creates an account and stores its access token.
	Register(ctx context.Context, req models.RegisterRequest) (models.LoginResult, error)

	// Login authenticates and stores the access token.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error)

	// Me returns the identity of the stored token.
	Me(ctx context.Context) (models.Identity, error)

	// Version returns the server version.
	Version(ctx context.Context) (string, error)
}
