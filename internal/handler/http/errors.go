// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header has no
	// space separating the scheme from the token.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrUnsupportedAuthScheme is returned when the scheme is not "Bearer".
	ErrUnsupportedAuthScheme = errors.New("unsupported `Authorization` scheme")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)

// ErrInvalidJSON is written back when a request body cannot be decoded.
var ErrInvalidJSON = errors.New("invalid JSON was passed")

// ErrRequestTooLarge is written back when a request body exceeds the size limit.
var ErrRequestTooLarge = errors.New("request body is too large")
