// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, HTTP response
// writing, HTTP client initialization, JWT token signing and validation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

var (
	// UserIDCtxKey is the key used to store the authenticated user identifier
	// (int64) in the context.
	UserIDCtxKey = contextKey("userID")

	// EmailCtxKey is the key used to store the authenticated user's email.
	EmailCtxKey = contextKey("email")

	// RawTokenCtxKey is the key under which the verified bearer token is kept
	// when token saving is enabled.
	RawTokenCtxKey = contextKey("rawToken")
)

// GetUserIDFromContext retrieves the user identifier from the context.
//
// Returns the user ID of type int64 and an ok flag:
//   - ok == true: value is found and has the correct int64 type
//   - ok == false: value is missing or has an unexpected type
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// GetEmailFromContext retrieves the authenticated user's email.
func GetEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(EmailCtxKey).(string)
	return email, ok
}

// GetRawTokenFromContext retrieves the saved bearer token, if any.
func GetRawTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(RawTokenCtxKey).(string)
	return token, ok && token != ""
}
