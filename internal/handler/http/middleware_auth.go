package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-notes-auth/internal/logger"
	"github.com/MKhiriev/go-notes-auth/internal/service"
	"github.com/MKhiriev/go-notes-auth/internal/utils"
)

const bearerScheme = "Bearer"

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, verifies it
// via [service.AuthService.ParseToken] and stores the caller's id and email
// in the request context under [utils.UserIDCtxKey] and [utils.EmailCtxKey].
// When token saving is enabled the raw token is kept under
// [utils.RawTokenCtxKey] as well.
//
// Requests without a usable token are rejected with 401 Unauthorized.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteJSONError(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			utils.WriteJSONError(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			utils.WriteJSONError(w, service.ErrTokenIsExpiredOrInvalid.Error(), http.StatusUnauthorized)
			return
		}

		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)
		ctx = context.WithValue(ctx, utils.EmailCtxKey, token.Claims.Email)
		if h.saveToken {
			ctx = context.WithValue(ctx, utils.RawTokenCtxKey, tokenString)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the token from a header of the form
//
//	Authorization: Bearer <token>
//
// The scheme is matched case-insensitively.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	scheme, tokenString, found := strings.Cut(strings.TrimSpace(authHeader), " ")
	if !found {
		return "", ErrInvalidAuthorizationHeader
	}
	if !strings.EqualFold(scheme, bearerScheme) {
		return "", ErrUnsupportedAuthScheme
	}

	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
