package utils

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-notes-auth/internal/config"
	"github.com/MKhiriev/go-notes-auth/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidSigningKey is returned when the configured signing key is
	// empty or cannot be used as HMAC key material.
	ErrInvalidSigningKey = errors.New("signing key is empty or unusable")

	// ErrInvalidSigningConfig is returned when issuer or audience is missing.
	ErrInvalidSigningConfig = errors.New("invalid signing configuration")

	// ErrInvalidTokenParams is returned for an empty claim set, a lifetime
	// below one second or a claim type that collides with a registered claim.
	ErrInvalidTokenParams = errors.New("invalid params for generating JWT token")
)

// reservedClaims are set by the signer itself and may not appear in a
// caller-supplied claim set.
var reservedClaims = []string{"iss", "aud", "exp", "iat", "nbf", "jti"}

// SignJWTToken creates a signed HMAC-SHA256 JWT carrying claims.
//
// The token includes the following registered claims in addition to the
// claim set:
//   - Issuer    (iss): settings.Issuer
//   - Audience  (aud): settings.Audience
//   - IssuedAt  (iat): the current UTC time
//   - ExpiresAt (exp): the current UTC time plus ttl
//
// exp and iat are encoded with one-second resolution, so ttl must be at least
// one second. The result is deterministic for identical inputs and clock
// value: no random token id is added.
//
// Example usage:
//
//	token, err := utils.SignJWTToken(models.NewUserClaimSet(user), 15*time.Minute, cfg.App.JWT)
func SignJWTToken(claims models.ClaimSet, ttl time.Duration, settings config.JWT) (string, error) {
	return signJWTTokenAt(claims, ttl, settings, time.Now())
}

func signJWTTokenAt(claims models.ClaimSet, ttl time.Duration, settings config.JWT, now time.Time) (string, error) {
	key, err := signingKey(settings)
	if err != nil {
		return "", err
	}

	if settings.Issuer == "" || settings.Audience == "" {
		return "", fmt.Errorf("%w: issuer and audience are required", ErrInvalidSigningConfig)
	}

	if len(claims) == 0 {
		return "", fmt.Errorf("%w: empty claim set", ErrInvalidTokenParams)
	}
	if ttl < time.Second {
		return "", fmt.Errorf("%w: token lifetime %s is below one second", ErrInvalidTokenParams, ttl)
	}

	now = now.UTC()
	payload := jwt.MapClaims{
		"iss": settings.Issuer,
		"aud": settings.Audience,
		"exp": jwt.NewNumericDate(now.Add(ttl)),
		"iat": jwt.NewNumericDate(now),
	}

	for _, claim := range claims {
		if claim.Type == "" || slices.Contains(reservedClaims, claim.Type) {
			return "", fmt.Errorf("%w: claim type %q is not allowed", ErrInvalidTokenParams, claim.Type)
		}
		if _, duplicate := payload[claim.Type]; duplicate {
			return "", fmt.Errorf("%w: duplicate claim type %q", ErrInvalidTokenParams, claim.Type)
		}
		payload[claim.Type] = claim.Value
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)
	tokenString, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return tokenString, nil
}

// ValidateAndParseJWTToken verifies tokenString against settings and
// extracts its claims.
//
// The HS256 signature is always verified with settings.SigningKey; tokens
// signed with any other algorithm are rejected. The remaining checks follow
// the validation flags:
//   - ValidateIssuer: iss must equal settings.Issuer;
//   - ValidateAudience: aud must contain settings.Audience;
//   - ValidateLifetime: exp must be present and in the future.
//
// The subject claim must hold a decimal user id.
func ValidateAndParseJWTToken(tokenString string, settings config.JWT) (models.Token, error) {
	return validateAndParseJWTTokenAt(tokenString, settings, time.Now)
}

func validateAndParseJWTTokenAt(tokenString string, settings config.JWT, now func() time.Time) (models.Token, error) {
	key, err := signingKey(settings)
	if err != nil {
		return models.Token{}, err
	}

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if settings.ValidateLifetime {
		opts = append(opts, jwt.WithExpirationRequired(), jwt.WithTimeFunc(now))
		if settings.ValidateIssuer {
			opts = append(opts, jwt.WithIssuer(settings.Issuer))
		}
		if settings.ValidateAudience {
			opts = append(opts, jwt.WithAudience(settings.Audience))
		}
	} else {
		opts = append(opts, jwt.WithoutClaimsValidation())
	}

	claims := &models.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return key, nil
	}, opts...)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if !settings.ValidateLifetime {
		if settings.ValidateIssuer && claims.Issuer != settings.Issuer {
			return models.Token{}, jwt.ErrTokenInvalidIssuer
		}
		if settings.ValidateAudience && !slices.Contains(claims.Audience, settings.Audience) {
			return models.Token{}, jwt.ErrTokenInvalidAudience
		}
	}

	if claims.Subject == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during converting subject to user id: %w", err)
	}

	return models.Token{Token: token, Claims: *claims, SignedString: tokenString, UserID: userID}, nil
}

// ParseUnverifiedClaims decodes the payload of tokenString without checking
// its signature. It is meant for clients that only need to display token
// metadata such as the expiration time; never authorize on its result.
func ParseUnverifiedClaims(tokenString string) (models.TokenClaims, error) {
	var claims models.TokenClaims
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, &claims); err != nil {
		return models.TokenClaims{}, fmt.Errorf("error decoding token: %w", err)
	}

	return claims, nil
}

func signingKey(settings config.JWT) ([]byte, error) {
	if strings.TrimSpace(settings.SigningKey) == "" {
		return nil, ErrInvalidSigningKey
	}

	return []byte(settings.SigningKey), nil
}
