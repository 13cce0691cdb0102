package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-notes-auth/internal/config"
	"github.com/MKhiriev/go-notes-auth/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSettings() config.JWT {
	return config.JWT{
		Issuer:           "notes-api",
		Audience:         "notes-web",
		SigningKey:       "0123456789abcdef0123456789abcdef",
		AccessTokenTTL:   time.Minute,
		RefreshTokenTTL:  2 * time.Minute,
		ValidateIssuer:   true,
		ValidateAudience: true,
		ValidateLifetime: true,
	}
}

func testClaims() models.ClaimSet {
	return models.NewUserClaimSet(models.User{UserID: 7, Email: "a@b.com"})
}

func TestSignJWTToken_Success(t *testing.T) {
	settings := testSettings()

	signed, err := SignJWTToken(testClaims(), time.Minute, settings)
	require.NoError(t, err)
	assert.Len(t, strings.Split(signed, "."), 3, "expected compact header.payload.signature")

	token, err := ValidateAndParseJWTToken(signed, settings)
	require.NoError(t, err)

	assert.Equal(t, int64(7), token.UserID)
	assert.Equal(t, "a@b.com", token.Claims.Email)
	assert.Equal(t, "notes-api", token.Claims.Issuer)
	assert.Equal(t, jwt.ClaimStrings{"notes-web"}, token.Claims.Audience)
	require.NotNil(t, token.Claims.ExpiresAt)
	require.NotNil(t, token.Claims.IssuedAt)
	assert.True(t, token.Claims.ExpiresAt.After(token.Claims.IssuedAt.Time))
	assert.Equal(t, signed, token.String())
	assert.Equal(t, jwt.SigningMethodHS256.Alg(), token.Method.Alg())
}

func TestSignJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		claims   models.ClaimSet
		ttl      time.Duration
		settings func(config.JWT) config.JWT
		wantErr  error
	}{
		{
			name:     "empty key",
			claims:   testClaims(),
			ttl:      time.Minute,
			settings: func(s config.JWT) config.JWT { s.SigningKey = ""; return s },
			wantErr:  ErrInvalidSigningKey,
		},
		{
			name:     "blank key",
			claims:   testClaims(),
			ttl:      time.Minute,
			settings: func(s config.JWT) config.JWT { s.SigningKey = "   "; return s },
			wantErr:  ErrInvalidSigningKey,
		},
		{
			name:     "empty issuer",
			claims:   testClaims(),
			ttl:      time.Minute,
			settings: func(s config.JWT) config.JWT { s.Issuer = ""; return s },
			wantErr:  ErrInvalidSigningConfig,
		},
		{
			name:     "empty audience",
			claims:   testClaims(),
			ttl:      time.Minute,
			settings: func(s config.JWT) config.JWT { s.Audience = ""; return s },
			wantErr:  ErrInvalidSigningConfig,
		},
		{
			name:    "empty claim set",
			claims:  models.ClaimSet{},
			ttl:     time.Minute,
			wantErr: ErrInvalidTokenParams,
		},
		{
			name:    "zero ttl",
			claims:  testClaims(),
			ttl:     0,
			wantErr: ErrInvalidTokenParams,
		},
		{
			name:    "sub-second ttl",
			claims:  testClaims(),
			ttl:     500 * time.Millisecond,
			wantErr: ErrInvalidTokenParams,
		},
		{
			name:    "reserved claim",
			claims:  models.ClaimSet{{Type: "exp", Value: "0"}},
			ttl:     time.Minute,
			wantErr: ErrInvalidTokenParams,
		},
		{
			name:    "duplicate claim",
			claims:  models.ClaimSet{{Type: "email", Value: "a"}, {Type: "email", Value: "b"}},
			ttl:     time.Minute,
			wantErr: ErrInvalidTokenParams,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := testSettings()
			if tt.settings != nil {
				settings = tt.settings(settings)
			}

			signed, err := SignJWTToken(tt.claims, tt.ttl, settings)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, signed)
		})
	}
}

func TestSignJWTToken_DeterministicForSameClock(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	first, err := signJWTTokenAt(testClaims(), time.Minute, testSettings(), now)
	require.NoError(t, err)
	second, err := signJWTTokenAt(testClaims(), time.Minute, testSettings(), now)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSignJWTToken_DifferentInstantsDiffer(t *testing.T) {
	settings := testSettings()
	settings.ValidateLifetime = false
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	first, err := signJWTTokenAt(testClaims(), time.Minute, settings, now)
	require.NoError(t, err)
	second, err := signJWTTokenAt(testClaims(), time.Minute, settings, now.Add(3*time.Second))
	require.NoError(t, err)

	firstToken, err := ValidateAndParseJWTToken(first, settings)
	require.NoError(t, err)
	secondToken, err := ValidateAndParseJWTToken(second, settings)
	require.NoError(t, err)

	assert.NotEqual(t, firstToken.Claims.ExpiresAt.Unix(), secondToken.Claims.ExpiresAt.Unix())
	assert.NotEqual(t, signatureOf(first), signatureOf(second))
}

func TestSignJWTToken_ExpirationIsIssuancePlusTTL(t *testing.T) {
	settings := testSettings()
	settings.ValidateLifetime = false
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	signed, err := signJWTTokenAt(testClaims(), 90*time.Second, settings, now)
	require.NoError(t, err)

	token, err := ValidateAndParseJWTToken(signed, settings)
	require.NoError(t, err)
	assert.Equal(t, now.Unix(), token.Claims.IssuedAt.Unix())
	assert.Equal(t, now.Add(90*time.Second).Unix(), token.Claims.ExpiresAt.Unix())
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	settings := testSettings()
	signed, err := SignJWTToken(testClaims(), time.Hour, settings)
	require.NoError(t, err)

	other := settings
	other.SigningKey = "another-key-another-key-another-k"

	_, err = ValidateAndParseJWTToken(signed, other)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestValidateAndParseJWTToken_TamperedPayload(t *testing.T) {
	settings := testSettings()
	signed, err := SignJWTToken(testClaims(), time.Hour, settings)
	require.NoError(t, err)

	forged, err := SignJWTToken(models.NewUserClaimSet(models.User{UserID: 1, Email: "root@b.com"}), time.Hour, settings)
	require.NoError(t, err)

	parts := strings.Split(signed, ".")
	forgedParts := strings.Split(forged, ".")
	tampered := parts[0] + "." + forgedParts[1] + "." + parts[2]

	_, err = ValidateAndParseJWTToken(tampered, settings)
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	settings := testSettings()
	signed, err := signJWTTokenAt(testClaims(), time.Minute, settings, time.Now().Add(-time.Hour))
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(signed, settings)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	settings.ValidateLifetime = false
	token, err := ValidateAndParseJWTToken(signed, settings)
	require.NoError(t, err, "lifetime validation is disabled")
	assert.Equal(t, int64(7), token.UserID)
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	for _, lifetime := range []bool{true, false} {
		settings := testSettings()
		settings.ValidateLifetime = lifetime

		signed, err := SignJWTToken(testClaims(), time.Hour, settings)
		require.NoError(t, err)

		verifier := settings
		verifier.Issuer = "fake-issuer"

		_, err = ValidateAndParseJWTToken(signed, verifier)
		assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer, "lifetime=%v", lifetime)

		verifier.ValidateIssuer = false
		_, err = ValidateAndParseJWTToken(signed, verifier)
		assert.NoError(t, err, "issuer validation disabled, lifetime=%v", lifetime)
	}
}

func TestValidateAndParseJWTToken_WrongAudience(t *testing.T) {
	for _, lifetime := range []bool{true, false} {
		settings := testSettings()
		settings.ValidateLifetime = lifetime

		signed, err := SignJWTToken(testClaims(), time.Hour, settings)
		require.NoError(t, err)

		verifier := settings
		verifier.Audience = "someone-else"

		_, err = ValidateAndParseJWTToken(signed, verifier)
		assert.ErrorIs(t, err, jwt.ErrTokenInvalidAudience, "lifetime=%v", lifetime)

		verifier.ValidateAudience = false
		_, err = ValidateAndParseJWTToken(signed, verifier)
		assert.NoError(t, err, "audience validation disabled, lifetime=%v", lifetime)
	}
}

func TestValidateAndParseJWTToken_RejectsOtherAlgorithms(t *testing.T) {
	settings := testSettings()
	token := jwt.NewWithClaims(jwt.SigningMethodHS384, jwt.MapClaims{
		"sub": "7",
		"iss": settings.Issuer,
		"aud": settings.Audience,
		"exp": jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(settings.SigningKey))
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(signed, settings)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestValidateAndParseJWTToken_NonNumericSubject(t *testing.T) {
	settings := testSettings()
	signed, err := SignJWTToken(models.ClaimSet{{Type: "sub", Value: "alice"}}, time.Hour, settings)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(signed, settings)
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_EmptyKey(t *testing.T) {
	settings := testSettings()
	signed, err := SignJWTToken(testClaims(), time.Hour, settings)
	require.NoError(t, err)

	settings.SigningKey = ""
	_, err = ValidateAndParseJWTToken(signed, settings)
	assert.ErrorIs(t, err, ErrInvalidSigningKey)
}

func TestParseUnverifiedClaims(t *testing.T) {
	signed, err := SignJWTToken(testClaims(), time.Hour, testSettings())
	require.NoError(t, err)

	claims, err := ParseUnverifiedClaims(signed)
	require.NoError(t, err)
	assert.Equal(t, "7", claims.Subject)
	assert.Equal(t, "a@b.com", claims.Email)

	_, err = ParseUnverifiedClaims("not-a-token")
	assert.Error(t, err)
}

func signatureOf(token string) string {
	parts := strings.Split(token, ".")
	return parts[len(parts)-1]
}
