package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Claim types placed into every issued token.
const (
	// ClaimTypeSubject holds the user identifier as a decimal string.
	ClaimTypeSubject = "sub"
	// ClaimTypeEmail holds the user's email.
	ClaimTypeEmail = "email"
)

// Claim is a single typed assertion embedded in a token.
type Claim struct {
	Type  string
	Value string
}

// ClaimSet is an ordered collection of claims built once per authentication
// attempt. It must be treated as immutable after construction.
type ClaimSet []Claim

// NewUserClaimSet builds the claim set issued for user: subject id first,
// email second.
func NewUserClaimSet(user User) ClaimSet {
	return ClaimSet{
		{Type: ClaimTypeSubject, Value: strconv.FormatInt(user.UserID, 10)},
		{Type: ClaimTypeEmail, Value: user.Email},
	}
}

// Get returns the value of the first claim with the given type.
func (c ClaimSet) Get(claimType string) (string, bool) {
	for _, claim := range c {
		if claim.Type == claimType {
			return claim.Value, true
		}
	}
	return "", false
}

// TokenClaims is the decoded payload of an issued token.
//
// It embeds [jwt.RegisteredClaims] for iss/aud/exp/iat/sub and adds the
// email claim. Claims of other types are not decoded.
type TokenClaims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Token wraps a parsed JWT with convenience accessors for authentication flows.
type Token struct {
	// Token is the underlying parsed JWT.
	*jwt.Token `json:"-"`

	// Claims is the decoded payload.
	Claims TokenClaims `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID int64 `json:"-"`
}

// GetUserID parses the subject claim as a base-10 int64.
func (t *Token) GetUserID() (int64, error) {
	userIDString, err := t.Claims.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// Identity returns the caller identity carried by the token.
func (t *Token) Identity() Identity {
	return Identity{UserID: t.UserID, Email: t.Claims.Email}
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
