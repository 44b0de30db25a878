package models

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a bearer token issued by the hosted auth provider.
//
// It embeds [jwt.Token] for low-level inspection and [jwt.RegisteredClaims]
// for standard claim access (subject, expiry, issuer, audience).
type Token struct {
	// Token is the underlying parsed JWT.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier taken from the "sub" claim.
	UserID string `json:"-"`
}

// GetUserID returns the "sub" claim of the token.
func (t *Token) GetUserID() (string, error) {
	userID, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting UserID from token: %w", err)
	}
	if userID == "" {
		return "", errors.New("token subject is empty")
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
