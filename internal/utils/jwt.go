package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-waste-tracker/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidTokenParams      = errors.New("invalid params for generating JWT Token")
	ErrInvalidAuthorizationHdr = errors.New("invalid authorization header")
)

// GenerateJWTToken creates a signed HMAC-SHA256 token in the shape issued by
// the hosted auth provider. The service itself never issues tokens; this is
// used by tests and local tooling.
//
//	token, err := utils.GenerateJWTToken("https://auth.local", "authenticated", "7d0f...", time.Hour, "secret")
func GenerateJWTToken(issuer, audience, userID string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || userID == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}
	if audience != "" {
		claims.Audience = jwt.ClaimStrings{audience}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, UserID: userID}, nil
}

// ValidateAndParseJWTToken verifies a bearer token of the hosted auth
// provider and extracts the user id from its subject.
//
// Validation includes the HS256 signature, expiry, and the issuer and
// audience claims when tokenIssuer and tokenAudience are not empty.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer, tokenAudience string) (models.Token, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if tokenIssuer != "" {
		opts = append(opts, jwt.WithIssuer(tokenIssuer))
	}
	if tokenAudience != "" {
		opts = append(opts, jwt.WithAudience(tokenAudience))
	}

	parsed := &models.Token{}
	token, err := jwt.ParseWithClaims(tokenString, parsed, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, opts...)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	userID, err := token.Claims.GetSubject()
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if userID == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	return models.Token{Token: token, RegisteredClaims: parsed.RegisteredClaims, SignedString: tokenString, UserID: userID}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>" header.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidAuthorizationHdr
	}
	return parts[1], nil
}
