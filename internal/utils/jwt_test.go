package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	userID := "5b3a1c9e-1111-4f00-9a6b-2c1d0e9f8a7b"

	token, err := GenerateJWTToken(issuer, "authenticated", userID, time.Hour, "secret-key")

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}

	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		t.Fatal("could not cast claims to RegisteredClaims")
	}
	if claims.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, claims.Issuer)
	}
	if claims.Subject != userID {
		t.Errorf("expected subject %s, got %s", userID, claims.Subject)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		userID   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", "u", time.Hour, "key"},
		{"empty user", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", "u", 0, "key"},
		{"empty key", "iss", "u", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, "", tt.userID, tt.duration, tt.key)
			if !errors.Is(err, ErrInvalidTokenParams) {
				t.Errorf("expected ErrInvalidTokenParams, got %v", err)
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	genToken, _ := GenerateJWTToken("test-issuer", "authenticated", "user-456", 5*time.Minute, "secret-key")

	parsedToken, err := ValidateAndParseJWTToken(genToken.SignedString, "secret-key", "test-issuer", "authenticated")

	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if parsedToken.UserID != "user-456" {
		t.Errorf("expected userID user-456, got %s", parsedToken.UserID)
	}
}

func TestValidateAndParseJWTToken_SkipsEmptyIssuerAndAudience(t *testing.T) {
	genToken, _ := GenerateJWTToken("any-issuer", "", "user-1", time.Minute, "key")

	if _, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "", ""); err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	genToken, _ := GenerateJWTToken("test-issuer", "", "user-1", time.Hour, "correct-key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "wrong-key", "test-issuer", "")
	if !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
		t.Errorf("expected signature error, got %v", err)
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	genToken, _ := GenerateJWTToken("test-issuer", "", "user-1", -time.Second, "key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "test-issuer", "")
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected expired error, got %v", err)
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	genToken, _ := GenerateJWTToken("real-issuer", "", "user-1", time.Hour, "key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "fake-issuer", "")
	if !errors.Is(err, jwt.ErrTokenInvalidIssuer) {
		t.Errorf("expected issuer error, got %v", err)
	}
}

func TestValidateAndParseJWTToken_WrongAudience(t *testing.T) {
	genToken, _ := GenerateJWTToken("iss", "anon", "user-1", time.Hour, "key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "iss", "authenticated")
	if !errors.Is(err, jwt.ErrTokenInvalidAudience) {
		t.Errorf("expected audience error, got %v", err)
	}
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", "key", "iss", "")
	if err == nil {
		t.Error("expected error for malformed token string, got nil")
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{header: "bearer   abc", want: "abc"},
		{header: "", wantErr: true},
		{header: "Bearer", wantErr: true},
		{header: "Basic dXNlcjpwYXNz", wantErr: true},
		{header: "Bearer a b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAuthorizationHdr) {
					t.Errorf("expected ErrInvalidAuthorizationHdr, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
