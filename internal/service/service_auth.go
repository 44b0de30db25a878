package service

import (
	"context"

	"github.com/MKhiriev/go-waste-tracker/internal/config"
	"github.com/MKhiriev/go-waste-tracker/internal/logger"
	"github.com/MKhiriev/go-waste-tracker/internal/utils"
	"github.com/MKhiriev/go-waste-tracker/models"
)

// authService verifies bearer tokens issued by the hosted auth provider.
// The service never issues tokens itself.
type authService struct {
	// tokenSignKey is the HMAC secret shared with the auth provider.
	tokenSignKey string

	// tokenIssuer and tokenAudience are the expected "iss" and "aud"
	// claims. Empty values disable the respective check.
	tokenIssuer   string
	tokenAudience string

	logger *logger.Logger
}

func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenAudience: cfg.TokenAudience,
		logger:        logger,
	}
}

// ParseToken validates the signature, expiry, issuer and audience of
// tokenString and returns the decoded token with its subject as UserID.
//
// Any validation failure is normalised to ErrTokenIsExpiredOrInvalid so that
// callers do not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, a.tokenAudience)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "authService.ParseToken").Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
