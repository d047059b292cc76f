package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/resume-gate/internal/config"
	"github.com/MKhiriev/resume-gate/internal/logger"
	"github.com/MKhiriev/resume-gate/internal/utils"
	"github.com/MKhiriev/resume-gate/models"
)

// authService verifies admin JWTs. Tokens are minted offline with
// cmd/admintoken using the same sign key and issuer.
type authService struct {
	// tokenSignKey is the HMAC secret used to verify JWT tokens. Empty means
	// admin access is disabled.
	tokenSignKey string

	// tokenIssuer is the expected "iss" claim.
	tokenIssuer string

	logger *logger.Logger
}

func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		tokenSignKey: cfg.AdminTokenSignKey,
		tokenIssuer:  cfg.AdminTokenIssuer,
		logger:       logger,
	}
}

func (a *authService) AdminEnabled() bool {
	return a.tokenSignKey != ""
}

// ParseAdminToken validates tokenString and returns the parsed token with
// the operator name.
func (a *authService) ParseAdminToken(ctx context.Context, tokenString string) (models.Token, error) {
	if !a.AdminEnabled() {
		return models.Token{}, ErrAdminDisabled
	}

	token, err := utils.ValidateAndParseAdminToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("admin token rejected")
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidAdminToken, err)
	}

	return token, nil
}
