package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/bank-ledger-service/internal/auth"
	"github.com/spec-kit/bank-ledger-service/internal/config"
	apperrors "github.com/spec-kit/bank-ledger-service/pkg/util"
)

// AuthService coordinates the login flow: identity verification followed by
// credential issuance. It keeps no session state; the signed token is the
// only artifact of a successful login.
type AuthService struct {
	identity  auth.IdentityVerifier
	tokenMgr  *auth.TokenManager
	accountID string
	logger    *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, identity auth.IdentityVerifier, logger *zap.Logger) *AuthService {
	return &AuthService{
		identity:  identity,
		tokenMgr:  auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTLMinutes),
		accountID: cfg.Ledger.AccountID,
		logger:    logger,
	}
}

// IssueCredential verifies the pair and returns a signed, time-bounded token.
// A failed verification yields the same error regardless of which field was
// wrong.
func (s *AuthService) IssueCredential(_ context.Context, username, password string) (string, time.Time, error) {
	if !s.identity.Verify(username, password) {
		s.logger.Info("login rejected", zap.String("username", username))
		return "", time.Time{}, apperrors.NewInvalidCredentials()
	}

	token, expiresAt, err := s.tokenMgr.GenerateToken(username, s.accountID)
	if err != nil {
		return "", time.Time{}, apperrors.NewInternalError(err)
	}

	s.logger.Info("credential issued",
		zap.String("username", username),
		zap.Time("expires_at", expiresAt),
	)
	return token, expiresAt, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
