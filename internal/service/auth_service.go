package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/KKK-90/POSTRKR-App/config"
	"github.com/KKK-90/POSTRKR-App/internal/dto"
	apperrors "github.com/KKK-90/POSTRKR-App/pkg/errors"
	"github.com/KKK-90/POSTRKR-App/pkg/jwt"
)

var (
	ErrUnknownUser    = apperrors.New(apperrors.ErrUnauthorized, "Unknown user")
	ErrSessionInvalid = apperrors.New(apperrors.ErrUnauthorized, "Unauthorized")
)

// TokenStore keeps revoked session ids. Implemented by pkg/redis and
// pkg/memstore.
type TokenStore interface {
	RevokeToken(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// AuthService allow-list login with stateless session tokens.
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.Session, error)
	// Authenticate returns the username of a valid, unrevoked token whose
	// user is still allow-listed.
	Authenticate(ctx context.Context, token string) (string, error)
	// Logout revokes token. Invalid tokens are ignored.
	Logout(ctx context.Context, token string) error
}

type authService struct {
	allowed map[string]struct{}
	jwtMgr  *jwt.Manager
	tokens  TokenStore
	logger  *zap.Logger
}

// NewAuthService creates an AuthService.
func NewAuthService(
	cfg *config.AuthConfig,
	jwtMgr *jwt.Manager,
	tokens TokenStore,
	logger *zap.Logger,
) AuthService {
	allowed := make(map[string]struct{}, len(cfg.AllowedUsers))
	for _, u := range cfg.AllowedUsers {
		allowed[strings.TrimSpace(u)] = struct{}{}
	}
	return &authService{
		allowed: allowed,
		jwtMgr:  jwtMgr,
		tokens:  tokens,
		logger:  logger,
	}
}

func (s *authService) Login(_ context.Context, req *dto.LoginRequest) (*dto.Session, error) {
	username := strings.TrimSpace(req.Username)
	if !s.isAllowed(username) {
		s.logger.Info("login rejected", zap.String("username", username))
		return nil, ErrUnknownUser
	}

	token, err := s.jwtMgr.GenerateSessionToken(username)
	if err != nil {
		s.logger.Error("sign session token failed", zap.Error(err))
		return nil, fmt.Errorf("login: %w", err)
	}

	s.logger.Info("login", zap.String("username", username))

	return &dto.Session{
		Username: username,
		Token:    token,
		MaxAge:   int(s.jwtMgr.TTL().Seconds()),
	}, nil
}

func (s *authService) Authenticate(ctx context.Context, token string) (string, error) {
	claims, err := s.jwtMgr.ParseToken(token)
	if err != nil {
		return "", ErrSessionInvalid
	}

	revoked, err := s.tokens.IsRevoked(ctx, claims.ID)
	if err != nil {
		// store outage: accept the signature alone
		s.logger.Warn("revocation check failed", zap.Error(err))
	} else if revoked {
		return "", ErrSessionInvalid
	}

	if !s.isAllowed(claims.Username()) {
		return "", ErrSessionInvalid
	}
	return claims.Username(), nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	claims, err := s.jwtMgr.ParseToken(token)
	if err != nil {
		return nil // nothing left to revoke
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if err := s.tokens.RevokeToken(ctx, claims.ID, ttl); err != nil {
		s.logger.Error("revoke session failed", zap.String("username", claims.Username()), zap.Error(err))
		return fmt.Errorf("logout: %w", err)
	}

	s.logger.Info("logout", zap.String("username", claims.Username()))
	return nil
}

func (s *authService) isAllowed(username string) bool {
	if username == "" {
		return false
	}
	_, ok := s.allowed[username]
	return ok
}
