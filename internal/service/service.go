package service

import (
	"go.uber.org/zap"

	"github.com/KKK-90/POSTRKR-App/config"
	"github.com/KKK-90/POSTRKR-App/internal/repository"
	"github.com/KKK-90/POSTRKR-App/pkg/jwt"
)

// Service aggregates every service.
type Service struct {
	Auth     AuthService
	Location LocationService
	Transfer TransferService
}

// NewService creates the Service aggregate.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	tokens TokenStore,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:     NewAuthService(&cfg.Auth, jwtMgr, tokens, logger),
		Location: NewLocationService(repo, logger),
		Transfer: NewTransferService(repo, logger),
	}
}
