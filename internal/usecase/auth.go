package usecase

import (
	"context"
	"errors"
	"time"

	"baby-registry/internal/pkg/config"
	"baby-registry/internal/pkg/jwt"
	"baby-registry/internal/pkg/password"
)

var (
	ErrInvalidCredentials = errors.New("invalid password")
	ErrTokenGeneration    = errors.New("token generation failed")
	ErrTokenValidation    = errors.New("token validation failed")
)

type AdminSession struct {
	Token     string
	ExpiresAt time.Time
}

type AuthUseCase interface {
	Login(ctx context.Context, plainPassword string) (*AdminSession, error)
}

type authUseCaseImpl struct {
	passwordHash string
	jwtService   *jwt.Service
}

func NewAuthUseCase(cfg config.AdminConfig, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		passwordHash: cfg.PasswordHash,
		jwtService:   jwtService,
	}
}

func (a *authUseCaseImpl) Login(_ context.Context, plainPassword string) (*AdminSession, error) {
	if err := password.Verify(a.passwordHash, plainPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := a.jwtService.IssueAdminToken()
	if err != nil {
		return nil, ErrTokenGeneration
	}
	return &AdminSession{Token: token, ExpiresAt: expiresAt}, nil
}
