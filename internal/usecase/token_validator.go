package usecase

import (
	"baby-registry/internal/pkg/jwt"
)

// TokenValidator provides the admin capability check for middleware
type TokenValidator interface {
	ValidateAdminToken(tokenString string) error
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateAdminToken(tokenString string) error {
	if _, err := t.jwtService.ValidateAdminToken(tokenString); err != nil {
		return err
	}
	return nil
}
