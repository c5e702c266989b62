package usecase

//go:generate mockgen -source=token_validator.go -destination=../../tests/mock/usecase/token_validator.go -package=usecasemock

import (
	"cashdrawer-api/internal/pkg/jwt"

	"github.com/google/uuid"
)

// Identity is the caller resolved from an access token. MerchantID is uuid.Nil
// for tokens issued outside a merchant context.
type Identity struct {
	CollaboratorID uuid.UUID
	MerchantID     uuid.UUID
	Role           string
}

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (Identity, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (Identity, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return Identity{}, err
	}
	return Identity{
		CollaboratorID: claims.CollaboratorID,
		MerchantID:     claims.MerchantID,
		Role:           claims.Role,
	}, nil
}
