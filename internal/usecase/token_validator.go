package usecase

import (
	"staybook/internal/domain/user"
	"staybook/internal/pkg/jwt"

	"github.com/google/uuid"
)

// Principal is the authenticated admin behind a request.
type Principal struct {
	UserID uuid.UUID
	Role   user.Role
}

type TokenValidator interface {
	// Authenticate rejects expired, forged and unknown-role tokens alike.
	Authenticate(token string) (Principal, error)
}

type jwtTokenValidator struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &jwtTokenValidator{jwtService: jwtService}
}

func (v *jwtTokenValidator) Authenticate(token string) (Principal, error) {
	claims, err := v.jwtService.ValidateToken(token)
	if err != nil {
		return Principal{}, err
	}
	role, err := user.NewRole(claims.Role)
	if err != nil {
		return Principal{}, err
	}
	return Principal{UserID: claims.UserID, Role: role}, nil
}
