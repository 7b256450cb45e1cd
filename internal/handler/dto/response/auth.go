package response

import (
	"staybook/internal/usecase/commands"

	"github.com/google/uuid"
)

type LoginUser struct {
	ID   uuid.UUID `json:"id"`
	Role string    `json:"role"`
}

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresIn   int64     `json:"expires_in"`
	User        LoginUser `json:"user"`
}

func FromLoginResult(r *commands.LoginResult) LoginResponse {
	return LoginResponse{
		AccessToken: r.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int64(r.ExpiresIn.Seconds()),
		User:        LoginUser{ID: r.UserID, Role: r.Role.String()},
	}
}
