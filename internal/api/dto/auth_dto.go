package dto

import (
	"time"

	"github.com/spec-kit/jobboard-admin/internal/domain"
)

// SignupRequest payload for /signup and /admin/signup.
type SignupRequest struct {
	Name     string `json:"name" validate:"required,notblank,min=2,max=100"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// SigninRequest payload for /signin. The password is only checked for presence
// so that any mismatch is reported as invalid credentials.
type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned by signup and signin.
type AuthResponse struct {
	User      UserResponse `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
}

// NewAuthResponse builds the response from a user and its token.
func NewAuthResponse(user *domain.User, token domain.AuthToken) AuthResponse {
	return AuthResponse{User: NewUserResponse(user), Token: token.Token, ExpiresAt: token.ExpiresAt}
}
