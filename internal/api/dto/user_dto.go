package dto

import (
	"time"

	"github.com/spec-kit/jobboard-admin/internal/domain"
)

// CreateUserRequest payload for admin user creation.
type CreateUserRequest struct {
	Name     string      `json:"name" validate:"required,notblank,min=2,max=100"`
	Email    string      `json:"email" validate:"required,email,max=254"`
	Password string      `json:"password" validate:"required,min=6,max=72"`
	Role     domain.Role `json:"role" validate:"omitempty,oneof=user admin"`
}

// UpdateUserStatusRequest payload for block/unblock.
type UpdateUserStatusRequest struct {
	Blocked *bool `json:"blocked" validate:"required"`
}

// UserResponse is the public view of a user; the password hash is never exposed.
type UserResponse struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      domain.Role `json:"role"`
	Blocked   bool        `json:"blocked"`
	CreatedAt time.Time   `json:"createdAt"`
}

// NewUserResponse maps a domain user.
func NewUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Blocked:   u.Blocked,
		CreatedAt: u.CreatedAt,
	}
}

// NewUserList maps a slice of users.
func NewUserList(users []domain.User) []UserResponse {
	items := make([]UserResponse, 0, len(users))
	for i := range users {
		items = append(items, NewUserResponse(&users[i]))
	}
	return items
}
