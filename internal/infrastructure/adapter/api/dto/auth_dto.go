package dto

import (
	"time"

	"github.com/tonsuimining/platform/internal/domain/entity"
)

// RegisterRequest represents the API request for account registration
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest represents the API request for login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse represents an account in API responses.
// The password hash never leaves the server.
type UserResponse struct {
	ID        uint64    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	Balance   string    `json:"balance"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthResponse carries the bearer token and the authenticated account
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// NewUserResponse maps a user entity to its API shape
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Status:    string(u.Status),
		Balance:   u.GetBalance(),
		CreatedAt: u.CreatedAt,
	}
}
