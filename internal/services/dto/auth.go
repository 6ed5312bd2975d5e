package dto

import "ekrafmate_backend/internal/models"

type RegisterRequest struct {
	Name     string          `json:"name" binding:"required"`
	Username string          `json:"username" binding:"required" validate:"min=3,max=30,alphanum_underscore"`
	Email    string          `json:"email" binding:"required" validate:"email"`
	Password string          `json:"password" binding:"required" validate:"min=6"`
	Role     models.UserRole `json:"role" binding:"required" validate:"is-user-role"`
}

type LoginRequest struct {
	// Identifier is a username or an email address.
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// AuthResponse is the user summary returned by login, verify and profile
// updates, always with a fresh bearer token.
type AuthResponse struct {
	ID         string          `json:"_id"`
	Name       string          `json:"name"`
	Username   string          `json:"username"`
	Email      string          `json:"email"`
	Role       models.UserRole `json:"role"`
	IsVerified bool            `json:"isVerified"`
	Token      string          `json:"token"`
	Message    string          `json:"message,omitempty"`
}

func NewAuthResponse(user *models.User, token string) *AuthResponse {
	return &AuthResponse{
		ID:         user.ID,
		Name:       user.Name,
		Username:   user.Username,
		Email:      user.Email,
		Role:       user.Role,
		IsVerified: user.IsVerified,
		Token:      token,
	}
}
