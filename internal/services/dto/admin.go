package dto

import "ekrafmate_backend/internal/models"

// AdminUpdateUserRequest is the administrative override: role changes and
// manual verification flips are only possible here.
type AdminUpdateUserRequest struct {
	Name       *string          `json:"name,omitempty"`
	Email      *string          `json:"email,omitempty" validate:"omitempty,email"`
	Role       *models.UserRole `json:"role,omitempty" validate:"omitempty,oneof=creative client admin"`
	IsVerified *bool            `json:"isVerified,omitempty"`
}

type ResetPasswordRequest struct {
	NewPassword string `json:"newPassword" binding:"required" validate:"min=6"`
}

type AdminUserResponse struct {
	ID         string          `json:"_id"`
	Name       string          `json:"name"`
	Username   string          `json:"username"`
	Email      string          `json:"email"`
	Role       models.UserRole `json:"role"`
	IsVerified bool            `json:"isVerified"`
}

func NewAdminUserResponse(user *models.User) *AdminUserResponse {
	return &AdminUserResponse{
		ID:         user.ID,
		Name:       user.Name,
		Username:   user.Username,
		Email:      user.Email,
		Role:       user.Role,
		IsVerified: user.IsVerified,
	}
}
