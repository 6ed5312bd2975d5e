package dto

import "ekrafmate_backend/internal/models"

// UpdateProfileRequest uses pointer fields so "absent" and "set to empty"
// can be told apart; absent fields keep their stored value.
type UpdateProfileRequest struct {
	Name        *string  `json:"name,omitempty"`
	Email       *string  `json:"email,omitempty" validate:"omitempty,email"`
	Headline    *string  `json:"headline,omitempty"`
	Description *string  `json:"description,omitempty"`
	Skills      []string `json:"skills,omitempty"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required" validate:"min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

type GenerateDescriptionRequest struct {
	KeyPoints string `json:"keyPoints" binding:"required"`
}

type GenerateDescriptionResponse struct {
	Description string `json:"description"`
}

type ProfileResponse struct {
	ID          string          `json:"_id"`
	Name        string          `json:"name"`
	Username    string          `json:"username"`
	Email       string          `json:"email"`
	Role        models.UserRole `json:"role"`
	IsVerified  bool            `json:"isVerified"`
	Headline    string          `json:"headline"`
	Description string          `json:"description"`
	Skills      []string        `json:"skills"`
	// Token is only set on responses that refresh the session (profile
	// update), matching the original API.
	Token string `json:"token,omitempty"`
}

func NewProfileResponse(user *models.User) *ProfileResponse {
	return &ProfileResponse{
		ID:          user.ID,
		Name:        user.Name,
		Username:    user.Username,
		Email:       user.Email,
		Role:        user.Role,
		IsVerified:  user.IsVerified,
		Headline:    user.Headline,
		Description: user.Description,
		Skills:      user.Skills,
	}
}
