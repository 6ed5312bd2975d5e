package services

import (
	"context"
	"fmt"

	"ekrafmate_backend/internal/ai"
	"ekrafmate_backend/internal/auth"
	"ekrafmate_backend/internal/logger"
	"ekrafmate_backend/internal/models"
	"ekrafmate_backend/internal/repositories"
	"ekrafmate_backend/internal/services/dto"
	"ekrafmate_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const profileDescriptionPrompt = `Write an engaging, professional profile description for a creative professional in at most 150 words. The description must highlight skills and experience based on the following key points: "%s". Use a confident, professional tone.`

type UserService interface {
	GetProfile(db *gorm.DB, userID string) (*dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
	ChangePassword(db *gorm.DB, userID string, req *dto.ChangePasswordRequest) error
	GenerateDescription(ctx context.Context, keyPoints string) (string, error)
	GetPublicProfile(db *gorm.DB, id string) (*models.User, error)
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
	embedder ai.Embedder
	genAI    ai.Generator
}

func NewUserService(userRepo repositories.UserRepository, embedder ai.Embedder, genAI ai.Generator) UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
		embedder: embedder,
		genAI:    genAI,
	}
}

func (s *UserServiceImpl) GetProfile(db *gorm.DB, userID string) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewProfileResponse(user), nil
}

// UpdateProfile applies partial edits. The email address is frozen once
// the account is verified; a changed description refreshes the profile
// embedding on write, and an embedding failure does not block the save.
func (s *UserServiceImpl) UpdateProfile(ctx context.Context, db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Email != nil && *req.Email != user.Email {
		if user.IsVerified {
			return nil, apperrors.ErrInvalidOperation("user", "Email cannot be changed after the account is verified")
		}
		user.Email = *req.Email
	}

	if req.Name != nil && *req.Name != "" {
		user.Name = *req.Name
	}
	if req.Headline != nil {
		user.Headline = *req.Headline
	}
	if req.Skills != nil {
		user.Skills = req.Skills
	}

	descriptionChanged := req.Description != nil && *req.Description != user.Description
	if req.Description != nil {
		user.Description = *req.Description
	}

	if descriptionChanged {
		if vec, embErr := s.embedder.Embed(ctx, user.Description); embErr != nil {
			// Keep the save; the embedding refreshes on the next edit.
			logger.CtxWarn(ctx, "profile embedding generation failed", "user_id", user.ID, "error", embErr.Error())
		} else if encoded, encErr := encodeEmbedding(vec); encErr == nil {
			user.ProfileEmbedding = encoded
		}
	}

	if err := s.userRepo.Save(db, user); err != nil {
		return nil, translateUserConflict(err)
	}

	token, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewProfileResponse(user)
	resp.Token = token
	return resp, nil
}

func (s *UserServiceImpl) ChangePassword(db *gorm.DB, userID string, req *dto.ChangePasswordRequest) error {
	if req.NewPassword != req.ConfirmPassword {
		return apperrors.NewBadRequestError("New password and confirmation do not match")
	}

	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.NewNotFoundError("user", "User not found")
		}
		return apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		return apperrors.NewUnauthorizedError("Current password is incorrect")
	}

	hashed, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}
	user.PasswordHash = hashed

	if err := s.userRepo.Save(db, user); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// GenerateDescription drafts profile text from user-supplied key points.
func (s *UserServiceImpl) GenerateDescription(ctx context.Context, keyPoints string) (string, error) {
	prompt := fmt.Sprintf(profileDescriptionPrompt, keyPoints)

	text, err := s.genAI.Generate(ctx, prompt, ai.DefaultGenerationConfig())
	if err != nil {
		return "", apperrors.ErrUpstream(err, "ai", "Failed to generate description from AI model")
	}
	return text, nil
}

// GetPublicProfile returns the profile visible to anyone; password hash
// and embedding never serialize.
func (s *UserServiceImpl) GetPublicProfile(db *gorm.DB, id string) (*models.User, error) {
	user, err := s.userRepo.FindByIDWithPortfolio(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}
