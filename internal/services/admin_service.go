package services

import (
	"fmt"

	"ekrafmate_backend/internal/auth"
	"ekrafmate_backend/internal/models"
	"ekrafmate_backend/internal/repositories"
	"ekrafmate_backend/internal/services/dto"
	"ekrafmate_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AdminService interface {
	ListUsers(db *gorm.DB) ([]dto.AdminUserResponse, error)
	GetUser(db *gorm.DB, id string) (*models.User, error)
	UpdateUser(db *gorm.DB, id string, req *dto.AdminUpdateUserRequest) (*dto.AdminUserResponse, error)
	DeleteUser(db *gorm.DB, id string) error
	ResetUserPassword(db *gorm.DB, id, newPassword string) (string, error)
	ListProjects(db *gorm.DB) ([]models.Project, error)
	DeleteProject(db *gorm.DB, id string) error
}

type AdminServiceImpl struct {
	userRepo    repositories.UserRepository
	projectRepo repositories.ProjectRepository
}

func NewAdminService(userRepo repositories.UserRepository, projectRepo repositories.ProjectRepository) AdminService {
	return &AdminServiceImpl{
		userRepo:    userRepo,
		projectRepo: projectRepo,
	}
}

// ListUsers returns every marketplace account; admin accounts stay out
// of the listing.
func (s *AdminServiceImpl) ListUsers(db *gorm.DB) ([]dto.AdminUserResponse, error) {
	users, err := s.userRepo.FindByRoles(db, []models.UserRole{models.UserRoleCreative, models.UserRoleClient})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := make([]dto.AdminUserResponse, 0, len(users))
	for i := range users {
		resp = append(resp, *dto.NewAdminUserResponse(&users[i]))
	}
	return resp, nil
}

func (s *AdminServiceImpl) GetUser(db *gorm.DB, id string) (*models.User, error) {
	user, err := s.userRepo.FindByIDWithPortfolio(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

// UpdateUser is the administrative override: the only path that may
// change a role or flip the verification flag by hand.
func (s *AdminServiceImpl) UpdateUser(db *gorm.DB, id string, req *dto.AdminUpdateUserRequest) (*dto.AdminUserResponse, error) {
	user, err := s.userRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Name != nil && *req.Name != "" {
		user.Name = *req.Name
	}
	if req.Email != nil && *req.Email != "" {
		user.Email = *req.Email
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.IsVerified != nil {
		user.IsVerified = *req.IsVerified
	}

	if err := s.userRepo.Save(db, user); err != nil {
		return nil, translateUserConflict(err)
	}
	return dto.NewAdminUserResponse(user), nil
}

// DeleteUser hard-deletes the account. Projects referencing the user are
// left in place; orphaned references are tolerated.
func (s *AdminServiceImpl) DeleteUser(db *gorm.DB, id string) error {
	if err := s.userRepo.Delete(db, id); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.NewNotFoundError("user", "User not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AdminServiceImpl) ResetUserPassword(db *gorm.DB, id, newPassword string) (string, error) {
	if err := auth.ValidatePassword(newPassword); err != nil {
		return "", apperrors.NewBadRequestError(err.Error())
	}

	user, err := s.userRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return "", apperrors.NewNotFoundError("user", "User not found")
		}
		return "", apperrors.InternalError(err)
	}

	hashed, err := auth.HashPassword(newPassword)
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	user.PasswordHash = hashed

	if err := s.userRepo.Save(db, user); err != nil {
		return "", apperrors.InternalError(err)
	}
	return fmt.Sprintf("Password for user %s has been reset", user.Name), nil
}

func (s *AdminServiceImpl) ListProjects(db *gorm.DB) ([]models.Project, error) {
	projects, err := s.projectRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return projects, nil
}

func (s *AdminServiceImpl) DeleteProject(db *gorm.DB, id string) error {
	if err := s.projectRepo.Delete(db, id); err != nil {
		if apperrors.Is(err, repositories.ErrProjectNotFound) {
			return apperrors.NewNotFoundError("project", "Project not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}
