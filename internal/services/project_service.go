package services

import (
	"context"
	"fmt"

	"ekrafmate_backend/internal/ai"
	"ekrafmate_backend/internal/models"
	"ekrafmate_backend/internal/repositories"
	"ekrafmate_backend/internal/services/dto"
	"ekrafmate_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const projectDescriptionPrompt = `Write a clear, compelling project description for a client posting on a creative talent marketplace. The description must highlight the project goal, the skills needed, and the budget if given, based on the following key points: "%s". Use professional, persuasive language so that talent is eager to apply.`

// Soft restriction for unverified clients: at most one concurrently-open
// project until the email address is confirmed.
const unverifiedOpenProjectLimit = 1

type ProjectService interface {
	Create(ctx context.Context, db *gorm.DB, ownerID string, req *dto.CreateProjectRequest) (*models.Project, error)
	ListOpen(db *gorm.DB) ([]models.Project, error)
	GetByID(db *gorm.DB, id string) (*models.Project, error)
	Update(ctx context.Context, db *gorm.DB, callerID string, callerRole models.UserRole, projectID string, req *dto.UpdateProjectRequest) (*models.Project, error)
	Delete(db *gorm.DB, callerID string, callerRole models.UserRole, projectID string) error
	Apply(db *gorm.DB, creativeID, projectID string) error
	Accept(db *gorm.DB, callerID, projectID, creativeID string) (*models.Project, error)
	Complete(db *gorm.DB, callerID, projectID string) (*models.Project, error)
	Close(db *gorm.DB, callerID, projectID string) (*models.Project, error)
	ListByOwner(db *gorm.DB, ownerID string) ([]models.Project, error)
	ListAssigned(db *gorm.DB, creativeID string) ([]models.Project, error)
	GenerateDescription(ctx context.Context, keyPoints string) (string, error)
}

type ProjectServiceImpl struct {
	projectRepo repositories.ProjectRepository
	userRepo    repositories.UserRepository
	embedder    ai.Embedder
	genAI       ai.Generator
}

func NewProjectService(
	projectRepo repositories.ProjectRepository,
	userRepo repositories.UserRepository,
	embedder ai.Embedder,
	genAI ai.Generator,
) ProjectService {
	return &ProjectServiceImpl{
		projectRepo: projectRepo,
		userRepo:    userRepo,
		embedder:    embedder,
		genAI:       genAI,
	}
}

// Create posts a new open project. The description embedding is
// generated up front; without it the project would be invisible to
// semantic search, so an embedding failure fails the create.
func (s *ProjectServiceImpl) Create(ctx context.Context, db *gorm.DB, ownerID string, req *dto.CreateProjectRequest) (*models.Project, error) {
	owner, err := s.userRepo.FindByID(db, ownerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if !owner.IsVerified {
		count, err := s.projectRepo.CountOpenByOwner(db, ownerID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		if count >= unverifiedOpenProjectLimit {
			return nil, apperrors.NewForbiddenError("Verify your account to create more than 1 open project")
		}
	}

	vec, err := s.embedder.Embed(ctx, req.Description)
	if err != nil {
		return nil, apperrors.ErrUpstream(err, "ai", "Failed to generate project embedding")
	}
	encoded, err := encodeEmbedding(vec)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	project := &models.Project{
		Title:            req.Title,
		Description:      req.Description,
		OwnerID:          ownerID,
		RequiredSkills:   req.RequiredSkills,
		Budget:           req.Budget,
		Status:           models.ProjectStatusOpen,
		ProjectEmbedding: encoded,
	}

	if err := s.projectRepo.Create(db, project); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return project, nil
}

func (s *ProjectServiceImpl) ListOpen(db *gorm.DB) ([]models.Project, error) {
	projects, err := s.projectRepo.FindOpen(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return projects, nil
}

func (s *ProjectServiceImpl) GetByID(db *gorm.DB, id string) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.NewNotFoundError("project", "Project not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return project, nil
}

// Update edits title/description/skills/budget. Owner or admin only, and
// never on a closed project. A changed description regenerates the
// embedding on write; here a failure aborts the edit so the stored
// vector cannot drift from the text.
func (s *ProjectServiceImpl) Update(ctx context.Context, db *gorm.DB, callerID string, callerRole models.UserRole, projectID string, req *dto.UpdateProjectRequest) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(db, projectID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.NewNotFoundError("project", "Project not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if project.OwnerID != callerID && callerRole != models.UserRoleAdmin {
		return nil, apperrors.NewForbiddenError("Only the project owner or an admin can edit this project")
	}
	if project.Status == models.ProjectStatusClosed {
		return nil, apperrors.ErrInvalidStatus("project", "Closed projects cannot be edited")
	}

	if req.Title != nil && *req.Title != "" {
		project.Title = *req.Title
	}
	if req.RequiredSkills != nil {
		project.RequiredSkills = req.RequiredSkills
	}
	if req.Budget != nil {
		project.Budget = req.Budget
	}

	descriptionChanged := req.Description != nil && *req.Description != project.Description
	if req.Description != nil && *req.Description != "" {
		project.Description = *req.Description
	}

	if descriptionChanged {
		vec, err := s.embedder.Embed(ctx, project.Description)
		if err != nil {
			return nil, apperrors.ErrUpstream(err, "ai", "Failed to regenerate project embedding")
		}
		encoded, err := encodeEmbedding(vec)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		project.ProjectEmbedding = encoded
	}

	if err := s.projectRepo.Save(db, project); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return project, nil
}

// Delete removes a project permanently. No soft-delete or audit trail.
func (s *ProjectServiceImpl) Delete(db *gorm.DB, callerID string, callerRole models.UserRole, projectID string) error {
	project, err := s.projectRepo.FindByID(db, projectID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProjectNotFound) {
			return apperrors.NewNotFoundError("project", "Project not found")
		}
		return apperrors.InternalError(err)
	}

	if project.OwnerID != callerID && callerRole != models.UserRoleAdmin {
		return apperrors.NewForbiddenError("Only the project owner or an admin can delete this project")
	}

	if err := s.projectRepo.Delete(db, projectID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// Apply appends a creative to the applicants set of an open project.
// Applying twice is rejected.
func (s *ProjectServiceImpl) Apply(db *gorm.DB, creativeID, projectID string) error {
	project, err := s.projectRepo.FindByID(db, projectID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProjectNotFound) {
			return apperrors.NewNotFoundError("project", "Project not found")
		}
		return apperrors.InternalError(err)
	}

	if project.Status != models.ProjectStatusOpen {
		return apperrors.ErrInvalidStatus("project", "Applications are only accepted while the project is open")
	}

	already, err := s.projectRepo.HasApplicant(db, projectID, creativeID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if already {
		return apperrors.ErrInvalidOperation("project", "You have already applied to this project")
	}

	creative, err := s.userRepo.FindByID(db, creativeID)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.projectRepo.AddApplicant(db, project, creative); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// Accept performs open -> in_progress: the owner picks one applicant,
// who becomes the assigned creative exactly once. The conditional update
// in the repository guarantees only one of two racing accepts wins.
func (s *ProjectServiceImpl) Accept(db *gorm.DB, callerID, projectID, creativeID string) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(db, projectID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.NewNotFoundError("project", "Project not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if project.OwnerID != callerID {
		return nil, apperrors.NewForbiddenError("Only the project owner can accept an applicant")
	}
	if project.Status != models.ProjectStatusOpen {
		return nil, apperrors.ErrInvalidStatus("project", "A creative can only be accepted while the project is open")
	}

	isApplicant, err := s.projectRepo.HasApplicant(db, projectID, creativeID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !isApplicant {
		return nil, apperrors.ErrInvalidOperation("project", "This creative has not applied to the project")
	}

	if err := s.projectRepo.AssignCreative(db, projectID, creativeID); err != nil {
		if apperrors.Is(err, repositories.ErrTransitionConflict) {
			return nil, apperrors.ErrInvalidStatus("project", "A creative can only be accepted while the project is open")
		}
		return nil, apperrors.InternalError(err)
	}

	return s.GetByID(db, projectID)
}

// Complete performs in_progress -> pending_approval, by the assigned
// creative only.
func (s *ProjectServiceImpl) Complete(db *gorm.DB, callerID, projectID string) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(db, projectID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.NewNotFoundError("project", "Project not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if project.CreativeID == nil || *project.CreativeID != callerID {
		return nil, apperrors.NewForbiddenError("Only the assigned creative can mark this project complete")
	}
	if project.Status != models.ProjectStatusInProgress {
		return nil, apperrors.ErrInvalidStatus("project", "Only an in-progress project can be marked complete")
	}

	if err := s.projectRepo.TransitionStatus(db, projectID, models.ProjectStatusInProgress, models.ProjectStatusPendingApproval); err != nil {
		if apperrors.Is(err, repositories.ErrTransitionConflict) {
			return nil, apperrors.ErrInvalidStatus("project", "Only an in-progress project can be marked complete")
		}
		return nil, apperrors.InternalError(err)
	}

	return s.GetByID(db, projectID)
}

// Close performs pending_approval -> closed, the owner's approval of the
// delivered work. Closed is terminal.
func (s *ProjectServiceImpl) Close(db *gorm.DB, callerID, projectID string) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(db, projectID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.NewNotFoundError("project", "Project not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if project.OwnerID != callerID {
		return nil, apperrors.NewForbiddenError("Only the project owner can close this project")
	}
	if project.Status != models.ProjectStatusPendingApproval {
		return nil, apperrors.ErrInvalidStatus("project", "Only a project pending approval can be closed")
	}

	if err := s.projectRepo.TransitionStatus(db, projectID, models.ProjectStatusPendingApproval, models.ProjectStatusClosed); err != nil {
		if apperrors.Is(err, repositories.ErrTransitionConflict) {
			return nil, apperrors.ErrInvalidStatus("project", "Only a project pending approval can be closed")
		}
		return nil, apperrors.InternalError(err)
	}

	return s.GetByID(db, projectID)
}

func (s *ProjectServiceImpl) ListByOwner(db *gorm.DB, ownerID string) ([]models.Project, error) {
	projects, err := s.projectRepo.FindByOwner(db, ownerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return projects, nil
}

func (s *ProjectServiceImpl) ListAssigned(db *gorm.DB, creativeID string) ([]models.Project, error) {
	projects, err := s.projectRepo.FindByCreative(db, creativeID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return projects, nil
}

func (s *ProjectServiceImpl) GenerateDescription(ctx context.Context, keyPoints string) (string, error) {
	prompt := fmt.Sprintf(projectDescriptionPrompt, keyPoints)

	text, err := s.genAI.Generate(ctx, prompt, ai.DefaultGenerationConfig())
	if err != nil {
		return "", apperrors.ErrUpstream(err, "ai", "Failed to generate project description from AI model")
	}
	return text, nil
}
