package repositories

import (
	"errors"

	"ekrafmate_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrProjectNotFound = errors.New("project not found")

	// ErrTransitionConflict means the conditional update matched no row:
	// the project left the required status between read and write.
	ErrTransitionConflict = errors.New("project status changed concurrently")
)

type ProjectRepository interface {
	Create(db *gorm.DB, project *models.Project) error
	Save(db *gorm.DB, project *models.Project) error
	Delete(db *gorm.DB, id string) error
	FindByID(db *gorm.DB, id string) (*models.Project, error)
	FindByIDWithParticipants(db *gorm.DB, id string) (*models.Project, error)
	FindOpen(db *gorm.DB) ([]models.Project, error)
	FindByOwner(db *gorm.DB, ownerID string) ([]models.Project, error)
	FindByCreative(db *gorm.DB, creativeID string) ([]models.Project, error)
	FindAll(db *gorm.DB) ([]models.Project, error)
	FindWithEmbedding(db *gorm.DB, limit int) ([]models.Project, error)
	CountOpenByOwner(db *gorm.DB, ownerID string) (int64, error)
	HasApplicant(db *gorm.DB, projectID, userID string) (bool, error)
	AddApplicant(db *gorm.DB, project *models.Project, user *models.User) error
	AssignCreative(db *gorm.DB, projectID, creativeID string) error
	TransitionStatus(db *gorm.DB, projectID string, from, to models.ProjectStatus) error
}

type ProjectRepositoryImpl struct{}

func NewProjectRepository() ProjectRepository {
	return &ProjectRepositoryImpl{}
}

func (r *ProjectRepositoryImpl) Create(db *gorm.DB, project *models.Project) error {
	return db.Create(project).Error
}

func (r *ProjectRepositoryImpl) Save(db *gorm.DB, project *models.Project) error {
	return db.Save(project).Error
}

func (r *ProjectRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.Project{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProjectNotFound
	}
	return nil
}

func (r *ProjectRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Project, error) {
	var project models.Project
	err := db.Preload("Owner").Preload("Creative").First(&project, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepositoryImpl) FindByIDWithParticipants(db *gorm.DB, id string) (*models.Project, error) {
	var project models.Project
	err := db.
		Preload("Owner").
		Preload("Creative").
		Preload("Applicants").
		First(&project, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepositoryImpl) FindOpen(db *gorm.DB) ([]models.Project, error) {
	var projects []models.Project
	err := db.
		Preload("Owner").
		Where("status = ?", models.ProjectStatusOpen).
		Order("created_at DESC").
		Find(&projects).Error
	return projects, err
}

func (r *ProjectRepositoryImpl) FindByOwner(db *gorm.DB, ownerID string) ([]models.Project, error) {
	var projects []models.Project
	err := db.
		Preload("Applicants").
		Preload("Creative").
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&projects).Error
	return projects, err
}

func (r *ProjectRepositoryImpl) FindByCreative(db *gorm.DB, creativeID string) ([]models.Project, error) {
	var projects []models.Project
	err := db.
		Preload("Owner").
		Where("creative_id = ?", creativeID).
		Order("updated_at DESC").
		Find(&projects).Error
	return projects, err
}

func (r *ProjectRepositoryImpl) FindAll(db *gorm.DB) ([]models.Project, error) {
	var projects []models.Project
	err := db.Preload("Owner").Order("created_at DESC").Find(&projects).Error
	return projects, err
}

// FindWithEmbedding loads the semantic-search candidate pool: projects
// whose description has been embedded, capped at limit.
func (r *ProjectRepositoryImpl) FindWithEmbedding(db *gorm.DB, limit int) ([]models.Project, error) {
	var projects []models.Project
	err := db.
		Where("project_embedding IS NOT NULL").
		Limit(limit).
		Find(&projects).Error
	return projects, err
}

func (r *ProjectRepositoryImpl) CountOpenByOwner(db *gorm.DB, ownerID string) (int64, error) {
	var count int64
	err := db.Model(&models.Project{}).
		Where("owner_id = ? AND status = ?", ownerID, models.ProjectStatusOpen).
		Count(&count).Error
	return count, err
}

func (r *ProjectRepositoryImpl) HasApplicant(db *gorm.DB, projectID, userID string) (bool, error) {
	var count int64
	err := db.Table("project_applicants").
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Count(&count).Error
	return count > 0, err
}

// AddApplicant appends to the applicants set. GORM inserts the join row
// with ON CONFLICT DO NOTHING, so two racing applies still leave a single
// row; the caller's HasApplicant pre-check supplies the domain error.
func (r *ProjectRepositoryImpl) AddApplicant(db *gorm.DB, project *models.Project, user *models.User) error {
	return db.Model(project).Association("Applicants").Append(user)
}

// AssignCreative performs the open -> in_progress transition with a
// precondition filter, so only one of two racing accepts can succeed.
func (r *ProjectRepositoryImpl) AssignCreative(db *gorm.DB, projectID, creativeID string) error {
	result := db.Model(&models.Project{}).
		Where("id = ? AND status = ? AND creative_id IS NULL", projectID, models.ProjectStatusOpen).
		Updates(map[string]interface{}{
			"creative_id": creativeID,
			"status":      models.ProjectStatusInProgress,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTransitionConflict
	}
	return nil
}

// TransitionStatus moves a project one step along the lifecycle, guarded
// by the expected current status.
func (r *ProjectRepositoryImpl) TransitionStatus(db *gorm.DB, projectID string, from, to models.ProjectStatus) error {
	result := db.Model(&models.Project{}).
		Where("id = ? AND status = ?", projectID, from).
		Update("status", to)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTransitionConflict
	}
	return nil
}
