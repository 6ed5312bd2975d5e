package repositories

import (
	"errors"

	"ekrafmate_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already exists")
	ErrUserDuplicateIdent = errors.New("username or email already exists")
)

type UserRepository interface {
	FindByID(db *gorm.DB, id string) (*models.User, error)
	FindByIDWithPortfolio(db *gorm.DB, id string) (*models.User, error)
	FindByIdentifier(db *gorm.DB, identifier string) (*models.User, error)
	FindByVerificationToken(db *gorm.DB, tokenHash string) (*models.User, error)
	Create(db *gorm.DB, user *models.User) error
	Save(db *gorm.DB, user *models.User) error
	Delete(db *gorm.DB, id string) error
	FindByRoles(db *gorm.DB, roles []models.UserRole) ([]models.User, error)
	FindCreativesWithEmbedding(db *gorm.DB, limit int) ([]models.User, error)
}

type UserRepositoryImpl struct{}

func NewUserRepository() UserRepository {
	return &UserRepositoryImpl{}
}

func (r *UserRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	err := db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByIDWithPortfolio(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	err := db.Preload("Portfolio").First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByIdentifier looks a user up by username OR email, the login
// contract of the API.
func (r *UserRepositoryImpl) FindByIdentifier(db *gorm.DB, identifier string) (*models.User, error) {
	var user models.User
	err := db.Where("username = ? OR email = ?", identifier, identifier).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByVerificationToken(db *gorm.DB, tokenHash string) (*models.User, error) {
	var user models.User
	err := db.Where("verification_token = ?", tokenHash).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Create(db *gorm.DB, user *models.User) error {
	// Pre-check to give a field-specific conflict message; the unique
	// indexes on username/email remain the authority under races.
	var existing models.User
	err := db.Where("username = ? OR email = ?", user.Username, user.Email).First(&existing).Error
	if err == nil {
		if existing.Username == user.Username {
			return ErrUsernameTaken
		}
		return ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if err := db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUserDuplicateIdent
		}
		return err
	}
	return nil
}

func (r *UserRepositoryImpl) Save(db *gorm.DB, user *models.User) error {
	err := db.Save(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrUserDuplicateIdent
	}
	return err
}

func (r *UserRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.User{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) FindByRoles(db *gorm.DB, roles []models.UserRole) ([]models.User, error) {
	var users []models.User
	err := db.Where("role IN ?", roles).Order("created_at DESC").Find(&users).Error
	return users, err
}

// FindCreativesWithEmbedding loads the semantic-search candidate pool:
// creatives whose profile has been embedded, capped at limit.
func (r *UserRepositoryImpl) FindCreativesWithEmbedding(db *gorm.DB, limit int) ([]models.User, error) {
	var users []models.User
	err := db.
		Where("role = ?", models.UserRoleCreative).
		Where("profile_embedding IS NOT NULL").
		Limit(limit).
		Find(&users).Error
	return users, err
}
