package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type User struct {
	BaseModel
	Name         string   `gorm:"not null" json:"name"`
	Username     string   `gorm:"uniqueIndex;not null" json:"username"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null;default:'creative'" json:"role"`
	IsVerified   bool     `gorm:"default:false" json:"isVerified"`

	// Only the sha256 of the verification token is stored; the plaintext
	// exists solely inside the emailed link.
	VerificationToken    string     `json:"-"`
	VerificationTokenExp *time.Time `json:"-"`

	// Profile
	Headline    string         `json:"headline"`
	Description string         `json:"description"`
	Skills      pq.StringArray `gorm:"type:text[]" json:"skills" swaggerignore:"true"`

	// Dense vector derived from Description, refreshed on description
	// change. Stored as JSON so the column is portable across drivers.
	ProfileEmbedding datatypes.JSON `json:"-"`

	Portfolio []PortfolioItem `gorm:"foreignKey:UserID" json:"portfolio,omitempty"`
}

// PortfolioItem is an external work reference. File hosting is out of
// scope; only title and URL are kept.
type PortfolioItem struct {
	BaseModel
	UserID string `gorm:"not null;index" json:"userId"`
	Title  string `gorm:"not null" json:"title"`
	URL    string `json:"url"`
}
