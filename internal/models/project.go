package models

import (
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type Project struct {
	BaseModel
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"not null" json:"description"`

	// Owner is immutable after creation.
	OwnerID string `gorm:"type:uuid;not null;index" json:"ownerId"`
	Owner   *User  `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`

	// Applicants only accumulate while the project is open. The composite
	// primary key on the join table makes a duplicate apply fail at the
	// database even when two requests race.
	Applicants []User `gorm:"many2many:project_applicants" json:"applicants,omitempty"`

	// Creative is set exactly once, at the open -> in_progress transition.
	CreativeID *string `gorm:"type:uuid" json:"creativeId"`
	Creative   *User   `gorm:"foreignKey:CreativeID" json:"creative,omitempty"`

	RequiredSkills pq.StringArray `gorm:"type:text[]" json:"requiredSkills" swaggerignore:"true"`
	Budget         *float64       `json:"budget"`
	Status         ProjectStatus  `gorm:"type:varchar(20);not null;default:'open';index" json:"status"`

	// Dense vector derived from Description.
	ProjectEmbedding datatypes.JSON `json:"-"`
}
