package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProductBacklog holds the user stories of a project that are not yet
// scheduled into a sprint. Created lazily on first access.
type ProductBacklog struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_product_backlogs_project" json:"project_id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	Project   Project   `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"project,omitempty"`
}

// SprintBacklog holds the user stories committed to a sprint.
// Created lazily on first access.
type SprintBacklog struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	SprintID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_sprint_backlogs_sprint" json:"sprint_id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	Sprint    Sprint    `gorm:"foreignKey:SprintID;constraint:OnDelete:CASCADE" json:"sprint,omitempty"`
}

// TableName specifies the table name for ProductBacklog
func (ProductBacklog) TableName() string {
	return "product_backlogs"
}

// TableName specifies the table name for SprintBacklog
func (SprintBacklog) TableName() string {
	return "sprint_backlogs"
}
