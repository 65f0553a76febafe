package domain

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SprintStatus represents the lifecycle status of a sprint
type SprintStatus string

const (
	SprintStatusPlanning SprintStatus = "PLANNING"
	SprintStatusActive   SprintStatus = "ACTIVE"
	SprintStatusClosed   SprintStatus = "CLOSED"
)

// IsValid reports whether the value is one of the known sprint statuses
func (s SprintStatus) IsValid() bool {
	switch s {
	case SprintStatusPlanning, SprintStatusActive, SprintStatusClosed:
		return true
	}
	return false
}

// Sprint represents a fixed-date iteration of work within a project
type Sprint struct {
	BaseModel
	ProjectID   uuid.UUID      `gorm:"type:uuid;not null;index:idx_sprints_project_id;index:idx_sprints_project_status,priority:1" json:"project_id"`
	Name        string         `gorm:"type:varchar(120);not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	StartDate   datatypes.Date `gorm:"type:date;not null" json:"start_date"`
	EndDate     datatypes.Date `gorm:"type:date;not null" json:"end_date"`
	Status      SprintStatus   `gorm:"type:varchar(10);not null;default:'PLANNING';index:idx_sprints_project_status,priority:2" json:"status"`
	Project     Project        `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"project,omitempty"`
}

// TableName specifies the table name for Sprint
func (Sprint) TableName() string {
	return "sprints"
}
