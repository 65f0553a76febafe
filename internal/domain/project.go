package domain

import (
	"time"

	"github.com/google/uuid"
)

// Project represents a Scrum project
type Project struct {
	BaseModel
	OwnerID     uuid.UUID       `gorm:"type:uuid;not null;index:idx_projects_owner_id" json:"owner_id"`
	Name        string          `gorm:"type:varchar(200);not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Members     []ProjectMember `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"members,omitempty"`
	Sprints     []Sprint        `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"sprints,omitempty"`
}

// IsOwner reports whether the given user created the project
func (p *Project) IsOwner(userID uuid.UUID) bool {
	return p.OwnerID == userID
}

// ProjectMember represents a member of a project.
// The owner is implicitly a member and never has a row here.
type ProjectMember struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index:idx_project_members_project_id;uniqueIndex:uq_project_members_project_user" json:"project_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_project_members_user_id;uniqueIndex:uq_project_members_project_user" json:"user_id"`
	Username  string    `gorm:"type:varchar(150);not null" json:"username"`
	JoinedAt  time.Time `gorm:"type:timestamp;not null;default:now()" json:"joined_at"`
	Project   Project   `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"project,omitempty"`
}

// TableName specifies the table name for Project
func (Project) TableName() string {
	return "projects"
}

// TableName specifies the table name for ProjectMember
func (ProjectMember) TableName() string {
	return "project_members"
}
