package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateProjectRequest represents the request to create a new project
// @Description Request body for creating a new project. The caller becomes the owner.
type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=200" example:"Website Redesign"`
	Description string `json:"description" example:"Full redesign of the marketing site"`
}

// UpdateProjectRequest represents the request to update a project. All fields
// are optional.
type UpdateProjectRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=200" example:"Website Redesign v2"`
	Description *string `json:"description" example:"Updated scope"`
}

// ProjectResponse represents the project response
type ProjectResponse struct {
	ID          uuid.UUID `json:"projectId" example:"539167fb-b599-41ba-9ead-344a6d0b3a2f"`
	OwnerID     uuid.UUID `json:"ownerId" example:"b2c3d4e5-f6a7-8901-bcde-f12345678901"`
	Name        string    `json:"name" example:"Website Redesign"`
	Description string    `json:"description" example:"Full redesign of the marketing site"`
	CreatedAt   time.Time `json:"createdAt" example:"2024-01-15T10:30:00Z"`
	UpdatedAt   time.Time `json:"updatedAt" example:"2024-01-15T14:20:00Z"`
}

// PaginatedProjectsResponse represents paginated projects response
type PaginatedProjectsResponse struct {
	Projects []ProjectResponse `json:"projects"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
}

// AddMemberRequest represents the request to add a member to a project
type AddMemberRequest struct {
	UserID   uuid.UUID `json:"userId" binding:"required" example:"f47ac10b-58cc-4372-a567-0e02b2c3d479"`
	Username string    `json:"username" binding:"required,min=1,max=150" example:"jane.doe"`
}

// MemberResponse represents a project member
type MemberResponse struct {
	MemberID  uuid.UUID `json:"memberId"`
	ProjectID uuid.UUID `json:"projectId"`
	UserID    uuid.UUID `json:"userId"`
	Username  string    `json:"username"`
	JoinedAt  time.Time `json:"joinedAt"`
}

// PaginatedMembersResponse represents paginated project members response
type PaginatedMembersResponse struct {
	Members []MemberResponse `json:"members"`
	Total   int64            `json:"total"`
	Page    int              `json:"page"`
	Limit   int              `json:"limit"`
}
