package dto

import (
	"time"

	"github.com/google/uuid"
)

// DateFormat is the wire format for sprint dates
const DateFormat = "2006-01-02"

// CreateSprintRequest represents the request to create a new sprint
// @Description Request body for creating a sprint. Dates use YYYY-MM-DD and
// @Description endDate must not be before startDate.
type CreateSprintRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=120" example:"Sprint 1"`
	Description string `json:"description" example:"First iteration"`
	StartDate   string `json:"startDate" binding:"required,datetime=2006-01-02" example:"2024-01-01"`
	EndDate     string `json:"endDate" binding:"required,datetime=2006-01-02" example:"2024-01-14"`
	Status      string `json:"status" binding:"omitempty,oneof=PLANNING ACTIVE CLOSED" example:"PLANNING"`
}

// UpdateSprintRequest represents the request to update a sprint. All fields
// are optional.
type UpdateSprintRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=120" example:"Sprint 1 (extended)"`
	Description *string `json:"description"`
	StartDate   *string `json:"startDate" binding:"omitempty,datetime=2006-01-02" example:"2024-01-01"`
	EndDate     *string `json:"endDate" binding:"omitempty,datetime=2006-01-02" example:"2024-01-21"`
	Status      *string `json:"status" binding:"omitempty,oneof=PLANNING ACTIVE CLOSED" example:"ACTIVE"`
}

// SprintResponse represents the sprint response
type SprintResponse struct {
	ID          uuid.UUID `json:"sprintId" example:"539167fb-b599-41ba-9ead-344a6d0b3a2f"`
	ProjectID   uuid.UUID `json:"projectId"`
	Name        string    `json:"name" example:"Sprint 1"`
	Description string    `json:"description"`
	StartDate   string    `json:"startDate" example:"2024-01-01"`
	EndDate     string    `json:"endDate" example:"2024-01-14"`
	Status      string    `json:"status" example:"PLANNING"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// PaginatedSprintsResponse represents paginated sprints response
type PaginatedSprintsResponse struct {
	Sprints []SprintResponse `json:"sprints"`
	Total   int64            `json:"total"`
	Page    int              `json:"page"`
	Limit   int              `json:"limit"`
}
