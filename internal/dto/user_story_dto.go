package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateUserStoryRequest represents the request to create a user story in a
// product or sprint backlog
// @Description Request body for creating a user story. Priority defaults to
// @Description MEDIUM and status to TODO when omitted.
type CreateUserStoryRequest struct {
	Title              string `json:"title" binding:"required,min=1,max=200" example:"Checkout flow"`
	Description        string `json:"description" binding:"required" example:"As a shopper I want a one-page checkout"`
	AsA                string `json:"asA" example:"shopper"`
	IWant              string `json:"iWant" example:"a one-page checkout"`
	SoThat             string `json:"soThat" example:"I can buy faster"`
	AcceptanceCriteria string `json:"acceptanceCriteria" example:"Order placed in under 3 clicks"`
	StoryPoints        *int   `json:"storyPoints" binding:"omitempty,min=0" example:"5"`
	Priority           string `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH CRITICAL" example:"HIGH"`
	Status             string `json:"status" binding:"omitempty,oneof=TODO IN_PROGRESS DONE" example:"TODO"`
}

// UpdateUserStoryRequest represents the request to update a user story. All
// fields are optional; backlog placement is changed through the move endpoint.
type UpdateUserStoryRequest struct {
	Title              *string `json:"title" binding:"omitempty,min=1,max=200"`
	Description        *string `json:"description" binding:"omitempty,min=1"`
	AsA                *string `json:"asA"`
	IWant              *string `json:"iWant"`
	SoThat             *string `json:"soThat"`
	AcceptanceCriteria *string `json:"acceptanceCriteria"`
	StoryPoints        *int    `json:"storyPoints" binding:"omitempty,min=0"`
	Priority           *string `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH CRITICAL"`
	Status             *string `json:"status" binding:"omitempty,oneof=TODO IN_PROGRESS DONE"`
}

// MoveUserStoryRequest represents the request to move a story between
// backlogs. sprintId is required when moveTo is "sprint".
type MoveUserStoryRequest struct {
	MoveTo   string     `json:"moveTo" binding:"required,oneof=product sprint" example:"sprint"`
	SprintID *uuid.UUID `json:"sprintId" example:"539167fb-b599-41ba-9ead-344a6d0b3a2f"`
}

// UserStoryResponse represents the user story response
type UserStoryResponse struct {
	ID                 uuid.UUID  `json:"storyId"`
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	AsA                string     `json:"asA"`
	IWant              string     `json:"iWant"`
	SoThat             string     `json:"soThat"`
	AcceptanceCriteria string     `json:"acceptanceCriteria"`
	StoryPoints        *int       `json:"storyPoints,omitempty"`
	Priority           string     `json:"priority"`
	Status             string     `json:"status"`
	ProductBacklogID   *uuid.UUID `json:"productBacklogId,omitempty"`
	SprintBacklogID    *uuid.UUID `json:"sprintBacklogId,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// ProductBacklogPageResponse represents a page of the product backlog
type ProductBacklogPageResponse struct {
	BacklogID uuid.UUID           `json:"backlogId"`
	ProjectID uuid.UUID           `json:"projectId"`
	Stories   []UserStoryResponse `json:"stories"`
	Total     int64               `json:"total"`
	Page      int                 `json:"page"`
	Limit     int                 `json:"limit"`
}

// SprintBacklogPageResponse represents a page of a sprint backlog
type SprintBacklogPageResponse struct {
	BacklogID uuid.UUID           `json:"backlogId"`
	SprintID  uuid.UUID           `json:"sprintId"`
	Stories   []UserStoryResponse `json:"stories"`
	Total     int64               `json:"total"`
	Page      int                 `json:"page"`
	Limit     int                 `json:"limit"`
}
