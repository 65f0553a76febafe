package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateTaskRequest represents the request to create a task under a user story
// @Description Request body for creating a task. The assignee, when given,
// @Description must be a member of the story's project.
type CreateTaskRequest struct {
	Title          string     `json:"title" binding:"required,min=1,max=200" example:"Wire payment API"`
	Description    string     `json:"description" example:"Integrate the PSP sandbox"`
	AssignedTo     *uuid.UUID `json:"assignedTo" example:"f47ac10b-58cc-4372-a567-0e02b2c3d479"`
	Status         string     `json:"status" binding:"omitempty,oneof=TODO IN_PROGRESS DONE" example:"TODO"`
	Priority       string     `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH" example:"MEDIUM"`
	EstimatedHours *float64   `json:"estimatedHours" binding:"omitempty,gte=0" example:"6.5"`
}

// UpdateTaskRequest represents the request to update a task. All fields are
// optional. clearAssignee unassigns the task.
type UpdateTaskRequest struct {
	Title          *string    `json:"title" binding:"omitempty,min=1,max=200"`
	Description    *string    `json:"description"`
	AssignedTo     *uuid.UUID `json:"assignedTo"`
	ClearAssignee  bool       `json:"clearAssignee"`
	Status         *string    `json:"status" binding:"omitempty,oneof=TODO IN_PROGRESS DONE"`
	Priority       *string    `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH"`
	EstimatedHours *float64   `json:"estimatedHours" binding:"omitempty,gte=0"`
}

// UpdateTaskStatusRequest represents the board status update request. The
// value is validated by the service so an unknown status comes back as
// {"success": false} rather than a binding error.
type UpdateTaskStatusRequest struct {
	Status string `json:"status" binding:"required" example:"IN_PROGRESS"`
}

// TaskStatusResponse represents the board status update result
type TaskStatusResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// TaskResponse represents the task response
type TaskResponse struct {
	ID             uuid.UUID  `json:"taskId"`
	UserStoryID    uuid.UUID  `json:"storyId"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	AssignedTo     *uuid.UUID `json:"assignedTo,omitempty"`
	Status         string     `json:"status"`
	Priority       string     `json:"priority"`
	EstimatedHours *float64   `json:"estimatedHours,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// TaskBoardResponse represents the tasks of a story grouped by status
type TaskBoardResponse struct {
	StoryID    uuid.UUID      `json:"storyId"`
	Todo       []TaskResponse `json:"todo"`
	InProgress []TaskResponse `json:"inProgress"`
	Done       []TaskResponse `json:"done"`
}

// TaskDetailResponse represents a task together with its comments
type TaskDetailResponse struct {
	Task     TaskResponse      `json:"task"`
	Comments []CommentResponse `json:"comments"`
}

// CreateCommentRequest represents the request to comment on a task
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required,min=1" example:"Blocked on sandbox credentials"`
}

// CommentResponse represents a task comment
type CommentResponse struct {
	ID        uuid.UUID `json:"commentId"`
	TaskID    uuid.UUID `json:"taskId"`
	AuthorID  uuid.UUID `json:"authorId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
