package domain

import "github.com/google/uuid"

// TaskStatus represents the kanban column of a task
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "TODO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusDone       TaskStatus = "DONE"
)

// IsValid reports whether the value is one of the known task statuses
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

// TaskPriority represents the priority of a task
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "LOW"
	TaskPriorityMedium TaskPriority = "MEDIUM"
	TaskPriorityHigh   TaskPriority = "HIGH"
)

// IsValid reports whether the value is one of the known task priorities
func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

// Task represents a concrete unit of implementation work under a user story.
// AssignedTo references a user in the external identity service; it is
// cleared (not cascaded) when the user disappears.
type Task struct {
	BaseModel
	UserStoryID    uuid.UUID    `gorm:"type:uuid;not null;index:idx_tasks_user_story_id" json:"user_story_id"`
	Title          string       `gorm:"type:varchar(200);not null" json:"title"`
	Description    string       `gorm:"type:text" json:"description"`
	AssignedTo     *uuid.UUID   `gorm:"type:uuid;index:idx_tasks_assigned_to" json:"assigned_to"`
	Status         TaskStatus   `gorm:"type:varchar(15);not null;default:'TODO'" json:"status"`
	Priority       TaskPriority `gorm:"type:varchar(10);not null;default:'MEDIUM'" json:"priority"`
	EstimatedHours *float64     `gorm:"type:decimal(5,2)" json:"estimated_hours"`
	UserStory      UserStory    `gorm:"foreignKey:UserStoryID;constraint:OnDelete:CASCADE" json:"user_story,omitempty"`
	Comments       []TaskComment `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`
}

// TaskComment represents a comment on a task
type TaskComment struct {
	BaseModel
	TaskID   uuid.UUID `gorm:"type:uuid;not null;index:idx_task_comments_task_id" json:"task_id"`
	AuthorID uuid.UUID `gorm:"type:uuid;not null;index:idx_task_comments_author_id" json:"author_id"`
	Content  string    `gorm:"type:text;not null" json:"content"`
	Task     Task      `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE" json:"task,omitempty"`
}

// TableName specifies the table name for Task
func (Task) TableName() string {
	return "tasks"
}

// TableName specifies the table name for TaskComment
func (TaskComment) TableName() string {
	return "task_comments"
}
