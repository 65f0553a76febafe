package domain

import "github.com/google/uuid"

// StoryPriority represents the priority of a user story
type StoryPriority string

const (
	StoryPriorityLow      StoryPriority = "LOW"
	StoryPriorityMedium   StoryPriority = "MEDIUM"
	StoryPriorityHigh     StoryPriority = "HIGH"
	StoryPriorityCritical StoryPriority = "CRITICAL"
)

// IsValid reports whether the value is one of the known story priorities
func (p StoryPriority) IsValid() bool {
	switch p {
	case StoryPriorityLow, StoryPriorityMedium, StoryPriorityHigh, StoryPriorityCritical:
		return true
	}
	return false
}

// StoryStatus represents the workflow status of a user story
type StoryStatus string

const (
	StoryStatusTodo       StoryStatus = "TODO"
	StoryStatusInProgress StoryStatus = "IN_PROGRESS"
	StoryStatusDone       StoryStatus = "DONE"
)

// IsValid reports whether the value is one of the known story statuses
func (s StoryStatus) IsValid() bool {
	switch s {
	case StoryStatusTodo, StoryStatusInProgress, StoryStatusDone:
		return true
	}
	return false
}

// UserStory represents a unit of desired functionality in actor/goal/benefit
// form. A story belongs to exactly one backlog: either the product backlog of
// its project or the sprint backlog of one of the project's sprints, never
// both and never neither.
type UserStory struct {
	BaseModel
	Title              string          `gorm:"type:varchar(200);not null" json:"title"`
	Description        string          `gorm:"type:text;not null" json:"description"`
	AsA                string          `gorm:"type:varchar(200)" json:"as_a"`
	IWant              string          `gorm:"type:varchar(200)" json:"i_want"`
	SoThat             string          `gorm:"type:varchar(200)" json:"so_that"`
	AcceptanceCriteria string          `gorm:"type:text" json:"acceptance_criteria"`
	StoryPoints        *int            `gorm:"type:int" json:"story_points"`
	Priority           StoryPriority   `gorm:"type:varchar(10);not null;default:'MEDIUM';index:idx_user_stories_priority" json:"priority"`
	Status             StoryStatus     `gorm:"type:varchar(15);not null;default:'TODO'" json:"status"`
	ProductBacklogID   *uuid.UUID      `gorm:"type:uuid;index:idx_user_stories_product_backlog_id" json:"product_backlog_id"`
	SprintBacklogID    *uuid.UUID      `gorm:"type:uuid;index:idx_user_stories_sprint_backlog_id" json:"sprint_backlog_id"`
	ProductBacklog     *ProductBacklog `gorm:"foreignKey:ProductBacklogID;constraint:OnDelete:CASCADE" json:"product_backlog,omitempty"`
	SprintBacklog      *SprintBacklog  `gorm:"foreignKey:SprintBacklogID;constraint:OnDelete:CASCADE" json:"sprint_backlog,omitempty"`
	Tasks              []Task          `gorm:"foreignKey:UserStoryID;constraint:OnDelete:CASCADE" json:"tasks,omitempty"`
}

// InProductBacklog reports whether the story currently sits in a product backlog
func (u *UserStory) InProductBacklog() bool {
	return u.ProductBacklogID != nil
}

// TableName specifies the table name for UserStory
func (UserStory) TableName() string {
	return "user_stories"
}
