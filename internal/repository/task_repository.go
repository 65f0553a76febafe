package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"scrumflow-api/internal/domain"
)

// taskPriorityOrder ranks tasks HIGH first within a status group
const taskPriorityOrder = "CASE priority " +
	"WHEN 'HIGH' THEN 3 " +
	"WHEN 'MEDIUM' THEN 2 " +
	"WHEN 'LOW' THEN 1 " +
	"ELSE 0 END DESC, status ASC, created_at DESC"

// TaskRepository defines the interface for task and task comment data access
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	FindByUserStoryID(ctx context.Context, storyID uuid.UUID) ([]*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id uuid.UUID) error

	CreateComment(ctx context.Context, comment *domain.TaskComment) error
	FindCommentByID(ctx context.Context, id uuid.UUID) (*domain.TaskComment, error)
	FindCommentsByTaskID(ctx context.Context, taskID uuid.UUID) ([]*domain.TaskComment, error)
	DeleteComment(ctx context.Context, id uuid.UUID) error
}

// taskRepositoryImpl is the GORM implementation of TaskRepository
type taskRepositoryImpl struct {
	db *gorm.DB
}

// NewTaskRepository creates a new instance of TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepositoryImpl{db: db}
}

// Create creates a new task
func (r *taskRepositoryImpl) Create(ctx context.Context, task *domain.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return err
	}
	return nil
}

// FindByID finds a task by its ID
func (r *taskRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	var task domain.Task
	if err := r.db.WithContext(ctx).First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// FindByUserStoryID finds all tasks of a user story in board order. The
// service groups them by status for the kanban view.
func (r *taskRepositoryImpl) FindByUserStoryID(ctx context.Context, storyID uuid.UUID) ([]*domain.Task, error) {
	var tasks []*domain.Task
	if err := r.db.WithContext(ctx).
		Where("user_story_id = ?", storyID).
		Order(taskPriorityOrder).
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update updates a task
func (r *taskRepositoryImpl) Update(ctx context.Context, task *domain.Task) error {
	if err := r.db.WithContext(ctx).Save(task).Error; err != nil {
		return err
	}
	return nil
}

// Delete deletes a task. Its comments go via cascades.
func (r *taskRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&domain.Task{}, id).Error; err != nil {
		return err
	}
	return nil
}

// CreateComment creates a new task comment
func (r *taskRepositoryImpl) CreateComment(ctx context.Context, comment *domain.TaskComment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return err
	}
	return nil
}

// FindCommentByID finds a task comment by its ID
func (r *taskRepositoryImpl) FindCommentByID(ctx context.Context, id uuid.UUID) (*domain.TaskComment, error) {
	var comment domain.TaskComment
	if err := r.db.WithContext(ctx).First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// FindCommentsByTaskID finds the comments of a task, oldest first
func (r *taskRepositoryImpl) FindCommentsByTaskID(ctx context.Context, taskID uuid.UUID) ([]*domain.TaskComment, error) {
	var comments []*domain.TaskComment
	if err := r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order("created_at ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// DeleteComment deletes a task comment by ID
func (r *taskRepositoryImpl) DeleteComment(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&domain.TaskComment{}, id).Error; err != nil {
		return err
	}
	return nil
}
