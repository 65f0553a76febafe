package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"scrumflow-api/internal/domain"
)

// storyPriorityOrder ranks stories CRITICAL first. The CASE expression keeps
// the ordering identical on postgres and the sqlite test driver.
const storyPriorityOrder = "CASE priority " +
	"WHEN 'CRITICAL' THEN 4 " +
	"WHEN 'HIGH' THEN 3 " +
	"WHEN 'MEDIUM' THEN 2 " +
	"WHEN 'LOW' THEN 1 " +
	"ELSE 0 END DESC, created_at DESC"

// UserStoryRepository defines the interface for user story data access
type UserStoryRepository interface {
	Create(ctx context.Context, story *domain.UserStory) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.UserStory, error)
	FindByProductBacklogID(ctx context.Context, backlogID uuid.UUID, page, limit int) ([]*domain.UserStory, int64, error)
	FindBySprintBacklogID(ctx context.Context, backlogID uuid.UUID, page, limit int) ([]*domain.UserStory, int64, error)
	Update(ctx context.Context, story *domain.UserStory) error
	Delete(ctx context.Context, id uuid.UUID) error
	MoveToSprintBacklog(ctx context.Context, storyID, sprintID uuid.UUID) (*domain.UserStory, error)
	MoveToProductBacklog(ctx context.Context, storyID, projectID uuid.UUID) (*domain.UserStory, error)
	CountAll(ctx context.Context) (int64, error)
}

// userStoryRepositoryImpl is the GORM implementation of UserStoryRepository
type userStoryRepositoryImpl struct {
	db *gorm.DB
}

// NewUserStoryRepository creates a new instance of UserStoryRepository
func NewUserStoryRepository(db *gorm.DB) UserStoryRepository {
	return &userStoryRepositoryImpl{db: db}
}

// Create creates a new user story attached to exactly one backlog
func (r *userStoryRepositoryImpl) Create(ctx context.Context, story *domain.UserStory) error {
	if !exactlyOneBacklog(story) {
		return ErrBacklogInvariant
	}
	if err := r.db.WithContext(ctx).Create(story).Error; err != nil {
		return err
	}
	return nil
}

// FindByID finds a user story by its ID
func (r *userStoryRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.UserStory, error) {
	var story domain.UserStory
	if err := r.db.WithContext(ctx).First(&story, id).Error; err != nil {
		return nil, err
	}
	return &story, nil
}

// FindByProductBacklogID finds the stories of a product backlog, highest
// priority first
func (r *userStoryRepositoryImpl) FindByProductBacklogID(ctx context.Context, backlogID uuid.UUID, page, limit int) ([]*domain.UserStory, int64, error) {
	return r.findByBacklog(ctx, "product_backlog_id", backlogID, page, limit)
}

// FindBySprintBacklogID finds the stories of a sprint backlog, highest
// priority first
func (r *userStoryRepositoryImpl) FindBySprintBacklogID(ctx context.Context, backlogID uuid.UUID, page, limit int) ([]*domain.UserStory, int64, error) {
	return r.findByBacklog(ctx, "sprint_backlog_id", backlogID, page, limit)
}

func (r *userStoryRepositoryImpl) findByBacklog(ctx context.Context, column string, backlogID uuid.UUID, page, limit int) ([]*domain.UserStory, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&domain.UserStory{}).
		Where(column+" = ?", backlogID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	var stories []*domain.UserStory
	if err := r.db.WithContext(ctx).
		Where(column+" = ?", backlogID).
		Order(storyPriorityOrder).
		Offset(offset).
		Limit(limit).
		Find(&stories).Error; err != nil {
		return nil, 0, err
	}
	return stories, total, nil
}

// Update updates a user story. The backlog references are not touched here;
// moves go through MoveToSprintBacklog / MoveToProductBacklog.
func (r *userStoryRepositoryImpl) Update(ctx context.Context, story *domain.UserStory) error {
	if !exactlyOneBacklog(story) {
		return ErrBacklogInvariant
	}
	if err := r.db.WithContext(ctx).Save(story).Error; err != nil {
		return err
	}
	return nil
}

// Delete deletes a user story. Its tasks and their comments go via cascades.
func (r *userStoryRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&domain.UserStory{}, id).Error; err != nil {
		return err
	}
	return nil
}

// MoveToSprintBacklog attaches the story to the sprint's backlog, creating
// the backlog if needed, and detaches it from the product backlog. The whole
// move is one transaction.
func (r *userStoryRepositoryImpl) MoveToSprintBacklog(ctx context.Context, storyID, sprintID uuid.UUID) (*domain.UserStory, error) {
	var story domain.UserStory
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&story, storyID).Error; err != nil {
			return err
		}

		var backlog domain.SprintBacklog
		if err := tx.
			Where(domain.SprintBacklog{SprintID: sprintID}).
			FirstOrCreate(&backlog).Error; err != nil {
			return err
		}

		story.SprintBacklogID = &backlog.ID
		story.ProductBacklogID = nil
		return tx.Save(&story).Error
	})
	if err != nil {
		return nil, err
	}
	return &story, nil
}

// MoveToProductBacklog attaches the story to the project's product backlog,
// creating it if needed, and detaches it from any sprint backlog
func (r *userStoryRepositoryImpl) MoveToProductBacklog(ctx context.Context, storyID, projectID uuid.UUID) (*domain.UserStory, error) {
	var story domain.UserStory
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&story, storyID).Error; err != nil {
			return err
		}

		var backlog domain.ProductBacklog
		if err := tx.
			Where(domain.ProductBacklog{ProjectID: projectID}).
			FirstOrCreate(&backlog).Error; err != nil {
			return err
		}

		story.ProductBacklogID = &backlog.ID
		story.SprintBacklogID = nil
		return tx.Save(&story).Error
	})
	if err != nil {
		return nil, err
	}
	return &story, nil
}

// CountAll counts every user story, used by the business metrics collector
func (r *userStoryRepositoryImpl) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.UserStory{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func exactlyOneBacklog(story *domain.UserStory) bool {
	return (story.ProductBacklogID != nil) != (story.SprintBacklogID != nil)
}
