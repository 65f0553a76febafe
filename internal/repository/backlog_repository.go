package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"scrumflow-api/internal/domain"
)

// BacklogRepository defines the interface for product and sprint backlog
// data access. Backlog rows are created lazily on first access; Ensure*
// methods are idempotent under the one-to-one unique indexes.
type BacklogRepository interface {
	EnsureProductBacklog(ctx context.Context, projectID uuid.UUID) (*domain.ProductBacklog, error)
	EnsureSprintBacklog(ctx context.Context, sprintID uuid.UUID) (*domain.SprintBacklog, error)
	FindProductBacklogByID(ctx context.Context, id uuid.UUID) (*domain.ProductBacklog, error)
	FindSprintBacklogByID(ctx context.Context, id uuid.UUID) (*domain.SprintBacklog, error)
}

// backlogRepositoryImpl is the GORM implementation of BacklogRepository
type backlogRepositoryImpl struct {
	db *gorm.DB
}

// NewBacklogRepository creates a new instance of BacklogRepository
func NewBacklogRepository(db *gorm.DB) BacklogRepository {
	return &backlogRepositoryImpl{db: db}
}

// EnsureProductBacklog returns the project's product backlog, creating it
// if it does not exist yet
func (r *backlogRepositoryImpl) EnsureProductBacklog(ctx context.Context, projectID uuid.UUID) (*domain.ProductBacklog, error) {
	var backlog domain.ProductBacklog
	if err := r.db.WithContext(ctx).
		Where(domain.ProductBacklog{ProjectID: projectID}).
		FirstOrCreate(&backlog).Error; err != nil {
		return nil, err
	}
	return &backlog, nil
}

// EnsureSprintBacklog returns the sprint's backlog, creating it if it does
// not exist yet
func (r *backlogRepositoryImpl) EnsureSprintBacklog(ctx context.Context, sprintID uuid.UUID) (*domain.SprintBacklog, error) {
	var backlog domain.SprintBacklog
	if err := r.db.WithContext(ctx).
		Where(domain.SprintBacklog{SprintID: sprintID}).
		FirstOrCreate(&backlog).Error; err != nil {
		return nil, err
	}
	return &backlog, nil
}

// FindProductBacklogByID finds a product backlog by its ID
func (r *backlogRepositoryImpl) FindProductBacklogByID(ctx context.Context, id uuid.UUID) (*domain.ProductBacklog, error) {
	var backlog domain.ProductBacklog
	if err := r.db.WithContext(ctx).First(&backlog, id).Error; err != nil {
		return nil, err
	}
	return &backlog, nil
}

// FindSprintBacklogByID finds a sprint backlog by its ID
func (r *backlogRepositoryImpl) FindSprintBacklogByID(ctx context.Context, id uuid.UUID) (*domain.SprintBacklog, error) {
	var backlog domain.SprintBacklog
	if err := r.db.WithContext(ctx).First(&backlog, id).Error; err != nil {
		return nil, err
	}
	return &backlog, nil
}
