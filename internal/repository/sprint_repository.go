package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"scrumflow-api/internal/domain"
)

// SprintRepository defines the interface for sprint data access
type SprintRepository interface {
	Create(ctx context.Context, sprint *domain.Sprint) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Sprint, error)
	FindByProjectID(ctx context.Context, projectID uuid.UUID, page, limit int) ([]*domain.Sprint, int64, error)
	Update(ctx context.Context, sprint *domain.Sprint) error
	CountActive(ctx context.Context) (int64, error)
}

// sprintRepositoryImpl is the GORM implementation of SprintRepository
type sprintRepositoryImpl struct {
	db *gorm.DB
}

// NewSprintRepository creates a new instance of SprintRepository
func NewSprintRepository(db *gorm.DB) SprintRepository {
	return &sprintRepositoryImpl{db: db}
}

// Create creates a new sprint. When the sprint is ACTIVE the write is
// rejected with ErrActiveSprintExists if the project already has one.
func (r *sprintRepositoryImpl) Create(ctx context.Context, sprint *domain.Sprint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if sprint.Status == domain.SprintStatusActive {
			if err := ensureNoActiveSprint(tx, sprint.ProjectID, uuid.Nil); err != nil {
				return err
			}
		}
		return tx.Create(sprint).Error
	})
}

// FindByID finds a sprint by its ID
func (r *sprintRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Sprint, error) {
	var sprint domain.Sprint
	if err := r.db.WithContext(ctx).First(&sprint, id).Error; err != nil {
		return nil, err
	}
	return &sprint, nil
}

// FindByProjectID finds the sprints of a project, most recently started first
func (r *sprintRepositoryImpl) FindByProjectID(ctx context.Context, projectID uuid.UUID, page, limit int) ([]*domain.Sprint, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Sprint{}).
		Where("project_id = ?", projectID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	var sprints []*domain.Sprint
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("start_date DESC, created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&sprints).Error; err != nil {
		return nil, 0, err
	}
	return sprints, total, nil
}

// Update updates a sprint. A transition into ACTIVE is rejected with
// ErrActiveSprintExists if another sprint in the project is already active.
func (r *sprintRepositoryImpl) Update(ctx context.Context, sprint *domain.Sprint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if sprint.Status == domain.SprintStatusActive {
			if err := ensureNoActiveSprint(tx, sprint.ProjectID, sprint.ID); err != nil {
				return err
			}
		}
		return tx.Save(sprint).Error
	})
}

// CountActive counts ACTIVE sprints across all projects, used by the
// business metrics collector
func (r *sprintRepositoryImpl) CountActive(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Sprint{}).
		Where("status = ?", domain.SprintStatusActive).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ensureNoActiveSprint rejects the write when a different sprint in the
// project is already ACTIVE. excludeID is uuid.Nil on creation.
func ensureNoActiveSprint(tx *gorm.DB, projectID, excludeID uuid.UUID) error {
	query := tx.Model(&domain.Sprint{}).
		Where("project_id = ? AND status = ?", projectID, domain.SprintStatusActive)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrActiveSprintExists
	}
	return nil
}
