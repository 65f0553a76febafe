package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"scrumflow-api/internal/domain"
)

// ProjectRepository defines the interface for project and membership data access
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	FindVisibleToUser(ctx context.Context, userID uuid.UUID, page, limit int) ([]*domain.Project, int64, error)
	Update(ctx context.Context, project *domain.Project) error
	Delete(ctx context.Context, id uuid.UUID) error

	IsMember(ctx context.Context, projectID, userID uuid.UUID) (bool, error)
	AddMember(ctx context.Context, member *domain.ProjectMember) error
	RemoveMember(ctx context.Context, projectID, userID uuid.UUID) (*domain.ProjectMember, error)
	FindMembers(ctx context.Context, projectID uuid.UUID, page, limit int) ([]*domain.ProjectMember, int64, error)

	CountAll(ctx context.Context) (int64, error)
}

// projectRepositoryImpl is the GORM implementation of ProjectRepository
type projectRepositoryImpl struct {
	db *gorm.DB
}

// NewProjectRepository creates a new instance of ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepositoryImpl{db: db}
}

// Create creates a new project together with its product backlog and the
// owner's membership row in a single transaction
func (r *projectRepositoryImpl) Create(ctx context.Context, project *domain.Project) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(project).Error; err != nil {
			return err
		}
		backlog := &domain.ProductBacklog{ProjectID: project.ID}
		if err := tx.Create(backlog).Error; err != nil {
			return err
		}
		return nil
	})
}

// FindByID finds a project by its ID
func (r *projectRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	var project domain.Project
	if err := r.db.WithContext(ctx).First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// FindVisibleToUser finds projects the user owns or is a member of, newest first
func (r *projectRepositoryImpl) FindVisibleToUser(ctx context.Context, userID uuid.UUID, page, limit int) ([]*domain.Project, int64, error) {
	memberProjects := r.db.Model(&domain.ProjectMember{}).
		Select("project_id").
		Where("user_id = ?", userID)

	var total int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Project{}).
		Where("owner_id = ? OR id IN (?)", userID, memberProjects).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	var projects []*domain.Project
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? OR id IN (?)", userID, memberProjects).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&projects).Error; err != nil {
		return nil, 0, err
	}
	return projects, total, nil
}

// Update updates a project
func (r *projectRepositoryImpl) Update(ctx context.Context, project *domain.Project) error {
	if err := r.db.WithContext(ctx).Save(project).Error; err != nil {
		return err
	}
	return nil
}

// Delete deletes a project. Members, sprints, backlogs, stories, tasks and
// comments go with it via FK cascades.
func (r *projectRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&domain.Project{}, id).Error; err != nil {
		return err
	}
	return nil
}

// IsMember reports whether the user is the owner of or a member of the project
func (r *projectRepositoryImpl) IsMember(ctx context.Context, projectID, userID uuid.UUID) (bool, error) {
	var project domain.Project
	if err := r.db.WithContext(ctx).Select("owner_id").First(&project, projectID).Error; err != nil {
		return false, err
	}
	if project.OwnerID == userID {
		return true, nil
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.ProjectMember{}).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// AddMember adds a membership row, returning ErrDuplicateMember when the
// (project, user) pair already exists
func (r *projectRepositoryImpl) AddMember(ctx context.Context, member *domain.ProjectMember) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&domain.ProjectMember{}).
			Where("project_id = ? AND user_id = ?", member.ProjectID, member.UserID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateMember
		}
		return tx.Create(member).Error
	})
}

// RemoveMember removes a membership row and returns it so callers can report
// who was removed
func (r *projectRepositoryImpl) RemoveMember(ctx context.Context, projectID, userID uuid.UUID) (*domain.ProjectMember, error) {
	var member domain.ProjectMember
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("project_id = ? AND user_id = ?", projectID, userID).
			First(&member).Error; err != nil {
			return err
		}
		return tx.Delete(&member).Error
	})
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// FindMembers finds the members of a project ordered by join date, oldest first
func (r *projectRepositoryImpl) FindMembers(ctx context.Context, projectID uuid.UUID, page, limit int) ([]*domain.ProjectMember, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&domain.ProjectMember{}).
		Where("project_id = ?", projectID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	var members []*domain.ProjectMember
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("joined_at ASC").
		Offset(offset).
		Limit(limit).
		Find(&members).Error; err != nil {
		return nil, 0, err
	}
	return members, total, nil
}

// CountAll counts every project, used by the business metrics collector
func (r *projectRepositoryImpl) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Project{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// IsNotFound reports whether err is a record-not-found error from GORM
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
