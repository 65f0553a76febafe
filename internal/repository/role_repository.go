package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"scrumflow-api/internal/domain"
)

// RoleRepository defines the interface for role grant data access
type RoleRepository interface {
	FindRolesByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Role, error)
}

// roleRepositoryImpl is the GORM implementation of RoleRepository
type roleRepositoryImpl struct {
	db *gorm.DB
}

// NewRoleRepository creates a new instance of RoleRepository
func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepositoryImpl{db: db}
}

// FindRolesByUserID finds the roles granted to a user. An empty slice means
// the user carries only the implicit member role.
func (r *roleRepositoryImpl) FindRolesByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Role, error) {
	var grants []domain.RoleGrant
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&grants).Error; err != nil {
		return nil, err
	}

	roles := make([]domain.Role, 0, len(grants))
	for _, grant := range grants {
		roles = append(roles, grant.Role)
	}
	return roles, nil
}
