package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scrumflow-api/internal/domain"
)

func TestRoleRepository_FindRolesByUserID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRoleRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	for _, role := range []domain.Role{domain.RoleEditor, domain.RoleSuperuser} {
		require.NoError(t, db.Create(&domain.RoleGrant{
			UserID:    userID,
			Role:      role,
			GrantedAt: time.Now(),
		}).Error)
	}

	roles, err := repo.FindRolesByUserID(ctx, userID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []domain.Role{domain.RoleEditor, domain.RoleSuperuser}, roles)

	// a user without grants gets an empty slice, not an error
	roles, err = repo.FindRolesByUserID(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, roles)
}
