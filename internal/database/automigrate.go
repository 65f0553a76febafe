package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"scrumflow-api/internal/domain"
)

// AutoMigrate runs GORM auto-migration for all domain models.
// Tables, indexes and foreign key constraints are derived from the
// struct definitions in the domain package.
func AutoMigrate(db *gorm.DB) error {
	models := []interface{}{
		&domain.Project{},
		&domain.ProjectMember{},
		&domain.RoleGrant{},
		&domain.Sprint{},
		&domain.ProductBacklog{},
		&domain.SprintBacklog{},
		&domain.UserStory{},
		&domain.Task{},
		&domain.TaskComment{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to run auto-migration: %w", err)
	}

	return nil
}

// SafeAutoMigrate migrates one model at a time so a failure identifies
// the offending table. Existing tables only receive schema updates.
func SafeAutoMigrate(db *gorm.DB, logger *zap.Logger) error {
	type modelInfo struct {
		model     interface{}
		tableName string
	}

	models := []modelInfo{
		{&domain.Project{}, "projects"},
		{&domain.ProjectMember{}, "project_members"},
		{&domain.RoleGrant{}, "role_grants"},
		{&domain.Sprint{}, "sprints"},
		{&domain.ProductBacklog{}, "product_backlogs"},
		{&domain.SprintBacklog{}, "sprint_backlogs"},
		{&domain.UserStory{}, "user_stories"},
		{&domain.Task{}, "tasks"},
		{&domain.TaskComment{}, "task_comments"},
	}

	migrator := db.Migrator()

	for _, m := range models {
		existed := migrator.HasTable(m.model)

		if err := db.AutoMigrate(m.model); err != nil {
			logger.Error("Failed to migrate table",
				zap.String("table", m.tableName),
				zap.Bool("table_existed", existed),
				zap.Error(err),
			)
			return fmt.Errorf("failed to migrate table %s: %w", m.tableName, err)
		}

		logger.Info("Migrated table",
			zap.String("table", m.tableName),
			zap.Bool("was_existing", existed),
		)
	}

	return nil
}
