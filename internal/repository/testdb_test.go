package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory SQLite database with the full schema.
// SQLite has no uuid type or gen_random_uuid(), so ids are TEXT and a create
// callback fills in missing primary keys.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err, "failed to open database")

	err = db.Callback().Create().Before("gorm:create").Register("generate_uuid", func(db *gorm.DB) {
		if db.Statement.Schema != nil {
			for _, field := range db.Statement.Schema.PrimaryFields {
				if field.DataType == "uuid" {
					fieldValue := field.ReflectValueOf(db.Statement.Context, db.Statement.ReflectValue)
					if fieldValue.IsZero() {
						field.Set(db.Statement.Context, db.Statement.ReflectValue, uuid.New())
					}
				}
			}
		}
	})
	require.NoError(t, err)

	statements := []string{
		`CREATE TABLE projects (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			owner_id TEXT NOT NULL,
			name TEXT NOT NULL,
			description TEXT
		)`,
		`CREATE TABLE project_members (
			id TEXT PRIMARY KEY,
			project_id TEXT NOT NULL,
			user_id TEXT NOT NULL,
			username TEXT NOT NULL,
			joined_at DATETIME NOT NULL,
			UNIQUE (project_id, user_id)
		)`,
		`CREATE TABLE sprints (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			project_id TEXT NOT NULL,
			name TEXT NOT NULL,
			description TEXT,
			start_date DATE NOT NULL,
			end_date DATE NOT NULL,
			status TEXT NOT NULL DEFAULT 'PLANNING'
		)`,
		`CREATE TABLE product_backlogs (
			id TEXT PRIMARY KEY,
			project_id TEXT NOT NULL UNIQUE,
			created_at DATETIME NOT NULL
		)`,
		`CREATE TABLE sprint_backlogs (
			id TEXT PRIMARY KEY,
			sprint_id TEXT NOT NULL UNIQUE,
			created_at DATETIME NOT NULL
		)`,
		`CREATE TABLE user_stories (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			as_a TEXT,
			i_want TEXT,
			so_that TEXT,
			acceptance_criteria TEXT,
			story_points INTEGER,
			priority TEXT NOT NULL DEFAULT 'MEDIUM',
			status TEXT NOT NULL DEFAULT 'TODO',
			product_backlog_id TEXT,
			sprint_backlog_id TEXT
		)`,
		`CREATE TABLE tasks (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			user_story_id TEXT NOT NULL,
			title TEXT NOT NULL,
			description TEXT,
			assigned_to TEXT,
			status TEXT NOT NULL DEFAULT 'TODO',
			priority TEXT NOT NULL DEFAULT 'MEDIUM',
			estimated_hours REAL
		)`,
		`CREATE TABLE task_comments (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			task_id TEXT NOT NULL,
			author_id TEXT NOT NULL,
			content TEXT NOT NULL
		)`,
		`CREATE TABLE role_grants (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			role TEXT NOT NULL,
			granted_at DATETIME NOT NULL,
			UNIQUE (user_id, role)
		)`,
	}
	for _, stmt := range statements {
		require.NoError(t, db.Exec(stmt).Error)
	}

	return db
}
