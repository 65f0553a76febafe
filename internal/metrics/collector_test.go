package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestBusinessMetricsCollector_Collect(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	statements := []string{
		`CREATE TABLE projects (
			id TEXT PRIMARY KEY,
			created_at DATETIME,
			updated_at DATETIME,
			owner_id TEXT,
			name TEXT,
			description TEXT
		)`,
		`CREATE TABLE sprints (
			id TEXT PRIMARY KEY,
			created_at DATETIME,
			updated_at DATETIME,
			project_id TEXT,
			name TEXT,
			description TEXT,
			start_date DATE,
			end_date DATE,
			status TEXT
		)`,
		`CREATE TABLE user_stories (
			id TEXT PRIMARY KEY,
			created_at DATETIME,
			updated_at DATETIME,
			title TEXT,
			description TEXT,
			as_a TEXT,
			i_want TEXT,
			so_that TEXT,
			acceptance_criteria TEXT,
			story_points INTEGER,
			priority TEXT,
			status TEXT,
			product_backlog_id TEXT,
			sprint_backlog_id TEXT
		)`,
	}
	for _, stmt := range statements {
		require.NoError(t, db.Exec(stmt).Error)
	}

	require.NoError(t, db.Exec(
		`INSERT INTO projects (id, name, owner_id) VALUES ('p1', 'One', 'u1'), ('p2', 'Two', 'u1')`,
	).Error)
	require.NoError(t, db.Exec(
		`INSERT INTO sprints (id, project_id, name, status) VALUES
			('s1', 'p1', 'Active', 'ACTIVE'),
			('s2', 'p1', 'Planned', 'PLANNING'),
			('s3', 'p2', 'Closed', 'CLOSED')`,
	).Error)
	require.NoError(t, db.Exec(
		`INSERT INTO user_stories (id, title, description) VALUES ('us1', 'A', 'd')`,
	).Error)

	m := NewWithRegistry(prometheus.NewRegistry(), zap.NewNop())
	collector := NewBusinessMetricsCollector(db, m, zap.NewNop())
	collector.collect()

	require.Equal(t, float64(2), getGaugeValue(t, m.ProjectsTotal))
	require.Equal(t, float64(1), getGaugeValue(t, m.SprintsActiveTotal))
	require.Equal(t, float64(1), getGaugeValue(t, m.UserStoriesTotal))
}
