package metrics

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"scrumflow-api/internal/repository"
)

// BusinessMetricsCollector collects business gauges periodically
type BusinessMetricsCollector struct {
	projects repository.ProjectRepository
	sprints  repository.SprintRepository
	stories  repository.UserStoryRepository
	metrics  *Metrics
	logger   *zap.Logger
	ticker   *time.Ticker
	done     chan bool
}

// NewBusinessMetricsCollector creates a new collector
func NewBusinessMetricsCollector(db *gorm.DB, metrics *Metrics, logger *zap.Logger) *BusinessMetricsCollector {
	return &BusinessMetricsCollector{
		projects: repository.NewProjectRepository(db),
		sprints:  repository.NewSprintRepository(db),
		stories:  repository.NewUserStoryRepository(db),
		metrics:  metrics,
		logger:   logger,
		ticker:   time.NewTicker(60 * time.Second),
		done:     make(chan bool),
	}
}

// Start begins collecting metrics
func (c *BusinessMetricsCollector) Start() {
	go func() {
		c.collect()

		for {
			select {
			case <-c.ticker.C:
				c.collect()
			case <-c.done:
				return
			}
		}
	}()
}

// Stop stops the collector
func (c *BusinessMetricsCollector) Stop() {
	c.ticker.Stop()
	c.done <- true
}

func (c *BusinessMetricsCollector) collect() {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("Panic in business metrics collection",
				zap.Any("panic", r),
			)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if count, err := c.projects.CountAll(ctx); err != nil {
		c.logger.Error("Failed to count projects", zap.Error(err))
	} else {
		c.metrics.SetProjectsTotal(count)
	}

	if count, err := c.sprints.CountActive(ctx); err != nil {
		c.logger.Error("Failed to count active sprints", zap.Error(err))
	} else {
		c.metrics.SetSprintsActiveTotal(count)
	}

	if count, err := c.stories.CountAll(ctx); err != nil {
		c.logger.Error("Failed to count user stories", zap.Error(err))
	} else {
		c.metrics.SetUserStoriesTotal(count)
	}
}
