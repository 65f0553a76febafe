package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scrumflow-api/internal/domain"
)

func TestUserStoryRepository_ExactlyOneBacklog(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserStoryRepository(db)
	backlogRepo := NewBacklogRepository(db)
	ctx := context.Background()

	productBacklog, err := backlogRepo.EnsureProductBacklog(ctx, uuid.New())
	require.NoError(t, err)
	sprintBacklog, err := backlogRepo.EnsureSprintBacklog(ctx, uuid.New())
	require.NoError(t, err)

	// neither backlog set
	err = repo.Create(ctx, &domain.UserStory{Title: "orphan", Description: "d"})
	assert.ErrorIs(t, err, ErrBacklogInvariant)

	// both backlogs set
	err = repo.Create(ctx, &domain.UserStory{
		Title:            "torn",
		Description:      "d",
		ProductBacklogID: &productBacklog.ID,
		SprintBacklogID:  &sprintBacklog.ID,
	})
	assert.ErrorIs(t, err, ErrBacklogInvariant)

	// exactly one is accepted
	require.NoError(t, repo.Create(ctx, &domain.UserStory{
		Title:            "ok",
		Description:      "d",
		Priority:         domain.StoryPriorityMedium,
		Status:           domain.StoryStatusTodo,
		ProductBacklogID: &productBacklog.ID,
	}))
}

func TestUserStoryRepository_PriorityOrdering(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserStoryRepository(db)
	backlogRepo := NewBacklogRepository(db)
	ctx := context.Background()

	backlog, err := backlogRepo.EnsureProductBacklog(ctx, uuid.New())
	require.NoError(t, err)

	for _, p := range []domain.StoryPriority{
		domain.StoryPriorityLow,
		domain.StoryPriorityCritical,
		domain.StoryPriorityMedium,
		domain.StoryPriorityHigh,
	} {
		require.NoError(t, repo.Create(ctx, &domain.UserStory{
			Title:            string(p),
			Description:      "d",
			Priority:         p,
			Status:           domain.StoryStatusTodo,
			ProductBacklogID: &backlog.ID,
		}))
	}

	stories, total, err := repo.FindByProductBacklogID(ctx, backlog.ID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	require.Len(t, stories, 4)
	assert.Equal(t, domain.StoryPriorityCritical, stories[0].Priority)
	assert.Equal(t, domain.StoryPriorityHigh, stories[1].Priority)
	assert.Equal(t, domain.StoryPriorityMedium, stories[2].Priority)
	assert.Equal(t, domain.StoryPriorityLow, stories[3].Priority)
}

func TestUserStoryRepository_Move(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserStoryRepository(db)
	backlogRepo := NewBacklogRepository(db)
	ctx := context.Background()

	projectID := uuid.New()
	sprintID := uuid.New()

	productBacklog, err := backlogRepo.EnsureProductBacklog(ctx, projectID)
	require.NoError(t, err)

	story := &domain.UserStory{
		Title:            "movable",
		Description:      "d",
		Priority:         domain.StoryPriorityMedium,
		Status:           domain.StoryStatusTodo,
		ProductBacklogID: &productBacklog.ID,
	}
	require.NoError(t, repo.Create(ctx, story))

	// moving to a sprint creates the sprint backlog lazily
	moved, err := repo.MoveToSprintBacklog(ctx, story.ID, sprintID)
	require.NoError(t, err)
	assert.Nil(t, moved.ProductBacklogID)
	require.NotNil(t, moved.SprintBacklogID)

	var sprintBacklog domain.SprintBacklog
	require.NoError(t, db.Where("sprint_id = ?", sprintID).First(&sprintBacklog).Error)
	assert.Equal(t, sprintBacklog.ID, *moved.SprintBacklogID)

	// and back to the product backlog
	moved, err = repo.MoveToProductBacklog(ctx, story.ID, projectID)
	require.NoError(t, err)
	assert.Nil(t, moved.SprintBacklogID)
	require.NotNil(t, moved.ProductBacklogID)
	assert.Equal(t, productBacklog.ID, *moved.ProductBacklogID)

	// no second product backlog was created for the project
	var count int64
	require.NoError(t, db.Model(&domain.ProductBacklog{}).Where("project_id = ?", projectID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestBacklogRepository_EnsureIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBacklogRepository(db)
	ctx := context.Background()

	projectID := uuid.New()

	first, err := repo.EnsureProductBacklog(ctx, projectID)
	require.NoError(t, err)
	second, err := repo.EnsureProductBacklog(ctx, projectID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	sprintID := uuid.New()
	sb1, err := repo.EnsureSprintBacklog(ctx, sprintID)
	require.NoError(t, err)
	sb2, err := repo.EnsureSprintBacklog(ctx, sprintID)
	require.NoError(t, err)
	assert.Equal(t, sb1.ID, sb2.ID)
}
