package service

import (
	"context"

	"github.com/google/uuid"

	"scrumflow-api/internal/domain"
	"scrumflow-api/internal/repository"
	"scrumflow-api/internal/response"
)

// resolveStoryProjectID walks from a story through its backlog to the owning
// project. Every persisted story sits in exactly one backlog, so a dangling
// reference here is an internal error, not a user-facing not-found.
func resolveStoryProjectID(ctx context.Context, story *domain.UserStory, backlogRepo repository.BacklogRepository, sprintRepo repository.SprintRepository) (uuid.UUID, error) {
	if story.ProductBacklogID != nil {
		backlog, err := backlogRepo.FindProductBacklogByID(ctx, *story.ProductBacklogID)
		if err != nil {
			return uuid.Nil, response.NewAppError(response.ErrCodeInternal, "Failed to resolve story backlog", err.Error())
		}
		return backlog.ProjectID, nil
	}

	if story.SprintBacklogID != nil {
		backlog, err := backlogRepo.FindSprintBacklogByID(ctx, *story.SprintBacklogID)
		if err != nil {
			return uuid.Nil, response.NewAppError(response.ErrCodeInternal, "Failed to resolve story backlog", err.Error())
		}
		sprint, err := sprintRepo.FindByID(ctx, backlog.SprintID)
		if err != nil {
			return uuid.Nil, response.NewAppError(response.ErrCodeInternal, "Failed to resolve story sprint", err.Error())
		}
		return sprint.ProjectID, nil
	}

	return uuid.Nil, response.NewAppError(response.ErrCodeInternal, "Story has no backlog", "")
}
