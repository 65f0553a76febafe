package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"scrumflow-api/internal/authz"
	"scrumflow-api/internal/domain"
	"scrumflow-api/internal/dto"
	"scrumflow-api/internal/metrics"
	"scrumflow-api/internal/repository"
	"scrumflow-api/internal/response"
)

// UserStoryService defines the interface for backlog and user story
// business logic
type UserStoryService interface {
	GetProductBacklog(ctx context.Context, projectID uuid.UUID, actor authz.Actor, page int) (*dto.ProductBacklogPageResponse, error)
	CreateStoryInProductBacklog(ctx context.Context, projectID uuid.UUID, req *dto.CreateUserStoryRequest, actor authz.Actor) (*dto.UserStoryResponse, error)
	GetSprintBacklog(ctx context.Context, sprintID uuid.UUID, actor authz.Actor, page int) (*dto.SprintBacklogPageResponse, error)
	CreateStoryInSprintBacklog(ctx context.Context, sprintID uuid.UUID, req *dto.CreateUserStoryRequest, actor authz.Actor) (*dto.UserStoryResponse, error)
	GetStory(ctx context.Context, storyID uuid.UUID, actor authz.Actor) (*dto.UserStoryResponse, error)
	UpdateStory(ctx context.Context, storyID uuid.UUID, req *dto.UpdateUserStoryRequest, actor authz.Actor) (*dto.UserStoryResponse, error)
	DeleteStory(ctx context.Context, storyID uuid.UUID, actor authz.Actor) error
	MoveStory(ctx context.Context, storyID uuid.UUID, req *dto.MoveUserStoryRequest, actor authz.Actor) (*dto.UserStoryResponse, error)
}

// userStoryServiceImpl is the implementation of UserStoryService
type userStoryServiceImpl struct {
	storyRepo   repository.UserStoryRepository
	backlogRepo repository.BacklogRepository
	sprintRepo  repository.SprintRepository
	projectRepo repository.ProjectRepository
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewUserStoryService creates a new instance of UserStoryService
func NewUserStoryService(storyRepo repository.UserStoryRepository, backlogRepo repository.BacklogRepository, sprintRepo repository.SprintRepository, projectRepo repository.ProjectRepository, m *metrics.Metrics, logger *zap.Logger) UserStoryService {
	return &userStoryServiceImpl{
		storyRepo:   storyRepo,
		backlogRepo: backlogRepo,
		sprintRepo:  sprintRepo,
		projectRepo: projectRepo,
		metrics:     m,
		logger:      logger,
	}
}

// GetProductBacklog returns a page of the project's product backlog,
// creating the backlog row on first access
func (s *userStoryServiceImpl) GetProductBacklog(ctx context.Context, projectID uuid.UUID, actor authz.Actor, page int) (*dto.ProductBacklogPageResponse, error) {
	if page < 1 {
		page = 1
	}

	if err := s.requireProjectAccess(ctx, projectID, actor); err != nil {
		return nil, err
	}

	backlog, err := s.backlogRepo.EnsureProductBacklog(ctx, projectID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load product backlog", err.Error())
	}

	stories, total, err := s.storyRepo.FindByProductBacklogID(ctx, backlog.ID, page, defaultPageSize)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch user stories", err.Error())
	}

	return &dto.ProductBacklogPageResponse{
		BacklogID: backlog.ID,
		ProjectID: projectID,
		Stories:   toStoryResponses(stories),
		Total:     total,
		Page:      page,
		Limit:     defaultPageSize,
	}, nil
}

// CreateStoryInProductBacklog creates a story attached to the project's
// product backlog
func (s *userStoryServiceImpl) CreateStoryInProductBacklog(ctx context.Context, projectID uuid.UUID, req *dto.CreateUserStoryRequest, actor authz.Actor) (*dto.UserStoryResponse, error) {
	if err := s.requireProjectAccess(ctx, projectID, actor); err != nil {
		return nil, err
	}

	backlog, err := s.backlogRepo.EnsureProductBacklog(ctx, projectID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load product backlog", err.Error())
	}

	story := storyFromRequest(req)
	story.ProductBacklogID = &backlog.ID

	return s.createStory(ctx, story)
}

// GetSprintBacklog returns a page of the sprint's backlog, creating the
// backlog row on first access
func (s *userStoryServiceImpl) GetSprintBacklog(ctx context.Context, sprintID uuid.UUID, actor authz.Actor, page int) (*dto.SprintBacklogPageResponse, error) {
	if page < 1 {
		page = 1
	}

	sprint, err := s.findSprint(ctx, sprintID)
	if err != nil {
		return nil, err
	}
	if err := s.requireProjectAccess(ctx, sprint.ProjectID, actor); err != nil {
		return nil, err
	}

	backlog, err := s.backlogRepo.EnsureSprintBacklog(ctx, sprintID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load sprint backlog", err.Error())
	}

	stories, total, err := s.storyRepo.FindBySprintBacklogID(ctx, backlog.ID, page, defaultPageSize)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch user stories", err.Error())
	}

	return &dto.SprintBacklogPageResponse{
		BacklogID: backlog.ID,
		SprintID:  sprintID,
		Stories:   toStoryResponses(stories),
		Total:     total,
		Page:      page,
		Limit:     defaultPageSize,
	}, nil
}

// CreateStoryInSprintBacklog creates a story attached to the sprint's backlog
func (s *userStoryServiceImpl) CreateStoryInSprintBacklog(ctx context.Context, sprintID uuid.UUID, req *dto.CreateUserStoryRequest, actor authz.Actor) (*dto.UserStoryResponse, error) {
	sprint, err := s.findSprint(ctx, sprintID)
	if err != nil {
		return nil, err
	}
	if err := s.requireProjectAccess(ctx, sprint.ProjectID, actor); err != nil {
		return nil, err
	}

	backlog, err := s.backlogRepo.EnsureSprintBacklog(ctx, sprintID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load sprint backlog", err.Error())
	}

	story := storyFromRequest(req)
	story.SprintBacklogID = &backlog.ID

	return s.createStory(ctx, story)
}

// GetStory retrieves a user story
func (s *userStoryServiceImpl) GetStory(ctx context.Context, storyID uuid.UUID, actor authz.Actor) (*dto.UserStoryResponse, error) {
	story, _, err := s.findStoryWithAccess(ctx, storyID, actor)
	if err != nil {
		return nil, err
	}
	return toStoryResponse(story), nil
}

// UpdateStory updates a user story's content fields
func (s *userStoryServiceImpl) UpdateStory(ctx context.Context, storyID uuid.UUID, req *dto.UpdateUserStoryRequest, actor authz.Actor) (*dto.UserStoryResponse, error) {
	story, _, err := s.findStoryWithAccess(ctx, storyID, actor)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		story.Title = *req.Title
	}
	if req.Description != nil {
		story.Description = *req.Description
	}
	if req.AsA != nil {
		story.AsA = *req.AsA
	}
	if req.IWant != nil {
		story.IWant = *req.IWant
	}
	if req.SoThat != nil {
		story.SoThat = *req.SoThat
	}
	if req.AcceptanceCriteria != nil {
		story.AcceptanceCriteria = *req.AcceptanceCriteria
	}
	if req.StoryPoints != nil {
		story.StoryPoints = req.StoryPoints
	}
	if req.Priority != nil {
		story.Priority = domain.StoryPriority(*req.Priority)
	}
	if req.Status != nil {
		story.Status = domain.StoryStatus(*req.Status)
	}

	if err := s.storyRepo.Update(ctx, story); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update user story", err.Error())
	}

	return toStoryResponse(story), nil
}

// DeleteStory deletes a user story and its tasks and comments
func (s *userStoryServiceImpl) DeleteStory(ctx context.Context, storyID uuid.UUID, actor authz.Actor) error {
	story, _, err := s.findStoryWithAccess(ctx, storyID, actor)
	if err != nil {
		return err
	}

	if err := s.storyRepo.Delete(ctx, story.ID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete user story", err.Error())
	}

	s.logger.Info("user story deleted",
		zap.String("story_id", story.ID.String()),
		zap.String("user_id", actor.UserID.String()))

	return nil
}

// MoveStory moves a story to the product backlog or into a sprint of the
// same project
func (s *userStoryServiceImpl) MoveStory(ctx context.Context, storyID uuid.UUID, req *dto.MoveUserStoryRequest, actor authz.Actor) (*dto.UserStoryResponse, error) {
	story, projectID, err := s.findStoryWithAccess(ctx, storyID, actor)
	if err != nil {
		return nil, err
	}

	var moved *domain.UserStory
	switch req.MoveTo {
	case "sprint":
		if req.SprintID == nil {
			return nil, response.NewValidationError("sprintId is required when moving to a sprint", "")
		}
		sprint, findErr := s.findSprint(ctx, *req.SprintID)
		if findErr != nil {
			return nil, findErr
		}
		if sprint.ProjectID != projectID {
			return nil, response.NewValidationError("Sprint belongs to a different project", "")
		}
		moved, err = s.storyRepo.MoveToSprintBacklog(ctx, story.ID, sprint.ID)
	case "product":
		moved, err = s.storyRepo.MoveToProductBacklog(ctx, story.ID, projectID)
	default:
		return nil, response.NewValidationError("moveTo must be product or sprint", "")
	}
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to move user story", err.Error())
	}

	s.logger.Info("user story moved",
		zap.String("story_id", story.ID.String()),
		zap.String("move_to", req.MoveTo))

	if s.metrics != nil {
		s.metrics.IncrementUserStoryMoved()
	}

	return toStoryResponse(moved), nil
}

func (s *userStoryServiceImpl) createStory(ctx context.Context, story *domain.UserStory) (*dto.UserStoryResponse, error) {
	if err := s.storyRepo.Create(ctx, story); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create user story", err.Error())
	}

	s.logger.Info("user story created", zap.String("story_id", story.ID.String()))

	if s.metrics != nil {
		s.metrics.IncrementUserStoryCreated()
	}

	return toStoryResponse(story), nil
}

// requireProjectAccess enforces membership with a forbidden response for
// outsiders. Backlog and story routes answer 403 rather than masking.
func (s *userStoryServiceImpl) requireProjectAccess(ctx context.Context, projectID uuid.UUID, actor authz.Actor) error {
	isMember, err := s.projectRepo.IsMember(ctx, projectID, actor.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Project not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to check membership", err.Error())
	}
	if !authz.CanViewProject(actor, isMember) {
		return response.NewForbiddenError("You are not a member of this project", "")
	}
	return nil
}

func (s *userStoryServiceImpl) findSprint(ctx context.Context, sprintID uuid.UUID) (*domain.Sprint, error) {
	sprint, err := s.sprintRepo.FindByID(ctx, sprintID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Sprint not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch sprint", err.Error())
	}
	return sprint, nil
}

// findStoryWithAccess loads a story and checks project membership, returning
// the owning project's ID for further checks
func (s *userStoryServiceImpl) findStoryWithAccess(ctx context.Context, storyID uuid.UUID, actor authz.Actor) (*domain.UserStory, uuid.UUID, error) {
	story, err := s.storyRepo.FindByID(ctx, storyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, uuid.Nil, response.NewNotFoundError("User story not found", "")
		}
		return nil, uuid.Nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch user story", err.Error())
	}

	projectID, err := resolveStoryProjectID(ctx, story, s.backlogRepo, s.sprintRepo)
	if err != nil {
		return nil, uuid.Nil, err
	}

	if err := s.requireProjectAccess(ctx, projectID, actor); err != nil {
		return nil, uuid.Nil, err
	}
	return story, projectID, nil
}

// storyFromRequest builds a domain story from the create request, applying
// the MEDIUM/TODO defaults
func storyFromRequest(req *dto.CreateUserStoryRequest) *domain.UserStory {
	priority := domain.StoryPriorityMedium
	if req.Priority != "" {
		priority = domain.StoryPriority(req.Priority)
	}
	status := domain.StoryStatusTodo
	if req.Status != "" {
		status = domain.StoryStatus(req.Status)
	}

	return &domain.UserStory{
		Title:              req.Title,
		Description:        req.Description,
		AsA:                req.AsA,
		IWant:              req.IWant,
		SoThat:             req.SoThat,
		AcceptanceCriteria: req.AcceptanceCriteria,
		StoryPoints:        req.StoryPoints,
		Priority:           priority,
		Status:             status,
	}
}

// toStoryResponse converts domain.UserStory to dto.UserStoryResponse
func toStoryResponse(story *domain.UserStory) *dto.UserStoryResponse {
	return &dto.UserStoryResponse{
		ID:                 story.ID,
		Title:              story.Title,
		Description:        story.Description,
		AsA:                story.AsA,
		IWant:              story.IWant,
		SoThat:             story.SoThat,
		AcceptanceCriteria: story.AcceptanceCriteria,
		StoryPoints:        story.StoryPoints,
		Priority:           string(story.Priority),
		Status:             string(story.Status),
		ProductBacklogID:   story.ProductBacklogID,
		SprintBacklogID:    story.SprintBacklogID,
		CreatedAt:          story.CreatedAt,
		UpdatedAt:          story.UpdatedAt,
	}
}

func toStoryResponses(stories []*domain.UserStory) []dto.UserStoryResponse {
	responses := make([]dto.UserStoryResponse, 0, len(stories))
	for _, story := range stories {
		responses = append(responses, *toStoryResponse(story))
	}
	return responses
}
