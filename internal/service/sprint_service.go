package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"scrumflow-api/internal/authz"
	"scrumflow-api/internal/domain"
	"scrumflow-api/internal/dto"
	"scrumflow-api/internal/metrics"
	"scrumflow-api/internal/repository"
	"scrumflow-api/internal/response"
)

// SprintService defines the interface for sprint business logic
type SprintService interface {
	ListSprints(ctx context.Context, projectID uuid.UUID, actor authz.Actor, page int) (*dto.PaginatedSprintsResponse, error)
	CreateSprint(ctx context.Context, projectID uuid.UUID, req *dto.CreateSprintRequest, actor authz.Actor) (*dto.SprintResponse, error)
	GetSprint(ctx context.Context, sprintID uuid.UUID, actor authz.Actor) (*dto.SprintResponse, error)
	UpdateSprint(ctx context.Context, sprintID uuid.UUID, req *dto.UpdateSprintRequest, actor authz.Actor) (*dto.SprintResponse, error)
	CloseSprint(ctx context.Context, sprintID uuid.UUID, actor authz.Actor) (*dto.SprintResponse, error)
}

// sprintServiceImpl is the implementation of SprintService
type sprintServiceImpl struct {
	sprintRepo  repository.SprintRepository
	projectRepo repository.ProjectRepository
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewSprintService creates a new instance of SprintService
func NewSprintService(sprintRepo repository.SprintRepository, projectRepo repository.ProjectRepository, m *metrics.Metrics, logger *zap.Logger) SprintService {
	return &sprintServiceImpl{
		sprintRepo:  sprintRepo,
		projectRepo: projectRepo,
		metrics:     m,
		logger:      logger,
	}
}

// ListSprints lists the sprints of a project, most recently started first.
// Non-members get not-found.
func (s *sprintServiceImpl) ListSprints(ctx context.Context, projectID uuid.UUID, actor authz.Actor, page int) (*dto.PaginatedSprintsResponse, error) {
	if page < 1 {
		page = 1
	}

	if _, err := s.requireProjectView(ctx, projectID, actor); err != nil {
		return nil, err
	}

	sprints, total, err := s.sprintRepo.FindByProjectID(ctx, projectID, page, defaultPageSize)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch sprints", err.Error())
	}

	responses := make([]dto.SprintResponse, 0, len(sprints))
	for _, sprint := range sprints {
		responses = append(responses, *toSprintResponse(sprint))
	}

	return &dto.PaginatedSprintsResponse{
		Sprints: responses,
		Total:   total,
		Page:    page,
		Limit:   defaultPageSize,
	}, nil
}

// CreateSprint creates a sprint in the project. Requires the owner-or-editor
// rule; an ACTIVE status is rejected while another sprint is active.
func (s *sprintServiceImpl) CreateSprint(ctx context.Context, projectID uuid.UUID, req *dto.CreateSprintRequest, actor authz.Actor) (*dto.SprintResponse, error) {
	project, err := s.requireProjectView(ctx, projectID, actor)
	if err != nil {
		return nil, err
	}
	if err := s.requireSprintManage(ctx, project, actor); err != nil {
		return nil, err
	}

	startDate, endDate, err := parseSprintDates(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	status := domain.SprintStatusPlanning
	if req.Status != "" {
		status = domain.SprintStatus(req.Status)
	}

	sprint := &domain.Sprint{
		ProjectID:   projectID,
		Name:        req.Name,
		Description: req.Description,
		StartDate:   startDate,
		EndDate:     endDate,
		Status:      status,
	}

	if err := s.sprintRepo.Create(ctx, sprint); err != nil {
		if errors.Is(err, repository.ErrActiveSprintExists) {
			return nil, response.NewValidationError("Another sprint is already active in this project", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create sprint", err.Error())
	}

	s.logger.Info("sprint created",
		zap.String("sprint_id", sprint.ID.String()),
		zap.String("project_id", projectID.String()),
		zap.String("status", string(sprint.Status)))

	if s.metrics != nil {
		s.metrics.IncrementSprintCreated()
	}

	return toSprintResponse(sprint), nil
}

// GetSprint retrieves a sprint. Non-members of the owning project get
// not-found.
func (s *sprintServiceImpl) GetSprint(ctx context.Context, sprintID uuid.UUID, actor authz.Actor) (*dto.SprintResponse, error) {
	sprint, _, err := s.findSprintVisible(ctx, sprintID, actor)
	if err != nil {
		return nil, err
	}
	return toSprintResponse(sprint), nil
}

// UpdateSprint updates a sprint. Date and single-active-sprint validation
// run over the effective values.
func (s *sprintServiceImpl) UpdateSprint(ctx context.Context, sprintID uuid.UUID, req *dto.UpdateSprintRequest, actor authz.Actor) (*dto.SprintResponse, error) {
	sprint, project, err := s.findSprintVisible(ctx, sprintID, actor)
	if err != nil {
		return nil, err
	}
	if err := s.requireSprintManage(ctx, project, actor); err != nil {
		return nil, err
	}

	if req.Name != nil {
		sprint.Name = *req.Name
	}
	if req.Description != nil {
		sprint.Description = *req.Description
	}
	if req.StartDate != nil {
		parsed, parseErr := time.Parse(dto.DateFormat, *req.StartDate)
		if parseErr != nil {
			return nil, response.NewValidationError("Invalid start date", parseErr.Error())
		}
		sprint.StartDate = datatypes.Date(parsed)
	}
	if req.EndDate != nil {
		parsed, parseErr := time.Parse(dto.DateFormat, *req.EndDate)
		if parseErr != nil {
			return nil, response.NewValidationError("Invalid end date", parseErr.Error())
		}
		sprint.EndDate = datatypes.Date(parsed)
	}
	if req.Status != nil {
		sprint.Status = domain.SprintStatus(*req.Status)
	}

	if time.Time(sprint.EndDate).Before(time.Time(sprint.StartDate)) {
		return nil, response.NewValidationError("End date cannot be before start date", "")
	}

	if err := s.sprintRepo.Update(ctx, sprint); err != nil {
		if errors.Is(err, repository.ErrActiveSprintExists) {
			return nil, response.NewValidationError("Another sprint is already active in this project", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update sprint", err.Error())
	}

	return toSprintResponse(sprint), nil
}

// CloseSprint transitions a sprint to CLOSED. Closing an already closed
// sprint is a no-op.
func (s *sprintServiceImpl) CloseSprint(ctx context.Context, sprintID uuid.UUID, actor authz.Actor) (*dto.SprintResponse, error) {
	sprint, project, err := s.findSprintVisible(ctx, sprintID, actor)
	if err != nil {
		return nil, err
	}
	if err := s.requireSprintManage(ctx, project, actor); err != nil {
		return nil, err
	}

	if sprint.Status == domain.SprintStatusClosed {
		return toSprintResponse(sprint), nil
	}

	sprint.Status = domain.SprintStatusClosed
	if err := s.sprintRepo.Update(ctx, sprint); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to close sprint", err.Error())
	}

	s.logger.Info("sprint closed",
		zap.String("sprint_id", sprint.ID.String()),
		zap.String("project_id", sprint.ProjectID.String()))

	return toSprintResponse(sprint), nil
}

// findSprintVisible loads a sprint and its project, masking both as
// not-found for callers without view access
func (s *sprintServiceImpl) findSprintVisible(ctx context.Context, sprintID uuid.UUID, actor authz.Actor) (*domain.Sprint, *domain.Project, error) {
	sprint, err := s.sprintRepo.FindByID(ctx, sprintID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, response.NewNotFoundError("Sprint not found", "")
		}
		return nil, nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch sprint", err.Error())
	}

	project, err := s.requireProjectView(ctx, sprint.ProjectID, actor)
	if err != nil {
		return nil, nil, err
	}
	return sprint, project, nil
}

func (s *sprintServiceImpl) requireProjectView(ctx context.Context, projectID uuid.UUID, actor authz.Actor) (*domain.Project, error) {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Project not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch project", err.Error())
	}

	isMember, err := s.projectRepo.IsMember(ctx, projectID, actor.UserID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check membership", err.Error())
	}
	if !authz.CanViewProject(actor, isMember) {
		return nil, response.NewNotFoundError("Project not found", "")
	}
	return project, nil
}

func (s *sprintServiceImpl) requireSprintManage(ctx context.Context, project *domain.Project, actor authz.Actor) error {
	isMember, err := s.projectRepo.IsMember(ctx, project.ID, actor.UserID)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to check membership", err.Error())
	}
	if !authz.CanManageSprint(actor, project.IsOwner(actor.UserID), isMember) {
		return response.NewForbiddenError("You do not have permission to manage sprints in this project", "")
	}
	return nil
}

// parseSprintDates parses the wire dates and enforces the range rule
func parseSprintDates(start, end string) (datatypes.Date, datatypes.Date, error) {
	startDate, err := time.Parse(dto.DateFormat, start)
	if err != nil {
		return datatypes.Date{}, datatypes.Date{}, response.NewValidationError("Invalid start date", err.Error())
	}
	endDate, err := time.Parse(dto.DateFormat, end)
	if err != nil {
		return datatypes.Date{}, datatypes.Date{}, response.NewValidationError("Invalid end date", err.Error())
	}
	if endDate.Before(startDate) {
		return datatypes.Date{}, datatypes.Date{}, response.NewValidationError("End date cannot be before start date", "")
	}
	return datatypes.Date(startDate), datatypes.Date(endDate), nil
}

// toSprintResponse converts domain.Sprint to dto.SprintResponse
func toSprintResponse(sprint *domain.Sprint) *dto.SprintResponse {
	return &dto.SprintResponse{
		ID:          sprint.ID,
		ProjectID:   sprint.ProjectID,
		Name:        sprint.Name,
		Description: sprint.Description,
		StartDate:   time.Time(sprint.StartDate).Format(dto.DateFormat),
		EndDate:     time.Time(sprint.EndDate).Format(dto.DateFormat),
		Status:      string(sprint.Status),
		CreatedAt:   sprint.CreatedAt,
		UpdatedAt:   sprint.UpdatedAt,
	}
}
