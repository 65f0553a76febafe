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

// defaultPageSize is the page size for every list endpoint
const defaultPageSize = 10

// ProjectService defines the interface for project business logic
type ProjectService interface {
	CreateProject(ctx context.Context, req *dto.CreateProjectRequest, actor authz.Actor) (*dto.ProjectResponse, error)
	ListProjects(ctx context.Context, actor authz.Actor, page int) (*dto.PaginatedProjectsResponse, error)
	GetProject(ctx context.Context, projectID uuid.UUID, actor authz.Actor) (*dto.ProjectResponse, error)
	UpdateProject(ctx context.Context, projectID uuid.UUID, req *dto.UpdateProjectRequest, actor authz.Actor) (*dto.ProjectResponse, error)
	DeleteProject(ctx context.Context, projectID uuid.UUID, actor authz.Actor) (string, error)
}

// projectServiceImpl is the implementation of ProjectService
type projectServiceImpl struct {
	projectRepo repository.ProjectRepository
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewProjectService creates a new instance of ProjectService
func NewProjectService(projectRepo repository.ProjectRepository, m *metrics.Metrics, logger *zap.Logger) ProjectService {
	return &projectServiceImpl{
		projectRepo: projectRepo,
		metrics:     m,
		logger:      logger,
	}
}

// CreateProject creates a new project owned by the caller. The product
// backlog is created alongside it.
func (s *projectServiceImpl) CreateProject(ctx context.Context, req *dto.CreateProjectRequest, actor authz.Actor) (*dto.ProjectResponse, error) {
	project := &domain.Project{
		OwnerID:     actor.UserID,
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create project", err.Error())
	}

	s.logger.Info("project created",
		zap.String("project_id", project.ID.String()),
		zap.String("owner_id", actor.UserID.String()))

	if s.metrics != nil {
		s.metrics.IncrementProjectCreated()
	}

	return toProjectResponse(project), nil
}

// ListProjects lists the projects the caller owns or is a member of
func (s *projectServiceImpl) ListProjects(ctx context.Context, actor authz.Actor, page int) (*dto.PaginatedProjectsResponse, error) {
	if page < 1 {
		page = 1
	}

	projects, total, err := s.projectRepo.FindVisibleToUser(ctx, actor.UserID, page, defaultPageSize)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch projects", err.Error())
	}

	responses := make([]dto.ProjectResponse, 0, len(projects))
	for _, project := range projects {
		responses = append(responses, *toProjectResponse(project))
	}

	return &dto.PaginatedProjectsResponse{
		Projects: responses,
		Total:    total,
		Page:     page,
		Limit:    defaultPageSize,
	}, nil
}

// GetProject retrieves a project. Non-members get a not-found response so
// project IDs leak nothing.
func (s *projectServiceImpl) GetProject(ctx context.Context, projectID uuid.UUID, actor authz.Actor) (*dto.ProjectResponse, error) {
	project, err := s.findProjectVisible(ctx, projectID, actor)
	if err != nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

// UpdateProject updates a project. Allowed for the owner or an editor who is
// a member; non-members get not-found.
func (s *projectServiceImpl) UpdateProject(ctx context.Context, projectID uuid.UUID, req *dto.UpdateProjectRequest, actor authz.Actor) (*dto.ProjectResponse, error) {
	project, err := s.findProjectVisible(ctx, projectID, actor)
	if err != nil {
		return nil, err
	}

	if err := s.requireManage(ctx, project, actor); err != nil {
		return nil, err
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update project", err.Error())
	}

	return toProjectResponse(project), nil
}

// DeleteProject deletes a project and everything under it, returning the
// deleted project's name
func (s *projectServiceImpl) DeleteProject(ctx context.Context, projectID uuid.UUID, actor authz.Actor) (string, error) {
	project, err := s.findProjectVisible(ctx, projectID, actor)
	if err != nil {
		return "", err
	}

	if err := s.requireManage(ctx, project, actor); err != nil {
		return "", err
	}

	if err := s.projectRepo.Delete(ctx, project.ID); err != nil {
		return "", response.NewAppError(response.ErrCodeInternal, "Failed to delete project", err.Error())
	}

	s.logger.Info("project deleted",
		zap.String("project_id", project.ID.String()),
		zap.String("user_id", actor.UserID.String()))

	return project.Name, nil
}

// findProjectVisible loads the project and masks it as not-found for callers
// without view access
func (s *projectServiceImpl) findProjectVisible(ctx context.Context, projectID uuid.UUID, actor authz.Actor) (*domain.Project, error) {
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

// requireManage enforces the owner-or-editor rule for mutations
func (s *projectServiceImpl) requireManage(ctx context.Context, project *domain.Project, actor authz.Actor) error {
	isMember, err := s.projectRepo.IsMember(ctx, project.ID, actor.UserID)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to check membership", err.Error())
	}
	if !authz.CanManageProject(actor, project.IsOwner(actor.UserID), isMember) {
		return response.NewForbiddenError("You do not have permission to modify this project", "")
	}
	return nil
}

// toProjectResponse converts domain.Project to dto.ProjectResponse
func toProjectResponse(project *domain.Project) *dto.ProjectResponse {
	return &dto.ProjectResponse{
		ID:          project.ID,
		OwnerID:     project.OwnerID,
		Name:        project.Name,
		Description: project.Description,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
}
