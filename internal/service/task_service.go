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

// TaskService defines the interface for task and task comment business logic
type TaskService interface {
	GetTaskBoard(ctx context.Context, storyID uuid.UUID, actor authz.Actor) (*dto.TaskBoardResponse, error)
	CreateTask(ctx context.Context, storyID uuid.UUID, req *dto.CreateTaskRequest, actor authz.Actor) (*dto.TaskResponse, error)
	GetTask(ctx context.Context, taskID uuid.UUID, actor authz.Actor) (*dto.TaskDetailResponse, error)
	UpdateTask(ctx context.Context, taskID uuid.UUID, req *dto.UpdateTaskRequest, actor authz.Actor) (*dto.TaskResponse, error)
	DeleteTask(ctx context.Context, taskID uuid.UUID, actor authz.Actor) error
	UpdateTaskStatus(ctx context.Context, taskID uuid.UUID, status string, actor authz.Actor) error
	AddComment(ctx context.Context, taskID uuid.UUID, req *dto.CreateCommentRequest, actor authz.Actor) (*dto.CommentResponse, error)
	DeleteComment(ctx context.Context, commentID uuid.UUID, actor authz.Actor) error
}

// taskServiceImpl is the implementation of TaskService
type taskServiceImpl struct {
	taskRepo    repository.TaskRepository
	storyRepo   repository.UserStoryRepository
	backlogRepo repository.BacklogRepository
	sprintRepo  repository.SprintRepository
	projectRepo repository.ProjectRepository
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewTaskService creates a new instance of TaskService
func NewTaskService(taskRepo repository.TaskRepository, storyRepo repository.UserStoryRepository, backlogRepo repository.BacklogRepository, sprintRepo repository.SprintRepository, projectRepo repository.ProjectRepository, m *metrics.Metrics, logger *zap.Logger) TaskService {
	return &taskServiceImpl{
		taskRepo:    taskRepo,
		storyRepo:   storyRepo,
		backlogRepo: backlogRepo,
		sprintRepo:  sprintRepo,
		projectRepo: projectRepo,
		metrics:     m,
		logger:      logger,
	}
}

// GetTaskBoard returns the tasks of a story grouped into kanban columns
func (s *taskServiceImpl) GetTaskBoard(ctx context.Context, storyID uuid.UUID, actor authz.Actor) (*dto.TaskBoardResponse, error) {
	if _, err := s.findStoryWithAccess(ctx, storyID, actor); err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.FindByUserStoryID(ctx, storyID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch tasks", err.Error())
	}

	board := &dto.TaskBoardResponse{
		StoryID:    storyID,
		Todo:       []dto.TaskResponse{},
		InProgress: []dto.TaskResponse{},
		Done:       []dto.TaskResponse{},
	}
	for _, task := range tasks {
		resp := *toTaskResponse(task)
		switch task.Status {
		case domain.TaskStatusInProgress:
			board.InProgress = append(board.InProgress, resp)
		case domain.TaskStatusDone:
			board.Done = append(board.Done, resp)
		default:
			board.Todo = append(board.Todo, resp)
		}
	}
	return board, nil
}

// CreateTask creates a task under a story. The assignee, when given, must
// belong to the story's project.
func (s *taskServiceImpl) CreateTask(ctx context.Context, storyID uuid.UUID, req *dto.CreateTaskRequest, actor authz.Actor) (*dto.TaskResponse, error) {
	projectID, err := s.findStoryWithAccess(ctx, storyID, actor)
	if err != nil {
		return nil, err
	}

	if req.AssignedTo != nil {
		if err := s.requireAssigneeIsMember(ctx, projectID, *req.AssignedTo); err != nil {
			return nil, err
		}
	}

	status := domain.TaskStatusTodo
	if req.Status != "" {
		status = domain.TaskStatus(req.Status)
	}
	priority := domain.TaskPriorityMedium
	if req.Priority != "" {
		priority = domain.TaskPriority(req.Priority)
	}

	task := &domain.Task{
		UserStoryID:    storyID,
		Title:          req.Title,
		Description:    req.Description,
		AssignedTo:     req.AssignedTo,
		Status:         status,
		Priority:       priority,
		EstimatedHours: req.EstimatedHours,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create task", err.Error())
	}

	s.logger.Info("task created",
		zap.String("task_id", task.ID.String()),
		zap.String("story_id", storyID.String()))

	if s.metrics != nil {
		s.metrics.IncrementTaskCreated()
	}

	return toTaskResponse(task), nil
}

// GetTask retrieves a task together with its comments, oldest comment first
func (s *taskServiceImpl) GetTask(ctx context.Context, taskID uuid.UUID, actor authz.Actor) (*dto.TaskDetailResponse, error) {
	task, _, err := s.findTaskWithAccess(ctx, taskID, actor)
	if err != nil {
		return nil, err
	}

	comments, err := s.taskRepo.FindCommentsByTaskID(ctx, taskID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch comments", err.Error())
	}

	commentResponses := make([]dto.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		commentResponses = append(commentResponses, *toCommentResponse(comment))
	}

	return &dto.TaskDetailResponse{
		Task:     *toTaskResponse(task),
		Comments: commentResponses,
	}, nil
}

// UpdateTask updates a task's fields
func (s *taskServiceImpl) UpdateTask(ctx context.Context, taskID uuid.UUID, req *dto.UpdateTaskRequest, actor authz.Actor) (*dto.TaskResponse, error) {
	task, projectID, err := s.findTaskWithAccess(ctx, taskID, actor)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.ClearAssignee {
		task.AssignedTo = nil
	} else if req.AssignedTo != nil {
		if err := s.requireAssigneeIsMember(ctx, projectID, *req.AssignedTo); err != nil {
			return nil, err
		}
		task.AssignedTo = req.AssignedTo
	}
	if req.Status != nil {
		task.Status = domain.TaskStatus(*req.Status)
	}
	if req.Priority != nil {
		task.Priority = domain.TaskPriority(*req.Priority)
	}
	if req.EstimatedHours != nil {
		task.EstimatedHours = req.EstimatedHours
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update task", err.Error())
	}

	return toTaskResponse(task), nil
}

// DeleteTask deletes a task and its comments
func (s *taskServiceImpl) DeleteTask(ctx context.Context, taskID uuid.UUID, actor authz.Actor) error {
	task, _, err := s.findTaskWithAccess(ctx, taskID, actor)
	if err != nil {
		return err
	}

	if err := s.taskRepo.Delete(ctx, task.ID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete task", err.Error())
	}

	s.logger.Info("task deleted",
		zap.String("task_id", task.ID.String()),
		zap.String("user_id", actor.UserID.String()))

	return nil
}

// UpdateTaskStatus applies a board drag-and-drop status change. A value
// outside the enum is a validation error rather than a binding failure so
// the board client gets a structured {"success": false} body.
func (s *taskServiceImpl) UpdateTaskStatus(ctx context.Context, taskID uuid.UUID, status string, actor authz.Actor) error {
	task, _, err := s.findTaskWithAccess(ctx, taskID, actor)
	if err != nil {
		return err
	}

	newStatus := domain.TaskStatus(status)
	if !newStatus.IsValid() {
		return response.NewValidationError("Invalid status", "")
	}

	task.Status = newStatus
	if err := s.taskRepo.Update(ctx, task); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to update task status", err.Error())
	}
	return nil
}

// AddComment adds a comment authored by the caller to a task
func (s *taskServiceImpl) AddComment(ctx context.Context, taskID uuid.UUID, req *dto.CreateCommentRequest, actor authz.Actor) (*dto.CommentResponse, error) {
	task, _, err := s.findTaskWithAccess(ctx, taskID, actor)
	if err != nil {
		return nil, err
	}

	comment := &domain.TaskComment{
		TaskID:   task.ID,
		AuthorID: actor.UserID,
		Content:  req.Content,
	}

	if err := s.taskRepo.CreateComment(ctx, comment); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to add comment", err.Error())
	}

	return toCommentResponse(comment), nil
}

// DeleteComment deletes a comment. Only the author, the project owner, or a
// superuser may do so.
func (s *taskServiceImpl) DeleteComment(ctx context.Context, commentID uuid.UUID, actor authz.Actor) error {
	comment, err := s.taskRepo.FindCommentByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Comment not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch comment", err.Error())
	}

	_, projectID, err := s.findTaskWithAccess(ctx, comment.TaskID, actor)
	if err != nil {
		return err
	}

	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch project", err.Error())
	}

	isAuthor := comment.AuthorID == actor.UserID
	if !authz.CanDeleteComment(actor, isAuthor, project.IsOwner(actor.UserID)) {
		return response.NewForbiddenError("Only the comment author or the project owner can delete this comment", "")
	}

	if err := s.taskRepo.DeleteComment(ctx, comment.ID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete comment", err.Error())
	}
	return nil
}

// findStoryWithAccess loads a story, checks membership and returns the
// owning project's ID
func (s *taskServiceImpl) findStoryWithAccess(ctx context.Context, storyID uuid.UUID, actor authz.Actor) (uuid.UUID, error) {
	story, err := s.storyRepo.FindByID(ctx, storyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, response.NewNotFoundError("User story not found", "")
		}
		return uuid.Nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch user story", err.Error())
	}

	projectID, err := resolveStoryProjectID(ctx, story, s.backlogRepo, s.sprintRepo)
	if err != nil {
		return uuid.Nil, err
	}

	isMember, err := s.projectRepo.IsMember(ctx, projectID, actor.UserID)
	if err != nil {
		return uuid.Nil, response.NewAppError(response.ErrCodeInternal, "Failed to check membership", err.Error())
	}
	if !authz.CanViewProject(actor, isMember) {
		return uuid.Nil, response.NewForbiddenError("You are not a member of this project", "")
	}
	return projectID, nil
}

func (s *taskServiceImpl) findTaskWithAccess(ctx context.Context, taskID uuid.UUID, actor authz.Actor) (*domain.Task, uuid.UUID, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, uuid.Nil, response.NewNotFoundError("Task not found", "")
		}
		return nil, uuid.Nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch task", err.Error())
	}

	projectID, err := s.findStoryWithAccess(ctx, task.UserStoryID, actor)
	if err != nil {
		return nil, uuid.Nil, err
	}
	return task, projectID, nil
}

// requireAssigneeIsMember rejects assignees who are not part of the project
func (s *taskServiceImpl) requireAssigneeIsMember(ctx context.Context, projectID, assigneeID uuid.UUID) error {
	isMember, err := s.projectRepo.IsMember(ctx, projectID, assigneeID)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to check assignee membership", err.Error())
	}
	if !isMember {
		return response.NewValidationError("Assignee must be a member of the project", "")
	}
	return nil
}

// toTaskResponse converts domain.Task to dto.TaskResponse
func toTaskResponse(task *domain.Task) *dto.TaskResponse {
	return &dto.TaskResponse{
		ID:             task.ID,
		UserStoryID:    task.UserStoryID,
		Title:          task.Title,
		Description:    task.Description,
		AssignedTo:     task.AssignedTo,
		Status:         string(task.Status),
		Priority:       string(task.Priority),
		EstimatedHours: task.EstimatedHours,
		CreatedAt:      task.CreatedAt,
		UpdatedAt:      task.UpdatedAt,
	}
}

// toCommentResponse converts domain.TaskComment to dto.CommentResponse
func toCommentResponse(comment *domain.TaskComment) *dto.CommentResponse {
	return &dto.CommentResponse{
		ID:        comment.ID,
		TaskID:    comment.TaskID,
		AuthorID:  comment.AuthorID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}
}
