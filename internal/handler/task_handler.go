package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"scrumflow-api/internal/dto"
	"scrumflow-api/internal/response"
	"scrumflow-api/internal/service"
)

// TaskHandler handles the task and task comment routes
type TaskHandler struct {
	taskService service.TaskService
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// GetTaskBoard godoc
// @Summary      Get the kanban board of a user story
// @Description  Tasks grouped by status, highest priority first within groups
// @Tags         tasks
// @Produce      json
// @Param        storyId path string true "Story ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.TaskBoardResponse}
// @Failure      403 {object} response.ErrorResponse
// @Router       /user-stories/{storyId}/tasks [get]
func (h *TaskHandler) GetTaskBoard(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	storyID, err := uuid.Parse(c.Param("storyId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid story ID")
		return
	}

	result, err := h.taskService.GetTaskBoard(c.Request.Context(), storyID, actor)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// CreateTask godoc
// @Summary      Create a task under a user story
// @Description  The assignee, when given, must be a member of the story's project
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        storyId path string true "Story ID (UUID)"
// @Param        request body dto.CreateTaskRequest true "Task fields"
// @Success      201 {object} response.SuccessResponse{data=dto.TaskResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      403 {object} response.ErrorResponse
// @Router       /user-stories/{storyId}/tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	storyID, err := uuid.Parse(c.Param("storyId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid story ID")
		return
	}

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.taskService.CreateTask(c.Request.Context(), storyID, &req, actor)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, result)
}

// GetTask godoc
// @Summary      Get a task with its comments
// @Tags         tasks
// @Produce      json
// @Param        taskId path string true "Task ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.TaskDetailResponse}
// @Failure      403 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /tasks/{taskId} [get]
func (h *TaskHandler) GetTask(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	taskID, err := uuid.Parse(c.Param("taskId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid task ID")
		return
	}

	result, err := h.taskService.GetTask(c.Request.Context(), taskID, actor)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// UpdateTask godoc
// @Summary      Update a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        taskId path string true "Task ID (UUID)"
// @Param        request body dto.UpdateTaskRequest true "Fields to update"
// @Success      200 {object} response.SuccessResponse{data=dto.TaskResponse}
// @Failure      403 {object} response.ErrorResponse
// @Router       /tasks/{taskId} [put]
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	taskID, err := uuid.Parse(c.Param("taskId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid task ID")
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.taskService.UpdateTask(c.Request.Context(), taskID, &req, actor)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// DeleteTask godoc
// @Summary      Delete a task
// @Tags         tasks
// @Produce      json
// @Param        taskId path string true "Task ID (UUID)"
// @Success      200 {object} response.SuccessResponse
// @Failure      403 {object} response.ErrorResponse
// @Router       /tasks/{taskId} [delete]
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	taskID, err := uuid.Parse(c.Param("taskId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid task ID")
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), taskID, actor); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendMessage(c, http.StatusOK, "Task deleted")
}

// UpdateTaskStatus godoc
// @Summary      Update a task's board status
// @Description  Board drag-and-drop endpoint. Always answers with a {success, error} body:
// @Description  400 {"success":false,"error":...} for an invalid status, 403 for access denial.
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        taskId path string true "Task ID (UUID)"
// @Param        request body dto.UpdateTaskStatusRequest true "New status"
// @Success      200 {object} dto.TaskStatusResponse
// @Failure      400 {object} dto.TaskStatusResponse
// @Failure      403 {object} dto.TaskStatusResponse
// @Router       /tasks/{taskId}/status [post]
func (h *TaskHandler) UpdateTaskStatus(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	taskID, err := uuid.Parse(c.Param("taskId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.TaskStatusResponse{Success: false, Error: "Invalid task ID"})
		return
	}

	var req dto.UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.TaskStatusResponse{Success: false, Error: "Invalid request body"})
		return
	}

	if err := h.taskService.UpdateTaskStatus(c.Request.Context(), taskID, req.Status, actor); err != nil {
		var appErr *response.AppError
		if errors.As(err, &appErr) {
			c.JSON(mapErrorCodeToHTTPStatus(appErr.Code), dto.TaskStatusResponse{Success: false, Error: appErr.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.TaskStatusResponse{Success: false, Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, dto.TaskStatusResponse{Success: true})
}

// AddComment godoc
// @Summary      Comment on a task
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        taskId path string true "Task ID (UUID)"
// @Param        request body dto.CreateCommentRequest true "Comment content"
// @Success      201 {object} response.SuccessResponse{data=dto.CommentResponse}
// @Failure      403 {object} response.ErrorResponse
// @Router       /tasks/{taskId}/comments [post]
func (h *TaskHandler) AddComment(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	taskID, err := uuid.Parse(c.Param("taskId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid task ID")
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.taskService.AddComment(c.Request.Context(), taskID, &req, actor)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, result)
}

// DeleteComment godoc
// @Summary      Delete a task comment
// @Description  Author or project owner only. POST keeps parity with the board client.
// @Tags         comments
// @Produce      json
// @Param        commentId path string true "Comment ID (UUID)"
// @Success      200 {object} response.SuccessResponse
// @Failure      403 {object} response.ErrorResponse
// @Router       /comments/{commentId}/delete [post]
func (h *TaskHandler) DeleteComment(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	commentID, err := uuid.Parse(c.Param("commentId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid comment ID")
		return
	}

	if err := h.taskService.DeleteComment(c.Request.Context(), commentID, actor); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendMessage(c, http.StatusOK, "Comment deleted")
}
