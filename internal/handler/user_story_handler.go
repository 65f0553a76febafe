package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"scrumflow-api/internal/dto"
	"scrumflow-api/internal/response"
	"scrumflow-api/internal/service"
)

// UserStoryHandler handles the backlog and user story routes
type UserStoryHandler struct {
	storyService service.UserStoryService
}

// NewUserStoryHandler creates a new UserStoryHandler
func NewUserStoryHandler(storyService service.UserStoryService) *UserStoryHandler {
	return &UserStoryHandler{storyService: storyService}
}

// GetProductBacklog godoc
// @Summary      Get the product backlog of a project
// @Description  Stories ordered by priority then recency; the backlog row is created on first access
// @Tags         backlogs
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Param        page query int false "Page number (default 1)"
// @Success      200 {object} response.SuccessResponse{data=dto.ProductBacklogPageResponse}
// @Failure      403 {object} response.ErrorResponse
// @Router       /projects/{projectId}/backlog [get]
func (h *UserStoryHandler) GetProductBacklog(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid project ID")
		return
	}

	result, err := h.storyService.GetProductBacklog(c.Request.Context(), projectID, actor, pageQuery(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// CreateStoryInProductBacklog godoc
// @Summary      Create a user story in the product backlog
// @Tags         backlogs
// @Accept       json
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Param        request body dto.CreateUserStoryRequest true "Story fields"
// @Success      201 {object} response.SuccessResponse{data=dto.UserStoryResponse}
// @Failure      403 {object} response.ErrorResponse
// @Router       /projects/{projectId}/backlog/user-stories [post]
func (h *UserStoryHandler) CreateStoryInProductBacklog(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid project ID")
		return
	}

	var req dto.CreateUserStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.storyService.CreateStoryInProductBacklog(c.Request.Context(), projectID, &req, actor)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, result)
}

// GetSprintBacklog godoc
// @Summary      Get the backlog of a sprint
// @Tags         backlogs
// @Produce      json
// @Param        sprintId path string true "Sprint ID (UUID)"
// @Param        page query int false "Page number (default 1)"
// @Success      200 {object} response.SuccessResponse{data=dto.SprintBacklogPageResponse}
// @Failure      403 {object} response.ErrorResponse
// @Router       /sprints/{sprintId}/backlog [get]
func (h *UserStoryHandler) GetSprintBacklog(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	sprintID, err := uuid.Parse(c.Param("sprintId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid sprint ID")
		return
	}

	result, err := h.storyService.GetSprintBacklog(c.Request.Context(), sprintID, actor, pageQuery(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// CreateStoryInSprintBacklog godoc
// @Summary      Create a user story in a sprint backlog
// @Tags         backlogs
// @Accept       json
// @Produce      json
// @Param        sprintId path string true "Sprint ID (UUID)"
// @Param        request body dto.CreateUserStoryRequest true "Story fields"
// @Success      201 {object} response.SuccessResponse{data=dto.UserStoryResponse}
// @Failure      403 {object} response.ErrorResponse
// @Router       /sprints/{sprintId}/backlog/user-stories [post]
func (h *UserStoryHandler) CreateStoryInSprintBacklog(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	sprintID, err := uuid.Parse(c.Param("sprintId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid sprint ID")
		return
	}

	var req dto.CreateUserStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.storyService.CreateStoryInSprintBacklog(c.Request.Context(), sprintID, &req, actor)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, result)
}

// GetStory godoc
// @Summary      Get a user story
// @Tags         user-stories
// @Produce      json
// @Param        storyId path string true "Story ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.UserStoryResponse}
// @Failure      403 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /user-stories/{storyId} [get]
func (h *UserStoryHandler) GetStory(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	storyID, err := uuid.Parse(c.Param("storyId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid story ID")
		return
	}

	result, err := h.storyService.GetStory(c.Request.Context(), storyID, actor)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// UpdateStory godoc
// @Summary      Update a user story
// @Tags         user-stories
// @Accept       json
// @Produce      json
// @Param        storyId path string true "Story ID (UUID)"
// @Param        request body dto.UpdateUserStoryRequest true "Fields to update"
// @Success      200 {object} response.SuccessResponse{data=dto.UserStoryResponse}
// @Failure      403 {object} response.ErrorResponse
// @Router       /user-stories/{storyId} [put]
func (h *UserStoryHandler) UpdateStory(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	storyID, err := uuid.Parse(c.Param("storyId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid story ID")
		return
	}

	var req dto.UpdateUserStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.storyService.UpdateStory(c.Request.Context(), storyID, &req, actor)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// DeleteStory godoc
// @Summary      Delete a user story
// @Description  Cascades to tasks and comments
// @Tags         user-stories
// @Produce      json
// @Param        storyId path string true "Story ID (UUID)"
// @Success      200 {object} response.SuccessResponse
// @Failure      403 {object} response.ErrorResponse
// @Router       /user-stories/{storyId} [delete]
func (h *UserStoryHandler) DeleteStory(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	storyID, err := uuid.Parse(c.Param("storyId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid story ID")
		return
	}

	if err := h.storyService.DeleteStory(c.Request.Context(), storyID, actor); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendMessage(c, http.StatusOK, "User story deleted")
}

// MoveStory godoc
// @Summary      Move a user story between backlogs
// @Description  moveTo is "product" or "sprint"; sprintId is required for sprint moves and the sprint must be in the same project
// @Tags         user-stories
// @Accept       json
// @Produce      json
// @Param        storyId path string true "Story ID (UUID)"
// @Param        request body dto.MoveUserStoryRequest true "Move target"
// @Success      200 {object} response.SuccessResponse{data=dto.UserStoryResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      403 {object} response.ErrorResponse
// @Router       /user-stories/{storyId}/move [post]
func (h *UserStoryHandler) MoveStory(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	storyID, err := uuid.Parse(c.Param("storyId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid story ID")
		return
	}

	var req dto.MoveUserStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.storyService.MoveStory(c.Request.Context(), storyID, &req, actor)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}
