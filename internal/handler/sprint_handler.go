package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"scrumflow-api/internal/dto"
	"scrumflow-api/internal/response"
	"scrumflow-api/internal/service"
)

// SprintHandler handles the sprint routes
type SprintHandler struct {
	sprintService service.SprintService
}

// NewSprintHandler creates a new SprintHandler
func NewSprintHandler(sprintService service.SprintService) *SprintHandler {
	return &SprintHandler{sprintService: sprintService}
}

// ListSprints godoc
// @Summary      List sprints of a project
// @Description  Ordered by start date, most recent first
// @Tags         sprints
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Param        page query int false "Page number (default 1)"
// @Success      200 {object} response.SuccessResponse{data=dto.PaginatedSprintsResponse}
// @Failure      404 {object} response.ErrorResponse
// @Router       /projects/{projectId}/sprints [get]
func (h *SprintHandler) ListSprints(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid project ID")
		return
	}

	result, err := h.sprintService.ListSprints(c.Request.Context(), projectID, actor, pageQuery(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// CreateSprint godoc
// @Summary      Create a sprint
// @Description  Owner or editor only. Rejects an ACTIVE sprint while another is active.
// @Tags         sprints
// @Accept       json
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Param        request body dto.CreateSprintRequest true "Sprint fields"
// @Success      201 {object} response.SuccessResponse{data=dto.SprintResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      403 {object} response.ErrorResponse
// @Router       /projects/{projectId}/sprints [post]
func (h *SprintHandler) CreateSprint(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid project ID")
		return
	}

	var req dto.CreateSprintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.sprintService.CreateSprint(c.Request.Context(), projectID, &req, actor)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, result)
}

// GetSprint godoc
// @Summary      Get a sprint
// @Tags         sprints
// @Produce      json
// @Param        sprintId path string true "Sprint ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.SprintResponse}
// @Failure      404 {object} response.ErrorResponse
// @Router       /sprints/{sprintId} [get]
func (h *SprintHandler) GetSprint(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	sprintID, err := uuid.Parse(c.Param("sprintId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid sprint ID")
		return
	}

	result, err := h.sprintService.GetSprint(c.Request.Context(), sprintID, actor)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// UpdateSprint godoc
// @Summary      Update a sprint
// @Description  Owner or editor only. Date and single-active-sprint rules apply.
// @Tags         sprints
// @Accept       json
// @Produce      json
// @Param        sprintId path string true "Sprint ID (UUID)"
// @Param        request body dto.UpdateSprintRequest true "Fields to update"
// @Success      200 {object} response.SuccessResponse{data=dto.SprintResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      403 {object} response.ErrorResponse
// @Router       /sprints/{sprintId} [put]
func (h *SprintHandler) UpdateSprint(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	sprintID, err := uuid.Parse(c.Param("sprintId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid sprint ID")
		return
	}

	var req dto.UpdateSprintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.sprintService.UpdateSprint(c.Request.Context(), sprintID, &req, actor)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// CloseSprint godoc
// @Summary      Close a sprint
// @Description  Owner or editor only. Closing an already closed sprint is a no-op.
// @Tags         sprints
// @Produce      json
// @Param        sprintId path string true "Sprint ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.SprintResponse}
// @Failure      403 {object} response.ErrorResponse
// @Router       /sprints/{sprintId}/close [post]
func (h *SprintHandler) CloseSprint(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	sprintID, err := uuid.Parse(c.Param("sprintId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid sprint ID")
		return
	}

	result, err := h.sprintService.CloseSprint(c.Request.Context(), sprintID, actor)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}
