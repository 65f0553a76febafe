package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"scrumflow-api/internal/dto"
	"scrumflow-api/internal/response"
	"scrumflow-api/internal/service"
)

// ProjectHandler handles the project routes
type ProjectHandler struct {
	projectService service.ProjectService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// ListProjects godoc
// @Summary      List projects
// @Description  Lists the projects the caller owns or is a member of, newest first
// @Tags         projects
// @Produce      json
// @Param        page query int false "Page number (default 1)"
// @Success      200 {object} response.SuccessResponse{data=dto.PaginatedProjectsResponse}
// @Failure      401 {object} response.ErrorResponse
// @Router       /projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	result, err := h.projectService.ListProjects(c.Request.Context(), actor, pageQuery(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// CreateProject godoc
// @Summary      Create a project
// @Description  Creates a project owned by the caller, with its product backlog
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateProjectRequest true "Project fields"
// @Success      201 {object} response.SuccessResponse{data=dto.ProjectResponse}
// @Failure      400 {object} response.ErrorResponse
// @Router       /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.projectService.CreateProject(c.Request.Context(), &req, actor)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, result)
}

// GetProject godoc
// @Summary      Get a project
// @Tags         projects
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.ProjectResponse}
// @Failure      404 {object} response.ErrorResponse
// @Router       /projects/{projectId} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid project ID")
		return
	}

	result, err := h.projectService.GetProject(c.Request.Context(), projectID, actor)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// UpdateProject godoc
// @Summary      Update a project
// @Description  Owner or editor only
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Param        request body dto.UpdateProjectRequest true "Fields to update"
// @Success      200 {object} response.SuccessResponse{data=dto.ProjectResponse}
// @Failure      403 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /projects/{projectId} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid project ID")
		return
	}

	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.projectService.UpdateProject(c.Request.Context(), projectID, &req, actor)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// DeleteProject godoc
// @Summary      Delete a project
// @Description  Owner or editor only; cascades to sprints, backlogs, stories, tasks and comments
// @Tags         projects
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Success      200 {object} response.SuccessResponse
// @Failure      403 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /projects/{projectId} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid project ID")
		return
	}

	name, err := h.projectService.DeleteProject(c.Request.Context(), projectID, actor)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendMessage(c, http.StatusOK, fmt.Sprintf("Project %q deleted", name))
}
