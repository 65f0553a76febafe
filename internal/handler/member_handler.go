package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"scrumflow-api/internal/dto"
	"scrumflow-api/internal/response"
	"scrumflow-api/internal/service"
)

// MemberHandler handles the project membership routes
type MemberHandler struct {
	memberService service.MemberService
}

// NewMemberHandler creates a new MemberHandler
func NewMemberHandler(memberService service.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

// ListMembers godoc
// @Summary      List project members
// @Description  Members ordered by join date, oldest first
// @Tags         members
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Param        page query int false "Page number (default 1)"
// @Success      200 {object} response.SuccessResponse{data=dto.PaginatedMembersResponse}
// @Failure      404 {object} response.ErrorResponse
// @Router       /projects/{projectId}/members [get]
func (h *MemberHandler) ListMembers(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid project ID")
		return
	}

	result, err := h.memberService.ListMembers(c.Request.Context(), projectID, actor, pageQuery(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// AddMember godoc
// @Summary      Add a project member
// @Description  Owner only
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Param        request body dto.AddMemberRequest true "User to add"
// @Success      201 {object} response.SuccessResponse{data=dto.MemberResponse}
// @Failure      403 {object} response.ErrorResponse
// @Failure      409 {object} response.ErrorResponse
// @Router       /projects/{projectId}/members [post]
func (h *MemberHandler) AddMember(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid project ID")
		return
	}

	var req dto.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.memberService.AddMember(c.Request.Context(), projectID, &req, actor)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, result)
}

// RemoveMember godoc
// @Summary      Remove a project member
// @Description  Owner only; the removed member's username is echoed back
// @Tags         members
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Param        memberId path string true "Member user ID (UUID)"
// @Success      200 {object} response.SuccessResponse
// @Failure      403 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /projects/{projectId}/members/{memberId} [delete]
func (h *MemberHandler) RemoveMember(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid project ID")
		return
	}

	memberUserID, err := uuid.Parse(c.Param("memberId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid member ID")
		return
	}

	message, err := h.memberService.RemoveMember(c.Request.Context(), projectID, memberUserID, actor)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendMessage(c, http.StatusOK, message)
}
