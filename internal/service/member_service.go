package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"scrumflow-api/internal/authz"
	"scrumflow-api/internal/domain"
	"scrumflow-api/internal/dto"
	"scrumflow-api/internal/repository"
	"scrumflow-api/internal/response"
)

// MemberService defines the interface for project membership business logic
type MemberService interface {
	ListMembers(ctx context.Context, projectID uuid.UUID, actor authz.Actor, page int) (*dto.PaginatedMembersResponse, error)
	AddMember(ctx context.Context, projectID uuid.UUID, req *dto.AddMemberRequest, actor authz.Actor) (*dto.MemberResponse, error)
	RemoveMember(ctx context.Context, projectID, memberUserID uuid.UUID, actor authz.Actor) (string, error)
}

// memberServiceImpl is the implementation of MemberService
type memberServiceImpl struct {
	projectRepo repository.ProjectRepository
	logger      *zap.Logger
}

// NewMemberService creates a new instance of MemberService
func NewMemberService(projectRepo repository.ProjectRepository, logger *zap.Logger) MemberService {
	return &memberServiceImpl{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

// ListMembers lists the members of a project, oldest joiner first.
// Non-members get not-found.
func (s *memberServiceImpl) ListMembers(ctx context.Context, projectID uuid.UUID, actor authz.Actor, page int) (*dto.PaginatedMembersResponse, error) {
	if page < 1 {
		page = 1
	}

	if _, err := s.findProjectVisible(ctx, projectID, actor); err != nil {
		return nil, err
	}

	members, total, err := s.projectRepo.FindMembers(ctx, projectID, page, defaultPageSize)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch members", err.Error())
	}

	responses := make([]dto.MemberResponse, 0, len(members))
	for _, member := range members {
		responses = append(responses, *toMemberResponse(member))
	}

	return &dto.PaginatedMembersResponse{
		Members: responses,
		Total:   total,
		Page:    page,
		Limit:   defaultPageSize,
	}, nil
}

// AddMember adds a user to the project. Only the owner (or a superuser) may
// manage membership.
func (s *memberServiceImpl) AddMember(ctx context.Context, projectID uuid.UUID, req *dto.AddMemberRequest, actor authz.Actor) (*dto.MemberResponse, error) {
	project, err := s.findProjectVisible(ctx, projectID, actor)
	if err != nil {
		return nil, err
	}

	if !authz.CanManageMembers(actor, project.IsOwner(actor.UserID)) {
		return nil, response.NewForbiddenError("Only the project owner can manage members", "")
	}

	// The owner is a member implicitly and never has a membership row
	if req.UserID == project.OwnerID {
		return nil, response.NewValidationError("The project owner is already a member", "")
	}

	member := &domain.ProjectMember{
		ProjectID: projectID,
		UserID:    req.UserID,
		Username:  req.Username,
		JoinedAt:  time.Now().UTC(),
	}

	if err := s.projectRepo.AddMember(ctx, member); err != nil {
		if errors.Is(err, repository.ErrDuplicateMember) {
			return nil, response.NewConflictError("User is already a member of this project", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to add member", err.Error())
	}

	s.logger.Info("member added",
		zap.String("project_id", projectID.String()),
		zap.String("user_id", req.UserID.String()))

	return toMemberResponse(member), nil
}

// RemoveMember removes a user from the project and returns a message naming
// the removed member
func (s *memberServiceImpl) RemoveMember(ctx context.Context, projectID, memberUserID uuid.UUID, actor authz.Actor) (string, error) {
	project, err := s.findProjectVisible(ctx, projectID, actor)
	if err != nil {
		return "", err
	}

	if !authz.CanManageMembers(actor, project.IsOwner(actor.UserID)) {
		return "", response.NewForbiddenError("Only the project owner can manage members", "")
	}

	if memberUserID == project.OwnerID {
		return "", response.NewValidationError("The project owner cannot be removed", "")
	}

	member, err := s.projectRepo.RemoveMember(ctx, projectID, memberUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", response.NewNotFoundError("Member not found", "")
		}
		return "", response.NewAppError(response.ErrCodeInternal, "Failed to remove member", err.Error())
	}

	s.logger.Info("member removed",
		zap.String("project_id", projectID.String()),
		zap.String("user_id", memberUserID.String()))

	return fmt.Sprintf("Removed %s from the project", member.Username), nil
}

func (s *memberServiceImpl) findProjectVisible(ctx context.Context, projectID uuid.UUID, actor authz.Actor) (*domain.Project, error) {
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

// toMemberResponse converts domain.ProjectMember to dto.MemberResponse
func toMemberResponse(member *domain.ProjectMember) *dto.MemberResponse {
	return &dto.MemberResponse{
		MemberID:  member.ID,
		ProjectID: member.ProjectID,
		UserID:    member.UserID,
		Username:  member.Username,
		JoinedAt:  member.JoinedAt,
	}
}
