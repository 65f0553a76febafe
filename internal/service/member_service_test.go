package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"scrumflow-api/internal/domain"
	"scrumflow-api/internal/dto"
	"scrumflow-api/internal/repository"
	"scrumflow-api/internal/response"
)

func memberProjectRepo(projectID, ownerID uuid.UUID, members ...uuid.UUID) *MockProjectRepository {
	isMember := func(uID uuid.UUID) bool {
		if uID == ownerID {
			return true
		}
		for _, m := range members {
			if m == uID {
				return true
			}
		}
		return false
	}
	return &MockProjectRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
			if id != projectID {
				return nil, gorm.ErrRecordNotFound
			}
			return &domain.Project{BaseModel: domain.BaseModel{ID: projectID}, OwnerID: ownerID}, nil
		},
		IsMemberFunc: func(ctx context.Context, pID, uID uuid.UUID) (bool, error) {
			return isMember(uID), nil
		},
	}
}

func TestMemberService_AddMember(t *testing.T) {
	ownerID := uuid.New()
	memberID := uuid.New()
	projectID := uuid.New()
	newUserID := uuid.New()

	tests := []struct {
		name        string
		actorID     uuid.UUID
		userID      uuid.UUID
		addMemberFn func(ctx context.Context, member *domain.ProjectMember) error
		wantErr     bool
		wantErrCode string
	}{
		{
			name:    "owner adds a member",
			actorID: ownerID,
			addMemberFn: func(ctx context.Context, member *domain.ProjectMember) error {
				member.ID = uuid.New()
				return nil
			},
		},
		{
			name:        "plain member cannot manage membership",
			actorID:     memberID,
			wantErr:     true,
			wantErrCode: response.ErrCodeForbidden,
		},
		{
			name:    "duplicate member is a conflict",
			actorID: ownerID,
			addMemberFn: func(ctx context.Context, member *domain.ProjectMember) error {
				return repository.ErrDuplicateMember
			},
			wantErr:     true,
			wantErrCode: response.ErrCodeAlreadyExists,
		},
		{
			name:    "owner cannot be added as a member",
			actorID: ownerID,
			userID:  ownerID,
			addMemberFn: func(ctx context.Context, member *domain.ProjectMember) error {
				// reaching the repository means a membership row was written
				return errors.New("unexpected write")
			},
			wantErr:     true,
			wantErrCode: response.ErrCodeValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := memberProjectRepo(projectID, ownerID, memberID)
			repo.AddMemberFunc = tt.addMemberFn

			userID := tt.userID
			if userID == uuid.Nil {
				userID = newUserID
			}

			svc := NewMemberService(repo, zap.NewNop())
			resp, err := svc.AddMember(context.Background(), projectID, &dto.AddMemberRequest{
				UserID:   userID,
				Username: "jane.doe",
			}, actorFor(tt.actorID))

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantErrCode, appErrCode(t, err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, newUserID, resp.UserID)
			assert.Equal(t, "jane.doe", resp.Username)
			assert.WithinDuration(t, time.Now().UTC(), resp.JoinedAt, 5*time.Second)
		})
	}
}

func TestMemberService_RemoveMember(t *testing.T) {
	ownerID := uuid.New()
	memberID := uuid.New()
	projectID := uuid.New()

	t.Run("owner removes a member", func(t *testing.T) {
		repo := memberProjectRepo(projectID, ownerID, memberID)
		repo.RemoveMemberFunc = func(ctx context.Context, pID, uID uuid.UUID) (*domain.ProjectMember, error) {
			return &domain.ProjectMember{ProjectID: pID, UserID: uID, Username: "jane.doe"}, nil
		}

		svc := NewMemberService(repo, zap.NewNop())
		msg, err := svc.RemoveMember(context.Background(), projectID, memberID, actorFor(ownerID))
		require.NoError(t, err)
		assert.Equal(t, "Removed jane.doe from the project", msg)
	})

	t.Run("owner cannot be removed", func(t *testing.T) {
		repo := memberProjectRepo(projectID, ownerID, memberID)

		svc := NewMemberService(repo, zap.NewNop())
		_, err := svc.RemoveMember(context.Background(), projectID, ownerID, actorFor(ownerID))
		require.Error(t, err)
		assert.Equal(t, response.ErrCodeValidation, appErrCode(t, err))
	})

	t.Run("removing a non-member is not found", func(t *testing.T) {
		repo := memberProjectRepo(projectID, ownerID, memberID)
		repo.RemoveMemberFunc = func(ctx context.Context, pID, uID uuid.UUID) (*domain.ProjectMember, error) {
			return nil, gorm.ErrRecordNotFound
		}

		svc := NewMemberService(repo, zap.NewNop())
		_, err := svc.RemoveMember(context.Background(), projectID, uuid.New(), actorFor(ownerID))
		require.Error(t, err)
		assert.Equal(t, response.ErrCodeNotFound, appErrCode(t, err))
	})
}

func TestMemberService_ListMembers(t *testing.T) {
	ownerID := uuid.New()
	memberID := uuid.New()
	projectID := uuid.New()

	repo := memberProjectRepo(projectID, ownerID, memberID)
	repo.FindMembersFunc = func(ctx context.Context, pID uuid.UUID, page, limit int) ([]*domain.ProjectMember, int64, error) {
		return []*domain.ProjectMember{
			{ID: uuid.New(), ProjectID: pID, UserID: memberID, Username: "jane.doe"},
		}, 1, nil
	}

	svc := NewMemberService(repo, zap.NewNop())

	resp, err := svc.ListMembers(context.Background(), projectID, actorFor(memberID), 1)
	require.NoError(t, err)
	require.Len(t, resp.Members, 1)
	assert.Equal(t, "jane.doe", resp.Members[0].Username)

	// outsiders are told the project does not exist
	_, err = svc.ListMembers(context.Background(), projectID, actorFor(uuid.New()), 1)
	require.Error(t, err)
	assert.Equal(t, response.ErrCodeNotFound, appErrCode(t, err))
}
