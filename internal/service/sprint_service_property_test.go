package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"go.uber.org/zap"

	"scrumflow-api/internal/domain"
	"scrumflow-api/internal/dto"
	"scrumflow-api/internal/response"
)

// For any pair of dates, CreateSprint accepts the range exactly when the end
// date is not before the start date, and the stored dates round-trip through
// the YYYY-MM-DD wire format unchanged.
func TestProperty_SprintDateRangeValidation(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	properties.Property("date range accepted iff end >= start", prop.ForAll(
		func(startOffset, endOffset int) bool {
			ownerID := uuid.New()
			projectID := uuid.New()

			projectRepo := &MockProjectRepository{
				FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
					return &domain.Project{BaseModel: domain.BaseModel{ID: projectID}, OwnerID: ownerID}, nil
				},
				IsMemberFunc: func(ctx context.Context, pID, uID uuid.UUID) (bool, error) {
					return uID == ownerID, nil
				},
			}
			sprintRepo := &MockSprintRepository{
				CreateFunc: func(ctx context.Context, sprint *domain.Sprint) error {
					sprint.ID = uuid.New()
					return nil
				},
			}

			svc := NewSprintService(sprintRepo, projectRepo, nil, zap.NewNop())

			start := base.AddDate(0, 0, startOffset)
			end := base.AddDate(0, 0, endOffset)
			req := &dto.CreateSprintRequest{
				Name:      "Sprint",
				StartDate: start.Format(dto.DateFormat),
				EndDate:   end.Format(dto.DateFormat),
			}

			resp, err := svc.CreateSprint(context.Background(), projectID, req, actorFor(ownerID))
			if endOffset < startOffset {
				appErr, ok := err.(*response.AppError)
				return ok && appErr.Code == response.ErrCodeValidation
			}
			if err != nil {
				return false
			}
			return resp.StartDate == req.StartDate && resp.EndDate == req.EndDate
		},
		gen.IntRange(0, 730),
		gen.IntRange(0, 730),
	))

	properties.TestingRun(t)
}

// Closing a sprint always lands on CLOSED and a second close never issues
// another write, whatever the starting status.
func TestProperty_SprintCloseIdempotent(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	statuses := []domain.SprintStatus{
		domain.SprintStatusPlanning,
		domain.SprintStatusActive,
		domain.SprintStatusClosed,
	}

	properties.Property("close is idempotent", prop.ForAll(
		func(statusIdx int) bool {
			ownerID := uuid.New()
			projectID := uuid.New()
			sprintID := uuid.New()

			current := statuses[statusIdx]
			updates := 0

			projectRepo := &MockProjectRepository{
				FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
					return &domain.Project{BaseModel: domain.BaseModel{ID: projectID}, OwnerID: ownerID}, nil
				},
				IsMemberFunc: func(ctx context.Context, pID, uID uuid.UUID) (bool, error) {
					return uID == ownerID, nil
				},
			}
			sprintRepo := &MockSprintRepository{
				FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Sprint, error) {
					return &domain.Sprint{
						BaseModel: domain.BaseModel{ID: sprintID},
						ProjectID: projectID,
						Status:    current,
					}, nil
				},
				UpdateFunc: func(ctx context.Context, sprint *domain.Sprint) error {
					updates++
					current = sprint.Status
					return nil
				},
			}

			svc := NewSprintService(sprintRepo, projectRepo, nil, zap.NewNop())

			first, err := svc.CloseSprint(context.Background(), sprintID, actorFor(ownerID))
			if err != nil || first.Status != "CLOSED" {
				return false
			}
			writesAfterFirst := updates

			second, err := svc.CloseSprint(context.Background(), sprintID, actorFor(ownerID))
			if err != nil || second.Status != "CLOSED" {
				return false
			}
			return updates == writesAfterFirst
		},
		gen.IntRange(0, len(statuses)-1),
	))

	properties.TestingRun(t)
}
