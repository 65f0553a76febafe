package service

import (
	"context"

	"github.com/google/uuid"

	"scrumflow-api/internal/domain"
)

// MockProjectRepository is a mock implementation of ProjectRepository
type MockProjectRepository struct {
	CreateFunc            func(ctx context.Context, project *domain.Project) error
	FindByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	FindVisibleToUserFunc func(ctx context.Context, userID uuid.UUID, page, limit int) ([]*domain.Project, int64, error)
	UpdateFunc            func(ctx context.Context, project *domain.Project) error
	DeleteFunc            func(ctx context.Context, id uuid.UUID) error
	IsMemberFunc          func(ctx context.Context, projectID, userID uuid.UUID) (bool, error)
	AddMemberFunc         func(ctx context.Context, member *domain.ProjectMember) error
	RemoveMemberFunc      func(ctx context.Context, projectID, userID uuid.UUID) (*domain.ProjectMember, error)
	FindMembersFunc       func(ctx context.Context, projectID uuid.UUID, page, limit int) ([]*domain.ProjectMember, int64, error)
	CountAllFunc          func(ctx context.Context) (int64, error)
}

func (m *MockProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, project)
	}
	return nil
}

func (m *MockProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockProjectRepository) FindVisibleToUser(ctx context.Context, userID uuid.UUID, page, limit int) ([]*domain.Project, int64, error) {
	if m.FindVisibleToUserFunc != nil {
		return m.FindVisibleToUserFunc(ctx, userID, page, limit)
	}
	return nil, 0, nil
}

func (m *MockProjectRepository) Update(ctx context.Context, project *domain.Project) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, project)
	}
	return nil
}

func (m *MockProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockProjectRepository) IsMember(ctx context.Context, projectID, userID uuid.UUID) (bool, error) {
	if m.IsMemberFunc != nil {
		return m.IsMemberFunc(ctx, projectID, userID)
	}
	return false, nil
}

func (m *MockProjectRepository) AddMember(ctx context.Context, member *domain.ProjectMember) error {
	if m.AddMemberFunc != nil {
		return m.AddMemberFunc(ctx, member)
	}
	return nil
}

func (m *MockProjectRepository) RemoveMember(ctx context.Context, projectID, userID uuid.UUID) (*domain.ProjectMember, error) {
	if m.RemoveMemberFunc != nil {
		return m.RemoveMemberFunc(ctx, projectID, userID)
	}
	return nil, nil
}

func (m *MockProjectRepository) FindMembers(ctx context.Context, projectID uuid.UUID, page, limit int) ([]*domain.ProjectMember, int64, error) {
	if m.FindMembersFunc != nil {
		return m.FindMembersFunc(ctx, projectID, page, limit)
	}
	return nil, 0, nil
}

func (m *MockProjectRepository) CountAll(ctx context.Context) (int64, error) {
	if m.CountAllFunc != nil {
		return m.CountAllFunc(ctx)
	}
	return 0, nil
}

// MockSprintRepository is a mock implementation of SprintRepository
type MockSprintRepository struct {
	CreateFunc          func(ctx context.Context, sprint *domain.Sprint) error
	FindByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.Sprint, error)
	FindByProjectIDFunc func(ctx context.Context, projectID uuid.UUID, page, limit int) ([]*domain.Sprint, int64, error)
	UpdateFunc          func(ctx context.Context, sprint *domain.Sprint) error
	CountActiveFunc     func(ctx context.Context) (int64, error)
}

func (m *MockSprintRepository) Create(ctx context.Context, sprint *domain.Sprint) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, sprint)
	}
	return nil
}

func (m *MockSprintRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Sprint, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockSprintRepository) FindByProjectID(ctx context.Context, projectID uuid.UUID, page, limit int) ([]*domain.Sprint, int64, error) {
	if m.FindByProjectIDFunc != nil {
		return m.FindByProjectIDFunc(ctx, projectID, page, limit)
	}
	return nil, 0, nil
}

func (m *MockSprintRepository) Update(ctx context.Context, sprint *domain.Sprint) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, sprint)
	}
	return nil
}

func (m *MockSprintRepository) CountActive(ctx context.Context) (int64, error) {
	if m.CountActiveFunc != nil {
		return m.CountActiveFunc(ctx)
	}
	return 0, nil
}

// MockBacklogRepository is a mock implementation of BacklogRepository
type MockBacklogRepository struct {
	EnsureProductBacklogFunc   func(ctx context.Context, projectID uuid.UUID) (*domain.ProductBacklog, error)
	EnsureSprintBacklogFunc    func(ctx context.Context, sprintID uuid.UUID) (*domain.SprintBacklog, error)
	FindProductBacklogByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.ProductBacklog, error)
	FindSprintBacklogByIDFunc  func(ctx context.Context, id uuid.UUID) (*domain.SprintBacklog, error)
}

func (m *MockBacklogRepository) EnsureProductBacklog(ctx context.Context, projectID uuid.UUID) (*domain.ProductBacklog, error) {
	if m.EnsureProductBacklogFunc != nil {
		return m.EnsureProductBacklogFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *MockBacklogRepository) EnsureSprintBacklog(ctx context.Context, sprintID uuid.UUID) (*domain.SprintBacklog, error) {
	if m.EnsureSprintBacklogFunc != nil {
		return m.EnsureSprintBacklogFunc(ctx, sprintID)
	}
	return nil, nil
}

func (m *MockBacklogRepository) FindProductBacklogByID(ctx context.Context, id uuid.UUID) (*domain.ProductBacklog, error) {
	if m.FindProductBacklogByIDFunc != nil {
		return m.FindProductBacklogByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockBacklogRepository) FindSprintBacklogByID(ctx context.Context, id uuid.UUID) (*domain.SprintBacklog, error) {
	if m.FindSprintBacklogByIDFunc != nil {
		return m.FindSprintBacklogByIDFunc(ctx, id)
	}
	return nil, nil
}

// MockUserStoryRepository is a mock implementation of UserStoryRepository
type MockUserStoryRepository struct {
	CreateFunc                 func(ctx context.Context, story *domain.UserStory) error
	FindByIDFunc               func(ctx context.Context, id uuid.UUID) (*domain.UserStory, error)
	FindByProductBacklogIDFunc func(ctx context.Context, backlogID uuid.UUID, page, limit int) ([]*domain.UserStory, int64, error)
	FindBySprintBacklogIDFunc  func(ctx context.Context, backlogID uuid.UUID, page, limit int) ([]*domain.UserStory, int64, error)
	UpdateFunc                 func(ctx context.Context, story *domain.UserStory) error
	DeleteFunc                 func(ctx context.Context, id uuid.UUID) error
	MoveToSprintBacklogFunc    func(ctx context.Context, storyID, sprintID uuid.UUID) (*domain.UserStory, error)
	MoveToProductBacklogFunc   func(ctx context.Context, storyID, projectID uuid.UUID) (*domain.UserStory, error)
	CountAllFunc               func(ctx context.Context) (int64, error)
}

func (m *MockUserStoryRepository) Create(ctx context.Context, story *domain.UserStory) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, story)
	}
	return nil
}

func (m *MockUserStoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.UserStory, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserStoryRepository) FindByProductBacklogID(ctx context.Context, backlogID uuid.UUID, page, limit int) ([]*domain.UserStory, int64, error) {
	if m.FindByProductBacklogIDFunc != nil {
		return m.FindByProductBacklogIDFunc(ctx, backlogID, page, limit)
	}
	return nil, 0, nil
}

func (m *MockUserStoryRepository) FindBySprintBacklogID(ctx context.Context, backlogID uuid.UUID, page, limit int) ([]*domain.UserStory, int64, error) {
	if m.FindBySprintBacklogIDFunc != nil {
		return m.FindBySprintBacklogIDFunc(ctx, backlogID, page, limit)
	}
	return nil, 0, nil
}

func (m *MockUserStoryRepository) Update(ctx context.Context, story *domain.UserStory) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, story)
	}
	return nil
}

func (m *MockUserStoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockUserStoryRepository) MoveToSprintBacklog(ctx context.Context, storyID, sprintID uuid.UUID) (*domain.UserStory, error) {
	if m.MoveToSprintBacklogFunc != nil {
		return m.MoveToSprintBacklogFunc(ctx, storyID, sprintID)
	}
	return nil, nil
}

func (m *MockUserStoryRepository) MoveToProductBacklog(ctx context.Context, storyID, projectID uuid.UUID) (*domain.UserStory, error) {
	if m.MoveToProductBacklogFunc != nil {
		return m.MoveToProductBacklogFunc(ctx, storyID, projectID)
	}
	return nil, nil
}

func (m *MockUserStoryRepository) CountAll(ctx context.Context) (int64, error) {
	if m.CountAllFunc != nil {
		return m.CountAllFunc(ctx)
	}
	return 0, nil
}

// MockTaskRepository is a mock implementation of TaskRepository
type MockTaskRepository struct {
	CreateFunc               func(ctx context.Context, task *domain.Task) error
	FindByIDFunc             func(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	FindByUserStoryIDFunc    func(ctx context.Context, storyID uuid.UUID) ([]*domain.Task, error)
	UpdateFunc               func(ctx context.Context, task *domain.Task) error
	DeleteFunc               func(ctx context.Context, id uuid.UUID) error
	CreateCommentFunc        func(ctx context.Context, comment *domain.TaskComment) error
	FindCommentByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.TaskComment, error)
	FindCommentsByTaskIDFunc func(ctx context.Context, taskID uuid.UUID) ([]*domain.TaskComment, error)
	DeleteCommentFunc        func(ctx context.Context, id uuid.UUID) error
}

func (m *MockTaskRepository) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, task)
	}
	return nil
}

func (m *MockTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockTaskRepository) FindByUserStoryID(ctx context.Context, storyID uuid.UUID) ([]*domain.Task, error) {
	if m.FindByUserStoryIDFunc != nil {
		return m.FindByUserStoryIDFunc(ctx, storyID)
	}
	return nil, nil
}

func (m *MockTaskRepository) Update(ctx context.Context, task *domain.Task) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, task)
	}
	return nil
}

func (m *MockTaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockTaskRepository) CreateComment(ctx context.Context, comment *domain.TaskComment) error {
	if m.CreateCommentFunc != nil {
		return m.CreateCommentFunc(ctx, comment)
	}
	return nil
}

func (m *MockTaskRepository) FindCommentByID(ctx context.Context, id uuid.UUID) (*domain.TaskComment, error) {
	if m.FindCommentByIDFunc != nil {
		return m.FindCommentByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockTaskRepository) FindCommentsByTaskID(ctx context.Context, taskID uuid.UUID) ([]*domain.TaskComment, error) {
	if m.FindCommentsByTaskIDFunc != nil {
		return m.FindCommentsByTaskIDFunc(ctx, taskID)
	}
	return nil, nil
}

func (m *MockTaskRepository) DeleteComment(ctx context.Context, id uuid.UUID) error {
	if m.DeleteCommentFunc != nil {
		return m.DeleteCommentFunc(ctx, id)
	}
	return nil
}
