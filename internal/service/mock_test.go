package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"project-plan-api/internal/client"
	"project-plan-api/internal/domain"
	"project-plan-api/internal/workload"
)

// MockProjectRepository is a configurable mock of ProjectRepository
type MockProjectRepository struct {
	CreateFunc           func(ctx context.Context, project *domain.Project) error
	FindByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	FindByIDAndOwnerFunc func(ctx context.Context, id, ownerID uuid.UUID) (*domain.Project, error)
	FindByOwnerFunc      func(ctx context.Context, ownerID uuid.UUID) ([]*domain.Project, error)
	UpdateFunc           func(ctx context.Context, project *domain.Project) error
	DeleteFunc           func(ctx context.Context, id uuid.UUID) error
	CountFunc            func(ctx context.Context) (int64, error)
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
	return nil, gorm.ErrRecordNotFound
}

func (m *MockProjectRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*domain.Project, error) {
	if m.FindByIDAndOwnerFunc != nil {
		return m.FindByIDAndOwnerFunc(ctx, id, ownerID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockProjectRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Project, error) {
	if m.FindByOwnerFunc != nil {
		return m.FindByOwnerFunc(ctx, ownerID)
	}
	return nil, nil
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

func (m *MockProjectRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockTaskRepository is a configurable mock of TaskRepository
type MockTaskRepository struct {
	CreateFunc          func(ctx context.Context, task *domain.Task) error
	CreateBatchFunc     func(ctx context.Context, tasks []*domain.Task) error
	FindByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	FindByProjectIDFunc func(ctx context.Context, projectID uuid.UUID) ([]*domain.Task, error)
	FindByIDsFunc       func(ctx context.Context, ids []uuid.UUID) ([]*domain.Task, error)
	UpdateFunc          func(ctx context.Context, task *domain.Task) error
	DeleteFunc          func(ctx context.Context, id uuid.UUID) error
	MaxOrderIndexFunc   func(ctx context.Context, projectID uuid.UUID) (int, error)
	CountFunc           func(ctx context.Context) (int64, error)
}

func (m *MockTaskRepository) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, task)
	}
	return nil
}

func (m *MockTaskRepository) CreateBatch(ctx context.Context, tasks []*domain.Task) error {
	if m.CreateBatchFunc != nil {
		return m.CreateBatchFunc(ctx, tasks)
	}
	return nil
}

func (m *MockTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockTaskRepository) FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]*domain.Task, error) {
	if m.FindByProjectIDFunc != nil {
		return m.FindByProjectIDFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *MockTaskRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Task, error) {
	if m.FindByIDsFunc != nil {
		return m.FindByIDsFunc(ctx, ids)
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

func (m *MockTaskRepository) MaxOrderIndex(ctx context.Context, projectID uuid.UUID) (int, error) {
	if m.MaxOrderIndexFunc != nil {
		return m.MaxOrderIndexFunc(ctx, projectID)
	}
	return 0, nil
}

func (m *MockTaskRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockSprintRepository is a configurable mock of SprintRepository
type MockSprintRepository struct {
	CreateFunc          func(ctx context.Context, sprint *domain.Sprint) error
	FindByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.Sprint, error)
	FindByProjectIDFunc func(ctx context.Context, projectID uuid.UUID) ([]*domain.Sprint, error)
	UpdateFunc          func(ctx context.Context, sprint *domain.Sprint) error
	DeleteFunc          func(ctx context.Context, id uuid.UUID) error
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
	return nil, gorm.ErrRecordNotFound
}

func (m *MockSprintRepository) FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]*domain.Sprint, error) {
	if m.FindByProjectIDFunc != nil {
		return m.FindByProjectIDFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *MockSprintRepository) Update(ctx context.Context, sprint *domain.Sprint) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, sprint)
	}
	return nil
}

func (m *MockSprintRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockBaselineRepository is a configurable mock of BaselineRepository
type MockBaselineRepository struct {
	CreateFunc              func(ctx context.Context, baseline *domain.Baseline) error
	FindLatestByProjectFunc func(ctx context.Context, projectID uuid.UUID) (*domain.Baseline, error)
	FindByProjectFunc       func(ctx context.Context, projectID uuid.UUID) ([]*domain.Baseline, error)
}

func (m *MockBaselineRepository) Create(ctx context.Context, baseline *domain.Baseline) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, baseline)
	}
	return nil
}

func (m *MockBaselineRepository) FindLatestByProject(ctx context.Context, projectID uuid.UUID) (*domain.Baseline, error) {
	if m.FindLatestByProjectFunc != nil {
		return m.FindLatestByProjectFunc(ctx, projectID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockBaselineRepository) FindByProject(ctx context.Context, projectID uuid.UUID) ([]*domain.Baseline, error) {
	if m.FindByProjectFunc != nil {
		return m.FindByProjectFunc(ctx, projectID)
	}
	return nil, nil
}

// MockChangeRepository is a configurable mock of ChangeRepository
type MockChangeRepository struct {
	CreateRequestFunc         func(ctx context.Context, request *domain.ChangeRequest, history *domain.ChangeHistory) error
	FindRequestByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.ChangeRequest, error)
	FindRequestsByProjectFunc func(ctx context.Context, projectID uuid.UUID) ([]*domain.ChangeRequest, error)
	FindAnalysisByRequestFunc func(ctx context.Context, requestID uuid.UUID) (*domain.ChangeAnalysis, error)
	AnalyzeTransitionFunc     func(ctx context.Context, requestID uuid.UUID, analysis *domain.ChangeAnalysis, history *domain.ChangeHistory) error
	ApproveTransitionFunc     func(ctx context.Context, requestID uuid.UUID, tasks []*domain.Task, history *domain.ChangeHistory) error
	RejectTransitionFunc      func(ctx context.Context, requestID uuid.UUID, history *domain.ChangeHistory) error
	FindHistoryByProjectFunc  func(ctx context.Context, projectID uuid.UUID) ([]*domain.ChangeHistory, error)
	CountHistoryByProjectFunc func(ctx context.Context, projectID uuid.UUID) (int64, error)
}

func (m *MockChangeRepository) CreateRequest(ctx context.Context, request *domain.ChangeRequest, history *domain.ChangeHistory) error {
	if m.CreateRequestFunc != nil {
		return m.CreateRequestFunc(ctx, request, history)
	}
	return nil
}

func (m *MockChangeRepository) FindRequestByID(ctx context.Context, id uuid.UUID) (*domain.ChangeRequest, error) {
	if m.FindRequestByIDFunc != nil {
		return m.FindRequestByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockChangeRepository) FindRequestsByProject(ctx context.Context, projectID uuid.UUID) ([]*domain.ChangeRequest, error) {
	if m.FindRequestsByProjectFunc != nil {
		return m.FindRequestsByProjectFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *MockChangeRepository) FindAnalysisByRequest(ctx context.Context, requestID uuid.UUID) (*domain.ChangeAnalysis, error) {
	if m.FindAnalysisByRequestFunc != nil {
		return m.FindAnalysisByRequestFunc(ctx, requestID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockChangeRepository) AnalyzeTransition(ctx context.Context, requestID uuid.UUID, analysis *domain.ChangeAnalysis, history *domain.ChangeHistory) error {
	if m.AnalyzeTransitionFunc != nil {
		return m.AnalyzeTransitionFunc(ctx, requestID, analysis, history)
	}
	return nil
}

func (m *MockChangeRepository) ApproveTransition(ctx context.Context, requestID uuid.UUID, tasks []*domain.Task, history *domain.ChangeHistory) error {
	if m.ApproveTransitionFunc != nil {
		return m.ApproveTransitionFunc(ctx, requestID, tasks, history)
	}
	return nil
}

func (m *MockChangeRepository) RejectTransition(ctx context.Context, requestID uuid.UUID, history *domain.ChangeHistory) error {
	if m.RejectTransitionFunc != nil {
		return m.RejectTransitionFunc(ctx, requestID, history)
	}
	return nil
}

func (m *MockChangeRepository) FindHistoryByProject(ctx context.Context, projectID uuid.UUID) ([]*domain.ChangeHistory, error) {
	if m.FindHistoryByProjectFunc != nil {
		return m.FindHistoryByProjectFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *MockChangeRepository) CountHistoryByProject(ctx context.Context, projectID uuid.UUID) (int64, error) {
	if m.CountHistoryByProjectFunc != nil {
		return m.CountHistoryByProjectFunc(ctx, projectID)
	}
	return 0, nil
}

// MockSettingsRepository is a configurable mock of SettingsRepository
type MockSettingsRepository struct {
	FindByUserFunc func(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error)
	SaveFunc       func(ctx context.Context, settings *domain.UserSettings) error
}

func (m *MockSettingsRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error) {
	if m.FindByUserFunc != nil {
		return m.FindByUserFunc(ctx, userID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockSettingsRepository) Save(ctx context.Context, settings *domain.UserSettings) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, settings)
	}
	return nil
}

// MockWorkloadCache is a configurable mock of WorkloadCache
type MockWorkloadCache struct {
	GetFunc        func(ctx context.Context, projectID uuid.UUID) (*workload.TeamWorkload, bool)
	SetFunc        func(ctx context.Context, projectID uuid.UUID, team *workload.TeamWorkload)
	InvalidateFunc func(ctx context.Context, projectID uuid.UUID)
}

func (m *MockWorkloadCache) Get(ctx context.Context, projectID uuid.UUID) (*workload.TeamWorkload, bool) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, projectID)
	}
	return nil, false
}

func (m *MockWorkloadCache) Set(ctx context.Context, projectID uuid.UUID, team *workload.TeamWorkload) {
	if m.SetFunc != nil {
		m.SetFunc(ctx, projectID, team)
	}
}

func (m *MockWorkloadCache) Invalidate(ctx context.Context, projectID uuid.UUID) {
	if m.InvalidateFunc != nil {
		m.InvalidateFunc(ctx, projectID)
	}
}

// MockCompletionClient is a configurable mock of client.CompletionClient
type MockCompletionClient struct {
	CompleteFunc func(ctx context.Context, messages []client.Message) (string, error)
}

func (m *MockCompletionClient) Complete(ctx context.Context, messages []client.Message) (string, error) {
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, messages)
	}
	return "", nil
}
