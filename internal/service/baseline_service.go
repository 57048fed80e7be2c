package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"project-plan-api/internal/domain"
	"project-plan-api/internal/dto"
	"project-plan-api/internal/repository"
	"project-plan-api/internal/response"
	"project-plan-api/internal/workload"
)

// BaselineService defines the interface for baseline snapshots and drift
// comparison
type BaselineService interface {
	CreateBaseline(ctx context.Context, projectID, ownerID uuid.UUID, req *dto.CreateBaselineRequest) (*dto.BaselineResponse, error)
	ListBaselines(ctx context.Context, projectID, ownerID uuid.UUID) ([]*dto.BaselineResponse, error)
	GetComparison(ctx context.Context, projectID, ownerID uuid.UUID) (*workload.BaselineComparison, error)
}

// baselineServiceImpl is the implementation of BaselineService
type baselineServiceImpl struct {
	baselineRepo          repository.BaselineRepository
	taskRepo              repository.TaskRepository
	sprintRepo            repository.SprintRepository
	projectRepo           repository.ProjectRepository
	sprintCapacityPerWeek float64
	logger                *zap.Logger
}

// NewBaselineService creates a new instance of BaselineService.
// sprintCapacityPerWeek is the flat capacity assumption used when flagging
// overloaded sprints; it comes from configuration, not from resources.
func NewBaselineService(
	baselineRepo repository.BaselineRepository,
	taskRepo repository.TaskRepository,
	sprintRepo repository.SprintRepository,
	projectRepo repository.ProjectRepository,
	sprintCapacityPerWeek float64,
	logger *zap.Logger,
) BaselineService {
	return &baselineServiceImpl{
		baselineRepo:          baselineRepo,
		taskRepo:              taskRepo,
		sprintRepo:            sprintRepo,
		projectRepo:           projectRepo,
		sprintCapacityPerWeek: sprintCapacityPerWeek,
		logger:                logger,
	}
}

// loadPlan fetches a project's tasks and sprints after the ownership check
func (s *baselineServiceImpl) loadPlan(ctx context.Context, projectID, ownerID uuid.UUID) (*domain.Project, []*domain.Task, []*domain.Sprint, error) {
	project, err := findOwnedProject(ctx, s.projectRepo, projectID, ownerID)
	if err != nil {
		return nil, nil, nil, err
	}

	tasks, err := s.taskRepo.FindByProjectID(ctx, projectID)
	if err != nil {
		return nil, nil, nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch tasks", err.Error())
	}

	sprints, err := s.sprintRepo.FindByProjectID(ctx, projectID)
	if err != nil {
		return nil, nil, nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch sprints", err.Error())
	}

	return project, tasks, sprints, nil
}

// CreateBaseline snapshots the project's current totals. The snapshot is
// immutable; creating a new one supersedes the old comparison point.
func (s *baselineServiceImpl) CreateBaseline(ctx context.Context, projectID, ownerID uuid.UUID, req *dto.CreateBaselineRequest) (*dto.BaselineResponse, error) {
	project, tasks, sprints, err := s.loadPlan(ctx, projectID, ownerID)
	if err != nil {
		return nil, err
	}

	comparison := workload.CompareBaseline(tasks, sprints, nil, project.Deadline, s.sprintCapacityPerWeek)

	taskSnapshot, err := json.Marshal(tasks)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to serialize task snapshot", err.Error())
	}
	sprintSnapshot, err := json.Marshal(sprints)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to serialize sprint snapshot", err.Error())
	}

	baseline := &domain.Baseline{
		ProjectID:           projectID,
		Name:                req.Name,
		TotalHours:          comparison.Current.TotalHours,
		TaskCount:           comparison.Current.TaskCount,
		SprintCount:         comparison.Current.SprintCount,
		PlannedDeliveryDate: comparison.Current.DeliveryDate,
		RiskLevel:           req.RiskLevel,
		TaskSnapshot:        taskSnapshot,
		SprintSnapshot:      sprintSnapshot,
	}

	if err := s.baselineRepo.Create(ctx, baseline); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create baseline", err.Error())
	}

	s.logger.Info("Baseline created",
		zap.String("baseline_id", baseline.ID.String()),
		zap.String("project_id", projectID.String()),
		zap.Float64("total_hours", baseline.TotalHours))

	return dto.ToBaselineResponse(baseline), nil
}

// ListBaselines returns a project's baselines, newest first
func (s *baselineServiceImpl) ListBaselines(ctx context.Context, projectID, ownerID uuid.UUID) ([]*dto.BaselineResponse, error) {
	if _, err := findOwnedProject(ctx, s.projectRepo, projectID, ownerID); err != nil {
		return nil, err
	}

	baselines, err := s.baselineRepo.FindByProject(ctx, projectID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch baselines", err.Error())
	}

	responses := make([]*dto.BaselineResponse, len(baselines))
	for i, b := range baselines {
		responses[i] = dto.ToBaselineResponse(b)
	}
	return responses, nil
}

// GetComparison compares the current plan against the latest baseline.
// A project without baselines still gets a valid comparison with zero
// deltas.
func (s *baselineServiceImpl) GetComparison(ctx context.Context, projectID, ownerID uuid.UUID) (*workload.BaselineComparison, error) {
	project, tasks, sprints, err := s.loadPlan(ctx, projectID, ownerID)
	if err != nil {
		return nil, err
	}

	baseline, err := s.baselineRepo.FindLatestByProject(ctx, projectID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch baseline", err.Error())
		}
		baseline = nil
	}

	return workload.CompareBaseline(tasks, sprints, baseline, project.Deadline, s.sprintCapacityPerWeek), nil
}
