package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"project-plan-api/internal/domain"
	"project-plan-api/internal/dto"
	"project-plan-api/internal/metrics"
	"project-plan-api/internal/repository"
	"project-plan-api/internal/response"
)

// TaskService defines the interface for task business logic
type TaskService interface {
	CreateTasks(ctx context.Context, projectID, ownerID uuid.UUID, req *dto.CreateTasksRequest) ([]*dto.TaskResponse, error)
	ListTasks(ctx context.Context, projectID, ownerID uuid.UUID) ([]*dto.TaskResponse, error)
	UpdateTask(ctx context.Context, projectID, taskID, ownerID uuid.UUID, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error)
	DeleteTask(ctx context.Context, projectID, taskID, ownerID uuid.UUID) error
}

// taskServiceImpl is the implementation of TaskService
type taskServiceImpl struct {
	taskRepo      repository.TaskRepository
	projectRepo   repository.ProjectRepository
	workloadCache WorkloadCache
	metrics       *metrics.Metrics
	logger        *zap.Logger
}

// NewTaskService creates a new instance of TaskService. Task writes feed
// the team workload view, so the service drops the cached copy for the
// project on every mutation.
func NewTaskService(taskRepo repository.TaskRepository, projectRepo repository.ProjectRepository, workloadCache WorkloadCache, m *metrics.Metrics, logger *zap.Logger) TaskService {
	return &taskServiceImpl{
		taskRepo:      taskRepo,
		projectRepo:   projectRepo,
		workloadCache: workloadCache,
		metrics:       m,
		logger:        logger,
	}
}

func (s *taskServiceImpl) invalidateWorkload(ctx context.Context, projectID uuid.UUID) {
	if s.workloadCache != nil {
		s.workloadCache.Invalidate(ctx, projectID)
	}
}

// CreateTasks appends a batch of tasks to a project. New tasks always land
// after every existing task in display order.
func (s *taskServiceImpl) CreateTasks(ctx context.Context, projectID, ownerID uuid.UUID, req *dto.CreateTasksRequest) ([]*dto.TaskResponse, error) {
	if _, err := findOwnedProject(ctx, s.projectRepo, projectID, ownerID); err != nil {
		return nil, err
	}

	maxOrder, err := s.taskRepo.MaxOrderIndex(ctx, projectID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to determine task order", err.Error())
	}

	tasks := make([]*domain.Task, len(req.Tasks))
	for i, t := range req.Tasks {
		priority := t.Priority
		if priority == 0 {
			priority = domain.TaskPriorityMedium
		}
		tasks[i] = &domain.Task{
			ProjectID:      projectID,
			SprintID:       t.SprintID,
			ParentID:       t.ParentID,
			Title:          t.Title,
			Description:    t.Description,
			Type:           t.Type,
			Status:         domain.TaskStatusPending,
			Priority:       priority,
			EstimatedHours: t.EstimatedHours,
			OrderIndex:     maxOrder + 1 + i,
		}
	}

	if err := s.taskRepo.CreateBatch(ctx, tasks); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create tasks", err.Error())
	}

	s.invalidateWorkload(ctx, projectID)

	if s.metrics != nil {
		s.metrics.IncrementTasksCreated(len(tasks))
	}

	s.logger.Info("Tasks created",
		zap.String("project_id", projectID.String()),
		zap.Int("count", len(tasks)))

	return dto.ToTaskResponses(tasks), nil
}

// ListTasks returns a project's tasks in display order
func (s *taskServiceImpl) ListTasks(ctx context.Context, projectID, ownerID uuid.UUID) ([]*dto.TaskResponse, error) {
	if _, err := findOwnedProject(ctx, s.projectRepo, projectID, ownerID); err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.FindByProjectID(ctx, projectID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch tasks", err.Error())
	}
	return dto.ToTaskResponses(tasks), nil
}

// findProjectTask loads a task and verifies it belongs to the given project
func (s *taskServiceImpl) findProjectTask(ctx context.Context, projectID, taskID uuid.UUID) (*domain.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Task not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch task", err.Error())
	}
	if task.ProjectID != projectID {
		return nil, response.NewAppError(response.ErrCodeNotFound, "Task not found", "")
	}
	return task, nil
}

// UpdateTask updates a task's attributes
func (s *taskServiceImpl) UpdateTask(ctx context.Context, projectID, taskID, ownerID uuid.UUID, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	if _, err := findOwnedProject(ctx, s.projectRepo, projectID, ownerID); err != nil {
		return nil, err
	}

	task, err := s.findProjectTask(ctx, projectID, taskID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.EstimatedHours != nil {
		task.EstimatedHours = *req.EstimatedHours
	}
	if req.ActualHours != nil {
		task.ActualHours = *req.ActualHours
	}
	if req.SprintID != nil {
		task.SprintID = req.SprintID
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update task", err.Error())
	}

	s.invalidateWorkload(ctx, projectID)

	return dto.ToTaskResponse(task), nil
}

// DeleteTask soft deletes a task
func (s *taskServiceImpl) DeleteTask(ctx context.Context, projectID, taskID, ownerID uuid.UUID) error {
	if _, err := findOwnedProject(ctx, s.projectRepo, projectID, ownerID); err != nil {
		return err
	}

	if _, err := s.findProjectTask(ctx, projectID, taskID); err != nil {
		return err
	}

	if err := s.taskRepo.Delete(ctx, taskID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete task", err.Error())
	}

	s.invalidateWorkload(ctx, projectID)

	return nil
}
