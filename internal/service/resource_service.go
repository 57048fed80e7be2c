package service

import (
	"context"
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

// ResourceService defines the interface for resources, assignments and
// the computed workload view
type ResourceService interface {
	CreateResource(ctx context.Context, userID uuid.UUID, req *dto.CreateResourceRequest) (*dto.ResourceResponse, error)
	ListResources(ctx context.Context, userID uuid.UUID) ([]*dto.ResourceResponse, error)
	UpdateResource(ctx context.Context, resourceID, userID uuid.UUID, req *dto.UpdateResourceRequest) (*dto.ResourceResponse, error)
	DeleteResource(ctx context.Context, resourceID, userID uuid.UUID) error
	CreateAssignment(ctx context.Context, projectID, ownerID uuid.UUID, req *dto.CreateAssignmentRequest) (*dto.AssignmentResponse, error)
	GetTeamWorkload(ctx context.Context, projectID, ownerID uuid.UUID) (*workload.TeamWorkload, error)
}

// resourceServiceImpl is the implementation of ResourceService
type resourceServiceImpl struct {
	resourceRepo   repository.ResourceRepository
	assignmentRepo repository.AssignmentRepository
	taskRepo       repository.TaskRepository
	sprintRepo     repository.SprintRepository
	projectRepo    repository.ProjectRepository
	workloadCache  WorkloadCache
	logger         *zap.Logger
}

// NewResourceService creates a new instance of ResourceService
func NewResourceService(
	resourceRepo repository.ResourceRepository,
	assignmentRepo repository.AssignmentRepository,
	taskRepo repository.TaskRepository,
	sprintRepo repository.SprintRepository,
	projectRepo repository.ProjectRepository,
	workloadCache WorkloadCache,
	logger *zap.Logger,
) ResourceService {
	return &resourceServiceImpl{
		resourceRepo:   resourceRepo,
		assignmentRepo: assignmentRepo,
		taskRepo:       taskRepo,
		sprintRepo:     sprintRepo,
		projectRepo:    projectRepo,
		workloadCache:  workloadCache,
		logger:         logger,
	}
}

// CreateResource creates a team member record for the caller
func (s *resourceServiceImpl) CreateResource(ctx context.Context, userID uuid.UUID, req *dto.CreateResourceRequest) (*dto.ResourceResponse, error) {
	capacity := req.WeeklyCapacityHours
	if capacity == 0 {
		capacity = 40
	}

	resource := &domain.Resource{
		UserID:              userID,
		Name:                req.Name,
		Role:                req.Role,
		WeeklyCapacityHours: capacity,
	}
	if err := s.resourceRepo.Create(ctx, resource); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create resource", err.Error())
	}

	s.logger.Info("Resource created",
		zap.String("resource_id", resource.ID.String()),
		zap.String("user_id", userID.String()))

	return dto.ToResourceResponse(resource), nil
}

// ListResources lists the caller's team members
func (s *resourceServiceImpl) ListResources(ctx context.Context, userID uuid.UUID) ([]*dto.ResourceResponse, error) {
	resources, err := s.resourceRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch resources", err.Error())
	}

	responses := make([]*dto.ResourceResponse, len(resources))
	for i, r := range resources {
		responses[i] = dto.ToResourceResponse(r)
	}
	return responses, nil
}

// findOwnedResource loads a resource scoped to its owning user
func (s *resourceServiceImpl) findOwnedResource(ctx context.Context, resourceID, userID uuid.UUID) (*domain.Resource, error) {
	resource, err := s.resourceRepo.FindByID(ctx, resourceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Resource not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch resource", err.Error())
	}
	if resource.UserID != userID {
		return nil, response.NewAppError(response.ErrCodeNotFound, "Resource not found", "")
	}
	return resource, nil
}

// UpdateResource updates a team member's attributes
func (s *resourceServiceImpl) UpdateResource(ctx context.Context, resourceID, userID uuid.UUID, req *dto.UpdateResourceRequest) (*dto.ResourceResponse, error) {
	resource, err := s.findOwnedResource(ctx, resourceID, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		resource.Name = *req.Name
	}
	if req.Role != nil {
		resource.Role = *req.Role
	}
	if req.WeeklyCapacityHours != nil {
		resource.WeeklyCapacityHours = *req.WeeklyCapacityHours
	}

	if err := s.resourceRepo.Update(ctx, resource); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update resource", err.Error())
	}

	return dto.ToResourceResponse(resource), nil
}

// DeleteResource soft deletes a team member
func (s *resourceServiceImpl) DeleteResource(ctx context.Context, resourceID, userID uuid.UUID) error {
	if _, err := s.findOwnedResource(ctx, resourceID, userID); err != nil {
		return err
	}
	if err := s.resourceRepo.Delete(ctx, resourceID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete resource", err.Error())
	}
	return nil
}

// CreateAssignment links a resource to a task in one of the caller's
// projects. The hours value, when absent, is resolved at read time from
// the task's estimate rather than copied here.
func (s *resourceServiceImpl) CreateAssignment(ctx context.Context, projectID, ownerID uuid.UUID, req *dto.CreateAssignmentRequest) (*dto.AssignmentResponse, error) {
	if _, err := findOwnedProject(ctx, s.projectRepo, projectID, ownerID); err != nil {
		return nil, err
	}

	task, err := s.taskRepo.FindByID(ctx, req.TaskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Task not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch task", err.Error())
	}
	if task.ProjectID != projectID {
		return nil, response.NewAppError(response.ErrCodeNotFound, "Task not found", "")
	}

	if _, err := s.findOwnedResource(ctx, req.ResourceID, ownerID); err != nil {
		return nil, err
	}

	assignment := &domain.Assignment{
		TaskID:        req.TaskID,
		ResourceID:    req.ResourceID,
		AssignedHours: req.AssignedHours,
	}
	if err := s.assignmentRepo.Create(ctx, assignment); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create assignment", err.Error())
	}

	if s.workloadCache != nil {
		s.workloadCache.Invalidate(ctx, projectID)
	}

	return dto.ToAssignmentResponse(assignment), nil
}

// GetTeamWorkload computes the team workload view for a project, serving
// from cache when a fresh copy exists. The roster covers every resource
// the caller owns, so idle members show up as underloaded.
func (s *resourceServiceImpl) GetTeamWorkload(ctx context.Context, projectID, ownerID uuid.UUID) (*workload.TeamWorkload, error) {
	if _, err := findOwnedProject(ctx, s.projectRepo, projectID, ownerID); err != nil {
		return nil, err
	}

	if s.workloadCache != nil {
		if team, ok := s.workloadCache.Get(ctx, projectID); ok {
			return team, nil
		}
	}

	resources, err := s.resourceRepo.FindByUser(ctx, ownerID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch resources", err.Error())
	}

	tasks, err := s.taskRepo.FindByProjectID(ctx, projectID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch tasks", err.Error())
	}

	taskIDs := make([]uuid.UUID, len(tasks))
	for i, t := range tasks {
		taskIDs[i] = t.ID
	}
	assignments, err := s.assignmentRepo.FindByTaskIDs(ctx, taskIDs)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch assignments", err.Error())
	}

	sprints, err := s.sprintRepo.FindByProjectID(ctx, projectID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch sprints", err.Error())
	}

	team := workload.Aggregate(resources, tasks, assignments, sprints)

	if s.workloadCache != nil {
		s.workloadCache.Set(ctx, projectID, team)
	}

	return team, nil
}
