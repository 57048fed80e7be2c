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

// ProjectService defines the interface for project business logic
type ProjectService interface {
	CreateProject(ctx context.Context, ownerID uuid.UUID, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	GetProject(ctx context.Context, projectID, ownerID uuid.UUID) (*dto.ProjectResponse, error)
	ListProjects(ctx context.Context, ownerID uuid.UUID) ([]*dto.ProjectResponse, error)
	UpdateProject(ctx context.Context, projectID, ownerID uuid.UUID, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error)
	DeleteProject(ctx context.Context, projectID, ownerID uuid.UUID) error
}

// projectServiceImpl is the implementation of ProjectService
type projectServiceImpl struct {
	projectRepo repository.ProjectRepository
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewProjectService creates a new instance of ProjectService
func NewProjectService(projectRepo repository.ProjectRepository, m *metrics.Metrics, logger *zap.Logger) ProjectService {
	return &projectServiceImpl{
		projectRepo: projectRepo,
		metrics:     m,
		logger:      logger,
	}
}

// findOwnedProject loads a project scoped to its owner. A miss is always
// NOT_FOUND: existence is never revealed to non-owners.
func findOwnedProject(ctx context.Context, repo repository.ProjectRepository, projectID, ownerID uuid.UUID) (*domain.Project, error) {
	project, err := repo.FindByIDAndOwner(ctx, projectID, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Project not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify project", err.Error())
	}
	return project, nil
}

// CreateProject creates a new project owned by the caller
func (s *projectServiceImpl) CreateProject(ctx context.Context, ownerID uuid.UUID, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	project := &domain.Project{
		OwnerID:     ownerID,
		Name:        req.Name,
		Description: req.Description,
		Status:      domain.ProjectStatusPlanning,
		Health:      domain.ProjectHealthHealthy,
		Deadline:    req.Deadline,
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create project", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementProjectCreated()
	}

	s.logger.Info("Project created",
		zap.String("project_id", project.ID.String()),
		zap.String("owner_id", ownerID.String()))

	return dto.ToProjectResponse(project), nil
}

// GetProject retrieves a project owned by the caller
func (s *projectServiceImpl) GetProject(ctx context.Context, projectID, ownerID uuid.UUID) (*dto.ProjectResponse, error) {
	project, err := findOwnedProject(ctx, s.projectRepo, projectID, ownerID)
	if err != nil {
		return nil, err
	}
	return dto.ToProjectResponse(project), nil
}

// ListProjects lists the caller's projects
func (s *projectServiceImpl) ListProjects(ctx context.Context, ownerID uuid.UUID) ([]*dto.ProjectResponse, error) {
	projects, err := s.projectRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch projects", err.Error())
	}

	responses := make([]*dto.ProjectResponse, len(projects))
	for i, p := range projects {
		responses[i] = dto.ToProjectResponse(p)
	}
	return responses, nil
}

// UpdateProject updates a project's attributes
func (s *projectServiceImpl) UpdateProject(ctx context.Context, projectID, ownerID uuid.UUID, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	project, err := findOwnedProject(ctx, s.projectRepo, projectID, ownerID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Status != nil {
		project.Status = *req.Status
	}
	if req.Health != nil {
		project.Health = *req.Health
	}
	if req.Deadline != nil {
		project.Deadline = req.Deadline
	}
	if req.Progress != nil {
		project.Progress = *req.Progress
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update project", err.Error())
	}

	return dto.ToProjectResponse(project), nil
}

// DeleteProject soft deletes a project owned by the caller
func (s *projectServiceImpl) DeleteProject(ctx context.Context, projectID, ownerID uuid.UUID) error {
	if _, err := findOwnedProject(ctx, s.projectRepo, projectID, ownerID); err != nil {
		return err
	}

	if err := s.projectRepo.Delete(ctx, projectID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete project", err.Error())
	}

	s.logger.Info("Project deleted", zap.String("project_id", projectID.String()))
	return nil
}
