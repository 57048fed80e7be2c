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
)

// SprintService defines the interface for sprint business logic
type SprintService interface {
	CreateSprint(ctx context.Context, projectID, ownerID uuid.UUID, req *dto.CreateSprintRequest) (*dto.SprintResponse, error)
	ListSprints(ctx context.Context, projectID, ownerID uuid.UUID) ([]*dto.SprintResponse, error)
	UpdateSprint(ctx context.Context, projectID, sprintID, ownerID uuid.UUID, req *dto.UpdateSprintRequest) (*dto.SprintResponse, error)
	DeleteSprint(ctx context.Context, projectID, sprintID, ownerID uuid.UUID) error
}

// sprintServiceImpl is the implementation of SprintService
type sprintServiceImpl struct {
	sprintRepo  repository.SprintRepository
	projectRepo repository.ProjectRepository
	logger      *zap.Logger
}

// NewSprintService creates a new instance of SprintService
func NewSprintService(sprintRepo repository.SprintRepository, projectRepo repository.ProjectRepository, logger *zap.Logger) SprintService {
	return &sprintServiceImpl{
		sprintRepo:  sprintRepo,
		projectRepo: projectRepo,
		logger:      logger,
	}
}

// CreateSprint creates a new sprint within a project
func (s *sprintServiceImpl) CreateSprint(ctx context.Context, projectID, ownerID uuid.UUID, req *dto.CreateSprintRequest) (*dto.SprintResponse, error) {
	if _, err := findOwnedProject(ctx, s.projectRepo, projectID, ownerID); err != nil {
		return nil, err
	}

	if !req.EndDate.After(req.StartDate) {
		return nil, response.NewAppError(response.ErrCodeValidation, "Sprint end date must be after start date", "")
	}

	sprint := &domain.Sprint{
		ProjectID: projectID,
		Name:      req.Name,
		Goal:      req.Goal,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Status:    domain.SprintStatusPlanned,
		Position:  req.Position,
	}

	if err := s.sprintRepo.Create(ctx, sprint); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create sprint", err.Error())
	}

	s.logger.Info("Sprint created",
		zap.String("sprint_id", sprint.ID.String()),
		zap.String("project_id", projectID.String()))

	return dto.ToSprintResponse(sprint), nil
}

// ListSprints returns a project's sprints ordered by position
func (s *sprintServiceImpl) ListSprints(ctx context.Context, projectID, ownerID uuid.UUID) ([]*dto.SprintResponse, error) {
	if _, err := findOwnedProject(ctx, s.projectRepo, projectID, ownerID); err != nil {
		return nil, err
	}

	sprints, err := s.sprintRepo.FindByProjectID(ctx, projectID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch sprints", err.Error())
	}
	return dto.ToSprintResponses(sprints), nil
}

// findProjectSprint loads a sprint and verifies it belongs to the given project
func (s *sprintServiceImpl) findProjectSprint(ctx context.Context, projectID, sprintID uuid.UUID) (*domain.Sprint, error) {
	sprint, err := s.sprintRepo.FindByID(ctx, sprintID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Sprint not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch sprint", err.Error())
	}
	if sprint.ProjectID != projectID {
		return nil, response.NewAppError(response.ErrCodeNotFound, "Sprint not found", "")
	}
	return sprint, nil
}

// UpdateSprint updates a sprint's attributes
func (s *sprintServiceImpl) UpdateSprint(ctx context.Context, projectID, sprintID, ownerID uuid.UUID, req *dto.UpdateSprintRequest) (*dto.SprintResponse, error) {
	if _, err := findOwnedProject(ctx, s.projectRepo, projectID, ownerID); err != nil {
		return nil, err
	}

	sprint, err := s.findProjectSprint(ctx, projectID, sprintID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		sprint.Name = *req.Name
	}
	if req.Goal != nil {
		sprint.Goal = *req.Goal
	}
	if req.StartDate != nil {
		sprint.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		sprint.EndDate = *req.EndDate
	}
	if req.Status != nil {
		sprint.Status = *req.Status
	}
	if req.Position != nil {
		sprint.Position = *req.Position
	}

	if !sprint.EndDate.After(sprint.StartDate) {
		return nil, response.NewAppError(response.ErrCodeValidation, "Sprint end date must be after start date", "")
	}

	if err := s.sprintRepo.Update(ctx, sprint); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update sprint", err.Error())
	}

	return dto.ToSprintResponse(sprint), nil
}

// DeleteSprint soft deletes a sprint. Tasks keep their sprint reference so
// a restore keeps the plan intact.
func (s *sprintServiceImpl) DeleteSprint(ctx context.Context, projectID, sprintID, ownerID uuid.UUID) error {
	if _, err := findOwnedProject(ctx, s.projectRepo, projectID, ownerID); err != nil {
		return err
	}

	if _, err := s.findProjectSprint(ctx, projectID, sprintID); err != nil {
		return err
	}

	if err := s.sprintRepo.Delete(ctx, sprintID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete sprint", err.Error())
	}
	return nil
}
