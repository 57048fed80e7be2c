package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"project-plan-api/internal/client"
	"project-plan-api/internal/domain"
	"project-plan-api/internal/dto"
	"project-plan-api/internal/prompt"
	"project-plan-api/internal/repository"
	"project-plan-api/internal/response"
	"project-plan-api/internal/workload"
)

// AIService defines the interface for the assistant endpoints: task
// breakdown, sprint planning, status reports, workload advice and the
// conversational advisor.
type AIService interface {
	BreakdownRequirements(ctx context.Context, ownerID uuid.UUID, req *dto.BreakdownRequest) (*dto.BreakdownResponse, error)
	PlanSprints(ctx context.Context, ownerID uuid.UUID, req *dto.SprintPlanRequest) (*dto.SprintPlanResponse, error)
	GenerateReport(ctx context.Context, ownerID uuid.UUID, req *dto.ReportRequest) (*dto.ReportResponse, error)
	Advise(ctx context.Context, ownerID uuid.UUID, req *dto.AdvisorRequest) (*dto.AdvisorResponse, error)
	OptimizeWorkload(ctx context.Context, ownerID uuid.UUID, req *dto.OptimizeWorkloadRequest) (*dto.OptimizeWorkloadResponse, error)
}

// aiServiceImpl is the implementation of AIService
type aiServiceImpl struct {
	projectRepo           repository.ProjectRepository
	taskRepo              repository.TaskRepository
	sprintRepo            repository.SprintRepository
	baselineRepo          repository.BaselineRepository
	settingsRepo          repository.SettingsRepository
	resourceService       ResourceService
	completionClient      client.CompletionClient
	sprintCapacityPerWeek float64
	logger                *zap.Logger
}

// NewAIService creates a new instance of AIService
func NewAIService(
	projectRepo repository.ProjectRepository,
	taskRepo repository.TaskRepository,
	sprintRepo repository.SprintRepository,
	baselineRepo repository.BaselineRepository,
	settingsRepo repository.SettingsRepository,
	resourceService ResourceService,
	completionClient client.CompletionClient,
	sprintCapacityPerWeek float64,
	logger *zap.Logger,
) AIService {
	return &aiServiceImpl{
		projectRepo:           projectRepo,
		taskRepo:              taskRepo,
		sprintRepo:            sprintRepo,
		baselineRepo:          baselineRepo,
		settingsRepo:          settingsRepo,
		resourceService:       resourceService,
		completionClient:      completionClient,
		sprintCapacityPerWeek: sprintCapacityPerWeek,
		logger:                logger,
	}
}

// loadPlan fetches the project, its tasks and its sprints after the
// ownership check
func (s *aiServiceImpl) loadPlan(ctx context.Context, projectID, ownerID uuid.UUID) (*domain.Project, []*domain.Task, []*domain.Sprint, error) {
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

// BreakdownRequirements turns free-text requirements into proposed tasks.
// The proposals are returned as-is; nothing is persisted until the caller
// creates the tasks explicitly.
func (s *aiServiceImpl) BreakdownRequirements(ctx context.Context, ownerID uuid.UUID, req *dto.BreakdownRequest) (*dto.BreakdownResponse, error) {
	if _, err := findOwnedProject(ctx, s.projectRepo, req.ProjectID, ownerID); err != nil {
		return nil, err
	}

	system, user := prompt.Breakdown(req.Requirements)

	var result dto.BreakdownResponse
	if err := completeJSONStrict(ctx, s.completionClient, system, user, &result); err != nil {
		return nil, err
	}
	for i, t := range result.Tasks {
		if t.Title == "" {
			return nil, response.NewAppError(response.ErrCodeUpstreamContract,
				"Completion reply did not match the expected schema",
				"tasks entry without a title")
		}
		if t.EstimatedHours < 0 {
			result.Tasks[i].EstimatedHours = 0
		}
	}

	s.logger.Info("Requirements broken down",
		zap.String("project_id", req.ProjectID.String()),
		zap.Int("tasks", len(result.Tasks)))

	return &result, nil
}

// PlanSprints proposes a distribution of the project's tasks across
// sprints, using the caller's preferred sprint length
func (s *aiServiceImpl) PlanSprints(ctx context.Context, ownerID uuid.UUID, req *dto.SprintPlanRequest) (*dto.SprintPlanResponse, error) {
	project, tasks, sprints, err := s.loadPlan(ctx, req.ProjectID, ownerID)
	if err != nil {
		return nil, err
	}

	sprintLengthDays := 14
	if settings, err := s.settingsRepo.FindByUser(ctx, ownerID); err == nil {
		sprintLengthDays = settings.SprintLengthDays
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch settings", err.Error())
	}

	system, user := prompt.SprintPlan(project, tasks, sprints, sprintLengthDays)

	var result dto.SprintPlanResponse
	if err := completeJSONStrict(ctx, s.completionClient, system, user, &result); err != nil {
		return nil, err
	}
	for _, sp := range result.Sprints {
		if sp.Name == "" {
			return nil, response.NewAppError(response.ErrCodeUpstreamContract,
				"Completion reply did not match the expected schema",
				"sprints entry without a name")
		}
	}

	return &result, nil
}

// GenerateReport produces a narrative status report including drift
// against the latest baseline
func (s *aiServiceImpl) GenerateReport(ctx context.Context, ownerID uuid.UUID, req *dto.ReportRequest) (*dto.ReportResponse, error) {
	project, tasks, sprints, err := s.loadPlan(ctx, req.ProjectID, ownerID)
	if err != nil {
		return nil, err
	}

	baseline, err := s.baselineRepo.FindLatestByProject(ctx, req.ProjectID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch baseline", err.Error())
		}
		baseline = nil
	}
	comparison := workload.CompareBaseline(tasks, sprints, baseline, project.Deadline, s.sprintCapacityPerWeek)

	system, user := prompt.Report(project, tasks, sprints, comparison)

	report, err := s.completionClient.Complete(ctx, []client.Message{
		{Role: "system", Content: system},
		{Role: "user", Content: user},
	})
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeUpstreamAI, "Completion provider call failed", err.Error())
	}

	return &dto.ReportResponse{Report: report}, nil
}

// Advise answers a conversational question about the project. History
// beyond the most recent turns is dropped before the call.
func (s *aiServiceImpl) Advise(ctx context.Context, ownerID uuid.UUID, req *dto.AdvisorRequest) (*dto.AdvisorResponse, error) {
	project, tasks, sprints, err := s.loadPlan(ctx, req.ProjectID, ownerID)
	if err != nil {
		return nil, err
	}

	system, turns := prompt.Advisor(project, tasks, sprints, req.Conversation)

	messages := make([]client.Message, 0, len(turns)+1)
	messages = append(messages, client.Message{Role: "system", Content: system})
	for _, t := range turns {
		messages = append(messages, client.Message{Role: t.Role, Content: t.Content})
	}

	reply, err := s.completionClient.Complete(ctx, messages)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeUpstreamAI, "Completion provider call failed", err.Error())
	}

	return &dto.AdvisorResponse{Reply: reply}, nil
}

// OptimizeWorkload suggests reassignments based on the computed team
// workload view
func (s *aiServiceImpl) OptimizeWorkload(ctx context.Context, ownerID uuid.UUID, req *dto.OptimizeWorkloadRequest) (*dto.OptimizeWorkloadResponse, error) {
	project, err := findOwnedProject(ctx, s.projectRepo, req.ProjectID, ownerID)
	if err != nil {
		return nil, err
	}

	team, err := s.resourceService.GetTeamWorkload(ctx, req.ProjectID, ownerID)
	if err != nil {
		return nil, err
	}

	system, user := prompt.OptimizeWorkload(project, team)

	var result dto.OptimizeWorkloadResponse
	if err := completeJSONStrict(ctx, s.completionClient, system, user, &result); err != nil {
		return nil, err
	}

	return &result, nil
}
