package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"project-plan-api/internal/client"
	"project-plan-api/internal/domain"
	"project-plan-api/internal/dto"
	"project-plan-api/internal/metrics"
	"project-plan-api/internal/prompt"
	"project-plan-api/internal/repository"
	"project-plan-api/internal/response"
	"project-plan-api/internal/workload"
)

// ChangeService defines the interface for the change request lifecycle:
// open, analyze via the completion provider, then approve or reject.
type ChangeService interface {
	CreateChangeRequest(ctx context.Context, projectID, ownerID uuid.UUID, req *dto.CreateChangeRequestRequest) (*dto.ChangeRequestResponse, error)
	ListChangeRequests(ctx context.Context, projectID, ownerID uuid.UUID) ([]*dto.ChangeRequestResponse, error)
	GetChangeRequest(ctx context.Context, projectID, changeID, ownerID uuid.UUID) (*dto.ChangeRequestResponse, error)
	GetAnalysis(ctx context.Context, projectID, changeID, ownerID uuid.UUID) (*dto.AnalysisResponse, error)
	AnalyzeChange(ctx context.Context, projectID, changeID, ownerID uuid.UUID) (*dto.AnalysisResponse, error)
	ApproveChange(ctx context.Context, projectID, changeID, ownerID uuid.UUID) (*dto.ApproveChangeResponse, error)
	RejectChange(ctx context.Context, projectID, changeID, ownerID uuid.UUID, req *dto.RejectChangeRequestRequest) (*dto.ChangeRequestResponse, error)
	GetHistory(ctx context.Context, projectID, ownerID uuid.UUID) ([]*dto.ChangeHistoryResponse, error)
}

// changeServiceImpl is the implementation of ChangeService
type changeServiceImpl struct {
	changeRepo            repository.ChangeRepository
	taskRepo              repository.TaskRepository
	sprintRepo            repository.SprintRepository
	baselineRepo          repository.BaselineRepository
	projectRepo           repository.ProjectRepository
	completionClient      client.CompletionClient
	sprintCapacityPerWeek float64
	workloadCache         WorkloadCache
	metrics               *metrics.Metrics
	logger                *zap.Logger
}

// NewChangeService creates a new instance of ChangeService
func NewChangeService(
	changeRepo repository.ChangeRepository,
	taskRepo repository.TaskRepository,
	sprintRepo repository.SprintRepository,
	baselineRepo repository.BaselineRepository,
	projectRepo repository.ProjectRepository,
	completionClient client.CompletionClient,
	sprintCapacityPerWeek float64,
	workloadCache WorkloadCache,
	m *metrics.Metrics,
	logger *zap.Logger,
) ChangeService {
	return &changeServiceImpl{
		changeRepo:            changeRepo,
		taskRepo:              taskRepo,
		sprintRepo:            sprintRepo,
		baselineRepo:          baselineRepo,
		projectRepo:           projectRepo,
		completionClient:      completionClient,
		sprintCapacityPerWeek: sprintCapacityPerWeek,
		workloadCache:         workloadCache,
		metrics:               m,
		logger:                logger,
	}
}

// CreateChangeRequest opens a change request and writes its audit row in
// the same transaction
func (s *changeServiceImpl) CreateChangeRequest(ctx context.Context, projectID, ownerID uuid.UUID, req *dto.CreateChangeRequestRequest) (*dto.ChangeRequestResponse, error) {
	if _, err := findOwnedProject(ctx, s.projectRepo, projectID, ownerID); err != nil {
		return nil, err
	}

	priority := req.Priority
	if priority == "" {
		priority = "medium"
	}

	request := &domain.ChangeRequest{
		ProjectID:   projectID,
		Title:       req.Title,
		Description: req.Description,
		ChangeType:  req.ChangeType,
		Priority:    priority,
		Area:        req.Area,
		Status:      domain.ChangeStatusOpen,
	}
	history := &domain.ChangeHistory{
		ProjectID:   projectID,
		Action:      "change_request_created",
		Description: req.Title,
	}

	if err := s.changeRepo.CreateRequest(ctx, request, history); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create change request", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementChangeRequestCreated()
	}

	s.logger.Info("Change request created",
		zap.String("change_request_id", request.ID.String()),
		zap.String("project_id", projectID.String()))

	return dto.ToChangeRequestResponse(request), nil
}

// ListChangeRequests returns a project's change requests
func (s *changeServiceImpl) ListChangeRequests(ctx context.Context, projectID, ownerID uuid.UUID) ([]*dto.ChangeRequestResponse, error) {
	if _, err := findOwnedProject(ctx, s.projectRepo, projectID, ownerID); err != nil {
		return nil, err
	}

	requests, err := s.changeRepo.FindRequestsByProject(ctx, projectID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch change requests", err.Error())
	}

	responses := make([]*dto.ChangeRequestResponse, len(requests))
	for i, r := range requests {
		responses[i] = dto.ToChangeRequestResponse(r)
	}
	return responses, nil
}

// findProjectChange loads a change request and verifies it belongs to the
// given project
func (s *changeServiceImpl) findProjectChange(ctx context.Context, projectID, changeID uuid.UUID) (*domain.ChangeRequest, error) {
	request, err := s.changeRepo.FindRequestByID(ctx, changeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Change request not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch change request", err.Error())
	}
	if request.ProjectID != projectID {
		return nil, response.NewAppError(response.ErrCodeNotFound, "Change request not found", "")
	}
	return request, nil
}

// GetChangeRequest returns one change request
func (s *changeServiceImpl) GetChangeRequest(ctx context.Context, projectID, changeID, ownerID uuid.UUID) (*dto.ChangeRequestResponse, error) {
	if _, err := findOwnedProject(ctx, s.projectRepo, projectID, ownerID); err != nil {
		return nil, err
	}
	request, err := s.findProjectChange(ctx, projectID, changeID)
	if err != nil {
		return nil, err
	}
	return dto.ToChangeRequestResponse(request), nil
}

func toAnalysisResponse(analysis *domain.ChangeAnalysis, projection *workload.BaselineComparison) (*dto.AnalysisResponse, error) {
	resp := &dto.AnalysisResponse{
		ID:                 analysis.ID,
		ChangeRequestID:    analysis.ChangeRequestID,
		EffortHours:        analysis.EffortHours,
		ReworkHours:        analysis.ReworkHours,
		DeadlineImpactDays: analysis.DeadlineImpactDays,
		Summary:            analysis.Summary,
		NewTasks:           []dto.ProposedTask{},
		UpdatedTasks:       []dto.ProposedTaskUpdate{},
		Risks:              []string{},
		Projection:         projection,
		CreatedAt:          analysis.CreatedAt,
	}
	if len(analysis.NewTasks) > 0 {
		if err := json.Unmarshal(analysis.NewTasks, &resp.NewTasks); err != nil {
			return nil, err
		}
	}
	if len(analysis.UpdatedTasks) > 0 {
		if err := json.Unmarshal(analysis.UpdatedTasks, &resp.UpdatedTasks); err != nil {
			return nil, err
		}
	}
	if len(analysis.Risks) > 0 {
		if err := json.Unmarshal(analysis.Risks, &resp.Risks); err != nil {
			return nil, err
		}
	}
	return resp, nil
}

// GetAnalysis returns the stored analysis for a change request
func (s *changeServiceImpl) GetAnalysis(ctx context.Context, projectID, changeID, ownerID uuid.UUID) (*dto.AnalysisResponse, error) {
	if _, err := findOwnedProject(ctx, s.projectRepo, projectID, ownerID); err != nil {
		return nil, err
	}
	if _, err := s.findProjectChange(ctx, projectID, changeID); err != nil {
		return nil, err
	}

	analysis, err := s.changeRepo.FindAnalysisByRequest(ctx, changeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Change request has no analysis", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch analysis", err.Error())
	}

	resp, err := toAnalysisResponse(analysis, nil)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to decode stored analysis", err.Error())
	}
	return resp, nil
}

// latestBaseline returns the newest baseline or nil when none exists
func (s *changeServiceImpl) latestBaseline(ctx context.Context, projectID uuid.UUID) (*domain.Baseline, error) {
	baseline, err := s.baselineRepo.FindLatestByProject(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return baseline, nil
}

// AnalyzeChange asks the completion provider to estimate a change request's
// impact, persists the result and moves the request to analyzed. The
// provider call happens before the transaction: a failed call leaves the
// request open with no analysis row and no history row.
func (s *changeServiceImpl) AnalyzeChange(ctx context.Context, projectID, changeID, ownerID uuid.UUID) (*dto.AnalysisResponse, error) {
	project, err := findOwnedProject(ctx, s.projectRepo, projectID, ownerID)
	if err != nil {
		return nil, err
	}

	request, err := s.findProjectChange(ctx, projectID, changeID)
	if err != nil {
		return nil, err
	}
	if request.Status != domain.ChangeStatusOpen {
		return nil, response.NewAppError(response.ErrCodeValidation,
			"Only open change requests can be analyzed", string(request.Status))
	}

	tasks, err := s.taskRepo.FindByProjectID(ctx, projectID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch tasks", err.Error())
	}
	sprints, err := s.sprintRepo.FindByProjectID(ctx, projectID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch sprints", err.Error())
	}
	baseline, err := s.latestBaseline(ctx, projectID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch baseline", err.Error())
	}

	comparison := workload.CompareBaseline(tasks, sprints, baseline, project.Deadline, s.sprintCapacityPerWeek)

	system, user := prompt.ChangeAnalysis(project, tasks, sprints, comparison, request)

	var result dto.AnalysisResult
	if err := completeJSONStrict(ctx, s.completionClient, system, user, &result); err != nil {
		return nil, err
	}
	if err := result.Validate(); err != nil {
		return nil, response.NewAppError(response.ErrCodeUpstreamContract,
			"Completion reply did not match the expected schema", err.Error())
	}

	newTasksJSON, err := json.Marshal(result.NewTasks)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to serialize analysis", err.Error())
	}
	updatedTasksJSON, err := json.Marshal(result.UpdatedTasks)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to serialize analysis", err.Error())
	}
	risksJSON, err := json.Marshal(result.Risks)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to serialize analysis", err.Error())
	}

	analysis := &domain.ChangeAnalysis{
		ChangeRequestID:    request.ID,
		EffortHours:        result.EffortHours,
		ReworkHours:        result.ReworkHours,
		DeadlineImpactDays: result.DeadlineImpactDays,
		Summary:            result.Summary,
		NewTasks:           newTasksJSON,
		UpdatedTasks:       updatedTasksJSON,
		Risks:              risksJSON,
	}
	history := &domain.ChangeHistory{
		ProjectID:       projectID,
		ChangeRequestID: &request.ID,
		Action:          "change_request_analyzed",
		Description:     result.Summary,
		HoursDelta:      result.EffortHours + result.ReworkHours,
		TasksDelta:      len(result.NewTasks),
		DaysDelta:       result.DeadlineImpactDays,
	}

	if err := s.changeRepo.AnalyzeTransition(ctx, request.ID, analysis, history); err != nil {
		if errors.Is(err, repository.ErrInvalidTransition) {
			return nil, response.NewAppError(response.ErrCodeValidation,
				"Only open change requests can be analyzed", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to store analysis", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementChangeAnalyzed()
	}

	s.logger.Info("Change request analyzed",
		zap.String("change_request_id", request.ID.String()),
		zap.Float64("effort_hours", result.EffortHours),
		zap.Int("new_tasks", len(result.NewTasks)))

	// Projection: the same comparison with the proposed tasks stacked on
	// top of the current plan. Nothing is persisted for it.
	projected := make([]*domain.Task, len(tasks), len(tasks)+len(result.NewTasks))
	copy(projected, tasks)
	for _, t := range result.NewTasks {
		projected = append(projected, &domain.Task{EstimatedHours: t.EstimatedHours})
	}
	projection := workload.CompareBaseline(projected, sprints, baseline, project.Deadline, s.sprintCapacityPerWeek)

	resp, err := toAnalysisResponse(analysis, projection)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to decode stored analysis", err.Error())
	}
	return resp, nil
}

// ApproveChange materializes an analyzed change request: proposed new
// tasks are appended to the plan, suggested updates are counted but never
// applied, and the request moves to approved.
func (s *changeServiceImpl) ApproveChange(ctx context.Context, projectID, changeID, ownerID uuid.UUID) (*dto.ApproveChangeResponse, error) {
	if _, err := findOwnedProject(ctx, s.projectRepo, projectID, ownerID); err != nil {
		return nil, err
	}

	request, err := s.findProjectChange(ctx, projectID, changeID)
	if err != nil {
		return nil, err
	}

	analysis, err := s.changeRepo.FindAnalysisByRequest(ctx, changeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeValidation,
				"Change request has not been analyzed", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch analysis", err.Error())
	}

	var proposed []dto.ProposedTask
	if len(analysis.NewTasks) > 0 {
		if err := json.Unmarshal(analysis.NewTasks, &proposed); err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to decode stored analysis", err.Error())
		}
	}
	var updates []dto.ProposedTaskUpdate
	if len(analysis.UpdatedTasks) > 0 {
		if err := json.Unmarshal(analysis.UpdatedTasks, &updates); err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to decode stored analysis", err.Error())
		}
	}

	maxOrder, err := s.taskRepo.MaxOrderIndex(ctx, projectID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to determine task order", err.Error())
	}

	tasks := make([]*domain.Task, len(proposed))
	titles := make([]string, len(proposed))
	for i, p := range proposed {
		tasks[i] = &domain.Task{
			ProjectID:      projectID,
			Title:          p.Title,
			Description:    p.Description,
			Type:           "change",
			Status:         domain.TaskStatusPending,
			Priority:       domain.PriorityFromWord(p.Priority),
			EstimatedHours: p.EstimatedHours,
			OrderIndex:     maxOrder + 1 + i,
		}
		titles[i] = p.Title
	}

	history := &domain.ChangeHistory{
		ProjectID:       projectID,
		ChangeRequestID: &request.ID,
		Action:          "change_request_approved",
		Description:     request.Title,
		HoursDelta:      analysis.EffortHours + analysis.ReworkHours,
		TasksDelta:      len(tasks),
		DaysDelta:       analysis.DeadlineImpactDays,
	}

	if err := s.changeRepo.ApproveTransition(ctx, request.ID, tasks, history); err != nil {
		if errors.Is(err, repository.ErrInvalidTransition) {
			return nil, response.NewAppError(response.ErrCodeValidation,
				"Only analyzed change requests can be approved", string(request.Status))
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to approve change request", err.Error())
	}
	request.Status = domain.ChangeStatusApproved

	// Approved tasks change the workload inputs for the project
	if s.workloadCache != nil && len(tasks) > 0 {
		s.workloadCache.Invalidate(ctx, projectID)
	}

	if s.metrics != nil {
		s.metrics.IncrementChangeApproved()
		s.metrics.IncrementTasksCreated(len(tasks))
	}

	s.logger.Info("Change request approved",
		zap.String("change_request_id", request.ID.String()),
		zap.Int("tasks_created", len(tasks)))

	return &dto.ApproveChangeResponse{
		ChangeRequest:     dto.ToChangeRequestResponse(request),
		TasksCreated:      len(tasks),
		UpdatesSuggested:  len(updates),
		CreatedTaskTitles: titles,
	}, nil
}

// RejectChange closes a change request without touching the plan. Both
// open and analyzed requests can be rejected.
func (s *changeServiceImpl) RejectChange(ctx context.Context, projectID, changeID, ownerID uuid.UUID, req *dto.RejectChangeRequestRequest) (*dto.ChangeRequestResponse, error) {
	if _, err := findOwnedProject(ctx, s.projectRepo, projectID, ownerID); err != nil {
		return nil, err
	}

	request, err := s.findProjectChange(ctx, projectID, changeID)
	if err != nil {
		return nil, err
	}
	if request.Status == domain.ChangeStatusApproved || request.Status == domain.ChangeStatusRejected {
		return nil, response.NewAppError(response.ErrCodeValidation,
			"Change request is already resolved", string(request.Status))
	}

	description := request.Title
	if req != nil && req.Reason != "" {
		description = req.Reason
	}
	history := &domain.ChangeHistory{
		ProjectID:       projectID,
		ChangeRequestID: &request.ID,
		Action:          "change_request_rejected",
		Description:     description,
	}

	if err := s.changeRepo.RejectTransition(ctx, request.ID, history); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Change request not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to reject change request", err.Error())
	}
	request.Status = domain.ChangeStatusRejected

	if s.metrics != nil {
		s.metrics.IncrementChangeRejected()
	}

	s.logger.Info("Change request rejected",
		zap.String("change_request_id", request.ID.String()))

	return dto.ToChangeRequestResponse(request), nil
}

// GetHistory returns the project's audit log, newest first
func (s *changeServiceImpl) GetHistory(ctx context.Context, projectID, ownerID uuid.UUID) ([]*dto.ChangeHistoryResponse, error) {
	if _, err := findOwnedProject(ctx, s.projectRepo, projectID, ownerID); err != nil {
		return nil, err
	}

	entries, err := s.changeRepo.FindHistoryByProject(ctx, projectID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch change history", err.Error())
	}

	responses := make([]*dto.ChangeHistoryResponse, len(entries))
	for i, h := range entries {
		responses[i] = dto.ToChangeHistoryResponse(h)
	}
	return responses, nil
}
