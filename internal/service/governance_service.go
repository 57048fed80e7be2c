package service

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"project-plan-api/internal/domain"
	"project-plan-api/internal/dto"
	"project-plan-api/internal/repository"
	"project-plan-api/internal/response"
)

// GovernanceService defines the interface for risks, decisions and milestones
type GovernanceService interface {
	CreateRisk(ctx context.Context, projectID, ownerID uuid.UUID, req *dto.CreateRiskRequest) (*dto.RiskResponse, error)
	ListRisks(ctx context.Context, projectID, ownerID uuid.UUID) ([]*dto.RiskResponse, error)
	CreateDecision(ctx context.Context, projectID, ownerID uuid.UUID, req *dto.CreateDecisionRequest) (*dto.DecisionResponse, error)
	ListDecisions(ctx context.Context, projectID, ownerID uuid.UUID) ([]*dto.DecisionResponse, error)
	CreateMilestone(ctx context.Context, projectID, ownerID uuid.UUID, req *dto.CreateMilestoneRequest) (*dto.MilestoneResponse, error)
	ListMilestones(ctx context.Context, projectID, ownerID uuid.UUID) ([]*dto.MilestoneResponse, error)
	GetGovernance(ctx context.Context, projectID, ownerID uuid.UUID) (*dto.GovernanceResponse, error)
}

// governanceServiceImpl is the implementation of GovernanceService
type governanceServiceImpl struct {
	governanceRepo repository.GovernanceRepository
	projectRepo    repository.ProjectRepository
	logger         *zap.Logger
}

// NewGovernanceService creates a new instance of GovernanceService
func NewGovernanceService(governanceRepo repository.GovernanceRepository, projectRepo repository.ProjectRepository, logger *zap.Logger) GovernanceService {
	return &governanceServiceImpl{
		governanceRepo: governanceRepo,
		projectRepo:    projectRepo,
		logger:         logger,
	}
}

// CreateRisk records a risk against a project
func (s *governanceServiceImpl) CreateRisk(ctx context.Context, projectID, ownerID uuid.UUID, req *dto.CreateRiskRequest) (*dto.RiskResponse, error) {
	if _, err := findOwnedProject(ctx, s.projectRepo, projectID, ownerID); err != nil {
		return nil, err
	}

	severity := req.Severity
	if severity == "" {
		severity = domain.RiskSeverityMedium
	}

	risk := &domain.Risk{
		ProjectID:   projectID,
		Title:       req.Title,
		Description: req.Description,
		Severity:    severity,
		Status:      "open",
	}
	if err := s.governanceRepo.CreateRisk(ctx, risk); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create risk", err.Error())
	}
	return dto.ToRiskResponse(risk), nil
}

// ListRisks returns a project's risks, most severe first
func (s *governanceServiceImpl) ListRisks(ctx context.Context, projectID, ownerID uuid.UUID) ([]*dto.RiskResponse, error) {
	if _, err := findOwnedProject(ctx, s.projectRepo, projectID, ownerID); err != nil {
		return nil, err
	}
	risks, err := s.governanceRepo.FindRisksByProject(ctx, projectID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch risks", err.Error())
	}
	return toRiskResponses(risks), nil
}

// CreateDecision records a decision against a project
func (s *governanceServiceImpl) CreateDecision(ctx context.Context, projectID, ownerID uuid.UUID, req *dto.CreateDecisionRequest) (*dto.DecisionResponse, error) {
	if _, err := findOwnedProject(ctx, s.projectRepo, projectID, ownerID); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = "proposed"
	}

	decision := &domain.Decision{
		ProjectID:   projectID,
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		DecidedAt:   req.DecidedAt,
	}
	if err := s.governanceRepo.CreateDecision(ctx, decision); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create decision", err.Error())
	}
	return dto.ToDecisionResponse(decision), nil
}

// ListDecisions returns a project's decisions
func (s *governanceServiceImpl) ListDecisions(ctx context.Context, projectID, ownerID uuid.UUID) ([]*dto.DecisionResponse, error) {
	if _, err := findOwnedProject(ctx, s.projectRepo, projectID, ownerID); err != nil {
		return nil, err
	}
	decisions, err := s.governanceRepo.FindDecisionsByProject(ctx, projectID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch decisions", err.Error())
	}
	return toDecisionResponses(decisions), nil
}

// CreateMilestone records a milestone against a project
func (s *governanceServiceImpl) CreateMilestone(ctx context.Context, projectID, ownerID uuid.UUID, req *dto.CreateMilestoneRequest) (*dto.MilestoneResponse, error) {
	if _, err := findOwnedProject(ctx, s.projectRepo, projectID, ownerID); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = "upcoming"
	}

	milestone := &domain.Milestone{
		ProjectID: projectID,
		Name:      req.Name,
		DueDate:   req.DueDate,
		Status:    status,
	}
	if err := s.governanceRepo.CreateMilestone(ctx, milestone); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create milestone", err.Error())
	}
	return dto.ToMilestoneResponse(milestone), nil
}

// ListMilestones returns a project's milestones
func (s *governanceServiceImpl) ListMilestones(ctx context.Context, projectID, ownerID uuid.UUID) ([]*dto.MilestoneResponse, error) {
	if _, err := findOwnedProject(ctx, s.projectRepo, projectID, ownerID); err != nil {
		return nil, err
	}
	milestones, err := s.governanceRepo.FindMilestonesByProject(ctx, projectID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch milestones", err.Error())
	}
	return toMilestoneResponses(milestones), nil
}

// GetGovernance fetches risks, decisions and milestones in parallel. The
// three queries are independent, so the first error wins.
func (s *governanceServiceImpl) GetGovernance(ctx context.Context, projectID, ownerID uuid.UUID) (*dto.GovernanceResponse, error) {
	if _, err := findOwnedProject(ctx, s.projectRepo, projectID, ownerID); err != nil {
		return nil, err
	}

	var (
		wg         sync.WaitGroup
		mu         sync.Mutex
		firstErr   error
		risks      []*domain.Risk
		decisions  []*domain.Decision
		milestones []*domain.Milestone
	)

	recordErr := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		if firstErr == nil {
			firstErr = err
		}
	}

	wg.Add(3)
	go func() {
		defer wg.Done()
		r, err := s.governanceRepo.FindRisksByProject(ctx, projectID)
		if err != nil {
			recordErr(err)
			return
		}
		risks = r
	}()
	go func() {
		defer wg.Done()
		d, err := s.governanceRepo.FindDecisionsByProject(ctx, projectID)
		if err != nil {
			recordErr(err)
			return
		}
		decisions = d
	}()
	go func() {
		defer wg.Done()
		m, err := s.governanceRepo.FindMilestonesByProject(ctx, projectID)
		if err != nil {
			recordErr(err)
			return
		}
		milestones = m
	}()
	wg.Wait()

	if firstErr != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch governance records", firstErr.Error())
	}

	return &dto.GovernanceResponse{
		Risks:      toRiskResponses(risks),
		Decisions:  toDecisionResponses(decisions),
		Milestones: toMilestoneResponses(milestones),
	}, nil
}

func toRiskResponses(risks []*domain.Risk) []*dto.RiskResponse {
	out := make([]*dto.RiskResponse, len(risks))
	for i, r := range risks {
		out[i] = dto.ToRiskResponse(r)
	}
	return out
}

func toDecisionResponses(decisions []*domain.Decision) []*dto.DecisionResponse {
	out := make([]*dto.DecisionResponse, len(decisions))
	for i, d := range decisions {
		out[i] = dto.ToDecisionResponse(d)
	}
	return out
}

func toMilestoneResponses(milestones []*domain.Milestone) []*dto.MilestoneResponse {
	out := make([]*dto.MilestoneResponse, len(milestones))
	for i, m := range milestones {
		out[i] = dto.ToMilestoneResponse(m)
	}
	return out
}
