package repository

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"project-plan-api/internal/domain"
)

// GovernanceRepository defines data access for risks, decisions and
// milestones. These are read-mostly records with no derived computation
// beyond severity ranking for display.
type GovernanceRepository interface {
	CreateRisk(ctx context.Context, risk *domain.Risk) error
	FindRisksByProject(ctx context.Context, projectID uuid.UUID) ([]*domain.Risk, error)
	CreateDecision(ctx context.Context, decision *domain.Decision) error
	FindDecisionsByProject(ctx context.Context, projectID uuid.UUID) ([]*domain.Decision, error)
	CreateMilestone(ctx context.Context, milestone *domain.Milestone) error
	FindMilestonesByProject(ctx context.Context, projectID uuid.UUID) ([]*domain.Milestone, error)
}

// governanceRepositoryImpl is the GORM implementation of GovernanceRepository
type governanceRepositoryImpl struct {
	db *gorm.DB
}

// NewGovernanceRepository creates a new instance of GovernanceRepository
func NewGovernanceRepository(db *gorm.DB) GovernanceRepository {
	return &governanceRepositoryImpl{db: db}
}

// CreateRisk creates a new risk
func (r *governanceRepositoryImpl) CreateRisk(ctx context.Context, risk *domain.Risk) error {
	return r.db.WithContext(ctx).Create(risk).Error
}

// FindRisksByProject lists risks of a project ranked by severity
func (r *governanceRepositoryImpl) FindRisksByProject(ctx context.Context, projectID uuid.UUID) ([]*domain.Risk, error) {
	var risks []*domain.Risk
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Find(&risks).Error; err != nil {
		return nil, err
	}
	sort.SliceStable(risks, func(i, j int) bool {
		return risks[i].Severity.SeverityRank() < risks[j].Severity.SeverityRank()
	})
	return risks, nil
}

// CreateDecision creates a new decision
func (r *governanceRepositoryImpl) CreateDecision(ctx context.Context, decision *domain.Decision) error {
	return r.db.WithContext(ctx).Create(decision).Error
}

// FindDecisionsByProject lists decisions of a project, newest first
func (r *governanceRepositoryImpl) FindDecisionsByProject(ctx context.Context, projectID uuid.UUID) ([]*domain.Decision, error) {
	var decisions []*domain.Decision
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&decisions).Error; err != nil {
		return nil, err
	}
	return decisions, nil
}

// CreateMilestone creates a new milestone
func (r *governanceRepositoryImpl) CreateMilestone(ctx context.Context, milestone *domain.Milestone) error {
	return r.db.WithContext(ctx).Create(milestone).Error
}

// FindMilestonesByProject lists milestones of a project by due date
func (r *governanceRepositoryImpl) FindMilestonesByProject(ctx context.Context, projectID uuid.UUID) ([]*domain.Milestone, error) {
	var milestones []*domain.Milestone
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("due_date ASC").
		Find(&milestones).Error; err != nil {
		return nil, err
	}
	return milestones, nil
}
