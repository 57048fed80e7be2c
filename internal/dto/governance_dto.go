package dto

import (
	"time"

	"github.com/google/uuid"

	"project-plan-api/internal/domain"
)

// CreateRiskRequest represents the request to record a risk
type CreateRiskRequest struct {
	Title       string              `json:"title" binding:"required,min=1,max=255"`
	Description string              `json:"description" binding:"max=2000"`
	Severity    domain.RiskSeverity `json:"severity" binding:"omitempty,oneof=critical high medium low"`
}

// CreateDecisionRequest represents the request to record a decision
type CreateDecisionRequest struct {
	Title       string     `json:"title" binding:"required,min=1,max=255"`
	Description string     `json:"description" binding:"max=2000"`
	Status      string     `json:"status" binding:"omitempty,oneof=proposed accepted superseded"`
	DecidedAt   *time.Time `json:"decidedAt,omitempty"`
}

// CreateMilestoneRequest represents the request to record a milestone
type CreateMilestoneRequest struct {
	Name    string     `json:"name" binding:"required,min=1,max=255"`
	DueDate *time.Time `json:"dueDate,omitempty"`
	Status  string     `json:"status" binding:"omitempty,oneof=upcoming reached missed"`
}

// RiskResponse represents the risk response
type RiskResponse struct {
	ID          uuid.UUID           `json:"riskId"`
	ProjectID   uuid.UUID           `json:"projectId"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Severity    domain.RiskSeverity `json:"severity"`
	Status      string              `json:"status"`
	CreatedAt   time.Time           `json:"createdAt"`
}

// ToRiskResponse converts a domain risk
func ToRiskResponse(r *domain.Risk) *RiskResponse {
	return &RiskResponse{
		ID:          r.ID,
		ProjectID:   r.ProjectID,
		Title:       r.Title,
		Description: r.Description,
		Severity:    r.Severity,
		Status:      r.Status,
		CreatedAt:   r.CreatedAt,
	}
}

// DecisionResponse represents the decision response
type DecisionResponse struct {
	ID          uuid.UUID  `json:"decisionId"`
	ProjectID   uuid.UUID  `json:"projectId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	DecidedAt   *time.Time `json:"decidedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// ToDecisionResponse converts a domain decision
func ToDecisionResponse(d *domain.Decision) *DecisionResponse {
	return &DecisionResponse{
		ID:          d.ID,
		ProjectID:   d.ProjectID,
		Title:       d.Title,
		Description: d.Description,
		Status:      d.Status,
		DecidedAt:   d.DecidedAt,
		CreatedAt:   d.CreatedAt,
	}
}

// MilestoneResponse represents the milestone response
type MilestoneResponse struct {
	ID        uuid.UUID  `json:"milestoneId"`
	ProjectID uuid.UUID  `json:"projectId"`
	Name      string     `json:"name"`
	DueDate   *time.Time `json:"dueDate,omitempty"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
}

// ToMilestoneResponse converts a domain milestone
func ToMilestoneResponse(m *domain.Milestone) *MilestoneResponse {
	return &MilestoneResponse{
		ID:        m.ID,
		ProjectID: m.ProjectID,
		Name:      m.Name,
		DueDate:   m.DueDate,
		Status:    m.Status,
		CreatedAt: m.CreatedAt,
	}
}

// GovernanceResponse bundles the three governance collections
type GovernanceResponse struct {
	Risks      []*RiskResponse      `json:"risks"`
	Decisions  []*DecisionResponse  `json:"decisions"`
	Milestones []*MilestoneResponse `json:"milestones"`
}
