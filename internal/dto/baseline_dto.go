package dto

import (
	"time"

	"github.com/google/uuid"

	"project-plan-api/internal/domain"
)

// CreateBaselineRequest represents the request to snapshot a project
type CreateBaselineRequest struct {
	Name      string `json:"name" binding:"required,min=1,max=255"`
	RiskLevel string `json:"riskLevel" binding:"omitempty,oneof=low medium high critical"`
}

// BaselineResponse represents the baseline response. Snapshots are omitted
// from list views; they exist for audit, not display.
type BaselineResponse struct {
	ID                  uuid.UUID  `json:"baselineId"`
	ProjectID           uuid.UUID  `json:"projectId"`
	Name                string     `json:"name"`
	TotalHours          float64    `json:"totalHours"`
	TaskCount           int        `json:"taskCount"`
	SprintCount         int        `json:"sprintCount"`
	PlannedDeliveryDate *time.Time `json:"plannedDeliveryDate,omitempty"`
	RiskLevel           string     `json:"riskLevel"`
	CreatedAt           time.Time  `json:"createdAt"`
}

// ToBaselineResponse converts a domain baseline to its response form
func ToBaselineResponse(b *domain.Baseline) *BaselineResponse {
	return &BaselineResponse{
		ID:                  b.ID,
		ProjectID:           b.ProjectID,
		Name:                b.Name,
		TotalHours:          b.TotalHours,
		TaskCount:           b.TaskCount,
		SprintCount:         b.SprintCount,
		PlannedDeliveryDate: b.PlannedDeliveryDate,
		RiskLevel:           b.RiskLevel,
		CreatedAt:           b.CreatedAt,
	}
}
