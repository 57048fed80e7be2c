package dto

import (
	"time"

	"github.com/google/uuid"

	"project-plan-api/internal/domain"
)

// CreateSprintRequest represents the request to create a sprint
type CreateSprintRequest struct {
	Name      string    `json:"name" binding:"required,min=1,max=255"`
	Goal      string    `json:"goal" binding:"max=1000"`
	StartDate time.Time `json:"startDate" binding:"required"`
	EndDate   time.Time `json:"endDate" binding:"required"`
	Position  int       `json:"position" binding:"omitempty,min=0"`
}

// UpdateSprintRequest represents the request to update a sprint
type UpdateSprintRequest struct {
	Name      *string              `json:"name" binding:"omitempty,min=1,max=255"`
	Goal      *string              `json:"goal" binding:"omitempty,max=1000"`
	StartDate *time.Time           `json:"startDate,omitempty"`
	EndDate   *time.Time           `json:"endDate,omitempty"`
	Status    *domain.SprintStatus `json:"status" binding:"omitempty,oneof=planned active completed"`
	Position  *int                 `json:"position" binding:"omitempty,min=0"`
}

// SprintResponse represents the sprint response
type SprintResponse struct {
	ID        uuid.UUID           `json:"sprintId"`
	ProjectID uuid.UUID           `json:"projectId"`
	Name      string              `json:"name"`
	Goal      string              `json:"goal"`
	StartDate time.Time           `json:"startDate"`
	EndDate   time.Time           `json:"endDate"`
	Status    domain.SprintStatus `json:"status"`
	Position  int                 `json:"position"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
}

// ToSprintResponse converts a domain sprint to its response form
func ToSprintResponse(s *domain.Sprint) *SprintResponse {
	return &SprintResponse{
		ID:        s.ID,
		ProjectID: s.ProjectID,
		Name:      s.Name,
		Goal:      s.Goal,
		StartDate: s.StartDate,
		EndDate:   s.EndDate,
		Status:    s.Status,
		Position:  s.Position,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// ToSprintResponses converts a slice of domain sprints
func ToSprintResponses(sprints []*domain.Sprint) []*SprintResponse {
	responses := make([]*SprintResponse, len(sprints))
	for i, s := range sprints {
		responses[i] = ToSprintResponse(s)
	}
	return responses
}
