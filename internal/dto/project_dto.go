package dto

import (
	"time"

	"github.com/google/uuid"

	"project-plan-api/internal/domain"
)

// CreateProjectRequest represents the request to create a new project
type CreateProjectRequest struct {
	Name        string     `json:"name" binding:"required,min=2,max=100"`
	Description string     `json:"description" binding:"max=2000"`
	Deadline    *time.Time `json:"deadline,omitempty"`
}

// UpdateProjectRequest represents the request to update a project.
// All fields are optional.
type UpdateProjectRequest struct {
	Name        *string               `json:"name" binding:"omitempty,min=2,max=100"`
	Description *string               `json:"description" binding:"omitempty,max=2000"`
	Status      *domain.ProjectStatus `json:"status" binding:"omitempty,oneof=planning in_progress completed on_hold"`
	Health      *domain.ProjectHealth `json:"health" binding:"omitempty,oneof=healthy at_risk critical"`
	Deadline    *time.Time            `json:"deadline,omitempty"`
	Progress    *int                  `json:"progress" binding:"omitempty,min=0,max=100"`
}

// ProjectResponse represents the project response
type ProjectResponse struct {
	ID          uuid.UUID            `json:"projectId"`
	OwnerID     uuid.UUID            `json:"ownerId"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Status      domain.ProjectStatus `json:"status"`
	Health      domain.ProjectHealth `json:"health"`
	Deadline    *time.Time           `json:"deadline,omitempty"`
	Progress    int                  `json:"progress"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

// ToProjectResponse converts a domain project to its response form
func ToProjectResponse(p *domain.Project) *ProjectResponse {
	return &ProjectResponse{
		ID:          p.ID,
		OwnerID:     p.OwnerID,
		Name:        p.Name,
		Description: p.Description,
		Status:      p.Status,
		Health:      p.Health,
		Deadline:    p.Deadline,
		Progress:    p.Progress,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
