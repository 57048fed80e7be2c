package dto

import (
	"time"

	"github.com/google/uuid"

	"project-plan-api/internal/domain"
)

// CreateResourceRequest represents the request to create a resource
type CreateResourceRequest struct {
	Name                string  `json:"name" binding:"required,min=1,max=255"`
	Role                string  `json:"role" binding:"max=100"`
	WeeklyCapacityHours float64 `json:"weeklyCapacityHours" binding:"omitempty,min=0,max=168"`
}

// UpdateResourceRequest represents the request to update a resource
type UpdateResourceRequest struct {
	Name                *string  `json:"name" binding:"omitempty,min=1,max=255"`
	Role                *string  `json:"role" binding:"omitempty,max=100"`
	WeeklyCapacityHours *float64 `json:"weeklyCapacityHours" binding:"omitempty,min=0,max=168"`
}

// CreateAssignmentRequest assigns a resource to a task. assignedHours left
// out means the task's estimated hours apply at read time.
type CreateAssignmentRequest struct {
	TaskID        uuid.UUID `json:"taskId" binding:"required"`
	ResourceID    uuid.UUID `json:"resourceId" binding:"required"`
	AssignedHours *float64  `json:"assignedHours" binding:"omitempty,min=0"`
}

// ResourceResponse represents the resource response
type ResourceResponse struct {
	ID                  uuid.UUID `json:"resourceId"`
	UserID              uuid.UUID `json:"userId"`
	Name                string    `json:"name"`
	Role                string    `json:"role"`
	WeeklyCapacityHours float64   `json:"weeklyCapacityHours"`
	CreatedAt           time.Time `json:"createdAt"`
}

// ToResourceResponse converts a domain resource to its response form
func ToResourceResponse(r *domain.Resource) *ResourceResponse {
	return &ResourceResponse{
		ID:                  r.ID,
		UserID:              r.UserID,
		Name:                r.Name,
		Role:                r.Role,
		WeeklyCapacityHours: r.WeeklyCapacityHours,
		CreatedAt:           r.CreatedAt,
	}
}

// AssignmentResponse represents the assignment response
type AssignmentResponse struct {
	ID            uuid.UUID `json:"assignmentId"`
	TaskID        uuid.UUID `json:"taskId"`
	ResourceID    uuid.UUID `json:"resourceId"`
	AssignedHours *float64  `json:"assignedHours,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ToAssignmentResponse converts a domain assignment to its response form
func ToAssignmentResponse(a *domain.Assignment) *AssignmentResponse {
	return &AssignmentResponse{
		ID:            a.ID,
		TaskID:        a.TaskID,
		ResourceID:    a.ResourceID,
		AssignedHours: a.AssignedHours,
		CreatedAt:     a.CreatedAt,
	}
}
