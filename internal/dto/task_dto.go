package dto

import (
	"time"

	"github.com/google/uuid"

	"project-plan-api/internal/domain"
)

// CreateTaskRequest represents one task in a bulk-create request
type CreateTaskRequest struct {
	Title          string     `json:"title" binding:"required,min=1,max=255"`
	Description    string     `json:"description" binding:"max=2000"`
	Type           string     `json:"type" binding:"max=50"`
	Priority       int        `json:"priority" binding:"omitempty,min=1,max=4"`
	EstimatedHours float64    `json:"estimatedHours" binding:"omitempty,min=0"`
	SprintID       *uuid.UUID `json:"sprintId,omitempty"`
	ParentID       *uuid.UUID `json:"parentId,omitempty"`
}

// CreateTasksRequest bulk-inserts tasks into a project
type CreateTasksRequest struct {
	Tasks []CreateTaskRequest `json:"tasks" binding:"required,min=1,dive"`
}

// UpdateTaskRequest represents the request to update a task
type UpdateTaskRequest struct {
	Title          *string            `json:"title" binding:"omitempty,min=1,max=255"`
	Description    *string            `json:"description" binding:"omitempty,max=2000"`
	Status         *domain.TaskStatus `json:"status" binding:"omitempty,oneof=pending in_progress completed blocked"`
	Priority       *int               `json:"priority" binding:"omitempty,min=1,max=4"`
	EstimatedHours *float64           `json:"estimatedHours" binding:"omitempty,min=0"`
	ActualHours    *float64           `json:"actualHours" binding:"omitempty,min=0"`
	SprintID       *uuid.UUID         `json:"sprintId,omitempty"`
}

// TaskResponse represents the task response
type TaskResponse struct {
	ID             uuid.UUID         `json:"taskId"`
	ProjectID      uuid.UUID         `json:"projectId"`
	SprintID       *uuid.UUID        `json:"sprintId,omitempty"`
	ParentID       *uuid.UUID        `json:"parentId,omitempty"`
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	Type           string            `json:"type"`
	Status         domain.TaskStatus `json:"status"`
	Priority       int               `json:"priority"`
	EstimatedHours float64           `json:"estimatedHours"`
	ActualHours    float64           `json:"actualHours"`
	OrderIndex     int               `json:"orderIndex"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

// ToTaskResponse converts a domain task to its response form
func ToTaskResponse(t *domain.Task) *TaskResponse {
	return &TaskResponse{
		ID:             t.ID,
		ProjectID:      t.ProjectID,
		SprintID:       t.SprintID,
		ParentID:       t.ParentID,
		Title:          t.Title,
		Description:    t.Description,
		Type:           t.Type,
		Status:         t.Status,
		Priority:       t.Priority,
		EstimatedHours: t.EstimatedHours,
		ActualHours:    t.ActualHours,
		OrderIndex:     t.OrderIndex,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

// ToTaskResponses converts a slice of domain tasks
func ToTaskResponses(tasks []*domain.Task) []*TaskResponse {
	responses := make([]*TaskResponse, len(tasks))
	for i, t := range tasks {
		responses[i] = ToTaskResponse(t)
	}
	return responses
}
