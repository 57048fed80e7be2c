package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"project-plan-api/internal/domain"
	"project-plan-api/internal/workload"
)

// CreateChangeRequestRequest represents the request to open a change request
type CreateChangeRequestRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"max=4000"`
	ChangeType  string `json:"changeType" binding:"max=50"`
	Priority    string `json:"priority" binding:"omitempty,oneof=critical high medium low"`
	Area        string `json:"area" binding:"max=100"`
}

// RejectChangeRequestRequest carries the optional rejection reason
type RejectChangeRequestRequest struct {
	Reason string `json:"reason" binding:"max=1000"`
}

// ChangeRequestResponse represents the change request response
type ChangeRequestResponse struct {
	ID          uuid.UUID                  `json:"changeRequestId"`
	ProjectID   uuid.UUID                  `json:"projectId"`
	Title       string                     `json:"title"`
	Description string                     `json:"description"`
	ChangeType  string                     `json:"changeType"`
	Priority    string                     `json:"priority"`
	Area        string                     `json:"area"`
	Status      domain.ChangeRequestStatus `json:"status"`
	CreatedAt   time.Time                  `json:"createdAt"`
	UpdatedAt   time.Time                  `json:"updatedAt"`
}

// ToChangeRequestResponse converts a domain change request
func ToChangeRequestResponse(r *domain.ChangeRequest) *ChangeRequestResponse {
	return &ChangeRequestResponse{
		ID:          r.ID,
		ProjectID:   r.ProjectID,
		Title:       r.Title,
		Description: r.Description,
		ChangeType:  r.ChangeType,
		Priority:    r.Priority,
		Area:        r.Area,
		Status:      r.Status,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// ProposedTask is one task the analysis proposes to add
type ProposedTask struct {
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	EstimatedHours float64 `json:"estimated_hours"`
	Priority       string  `json:"priority"`
}

// ProposedTaskUpdate is a suggested edit to an existing task. Suggested
// updates are recorded for review but never applied automatically.
type ProposedTaskUpdate struct {
	Title  string `json:"title"`
	Change string `json:"change"`
}

// AnalysisResult is the structured estimate the completion provider must
// return for a change request analysis.
type AnalysisResult struct {
	EffortHours        float64              `json:"effort_hours"`
	ReworkHours        float64              `json:"rework_hours"`
	DeadlineImpactDays int                  `json:"deadline_impact_days"`
	Summary            string               `json:"summary"`
	NewTasks           []ProposedTask       `json:"new_tasks"`
	UpdatedTasks       []ProposedTaskUpdate `json:"updated_tasks"`
	Risks              []string             `json:"risks"`
}

// Validate checks the provider's reply against the documented shape.
// Violations are an upstream contract problem, not a crash deeper in the
// handler.
func (a *AnalysisResult) Validate() error {
	if a.EffortHours < 0 {
		return fmt.Errorf("effort_hours must not be negative, got %v", a.EffortHours)
	}
	if a.ReworkHours < 0 {
		return fmt.Errorf("rework_hours must not be negative, got %v", a.ReworkHours)
	}
	if a.Summary == "" {
		return fmt.Errorf("summary is required")
	}
	for i, t := range a.NewTasks {
		if t.Title == "" {
			return fmt.Errorf("new_tasks[%d].title is required", i)
		}
		if t.EstimatedHours < 0 {
			return fmt.Errorf("new_tasks[%d].estimated_hours must not be negative", i)
		}
	}
	return nil
}

// AnalysisResponse represents the stored analysis plus the projected
// baseline comparison including the proposed change.
type AnalysisResponse struct {
	ID                 uuid.UUID                    `json:"analysisId"`
	ChangeRequestID    uuid.UUID                    `json:"changeRequestId"`
	EffortHours        float64                      `json:"effortHours"`
	ReworkHours        float64                      `json:"reworkHours"`
	DeadlineImpactDays int                          `json:"deadlineImpactDays"`
	Summary            string                       `json:"summary"`
	NewTasks           []ProposedTask               `json:"newTasks"`
	UpdatedTasks       []ProposedTaskUpdate         `json:"updatedTasks"`
	Risks              []string                     `json:"risks"`
	Projection         *workload.BaselineComparison `json:"projection,omitempty"`
	CreatedAt          time.Time                    `json:"createdAt"`
}

// ChangeHistoryResponse represents one audit log row
type ChangeHistoryResponse struct {
	ID              uuid.UUID  `json:"historyId"`
	ProjectID       uuid.UUID  `json:"projectId"`
	ChangeRequestID *uuid.UUID `json:"changeRequestId,omitempty"`
	Action          string     `json:"action"`
	Description     string     `json:"description"`
	HoursDelta      float64    `json:"hoursDelta"`
	TasksDelta      int        `json:"tasksDelta"`
	DaysDelta       int        `json:"daysDelta"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// ToChangeHistoryResponse converts a domain history entry
func ToChangeHistoryResponse(h *domain.ChangeHistory) *ChangeHistoryResponse {
	return &ChangeHistoryResponse{
		ID:              h.ID,
		ProjectID:       h.ProjectID,
		ChangeRequestID: h.ChangeRequestID,
		Action:          h.Action,
		Description:     h.Description,
		HoursDelta:      h.HoursDelta,
		TasksDelta:      h.TasksDelta,
		DaysDelta:       h.DaysDelta,
		CreatedAt:       h.CreatedAt,
	}
}

// ApproveChangeResponse summarizes what an approval materialized
type ApproveChangeResponse struct {
	ChangeRequest     *ChangeRequestResponse `json:"changeRequest"`
	TasksCreated      int                    `json:"tasksCreated"`
	UpdatesSuggested  int                    `json:"updatesSuggested"`
	CreatedTaskTitles []string               `json:"createdTaskTitles"`
}
