package dto

import (
	"github.com/google/uuid"

	"project-plan-api/internal/prompt"
)

// BreakdownRequest asks the AI to break requirements into tasks
type BreakdownRequest struct {
	ProjectID    uuid.UUID `json:"projectId" binding:"required"`
	Requirements string    `json:"requirements" binding:"required,min=1,max=8000"`
}

// BreakdownResponse is the parsed AI task breakdown
type BreakdownResponse struct {
	Tasks []ProposedTask `json:"tasks"`
}

// SprintPlanRequest asks the AI to distribute tasks across sprints
type SprintPlanRequest struct {
	ProjectID uuid.UUID `json:"projectId" binding:"required"`
}

// ProposedSprint is one sprint in an AI sprint plan
type ProposedSprint struct {
	Name       string   `json:"name"`
	Goal       string   `json:"goal"`
	TaskTitles []string `json:"task_titles"`
}

// SprintPlanResponse is the parsed AI sprint plan
type SprintPlanResponse struct {
	Sprints []ProposedSprint `json:"sprints"`
}

// ReportRequest asks the AI for a narrative status report
type ReportRequest struct {
	ProjectID uuid.UUID `json:"projectId" binding:"required"`
}

// ReportResponse carries the free-text report
type ReportResponse struct {
	Report string `json:"report"`
}

// AdvisorRequest is a conversational question about a project
type AdvisorRequest struct {
	ProjectID    uuid.UUID                    `json:"projectId" binding:"required"`
	Conversation []prompt.ConversationMessage `json:"conversation" binding:"required,min=1,dive"`
}

// AdvisorResponse carries the advisor's reply
type AdvisorResponse struct {
	Reply string `json:"reply"`
}

// OptimizeWorkloadRequest asks the AI for rebalancing suggestions
type OptimizeWorkloadRequest struct {
	ProjectID uuid.UUID `json:"projectId" binding:"required"`
}

// WorkloadSuggestion is one rebalancing suggestion
type WorkloadSuggestion struct {
	ResourceName string `json:"resource_name"`
	Action       string `json:"action"`
	Rationale    string `json:"rationale"`
}

// OptimizeWorkloadResponse is the parsed AI suggestion list
type OptimizeWorkloadResponse struct {
	Suggestions []WorkloadSuggestion `json:"suggestions"`
}
