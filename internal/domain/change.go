package domain

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ChangeRequestStatus represents the lifecycle status of a change request.
// "implemented" is part of the vocabulary but no transition currently
// produces it; see DESIGN.md.
type ChangeRequestStatus string

const (
	ChangeStatusOpen        ChangeRequestStatus = "open"
	ChangeStatusAnalyzed    ChangeRequestStatus = "analyzed"
	ChangeStatusApproved    ChangeRequestStatus = "approved"
	ChangeStatusRejected    ChangeRequestStatus = "rejected"
	ChangeStatusImplemented ChangeRequestStatus = "implemented"
)

// ChangeRequest is a proposed scope change tracked through an
// open -> analyzed -> approved/rejected lifecycle.
type ChangeRequest struct {
	BaseModel
	ProjectID   uuid.UUID           `gorm:"type:uuid;not null;index:idx_change_requests_project_id" json:"project_id"`
	Title       string              `gorm:"type:varchar(255);not null" json:"title"`
	Description string              `gorm:"type:text" json:"description"`
	ChangeType  string              `gorm:"type:varchar(50)" json:"change_type"`
	Priority    string              `gorm:"type:varchar(50)" json:"priority"`
	Area        string              `gorm:"type:varchar(100)" json:"area"`
	Status      ChangeRequestStatus `gorm:"type:varchar(50);not null;default:'open';index:idx_change_requests_status" json:"status"`
	Project     Project             `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"project,omitempty"`
}

// TableName specifies the table name for ChangeRequest
func (ChangeRequest) TableName() string {
	return "change_requests"
}

// ChangeAnalysis is the structured impact estimate produced by the external
// completion call for a change request. At most one per request.
type ChangeAnalysis struct {
	BaseModel
	ChangeRequestID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uq_change_analyses_request" json:"change_request_id"`
	EffortHours        float64        `gorm:"not null;default:0" json:"effort_hours"`
	ReworkHours        float64        `gorm:"not null;default:0" json:"rework_hours"`
	DeadlineImpactDays int            `gorm:"not null;default:0" json:"deadline_impact_days"`
	Summary            string         `gorm:"type:text" json:"summary"`
	NewTasks           datatypes.JSON `gorm:"type:jsonb" json:"new_tasks,omitempty"`
	UpdatedTasks       datatypes.JSON `gorm:"type:jsonb" json:"updated_tasks,omitempty"`
	Risks              datatypes.JSON `gorm:"type:jsonb" json:"risks,omitempty"`
	ChangeRequest      ChangeRequest  `gorm:"foreignKey:ChangeRequestID;constraint:OnDelete:CASCADE" json:"change_request,omitempty"`
}

// TableName specifies the table name for ChangeAnalysis
func (ChangeAnalysis) TableName() string {
	return "change_analyses"
}

// ChangeHistory is an append-only audit record. Rows are never updated or
// deleted; display order is creation time descending.
type ChangeHistory struct {
	BaseModel
	ProjectID       uuid.UUID      `gorm:"type:uuid;not null;index:idx_change_history_project_id" json:"project_id"`
	ChangeRequestID *uuid.UUID     `gorm:"type:uuid;index:idx_change_history_request_id" json:"change_request_id,omitempty"`
	Action          string         `gorm:"type:varchar(100);not null" json:"action"`
	Description     string         `gorm:"type:text" json:"description"`
	HoursDelta      float64        `gorm:"not null;default:0" json:"hours_delta"`
	TasksDelta      int            `gorm:"not null;default:0" json:"tasks_delta"`
	DaysDelta       int            `gorm:"not null;default:0" json:"days_delta"`
	Metadata        datatypes.JSON `gorm:"type:jsonb" json:"metadata,omitempty"`
}

// TableName specifies the table name for ChangeHistory
func (ChangeHistory) TableName() string {
	return "change_history"
}
