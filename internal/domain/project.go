package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProjectStatus represents the lifecycle status of a project
type ProjectStatus string

const (
	ProjectStatusPlanning   ProjectStatus = "planning"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusCompleted  ProjectStatus = "completed"
	ProjectStatusOnHold     ProjectStatus = "on_hold"
)

// ProjectHealth represents the overall health indicator of a project
type ProjectHealth string

const (
	ProjectHealthHealthy  ProjectHealth = "healthy"
	ProjectHealthAtRisk   ProjectHealth = "at_risk"
	ProjectHealthCritical ProjectHealth = "critical"
)

// Project is the top-level unit of work. It owns tasks, sprints, baselines
// and change requests; resources are attached through assignments.
type Project struct {
	BaseModel
	OwnerID     uuid.UUID     `gorm:"type:uuid;not null;index:idx_projects_owner_id" json:"owner_id"`
	Name        string        `gorm:"type:varchar(255);not null" json:"name"`
	Description string        `gorm:"type:text" json:"description"`
	Status      ProjectStatus `gorm:"type:varchar(50);not null;default:'planning';index:idx_projects_status" json:"status"`
	Health      ProjectHealth `gorm:"type:varchar(50);not null;default:'healthy'" json:"health"`
	Deadline    *time.Time    `gorm:"type:timestamp" json:"deadline,omitempty"`
	Progress    int           `gorm:"not null;default:0" json:"progress"`
	Tasks       []Task        `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"tasks,omitempty"`
	Sprints     []Sprint      `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"sprints,omitempty"`
}

// TableName specifies the table name for Project
func (Project) TableName() string {
	return "projects"
}
