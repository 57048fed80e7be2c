package domain

import (
	"time"

	"github.com/google/uuid"
)

// RiskSeverity ranks risks for display, highest first
type RiskSeverity string

const (
	RiskSeverityCritical RiskSeverity = "critical"
	RiskSeverityHigh     RiskSeverity = "high"
	RiskSeverityMedium   RiskSeverity = "medium"
	RiskSeverityLow      RiskSeverity = "low"
)

// SeverityRank maps a severity to its sort rank (lower sorts first).
// Unknown severities rank last.
func (s RiskSeverity) SeverityRank() int {
	switch s {
	case RiskSeverityCritical:
		return 0
	case RiskSeverityHigh:
		return 1
	case RiskSeverityMedium:
		return 2
	case RiskSeverityLow:
		return 3
	default:
		return 4
	}
}

// Risk is a per-project governance record
type Risk struct {
	BaseModel
	ProjectID   uuid.UUID    `gorm:"type:uuid;not null;index:idx_risks_project_id" json:"project_id"`
	Title       string       `gorm:"type:varchar(255);not null" json:"title"`
	Description string       `gorm:"type:text" json:"description"`
	Severity    RiskSeverity `gorm:"type:varchar(50);not null;default:'medium'" json:"severity"`
	Status      string       `gorm:"type:varchar(50);not null;default:'open'" json:"status"`
	Project     Project      `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"project,omitempty"`
}

// TableName specifies the table name for Risk
func (Risk) TableName() string {
	return "risks"
}

// Decision records a project decision
type Decision struct {
	BaseModel
	ProjectID   uuid.UUID  `gorm:"type:uuid;not null;index:idx_decisions_project_id" json:"project_id"`
	Title       string     `gorm:"type:varchar(255);not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Status      string     `gorm:"type:varchar(50);not null;default:'proposed'" json:"status"`
	DecidedAt   *time.Time `gorm:"type:timestamp" json:"decided_at,omitempty"`
	Project     Project    `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"project,omitempty"`
}

// TableName specifies the table name for Decision
func (Decision) TableName() string {
	return "decisions"
}

// Milestone marks a dated project checkpoint
type Milestone struct {
	BaseModel
	ProjectID uuid.UUID  `gorm:"type:uuid;not null;index:idx_milestones_project_id" json:"project_id"`
	Name      string     `gorm:"type:varchar(255);not null" json:"name"`
	DueDate   *time.Time `gorm:"type:timestamp" json:"due_date,omitempty"`
	Status    string     `gorm:"type:varchar(50);not null;default:'upcoming'" json:"status"`
	Project   Project    `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"project,omitempty"`
}

// TableName specifies the table name for Milestone
func (Milestone) TableName() string {
	return "milestones"
}
