package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Baseline is an immutable snapshot of a project's totals taken on demand.
// Baselines are never updated, only superseded; the most recently created
// one is the comparison point for drift detection.
type Baseline struct {
	BaseModel
	ProjectID           uuid.UUID      `gorm:"type:uuid;not null;index:idx_baselines_project_id" json:"project_id"`
	Name                string         `gorm:"type:varchar(255);not null" json:"name"`
	TotalHours          float64        `gorm:"not null;default:0" json:"total_hours"`
	TaskCount           int            `gorm:"not null;default:0" json:"task_count"`
	SprintCount         int            `gorm:"not null;default:0" json:"sprint_count"`
	PlannedDeliveryDate *time.Time     `gorm:"type:timestamp" json:"planned_delivery_date,omitempty"`
	RiskLevel           string         `gorm:"type:varchar(50)" json:"risk_level"`
	TaskSnapshot        datatypes.JSON `gorm:"type:jsonb" json:"task_snapshot,omitempty"`
	SprintSnapshot      datatypes.JSON `gorm:"type:jsonb" json:"sprint_snapshot,omitempty"`
	Project             Project        `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"project,omitempty"`
}

// TableName specifies the table name for Baseline
func (Baseline) TableName() string {
	return "baselines"
}
