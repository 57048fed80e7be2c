package domain

import (
	"time"

	"github.com/google/uuid"
)

// SprintStatus represents the lifecycle status of a sprint
type SprintStatus string

const (
	SprintStatusPlanned   SprintStatus = "planned"
	SprintStatusActive    SprintStatus = "active"
	SprintStatusCompleted SprintStatus = "completed"
)

// Sprint is a time-boxed iteration within a project. Tasks reference a
// sprint by foreign key rather than containment.
type Sprint struct {
	BaseModel
	ProjectID uuid.UUID    `gorm:"type:uuid;not null;index:idx_sprints_project_id" json:"project_id"`
	Name      string       `gorm:"type:varchar(255);not null" json:"name"`
	Goal      string       `gorm:"type:text" json:"goal"`
	StartDate time.Time    `gorm:"type:timestamp;not null" json:"start_date"`
	EndDate   time.Time    `gorm:"type:timestamp;not null" json:"end_date"`
	Status    SprintStatus `gorm:"type:varchar(50);not null;default:'planned';index:idx_sprints_status" json:"status"`
	Position  int          `gorm:"not null;default:0" json:"position"`
	Project   Project      `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"project,omitempty"`
}

// TableName specifies the table name for Sprint
func (Sprint) TableName() string {
	return "sprints"
}
