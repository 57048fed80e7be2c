package domain

import (
	"github.com/google/uuid"
)

// Resource is a person available for assignment. Resources belong to a user,
// not to a project; projects reach them through assignments.
type Resource struct {
	BaseModel
	UserID              uuid.UUID `gorm:"type:uuid;not null;index:idx_resources_user_id" json:"user_id"`
	Name                string    `gorm:"type:varchar(255);not null" json:"name"`
	Role                string    `gorm:"type:varchar(100)" json:"role"`
	WeeklyCapacityHours float64   `gorm:"not null;default:40" json:"weekly_capacity_hours"`
}

// TableName specifies the table name for Resource
func (Resource) TableName() string {
	return "resources"
}
