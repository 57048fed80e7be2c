package domain

import "github.com/google/uuid"

// Settings bounds enforced on writes; see SettingsService
const (
	MinWeeklyCapacityHours = 1
	MaxWeeklyCapacityHours = 80
	MinSprintLengthDays    = 1
	MaxSprintLengthDays    = 28
	MinWorkHoursPerDay     = 1
	MaxWorkHoursPerDay     = 24
)

// UserSettings holds per-user planning preferences
type UserSettings struct {
	BaseModel
	UserID              uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_user_settings_user" json:"user_id"`
	WeeklyCapacityHours float64   `gorm:"not null;default:40" json:"weekly_capacity_hours"`
	SprintLengthDays    int       `gorm:"not null;default:14" json:"sprint_length_days"`
	WorkHoursPerDay     float64   `gorm:"not null;default:8" json:"work_hours_per_day"`
}

// TableName specifies the table name for UserSettings
func (UserSettings) TableName() string {
	return "user_settings"
}
