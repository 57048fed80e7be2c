package dto

import (
	"github.com/google/uuid"

	"project-plan-api/internal/domain"
)

// UpdateSettingsRequest updates a fixed whitelist of preference fields.
// Values outside the documented ranges are clamped, not rejected.
type UpdateSettingsRequest struct {
	WeeklyCapacityHours *float64 `json:"weeklyCapacityHours,omitempty"`
	SprintLengthDays    *int     `json:"sprintLengthDays,omitempty"`
	WorkHoursPerDay     *float64 `json:"workHoursPerDay,omitempty"`
}

// SettingsResponse represents the user settings response
type SettingsResponse struct {
	UserID              uuid.UUID `json:"userId"`
	WeeklyCapacityHours float64   `json:"weeklyCapacityHours"`
	SprintLengthDays    int       `json:"sprintLengthDays"`
	WorkHoursPerDay     float64   `json:"workHoursPerDay"`
}

// ToSettingsResponse converts domain settings to the response form
func ToSettingsResponse(s *domain.UserSettings) *SettingsResponse {
	return &SettingsResponse{
		UserID:              s.UserID,
		WeeklyCapacityHours: s.WeeklyCapacityHours,
		SprintLengthDays:    s.SprintLengthDays,
		WorkHoursPerDay:     s.WorkHoursPerDay,
	}
}
