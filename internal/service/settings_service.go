package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"project-plan-api/internal/domain"
	"project-plan-api/internal/dto"
	"project-plan-api/internal/repository"
	"project-plan-api/internal/response"
)

// SettingsService defines the interface for user planning preferences
type SettingsService interface {
	GetSettings(ctx context.Context, userID uuid.UUID) (*dto.SettingsResponse, error)
	UpdateSettings(ctx context.Context, userID uuid.UUID, req *dto.UpdateSettingsRequest) (*dto.SettingsResponse, error)
}

// settingsServiceImpl is the implementation of SettingsService
type settingsServiceImpl struct {
	settingsRepo repository.SettingsRepository
	logger       *zap.Logger
}

// NewSettingsService creates a new instance of SettingsService
func NewSettingsService(settingsRepo repository.SettingsRepository, logger *zap.Logger) SettingsService {
	return &settingsServiceImpl{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

func defaultSettings(userID uuid.UUID) *domain.UserSettings {
	return &domain.UserSettings{
		UserID:              userID,
		WeeklyCapacityHours: 40,
		SprintLengthDays:    14,
		WorkHoursPerDay:     8,
	}
}

// GetSettings returns the user's settings, falling back to defaults for
// users who never saved any. The defaults are not persisted on read.
func (s *settingsServiceImpl) GetSettings(ctx context.Context, userID uuid.UUID) (*dto.SettingsResponse, error) {
	settings, err := s.settingsRepo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ToSettingsResponse(defaultSettings(userID)), nil
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch settings", err.Error())
	}
	return dto.ToSettingsResponse(settings), nil
}

func clampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// UpdateSettings applies the provided fields, clamping out-of-range values
// instead of rejecting them
func (s *settingsServiceImpl) UpdateSettings(ctx context.Context, userID uuid.UUID, req *dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	settings, err := s.settingsRepo.FindByUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch settings", err.Error())
		}
		settings = defaultSettings(userID)
	}

	if req.WeeklyCapacityHours != nil {
		settings.WeeklyCapacityHours = clampFloat(*req.WeeklyCapacityHours, domain.MinWeeklyCapacityHours, domain.MaxWeeklyCapacityHours)
	}
	if req.SprintLengthDays != nil {
		settings.SprintLengthDays = clampInt(*req.SprintLengthDays, domain.MinSprintLengthDays, domain.MaxSprintLengthDays)
	}
	if req.WorkHoursPerDay != nil {
		settings.WorkHoursPerDay = clampFloat(*req.WorkHoursPerDay, domain.MinWorkHoursPerDay, domain.MaxWorkHoursPerDay)
	}

	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to save settings", err.Error())
	}

	s.logger.Info("Settings updated", zap.String("user_id", userID.String()))
	return dto.ToSettingsResponse(settings), nil
}
