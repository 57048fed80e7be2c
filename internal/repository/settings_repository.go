package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"project-plan-api/internal/domain"
)

// SettingsRepository defines the interface for user settings data access
type SettingsRepository interface {
	FindByUser(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error)
	Save(ctx context.Context, settings *domain.UserSettings) error
}

// settingsRepositoryImpl is the GORM implementation of SettingsRepository
type settingsRepositoryImpl struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new instance of SettingsRepository
func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepositoryImpl{db: db}
}

// FindByUser finds the settings row for a user
func (r *settingsRepositoryImpl) FindByUser(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error) {
	var settings domain.UserSettings
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

// Save creates or updates a settings row
func (r *settingsRepositoryImpl) Save(ctx context.Context, settings *domain.UserSettings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}
