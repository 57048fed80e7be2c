package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"project-plan-api/internal/domain"
)

// BaselineRepository defines the interface for baseline data access.
// Baselines are write-once; there is no update operation.
type BaselineRepository interface {
	Create(ctx context.Context, baseline *domain.Baseline) error
	FindLatestByProject(ctx context.Context, projectID uuid.UUID) (*domain.Baseline, error)
	FindByProject(ctx context.Context, projectID uuid.UUID) ([]*domain.Baseline, error)
}

// baselineRepositoryImpl is the GORM implementation of BaselineRepository
type baselineRepositoryImpl struct {
	db *gorm.DB
}

// NewBaselineRepository creates a new instance of BaselineRepository
func NewBaselineRepository(db *gorm.DB) BaselineRepository {
	return &baselineRepositoryImpl{db: db}
}

// Create creates a new baseline snapshot
func (r *baselineRepositoryImpl) Create(ctx context.Context, baseline *domain.Baseline) error {
	return r.db.WithContext(ctx).Create(baseline).Error
}

// FindLatestByProject returns the most recently created baseline for a
// project. gorm.ErrRecordNotFound means "no baseline yet".
func (r *baselineRepositoryImpl) FindLatestByProject(ctx context.Context, projectID uuid.UUID) (*domain.Baseline, error) {
	var baseline domain.Baseline
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		First(&baseline).Error; err != nil {
		return nil, err
	}
	return &baseline, nil
}

// FindByProject lists baselines for a project, newest first
func (r *baselineRepositoryImpl) FindByProject(ctx context.Context, projectID uuid.UUID) ([]*domain.Baseline, error) {
	var baselines []*domain.Baseline
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&baselines).Error; err != nil {
		return nil, err
	}
	return baselines, nil
}
