package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"project-plan-api/internal/domain"
)

// SprintRepository defines the interface for sprint data access
type SprintRepository interface {
	Create(ctx context.Context, sprint *domain.Sprint) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Sprint, error)
	FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]*domain.Sprint, error)
	Update(ctx context.Context, sprint *domain.Sprint) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// sprintRepositoryImpl is the GORM implementation of SprintRepository
type sprintRepositoryImpl struct {
	db *gorm.DB
}

// NewSprintRepository creates a new instance of SprintRepository
func NewSprintRepository(db *gorm.DB) SprintRepository {
	return &sprintRepositoryImpl{db: db}
}

// Create creates a new sprint
func (r *sprintRepositoryImpl) Create(ctx context.Context, sprint *domain.Sprint) error {
	return r.db.WithContext(ctx).Create(sprint).Error
}

// FindByID finds a sprint by its ID
func (r *sprintRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Sprint, error) {
	var sprint domain.Sprint
	if err := r.db.WithContext(ctx).First(&sprint, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &sprint, nil
}

// FindByProjectID lists all sprints of a project ordered by position
func (r *sprintRepositoryImpl) FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]*domain.Sprint, error) {
	var sprints []*domain.Sprint
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("position ASC").
		Find(&sprints).Error; err != nil {
		return nil, err
	}
	return sprints, nil
}

// Update saves sprint changes
func (r *sprintRepositoryImpl) Update(ctx context.Context, sprint *domain.Sprint) error {
	return r.db.WithContext(ctx).Save(sprint).Error
}

// Delete soft deletes a sprint by ID
func (r *sprintRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Sprint{}, "id = ?", id).Error
}
