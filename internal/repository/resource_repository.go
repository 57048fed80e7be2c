package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"project-plan-api/internal/domain"
)

// ResourceRepository defines the interface for resource data access
type ResourceRepository interface {
	Create(ctx context.Context, resource *domain.Resource) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Resource, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Resource, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Resource, error)
	Update(ctx context.Context, resource *domain.Resource) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// resourceRepositoryImpl is the GORM implementation of ResourceRepository
type resourceRepositoryImpl struct {
	db *gorm.DB
}

// NewResourceRepository creates a new instance of ResourceRepository
func NewResourceRepository(db *gorm.DB) ResourceRepository {
	return &resourceRepositoryImpl{db: db}
}

// Create creates a new resource
func (r *resourceRepositoryImpl) Create(ctx context.Context, resource *domain.Resource) error {
	return r.db.WithContext(ctx).Create(resource).Error
}

// FindByID finds a resource by its ID
func (r *resourceRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Resource, error) {
	var resource domain.Resource
	if err := r.db.WithContext(ctx).First(&resource, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &resource, nil
}

// FindByUser lists all resources owned by a user
func (r *resourceRepositoryImpl) FindByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Resource, error) {
	var resources []*domain.Resource
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&resources).Error; err != nil {
		return nil, err
	}
	return resources, nil
}

// FindByIDs finds resources by their IDs
func (r *resourceRepositoryImpl) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Resource, error) {
	if len(ids) == 0 {
		return []*domain.Resource{}, nil
	}
	var resources []*domain.Resource
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&resources).Error; err != nil {
		return nil, err
	}
	return resources, nil
}

// Update saves resource changes
func (r *resourceRepositoryImpl) Update(ctx context.Context, resource *domain.Resource) error {
	return r.db.WithContext(ctx).Save(resource).Error
}

// Delete soft deletes a resource by ID
func (r *resourceRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Resource{}, "id = ?", id).Error
}

// AssignmentRepository defines the interface for assignment data access
type AssignmentRepository interface {
	Create(ctx context.Context, assignment *domain.Assignment) error
	FindByTaskIDs(ctx context.Context, taskIDs []uuid.UUID) ([]*domain.Assignment, error)
	FindByResourceID(ctx context.Context, resourceID uuid.UUID) ([]*domain.Assignment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// assignmentRepositoryImpl is the GORM implementation of AssignmentRepository
type assignmentRepositoryImpl struct {
	db *gorm.DB
}

// NewAssignmentRepository creates a new instance of AssignmentRepository
func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &assignmentRepositoryImpl{db: db}
}

// Create creates a new assignment
func (r *assignmentRepositoryImpl) Create(ctx context.Context, assignment *domain.Assignment) error {
	return r.db.WithContext(ctx).Create(assignment).Error
}

// FindByTaskIDs lists assignments for a set of tasks
func (r *assignmentRepositoryImpl) FindByTaskIDs(ctx context.Context, taskIDs []uuid.UUID) ([]*domain.Assignment, error) {
	if len(taskIDs) == 0 {
		return []*domain.Assignment{}, nil
	}
	var assignments []*domain.Assignment
	if err := r.db.WithContext(ctx).
		Where("task_id IN ?", taskIDs).
		Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

// FindByResourceID lists assignments of a resource
func (r *assignmentRepositoryImpl) FindByResourceID(ctx context.Context, resourceID uuid.UUID) ([]*domain.Assignment, error) {
	var assignments []*domain.Assignment
	if err := r.db.WithContext(ctx).
		Where("resource_id = ?", resourceID).
		Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

// Delete removes an assignment by ID
func (r *assignmentRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Assignment{}, "id = ?", id).Error
}
