package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"project-plan-api/internal/domain"
)

// ErrInvalidTransition is returned when a guarded status update matches no
// row, meaning the request was not in the required state.
var ErrInvalidTransition = errors.New("change request is not in the required state for this transition")

// ChangeRepository defines the interface for change request data access.
// The transition methods each run as a single transaction: the guarded
// status update, any row inserts and the history append all land together
// or not at all.
type ChangeRepository interface {
	CreateRequest(ctx context.Context, request *domain.ChangeRequest, history *domain.ChangeHistory) error
	FindRequestByID(ctx context.Context, id uuid.UUID) (*domain.ChangeRequest, error)
	FindRequestsByProject(ctx context.Context, projectID uuid.UUID) ([]*domain.ChangeRequest, error)
	FindAnalysisByRequest(ctx context.Context, requestID uuid.UUID) (*domain.ChangeAnalysis, error)
	AnalyzeTransition(ctx context.Context, requestID uuid.UUID, analysis *domain.ChangeAnalysis, history *domain.ChangeHistory) error
	ApproveTransition(ctx context.Context, requestID uuid.UUID, tasks []*domain.Task, history *domain.ChangeHistory) error
	RejectTransition(ctx context.Context, requestID uuid.UUID, history *domain.ChangeHistory) error
	FindHistoryByProject(ctx context.Context, projectID uuid.UUID) ([]*domain.ChangeHistory, error)
	CountHistoryByProject(ctx context.Context, projectID uuid.UUID) (int64, error)
}

// changeRepositoryImpl is the GORM implementation of ChangeRepository
type changeRepositoryImpl struct {
	db *gorm.DB
}

// NewChangeRepository creates a new instance of ChangeRepository
func NewChangeRepository(db *gorm.DB) ChangeRepository {
	return &changeRepositoryImpl{db: db}
}

// CreateRequest inserts a new change request together with its "created"
// history entry.
func (r *changeRepositoryImpl) CreateRequest(ctx context.Context, request *domain.ChangeRequest, history *domain.ChangeHistory) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(request).Error; err != nil {
			return err
		}
		history.ChangeRequestID = &request.ID
		return tx.Create(history).Error
	})
}

// FindRequestByID finds a change request by its ID
func (r *changeRepositoryImpl) FindRequestByID(ctx context.Context, id uuid.UUID) (*domain.ChangeRequest, error) {
	var request domain.ChangeRequest
	if err := r.db.WithContext(ctx).First(&request, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

// FindRequestsByProject lists change requests of a project, newest first
func (r *changeRepositoryImpl) FindRequestsByProject(ctx context.Context, projectID uuid.UUID) ([]*domain.ChangeRequest, error) {
	var requests []*domain.ChangeRequest
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// FindAnalysisByRequest finds the analysis attached to a change request
func (r *changeRepositoryImpl) FindAnalysisByRequest(ctx context.Context, requestID uuid.UUID) (*domain.ChangeAnalysis, error) {
	var analysis domain.ChangeAnalysis
	if err := r.db.WithContext(ctx).
		Where("change_request_id = ?", requestID).
		First(&analysis).Error; err != nil {
		return nil, err
	}
	return &analysis, nil
}

// updateStatusIf flips a request's status only when it currently has the
// expected one. The affected-row count is the guard: 0 rows means some
// other caller already moved the request on.
func updateStatusIf(tx *gorm.DB, requestID uuid.UUID, from, to domain.ChangeRequestStatus) error {
	result := tx.Model(&domain.ChangeRequest{}).
		Where("id = ? AND status = ?", requestID, from).
		Update("status", to)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInvalidTransition
	}
	return nil
}

// AnalyzeTransition persists the analysis, flips open -> analyzed and
// appends the history entry in one transaction. If any step fails the
// request stays open and no analysis row survives.
func (r *changeRepositoryImpl) AnalyzeTransition(ctx context.Context, requestID uuid.UUID, analysis *domain.ChangeAnalysis, history *domain.ChangeHistory) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(analysis).Error; err != nil {
			return err
		}
		if err := updateStatusIf(tx, requestID, domain.ChangeStatusOpen, domain.ChangeStatusAnalyzed); err != nil {
			return err
		}
		history.ChangeRequestID = &requestID
		return tx.Create(history).Error
	})
}

// ApproveTransition flips analyzed -> approved, inserts the proposed tasks
// and appends the history entry in one transaction. Concurrent approvals
// cannot both pass: the conditional update is the guard.
func (r *changeRepositoryImpl) ApproveTransition(ctx context.Context, requestID uuid.UUID, tasks []*domain.Task, history *domain.ChangeHistory) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := updateStatusIf(tx, requestID, domain.ChangeStatusAnalyzed, domain.ChangeStatusApproved); err != nil {
			return err
		}
		if len(tasks) > 0 {
			if err := tx.Create(tasks).Error; err != nil {
				return err
			}
		}
		history.ChangeRequestID = &requestID
		return tx.Create(history).Error
	})
}

// RejectTransition flips any status to rejected and appends the history
// entry. The transition is deliberately unguarded by prior status; no
// compensating action is taken on tasks an earlier approval created.
func (r *changeRepositoryImpl) RejectTransition(ctx context.Context, requestID uuid.UUID, history *domain.ChangeHistory) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&domain.ChangeRequest{}).
			Where("id = ?", requestID).
			Update("status", domain.ChangeStatusRejected)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		history.ChangeRequestID = &requestID
		return tx.Create(history).Error
	})
}

// FindHistoryByProject lists history entries for a project, newest first
func (r *changeRepositoryImpl) FindHistoryByProject(ctx context.Context, projectID uuid.UUID) ([]*domain.ChangeHistory, error) {
	var entries []*domain.ChangeHistory
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// CountHistoryByProject returns the number of history entries for a project
func (r *changeRepositoryImpl) CountHistoryByProject(ctx context.Context, projectID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.ChangeHistory{}).
		Where("project_id = ?", projectID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
