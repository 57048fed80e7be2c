package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"project-plan-api/internal/domain"
	"project-plan-api/internal/dto"
)

func newTaskService(taskRepo *MockTaskRepository, projectRepo *MockProjectRepository, cache *MockWorkloadCache) TaskService {
	if taskRepo == nil {
		taskRepo = &MockTaskRepository{}
	}
	return NewTaskService(taskRepo, projectRepo, cache, nil, zap.NewNop())
}

func invalidationRecorder(invalidated *[]uuid.UUID) *MockWorkloadCache {
	return &MockWorkloadCache{
		InvalidateFunc: func(ctx context.Context, projectID uuid.UUID) {
			*invalidated = append(*invalidated, projectID)
		},
	}
}

func TestCreateTasks_DropsCachedWorkload(t *testing.T) {
	projectID := uuid.New()
	ownerID := uuid.New()

	var invalidated []uuid.UUID
	svc := newTaskService(nil, ownedProject(projectID, ownerID), invalidationRecorder(&invalidated))

	_, err := svc.CreateTasks(context.Background(), projectID, ownerID, &dto.CreateTasksRequest{
		Tasks: []dto.CreateTaskRequest{{Title: "Design schema", EstimatedHours: 8}},
	})

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{projectID}, invalidated)
}

func TestCreateTasks_FailedWriteKeepsCache(t *testing.T) {
	projectID := uuid.New()
	ownerID := uuid.New()

	taskRepo := &MockTaskRepository{
		CreateBatchFunc: func(ctx context.Context, tasks []*domain.Task) error {
			return errors.New("insert failed")
		},
	}

	var invalidated []uuid.UUID
	svc := newTaskService(taskRepo, ownedProject(projectID, ownerID), invalidationRecorder(&invalidated))

	_, err := svc.CreateTasks(context.Background(), projectID, ownerID, &dto.CreateTasksRequest{
		Tasks: []dto.CreateTaskRequest{{Title: "Design schema"}},
	})

	require.Error(t, err)
	assert.Empty(t, invalidated)
}

func TestUpdateTask_DropsCachedWorkload(t *testing.T) {
	projectID := uuid.New()
	ownerID := uuid.New()
	taskID := uuid.New()

	taskRepo := &MockTaskRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
			return &domain.Task{
				BaseModel: domain.BaseModel{ID: taskID},
				ProjectID: projectID,
				Title:     "Design schema",
			}, nil
		},
	}

	var invalidated []uuid.UUID
	svc := newTaskService(taskRepo, ownedProject(projectID, ownerID), invalidationRecorder(&invalidated))

	hours := 12.0
	_, err := svc.UpdateTask(context.Background(), projectID, taskID, ownerID, &dto.UpdateTaskRequest{
		EstimatedHours: &hours,
	})

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{projectID}, invalidated)
}

func TestDeleteTask_DropsCachedWorkload(t *testing.T) {
	projectID := uuid.New()
	ownerID := uuid.New()
	taskID := uuid.New()

	taskRepo := &MockTaskRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
			return &domain.Task{
				BaseModel: domain.BaseModel{ID: taskID},
				ProjectID: projectID,
			}, nil
		},
	}

	var invalidated []uuid.UUID
	svc := newTaskService(taskRepo, ownedProject(projectID, ownerID), invalidationRecorder(&invalidated))

	err := svc.DeleteTask(context.Background(), projectID, taskID, ownerID)

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{projectID}, invalidated)
}

func TestListTasks_LeavesCacheUntouched(t *testing.T) {
	projectID := uuid.New()
	ownerID := uuid.New()

	var invalidated []uuid.UUID
	svc := newTaskService(nil, ownedProject(projectID, ownerID), invalidationRecorder(&invalidated))

	_, err := svc.ListTasks(context.Background(), projectID, ownerID)

	require.NoError(t, err)
	assert.Empty(t, invalidated)
}
