package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"project-plan-api/internal/workload"
)

func TestWorkloadCache_NilClientIsNoOp(t *testing.T) {
	cache := NewWorkloadCache(nil, zap.NewNop())
	projectID := uuid.New()

	team, ok := cache.Get(context.Background(), projectID)
	assert.Nil(t, team)
	assert.False(t, ok)

	// Writes must not panic without a backend.
	cache.Set(context.Background(), projectID, &workload.TeamWorkload{})
	cache.Invalidate(context.Background(), projectID)
}
