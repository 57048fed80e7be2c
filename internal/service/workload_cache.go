package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"project-plan-api/internal/workload"
)

// workloadCacheTTL bounds staleness of the cached team workload view
const workloadCacheTTL = 60 * time.Second

// WorkloadCache caches the computed team workload view per project. The
// cached copy must be dropped whenever a write changes the inputs of the
// view, so services that create or mutate tasks and assignments share one
// cache instance with the workload reader.
type WorkloadCache interface {
	Get(ctx context.Context, projectID uuid.UUID) (*workload.TeamWorkload, bool)
	Set(ctx context.Context, projectID uuid.UUID, team *workload.TeamWorkload)
	Invalidate(ctx context.Context, projectID uuid.UUID)
}

// redisWorkloadCache is the Redis-backed implementation of WorkloadCache.
// A nil client turns every operation into a no-op, so tests and
// deployments without Redis compute the view on every call.
type redisWorkloadCache struct {
	client *redis.Client
	logger *zap.Logger
}

// NewWorkloadCache creates a WorkloadCache backed by Redis. client may be nil.
func NewWorkloadCache(client *redis.Client, logger *zap.Logger) WorkloadCache {
	return &redisWorkloadCache{client: client, logger: logger}
}

func workloadCacheKey(projectID uuid.UUID) string {
	return fmt.Sprintf("workload:project:%s", projectID)
}

func (c *redisWorkloadCache) Get(ctx context.Context, projectID uuid.UUID) (*workload.TeamWorkload, bool) {
	if c.client == nil {
		return nil, false
	}
	cached, err := c.client.Get(ctx, workloadCacheKey(projectID)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("Workload cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var team workload.TeamWorkload
	if err := json.Unmarshal([]byte(cached), &team); err != nil {
		return nil, false
	}
	return &team, true
}

func (c *redisWorkloadCache) Set(ctx context.Context, projectID uuid.UUID, team *workload.TeamWorkload) {
	if c.client == nil {
		return
	}
	payload, err := json.Marshal(team)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, workloadCacheKey(projectID), payload, workloadCacheTTL).Err(); err != nil {
		c.logger.Warn("Workload cache write failed", zap.Error(err))
	}
}

func (c *redisWorkloadCache) Invalidate(ctx context.Context, projectID uuid.UUID) {
	if c.client == nil {
		return
	}
	if err := c.client.Del(ctx, workloadCacheKey(projectID)).Err(); err != nil {
		c.logger.Warn("Failed to invalidate workload cache", zap.Error(err))
	}
}
