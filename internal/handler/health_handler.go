package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"project-plan-api/internal/database"
)

// HealthHandler reports service liveness and dependency status
type HealthHandler struct {
	redisClient *redis.Client
}

// NewHealthHandler creates a new HealthHandler. redisClient may be nil.
func NewHealthHandler(redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{redisClient: redisClient}
}

// Health handles GET /health. The endpoint itself stays 200 while the
// database is still connecting so the pod is not killed during startup.
func (h *HealthHandler) Health(c *gin.Context) {
	dbStatus := "connected"
	if !database.IsConnected() {
		dbStatus = "connecting"
	}

	redisStatus := "disabled"
	if h.redisClient != nil {
		redisStatus = "connected"
		if err := h.redisClient.Ping(c.Request.Context()).Err(); err != nil {
			redisStatus = "unavailable"
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"database": dbStatus,
		"redis":    redisStatus,
	})
}
