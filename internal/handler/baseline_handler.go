package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"project-plan-api/internal/dto"
	"project-plan-api/internal/response"
	"project-plan-api/internal/service"
)

// BaselineHandler handles baseline HTTP requests
type BaselineHandler struct {
	baselineService service.BaselineService
}

// NewBaselineHandler creates a new BaselineHandler
func NewBaselineHandler(baselineService service.BaselineService) *BaselineHandler {
	return &BaselineHandler{baselineService: baselineService}
}

// CreateBaseline handles POST /projects/:projectId/baselines
func (h *BaselineHandler) CreateBaseline(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	projectID, ok := parseUUIDParam(c, "projectId")
	if !ok {
		return
	}

	var req dto.CreateBaselineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, err.Error())
		return
	}

	baseline, err := h.baselineService.CreateBaseline(c.Request.Context(), projectID, userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, baseline)
}

// ListBaselines handles GET /projects/:projectId/baselines
func (h *BaselineHandler) ListBaselines(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	projectID, ok := parseUUIDParam(c, "projectId")
	if !ok {
		return
	}

	baselines, err := h.baselineService.ListBaselines(c.Request.Context(), projectID, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, baselines)
}

// GetComparison handles GET /projects/:projectId/baseline-comparison
func (h *BaselineHandler) GetComparison(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	projectID, ok := parseUUIDParam(c, "projectId")
	if !ok {
		return
	}

	comparison, err := h.baselineService.GetComparison(c.Request.Context(), projectID, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, comparison)
}
