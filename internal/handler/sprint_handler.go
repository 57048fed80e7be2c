package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"project-plan-api/internal/dto"
	"project-plan-api/internal/response"
	"project-plan-api/internal/service"
)

// SprintHandler handles sprint HTTP requests
type SprintHandler struct {
	sprintService service.SprintService
}

// NewSprintHandler creates a new SprintHandler
func NewSprintHandler(sprintService service.SprintService) *SprintHandler {
	return &SprintHandler{sprintService: sprintService}
}

// CreateSprint handles POST /projects/:projectId/sprints
func (h *SprintHandler) CreateSprint(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	projectID, ok := parseUUIDParam(c, "projectId")
	if !ok {
		return
	}

	var req dto.CreateSprintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, err.Error())
		return
	}

	sprint, err := h.sprintService.CreateSprint(c.Request.Context(), projectID, userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, sprint)
}

// ListSprints handles GET /projects/:projectId/sprints
func (h *SprintHandler) ListSprints(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	projectID, ok := parseUUIDParam(c, "projectId")
	if !ok {
		return
	}

	sprints, err := h.sprintService.ListSprints(c.Request.Context(), projectID, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, sprints)
}

// UpdateSprint handles PUT /projects/:projectId/sprints/:sprintId
func (h *SprintHandler) UpdateSprint(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	projectID, ok := parseUUIDParam(c, "projectId")
	if !ok {
		return
	}
	sprintID, ok := parseUUIDParam(c, "sprintId")
	if !ok {
		return
	}

	var req dto.UpdateSprintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, err.Error())
		return
	}

	sprint, err := h.sprintService.UpdateSprint(c.Request.Context(), projectID, sprintID, userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, sprint)
}

// DeleteSprint handles DELETE /projects/:projectId/sprints/:sprintId
func (h *SprintHandler) DeleteSprint(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	projectID, ok := parseUUIDParam(c, "projectId")
	if !ok {
		return
	}
	sprintID, ok := parseUUIDParam(c, "sprintId")
	if !ok {
		return
	}

	if err := h.sprintService.DeleteSprint(c.Request.Context(), projectID, sprintID, userID); err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, gin.H{"deleted": true})
}
