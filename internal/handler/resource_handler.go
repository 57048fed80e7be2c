package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"project-plan-api/internal/dto"
	"project-plan-api/internal/response"
	"project-plan-api/internal/service"
)

// ResourceHandler handles resource, assignment and workload HTTP requests
type ResourceHandler struct {
	resourceService service.ResourceService
}

// NewResourceHandler creates a new ResourceHandler
func NewResourceHandler(resourceService service.ResourceService) *ResourceHandler {
	return &ResourceHandler{resourceService: resourceService}
}

// CreateResource handles POST /resources
func (h *ResourceHandler) CreateResource(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req dto.CreateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, err.Error())
		return
	}

	resource, err := h.resourceService.CreateResource(c.Request.Context(), userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, resource)
}

// ListResources handles GET /resources
func (h *ResourceHandler) ListResources(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	resources, err := h.resourceService.ListResources(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, resources)
}

// UpdateResource handles PUT /resources/:resourceId
func (h *ResourceHandler) UpdateResource(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	resourceID, ok := parseUUIDParam(c, "resourceId")
	if !ok {
		return
	}

	var req dto.UpdateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, err.Error())
		return
	}

	resource, err := h.resourceService.UpdateResource(c.Request.Context(), resourceID, userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, resource)
}

// DeleteResource handles DELETE /resources/:resourceId
func (h *ResourceHandler) DeleteResource(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	resourceID, ok := parseUUIDParam(c, "resourceId")
	if !ok {
		return
	}

	if err := h.resourceService.DeleteResource(c.Request.Context(), resourceID, userID); err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, gin.H{"deleted": true})
}

// CreateAssignment handles POST /projects/:projectId/assignments
func (h *ResourceHandler) CreateAssignment(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	projectID, ok := parseUUIDParam(c, "projectId")
	if !ok {
		return
	}

	var req dto.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, err.Error())
		return
	}

	assignment, err := h.resourceService.CreateAssignment(c.Request.Context(), projectID, userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, assignment)
}

// GetTeamWorkload handles GET /projects/:projectId/workload
func (h *ResourceHandler) GetTeamWorkload(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	projectID, ok := parseUUIDParam(c, "projectId")
	if !ok {
		return
	}

	team, err := h.resourceService.GetTeamWorkload(c.Request.Context(), projectID, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, team)
}
