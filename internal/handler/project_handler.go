package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"project-plan-api/internal/dto"
	"project-plan-api/internal/response"
	"project-plan-api/internal/service"
)

// ProjectHandler handles project HTTP requests
type ProjectHandler struct {
	projectService service.ProjectService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// CreateProject handles POST /projects
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, err.Error())
		return
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, project)
}

// ListProjects handles GET /projects
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	projects, err := h.projectService.ListProjects(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, projects)
}

// GetProject handles GET /projects/:projectId
func (h *ProjectHandler) GetProject(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	projectID, ok := parseUUIDParam(c, "projectId")
	if !ok {
		return
	}

	project, err := h.projectService.GetProject(c.Request.Context(), projectID, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, project)
}

// UpdateProject handles PUT /projects/:projectId
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	projectID, ok := parseUUIDParam(c, "projectId")
	if !ok {
		return
	}

	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, err.Error())
		return
	}

	project, err := h.projectService.UpdateProject(c.Request.Context(), projectID, userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, project)
}

// DeleteProject handles DELETE /projects/:projectId
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	projectID, ok := parseUUIDParam(c, "projectId")
	if !ok {
		return
	}

	if err := h.projectService.DeleteProject(c.Request.Context(), projectID, userID); err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, gin.H{"deleted": true})
}
