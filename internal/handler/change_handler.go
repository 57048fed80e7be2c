package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"project-plan-api/internal/dto"
	"project-plan-api/internal/response"
	"project-plan-api/internal/service"
)

// ChangeHandler handles change request HTTP requests
type ChangeHandler struct {
	changeService service.ChangeService
}

// NewChangeHandler creates a new ChangeHandler
func NewChangeHandler(changeService service.ChangeService) *ChangeHandler {
	return &ChangeHandler{changeService: changeService}
}

// CreateChangeRequest handles POST /projects/:projectId/changes
func (h *ChangeHandler) CreateChangeRequest(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	projectID, ok := parseUUIDParam(c, "projectId")
	if !ok {
		return
	}

	var req dto.CreateChangeRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, err.Error())
		return
	}

	request, err := h.changeService.CreateChangeRequest(c.Request.Context(), projectID, userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, request)
}

// ListChangeRequests handles GET /projects/:projectId/changes
func (h *ChangeHandler) ListChangeRequests(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	projectID, ok := parseUUIDParam(c, "projectId")
	if !ok {
		return
	}

	requests, err := h.changeService.ListChangeRequests(c.Request.Context(), projectID, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, requests)
}

// GetChangeRequest handles GET /projects/:projectId/changes/:changeId
func (h *ChangeHandler) GetChangeRequest(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	projectID, ok := parseUUIDParam(c, "projectId")
	if !ok {
		return
	}
	changeID, ok := parseUUIDParam(c, "changeId")
	if !ok {
		return
	}

	request, err := h.changeService.GetChangeRequest(c.Request.Context(), projectID, changeID, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, request)
}

// GetAnalysis handles GET /projects/:projectId/changes/:changeId/analysis
func (h *ChangeHandler) GetAnalysis(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	projectID, ok := parseUUIDParam(c, "projectId")
	if !ok {
		return
	}
	changeID, ok := parseUUIDParam(c, "changeId")
	if !ok {
		return
	}

	analysis, err := h.changeService.GetAnalysis(c.Request.Context(), projectID, changeID, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, analysis)
}

// AnalyzeChange handles POST /projects/:projectId/changes/:changeId/analyze
func (h *ChangeHandler) AnalyzeChange(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	projectID, ok := parseUUIDParam(c, "projectId")
	if !ok {
		return
	}
	changeID, ok := parseUUIDParam(c, "changeId")
	if !ok {
		return
	}

	analysis, err := h.changeService.AnalyzeChange(c.Request.Context(), projectID, changeID, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, analysis)
}

// ApproveChange handles POST /projects/:projectId/changes/:changeId/approve
func (h *ChangeHandler) ApproveChange(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	projectID, ok := parseUUIDParam(c, "projectId")
	if !ok {
		return
	}
	changeID, ok := parseUUIDParam(c, "changeId")
	if !ok {
		return
	}

	result, err := h.changeService.ApproveChange(c.Request.Context(), projectID, changeID, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, result)
}

// RejectChange handles POST /projects/:projectId/changes/:changeId/reject
func (h *ChangeHandler) RejectChange(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	projectID, ok := parseUUIDParam(c, "projectId")
	if !ok {
		return
	}
	changeID, ok := parseUUIDParam(c, "changeId")
	if !ok {
		return
	}

	// The body is optional; a bare POST rejects without a reason.
	var req dto.RejectChangeRequestRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, err.Error())
			return
		}
	}

	request, err := h.changeService.RejectChange(c.Request.Context(), projectID, changeID, userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, request)
}

// GetHistory handles GET /projects/:projectId/change-history
func (h *ChangeHandler) GetHistory(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	projectID, ok := parseUUIDParam(c, "projectId")
	if !ok {
		return
	}

	entries, err := h.changeService.GetHistory(c.Request.Context(), projectID, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, entries)
}
