package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"project-plan-api/internal/dto"
	"project-plan-api/internal/response"
	"project-plan-api/internal/service"
)

// GovernanceHandler handles risk, decision and milestone HTTP requests
type GovernanceHandler struct {
	governanceService service.GovernanceService
}

// NewGovernanceHandler creates a new GovernanceHandler
func NewGovernanceHandler(governanceService service.GovernanceService) *GovernanceHandler {
	return &GovernanceHandler{governanceService: governanceService}
}

// CreateRisk handles POST /projects/:projectId/risks
func (h *GovernanceHandler) CreateRisk(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	projectID, ok := parseUUIDParam(c, "projectId")
	if !ok {
		return
	}

	var req dto.CreateRiskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, err.Error())
		return
	}

	risk, err := h.governanceService.CreateRisk(c.Request.Context(), projectID, userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, risk)
}

// ListRisks handles GET /projects/:projectId/risks
func (h *GovernanceHandler) ListRisks(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	projectID, ok := parseUUIDParam(c, "projectId")
	if !ok {
		return
	}

	risks, err := h.governanceService.ListRisks(c.Request.Context(), projectID, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, risks)
}

// CreateDecision handles POST /projects/:projectId/decisions
func (h *GovernanceHandler) CreateDecision(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	projectID, ok := parseUUIDParam(c, "projectId")
	if !ok {
		return
	}

	var req dto.CreateDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, err.Error())
		return
	}

	decision, err := h.governanceService.CreateDecision(c.Request.Context(), projectID, userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, decision)
}

// ListDecisions handles GET /projects/:projectId/decisions
func (h *GovernanceHandler) ListDecisions(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	projectID, ok := parseUUIDParam(c, "projectId")
	if !ok {
		return
	}

	decisions, err := h.governanceService.ListDecisions(c.Request.Context(), projectID, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, decisions)
}

// CreateMilestone handles POST /projects/:projectId/milestones
func (h *GovernanceHandler) CreateMilestone(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	projectID, ok := parseUUIDParam(c, "projectId")
	if !ok {
		return
	}

	var req dto.CreateMilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, err.Error())
		return
	}

	milestone, err := h.governanceService.CreateMilestone(c.Request.Context(), projectID, userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, milestone)
}

// ListMilestones handles GET /projects/:projectId/milestones
func (h *GovernanceHandler) ListMilestones(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	projectID, ok := parseUUIDParam(c, "projectId")
	if !ok {
		return
	}

	milestones, err := h.governanceService.ListMilestones(c.Request.Context(), projectID, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, milestones)
}

// GetGovernance handles GET /projects/:projectId/governance
func (h *GovernanceHandler) GetGovernance(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	projectID, ok := parseUUIDParam(c, "projectId")
	if !ok {
		return
	}

	governance, err := h.governanceService.GetGovernance(c.Request.Context(), projectID, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, governance)
}
