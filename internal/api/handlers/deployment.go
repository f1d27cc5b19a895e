package handlers

import (
	"net/http"
	"time"

	"devflow-backend/internal/database/models"
	"devflow-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DeploymentHandler handles HTTP requests for deployment operations
type DeploymentHandler struct {
	deploymentService service.DeploymentServiceInterface
}

// NewDeploymentHandler creates a new deployment handler
func NewDeploymentHandler(deploymentService service.DeploymentServiceInterface) *DeploymentHandler {
	return &DeploymentHandler{deploymentService: deploymentService}
}

// queryTimePtr parses an RFC 3339 query parameter
func queryTimePtr(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name + " parameter, expected RFC 3339"})
		return nil, false
	}
	return &t, true
}

// CreateDeployment handles POST /deployments
// @Summary Record a new deployment
// @Description Record a deployment in the pending state
// @Tags deployments
// @Accept json
// @Produce json
// @Param deployment body service.CreateDeploymentRequest true "Deployment data"
// @Success 201 {object} service.DeploymentResponse "Successfully recorded deployment"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 401 {object} map[string]interface{} "Not authenticated"
// @Failure 404 {object} map[string]interface{} "Service not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /deployments [post]
func (h *DeploymentHandler) CreateDeployment(c *gin.Context) {
	actorID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req service.CreateDeploymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deployment, err := h.deploymentService.Create(actorID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, deployment)
}

// GetDeployment handles GET /deployments/:id
// @Summary Get deployment by ID
// @Tags deployments
// @Produce json
// @Param id path int true "Deployment ID"
// @Success 200 {object} service.DeploymentResponse "Successfully retrieved deployment"
// @Failure 400 {object} map[string]interface{} "Invalid deployment ID"
// @Failure 404 {object} map[string]interface{} "Deployment not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /deployments/{id} [get]
func (h *DeploymentHandler) GetDeployment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	deployment, err := h.deploymentService.GetByID(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, deployment)
}

// ListDeployments handles GET /deployments
// @Summary List deployments
// @Tags deployments
// @Produce json
// @Param service_id query int false "Filter by service ID"
// @Param status query string false "Filter by status"
// @Param type query string false "Filter by type"
// @Param environment query string false "Filter by environment"
// @Param deployed_by query int false "Filter by deploying user"
// @Param since query string false "Only deployments created at or after this RFC 3339 time"
// @Param until query string false "Only deployments created at or before this RFC 3339 time"
// @Param sort_by query string false "Field to sort by"
// @Param sort_order query string false "Sort direction (asc or desc)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} query.Page[service.DeploymentResponse] "Successfully retrieved deployments"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /deployments [get]
func (h *DeploymentHandler) ListDeployments(c *gin.Context) {
	serviceID, ok := queryInt64Ptr(c, "service_id")
	if !ok {
		return
	}
	deployedBy, ok := queryInt64Ptr(c, "deployed_by")
	if !ok {
		return
	}
	since, ok := queryTimePtr(c, "since")
	if !ok {
		return
	}
	until, ok := queryTimePtr(c, "until")
	if !ok {
		return
	}

	var status *models.DeploymentStatus
	if raw := c.Query("status"); raw != "" {
		s := models.DeploymentStatus(raw)
		status = &s
	}
	var deploymentType *models.DeploymentType
	if raw := c.Query("type"); raw != "" {
		t := models.DeploymentType(raw)
		deploymentType = &t
	}

	filter := &service.ListDeploymentsFilter{
		ServiceID:   serviceID,
		Status:      status,
		Type:        deploymentType,
		Environment: queryStringPtr(c, "environment"),
		DeployedBy:  deployedBy,
		Since:       since,
		Until:       until,
		SortBy:      c.Query("sort_by"),
		SortOrder:   c.Query("sort_order"),
		Page:        pageParams(c),
	}

	deployments, err := h.deploymentService.List(filter)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, deployments)
}

// UpdateDeploymentStatus handles PATCH /deployments/:id/status
// @Summary Change a deployment's status
// @Description Move a deployment through its lifecycle. Terminal statuses stamp the completion time.
// @Tags deployments
// @Accept json
// @Produce json
// @Param id path int true "Deployment ID"
// @Param status body service.UpdateDeploymentStatusRequest true "New status"
// @Success 200 {object} service.DeploymentResponse "Successfully updated status"
// @Failure 400 {object} map[string]interface{} "Invalid status"
// @Failure 404 {object} map[string]interface{} "Deployment not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /deployments/{id}/status [patch]
func (h *DeploymentHandler) UpdateDeploymentStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateDeploymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deployment, err := h.deploymentService.UpdateStatus(id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, deployment)
}

// RollbackDeployment handles POST /deployments/:id/rollback
// @Summary Roll back to a deployment
// @Description Create a new rollback deployment pointing at a previously successful one
// @Tags deployments
// @Accept json
// @Produce json
// @Param id path int true "Target deployment ID"
// @Param rollback body service.RollbackRequest true "Rollback options"
// @Success 201 {object} service.DeploymentResponse "Rollback deployment created"
// @Failure 400 {object} map[string]interface{} "Target deployment was not successful"
// @Failure 401 {object} map[string]interface{} "Not authenticated"
// @Failure 404 {object} map[string]interface{} "Deployment not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /deployments/{id}/rollback [post]
func (h *DeploymentHandler) RollbackDeployment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	actorID, ok := currentUserID(c)
	if !ok {
		return
	}

	// The body is optional, rollbacks work without notes
	var req service.RollbackRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	deployment, err := h.deploymentService.Rollback(id, actorID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, deployment)
}

// DeleteDeployment handles DELETE /deployments/:id
// @Summary Delete a deployment record
// @Tags deployments
// @Produce json
// @Param id path int true "Deployment ID"
// @Success 204 "Deployment deleted"
// @Failure 400 {object} map[string]interface{} "Invalid deployment ID"
// @Failure 404 {object} map[string]interface{} "Deployment not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /deployments/{id} [delete]
func (h *DeploymentHandler) DeleteDeployment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.deploymentService.Delete(id); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
