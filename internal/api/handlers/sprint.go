package handlers

import (
	"net/http"

	"devflow-backend/internal/database/models"
	"devflow-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SprintHandler handles HTTP requests for sprint operations
type SprintHandler struct {
	sprintService service.SprintServiceInterface
}

// NewSprintHandler creates a new sprint handler
func NewSprintHandler(sprintService service.SprintServiceInterface) *SprintHandler {
	return &SprintHandler{sprintService: sprintService}
}

// UpdateSprintStatusRequest is the body for PATCH /sprints/:id/status
type UpdateSprintStatusRequest struct {
	Status models.SprintStatus `json:"status" binding:"required"`
}

// CreateSprint handles POST /sprints
// @Summary Create a new sprint
// @Description Create a sprint in the planned state
// @Tags sprints
// @Accept json
// @Produce json
// @Param sprint body service.CreateSprintRequest true "Sprint data"
// @Success 201 {object} service.SprintResponse "Successfully created sprint"
// @Failure 400 {object} map[string]interface{} "Invalid request body or date range"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /sprints [post]
func (h *SprintHandler) CreateSprint(c *gin.Context) {
	var req service.CreateSprintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sprint, err := h.sprintService.Create(&req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, sprint)
}

// GetSprint handles GET /sprints/:id
// @Summary Get sprint by ID
// @Tags sprints
// @Produce json
// @Param id path int true "Sprint ID"
// @Success 200 {object} service.SprintResponse "Successfully retrieved sprint"
// @Failure 400 {object} map[string]interface{} "Invalid sprint ID"
// @Failure 404 {object} map[string]interface{} "Sprint not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /sprints/{id} [get]
func (h *SprintHandler) GetSprint(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	sprint, err := h.sprintService.GetByID(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, sprint)
}

// GetActiveSprint handles GET /projects/:id/sprints/active
// @Summary Get a project's active sprint
// @Tags sprints
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} service.SprintResponse "Successfully retrieved active sprint"
// @Failure 400 {object} map[string]interface{} "Invalid project ID"
// @Failure 404 {object} map[string]interface{} "No active sprint"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /projects/{id}/sprints/active [get]
func (h *SprintHandler) GetActiveSprint(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	sprint, err := h.sprintService.GetActive(projectID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, sprint)
}

// ListSprints handles GET /sprints
// @Summary List sprints
// @Tags sprints
// @Produce json
// @Param project_id query int false "Filter by project ID"
// @Param status query string false "Filter by status"
// @Param search query string false "Search in name and goal"
// @Param sort_by query string false "Field to sort by"
// @Param sort_order query string false "Sort direction (asc or desc)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} query.Page[service.SprintResponse] "Successfully retrieved sprints"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /sprints [get]
func (h *SprintHandler) ListSprints(c *gin.Context) {
	projectID, ok := queryInt64Ptr(c, "project_id")
	if !ok {
		return
	}

	var status *models.SprintStatus
	if raw := c.Query("status"); raw != "" {
		s := models.SprintStatus(raw)
		status = &s
	}

	filter := &service.ListSprintsFilter{
		ProjectID: projectID,
		Status:    status,
		Search:    c.Query("search"),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
		Page:      pageParams(c),
	}

	sprints, err := h.sprintService.List(filter)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, sprints)
}

// UpdateSprint handles PUT /sprints/:id
// @Summary Update a sprint
// @Description Update sprint details. Activating here enforces the single active sprint rule.
// @Tags sprints
// @Accept json
// @Produce json
// @Param id path int true "Sprint ID"
// @Param sprint body service.UpdateSprintRequest true "Fields to update"
// @Success 200 {object} service.SprintResponse "Successfully updated sprint"
// @Failure 400 {object} map[string]interface{} "Invalid request or another sprint is active"
// @Failure 404 {object} map[string]interface{} "Sprint not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /sprints/{id} [put]
func (h *SprintHandler) UpdateSprint(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateSprintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sprint, err := h.sprintService.Update(id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, sprint)
}

// UpdateSprintStatus handles PATCH /sprints/:id/status
// @Summary Change a sprint's status
// @Tags sprints
// @Accept json
// @Produce json
// @Param id path int true "Sprint ID"
// @Param status body UpdateSprintStatusRequest true "New status"
// @Success 200 {object} service.SprintResponse "Successfully updated status"
// @Failure 400 {object} map[string]interface{} "Invalid status or another sprint is active"
// @Failure 404 {object} map[string]interface{} "Sprint not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /sprints/{id}/status [patch]
func (h *SprintHandler) UpdateSprintStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateSprintStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sprint, err := h.sprintService.UpdateStatus(id, req.Status)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, sprint)
}

// StartSprint handles POST /sprints/:id/start
// @Summary Start a sprint
// @Description Move a sprint to active. Fails if the project already has an active sprint.
// @Tags sprints
// @Produce json
// @Param id path int true "Sprint ID"
// @Success 200 {object} service.SprintResponse "Sprint started"
// @Failure 400 {object} map[string]interface{} "Another sprint is already active"
// @Failure 404 {object} map[string]interface{} "Sprint not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /sprints/{id}/start [post]
func (h *SprintHandler) StartSprint(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	sprint, err := h.sprintService.Start(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, sprint)
}

// CompleteSprint handles POST /sprints/:id/complete
// @Summary Complete a sprint
// @Tags sprints
// @Produce json
// @Param id path int true "Sprint ID"
// @Success 200 {object} service.SprintResponse "Sprint completed"
// @Failure 400 {object} map[string]interface{} "Invalid sprint ID"
// @Failure 404 {object} map[string]interface{} "Sprint not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /sprints/{id}/complete [post]
func (h *SprintHandler) CompleteSprint(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	sprint, err := h.sprintService.Complete(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, sprint)
}

// DeleteSprint handles DELETE /sprints/:id
// @Summary Delete a sprint
// @Description Delete a sprint. Its issues go back to the backlog.
// @Tags sprints
// @Produce json
// @Param id path int true "Sprint ID"
// @Success 204 "Sprint deleted"
// @Failure 400 {object} map[string]interface{} "Invalid sprint ID"
// @Failure 404 {object} map[string]interface{} "Sprint not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /sprints/{id} [delete]
func (h *SprintHandler) DeleteSprint(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.sprintService.Delete(id); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
