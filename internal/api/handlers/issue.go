package handlers

import (
	"net/http"

	"devflow-backend/internal/database/models"
	"devflow-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// IssueHandler handles HTTP requests for issue operations
type IssueHandler struct {
	issueService service.IssueServiceInterface
}

// NewIssueHandler creates a new issue handler
func NewIssueHandler(issueService service.IssueServiceInterface) *IssueHandler {
	return &IssueHandler{issueService: issueService}
}

// UpdateIssueStatusRequest is the body for PATCH /issues/:id/status
type UpdateIssueStatusRequest struct {
	Status models.IssueStatus `json:"status" binding:"required"`
}

// CreateIssue handles POST /issues
// @Summary Create a new issue
// @Description Create an issue. The key is generated from the project key.
// @Tags issues
// @Accept json
// @Produce json
// @Param issue body service.CreateIssueRequest true "Issue data"
// @Success 201 {object} service.IssueResponse "Successfully created issue"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 401 {object} map[string]interface{} "Not authenticated"
// @Failure 404 {object} map[string]interface{} "Project, sprint, or assignee not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /issues [post]
func (h *IssueHandler) CreateIssue(c *gin.Context) {
	creatorID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req service.CreateIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	issue, err := h.issueService.Create(creatorID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, issue)
}

// GetIssue handles GET /issues/:id
// @Summary Get issue by ID
// @Tags issues
// @Produce json
// @Param id path int true "Issue ID"
// @Success 200 {object} service.IssueResponse "Successfully retrieved issue"
// @Failure 400 {object} map[string]interface{} "Invalid issue ID"
// @Failure 404 {object} map[string]interface{} "Issue not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /issues/{id} [get]
func (h *IssueHandler) GetIssue(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	issue, err := h.issueService.GetByID(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, issue)
}

// GetIssueByKey handles GET /issues/key/:key
// @Summary Get issue by key
// @Description Look an issue up by its key, for example ABC-42, case insensitively
// @Tags issues
// @Produce json
// @Param key path string true "Issue key"
// @Success 200 {object} service.IssueResponse "Successfully retrieved issue"
// @Failure 404 {object} map[string]interface{} "Issue not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /issues/key/{key} [get]
func (h *IssueHandler) GetIssueByKey(c *gin.Context) {
	issue, err := h.issueService.GetByKey(c.Param("key"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, issue)
}

// ListIssues handles GET /issues
// @Summary List issues
// @Description List issues with filtering. Set backlog=true for issues outside any sprint.
// @Tags issues
// @Produce json
// @Param project_id query int false "Filter by project ID"
// @Param sprint_id query int false "Filter by sprint ID"
// @Param backlog query bool false "Only issues not in a sprint"
// @Param assignee_id query int false "Filter by assignee ID"
// @Param status query string false "Filter by status"
// @Param priority query string false "Filter by priority"
// @Param type query string false "Filter by type"
// @Param search query string false "Search in title, description, and key"
// @Param sort_by query string false "Field to sort by"
// @Param sort_order query string false "Sort direction (asc or desc)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} query.Page[service.IssueResponse] "Successfully retrieved issues"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /issues [get]
func (h *IssueHandler) ListIssues(c *gin.Context) {
	projectID, ok := queryInt64Ptr(c, "project_id")
	if !ok {
		return
	}
	sprintID, ok := queryInt64Ptr(c, "sprint_id")
	if !ok {
		return
	}
	assigneeID, ok := queryInt64Ptr(c, "assignee_id")
	if !ok {
		return
	}
	backlog, ok := queryBoolPtr(c, "backlog")
	if !ok {
		return
	}

	var status *models.IssueStatus
	if raw := c.Query("status"); raw != "" {
		s := models.IssueStatus(raw)
		status = &s
	}
	var priority *models.IssuePriority
	if raw := c.Query("priority"); raw != "" {
		p := models.IssuePriority(raw)
		priority = &p
	}
	var issueType *models.IssueType
	if raw := c.Query("type"); raw != "" {
		t := models.IssueType(raw)
		issueType = &t
	}

	filter := &service.ListIssuesFilter{
		ProjectID:  projectID,
		SprintID:   sprintID,
		Backlog:    backlog != nil && *backlog,
		AssigneeID: assigneeID,
		Status:     status,
		Priority:   priority,
		Type:       issueType,
		Search:     c.Query("search"),
		SortBy:     c.Query("sort_by"),
		SortOrder:  c.Query("sort_order"),
		Page:       pageParams(c),
	}

	issues, err := h.issueService.List(filter)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, issues)
}

// ListMyIssues handles GET /issues/my
// @Summary List my issues
// @Description List issues assigned to the authenticated user
// @Tags issues
// @Produce json
// @Param project_id query int false "Filter by project ID"
// @Param sprint_id query int false "Filter by sprint ID"
// @Param status query string false "Filter by status"
// @Param priority query string false "Filter by priority"
// @Param type query string false "Filter by type"
// @Param search query string false "Search in title, description, and key"
// @Param sort_by query string false "Field to sort by"
// @Param sort_order query string false "Sort direction (asc or desc)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} query.Page[service.IssueResponse] "Successfully retrieved issues"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Failure 401 {object} map[string]interface{} "Not authenticated"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /issues/my [get]
func (h *IssueHandler) ListMyIssues(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	projectID, ok := queryInt64Ptr(c, "project_id")
	if !ok {
		return
	}
	sprintID, ok := queryInt64Ptr(c, "sprint_id")
	if !ok {
		return
	}

	var status *models.IssueStatus
	if raw := c.Query("status"); raw != "" {
		s := models.IssueStatus(raw)
		status = &s
	}
	var priority *models.IssuePriority
	if raw := c.Query("priority"); raw != "" {
		p := models.IssuePriority(raw)
		priority = &p
	}
	var issueType *models.IssueType
	if raw := c.Query("type"); raw != "" {
		t := models.IssueType(raw)
		issueType = &t
	}

	filter := &service.ListIssuesFilter{
		ProjectID:  projectID,
		SprintID:   sprintID,
		AssigneeID: &userID,
		Status:     status,
		Priority:   priority,
		Type:       issueType,
		Search:     c.Query("search"),
		SortBy:     c.Query("sort_by"),
		SortOrder:  c.Query("sort_order"),
		Page:       pageParams(c),
	}

	issues, err := h.issueService.List(filter)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, issues)
}

// UpdateIssue handles PUT /issues/:id
// @Summary Update an issue
// @Description Update issue details. Sending null for sprint_id or assignee_id clears the field.
// @Tags issues
// @Accept json
// @Produce json
// @Param id path int true "Issue ID"
// @Param issue body service.UpdateIssueRequest true "Fields to update"
// @Success 200 {object} service.IssueResponse "Successfully updated issue"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Issue, sprint, or assignee not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /issues/{id} [put]
func (h *IssueHandler) UpdateIssue(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	issue, err := h.issueService.Update(id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, issue)
}

// UpdateIssueStatus handles PATCH /issues/:id/status
// @Summary Change an issue's status
// @Tags issues
// @Accept json
// @Produce json
// @Param id path int true "Issue ID"
// @Param status body UpdateIssueStatusRequest true "New status"
// @Success 200 {object} service.IssueResponse "Successfully updated status"
// @Failure 400 {object} map[string]interface{} "Invalid status"
// @Failure 404 {object} map[string]interface{} "Issue not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /issues/{id}/status [patch]
func (h *IssueHandler) UpdateIssueStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateIssueStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	issue, err := h.issueService.UpdateStatus(id, req.Status)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, issue)
}

// AssignIssue handles POST /issues/:id/assign
// @Summary Assign an issue
// @Description Assign an issue to a user, or unassign it by sending null
// @Tags issues
// @Accept json
// @Produce json
// @Param id path int true "Issue ID"
// @Param assignee body service.AssignIssueRequest true "Assignee"
// @Success 200 {object} service.IssueResponse "Successfully assigned issue"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Issue or user not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /issues/{id}/assign [post]
func (h *IssueHandler) AssignIssue(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.AssignIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	issue, err := h.issueService.Assign(id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, issue)
}

// MoveIssueToSprint handles POST /issues/:id/sprint
// @Summary Move an issue into a sprint
// @Description Move an issue into a sprint of the same project, or back to the backlog with null
// @Tags issues
// @Accept json
// @Produce json
// @Param id path int true "Issue ID"
// @Param sprint body service.MoveIssueToSprintRequest true "Target sprint"
// @Success 200 {object} service.IssueResponse "Successfully moved issue"
// @Failure 400 {object} map[string]interface{} "Sprint belongs to a different project"
// @Failure 404 {object} map[string]interface{} "Issue or sprint not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /issues/{id}/sprint [post]
func (h *IssueHandler) MoveIssueToSprint(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.MoveIssueToSprintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	issue, err := h.issueService.MoveToSprint(id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, issue)
}

// DeleteIssue handles DELETE /issues/:id
// @Summary Delete an issue
// @Tags issues
// @Produce json
// @Param id path int true "Issue ID"
// @Success 204 "Issue deleted"
// @Failure 400 {object} map[string]interface{} "Invalid issue ID"
// @Failure 404 {object} map[string]interface{} "Issue not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /issues/{id} [delete]
func (h *IssueHandler) DeleteIssue(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.issueService.Delete(id); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
