package handlers

import (
	"net/http"

	"devflow-backend/internal/database/models"
	"devflow-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ServerHandler handles HTTP requests for server operations
type ServerHandler struct {
	serverService service.ServerServiceInterface
}

// NewServerHandler creates a new server handler
func NewServerHandler(serverService service.ServerServiceInterface) *ServerHandler {
	return &ServerHandler{serverService: serverService}
}

// CreateServer handles POST /servers
// @Summary Register a new server
// @Tags servers
// @Accept json
// @Produce json
// @Param server body service.CreateServerRequest true "Server data"
// @Success 201 {object} service.ServerResponse "Successfully registered server"
// @Failure 400 {object} map[string]interface{} "Invalid request body or duplicate name/hostname"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /servers [post]
func (h *ServerHandler) CreateServer(c *gin.Context) {
	var req service.CreateServerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	server, err := h.serverService.Create(&req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, server)
}

// GetServer handles GET /servers/:id
// @Summary Get server by ID
// @Tags servers
// @Produce json
// @Param id path int true "Server ID"
// @Success 200 {object} service.ServerResponse "Successfully retrieved server"
// @Failure 400 {object} map[string]interface{} "Invalid server ID"
// @Failure 404 {object} map[string]interface{} "Server not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /servers/{id} [get]
func (h *ServerHandler) GetServer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	server, err := h.serverService.GetByID(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, server)
}

// GetServerByHostname handles GET /servers/hostname/:hostname
// @Summary Get server by hostname
// @Tags servers
// @Produce json
// @Param hostname path string true "Server hostname"
// @Success 200 {object} service.ServerResponse "Successfully retrieved server"
// @Failure 404 {object} map[string]interface{} "Server not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /servers/hostname/{hostname} [get]
func (h *ServerHandler) GetServerByHostname(c *gin.Context) {
	server, err := h.serverService.GetByHostname(c.Param("hostname"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, server)
}

// ListServers handles GET /servers
// @Summary List servers
// @Tags servers
// @Produce json
// @Param type query string false "Filter by server type"
// @Param status query string false "Filter by status"
// @Param environment query string false "Filter by environment"
// @Param provider query string false "Filter by provider"
// @Param search query string false "Search in name, hostname, IP, and description"
// @Param sort_by query string false "Field to sort by"
// @Param sort_order query string false "Sort direction (asc or desc)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} query.Page[service.ServerResponse] "Successfully retrieved servers"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /servers [get]
func (h *ServerHandler) ListServers(c *gin.Context) {
	var serverType *models.ServerType
	if raw := c.Query("type"); raw != "" {
		t := models.ServerType(raw)
		serverType = &t
	}
	var status *models.ServerStatus
	if raw := c.Query("status"); raw != "" {
		s := models.ServerStatus(raw)
		status = &s
	}

	filter := &service.ListServersFilter{
		Type:        serverType,
		Status:      status,
		Environment: queryStringPtr(c, "environment"),
		Provider:    queryStringPtr(c, "provider"),
		Search:      c.Query("search"),
		SortBy:      c.Query("sort_by"),
		SortOrder:   c.Query("sort_order"),
		Page:        pageParams(c),
	}

	servers, err := h.serverService.List(filter)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, servers)
}

// UpdateServer handles PUT /servers/:id
// @Summary Update a server
// @Description Update server details. The hostname is immutable.
// @Tags servers
// @Accept json
// @Produce json
// @Param id path int true "Server ID"
// @Param server body service.UpdateServerRequest true "Fields to update"
// @Success 200 {object} service.ServerResponse "Successfully updated server"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Server not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /servers/{id} [put]
func (h *ServerHandler) UpdateServer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateServerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	server, err := h.serverService.Update(id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, server)
}

// UpdateServerStatusRequest is the payload for a server status transition
type UpdateServerStatusRequest struct {
	Status models.ServerStatus `json:"status" binding:"required"`
}

// UpdateServerStatus handles PATCH /servers/:id/status
// @Summary Update server status
// @Description Transition a server between active, inactive, maintenance and decommissioned
// @Tags servers
// @Accept json
// @Produce json
// @Param id path int true "Server ID"
// @Param status body UpdateServerStatusRequest true "New status"
// @Success 200 {object} service.ServerResponse "Successfully updated server"
// @Failure 400 {object} map[string]interface{} "Invalid status"
// @Failure 404 {object} map[string]interface{} "Server not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /servers/{id}/status [patch]
func (h *ServerHandler) UpdateServerStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateServerStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	server, err := h.serverService.UpdateStatus(id, req.Status)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, server)
}

// DeleteServer handles DELETE /servers/:id
// @Summary Delete a server
// @Description Delete a server and all services and deployments on it
// @Tags servers
// @Produce json
// @Param id path int true "Server ID"
// @Success 204 "Server deleted"
// @Failure 400 {object} map[string]interface{} "Invalid server ID"
// @Failure 404 {object} map[string]interface{} "Server not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /servers/{id} [delete]
func (h *ServerHandler) DeleteServer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.serverService.Delete(id); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
