package handlers

import (
	"net/http"

	"devflow-backend/internal/database/models"
	"devflow-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ServiceHandler handles HTTP requests for service catalog operations
type ServiceHandler struct {
	serviceService service.ServiceServiceInterface
}

// NewServiceHandler creates a new service handler
func NewServiceHandler(serviceService service.ServiceServiceInterface) *ServiceHandler {
	return &ServiceHandler{serviceService: serviceService}
}

// UpdateServiceStatusRequest is the body for PATCH /services/:id/status
type UpdateServiceStatusRequest struct {
	Status models.ServiceStatus `json:"status" binding:"required"`
}

// CreateService handles POST /services
// @Summary Register a new service
// @Description Register a service on a server
// @Tags services
// @Accept json
// @Produce json
// @Param service body service.CreateServiceRequest true "Service data"
// @Success 201 {object} service.ServiceResponse "Successfully registered service"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Server not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /services [post]
func (h *ServiceHandler) CreateService(c *gin.Context) {
	var req service.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc, err := h.serviceService.Create(&req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, svc)
}

// GetService handles GET /services/:id
// @Summary Get service by ID
// @Tags services
// @Produce json
// @Param id path int true "Service ID"
// @Success 200 {object} service.ServiceResponse "Successfully retrieved service"
// @Failure 400 {object} map[string]interface{} "Invalid service ID"
// @Failure 404 {object} map[string]interface{} "Service not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /services/{id} [get]
func (h *ServiceHandler) GetService(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	svc, err := h.serviceService.GetByID(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, svc)
}

// ListServices handles GET /services
// @Summary List services
// @Tags services
// @Produce json
// @Param server_id query int false "Filter by server ID"
// @Param type query string false "Filter by service type"
// @Param status query string false "Filter by status"
// @Param search query string false "Search in name, description, and image name"
// @Param sort_by query string false "Field to sort by"
// @Param sort_order query string false "Sort direction (asc or desc)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} query.Page[service.ServiceResponse] "Successfully retrieved services"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /services [get]
func (h *ServiceHandler) ListServices(c *gin.Context) {
	serverID, ok := queryInt64Ptr(c, "server_id")
	if !ok {
		return
	}

	var serviceType *models.ServiceType
	if raw := c.Query("type"); raw != "" {
		t := models.ServiceType(raw)
		serviceType = &t
	}
	var status *models.ServiceStatus
	if raw := c.Query("status"); raw != "" {
		s := models.ServiceStatus(raw)
		status = &s
	}

	filter := &service.ListServicesFilter{
		ServerID:  serverID,
		Type:      serviceType,
		Status:    status,
		Search:    c.Query("search"),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
		Page:      pageParams(c),
	}

	services, err := h.serviceService.List(filter)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, services)
}

// UpdateService handles PUT /services/:id
// @Summary Update a service
// @Tags services
// @Accept json
// @Produce json
// @Param id path int true "Service ID"
// @Param service body service.UpdateServiceRequest true "Fields to update"
// @Success 200 {object} service.ServiceResponse "Successfully updated service"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Service not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /services/{id} [put]
func (h *ServiceHandler) UpdateService(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc, err := h.serviceService.Update(id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, svc)
}

// UpdateServiceStatus handles PATCH /services/:id/status
// @Summary Change a service's runtime status
// @Tags services
// @Accept json
// @Produce json
// @Param id path int true "Service ID"
// @Param status body UpdateServiceStatusRequest true "New status"
// @Success 200 {object} service.ServiceResponse "Successfully updated status"
// @Failure 400 {object} map[string]interface{} "Invalid status"
// @Failure 404 {object} map[string]interface{} "Service not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /services/{id}/status [patch]
func (h *ServiceHandler) UpdateServiceStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateServiceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc, err := h.serviceService.UpdateStatus(id, req.Status)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, svc)
}

// DeleteService handles DELETE /services/:id
// @Summary Delete a service
// @Description Delete a service and its deployment history
// @Tags services
// @Produce json
// @Param id path int true "Service ID"
// @Success 204 "Service deleted"
// @Failure 400 {object} map[string]interface{} "Invalid service ID"
// @Failure 404 {object} map[string]interface{} "Service not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /services/{id} [delete]
func (h *ServiceHandler) DeleteService(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.serviceService.Delete(id); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
