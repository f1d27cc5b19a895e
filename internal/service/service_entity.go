package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"devflow-backend/internal/database/models"
	apperrors "devflow-backend/internal/errors"
	"devflow-backend/internal/query"
	"devflow-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// ServiceService handles business logic for the services running on servers
type ServiceService struct {
	repo       *repository.ServiceRepository
	serverRepo *repository.ServerRepository
	validator  *validator.Validate
}

// NewServiceService creates a new service service
func NewServiceService(repo *repository.ServiceRepository, serverRepo *repository.ServerRepository, validator *validator.Validate) *ServiceService {
	return &ServiceService{repo: repo, serverRepo: serverRepo, validator: validator}
}

// CreateServiceRequest represents the request to register a service
type CreateServiceRequest struct {
	ServerID             int64                `json:"server_id" validate:"required"`
	Name                 string               `json:"name" validate:"required,min=1,max=200"`
	Type                 models.ServiceType   `json:"type" validate:"omitempty,oneof=web api database cache queue worker cron other"`
	Status               models.ServiceStatus `json:"status" validate:"omitempty,oneof=running stopped degraded maintenance failed"`
	Version              string               `json:"version"`
	Port                 *int                 `json:"port" validate:"omitempty,min=1,max=65535"`
	URL                  string               `json:"url" validate:"omitempty,url"`
	ProcessName          string               `json:"process_name"`
	ContainerID          string               `json:"container_id"`
	ImageName            string               `json:"image_name"`
	CPULimit             *int                 `json:"cpu_limit" validate:"omitempty,min=1"`
	MemoryLimitMB        *int                 `json:"memory_limit_mb" validate:"omitempty,min=1"`
	HealthCheckURL       string               `json:"health_check_url" validate:"omitempty,url"`
	HealthCheckEnabled   bool                 `json:"health_check_enabled"`
	EnvironmentVariables json.RawMessage      `json:"environment_variables"`
	ConfigPath           string               `json:"config_path"`
	LogPath              string               `json:"log_path"`
	AutoStart            bool                 `json:"auto_start"`
	Description          string               `json:"description"`
	Notes                string               `json:"notes"`
}

// UpdateServiceRequest represents a partial update to a service
type UpdateServiceRequest struct {
	Name                 Nullable[string]               `json:"name"`
	Type                 Nullable[models.ServiceType]   `json:"type"`
	Status               Nullable[models.ServiceStatus] `json:"status"`
	Version              Nullable[string]               `json:"version"`
	Port                 Nullable[int]                  `json:"port"`
	URL                  Nullable[string]               `json:"url"`
	ProcessName          Nullable[string]               `json:"process_name"`
	PID                  Nullable[int]                  `json:"pid"`
	ContainerID          Nullable[string]               `json:"container_id"`
	ImageName            Nullable[string]               `json:"image_name"`
	CPULimit             Nullable[int]                  `json:"cpu_limit"`
	MemoryLimitMB        Nullable[int]                  `json:"memory_limit_mb"`
	HealthCheckURL       Nullable[string]               `json:"health_check_url"`
	HealthCheckEnabled   Nullable[bool]                 `json:"health_check_enabled"`
	EnvironmentVariables json.RawMessage                `json:"environment_variables"`
	ConfigPath           Nullable[string]               `json:"config_path"`
	LogPath              Nullable[string]               `json:"log_path"`
	AutoStart            Nullable[bool]                 `json:"auto_start"`
	Description          Nullable[string]               `json:"description"`
	Notes                Nullable[string]               `json:"notes"`
}

// ServiceResponse represents the response for service operations
type ServiceResponse struct {
	ID                   int64                `json:"id"`
	ServerID             int64                `json:"server_id"`
	Name                 string               `json:"name"`
	Type                 models.ServiceType   `json:"type"`
	Status               models.ServiceStatus `json:"status"`
	Version              string               `json:"version,omitempty"`
	Port                 *int                 `json:"port,omitempty"`
	URL                  string               `json:"url,omitempty"`
	ProcessName          string               `json:"process_name,omitempty"`
	PID                  *int                 `json:"pid,omitempty"`
	ContainerID          string               `json:"container_id,omitempty"`
	ImageName            string               `json:"image_name,omitempty"`
	CPULimit             *int                 `json:"cpu_limit,omitempty"`
	MemoryLimitMB        *int                 `json:"memory_limit_mb,omitempty"`
	HealthCheckURL       string               `json:"health_check_url,omitempty"`
	HealthCheckEnabled   bool                 `json:"health_check_enabled"`
	EnvironmentVariables json.RawMessage      `json:"environment_variables,omitempty"`
	ConfigPath           string               `json:"config_path,omitempty"`
	LogPath              string               `json:"log_path,omitempty"`
	AutoStart            bool                 `json:"auto_start"`
	Description          string               `json:"description,omitempty"`
	Notes                string               `json:"notes,omitempty"`
	DeploymentCount      *int                 `json:"deployment_count,omitempty"`
	CreatedAt            string               `json:"created_at"`
	UpdatedAt            string               `json:"updated_at"`
}

// ListServicesFilter carries the query parameters for listing services
type ListServicesFilter struct {
	ServerID  *int64
	Type      *models.ServiceType
	Status    *models.ServiceStatus
	Search    string
	SortBy    string
	SortOrder string
	Page      query.Params
}

// Create registers a service on a server
func (s *ServiceService) Create(req *CreateServiceRequest) (*ServiceResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.serverRepo.GetByID(req.ServerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrServerNotFound
		}
		return nil, fmt.Errorf("failed to verify server: %w", err)
	}

	serviceType := req.Type
	if serviceType == "" {
		serviceType = models.ServiceTypeWeb
	}
	status := req.Status
	if status == "" {
		status = models.ServiceStatusStopped
	}

	svc := &models.Service{
		ServerID:             req.ServerID,
		Name:                 req.Name,
		Type:                 serviceType,
		Status:               status,
		Version:              req.Version,
		Port:                 req.Port,
		URL:                  req.URL,
		ProcessName:          req.ProcessName,
		ContainerID:          req.ContainerID,
		ImageName:            req.ImageName,
		CPULimit:             req.CPULimit,
		MemoryLimitMB:        req.MemoryLimitMB,
		HealthCheckURL:       req.HealthCheckURL,
		HealthCheckEnabled:   req.HealthCheckEnabled,
		EnvironmentVariables: req.EnvironmentVariables,
		ConfigPath:           req.ConfigPath,
		LogPath:              req.LogPath,
		AutoStart:            req.AutoStart,
		Description:          req.Description,
		Notes:                req.Notes,
	}

	if err := s.repo.Create(svc); err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}

	return s.toResponse(svc), nil
}

// GetByID retrieves a service by ID along with its deployment count
func (s *ServiceService) GetByID(id int64) (*ServiceResponse, error) {
	svc, err := s.repo.GetWithDeployments(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrServiceNotFound
		}
		return nil, fmt.Errorf("failed to get service: %w", err)
	}
	resp := s.toResponse(svc)
	count := len(svc.Deployments)
	resp.DeploymentCount = &count
	return resp, nil
}

// List retrieves services with filtering, search, and pagination
func (s *ServiceService) List(filter *ListServicesFilter) (*query.Page[ServiceResponse], error) {
	builder, err := query.NewBuilder(s.repo.DB(), &models.Service{})
	if err != nil {
		return nil, fmt.Errorf("failed to build service query: %w", err)
	}

	builder.
		Filter("server_id", filter.ServerID).
		Filter("type", filter.Type).
		Filter("status", filter.Status).
		Search(filter.Search, "name", "description", "image_name").
		Sort(filter.SortBy, filter.SortOrder)

	page, err := query.Paginate[models.Service](builder.DB(), filter.Page)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}

	return mapPage(page, func(sv *models.Service) ServiceResponse { return *s.toResponse(sv) }), nil
}

// Update applies a partial update to a service
func (s *ServiceService) Update(id int64, req *UpdateServiceRequest) (*ServiceResponse, error) {
	svc, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrServiceNotFound
		}
		return nil, fmt.Errorf("failed to get service: %w", err)
	}

	if req.Name.Set && req.Name.Valid {
		svc.Name = req.Name.Value
	}
	if req.Type.Set && req.Type.Valid {
		if !req.Type.Value.IsValid() {
			return nil, apperrors.NewValidationError("type", "invalid service type")
		}
		svc.Type = req.Type.Value
	}
	if req.Status.Set && req.Status.Valid {
		if !req.Status.Value.IsValid() {
			return nil, apperrors.NewValidationError("status", "invalid service status")
		}
		svc.Status = req.Status.Value
	}
	if req.Version.Set {
		svc.Version = req.Version.Value
	}
	if req.Port.Set {
		svc.Port = req.Port.Ptr()
	}
	if req.URL.Set {
		svc.URL = req.URL.Value
	}
	if req.ProcessName.Set {
		svc.ProcessName = req.ProcessName.Value
	}
	if req.PID.Set {
		svc.PID = req.PID.Ptr()
	}
	if req.ContainerID.Set {
		svc.ContainerID = req.ContainerID.Value
	}
	if req.ImageName.Set {
		svc.ImageName = req.ImageName.Value
	}
	if req.CPULimit.Set {
		svc.CPULimit = req.CPULimit.Ptr()
	}
	if req.MemoryLimitMB.Set {
		svc.MemoryLimitMB = req.MemoryLimitMB.Ptr()
	}
	if req.HealthCheckURL.Set {
		svc.HealthCheckURL = req.HealthCheckURL.Value
	}
	if req.HealthCheckEnabled.Set && req.HealthCheckEnabled.Valid {
		svc.HealthCheckEnabled = req.HealthCheckEnabled.Value
	}
	if len(req.EnvironmentVariables) > 0 {
		svc.EnvironmentVariables = req.EnvironmentVariables
	}
	if req.ConfigPath.Set {
		svc.ConfigPath = req.ConfigPath.Value
	}
	if req.LogPath.Set {
		svc.LogPath = req.LogPath.Value
	}
	if req.AutoStart.Set && req.AutoStart.Valid {
		svc.AutoStart = req.AutoStart.Value
	}
	if req.Description.Set {
		svc.Description = req.Description.Value
	}
	if req.Notes.Set {
		svc.Notes = req.Notes.Value
	}

	if err := s.repo.Update(svc); err != nil {
		return nil, fmt.Errorf("failed to update service: %w", err)
	}

	return s.toResponse(svc), nil
}

// UpdateStatus changes only the service's operational status
func (s *ServiceService) UpdateStatus(id int64, status models.ServiceStatus) (*ServiceResponse, error) {
	if !status.IsValid() {
		return nil, apperrors.NewValidationError("status", "invalid service status")
	}

	svc, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrServiceNotFound
		}
		return nil, fmt.Errorf("failed to get service: %w", err)
	}

	svc.Status = status
	if err := s.repo.Update(svc); err != nil {
		return nil, fmt.Errorf("failed to update service status: %w", err)
	}

	return s.toResponse(svc), nil
}

// Delete removes a service and cascades to its deployment history
func (s *ServiceService) Delete(id int64) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrServiceNotFound
		}
		return fmt.Errorf("failed to delete service: %w", err)
	}
	return nil
}

func (s *ServiceService) toResponse(svc *models.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:                   svc.ID,
		ServerID:             svc.ServerID,
		Name:                 svc.Name,
		Type:                 svc.Type,
		Status:               svc.Status,
		Version:              svc.Version,
		Port:                 svc.Port,
		URL:                  svc.URL,
		ProcessName:          svc.ProcessName,
		PID:                  svc.PID,
		ContainerID:          svc.ContainerID,
		ImageName:            svc.ImageName,
		CPULimit:             svc.CPULimit,
		MemoryLimitMB:        svc.MemoryLimitMB,
		HealthCheckURL:       svc.HealthCheckURL,
		HealthCheckEnabled:   svc.HealthCheckEnabled,
		EnvironmentVariables: svc.EnvironmentVariables,
		ConfigPath:           svc.ConfigPath,
		LogPath:              svc.LogPath,
		AutoStart:            svc.AutoStart,
		Description:          svc.Description,
		Notes:                svc.Notes,
		CreatedAt:            svc.CreatedAt.Format(timeFormat),
		UpdatedAt:            svc.UpdatedAt.Format(timeFormat),
	}
}
