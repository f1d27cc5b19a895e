package service

import (
	"errors"
	"fmt"

	"devflow-backend/internal/database/models"
	apperrors "devflow-backend/internal/errors"
	"devflow-backend/internal/query"
	"devflow-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// ServerService handles business logic for infrastructure servers
type ServerService struct {
	repo      *repository.ServerRepository
	validator *validator.Validate
}

// NewServerService creates a new server service
func NewServerService(repo *repository.ServerRepository, validator *validator.Validate) *ServerService {
	return &ServerService{repo: repo, validator: validator}
}

// CreateServerRequest represents the request to register a server
type CreateServerRequest struct {
	Name              string              `json:"name" validate:"required,min=1,max=100"`
	Hostname          string              `json:"hostname" validate:"required,hostname_rfc1123"`
	IPAddress         string              `json:"ip_address" validate:"omitempty,ip"`
	Type              models.ServerType   `json:"type" validate:"omitempty,oneof=physical virtual cloud container"`
	Status            models.ServerStatus `json:"status" validate:"omitempty,oneof=active inactive maintenance decommissioned"`
	Environment       string              `json:"environment" validate:"omitempty,max=50"`
	CPUCores          *int                `json:"cpu_cores" validate:"omitempty,min=1"`
	MemoryGB          *int                `json:"memory_gb" validate:"omitempty,min=1"`
	DiskGB            *int                `json:"disk_gb" validate:"omitempty,min=1"`
	OSName            string              `json:"os_name"`
	OSVersion         string              `json:"os_version"`
	Provider          string              `json:"provider"`
	Region            string              `json:"region"`
	InstanceID        string              `json:"instance_id"`
	SSHPort           *int                `json:"ssh_port" validate:"omitempty,min=1,max=65535"`
	SSHUser           string              `json:"ssh_user"`
	MonitoringEnabled bool                `json:"monitoring_enabled"`
	MonitoringURL     string              `json:"monitoring_url" validate:"omitempty,url"`
	Description       string              `json:"description"`
	Notes             string              `json:"notes"`
}

// UpdateServerRequest represents a partial update to a server
type UpdateServerRequest struct {
	Name              Nullable[string]              `json:"name"`
	IPAddress         Nullable[string]              `json:"ip_address"`
	Type              Nullable[models.ServerType]   `json:"type"`
	Status            Nullable[models.ServerStatus] `json:"status"`
	Environment       Nullable[string]              `json:"environment"`
	CPUCores          Nullable[int]                 `json:"cpu_cores"`
	MemoryGB          Nullable[int]                 `json:"memory_gb"`
	DiskGB            Nullable[int]                 `json:"disk_gb"`
	OSName            Nullable[string]              `json:"os_name"`
	OSVersion         Nullable[string]              `json:"os_version"`
	Provider          Nullable[string]              `json:"provider"`
	Region            Nullable[string]              `json:"region"`
	InstanceID        Nullable[string]              `json:"instance_id"`
	SSHPort           Nullable[int]                 `json:"ssh_port"`
	SSHUser           Nullable[string]              `json:"ssh_user"`
	MonitoringEnabled Nullable[bool]                `json:"monitoring_enabled"`
	MonitoringURL     Nullable[string]              `json:"monitoring_url"`
	Description       Nullable[string]              `json:"description"`
	Notes             Nullable[string]              `json:"notes"`
}

// ServerResponse represents the response for server operations
type ServerResponse struct {
	ID                int64               `json:"id"`
	Name              string              `json:"name"`
	Hostname          string              `json:"hostname"`
	IPAddress         string              `json:"ip_address,omitempty"`
	Type              models.ServerType   `json:"type"`
	Status            models.ServerStatus `json:"status"`
	Environment       string              `json:"environment,omitempty"`
	CPUCores          *int                `json:"cpu_cores,omitempty"`
	MemoryGB          *int                `json:"memory_gb,omitempty"`
	DiskGB            *int                `json:"disk_gb,omitempty"`
	OSName            string              `json:"os_name,omitempty"`
	OSVersion         string              `json:"os_version,omitempty"`
	Provider          string              `json:"provider,omitempty"`
	Region            string              `json:"region,omitempty"`
	InstanceID        string              `json:"instance_id,omitempty"`
	SSHPort           int                 `json:"ssh_port"`
	SSHUser           string              `json:"ssh_user,omitempty"`
	MonitoringEnabled bool                `json:"monitoring_enabled"`
	MonitoringURL     string              `json:"monitoring_url,omitempty"`
	Description       string              `json:"description,omitempty"`
	Notes             string              `json:"notes,omitempty"`
	ServiceCount      *int                `json:"service_count,omitempty"`
	CreatedAt         string              `json:"created_at"`
	UpdatedAt         string              `json:"updated_at"`
}

// ListServersFilter carries the query parameters for listing servers
type ListServersFilter struct {
	Type        *models.ServerType
	Status      *models.ServerStatus
	Environment *string
	Provider    *string
	Search      string
	SortBy      string
	SortOrder   string
	Page        query.Params
}

// Create registers a new server. Name and hostname must both be unique.
func (s *ServerService) Create(req *CreateServerRequest) (*ServerResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	exists, err := s.repo.NameOrHostnameExists(req.Name, req.Hostname)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing server: %w", err)
	}
	if exists {
		return nil, apperrors.ErrServerExists
	}

	serverType := req.Type
	if serverType == "" {
		serverType = models.ServerTypeVirtual
	}
	status := req.Status
	if status == "" {
		status = models.ServerStatusActive
	}
	sshPort := 22
	if req.SSHPort != nil {
		sshPort = *req.SSHPort
	}

	server := &models.Server{
		Name:              req.Name,
		Hostname:          req.Hostname,
		IPAddress:         req.IPAddress,
		Type:              serverType,
		Status:            status,
		Environment:       req.Environment,
		CPUCores:          req.CPUCores,
		MemoryGB:          req.MemoryGB,
		DiskGB:            req.DiskGB,
		OSName:            req.OSName,
		OSVersion:         req.OSVersion,
		Provider:          req.Provider,
		Region:            req.Region,
		InstanceID:        req.InstanceID,
		SSHPort:           sshPort,
		SSHUser:           req.SSHUser,
		MonitoringEnabled: req.MonitoringEnabled,
		MonitoringURL:     req.MonitoringURL,
		Description:       req.Description,
		Notes:             req.Notes,
	}

	if err := s.repo.Create(server); err != nil {
		return nil, fmt.Errorf("failed to create server: %w", err)
	}

	return s.toResponse(server), nil
}

// GetByID retrieves a server by ID along with its service count
func (s *ServerService) GetByID(id int64) (*ServerResponse, error) {
	server, err := s.repo.GetWithServices(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrServerNotFound
		}
		return nil, fmt.Errorf("failed to get server: %w", err)
	}
	resp := s.toResponse(server)
	count := len(server.Services)
	resp.ServiceCount = &count
	return resp, nil
}

// GetByHostname retrieves a server by its hostname
func (s *ServerService) GetByHostname(hostname string) (*ServerResponse, error) {
	server, err := s.repo.GetByHostname(hostname)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrServerNotFound
		}
		return nil, fmt.Errorf("failed to get server: %w", err)
	}
	return s.toResponse(server), nil
}

// List retrieves servers with filtering, search, and pagination
func (s *ServerService) List(filter *ListServersFilter) (*query.Page[ServerResponse], error) {
	builder, err := query.NewBuilder(s.repo.DB(), &models.Server{})
	if err != nil {
		return nil, fmt.Errorf("failed to build server query: %w", err)
	}

	builder.
		Filter("type", filter.Type).
		Filter("status", filter.Status).
		Filter("environment", filter.Environment).
		Filter("provider", filter.Provider).
		Search(filter.Search, "name", "hostname", "ip_address", "description").
		Sort(filter.SortBy, filter.SortOrder)

	page, err := query.Paginate[models.Server](builder.DB(), filter.Page)
	if err != nil {
		return nil, fmt.Errorf("failed to list servers: %w", err)
	}

	return mapPage(page, func(sv *models.Server) ServerResponse { return *s.toResponse(sv) }), nil
}

// Update applies a partial update to a server. Hostname is immutable.
func (s *ServerService) Update(id int64, req *UpdateServerRequest) (*ServerResponse, error) {
	server, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrServerNotFound
		}
		return nil, fmt.Errorf("failed to get server: %w", err)
	}

	if req.Name.Set && req.Name.Valid {
		server.Name = req.Name.Value
	}
	if req.IPAddress.Set {
		server.IPAddress = req.IPAddress.Value
	}
	if req.Type.Set && req.Type.Valid {
		if !req.Type.Value.IsValid() {
			return nil, apperrors.NewValidationError("type", "invalid server type")
		}
		server.Type = req.Type.Value
	}
	if req.Status.Set && req.Status.Valid {
		if !req.Status.Value.IsValid() {
			return nil, apperrors.NewValidationError("status", "invalid server status")
		}
		server.Status = req.Status.Value
	}
	if req.Environment.Set {
		server.Environment = req.Environment.Value
	}
	if req.CPUCores.Set {
		server.CPUCores = req.CPUCores.Ptr()
	}
	if req.MemoryGB.Set {
		server.MemoryGB = req.MemoryGB.Ptr()
	}
	if req.DiskGB.Set {
		server.DiskGB = req.DiskGB.Ptr()
	}
	if req.OSName.Set {
		server.OSName = req.OSName.Value
	}
	if req.OSVersion.Set {
		server.OSVersion = req.OSVersion.Value
	}
	if req.Provider.Set {
		server.Provider = req.Provider.Value
	}
	if req.Region.Set {
		server.Region = req.Region.Value
	}
	if req.InstanceID.Set {
		server.InstanceID = req.InstanceID.Value
	}
	if req.SSHPort.Set && req.SSHPort.Valid {
		server.SSHPort = req.SSHPort.Value
	}
	if req.SSHUser.Set {
		server.SSHUser = req.SSHUser.Value
	}
	if req.MonitoringEnabled.Set && req.MonitoringEnabled.Valid {
		server.MonitoringEnabled = req.MonitoringEnabled.Value
	}
	if req.MonitoringURL.Set {
		server.MonitoringURL = req.MonitoringURL.Value
	}
	if req.Description.Set {
		server.Description = req.Description.Value
	}
	if req.Notes.Set {
		server.Notes = req.Notes.Value
	}

	if err := s.repo.Update(server); err != nil {
		return nil, fmt.Errorf("failed to update server: %w", err)
	}

	return s.toResponse(server), nil
}

// UpdateStatus changes only the server's status
func (s *ServerService) UpdateStatus(id int64, status models.ServerStatus) (*ServerResponse, error) {
	if !status.IsValid() {
		return nil, apperrors.NewValidationError("status", "invalid server status")
	}

	server, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrServerNotFound
		}
		return nil, fmt.Errorf("failed to get server: %w", err)
	}

	server.Status = status
	if err := s.repo.Update(server); err != nil {
		return nil, fmt.Errorf("failed to update server status: %w", err)
	}

	return s.toResponse(server), nil
}

// Delete removes a server and cascades to its services and deployments
func (s *ServerService) Delete(id int64) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrServerNotFound
		}
		return fmt.Errorf("failed to delete server: %w", err)
	}
	return nil
}

func (s *ServerService) toResponse(server *models.Server) *ServerResponse {
	return &ServerResponse{
		ID:                server.ID,
		Name:              server.Name,
		Hostname:          server.Hostname,
		IPAddress:         server.IPAddress,
		Type:              server.Type,
		Status:            server.Status,
		Environment:       server.Environment,
		CPUCores:          server.CPUCores,
		MemoryGB:          server.MemoryGB,
		DiskGB:            server.DiskGB,
		OSName:            server.OSName,
		OSVersion:         server.OSVersion,
		Provider:          server.Provider,
		Region:            server.Region,
		InstanceID:        server.InstanceID,
		SSHPort:           server.SSHPort,
		SSHUser:           server.SSHUser,
		MonitoringEnabled: server.MonitoringEnabled,
		MonitoringURL:     server.MonitoringURL,
		Description:       server.Description,
		Notes:             server.Notes,
		CreatedAt:         server.CreatedAt.Format(timeFormat),
		UpdatedAt:         server.UpdatedAt.Format(timeFormat),
	}
}
