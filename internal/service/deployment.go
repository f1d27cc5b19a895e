package service

import (
	"errors"
	"fmt"
	"time"

	"devflow-backend/internal/database/models"
	apperrors "devflow-backend/internal/errors"
	"devflow-backend/internal/query"
	"devflow-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// DeploymentService handles business logic for deployments, including the
// rollback guard and terminal-status side effects.
type DeploymentService struct {
	repo        *repository.DeploymentRepository
	serviceRepo *repository.ServiceRepository
	validator   *validator.Validate
}

// NewDeploymentService creates a new deployment service
func NewDeploymentService(repo *repository.DeploymentRepository, serviceRepo *repository.ServiceRepository, validator *validator.Validate) *DeploymentService {
	return &DeploymentService{repo: repo, serviceRepo: serviceRepo, validator: validator}
}

// CreateDeploymentRequest represents the request to record a deployment
type CreateDeploymentRequest struct {
	ServiceID   int64                 `json:"service_id" validate:"required"`
	Version     string                `json:"version" validate:"required,max=50"`
	CommitHash  string                `json:"commit_hash" validate:"omitempty,max=40"`
	Branch      string                `json:"branch" validate:"omitempty,max=100"`
	Tag         string                `json:"tag" validate:"omitempty,max=100"`
	Type        models.DeploymentType `json:"type" validate:"omitempty,oneof=manual automatic rollback"`
	Environment string                `json:"environment" validate:"required,max=50"`
	Notes       string                `json:"notes"`
	LogURL      string                `json:"log_url" validate:"omitempty,url"`
}

// UpdateDeploymentStatusRequest changes a deployment's status
type UpdateDeploymentStatusRequest struct {
	Status       models.DeploymentStatus `json:"status" validate:"required,oneof=pending in_progress success failed rolled_back"`
	ErrorMessage string                  `json:"error_message"`
}

// RollbackRequest represents the request to roll a service back to a
// previously successful deployment
type RollbackRequest struct {
	Notes string `json:"notes"`
}

// DeploymentResponse represents the response for deployment operations
type DeploymentResponse struct {
	ID             int64                   `json:"id"`
	ServiceID      int64                   `json:"service_id"`
	DeployedBy     *int64                  `json:"deployed_by,omitempty"`
	Version        string                  `json:"version"`
	CommitHash     string                  `json:"commit_hash,omitempty"`
	Branch         string                  `json:"branch,omitempty"`
	Tag            string                  `json:"tag,omitempty"`
	Type           models.DeploymentType   `json:"type"`
	Status         models.DeploymentStatus `json:"status"`
	StartedAt      string                  `json:"started_at,omitempty"`
	CompletedAt    string                  `json:"completed_at,omitempty"`
	Environment    string                  `json:"environment"`
	RollbackFromID *int64                  `json:"rollback_from_id,omitempty"`
	Notes          string                  `json:"notes,omitempty"`
	ErrorMessage   string                  `json:"error_message,omitempty"`
	LogURL         string                  `json:"log_url,omitempty"`
	CreatedAt      string                  `json:"created_at"`
	UpdatedAt      string                  `json:"updated_at"`
}

// ListDeploymentsFilter carries the query parameters for listing deployments
type ListDeploymentsFilter struct {
	ServiceID   *int64
	Status      *models.DeploymentStatus
	Type        *models.DeploymentType
	Environment *string
	DeployedBy  *int64
	Since       *time.Time
	Until       *time.Time
	SortBy      string
	SortOrder   string
	Page        query.Params
}

// Create records a new deployment in the pending state
func (s *DeploymentService) Create(actorID int64, req *CreateDeploymentRequest) (*DeploymentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.serviceRepo.GetByID(req.ServiceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrServiceNotFound
		}
		return nil, fmt.Errorf("failed to verify service: %w", err)
	}

	deploymentType := req.Type
	if deploymentType == "" {
		deploymentType = models.DeploymentTypeManual
	}

	now := time.Now().UTC()
	deployment := &models.Deployment{
		ServiceID:   req.ServiceID,
		DeployedBy:  &actorID,
		Version:     req.Version,
		CommitHash:  req.CommitHash,
		Branch:      req.Branch,
		Tag:         req.Tag,
		Type:        deploymentType,
		Status:      models.DeploymentStatusPending,
		StartedAt:   &now,
		Environment: req.Environment,
		Notes:       req.Notes,
		LogURL:      req.LogURL,
	}

	if err := s.repo.Create(deployment); err != nil {
		return nil, fmt.Errorf("failed to create deployment: %w", err)
	}

	return s.toResponse(deployment), nil
}

// GetByID retrieves a deployment by ID
func (s *DeploymentService) GetByID(id int64) (*DeploymentResponse, error) {
	deployment, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDeploymentNotFound
		}
		return nil, fmt.Errorf("failed to get deployment: %w", err)
	}
	return s.toResponse(deployment), nil
}

// List retrieves deployments with filtering and pagination
func (s *DeploymentService) List(filter *ListDeploymentsFilter) (*query.Page[DeploymentResponse], error) {
	builder, err := query.NewBuilder(s.repo.DB(), &models.Deployment{})
	if err != nil {
		return nil, fmt.Errorf("failed to build deployment query: %w", err)
	}

	builder.
		Filter("service_id", filter.ServiceID).
		Filter("status", filter.Status).
		Filter("type", filter.Type).
		Filter("environment", filter.Environment).
		Filter("deployed_by", filter.DeployedBy).
		DateRange("created_at", filter.Since, filter.Until).
		Sort(filter.SortBy, filter.SortOrder)

	page, err := query.Paginate[models.Deployment](builder.DB(), filter.Page)
	if err != nil {
		return nil, fmt.Errorf("failed to list deployments: %w", err)
	}

	return mapPage(page, func(d *models.Deployment) DeploymentResponse { return *s.toResponse(d) }), nil
}

// UpdateStatus changes a deployment's status. Terminal statuses stamp
// completed_at; a failed status stores the accompanying error message.
func (s *DeploymentService) UpdateStatus(id int64, req *UpdateDeploymentStatusRequest) (*DeploymentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	deployment, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDeploymentNotFound
		}
		return nil, fmt.Errorf("failed to get deployment: %w", err)
	}

	deployment.Status = req.Status
	if req.Status.IsTerminal() {
		now := time.Now().UTC()
		deployment.CompletedAt = &now
	}
	if req.Status == models.DeploymentStatusFailed && req.ErrorMessage != "" {
		deployment.ErrorMessage = req.ErrorMessage
	}

	if err := s.repo.Update(deployment); err != nil {
		return nil, fmt.Errorf("failed to update deployment status: %w", err)
	}

	return s.toResponse(deployment), nil
}

// Rollback creates a new deployment that replays a previously successful
// one. The target must have status success and is never mutated.
func (s *DeploymentService) Rollback(targetID, actorID int64, req *RollbackRequest) (*DeploymentResponse, error) {
	target, err := s.repo.GetByID(targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDeploymentNotFound
		}
		return nil, fmt.Errorf("failed to get deployment: %w", err)
	}

	if target.Status != models.DeploymentStatusSuccess {
		return nil, apperrors.NewConflictError(
			"cannot roll back to deployment %d: status is %s, not %s",
			target.ID, target.Status, models.DeploymentStatusSuccess)
	}

	notes := req.Notes
	if notes == "" {
		notes = fmt.Sprintf("Rollback to deployment %d (version %s)", target.ID, target.Version)
	}

	now := time.Now().UTC()
	rollback := &models.Deployment{
		ServiceID:      target.ServiceID,
		DeployedBy:     &actorID,
		Version:        target.Version,
		CommitHash:     target.CommitHash,
		Branch:         target.Branch,
		Tag:            target.Tag,
		Type:           models.DeploymentTypeRollback,
		Status:         models.DeploymentStatusPending,
		StartedAt:      &now,
		Environment:    target.Environment,
		RollbackFromID: &target.ID,
		Notes:          notes,
	}

	if err := s.repo.Create(rollback); err != nil {
		return nil, fmt.Errorf("failed to create rollback deployment: %w", err)
	}

	return s.toResponse(rollback), nil
}

// Delete removes a deployment record
func (s *DeploymentService) Delete(id int64) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrDeploymentNotFound
		}
		return fmt.Errorf("failed to delete deployment: %w", err)
	}
	return nil
}

func (s *DeploymentService) toResponse(deployment *models.Deployment) *DeploymentResponse {
	return deploymentToResponse(deployment)
}

func deploymentToResponse(deployment *models.Deployment) *DeploymentResponse {
	return &DeploymentResponse{
		ID:             deployment.ID,
		ServiceID:      deployment.ServiceID,
		DeployedBy:     deployment.DeployedBy,
		Version:        deployment.Version,
		CommitHash:     deployment.CommitHash,
		Branch:         deployment.Branch,
		Tag:            deployment.Tag,
		Type:           deployment.Type,
		Status:         deployment.Status,
		StartedAt:      formatTimePtr(deployment.StartedAt),
		CompletedAt:    formatTimePtr(deployment.CompletedAt),
		Environment:    deployment.Environment,
		RollbackFromID: deployment.RollbackFromID,
		Notes:          deployment.Notes,
		ErrorMessage:   deployment.ErrorMessage,
		LogURL:         deployment.LogURL,
		CreatedAt:      deployment.CreatedAt.Format(timeFormat),
		UpdatedAt:      deployment.UpdatedAt.Format(timeFormat),
	}
}
