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

// SprintService handles business logic for sprints, including the
// single-active-sprint rule enforced at every transition into active.
type SprintService struct {
	repo        *repository.SprintRepository
	projectRepo *repository.ProjectRepository
	validator   *validator.Validate
}

// NewSprintService creates a new sprint service
func NewSprintService(repo *repository.SprintRepository, projectRepo *repository.ProjectRepository, validator *validator.Validate) *SprintService {
	return &SprintService{repo: repo, projectRepo: projectRepo, validator: validator}
}

// CreateSprintRequest represents the request to create a sprint
type CreateSprintRequest struct {
	ProjectID int64      `json:"project_id" validate:"required"`
	Name      string     `json:"name" validate:"required,min=1,max=200"`
	Goal      string     `json:"goal"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

// UpdateSprintRequest represents a partial update to a sprint
type UpdateSprintRequest struct {
	Name      Nullable[string]              `json:"name"`
	Goal      Nullable[string]              `json:"goal"`
	StartDate Nullable[time.Time]           `json:"start_date"`
	EndDate   Nullable[time.Time]           `json:"end_date"`
	Status    Nullable[models.SprintStatus] `json:"status"`
}

// SprintResponse represents the response for sprint operations.
// IssueCount is populated on detail lookups only.
type SprintResponse struct {
	ID         int64               `json:"id"`
	ProjectID  int64               `json:"project_id"`
	Name       string              `json:"name"`
	Goal       string              `json:"goal,omitempty"`
	StartDate  string              `json:"start_date,omitempty"`
	EndDate    string              `json:"end_date,omitempty"`
	Status     models.SprintStatus `json:"status"`
	IssueCount *int                `json:"issue_count,omitempty"`
	CreatedAt  string              `json:"created_at"`
	UpdatedAt  string              `json:"updated_at"`
}

// ListSprintsFilter carries the query parameters for listing sprints
type ListSprintsFilter struct {
	ProjectID *int64
	Status    *models.SprintStatus
	Search    string
	SortBy    string
	SortOrder string
	Page      query.Params
}

// Create creates a new sprint in the planned state
func (s *SprintService) Create(req *CreateSprintRequest) (*SprintResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.projectRepo.GetByID(req.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to verify project: %w", err)
	}

	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return nil, apperrors.NewValidationError("end_date", "end date must not be before start date")
	}

	sprint := &models.Sprint{
		ProjectID: req.ProjectID,
		Name:      req.Name,
		Goal:      req.Goal,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Status:    models.SprintStatusPlanned,
	}

	if err := s.repo.Create(sprint); err != nil {
		return nil, fmt.Errorf("failed to create sprint: %w", err)
	}

	return s.toResponse(sprint), nil
}

// GetByID retrieves a sprint by ID along with its issue count
func (s *SprintService) GetByID(id int64) (*SprintResponse, error) {
	sprint, err := s.repo.GetWithIssues(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSprintNotFound
		}
		return nil, fmt.Errorf("failed to get sprint: %w", err)
	}
	resp := s.toResponse(sprint)
	count := len(sprint.Issues)
	resp.IssueCount = &count
	return resp, nil
}

// GetActive retrieves the active sprint of a project
func (s *SprintService) GetActive(projectID int64) (*SprintResponse, error) {
	if _, err := s.projectRepo.GetByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to verify project: %w", err)
	}

	sprint, err := s.repo.GetActiveSprint(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrActiveSprintNotFound
		}
		return nil, fmt.Errorf("failed to get active sprint: %w", err)
	}
	return s.toResponse(sprint), nil
}

// List retrieves sprints with filtering and pagination
func (s *SprintService) List(filter *ListSprintsFilter) (*query.Page[SprintResponse], error) {
	builder, err := query.NewBuilder(s.repo.DB(), &models.Sprint{})
	if err != nil {
		return nil, fmt.Errorf("failed to build sprint query: %w", err)
	}

	builder.
		Filter("project_id", filter.ProjectID).
		Filter("status", filter.Status).
		Search(filter.Search, "name", "goal").
		Sort(filter.SortBy, filter.SortOrder)

	page, err := query.Paginate[models.Sprint](builder.DB(), filter.Page)
	if err != nil {
		return nil, fmt.Errorf("failed to list sprints: %w", err)
	}

	return mapPage(page, func(sp *models.Sprint) SprintResponse { return *s.toResponse(sp) }), nil
}

// Update applies a partial update to a sprint. Changing the status to
// active re-runs the single-active-sprint check.
func (s *SprintService) Update(id int64, req *UpdateSprintRequest) (*SprintResponse, error) {
	sprint, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSprintNotFound
		}
		return nil, fmt.Errorf("failed to get sprint: %w", err)
	}

	if req.Name.Set && req.Name.Valid {
		sprint.Name = req.Name.Value
	}
	if req.Goal.Set {
		sprint.Goal = req.Goal.Value
	}
	if req.StartDate.Set {
		sprint.StartDate = req.StartDate.Ptr()
	}
	if req.EndDate.Set {
		sprint.EndDate = req.EndDate.Ptr()
	}
	if req.Status.Set && req.Status.Valid {
		if !req.Status.Value.IsValid() {
			return nil, apperrors.NewValidationError("status", "invalid sprint status")
		}
		if req.Status.Value == models.SprintStatusActive {
			if err := s.ensureNoOtherActive(sprint.ProjectID, sprint.ID); err != nil {
				return nil, err
			}
		}
		sprint.Status = req.Status.Value
	}

	if err := s.repo.Update(sprint); err != nil {
		return nil, fmt.Errorf("failed to update sprint: %w", err)
	}

	return s.toResponse(sprint), nil
}

// UpdateStatus changes only the sprint's status, enforcing the
// single-active-sprint rule when activating.
func (s *SprintService) UpdateStatus(id int64, status models.SprintStatus) (*SprintResponse, error) {
	if !status.IsValid() {
		return nil, apperrors.NewValidationError("status", "invalid sprint status")
	}

	sprint, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSprintNotFound
		}
		return nil, fmt.Errorf("failed to get sprint: %w", err)
	}

	if status == models.SprintStatusActive {
		if err := s.ensureNoOtherActive(sprint.ProjectID, sprint.ID); err != nil {
			return nil, err
		}
	}

	sprint.Status = status
	if err := s.repo.Update(sprint); err != nil {
		return nil, fmt.Errorf("failed to update sprint status: %w", err)
	}

	return s.toResponse(sprint), nil
}

// Start transitions a sprint to active. Fails with a conflict when the
// project already has a different active sprint.
func (s *SprintService) Start(id int64) (*SprintResponse, error) {
	sprint, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSprintNotFound
		}
		return nil, fmt.Errorf("failed to get sprint: %w", err)
	}

	if err := s.ensureNoOtherActive(sprint.ProjectID, sprint.ID); err != nil {
		return nil, err
	}

	sprint.Status = models.SprintStatusActive
	if err := s.repo.Update(sprint); err != nil {
		return nil, fmt.Errorf("failed to start sprint: %w", err)
	}

	return s.toResponse(sprint), nil
}

// Complete transitions a sprint to completed. The transition is
// deliberately unguarded: completing an already completed or cancelled
// sprint is a no-op rather than an error.
func (s *SprintService) Complete(id int64) (*SprintResponse, error) {
	sprint, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSprintNotFound
		}
		return nil, fmt.Errorf("failed to get sprint: %w", err)
	}

	sprint.Status = models.SprintStatusCompleted
	if err := s.repo.Update(sprint); err != nil {
		return nil, fmt.Errorf("failed to complete sprint: %w", err)
	}

	return s.toResponse(sprint), nil
}

// Delete removes a sprint. Issues in the sprint fall back to the backlog
// through the schema's SET NULL rule.
func (s *SprintService) Delete(id int64) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrSprintNotFound
		}
		return fmt.Errorf("failed to delete sprint: %w", err)
	}
	return nil
}

func (s *SprintService) ensureNoOtherActive(projectID, sprintID int64) error {
	active, err := s.repo.HasActiveSprint(projectID, sprintID)
	if err != nil {
		return fmt.Errorf("failed to check active sprint: %w", err)
	}
	if active {
		return apperrors.NewConflictError("project %d already has an active sprint", projectID)
	}
	return nil
}

func (s *SprintService) toResponse(sprint *models.Sprint) *SprintResponse {
	return &SprintResponse{
		ID:        sprint.ID,
		ProjectID: sprint.ProjectID,
		Name:      sprint.Name,
		Goal:      sprint.Goal,
		StartDate: formatDatePtr(sprint.StartDate),
		EndDate:   formatDatePtr(sprint.EndDate),
		Status:    sprint.Status,
		CreatedAt: sprint.CreatedAt.Format(timeFormat),
		UpdatedAt: sprint.UpdatedAt.Format(timeFormat),
	}
}
