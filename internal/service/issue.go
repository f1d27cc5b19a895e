package service

import (
	"errors"
	"fmt"
	"strings"

	"devflow-backend/internal/database/models"
	apperrors "devflow-backend/internal/errors"
	"devflow-backend/internal/query"
	"devflow-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// IssueService handles business logic for issues, including key
// generation and sprint/assignee moves.
type IssueService struct {
	repo        *repository.IssueRepository
	projectRepo *repository.ProjectRepository
	sprintRepo  *repository.SprintRepository
	userRepo    *repository.UserRepository
	validator   *validator.Validate
}

// NewIssueService creates a new issue service
func NewIssueService(
	repo *repository.IssueRepository,
	projectRepo *repository.ProjectRepository,
	sprintRepo *repository.SprintRepository,
	userRepo *repository.UserRepository,
	validator *validator.Validate,
) *IssueService {
	return &IssueService{
		repo:        repo,
		projectRepo: projectRepo,
		sprintRepo:  sprintRepo,
		userRepo:    userRepo,
		validator:   validator,
	}
}

// CreateIssueRequest represents the request to create an issue
type CreateIssueRequest struct {
	ProjectID     int64                `json:"project_id" validate:"required"`
	SprintID      *int64               `json:"sprint_id"`
	AssigneeID    *int64               `json:"assignee_id"`
	Title         string               `json:"title" validate:"required,min=1,max=500"`
	Description   string               `json:"description"`
	Type          models.IssueType     `json:"type" validate:"omitempty,oneof=task bug feature improvement epic"`
	Priority      models.IssuePriority `json:"priority" validate:"omitempty,oneof=lowest low medium high highest"`
	EstimateHours *int                 `json:"estimate_hours" validate:"omitempty,min=0"`
}

// UpdateIssueRequest represents a partial update to an issue
type UpdateIssueRequest struct {
	Title         Nullable[string]               `json:"title"`
	Description   Nullable[string]               `json:"description"`
	Type          Nullable[models.IssueType]     `json:"type"`
	Priority      Nullable[models.IssuePriority] `json:"priority"`
	Status        Nullable[models.IssueStatus]   `json:"status"`
	SprintID      Nullable[int64]                `json:"sprint_id"`
	AssigneeID    Nullable[int64]                `json:"assignee_id"`
	EstimateHours Nullable[int]                  `json:"estimate_hours"`
	ActualHours   Nullable[int]                  `json:"actual_hours"`
	Order         Nullable[int]                  `json:"order"`
}

// AssignIssueRequest sets or clears the issue's assignee
type AssignIssueRequest struct {
	AssigneeID Nullable[int64] `json:"assignee_id"`
}

// MoveIssueToSprintRequest moves an issue into a sprint or back to the backlog
type MoveIssueToSprintRequest struct {
	SprintID Nullable[int64] `json:"sprint_id"`
}

// IssueResponse represents the response for issue operations
type IssueResponse struct {
	ID            int64                `json:"id"`
	ProjectID     int64                `json:"project_id"`
	SprintID      *int64               `json:"sprint_id"`
	AssigneeID    *int64               `json:"assignee_id"`
	CreatorID     int64                `json:"creator_id"`
	Key           string               `json:"key"`
	Title         string               `json:"title"`
	Description   string               `json:"description,omitempty"`
	Type          models.IssueType     `json:"type"`
	Priority      models.IssuePriority `json:"priority"`
	Status        models.IssueStatus   `json:"status"`
	EstimateHours *int                 `json:"estimate_hours,omitempty"`
	ActualHours   *int                 `json:"actual_hours,omitempty"`
	Order         int                  `json:"order"`
	CreatedAt     string               `json:"created_at"`
	UpdatedAt     string               `json:"updated_at"`
}

// ListIssuesFilter carries the query parameters for listing issues
type ListIssuesFilter struct {
	ProjectID  *int64
	SprintID   *int64
	Backlog    bool
	AssigneeID *int64
	Status     *models.IssueStatus
	Priority   *models.IssuePriority
	Type       *models.IssueType
	Search     string
	SortBy     string
	SortOrder  string
	Page       query.Params
}

// Create creates an issue, assigning the next project-scoped key
func (s *IssueService) Create(creatorID int64, req *CreateIssueRequest) (*IssueResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	project, err := s.projectRepo.GetByID(req.ProjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to verify project: %w", err)
	}

	if req.SprintID != nil {
		if err := s.verifySprintInProject(*req.SprintID, project.ID); err != nil {
			return nil, err
		}
	}
	if req.AssigneeID != nil {
		if err := s.verifyUser(*req.AssigneeID); err != nil {
			return nil, err
		}
	}

	issueType := req.Type
	if issueType == "" {
		issueType = models.IssueTypeTask
	}
	priority := req.Priority
	if priority == "" {
		priority = models.IssuePriorityMedium
	}

	issue := &models.Issue{
		ProjectID:     req.ProjectID,
		SprintID:      req.SprintID,
		AssigneeID:    req.AssigneeID,
		CreatorID:     creatorID,
		Title:         req.Title,
		Description:   req.Description,
		Type:          issueType,
		Priority:      priority,
		Status:        models.IssueStatusTodo,
		EstimateHours: req.EstimateHours,
	}

	if err := s.repo.CreateWithKey(issue); err != nil {
		return nil, fmt.Errorf("failed to create issue: %w", err)
	}

	return s.toResponse(issue), nil
}

// GetByID retrieves an issue by ID
func (s *IssueService) GetByID(id int64) (*IssueResponse, error) {
	issue, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrIssueNotFound
		}
		return nil, fmt.Errorf("failed to get issue: %w", err)
	}
	return s.toResponse(issue), nil
}

// GetByKey retrieves an issue by its human-readable key
func (s *IssueService) GetByKey(key string) (*IssueResponse, error) {
	issue, err := s.repo.GetByKey(strings.ToUpper(key))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrIssueNotFound
		}
		return nil, fmt.Errorf("failed to get issue: %w", err)
	}
	return s.toResponse(issue), nil
}

// List retrieves issues with filtering, search, and pagination. Setting
// Backlog restricts the result to issues without a sprint.
func (s *IssueService) List(filter *ListIssuesFilter) (*query.Page[IssueResponse], error) {
	builder, err := query.NewBuilder(s.repo.DB(), &models.Issue{})
	if err != nil {
		return nil, fmt.Errorf("failed to build issue query: %w", err)
	}

	builder.
		Filter("project_id", filter.ProjectID).
		Filter("assignee_id", filter.AssigneeID).
		Filter("status", filter.Status).
		Filter("priority", filter.Priority).
		Filter("type", filter.Type).
		Search(filter.Search, "title", "description", "key").
		Sort(filter.SortBy, filter.SortOrder)

	if filter.Backlog {
		builder.Null("sprint_id", true)
	} else {
		builder.Filter("sprint_id", filter.SprintID)
	}

	page, err := query.Paginate[models.Issue](builder.DB(), filter.Page)
	if err != nil {
		return nil, fmt.Errorf("failed to list issues: %w", err)
	}

	return mapPage(page, func(i *models.Issue) IssueResponse { return *s.toResponse(i) }), nil
}

// Update applies a partial update to an issue. Explicit nulls clear the
// sprint, assignee, and hour fields; omitted fields stay untouched.
func (s *IssueService) Update(id int64, req *UpdateIssueRequest) (*IssueResponse, error) {
	issue, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrIssueNotFound
		}
		return nil, fmt.Errorf("failed to get issue: %w", err)
	}

	if req.Title.Set && req.Title.Valid {
		issue.Title = req.Title.Value
	}
	if req.Description.Set {
		issue.Description = req.Description.Value
	}
	if req.Type.Set && req.Type.Valid {
		if !req.Type.Value.IsValid() {
			return nil, apperrors.NewValidationError("type", "invalid issue type")
		}
		issue.Type = req.Type.Value
	}
	if req.Priority.Set && req.Priority.Valid {
		if !req.Priority.Value.IsValid() {
			return nil, apperrors.NewValidationError("priority", "invalid issue priority")
		}
		issue.Priority = req.Priority.Value
	}
	if req.Status.Set && req.Status.Valid {
		if !req.Status.Value.IsValid() {
			return nil, apperrors.NewValidationError("status", "invalid issue status")
		}
		issue.Status = req.Status.Value
	}
	if req.SprintID.Set {
		if req.SprintID.Valid {
			if err := s.verifySprintInProject(req.SprintID.Value, issue.ProjectID); err != nil {
				return nil, err
			}
		}
		issue.SprintID = req.SprintID.Ptr()
	}
	if req.AssigneeID.Set {
		if req.AssigneeID.Valid {
			if err := s.verifyUser(req.AssigneeID.Value); err != nil {
				return nil, err
			}
		}
		issue.AssigneeID = req.AssigneeID.Ptr()
	}
	if req.EstimateHours.Set {
		issue.EstimateHours = req.EstimateHours.Ptr()
	}
	if req.ActualHours.Set {
		issue.ActualHours = req.ActualHours.Ptr()
	}
	if req.Order.Set && req.Order.Valid {
		issue.Order = req.Order.Value
	}

	if err := s.repo.Update(issue); err != nil {
		return nil, fmt.Errorf("failed to update issue: %w", err)
	}

	return s.toResponse(issue), nil
}

// UpdateStatus changes only the issue's status
func (s *IssueService) UpdateStatus(id int64, status models.IssueStatus) (*IssueResponse, error) {
	if !status.IsValid() {
		return nil, apperrors.NewValidationError("status", "invalid issue status")
	}

	issue, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrIssueNotFound
		}
		return nil, fmt.Errorf("failed to get issue: %w", err)
	}

	issue.Status = status
	if err := s.repo.Update(issue); err != nil {
		return nil, fmt.Errorf("failed to update issue status: %w", err)
	}

	return s.toResponse(issue), nil
}

// Assign sets or clears the issue's assignee
func (s *IssueService) Assign(id int64, req *AssignIssueRequest) (*IssueResponse, error) {
	issue, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrIssueNotFound
		}
		return nil, fmt.Errorf("failed to get issue: %w", err)
	}

	if req.AssigneeID.Valid {
		if err := s.verifyUser(req.AssigneeID.Value); err != nil {
			return nil, err
		}
	}
	issue.AssigneeID = req.AssigneeID.Ptr()

	if err := s.repo.Update(issue); err != nil {
		return nil, fmt.Errorf("failed to assign issue: %w", err)
	}

	return s.toResponse(issue), nil
}

// MoveToSprint moves an issue into a sprint of the same project, or back
// to the backlog when the sprint is null.
func (s *IssueService) MoveToSprint(id int64, req *MoveIssueToSprintRequest) (*IssueResponse, error) {
	issue, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrIssueNotFound
		}
		return nil, fmt.Errorf("failed to get issue: %w", err)
	}

	if req.SprintID.Valid {
		if err := s.verifySprintInProject(req.SprintID.Value, issue.ProjectID); err != nil {
			return nil, err
		}
	}
	issue.SprintID = req.SprintID.Ptr()

	if err := s.repo.Update(issue); err != nil {
		return nil, fmt.Errorf("failed to move issue: %w", err)
	}

	return s.toResponse(issue), nil
}

// Delete removes an issue
func (s *IssueService) Delete(id int64) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrIssueNotFound
		}
		return fmt.Errorf("failed to delete issue: %w", err)
	}
	return nil
}

func (s *IssueService) verifySprintInProject(sprintID, projectID int64) error {
	sprint, err := s.sprintRepo.GetByID(sprintID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrSprintNotFound
		}
		return fmt.Errorf("failed to verify sprint: %w", err)
	}
	if sprint.ProjectID != projectID {
		return apperrors.NewValidationError("sprint_id", "sprint belongs to a different project")
	}
	return nil
}

func (s *IssueService) verifyUser(userID int64) error {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to verify user: %w", err)
	}
	return nil
}

func (s *IssueService) toResponse(issue *models.Issue) *IssueResponse {
	return &IssueResponse{
		ID:            issue.ID,
		ProjectID:     issue.ProjectID,
		SprintID:      issue.SprintID,
		AssigneeID:    issue.AssigneeID,
		CreatorID:     issue.CreatorID,
		Key:           issue.Key,
		Title:         issue.Title,
		Description:   issue.Description,
		Type:          issue.Type,
		Priority:      issue.Priority,
		Status:        issue.Status,
		EstimateHours: issue.EstimateHours,
		ActualHours:   issue.ActualHours,
		Order:         issue.Order,
		CreatedAt:     issue.CreatedAt.Format(timeFormat),
		UpdatedAt:     issue.UpdatedAt.Format(timeFormat),
	}
}
