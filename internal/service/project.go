package service

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"devflow-backend/internal/database/models"
	apperrors "devflow-backend/internal/errors"
	"devflow-backend/internal/query"
	"devflow-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// projectKeyPattern requires a leading letter so issue keys like WEB-12
// never start with a digit.
var projectKeyPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*$`)

// ProjectService handles business logic for projects
type ProjectService struct {
	repo      *repository.ProjectRepository
	teamRepo  *repository.TeamRepository
	validator *validator.Validate
}

// NewProjectService creates a new project service
func NewProjectService(repo *repository.ProjectRepository, teamRepo *repository.TeamRepository, validator *validator.Validate) *ProjectService {
	return &ProjectService{repo: repo, teamRepo: teamRepo, validator: validator}
}

// CreateProjectRequest represents the request to create a project
type CreateProjectRequest struct {
	TeamID           int64                `json:"team_id" validate:"required"`
	Name             string               `json:"name" validate:"required,min=1,max=200"`
	Key              string               `json:"key" validate:"required,min=2,max=10"`
	Description      string               `json:"description"`
	Status           models.ProjectStatus `json:"status" validate:"omitempty,oneof=planning active on_hold completed archived"`
	RepositoryURL    string               `json:"repository_url" validate:"omitempty,url"`
	DocumentationURL string               `json:"documentation_url" validate:"omitempty,url"`
	IconURL          string               `json:"icon_url" validate:"omitempty,url"`
	Color            string               `json:"color" validate:"omitempty,hexcolor"`
}

// UpdateProjectRequest represents a partial update to a project
type UpdateProjectRequest struct {
	Name             Nullable[string]               `json:"name"`
	Description      Nullable[string]               `json:"description"`
	Status           Nullable[models.ProjectStatus] `json:"status"`
	RepositoryURL    Nullable[string]               `json:"repository_url"`
	DocumentationURL Nullable[string]               `json:"documentation_url"`
	IconURL          Nullable[string]               `json:"icon_url"`
	Color            Nullable[string]               `json:"color"`
}

// ProjectResponse represents the response for project operations
type ProjectResponse struct {
	ID               int64                `json:"id"`
	TeamID           int64                `json:"team_id"`
	Name             string               `json:"name"`
	Key              string               `json:"key"`
	Description      string               `json:"description,omitempty"`
	Status           models.ProjectStatus `json:"status"`
	RepositoryURL    string               `json:"repository_url,omitempty"`
	DocumentationURL string               `json:"documentation_url,omitempty"`
	IconURL          string               `json:"icon_url,omitempty"`
	Color            string               `json:"color,omitempty"`
	CreatedAt        string               `json:"created_at"`
	UpdatedAt        string               `json:"updated_at"`
}

// ListProjectsFilter carries the query parameters for listing projects
type ListProjectsFilter struct {
	TeamID    *int64
	Status    *models.ProjectStatus
	Search    string
	SortBy    string
	SortOrder string
	Page      query.Params
}

// Create creates a new project under a team. The key is stored uppercase
// and becomes the prefix of the project's issue keys.
func (s *ProjectService) Create(req *CreateProjectRequest) (*ProjectResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !projectKeyPattern.MatchString(req.Key) {
		return nil, apperrors.NewValidationError("key", "key must start with a letter and contain only letters and digits")
	}

	if _, err := s.teamRepo.GetByID(req.TeamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to verify team: %w", err)
	}

	key := strings.ToUpper(req.Key)
	exists, err := s.repo.KeyExists(key)
	if err != nil {
		return nil, fmt.Errorf("failed to check project key: %w", err)
	}
	if exists {
		return nil, apperrors.ErrProjectExists
	}

	status := req.Status
	if status == "" {
		status = models.ProjectStatusPlanning
	}

	project := &models.Project{
		TeamID:           req.TeamID,
		Name:             req.Name,
		Key:              key,
		Description:      req.Description,
		Status:           status,
		RepositoryURL:    req.RepositoryURL,
		DocumentationURL: req.DocumentationURL,
		IconURL:          req.IconURL,
		Color:            req.Color,
	}

	if err := s.repo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return s.toResponse(project), nil
}

// GetByID retrieves a project by ID
func (s *ProjectService) GetByID(id int64) (*ProjectResponse, error) {
	project, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return s.toResponse(project), nil
}

// GetByKey retrieves a project by its short key
func (s *ProjectService) GetByKey(key string) (*ProjectResponse, error) {
	project, err := s.repo.GetByKey(strings.ToUpper(key))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return s.toResponse(project), nil
}

// List retrieves projects with filtering, search, and pagination
func (s *ProjectService) List(filter *ListProjectsFilter) (*query.Page[ProjectResponse], error) {
	builder, err := query.NewBuilder(s.repo.DB(), &models.Project{})
	if err != nil {
		return nil, fmt.Errorf("failed to build project query: %w", err)
	}

	builder.
		Filter("team_id", filter.TeamID).
		Filter("status", filter.Status).
		Search(filter.Search, "name", "key", "description").
		Sort(filter.SortBy, filter.SortOrder)

	page, err := query.Paginate[models.Project](builder.DB(), filter.Page)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	return mapPage(page, func(p *models.Project) ProjectResponse { return *s.toResponse(p) }), nil
}

// ListByTeam retrieves a team's projects with pagination
func (s *ProjectService) ListByTeam(teamID int64, params query.Params) (*query.Page[ProjectResponse], error) {
	exists, err := s.teamRepo.Exists(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify team: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrTeamNotFound
	}

	params.Normalize()
	projects, total, err := s.repo.GetByTeamID(teamID, params.PageSize, params.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list team projects: %w", err)
	}

	items := make([]ProjectResponse, len(projects))
	for i := range projects {
		items[i] = *s.toResponse(&projects[i])
	}
	return query.NewPage(items, total, params), nil
}

// Update applies a partial update to a project. The key is immutable
// because issued keys reference it.
func (s *ProjectService) Update(id int64, req *UpdateProjectRequest) (*ProjectResponse, error) {
	project, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	if req.Name.Set && req.Name.Valid {
		project.Name = req.Name.Value
	}
	if req.Description.Set {
		project.Description = req.Description.Value
	}
	if req.Status.Set && req.Status.Valid {
		if !req.Status.Value.IsValid() {
			return nil, apperrors.NewValidationError("status", "invalid project status")
		}
		project.Status = req.Status.Value
	}
	if req.RepositoryURL.Set {
		project.RepositoryURL = req.RepositoryURL.Value
	}
	if req.DocumentationURL.Set {
		project.DocumentationURL = req.DocumentationURL.Value
	}
	if req.IconURL.Set {
		project.IconURL = req.IconURL.Value
	}
	if req.Color.Set {
		project.Color = req.Color.Value
	}

	if err := s.repo.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return s.toResponse(project), nil
}

// UpdateStatus changes only the project's status
func (s *ProjectService) UpdateStatus(id int64, status models.ProjectStatus) (*ProjectResponse, error) {
	if !status.IsValid() {
		return nil, apperrors.NewValidationError("status", "invalid project status")
	}

	project, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	project.Status = status
	if err := s.repo.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update project status: %w", err)
	}

	return s.toResponse(project), nil
}

// Delete removes a project and cascades to its sprints and issues
func (s *ProjectService) Delete(id int64) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProjectNotFound
		}
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

func (s *ProjectService) toResponse(project *models.Project) *ProjectResponse {
	return &ProjectResponse{
		ID:               project.ID,
		TeamID:           project.TeamID,
		Name:             project.Name,
		Key:              project.Key,
		Description:      project.Description,
		Status:           project.Status,
		RepositoryURL:    project.RepositoryURL,
		DocumentationURL: project.DocumentationURL,
		IconURL:          project.IconURL,
		Color:            project.Color,
		CreatedAt:        project.CreatedAt.Format(timeFormat),
		UpdatedAt:        project.UpdatedAt.Format(timeFormat),
	}
}
