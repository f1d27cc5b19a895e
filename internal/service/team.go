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

// TeamService handles business logic for teams and team membership
type TeamService struct {
	repo      *repository.TeamRepository
	userRepo  *repository.UserRepository
	validator *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(repo *repository.TeamRepository, userRepo *repository.UserRepository, validator *validator.Validate) *TeamService {
	return &TeamService{repo: repo, userRepo: userRepo, validator: validator}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Slug        string `json:"slug" validate:"required,min=1,max=100,lowercase"`
	Description string `json:"description"`
	AvatarURL   string `json:"avatar_url" validate:"omitempty,url"`
}

// UpdateTeamRequest represents a partial update to a team
type UpdateTeamRequest struct {
	Name        Nullable[string] `json:"name"`
	Description Nullable[string] `json:"description"`
	AvatarURL   Nullable[string] `json:"avatar_url"`
}

// AddMemberRequest represents the request to add a user to a team
type AddMemberRequest struct {
	UserID int64           `json:"user_id" validate:"required"`
	Role   models.TeamRole `json:"role" validate:"omitempty,oneof=owner admin member viewer"`
}

// UpdateMemberRoleRequest represents the request to change a member's role
type UpdateMemberRoleRequest struct {
	Role models.TeamRole `json:"role" validate:"required,oneof=owner admin member viewer"`
}

// TeamResponse represents the response for team operations
type TeamResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	AvatarURL   string `json:"avatar_url,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// TeamMemberResponse represents a team membership with the user embedded
type TeamMemberResponse struct {
	UserID   int64           `json:"user_id"`
	Username string          `json:"username"`
	Email    string          `json:"email"`
	FullName string          `json:"full_name,omitempty"`
	Role     models.TeamRole `json:"role"`
	JoinedAt string          `json:"joined_at"`
}

// TeamWithMembersResponse represents a team with its member list
type TeamWithMembersResponse struct {
	TeamResponse
	Members []TeamMemberResponse `json:"members"`
}

// ListTeamsFilter carries the query parameters for listing teams
type ListTeamsFilter struct {
	Search    string
	SortBy    string
	SortOrder string
	Page      query.Params
}

// Create creates a new team and makes the creator its owner
func (s *TeamService) Create(creatorID int64, req *CreateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	exists, err := s.repo.NameOrSlugExists(req.Name, req.Slug)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing team: %w", err)
	}
	if exists {
		return nil, apperrors.ErrTeamExists
	}

	team := &models.Team{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		AvatarURL:   req.AvatarURL,
	}

	if err := s.repo.Create(team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	owner := &models.TeamMember{
		TeamID: team.ID,
		UserID: creatorID,
		Role:   models.TeamRoleOwner,
	}
	if err := s.repo.AddMember(owner); err != nil {
		return nil, fmt.Errorf("failed to add team owner: %w", err)
	}

	return s.toResponse(team), nil
}

// GetByID retrieves a team with its members
func (s *TeamService) GetByID(id int64) (*TeamWithMembersResponse, error) {
	team, err := s.repo.GetWithMembers(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	return s.toResponseWithMembers(team), nil
}

// GetBySlug retrieves a team by its URL slug
func (s *TeamService) GetBySlug(slug string) (*TeamResponse, error) {
	team, err := s.repo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return s.toResponse(team), nil
}

// ListMembers retrieves the members of a team
func (s *TeamService) ListMembers(teamID int64) ([]TeamMemberResponse, error) {
	if _, err := s.repo.GetByID(teamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	members, err := s.repo.GetMembers(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get team members: %w", err)
	}

	responses := make([]TeamMemberResponse, len(members))
	for i := range members {
		responses[i] = s.toMemberResponse(&members[i])
	}
	return responses, nil
}

// List retrieves teams with search and pagination
func (s *TeamService) List(filter *ListTeamsFilter) (*query.Page[TeamResponse], error) {
	builder, err := query.NewBuilder(s.repo.DB(), &models.Team{})
	if err != nil {
		return nil, fmt.Errorf("failed to build team query: %w", err)
	}

	builder.
		Search(filter.Search, "name", "slug", "description").
		Sort(filter.SortBy, filter.SortOrder)

	page, err := query.Paginate[models.Team](builder.DB(), filter.Page)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	return mapPage(page, func(t *models.Team) TeamResponse { return *s.toResponse(t) }), nil
}

// ListUserTeams retrieves the teams the given user belongs to
func (s *TeamService) ListUserTeams(userID int64) ([]TeamResponse, error) {
	teams, err := s.repo.GetUserTeams(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user teams: %w", err)
	}

	responses := make([]TeamResponse, len(teams))
	for i := range teams {
		responses[i] = *s.toResponse(&teams[i])
	}
	return responses, nil
}

// Update applies a partial update to a team. Requires owner or admin role.
func (s *TeamService) Update(id, actorID int64, req *UpdateTeamRequest) (*TeamResponse, error) {
	team, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	if err := s.requireRole(id, actorID, models.TeamRoleOwner, models.TeamRoleAdmin); err != nil {
		return nil, err
	}

	if req.Name.Set && req.Name.Valid {
		team.Name = req.Name.Value
	}
	if req.Description.Set {
		team.Description = req.Description.Value
	}
	if req.AvatarURL.Set {
		team.AvatarURL = req.AvatarURL.Value
	}

	if err := s.repo.Update(team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	return s.toResponse(team), nil
}

// Delete removes a team and cascades to its projects. Requires owner role.
func (s *TeamService) Delete(id, actorID int64) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to get team: %w", err)
	}

	if err := s.requireRole(id, actorID, models.TeamRoleOwner); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	return nil
}

// AddMember adds a user to a team. Requires owner or admin role.
func (s *TeamService) AddMember(teamID, actorID int64, req *AddMemberRequest) (*TeamMemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.repo.GetByID(teamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	if err := s.requireRole(teamID, actorID, models.TeamRoleOwner, models.TeamRoleAdmin); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	isMember, err := s.repo.IsMember(teamID, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if isMember {
		return nil, apperrors.ErrTeamMemberExists
	}

	role := req.Role
	if role == "" {
		role = models.TeamRoleMember
	}

	member := &models.TeamMember{
		TeamID: teamID,
		UserID: req.UserID,
		Role:   role,
	}
	if err := s.repo.AddMember(member); err != nil {
		return nil, fmt.Errorf("failed to add member: %w", err)
	}

	return &TeamMemberResponse{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		FullName: user.FullName,
		Role:     member.Role,
		JoinedAt: member.CreatedAt.Format(timeFormat),
	}, nil
}

// RemoveMember removes a user from a team. Requires owner or admin role.
// The team owner cannot be removed.
func (s *TeamService) RemoveMember(teamID, actorID, userID int64) error {
	member, err := s.repo.GetMember(teamID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamMemberNotFound
		}
		return fmt.Errorf("failed to get member: %w", err)
	}

	if err := s.requireRole(teamID, actorID, models.TeamRoleOwner, models.TeamRoleAdmin); err != nil {
		return err
	}

	if member.Role == models.TeamRoleOwner {
		return apperrors.NewValidationError("user_id", apperrors.ErrOwnerCannotBeRemoved.Error())
	}

	if err := s.repo.RemoveMember(teamID, userID); err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}
	return nil
}

// UpdateMemberRole changes a member's role. Requires owner role.
func (s *TeamService) UpdateMemberRole(teamID, actorID, userID int64, req *UpdateMemberRoleRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.repo.GetMember(teamID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamMemberNotFound
		}
		return fmt.Errorf("failed to get member: %w", err)
	}

	if err := s.requireRole(teamID, actorID, models.TeamRoleOwner); err != nil {
		return err
	}

	if err := s.repo.UpdateMemberRole(teamID, userID, req.Role); err != nil {
		return fmt.Errorf("failed to update member role: %w", err)
	}
	return nil
}

// requireRole rejects the action unless the actor holds one of the roles.
func (s *TeamService) requireRole(teamID, actorID int64, roles ...models.TeamRole) error {
	ok, err := s.repo.HasRole(teamID, actorID, roles...)
	if err != nil {
		return fmt.Errorf("failed to check role: %w", err)
	}
	if !ok {
		return apperrors.NewAuthorizationError("insufficient team role for this action")
	}
	return nil
}

func (s *TeamService) toResponse(team *models.Team) *TeamResponse {
	return &TeamResponse{
		ID:          team.ID,
		Name:        team.Name,
		Slug:        team.Slug,
		Description: team.Description,
		AvatarURL:   team.AvatarURL,
		CreatedAt:   team.CreatedAt.Format(timeFormat),
		UpdatedAt:   team.UpdatedAt.Format(timeFormat),
	}
}

func (s *TeamService) toResponseWithMembers(team *models.Team) *TeamWithMembersResponse {
	members := make([]TeamMemberResponse, len(team.Members))
	for i := range team.Members {
		members[i] = s.toMemberResponse(&team.Members[i])
	}
	return &TeamWithMembersResponse{
		TeamResponse: *s.toResponse(team),
		Members:      members,
	}
}

func (s *TeamService) toMemberResponse(m *models.TeamMember) TeamMemberResponse {
	resp := TeamMemberResponse{
		UserID:   m.UserID,
		Role:     m.Role,
		JoinedAt: m.CreatedAt.Format(timeFormat),
	}
	if m.User != nil {
		resp.Username = m.User.Username
		resp.Email = m.User.Email
		resp.FullName = m.User.FullName
	}
	return resp
}
