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

// UserService handles business logic for users
type UserService struct {
	repo      *repository.UserRepository
	validator *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(repo *repository.UserRepository, validator *validator.Validate) *UserService {
	return &UserService{repo: repo, validator: validator}
}

// UpdateUserRequest represents a partial update to the current user's profile
type UpdateUserRequest struct {
	FullName  Nullable[string] `json:"full_name"`
	AvatarURL Nullable[string] `json:"avatar_url"`
	Phone     Nullable[string] `json:"phone"`
}

// UserResponse represents the response for user operations
type UserResponse struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	FullName  string `json:"full_name,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Phone     string `json:"phone,omitempty"`
	IsActive  bool   `json:"is_active"`
	IsAdmin   bool   `json:"is_admin"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ListUsersFilter carries the query parameters for listing users
type ListUsersFilter struct {
	Search    string
	IsActive  *bool
	IsAdmin   *bool
	SortBy    string
	SortOrder string
	Page      query.Params
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(id int64) (*UserResponse, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return s.toResponse(user), nil
}

// List retrieves users with filtering, search, and pagination
func (s *UserService) List(filter *ListUsersFilter) (*query.Page[UserResponse], error) {
	builder, err := query.NewBuilder(s.repo.DB(), &models.User{})
	if err != nil {
		return nil, fmt.Errorf("failed to build user query: %w", err)
	}

	builder.
		Filter("is_active", filter.IsActive).
		Filter("is_admin", filter.IsAdmin).
		Search(filter.Search, "username", "email", "full_name").
		Sort(filter.SortBy, filter.SortOrder)

	page, err := query.Paginate[models.User](builder.DB(), filter.Page)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return mapPage(page, func(u *models.User) UserResponse { return *s.toResponse(u) }), nil
}

// Update applies a partial update to a user's profile
func (s *UserService) Update(id int64, req *UpdateUserRequest) (*UserResponse, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if req.FullName.Set {
		user.FullName = req.FullName.Value
	}
	if req.AvatarURL.Set {
		user.AvatarURL = req.AvatarURL.Value
	}
	if req.Phone.Set {
		user.Phone = req.Phone.Value
	}

	if err := s.repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return s.toResponse(user), nil
}

// Deactivate marks a user account as inactive
func (s *UserService) Deactivate(id int64) error {
	err := s.repo.UpdateFields(id, map[string]interface{}{"is_active": false})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to deactivate user: %w", err)
	}
	return nil
}

func (s *UserService) toResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		FullName:  user.FullName,
		AvatarURL: user.AvatarURL,
		Phone:     user.Phone,
		IsActive:  user.IsActive,
		IsAdmin:   user.IsAdmin,
		CreatedAt: user.CreatedAt.Format(timeFormat),
		UpdatedAt: user.UpdatedAt.Format(timeFormat),
	}
}
