package repository

import (
	"devflow-backend/internal/database/models"

	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct {
	Repository[models.User]
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{Repository: NewRepository[models.User](db)}
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "username = ?", username).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByAuthentikID retrieves a user by the identity provider subject
func (r *UserRepository) GetByAuthentikID(authentikID string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "authentik_id = ?", authentikID).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Search retrieves users matching the query on username, email, or full name
func (r *UserRepository) Search(term string, limit, offset int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	pattern := "%" + term + "%"
	base := r.db.Model(&models.User{}).
		Where("username ILIKE ? OR email ILIKE ? OR full_name ILIKE ?", pattern, pattern, pattern)

	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := base.Limit(limit).Offset(offset).Find(&users).Error
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}
