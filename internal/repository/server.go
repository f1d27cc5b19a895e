package repository

import (
	"devflow-backend/internal/database/models"

	"gorm.io/gorm"
)

// ServerRepository handles database operations for servers
type ServerRepository struct {
	Repository[models.Server]
}

// NewServerRepository creates a new server repository
func NewServerRepository(db *gorm.DB) *ServerRepository {
	return &ServerRepository{Repository: NewRepository[models.Server](db)}
}

// GetByHostname retrieves a server by its hostname
func (r *ServerRepository) GetByHostname(hostname string) (*models.Server, error) {
	var server models.Server
	err := r.db.First(&server, "hostname = ?", hostname).Error
	if err != nil {
		return nil, err
	}
	return &server, nil
}

// GetWithServices retrieves a server with its services preloaded
func (r *ServerRepository) GetWithServices(id int64) (*models.Server, error) {
	var server models.Server
	err := r.db.Preload("Services").First(&server, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &server, nil
}

// NameOrHostnameExists reports whether a server already uses the name or hostname
func (r *ServerRepository) NameOrHostnameExists(name, hostname string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Server{}).
		Where("name = ? OR hostname = ?", name, hostname).
		Count(&count).Error
	return count > 0, err
}
