package repository

import (
	"devflow-backend/internal/database/models"

	"gorm.io/gorm"
)

// ServiceRepository handles database operations for services
type ServiceRepository struct {
	Repository[models.Service]
}

// NewServiceRepository creates a new service repository
func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{Repository: NewRepository[models.Service](db)}
}

// GetByServerID retrieves all services on a server with pagination
func (r *ServiceRepository) GetByServerID(serverID int64, limit, offset int) ([]models.Service, int64, error) {
	var services []models.Service
	var total int64

	base := r.db.Model(&models.Service{}).Where("server_id = ?", serverID)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := base.Limit(limit).Offset(offset).Find(&services).Error
	if err != nil {
		return nil, 0, err
	}

	return services, total, nil
}

// GetWithDeployments retrieves a service with its deployment history preloaded
func (r *ServiceRepository) GetWithDeployments(id int64) (*models.Service, error) {
	var service models.Service
	err := r.db.Preload("Deployments", func(db *gorm.DB) *gorm.DB {
		return db.Order("id DESC")
	}).First(&service, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &service, nil
}

// CountByStatus returns a status to count map for all services
func (r *ServiceRepository) CountByStatus() (map[models.ServiceStatus]int64, error) {
	type row struct {
		Status models.ServiceStatus
		Count  int64
	}
	var rows []row
	err := r.db.Model(&models.Service{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.ServiceStatus]int64, len(rows))
	for _, rw := range rows {
		counts[rw.Status] = rw.Count
	}
	return counts, nil
}
