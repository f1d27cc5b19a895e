package repository

import (
	"time"

	"devflow-backend/internal/database/models"

	"gorm.io/gorm"
)

// DeploymentRepository handles database operations for deployments
type DeploymentRepository struct {
	Repository[models.Deployment]
}

// NewDeploymentRepository creates a new deployment repository
func NewDeploymentRepository(db *gorm.DB) *DeploymentRepository {
	return &DeploymentRepository{Repository: NewRepository[models.Deployment](db)}
}

// GetByServiceID retrieves the deployment history of a service, newest first
func (r *DeploymentRepository) GetByServiceID(serviceID int64, limit, offset int) ([]models.Deployment, int64, error) {
	var deployments []models.Deployment
	var total int64

	base := r.db.Model(&models.Deployment{}).Where("service_id = ?", serviceID)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := base.Order("id DESC").Limit(limit).Offset(offset).Find(&deployments).Error
	if err != nil {
		return nil, 0, err
	}

	return deployments, total, nil
}

// GetLatestSuccessful retrieves the most recent successful deployment of a service
func (r *DeploymentRepository) GetLatestSuccessful(serviceID int64) (*models.Deployment, error) {
	var deployment models.Deployment
	err := r.db.
		Where("service_id = ? AND status = ?", serviceID, models.DeploymentStatusSuccess).
		Order("id DESC").
		First(&deployment).Error
	if err != nil {
		return nil, err
	}
	return &deployment, nil
}

// GetRecent retrieves the most recent deployments across all services
func (r *DeploymentRepository) GetRecent(limit int) ([]models.Deployment, error) {
	var deployments []models.Deployment
	err := r.db.Order("id DESC").Limit(limit).Find(&deployments).Error
	if err != nil {
		return nil, err
	}
	return deployments, nil
}

// CountByStatusSince counts deployments per status created after the cutoff
func (r *DeploymentRepository) CountByStatusSince(cutoff time.Time) (map[models.DeploymentStatus]int64, error) {
	type row struct {
		Status models.DeploymentStatus
		Count  int64
	}
	var rows []row
	err := r.db.Model(&models.Deployment{}).
		Select("status, COUNT(*) AS count").
		Where("created_at >= ?", cutoff).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.DeploymentStatus]int64, len(rows))
	for _, rw := range rows {
		counts[rw.Status] = rw.Count
	}
	return counts, nil
}
