package repository

import (
	"devflow-backend/internal/database/models"

	"gorm.io/gorm"
)

// SprintRepository handles database operations for sprints
type SprintRepository struct {
	Repository[models.Sprint]
}

// NewSprintRepository creates a new sprint repository
func NewSprintRepository(db *gorm.DB) *SprintRepository {
	return &SprintRepository{Repository: NewRepository[models.Sprint](db)}
}

// GetByProjectID retrieves all sprints of a project with pagination
func (r *SprintRepository) GetByProjectID(projectID int64, limit, offset int) ([]models.Sprint, int64, error) {
	var sprints []models.Sprint
	var total int64

	base := r.db.Model(&models.Sprint{}).Where("project_id = ?", projectID)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := base.Order("start_date DESC NULLS LAST, id DESC").Limit(limit).Offset(offset).Find(&sprints).Error
	if err != nil {
		return nil, 0, err
	}

	return sprints, total, nil
}

// GetActiveSprint retrieves the active sprint of a project, if any
func (r *SprintRepository) GetActiveSprint(projectID int64) (*models.Sprint, error) {
	var sprint models.Sprint
	err := r.db.First(&sprint, "project_id = ? AND status = ?", projectID, models.SprintStatusActive).Error
	if err != nil {
		return nil, err
	}
	return &sprint, nil
}

// HasActiveSprint reports whether the project already has an active sprint,
// excluding the given sprint ID so a sprint never conflicts with itself.
func (r *SprintRepository) HasActiveSprint(projectID, excludeSprintID int64) (bool, error) {
	var count int64
	err := r.db.Model(&models.Sprint{}).
		Where("project_id = ? AND status = ? AND id <> ?", projectID, models.SprintStatusActive, excludeSprintID).
		Count(&count).Error
	return count > 0, err
}

// GetWithIssues retrieves a sprint with its issues preloaded
func (r *SprintRepository) GetWithIssues(id int64) (*models.Sprint, error) {
	var sprint models.Sprint
	err := r.db.Preload("Issues").First(&sprint, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &sprint, nil
}
