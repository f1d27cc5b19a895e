package repository

import (
	"devflow-backend/internal/database/models"

	"gorm.io/gorm"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	Repository[models.Project]
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{Repository: NewRepository[models.Project](db)}
}

// GetByKey retrieves a project by its short key
func (r *ProjectRepository) GetByKey(key string) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "key = ?", key).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetByTeamID retrieves all projects of a team with pagination
func (r *ProjectRepository) GetByTeamID(teamID int64, limit, offset int) ([]models.Project, int64, error) {
	var projects []models.Project
	var total int64

	base := r.db.Model(&models.Project{}).Where("team_id = ?", teamID)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := base.Limit(limit).Offset(offset).Find(&projects).Error
	if err != nil {
		return nil, 0, err
	}

	return projects, total, nil
}

// KeyExists reports whether a project with the given key exists
func (r *ProjectRepository) KeyExists(key string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Project{}).Where("key = ?", key).Count(&count).Error
	return count > 0, err
}
