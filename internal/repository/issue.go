package repository

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"devflow-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// IssueRepository handles database operations for issues
type IssueRepository struct {
	Repository[models.Issue]
}

// NewIssueRepository creates a new issue repository
func NewIssueRepository(db *gorm.DB) *IssueRepository {
	return &IssueRepository{Repository: NewRepository[models.Issue](db)}
}

// GetByKey retrieves an issue by its human-readable key
func (r *IssueRepository) GetByKey(key string) (*models.Issue, error) {
	var issue models.Issue
	err := r.db.First(&issue, "key = ?", key).Error
	if err != nil {
		return nil, err
	}
	return &issue, nil
}

// GetByProjectID retrieves all issues of a project with pagination
func (r *IssueRepository) GetByProjectID(projectID int64, limit, offset int) ([]models.Issue, int64, error) {
	var issues []models.Issue
	var total int64

	base := r.db.Model(&models.Issue{}).Where("project_id = ?", projectID)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := base.Order("sort_order ASC, id ASC").Limit(limit).Offset(offset).Find(&issues).Error
	if err != nil {
		return nil, 0, err
	}

	return issues, total, nil
}

// GetBacklog retrieves the issues of a project that are not in any sprint
func (r *IssueRepository) GetBacklog(projectID int64, limit, offset int) ([]models.Issue, int64, error) {
	var issues []models.Issue
	var total int64

	base := r.db.Model(&models.Issue{}).Where("project_id = ? AND sprint_id IS NULL", projectID)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := base.Order("sort_order ASC, id ASC").Limit(limit).Offset(offset).Find(&issues).Error
	if err != nil {
		return nil, 0, err
	}

	return issues, total, nil
}

// CreateWithKey assigns the next key in the project's sequence and inserts
// the issue. The project row is locked for the duration of the transaction
// so two concurrent creates cannot draw the same number.
func (r *IssueRepository) CreateWithKey(issue *models.Issue) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var project models.Project
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&project, "id = ?", issue.ProjectID).Error
		if err != nil {
			return err
		}

		number, err := nextIssueNumber(tx, &project)
		if err != nil {
			return err
		}

		issue.Key = fmt.Sprintf("%s-%d", strings.ToUpper(project.Key), number)
		return tx.Create(issue).Error
	})
}

// nextIssueNumber derives the next sequence number from the most recently
// created issue's key. Keys that do not parse fall back to count+1.
func nextIssueNumber(tx *gorm.DB, project *models.Project) (int, error) {
	var last models.Issue
	err := tx.Where("project_id = ?", project.ID).Order("id DESC").First(&last).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 1, nil
		}
		return 0, err
	}

	if idx := strings.LastIndex(last.Key, "-"); idx >= 0 {
		if n, err := strconv.Atoi(last.Key[idx+1:]); err == nil {
			return n + 1, nil
		}
	}

	var count int64
	if err := tx.Model(&models.Issue{}).Where("project_id = ?", project.ID).Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count) + 1, nil
}
