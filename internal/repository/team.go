package repository

import (
	"devflow-backend/internal/database/models"

	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams and their members
type TeamRepository struct {
	Repository[models.Team]
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{Repository: NewRepository[models.Team](db)}
}

// GetBySlug retrieves a team by its URL slug
func (r *TeamRepository) GetBySlug(slug string) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "slug = ?", slug).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// NameOrSlugExists reports whether a team already uses the name or slug
func (r *TeamRepository) NameOrSlugExists(name, slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Team{}).
		Where("name = ? OR slug = ?", name, slug).
		Count(&count).Error
	return count > 0, err
}

// GetWithMembers retrieves a team with its member list preloaded
func (r *TeamRepository) GetWithMembers(id int64) (*models.Team, error) {
	var team models.Team
	err := r.db.Preload("Members").Preload("Members.User").First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetUserTeams retrieves the teams a user belongs to
func (r *TeamRepository) GetUserTeams(userID int64) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.
		Joins("JOIN team_members ON team_members.team_id = teams.id").
		Where("team_members.user_id = ?", userID).
		Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}

// AddMember adds a user to a team with the given role
func (r *TeamRepository) AddMember(member *models.TeamMember) error {
	return r.db.Create(member).Error
}

// GetMember retrieves a team membership
func (r *TeamRepository) GetMember(teamID, userID int64) (*models.TeamMember, error) {
	var member models.TeamMember
	err := r.db.First(&member, "team_id = ? AND user_id = ?", teamID, userID).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetMembers retrieves all memberships of a team with users preloaded
func (r *TeamRepository) GetMembers(teamID int64) ([]models.TeamMember, error) {
	var members []models.TeamMember
	err := r.db.Preload("User").Where("team_id = ?", teamID).Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

// RemoveMember removes a user from a team
func (r *TeamRepository) RemoveMember(teamID, userID int64) error {
	result := r.db.Delete(&models.TeamMember{}, "team_id = ? AND user_id = ?", teamID, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateMemberRole changes the role of a team member
func (r *TeamRepository) UpdateMemberRole(teamID, userID int64, role models.TeamRole) error {
	result := r.db.Model(&models.TeamMember{}).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		Update("role", role)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// HasRole reports whether the user holds one of the given roles in the team
func (r *TeamRepository) HasRole(teamID, userID int64, roles ...models.TeamRole) (bool, error) {
	var count int64
	err := r.db.Model(&models.TeamMember{}).
		Where("team_id = ? AND user_id = ? AND role IN ?", teamID, userID, roles).
		Count(&count).Error
	return count > 0, err
}

// IsMember reports whether the user belongs to the team
func (r *TeamRepository) IsMember(teamID, userID int64) (bool, error) {
	var count int64
	err := r.db.Model(&models.TeamMember{}).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		Count(&count).Error
	return count > 0, err
}
