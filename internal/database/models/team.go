package models

// TeamRole defines a member's role within a team
type TeamRole string

const (
	TeamRoleOwner  TeamRole = "owner"
	TeamRoleAdmin  TeamRole = "admin"
	TeamRoleMember TeamRole = "member"
	TeamRoleViewer TeamRole = "viewer"
)

// IsValid checks if the TeamRole is valid
func (r TeamRole) IsValid() bool {
	switch r {
	case TeamRoleOwner, TeamRoleAdmin, TeamRoleMember, TeamRoleViewer:
		return true
	}
	return false
}

// Team is a collaborative unit owning projects and members.
type Team struct {
	BaseModel
	Name        string `json:"name" gorm:"size:100;uniqueIndex;not null"`
	Slug        string `json:"slug" gorm:"size:100;uniqueIndex;not null"`
	Description string `json:"description,omitempty" gorm:"size:500"`
	AvatarURL   string `json:"avatar_url,omitempty" gorm:"size:500"`

	// Relationships
	Members  []TeamMember `json:"members,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	Projects []Project    `json:"projects,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}

// TeamMember joins a user to a team with a role.
type TeamMember struct {
	BaseModel
	TeamID int64    `json:"team_id" gorm:"not null;index"`
	UserID int64    `json:"user_id" gorm:"not null;index"`
	Role   TeamRole `json:"role" gorm:"size:20;default:member;not null"`

	// Relationships
	Team *Team `json:"team,omitempty" gorm:"foreignKey:TeamID"`
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TeamMember
func (TeamMember) TableName() string {
	return "team_members"
}
