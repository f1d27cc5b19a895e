package models

// User is a local account synced from the Authentik SSO provider. The local
// record carries no credentials; Authentik remains the source of truth for
// identity.
type User struct {
	BaseModel
	AuthentikID string `json:"authentik_id" gorm:"size:255;uniqueIndex;not null"`
	Email       string `json:"email" gorm:"size:255;uniqueIndex;not null"`
	Username    string `json:"username" gorm:"size:100;uniqueIndex;not null"`
	FullName    string `json:"full_name,omitempty" gorm:"size:200"`
	AvatarURL   string `json:"avatar_url,omitempty" gorm:"size:500"`
	Phone       string `json:"phone,omitempty" gorm:"size:20"`
	IsActive    bool   `json:"is_active" gorm:"default:true"`
	IsAdmin     bool   `json:"is_admin" gorm:"default:false"`

	// Relationships
	TeamMemberships []TeamMember `json:"team_memberships,omitempty" gorm:"foreignKey:UserID"`
	AssignedIssues  []Issue      `json:"assigned_issues,omitempty" gorm:"foreignKey:AssigneeID"`
	CreatedIssues   []Issue      `json:"created_issues,omitempty" gorm:"foreignKey:CreatorID"`
	Deployments     []Deployment `json:"deployments,omitempty" gorm:"foreignKey:DeployedBy"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
