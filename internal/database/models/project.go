package models

// ProjectStatus defines the lifecycle states of a project
type ProjectStatus string

const (
	ProjectStatusPlanning  ProjectStatus = "planning"
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusOnHold    ProjectStatus = "on_hold"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusArchived  ProjectStatus = "archived"
)

// IsValid checks if the ProjectStatus is valid
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusPlanning, ProjectStatusActive, ProjectStatusOnHold,
		ProjectStatusCompleted, ProjectStatusArchived:
		return true
	}
	return false
}

// Project belongs to a team and owns sprints and issues. Key is the uppercase
// prefix used when generating issue keys (e.g. PROJ-42).
type Project struct {
	BaseModel
	TeamID int64 `json:"team_id" gorm:"not null;index"`

	Name        string        `json:"name" gorm:"size:200;index;not null"`
	Key         string        `json:"key" gorm:"size:10;uniqueIndex;not null"`
	Description string        `json:"description,omitempty" gorm:"type:text"`
	Status      ProjectStatus `json:"status" gorm:"size:20;default:planning;index;not null"`

	RepositoryURL    string `json:"repository_url,omitempty" gorm:"size:500"`
	DocumentationURL string `json:"documentation_url,omitempty" gorm:"size:500"`
	IconURL          string `json:"icon_url,omitempty" gorm:"size:500"`
	Color            string `json:"color,omitempty" gorm:"size:7"`

	// Relationships
	Team    *Team    `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	Sprints []Sprint `json:"sprints,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Issues  []Issue  `json:"issues,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}
