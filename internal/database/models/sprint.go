package models

import "time"

// SprintStatus defines the lifecycle states of a sprint
type SprintStatus string

const (
	SprintStatusPlanned   SprintStatus = "planned"
	SprintStatusActive    SprintStatus = "active"
	SprintStatusCompleted SprintStatus = "completed"
	SprintStatusCancelled SprintStatus = "cancelled"
)

// IsValid checks if the SprintStatus is valid
func (s SprintStatus) IsValid() bool {
	switch s {
	case SprintStatusPlanned, SprintStatusActive, SprintStatusCompleted, SprintStatusCancelled:
		return true
	}
	return false
}

// Sprint is a time-boxed iteration within a project. A project may have at
// most one sprint in active status at a time; the guard lives at the
// transition boundary, not in the schema.
type Sprint struct {
	BaseModel
	ProjectID int64 `json:"project_id" gorm:"not null;index"`

	Name string `json:"name" gorm:"size:200;not null"`
	Goal string `json:"goal,omitempty" gorm:"type:text"`

	StartDate *time.Time `json:"start_date,omitempty" gorm:"type:date"`
	EndDate   *time.Time `json:"end_date,omitempty" gorm:"type:date"`

	Status SprintStatus `json:"status" gorm:"size:20;default:planned;index;not null"`

	// Relationships
	Project *Project `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Issues  []Issue  `json:"issues,omitempty" gorm:"foreignKey:SprintID"`
}

// TableName returns the table name for Sprint
func (Sprint) TableName() string {
	return "sprints"
}
