package models

import "time"

// DeploymentStatus defines the lifecycle states of a deployment
type DeploymentStatus string

const (
	DeploymentStatusPending    DeploymentStatus = "pending"
	DeploymentStatusInProgress DeploymentStatus = "in_progress"
	DeploymentStatusSuccess    DeploymentStatus = "success"
	DeploymentStatusFailed     DeploymentStatus = "failed"
	DeploymentStatusRolledBack DeploymentStatus = "rolled_back"
)

// DeploymentType distinguishes how a deployment was triggered
type DeploymentType string

const (
	DeploymentTypeManual    DeploymentType = "manual"
	DeploymentTypeAutomatic DeploymentType = "automatic"
	DeploymentTypeRollback  DeploymentType = "rollback"
)

// IsValid checks if the DeploymentStatus is valid
func (s DeploymentStatus) IsValid() bool {
	switch s {
	case DeploymentStatusPending, DeploymentStatusInProgress, DeploymentStatusSuccess,
		DeploymentStatusFailed, DeploymentStatusRolledBack:
		return true
	}
	return false
}

// IsTerminal reports whether the status ends a deployment's lifecycle.
func (s DeploymentStatus) IsTerminal() bool {
	switch s {
	case DeploymentStatusSuccess, DeploymentStatusFailed, DeploymentStatusRolledBack:
		return true
	}
	return false
}

// IsValid checks if the DeploymentType is valid
func (t DeploymentType) IsValid() bool {
	switch t {
	case DeploymentTypeManual, DeploymentTypeAutomatic, DeploymentTypeRollback:
		return true
	}
	return false
}

// Deployment records one deployment of a service. A rollback is a new
// Deployment of type rollback whose RollbackFromID points at the successful
// deployment it replays; the target row is never mutated.
type Deployment struct {
	BaseModel
	ServiceID  int64  `json:"service_id" gorm:"not null;index"`
	DeployedBy *int64 `json:"deployed_by,omitempty" gorm:"index"`

	Version    string `json:"version" gorm:"size:50;not null"`
	CommitHash string `json:"commit_hash,omitempty" gorm:"size:40"`
	Branch     string `json:"branch,omitempty" gorm:"size:100"`
	Tag        string `json:"tag,omitempty" gorm:"size:100"`

	Type   DeploymentType   `json:"type" gorm:"size:20;default:manual;not null"`
	Status DeploymentStatus `json:"status" gorm:"size:20;default:pending;index;not null"`

	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	Environment string `json:"environment" gorm:"size:50;index;not null"`

	RollbackFromID *int64 `json:"rollback_from_id,omitempty"`

	Notes        string `json:"notes,omitempty" gorm:"type:text"`
	ErrorMessage string `json:"error_message,omitempty" gorm:"type:text"`
	LogURL       string `json:"log_url,omitempty" gorm:"size:500"`

	// Relationships
	Service        *Service    `json:"service,omitempty" gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`
	DeployedByUser *User       `json:"deployed_by_user,omitempty" gorm:"foreignKey:DeployedBy;constraint:OnDelete:SET NULL"`
	RollbackFrom   *Deployment `json:"rollback_from,omitempty" gorm:"foreignKey:RollbackFromID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Deployment
func (Deployment) TableName() string {
	return "deployments"
}
