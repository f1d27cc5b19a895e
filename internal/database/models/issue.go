package models

// IssueType classifies the kind of work an issue tracks
type IssueType string

const (
	IssueTypeTask        IssueType = "task"
	IssueTypeBug         IssueType = "bug"
	IssueTypeFeature     IssueType = "feature"
	IssueTypeImprovement IssueType = "improvement"
	IssueTypeEpic        IssueType = "epic"
)

// IssuePriority orders issues by urgency
type IssuePriority string

const (
	IssuePriorityLowest  IssuePriority = "lowest"
	IssuePriorityLow     IssuePriority = "low"
	IssuePriorityMedium  IssuePriority = "medium"
	IssuePriorityHigh    IssuePriority = "high"
	IssuePriorityHighest IssuePriority = "highest"
)

// IssueStatus defines the workflow states of an issue
type IssueStatus string

const (
	IssueStatusTodo       IssueStatus = "todo"
	IssueStatusInProgress IssueStatus = "in_progress"
	IssueStatusInReview   IssueStatus = "in_review"
	IssueStatusTesting    IssueStatus = "testing"
	IssueStatusDone       IssueStatus = "done"
	IssueStatusClosed     IssueStatus = "closed"
)

// IsValid checks if the IssueType is valid
func (t IssueType) IsValid() bool {
	switch t {
	case IssueTypeTask, IssueTypeBug, IssueTypeFeature, IssueTypeImprovement, IssueTypeEpic:
		return true
	}
	return false
}

// IsValid checks if the IssuePriority is valid
func (p IssuePriority) IsValid() bool {
	switch p {
	case IssuePriorityLowest, IssuePriorityLow, IssuePriorityMedium, IssuePriorityHigh, IssuePriorityHighest:
		return true
	}
	return false
}

// IsValid checks if the IssueStatus is valid
func (s IssueStatus) IsValid() bool {
	switch s {
	case IssueStatusTodo, IssueStatusInProgress, IssueStatusInReview,
		IssueStatusTesting, IssueStatusDone, IssueStatusClosed:
		return true
	}
	return false
}

// Issue is a unit of work within a project. SprintID nil means the issue sits
// in the project backlog.
type Issue struct {
	BaseModel
	ProjectID  int64  `json:"project_id" gorm:"not null;index"`
	SprintID   *int64 `json:"sprint_id,omitempty" gorm:"index"`
	AssigneeID *int64 `json:"assignee_id,omitempty" gorm:"index"`
	CreatorID  int64  `json:"creator_id" gorm:"not null"`

	Key         string `json:"key" gorm:"size:20;uniqueIndex;not null"`
	Title       string `json:"title" gorm:"size:500;not null"`
	Description string `json:"description,omitempty" gorm:"type:text"`

	Type     IssueType     `json:"type" gorm:"size:20;default:task;index;not null"`
	Priority IssuePriority `json:"priority" gorm:"size:20;default:medium;index;not null"`
	Status   IssueStatus   `json:"status" gorm:"size:20;default:todo;index;not null"`

	EstimateHours *int `json:"estimate_hours,omitempty"`
	ActualHours   *int `json:"actual_hours,omitempty"`

	// Manual ranking within project/sprint/backlog views
	Order int `json:"order" gorm:"column:sort_order;default:0;not null"`

	// Relationships
	Project  *Project `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Sprint   *Sprint  `json:"sprint,omitempty" gorm:"foreignKey:SprintID;constraint:OnDelete:SET NULL"`
	Assignee *User    `json:"assignee,omitempty" gorm:"foreignKey:AssigneeID;constraint:OnDelete:SET NULL"`
	Creator  *User    `json:"creator,omitempty" gorm:"foreignKey:CreatorID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Issue
func (Issue) TableName() string {
	return "issues"
}
