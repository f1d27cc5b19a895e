package testutils

import (
	"fmt"
	"time"

	"devflow-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values. Unique fields get a
// UUID suffix so factories never collide within a test.
func (f *UserFactory) Create() *models.User {
	suffix := uuid.NewString()[:8]

	return &models.User{
		AuthentikID: "ak-" + suffix,
		Email:       fmt.Sprintf("user-%s@test.com", suffix),
		Username:    "user-" + suffix,
		FullName:    "Test User",
		IsActive:    true,
	}
}

// WithUsername sets a custom username and matching email
func (f *UserFactory) WithUsername(username string) *models.User {
	user := f.Create()
	user.Username = username
	user.Email = username + "@test.com"
	return user
}

// Admin creates an admin user
func (f *UserFactory) Admin() *models.User {
	user := f.Create()
	user.IsAdmin = true
	return user
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values
func (f *TeamFactory) Create() *models.Team {
	suffix := uuid.NewString()[:8]

	return &models.Team{
		Name:        "Team " + suffix,
		Slug:        "team-" + suffix,
		Description: "A test team",
	}
}

// TeamMemberFactory provides methods to create test TeamMember data
type TeamMemberFactory struct{}

// NewTeamMemberFactory creates a new TeamMemberFactory
func NewTeamMemberFactory() *TeamMemberFactory {
	return &TeamMemberFactory{}
}

// Create creates a membership linking a user to a team
func (f *TeamMemberFactory) Create(teamID, userID int64, role models.TeamRole) *models.TeamMember {
	return &models.TeamMember{
		TeamID: teamID,
		UserID: userID,
		Role:   role,
	}
}

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct{}

// NewProjectFactory creates a new ProjectFactory
func NewProjectFactory() *ProjectFactory {
	return &ProjectFactory{}
}

// Create creates a test Project under a team
func (f *ProjectFactory) Create(teamID int64) *models.Project {
	suffix := uuid.NewString()[:6]

	return &models.Project{
		TeamID:      teamID,
		Name:        "Project " + suffix,
		Key:         "P" + suffix[:4],
		Description: "A test project",
		Status:      models.ProjectStatusPlanning,
	}
}

// WithKey sets a custom project key
func (f *ProjectFactory) WithKey(teamID int64, key string) *models.Project {
	project := f.Create(teamID)
	project.Key = key
	return project
}

// SprintFactory provides methods to create test Sprint data
type SprintFactory struct{}

// NewSprintFactory creates a new SprintFactory
func NewSprintFactory() *SprintFactory {
	return &SprintFactory{}
}

// Create creates a planned two week sprint for a project
func (f *SprintFactory) Create(projectID int64) *models.Sprint {
	start := time.Now().Truncate(24 * time.Hour)
	end := start.AddDate(0, 0, 14)

	return &models.Sprint{
		ProjectID: projectID,
		Name:      "Sprint " + uuid.NewString()[:6],
		Goal:      "Ship the thing",
		StartDate: &start,
		EndDate:   &end,
		Status:    models.SprintStatusPlanned,
	}
}

// WithStatus creates a sprint in the given status
func (f *SprintFactory) WithStatus(projectID int64, status models.SprintStatus) *models.Sprint {
	sprint := f.Create(projectID)
	sprint.Status = status
	return sprint
}

// IssueFactory provides methods to create test Issue data
type IssueFactory struct{}

// NewIssueFactory creates a new IssueFactory
func NewIssueFactory() *IssueFactory {
	return &IssueFactory{}
}

// Create creates a test Issue. The key must be unique, so callers that
// insert directly (bypassing the key generator) pass their own.
func (f *IssueFactory) Create(projectID, creatorID int64, key string) *models.Issue {
	return &models.Issue{
		ProjectID:   projectID,
		CreatorID:   creatorID,
		Key:         key,
		Title:       "Test issue",
		Description: "Something to do",
		Type:        models.IssueTypeTask,
		Priority:    models.IssuePriorityMedium,
		Status:      models.IssueStatusTodo,
	}
}

// ServerFactory provides methods to create test Server data
type ServerFactory struct{}

// NewServerFactory creates a new ServerFactory
func NewServerFactory() *ServerFactory {
	return &ServerFactory{}
}

// Create creates a test Server with default values
func (f *ServerFactory) Create() *models.Server {
	suffix := uuid.NewString()[:8]

	return &models.Server{
		Name:        "server-" + suffix,
		Hostname:    fmt.Sprintf("host-%s.test.local", suffix),
		IPAddress:   "10.0.0.1",
		Type:        models.ServerTypeVirtual,
		Status:      models.ServerStatusActive,
		Environment: "staging",
		SSHPort:     22,
	}
}

// ServiceFactory provides methods to create test Service data
type ServiceFactory struct{}

// NewServiceFactory creates a new ServiceFactory
func NewServiceFactory() *ServiceFactory {
	return &ServiceFactory{}
}

// Create creates a test Service on a server
func (f *ServiceFactory) Create(serverID int64) *models.Service {
	return &models.Service{
		ServerID: serverID,
		Name:     "svc-" + uuid.NewString()[:8],
		Type:     models.ServiceTypeWeb,
		Status:   models.ServiceStatusRunning,
		Version:  "1.0.0",
	}
}

// DeploymentFactory provides methods to create test Deployment data
type DeploymentFactory struct{}

// NewDeploymentFactory creates a new DeploymentFactory
func NewDeploymentFactory() *DeploymentFactory {
	return &DeploymentFactory{}
}

// Create creates a pending manual deployment for a service
func (f *DeploymentFactory) Create(serviceID int64) *models.Deployment {
	now := time.Now().UTC()

	return &models.Deployment{
		ServiceID:   serviceID,
		Version:     "1.0.0",
		CommitHash:  "abc1234",
		Branch:      "main",
		Type:        models.DeploymentTypeManual,
		Status:      models.DeploymentStatusPending,
		Environment: "staging",
		StartedAt:   &now,
	}
}

// Successful creates a deployment that already finished successfully
func (f *DeploymentFactory) Successful(serviceID int64, version string) *models.Deployment {
	d := f.Create(serviceID)
	d.Version = version
	d.Status = models.DeploymentStatusSuccess
	completed := time.Now().UTC()
	d.CompletedAt = &completed
	return d
}
