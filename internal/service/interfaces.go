package service

import (
	"devflow-backend/internal/database/models"
	"devflow-backend/internal/query"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	GetByID(id int64) (*UserResponse, error)
	List(filter *ListUsersFilter) (*query.Page[UserResponse], error)
	Update(id int64, req *UpdateUserRequest) (*UserResponse, error)
	Deactivate(id int64) error
}

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	Create(creatorID int64, req *CreateTeamRequest) (*TeamResponse, error)
	GetByID(id int64) (*TeamWithMembersResponse, error)
	GetBySlug(slug string) (*TeamResponse, error)
	List(filter *ListTeamsFilter) (*query.Page[TeamResponse], error)
	ListMembers(teamID int64) ([]TeamMemberResponse, error)
	ListUserTeams(userID int64) ([]TeamResponse, error)
	Update(id, actorID int64, req *UpdateTeamRequest) (*TeamResponse, error)
	Delete(id, actorID int64) error
	AddMember(teamID, actorID int64, req *AddMemberRequest) (*TeamMemberResponse, error)
	RemoveMember(teamID, actorID, userID int64) error
	UpdateMemberRole(teamID, actorID, userID int64, req *UpdateMemberRoleRequest) error
}

// ProjectServiceInterface defines the interface for project service
type ProjectServiceInterface interface {
	Create(req *CreateProjectRequest) (*ProjectResponse, error)
	GetByID(id int64) (*ProjectResponse, error)
	GetByKey(key string) (*ProjectResponse, error)
	List(filter *ListProjectsFilter) (*query.Page[ProjectResponse], error)
	ListByTeam(teamID int64, params query.Params) (*query.Page[ProjectResponse], error)
	Update(id int64, req *UpdateProjectRequest) (*ProjectResponse, error)
	UpdateStatus(id int64, status models.ProjectStatus) (*ProjectResponse, error)
	Delete(id int64) error
}

// SprintServiceInterface defines the interface for sprint service
type SprintServiceInterface interface {
	Create(req *CreateSprintRequest) (*SprintResponse, error)
	GetByID(id int64) (*SprintResponse, error)
	GetActive(projectID int64) (*SprintResponse, error)
	List(filter *ListSprintsFilter) (*query.Page[SprintResponse], error)
	Update(id int64, req *UpdateSprintRequest) (*SprintResponse, error)
	UpdateStatus(id int64, status models.SprintStatus) (*SprintResponse, error)
	Start(id int64) (*SprintResponse, error)
	Complete(id int64) (*SprintResponse, error)
	Delete(id int64) error
}

// IssueServiceInterface defines the interface for issue service
type IssueServiceInterface interface {
	Create(creatorID int64, req *CreateIssueRequest) (*IssueResponse, error)
	GetByID(id int64) (*IssueResponse, error)
	GetByKey(key string) (*IssueResponse, error)
	List(filter *ListIssuesFilter) (*query.Page[IssueResponse], error)
	Update(id int64, req *UpdateIssueRequest) (*IssueResponse, error)
	UpdateStatus(id int64, status models.IssueStatus) (*IssueResponse, error)
	Assign(id int64, req *AssignIssueRequest) (*IssueResponse, error)
	MoveToSprint(id int64, req *MoveIssueToSprintRequest) (*IssueResponse, error)
	Delete(id int64) error
}

// ServerServiceInterface defines the interface for server service
type ServerServiceInterface interface {
	Create(req *CreateServerRequest) (*ServerResponse, error)
	GetByID(id int64) (*ServerResponse, error)
	GetByHostname(hostname string) (*ServerResponse, error)
	List(filter *ListServersFilter) (*query.Page[ServerResponse], error)
	Update(id int64, req *UpdateServerRequest) (*ServerResponse, error)
	UpdateStatus(id int64, status models.ServerStatus) (*ServerResponse, error)
	Delete(id int64) error
}

// ServiceServiceInterface defines the interface for the service catalog service
type ServiceServiceInterface interface {
	Create(req *CreateServiceRequest) (*ServiceResponse, error)
	GetByID(id int64) (*ServiceResponse, error)
	List(filter *ListServicesFilter) (*query.Page[ServiceResponse], error)
	Update(id int64, req *UpdateServiceRequest) (*ServiceResponse, error)
	UpdateStatus(id int64, status models.ServiceStatus) (*ServiceResponse, error)
	Delete(id int64) error
}

// DeploymentServiceInterface defines the interface for deployment service
type DeploymentServiceInterface interface {
	Create(actorID int64, req *CreateDeploymentRequest) (*DeploymentResponse, error)
	GetByID(id int64) (*DeploymentResponse, error)
	List(filter *ListDeploymentsFilter) (*query.Page[DeploymentResponse], error)
	UpdateStatus(id int64, req *UpdateDeploymentStatusRequest) (*DeploymentResponse, error)
	Rollback(targetID, actorID int64, req *RollbackRequest) (*DeploymentResponse, error)
	Delete(id int64) error
}

// DashboardServiceInterface defines the interface for dashboard service
type DashboardServiceInterface interface {
	Summary() (*DashboardResponse, error)
}
