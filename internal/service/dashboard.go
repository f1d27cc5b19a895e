package service

import (
	"fmt"
	"time"

	"devflow-backend/internal/database/models"
	"devflow-backend/internal/repository"
)

// DashboardService aggregates cross-entity counts for the overview page
type DashboardService struct {
	projectRepo    *repository.ProjectRepository
	issueRepo      *repository.IssueRepository
	serverRepo     *repository.ServerRepository
	serviceRepo    *repository.ServiceRepository
	deploymentRepo *repository.DeploymentRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	projectRepo *repository.ProjectRepository,
	issueRepo *repository.IssueRepository,
	serverRepo *repository.ServerRepository,
	serviceRepo *repository.ServiceRepository,
	deploymentRepo *repository.DeploymentRepository,
) *DashboardService {
	return &DashboardService{
		projectRepo:    projectRepo,
		issueRepo:      issueRepo,
		serverRepo:     serverRepo,
		serviceRepo:    serviceRepo,
		deploymentRepo: deploymentRepo,
	}
}

// DashboardResponse is the aggregated overview of the whole system
type DashboardResponse struct {
	Projects    int64                             `json:"projects"`
	Issues      int64                             `json:"issues"`
	Servers     int64                             `json:"servers"`
	Services    map[models.ServiceStatus]int64    `json:"services_by_status"`
	Deployments map[models.DeploymentStatus]int64 `json:"deployments_last_7_days"`
	Recent      []DeploymentResponse              `json:"recent_deployments"`
}

// Summary builds the dashboard aggregates
func (s *DashboardService) Summary() (*DashboardResponse, error) {
	projects, err := s.projectRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count projects: %w", err)
	}

	issues, err := s.issueRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count issues: %w", err)
	}

	servers, err := s.serverRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count servers: %w", err)
	}

	services, err := s.serviceRepo.CountByStatus()
	if err != nil {
		return nil, fmt.Errorf("failed to count services: %w", err)
	}

	cutoff := time.Now().UTC().Add(-7 * 24 * time.Hour)
	deployments, err := s.deploymentRepo.CountByStatusSince(cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to count deployments: %w", err)
	}

	recent, err := s.deploymentRepo.GetRecent(10)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent deployments: %w", err)
	}

	recentResponses := make([]DeploymentResponse, len(recent))
	for i := range recent {
		recentResponses[i] = *deploymentToResponse(&recent[i])
	}

	return &DashboardResponse{
		Projects:    projects,
		Issues:      issues,
		Servers:     servers,
		Services:    services,
		Deployments: deployments,
		Recent:      recentResponses,
	}, nil
}
