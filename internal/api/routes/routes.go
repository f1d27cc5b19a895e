package routes

import (
	"devflow-backend/internal/api/handlers"
	"devflow-backend/internal/api/middleware"
	"devflow-backend/internal/auth"
	"devflow-backend/internal/config"
	"devflow-backend/internal/repository"
	"devflow-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validate := validator.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	sprintRepo := repository.NewSprintRepository(db)
	issueRepo := repository.NewIssueRepository(db)
	serverRepo := repository.NewServerRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	deploymentRepo := repository.NewDeploymentRepository(db)

	// Initialize services
	userService := service.NewUserService(userRepo, validate)
	teamService := service.NewTeamService(teamRepo, userRepo, validate)
	projectService := service.NewProjectService(projectRepo, teamRepo, validate)
	sprintService := service.NewSprintService(sprintRepo, projectRepo, validate)
	issueService := service.NewIssueService(issueRepo, projectRepo, sprintRepo, userRepo, validate)
	serverService := service.NewServerService(serverRepo, validate)
	serviceService := service.NewServiceService(serviceRepo, serverRepo, validate)
	deploymentService := service.NewDeploymentService(deploymentRepo, serviceRepo, validate)
	dashboardService := service.NewDashboardService(projectRepo, issueRepo, serverRepo, serviceRepo, deploymentRepo)

	// Initialize auth
	verifier := auth.NewAuthentikClient(cfg.AuthentikURL, cfg.AuthentikToken)
	authService := auth.NewService(cfg, verifier, userRepo)
	authHandlers := auth.NewHandlers(authService)
	authMiddleware := auth.NewMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	userHandler := handlers.NewUserHandler(userService)
	teamHandler := handlers.NewTeamHandler(teamService)
	projectHandler := handlers.NewProjectHandler(projectService)
	sprintHandler := handlers.NewSprintHandler(sprintService)
	issueHandler := handlers.NewIssueHandler(issueService)
	serverHandler := handlers.NewServerHandler(serverService)
	serviceHandler := handlers.NewServiceHandler(serviceService)
	deploymentHandler := handlers.NewDeploymentHandler(deploymentService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authGroup := router.Group("/api/v1/auth")
	{
		authGroup.POST("/token", authHandlers.Login)
		authGroup.POST("/login", authHandlers.DevLogin)
		authGroup.POST("/refresh", authHandlers.Refresh)
	}

	// API v1 routes. Everything below requires authentication.
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		// User routes
		users := v1.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.GET("/me", userHandler.GetCurrentUser)
			users.PUT("/me", userHandler.UpdateCurrentUser)
			users.GET("/:id", userHandler.GetUser)
			users.DELETE("/:id", authMiddleware.RequireAdmin(), userHandler.DeactivateUser)
		}

		// Team routes
		teams := v1.Group("/teams")
		{
			teams.GET("", teamHandler.ListTeams)
			teams.POST("", teamHandler.CreateTeam)
			teams.GET("/my", teamHandler.ListMyTeams)
			teams.GET("/slug/:slug", teamHandler.GetTeamBySlug)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.PUT("/:id", teamHandler.UpdateTeam)
			teams.DELETE("/:id", teamHandler.DeleteTeam)
			teams.GET("/:id/members", teamHandler.ListTeamMembers)
			teams.POST("/:id/members", teamHandler.AddMember)
			teams.DELETE("/:id/members/:user_id", teamHandler.RemoveMember)
			teams.PATCH("/:id/members/:user_id/role", teamHandler.UpdateMemberRole)
		}

		// Project routes
		projects := v1.Group("/projects")
		{
			projects.GET("", projectHandler.ListProjects)
			projects.POST("", projectHandler.CreateProject)
			projects.GET("/key/:key", projectHandler.GetProjectByKey)
			projects.GET("/team/:team_id", projectHandler.ListTeamProjects)
			projects.GET("/:id", projectHandler.GetProject)
			projects.PUT("/:id", projectHandler.UpdateProject)
			projects.PATCH("/:id/status", projectHandler.UpdateProjectStatus)
			projects.DELETE("/:id", projectHandler.DeleteProject)
			projects.GET("/:id/sprints/active", sprintHandler.GetActiveSprint)
		}

		// Sprint routes
		sprints := v1.Group("/sprints")
		{
			sprints.GET("", sprintHandler.ListSprints)
			sprints.POST("", sprintHandler.CreateSprint)
			sprints.GET("/:id", sprintHandler.GetSprint)
			sprints.PUT("/:id", sprintHandler.UpdateSprint)
			sprints.PATCH("/:id/status", sprintHandler.UpdateSprintStatus)
			sprints.POST("/:id/start", sprintHandler.StartSprint)
			sprints.POST("/:id/complete", sprintHandler.CompleteSprint)
			sprints.DELETE("/:id", sprintHandler.DeleteSprint)
		}

		// Issue routes
		issues := v1.Group("/issues")
		{
			issues.GET("", issueHandler.ListIssues)
			issues.POST("", issueHandler.CreateIssue)
			issues.GET("/my", issueHandler.ListMyIssues)
			issues.GET("/key/:key", issueHandler.GetIssueByKey)
			issues.GET("/:id", issueHandler.GetIssue)
			issues.PUT("/:id", issueHandler.UpdateIssue)
			issues.PATCH("/:id/status", issueHandler.UpdateIssueStatus)
			issues.POST("/:id/assign", issueHandler.AssignIssue)
			issues.POST("/:id/sprint", issueHandler.MoveIssueToSprint)
			issues.DELETE("/:id", issueHandler.DeleteIssue)
		}

		// Server routes
		servers := v1.Group("/servers")
		{
			servers.GET("", serverHandler.ListServers)
			servers.POST("", serverHandler.CreateServer)
			servers.GET("/hostname/:hostname", serverHandler.GetServerByHostname)
			servers.GET("/:id", serverHandler.GetServer)
			servers.PUT("/:id", serverHandler.UpdateServer)
			servers.PATCH("/:id/status", serverHandler.UpdateServerStatus)
			servers.DELETE("/:id", serverHandler.DeleteServer)
		}

		// Service routes
		services := v1.Group("/services")
		{
			services.GET("", serviceHandler.ListServices)
			services.POST("", serviceHandler.CreateService)
			services.GET("/:id", serviceHandler.GetService)
			services.PUT("/:id", serviceHandler.UpdateService)
			services.PATCH("/:id/status", serviceHandler.UpdateServiceStatus)
			services.DELETE("/:id", serviceHandler.DeleteService)
		}

		// Deployment routes
		deployments := v1.Group("/deployments")
		{
			deployments.GET("", deploymentHandler.ListDeployments)
			deployments.POST("", deploymentHandler.CreateDeployment)
			deployments.GET("/:id", deploymentHandler.GetDeployment)
			deployments.PATCH("/:id/status", deploymentHandler.UpdateDeploymentStatus)
			deployments.POST("/:id/rollback", deploymentHandler.RollbackDeployment)
			deployments.DELETE("/:id", deploymentHandler.DeleteDeployment)
		}

		// Admin-only resync from the identity provider
		v1.POST("/auth/sync/:authentik_id", authMiddleware.RequireAdmin(), authHandlers.SyncUser)

		// Dashboard routes
		v1.GET("/dashboard/summary", dashboardHandler.GetSummary)
	}

	return router
}
