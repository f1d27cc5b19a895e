package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"devflow-backend/internal/config"
	"devflow-backend/internal/database"
	"devflow-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// YAML structures matching the seed files under scripts/data

type UserData struct {
	AuthentikID string `yaml:"authentik_id"`
	Email       string `yaml:"email"`
	Username    string `yaml:"username"`
	FullName    string `yaml:"full_name,omitempty"`
	IsActive    bool   `yaml:"is_active"`
	IsAdmin     bool   `yaml:"is_admin"`
}

type TeamData struct {
	Name        string           `yaml:"name"`
	Slug        string           `yaml:"slug"`
	Description string           `yaml:"description,omitempty"`
	Members     []TeamMemberData `yaml:"members,omitempty"`
}

type TeamMemberData struct {
	Username string `yaml:"username"`
	Role     string `yaml:"role"`
}

type ProjectData struct {
	TeamSlug    string `yaml:"team_slug"`
	Name        string `yaml:"name"`
	Key         string `yaml:"key"`
	Description string `yaml:"description,omitempty"`
	Status      string `yaml:"status,omitempty"`
}

type ServerData struct {
	Name        string        `yaml:"name"`
	Hostname    string        `yaml:"hostname"`
	IPAddress   string        `yaml:"ip_address"`
	Type        string        `yaml:"type,omitempty"`
	Status      string        `yaml:"status,omitempty"`
	Environment string        `yaml:"environment"`
	Provider    string        `yaml:"provider,omitempty"`
	Services    []ServiceData `yaml:"services,omitempty"`
}

type ServiceData struct {
	Name    string `yaml:"name"`
	Type    string `yaml:"type,omitempty"`
	Status  string `yaml:"status,omitempty"`
	Version string `yaml:"version,omitempty"`
	Port    *int   `yaml:"port,omitempty"`
}

// File structures
type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type TeamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

type ProjectsFile struct {
	Projects []ProjectData `yaml:"projects"`
}

type ServersFile struct {
	Servers []ServerData `yaml:"servers"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	var usersFile UsersFile
	if err := readYAML(filepath.Join(dataDir, "users.yaml"), &usersFile); err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}
	var teamsFile TeamsFile
	if err := readYAML(filepath.Join(dataDir, "teams.yaml"), &teamsFile); err != nil {
		return fmt.Errorf("failed to load teams: %w", err)
	}
	var projectsFile ProjectsFile
	if err := readYAML(filepath.Join(dataDir, "projects.yaml"), &projectsFile); err != nil {
		return fmt.Errorf("failed to load projects: %w", err)
	}
	var serversFile ServersFile
	if err := readYAML(filepath.Join(dataDir, "servers.yaml"), &serversFile); err != nil {
		return fmt.Errorf("failed to load servers: %w", err)
	}

	// Users first so team memberships can reference them by username
	usersByName := make(map[string]*models.User, len(usersFile.Users))
	for _, u := range usersFile.Users {
		user := &models.User{
			AuthentikID: u.AuthentikID,
			Email:       u.Email,
			Username:    u.Username,
			FullName:    u.FullName,
			IsActive:    u.IsActive,
			IsAdmin:     u.IsAdmin,
		}
		if err := upsertUser(db, user); err != nil {
			return fmt.Errorf("failed to upsert user %q: %w", u.Username, err)
		}
		usersByName[user.Username] = user
	}
	log.Printf("Loaded %d users", len(usersByName))

	teamsBySlug := make(map[string]*models.Team, len(teamsFile.Teams))
	for _, t := range teamsFile.Teams {
		team := &models.Team{
			Name:        t.Name,
			Slug:        t.Slug,
			Description: t.Description,
		}
		if err := upsertTeam(db, team); err != nil {
			return fmt.Errorf("failed to upsert team %q: %w", t.Slug, err)
		}
		teamsBySlug[team.Slug] = team

		for _, m := range t.Members {
			user, ok := usersByName[m.Username]
			if !ok {
				return fmt.Errorf("team %q references unknown user %q", t.Slug, m.Username)
			}
			role := models.TeamRole(m.Role)
			if !role.IsValid() {
				role = models.TeamRoleMember
			}
			member := &models.TeamMember{TeamID: team.ID, UserID: user.ID, Role: role}
			if err := db.Where("team_id = ? AND user_id = ?", team.ID, user.ID).
				FirstOrCreate(member).Error; err != nil {
				return fmt.Errorf("failed to add %q to team %q: %w", m.Username, t.Slug, err)
			}
		}
	}
	log.Printf("Loaded %d teams", len(teamsBySlug))

	for _, p := range projectsFile.Projects {
		team, ok := teamsBySlug[p.TeamSlug]
		if !ok {
			return fmt.Errorf("project %q references unknown team %q", p.Key, p.TeamSlug)
		}
		status := models.ProjectStatus(p.Status)
		if !status.IsValid() {
			status = models.ProjectStatusPlanning
		}
		project := &models.Project{
			TeamID:      team.ID,
			Name:        p.Name,
			Key:         strings.ToUpper(p.Key),
			Description: p.Description,
			Status:      status,
		}
		if err := db.Where("key = ?", project.Key).FirstOrCreate(project).Error; err != nil {
			return fmt.Errorf("failed to upsert project %q: %w", p.Key, err)
		}
	}
	log.Printf("Loaded %d projects", len(projectsFile.Projects))

	serviceCount := 0
	for _, s := range serversFile.Servers {
		server := &models.Server{
			Name:        s.Name,
			Hostname:    s.Hostname,
			IPAddress:   s.IPAddress,
			Environment: s.Environment,
			Provider:    s.Provider,
			SSHPort:     22,
		}
		if t := models.ServerType(s.Type); t.IsValid() {
			server.Type = t
		} else {
			server.Type = models.ServerTypeVirtual
		}
		if st := models.ServerStatus(s.Status); st.IsValid() {
			server.Status = st
		} else {
			server.Status = models.ServerStatusActive
		}
		if err := db.Where("hostname = ?", server.Hostname).FirstOrCreate(server).Error; err != nil {
			return fmt.Errorf("failed to upsert server %q: %w", s.Hostname, err)
		}

		for _, svc := range s.Services {
			row := &models.Service{
				ServerID: server.ID,
				Name:     svc.Name,
				Version:  svc.Version,
				Port:     svc.Port,
			}
			if t := models.ServiceType(svc.Type); t.IsValid() {
				row.Type = t
			} else {
				row.Type = models.ServiceTypeWeb
			}
			if st := models.ServiceStatus(svc.Status); st.IsValid() {
				row.Status = st
			} else {
				row.Status = models.ServiceStatusStopped
			}
			if err := db.Where("server_id = ? AND name = ?", server.ID, row.Name).
				FirstOrCreate(row).Error; err != nil {
				return fmt.Errorf("failed to upsert service %q on %q: %w", svc.Name, s.Hostname, err)
			}
			serviceCount++
		}
	}
	log.Printf("Loaded %d servers with %d services", len(serversFile.Servers), serviceCount)

	return nil
}

func readYAML(path string, target interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("Skipping %s: file not found", path)
			return nil
		}
		return err
	}
	return yaml.Unmarshal(data, target)
}

func upsertUser(db *gorm.DB, user *models.User) error {
	var existing models.User
	err := db.Where("authentik_id = ?", user.AuthentikID).First(&existing).Error
	if err == nil {
		user.ID = existing.ID
		return db.Save(user).Error
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}
	return db.Create(user).Error
}

func upsertTeam(db *gorm.DB, team *models.Team) error {
	var existing models.Team
	err := db.Where("slug = ?", team.Slug).First(&existing).Error
	if err == nil {
		team.ID = existing.ID
		return db.Save(team).Error
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}
	return db.Create(team).Error
}
