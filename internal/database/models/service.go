package models

import "encoding/json"

// ServiceType classifies what a service does
type ServiceType string

const (
	ServiceTypeWeb      ServiceType = "web"
	ServiceTypeAPI      ServiceType = "api"
	ServiceTypeDatabase ServiceType = "database"
	ServiceTypeCache    ServiceType = "cache"
	ServiceTypeQueue    ServiceType = "queue"
	ServiceTypeWorker   ServiceType = "worker"
	ServiceTypeCron     ServiceType = "cron"
	ServiceTypeOther    ServiceType = "other"
)

// ServiceStatus defines the runtime states of a service
type ServiceStatus string

const (
	ServiceStatusRunning     ServiceStatus = "running"
	ServiceStatusStopped     ServiceStatus = "stopped"
	ServiceStatusDegraded    ServiceStatus = "degraded"
	ServiceStatusMaintenance ServiceStatus = "maintenance"
	ServiceStatusFailed      ServiceStatus = "failed"
)

// IsValid checks if the ServiceType is valid
func (t ServiceType) IsValid() bool {
	switch t {
	case ServiceTypeWeb, ServiceTypeAPI, ServiceTypeDatabase, ServiceTypeCache,
		ServiceTypeQueue, ServiceTypeWorker, ServiceTypeCron, ServiceTypeOther:
		return true
	}
	return false
}

// IsValid checks if the ServiceStatus is valid
func (s ServiceStatus) IsValid() bool {
	switch s {
	case ServiceStatusRunning, ServiceStatusStopped, ServiceStatusDegraded,
		ServiceStatusMaintenance, ServiceStatusFailed:
		return true
	}
	return false
}

// Service is an application process running on a server. It owns the
// deployment history for that process.
type Service struct {
	BaseModel
	ServerID int64 `json:"server_id" gorm:"not null;index"`

	Name   string        `json:"name" gorm:"size:200;index;not null"`
	Type   ServiceType   `json:"type" gorm:"size:20;default:web;index;not null"`
	Status ServiceStatus `json:"status" gorm:"size:20;default:stopped;index;not null"`

	Version string `json:"version,omitempty" gorm:"size:50"`

	Port *int   `json:"port,omitempty"`
	URL  string `json:"url,omitempty" gorm:"size:500"`

	ProcessName string `json:"process_name,omitempty" gorm:"size:200"`
	PID         *int   `json:"pid,omitempty"`

	ContainerID string `json:"container_id,omitempty" gorm:"size:100"`
	ImageName   string `json:"image_name,omitempty" gorm:"size:200"`

	CPULimit      *int `json:"cpu_limit,omitempty"`
	MemoryLimitMB *int `json:"memory_limit_mb,omitempty"`

	HealthCheckURL     string `json:"health_check_url,omitempty" gorm:"size:500"`
	HealthCheckEnabled bool   `json:"health_check_enabled" gorm:"default:false"`

	EnvironmentVariables json.RawMessage `json:"environment_variables,omitempty" gorm:"type:jsonb"`

	ConfigPath string `json:"config_path,omitempty" gorm:"size:500"`
	LogPath    string `json:"log_path,omitempty" gorm:"size:500"`

	AutoStart bool `json:"auto_start" gorm:"default:false"`

	Description string `json:"description,omitempty" gorm:"type:text"`
	Notes       string `json:"notes,omitempty" gorm:"type:text"`

	// Relationships
	Server      *Server      `json:"server,omitempty" gorm:"foreignKey:ServerID;constraint:OnDelete:CASCADE"`
	Deployments []Deployment `json:"deployments,omitempty" gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Service
func (Service) TableName() string {
	return "services"
}
