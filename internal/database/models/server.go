package models

// ServerType classifies how a server is provisioned
type ServerType string

const (
	ServerTypePhysical  ServerType = "physical"
	ServerTypeVirtual   ServerType = "virtual"
	ServerTypeCloud     ServerType = "cloud"
	ServerTypeContainer ServerType = "container"
)

// ServerStatus defines the operational states of a server
type ServerStatus string

const (
	ServerStatusActive         ServerStatus = "active"
	ServerStatusInactive       ServerStatus = "inactive"
	ServerStatusMaintenance    ServerStatus = "maintenance"
	ServerStatusDecommissioned ServerStatus = "decommissioned"
)

// IsValid checks if the ServerType is valid
func (t ServerType) IsValid() bool {
	switch t {
	case ServerTypePhysical, ServerTypeVirtual, ServerTypeCloud, ServerTypeContainer:
		return true
	}
	return false
}

// IsValid checks if the ServerStatus is valid
func (s ServerStatus) IsValid() bool {
	switch s {
	case ServerStatusActive, ServerStatusInactive, ServerStatusMaintenance, ServerStatusDecommissioned:
		return true
	}
	return false
}

// Server is an infrastructure inventory record. Hostname is unique across the
// fleet.
type Server struct {
	BaseModel
	Name      string `json:"name" gorm:"size:200;uniqueIndex;not null"`
	Hostname  string `json:"hostname" gorm:"size:255;uniqueIndex;not null"`
	IPAddress string `json:"ip_address" gorm:"size:45;not null"`

	Type   ServerType   `json:"type" gorm:"size:20;default:virtual;index;not null"`
	Status ServerStatus `json:"status" gorm:"size:20;default:active;index;not null"`

	Environment string `json:"environment" gorm:"size:50;index;not null"`

	CPUCores *int `json:"cpu_cores,omitempty"`
	MemoryGB *int `json:"memory_gb,omitempty"`
	DiskGB   *int `json:"disk_gb,omitempty"`

	OSName    string `json:"os_name,omitempty" gorm:"size:100"`
	OSVersion string `json:"os_version,omitempty" gorm:"size:50"`

	Provider   string `json:"provider,omitempty" gorm:"size:50"`
	Region     string `json:"region,omitempty" gorm:"size:50"`
	InstanceID string `json:"instance_id,omitempty" gorm:"size:100"`

	SSHPort int    `json:"ssh_port" gorm:"default:22"`
	SSHUser string `json:"ssh_user,omitempty" gorm:"size:50"`

	MonitoringEnabled bool   `json:"monitoring_enabled" gorm:"default:false"`
	MonitoringURL     string `json:"monitoring_url,omitempty" gorm:"size:500"`

	Description string `json:"description,omitempty" gorm:"type:text"`
	Notes       string `json:"notes,omitempty" gorm:"type:text"`

	// Relationships
	Services []Service `json:"services,omitempty" gorm:"foreignKey:ServerID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Server
func (Server) TableName() string {
	return "servers"
}
