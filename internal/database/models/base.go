package models

import "time"

// BaseModel provides the surrogate integer identity and timestamps shared by
// all persisted entities.
type BaseModel struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
