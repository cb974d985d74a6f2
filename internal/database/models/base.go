package models

import "time"

// BaseModel provides the surrogate key and timestamps shared by the top-level tables
type BaseModel struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
