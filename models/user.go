package models

import (
	"time"
)

// User account owner. Every ledger table references it with ON DELETE CASCADE.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:100"`
	Email     string    `json:"email" gorm:"size:100;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the table name
func (User) TableName() string {
	return "users"
}
