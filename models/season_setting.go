package models

import (
	"time"
)

// SeasonSetting start of the user's season aggregation window
type SeasonSetting struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"uniqueIndex;not null"`
	SeasonStart time.Time `json:"season_start" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	User        *User     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// TableName sets the table name
func (SeasonSetting) TableName() string {
	return "season_settings"
}
