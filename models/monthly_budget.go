package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyBudget spending target for one calendar month.
// At most one active budget per user and month.
type MonthlyBudget struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	UserID    uint            `json:"user_id" gorm:"index;not null"`
	Monto     decimal.Decimal `json:"monto" gorm:"type:decimal(12,2);not null"`
	Mes       time.Time       `json:"mes" gorm:"type:date;not null;index"`
	Activo    bool            `json:"activo" gorm:"not null"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	User      *User           `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// TableName sets the table name
func (MonthlyBudget) TableName() string {
	return "monthly_budgets"
}
