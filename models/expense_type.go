package models

import (
	"time"
)

// ExpenseType expense category. Defaults have no owner and are visible to everyone.
type ExpenseType struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Nombre    string    `json:"nombre" gorm:"size:255;not null"`
	UserID    *uint     `json:"user_id" gorm:"index"`
	IsDefault bool      `json:"is_default" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	User      *User     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// TableName sets the table name
func (ExpenseType) TableName() string {
	return "expense_types"
}

// VisibleTo reports whether userID may use this type
func (t *ExpenseType) VisibleTo(userID uint) bool {
	return t.IsDefault || (t.UserID != nil && *t.UserID == userID)
}

// DefaultExpenseTypes names seeded as shared defaults
func DefaultExpenseTypes() []string {
	return []string{"Comida", "Caprichos", "Viajes", "Gastos Fijos"}
}
