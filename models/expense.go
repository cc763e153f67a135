package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense money spent from the cajón pool.
// Fecha carries the calendar date only; (fecha, created_at) is the ledger order.
type Expense struct {
	ID             uint            `json:"id" gorm:"primaryKey"`
	UserID         uint            `json:"user_id" gorm:"index;not null"`
	ExpenseTypeID  uint            `json:"expense_type_id" gorm:"index;not null"`
	Monto          decimal.Decimal `json:"monto" gorm:"type:decimal(12,2);not null"`
	Descripcion    string          `json:"descripcion" gorm:"size:255;not null"`
	Fecha          time.Time       `json:"fecha" gorm:"type:date;not null;index"`
	CajonPosterior decimal.Decimal `json:"cajon_posterior" gorm:"type:decimal(12,2);not null"`
	CreatedAt      time.Time       `json:"created_at" gorm:"index"`
	UpdatedAt      time.Time       `json:"updated_at"`
	ExpenseType    *ExpenseType    `json:"expense_type,omitempty" gorm:"foreignKey:ExpenseTypeID"`
	User           *User           `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// TableName sets the table name
func (Expense) TableName() string {
	return "expenses"
}
