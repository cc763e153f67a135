package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DepositType target of a deposit. "cartera" is the cajón pool.
type DepositType string

const (
	DepositBanco   DepositType = "banco"
	DepositCartera DepositType = "cartera"
)

// Pool returns the balance pool the deposit credits
func (t DepositType) Pool() Pool {
	if t == DepositBanco {
		return PoolBanco
	}
	return PoolCajon
}

// DepositTypeFor maps a pool to the stored deposit tipo
func DepositTypeFor(p Pool) DepositType {
	if p == PoolBanco {
		return DepositBanco
	}
	return DepositCartera
}

// Deposit money added to one pool, with the pool snapshot before and after
type Deposit struct {
	ID               uint            `json:"id" gorm:"primaryKey"`
	UserID           uint            `json:"user_id" gorm:"index;not null"`
	Tipo             DepositType     `json:"tipo" gorm:"size:20;not null;index"`
	Cantidad         decimal.Decimal `json:"cantidad" gorm:"type:decimal(12,2);not null"`
	BalanceAnterior  decimal.Decimal `json:"balance_anterior" gorm:"type:decimal(12,2);not null"`
	BalancePosterior decimal.Decimal `json:"balance_posterior" gorm:"type:decimal(12,2);not null"`
	Descripcion      string          `json:"descripcion" gorm:"size:255;not null"`
	Fecha            time.Time       `json:"fecha" gorm:"not null;index"`
	CreatedAt        time.Time       `json:"created_at" gorm:"index"`
	UpdatedAt        time.Time       `json:"updated_at"`
	User             *User           `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// TableName sets the table name
func (Deposit) TableName() string {
	return "bank_deposits"
}
