package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferType direction of a transfer between pools
type TransferType string

const (
	TransferBancoACajon TransferType = "banco_a_cajon"
	TransferCajonABanco TransferType = "cajon_a_banco"
)

// Valid reports whether t is a known direction
func (t TransferType) Valid() bool {
	return t == TransferBancoACajon || t == TransferCajonABanco
}

// Source returns the pool debited by the transfer
func (t TransferType) Source() Pool {
	if t == TransferBancoACajon {
		return PoolBanco
	}
	return PoolCajon
}

// Target returns the pool credited by the transfer
func (t TransferType) Target() Pool {
	if t == TransferBancoACajon {
		return PoolCajon
	}
	return PoolBanco
}

// TransferRecord a move between pools with both pools snapshotted before and after
type TransferRecord struct {
	ID             uint            `json:"id" gorm:"primaryKey"`
	UserID         uint            `json:"user_id" gorm:"index;not null"`
	Cantidad       decimal.Decimal `json:"cantidad" gorm:"type:decimal(12,2);not null"`
	Tipo           TransferType    `json:"tipo" gorm:"size:20;not null"`
	BancoAnterior  decimal.Decimal `json:"banco_anterior" gorm:"type:decimal(12,2);not null"`
	CajonAnterior  decimal.Decimal `json:"cajon_anterior" gorm:"type:decimal(12,2);not null"`
	BancoPosterior decimal.Decimal `json:"banco_posterior" gorm:"type:decimal(12,2);not null"`
	CajonPosterior decimal.Decimal `json:"cajon_posterior" gorm:"type:decimal(12,2);not null"`
	Descripcion    string          `json:"descripcion" gorm:"size:255"`
	Fecha          time.Time       `json:"fecha" gorm:"not null;index"`
	CreatedAt      time.Time       `json:"created_at" gorm:"index"`
	UpdatedAt      time.Time       `json:"updated_at"`
	User           *User           `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// TableName sets the table name
func (TransferRecord) TableName() string {
	return "transfer_records"
}
