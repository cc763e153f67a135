package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Pool one of the two cash pools a user holds
type Pool string

const (
	PoolBanco Pool = "banco"
	PoolCajon Pool = "cajon"
)

// Valid reports whether p names a known pool
func (p Pool) Valid() bool {
	return p == PoolBanco || p == PoolCajon
}

// Balance current banco/cajón totals. Exactly one row per user.
type Balance struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	UserID    uint            `json:"user_id" gorm:"uniqueIndex;not null"`
	Banco     decimal.Decimal `json:"banco" gorm:"type:decimal(12,2);not null"`
	Cajon     decimal.Decimal `json:"cajon" gorm:"type:decimal(12,2);not null"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	User      *User           `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// TableName sets the table name
func (Balance) TableName() string {
	return "balances"
}

// Amount returns the current total of pool p
func (b *Balance) Amount(p Pool) decimal.Decimal {
	if p == PoolBanco {
		return b.Banco
	}
	return b.Cajon
}

// Add adds delta (possibly negative) to pool p. No floor is applied.
func (b *Balance) Add(p Pool, delta decimal.Decimal) {
	if p == PoolBanco {
		b.Banco = b.Banco.Add(delta)
		return
	}
	b.Cajon = b.Cajon.Add(delta)
}
