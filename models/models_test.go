package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPool(t *testing.T) {
	assert.True(t, PoolBanco.Valid())
	assert.True(t, PoolCajon.Valid())
	assert.False(t, Pool("cartera").Valid())

	assert.Equal(t, DepositBanco, DepositTypeFor(PoolBanco))
	assert.Equal(t, DepositCartera, DepositTypeFor(PoolCajon))
	assert.Equal(t, PoolCajon, DepositCartera.Pool())
}

func TestTransferType(t *testing.T) {
	assert.True(t, TransferBancoACajon.Valid())
	assert.False(t, TransferType("banco").Valid())

	assert.Equal(t, PoolBanco, TransferBancoACajon.Source())
	assert.Equal(t, PoolCajon, TransferBancoACajon.Target())
	assert.Equal(t, PoolCajon, TransferCajonABanco.Source())
	assert.Equal(t, PoolBanco, TransferCajonABanco.Target())
}

func TestBalance_Add(t *testing.T) {
	b := Balance{Banco: decimal.NewFromInt(10), Cajon: decimal.Zero}

	b.Add(PoolCajon, decimal.RequireFromString("-15.50"))
	b.Add(PoolBanco, decimal.RequireFromString("2.25"))

	assert.Equal(t, "12.25", b.Amount(PoolBanco).StringFixed(2))
	assert.Equal(t, "-15.50", b.Amount(PoolCajon).StringFixed(2))
}

func TestExpenseType_VisibleTo(t *testing.T) {
	owner := uint(3)
	custom := ExpenseType{UserID: &owner}
	shared := ExpenseType{IsDefault: true}

	assert.True(t, custom.VisibleTo(3))
	assert.False(t, custom.VisibleTo(4))
	assert.True(t, shared.VisibleTo(4))
	assert.False(t, (&ExpenseType{}).VisibleTo(3))
}
