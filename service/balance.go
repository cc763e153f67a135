package service

import (
	"context"
	"errors"
	"fmt"

	"cuentas/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetBalance returns the user's balance, creating a zeroed one on first access
func (l *Ledger) GetBalance(ctx context.Context, userID uint) (*models.Balance, error) {
	return getOrCreateBalance(l.conn(ctx), userID, false)
}

// getOrCreateBalance is idempotent under concurrent first access: the insert
// ignores a conflicting row and the balance is always re-read afterwards.
// A locking caller inserts first so the row lock lands on an existing row
// instead of a gap in the user_id index.
func getOrCreateBalance(db *gorm.DB, userID uint, lock bool) (*models.Balance, error) {
	if lock {
		if err := ensureBalance(db, userID); err != nil {
			return nil, err
		}
		return findBalance(db, userID, true)
	}

	bal, err := findBalance(db, userID, false)
	if err == nil {
		return bal, nil
	}
	if !errors.Is(err, ErrNoBalance) {
		return nil, err
	}
	if err := ensureBalance(db, userID); err != nil {
		return nil, err
	}
	return findBalance(db, userID, false)
}

func ensureBalance(db *gorm.DB, userID uint) error {
	fresh := models.Balance{UserID: userID, Banco: decimal.Zero, Cajon: decimal.Zero}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(&fresh).Error; err != nil {
		return fmt.Errorf("create balance: %w", err)
	}
	return nil
}

// findBalance loads the balance row, locking it FOR UPDATE when lock is set
func findBalance(db *gorm.DB, userID uint, lock bool) (*models.Balance, error) {
	if lock {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var bal models.Balance
	err := db.Where("user_id = ?", userID).First(&bal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoBalance
	}
	if err != nil {
		return nil, fmt.Errorf("load balance: %w", err)
	}
	return &bal, nil
}

// applyDelta adds delta to one pool and persists the balance
func applyDelta(tx *gorm.DB, bal *models.Balance, pool models.Pool, delta decimal.Decimal) error {
	var eff effect
	if pool == models.PoolBanco {
		eff.banco = delta
	} else {
		eff.cajon = delta
	}
	return applyEffect(tx, bal, eff)
}

func applyEffect(tx *gorm.DB, bal *models.Balance, eff effect) error {
	bal.Add(models.PoolBanco, eff.banco)
	bal.Add(models.PoolCajon, eff.cajon)
	if err := tx.Model(bal).Updates(map[string]interface{}{
		"banco": bal.Banco,
		"cajon": bal.Cajon,
	}).Error; err != nil {
		return fmt.Errorf("update balance: %w", err)
	}
	return nil
}
