package service

import (
	"context"
	"fmt"

	"cuentas/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DepositInput money added to one pool
type DepositInput struct {
	Pool        models.Pool
	Cantidad    decimal.Decimal
	Descripcion string
}

// DepositResult balance after the deposit and the stored record
type DepositResult struct {
	Balance  *models.Balance `json:"balance"`
	Deposito *models.Deposit `json:"deposito"`
}

// Deposit credits in.Pool, creating the balance on first use
func (l *Ledger) Deposit(ctx context.Context, userID uint, in DepositInput) (*DepositResult, error) {
	if !in.Pool.Valid() {
		return nil, ErrInvalidPool
	}
	amount, err := normalizeAmount(in.Cantidad)
	if err != nil {
		return nil, err
	}
	desc, err := requireDescription(in.Descripcion)
	if err != nil {
		return nil, err
	}

	var result DepositResult
	err = l.conn(ctx).Transaction(func(tx *gorm.DB) error {
		bal, err := getOrCreateBalance(tx, userID, true)
		if err != nil {
			return err
		}

		before := bal.Amount(in.Pool)
		if err := applyDelta(tx, bal, in.Pool, amount); err != nil {
			return err
		}

		now := l.now()
		dep := models.Deposit{
			UserID:           userID,
			Tipo:             models.DepositTypeFor(in.Pool),
			Cantidad:         amount,
			BalanceAnterior:  before,
			BalancePosterior: bal.Amount(in.Pool),
			Descripcion:      desc,
			Fecha:            now,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		if err := tx.Create(&dep).Error; err != nil {
			return fmt.Errorf("create deposit: %w", err)
		}

		result = DepositResult{Balance: bal, Deposito: &dep}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ListDeposits returns every deposit of the user, newest first
func (l *Ledger) ListDeposits(ctx context.Context, userID uint) ([]models.Deposit, error) {
	var deposits []models.Deposit
	if err := l.conn(ctx).
		Where("user_id = ?", userID).
		Order("fecha DESC, created_at DESC, id DESC").
		Find(&deposits).Error; err != nil {
		return nil, fmt.Errorf("list deposits: %w", err)
	}
	return deposits, nil
}
