package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cuentas/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetInput a spending target. Mes is a "2006-01-02" date inside the month.
type BudgetInput struct {
	Monto decimal.Decimal
	Mes   string
}

// ListBudgets returns the user's budgets, latest month first
func (l *Ledger) ListBudgets(ctx context.Context, userID uint) ([]models.MonthlyBudget, error) {
	var budgets []models.MonthlyBudget
	if err := l.conn(ctx).
		Where("user_id = ?", userID).
		Order("mes DESC, id DESC").
		Find(&budgets).Error; err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}
	return budgets, nil
}

// CreateBudget stores an active budget unless the month already has one
func (l *Ledger) CreateBudget(ctx context.Context, userID uint, in BudgetInput) (*models.MonthlyBudget, error) {
	monto := in.Monto.Round(2)
	if monto.IsNegative() {
		return nil, ErrNegativeAmount
	}
	mes, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(in.Mes), l.now().Location())
	if err != nil {
		return nil, ErrInvalidDate
	}

	var budget models.MonthlyBudget
	err = l.conn(ctx).Transaction(func(tx *gorm.DB) error {
		first := startOfMonth(mes)
		var existing int64
		if err := tx.Model(&models.MonthlyBudget{}).
			Where("user_id = ? AND activo = ?", userID, true).
			Where("mes >= ? AND mes < ?", first, first.AddDate(0, 1, 0)).
			Count(&existing).Error; err != nil {
			return fmt.Errorf("check budget: %w", err)
		}
		if existing > 0 {
			return ErrBudgetExists
		}

		budget = models.MonthlyBudget{UserID: userID, Monto: monto, Mes: mes, Activo: true}
		if err := tx.Create(&budget).Error; err != nil {
			return fmt.Errorf("create budget: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &budget, nil
}

// DeleteBudget removes one of the user's budgets
func (l *Ledger) DeleteBudget(ctx context.Context, userID, budgetID uint) error {
	db := l.conn(ctx)

	var budget models.MonthlyBudget
	if err := db.First(&budget, budgetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBudgetNotFound
		}
		return fmt.Errorf("load budget: %w", err)
	}
	if budget.UserID != userID {
		return ErrNotOwner
	}

	if err := db.Delete(&budget).Error; err != nil {
		return fmt.Errorf("delete budget: %w", err)
	}
	return nil
}
