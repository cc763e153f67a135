package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cuentas/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ExpenseInput a new cajón expense
type ExpenseInput struct {
	ExpenseTypeID uint
	Monto         decimal.Decimal
	Descripcion   string
}

// ExpenseResult the stored expense and the balance after it
type ExpenseResult struct {
	Expense *models.Expense `json:"expense"`
	Balance *models.Balance `json:"balance"`
}

// ExpenseList every expense of the user with the current cajón total
type ExpenseList struct {
	Expenses      []models.Expense `json:"expenses"`
	BalanceActual decimal.Decimal  `json:"balance_actual"`
}

// DeleteExpenseResult balance after the deletion and the snapshots it patched.
// GastosActualizados counts the later expenses only.
type DeleteExpenseResult struct {
	Balance            *models.Balance `json:"balance"`
	GastosActualizados int             `json:"gastos_actualizados"`
	Repair             RepairReport    `json:"repair"`
}

// CreateExpense debits the cajón. The cajón may go negative.
func (l *Ledger) CreateExpense(ctx context.Context, userID uint, in ExpenseInput) (*ExpenseResult, error) {
	amount, err := normalizeAmount(in.Monto)
	if err != nil {
		return nil, err
	}
	desc, err := requireDescription(in.Descripcion)
	if err != nil {
		return nil, err
	}

	var result ExpenseResult
	err = l.conn(ctx).Transaction(func(tx *gorm.DB) error {
		var et models.ExpenseType
		if err := tx.First(&et, in.ExpenseTypeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInvalidExpenseType
			}
			return fmt.Errorf("load expense type: %w", err)
		}
		if !et.VisibleTo(userID) {
			return ErrInvalidExpenseType
		}

		bal, err := findBalance(tx, userID, true)
		if err != nil {
			return err
		}
		if err := applyDelta(tx, bal, models.PoolCajon, amount.Neg()); err != nil {
			return err
		}

		now := l.now()
		exp := models.Expense{
			UserID:         userID,
			ExpenseTypeID:  et.ID,
			Monto:          amount,
			Descripcion:    desc,
			Fecha:          startOfDay(now),
			CajonPosterior: bal.Cajon,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := tx.Create(&exp).Error; err != nil {
			return fmt.Errorf("create expense: %w", err)
		}
		exp.ExpenseType = &et

		result = ExpenseResult{Expense: &exp, Balance: bal}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// GetExpense returns one expense owned by the user
func (l *Ledger) GetExpense(ctx context.Context, userID, expenseID uint) (*models.Expense, error) {
	exp, err := loadExpense(l.conn(ctx).Preload("ExpenseType"), userID, expenseID)
	if err != nil {
		return nil, err
	}
	return exp, nil
}

func loadExpense(db *gorm.DB, userID, expenseID uint) (*models.Expense, error) {
	var exp models.Expense
	if err := db.First(&exp, expenseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("load expense: %w", err)
	}
	if exp.UserID != userID {
		return nil, ErrNotOwner
	}
	return &exp, nil
}

// ListExpenses returns all expenses of the user, newest first
func (l *Ledger) ListExpenses(ctx context.Context, userID uint) (*ExpenseList, error) {
	db := l.conn(ctx)

	var expenses []models.Expense
	if err := db.Preload("ExpenseType").
		Where("user_id = ?", userID).
		Order("fecha DESC, created_at DESC, id DESC").
		Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}

	cajon := decimal.Zero
	bal, err := findBalance(db, userID, false)
	switch {
	case err == nil:
		cajon = bal.Cajon
	case !errors.Is(err, ErrNoBalance):
		return nil, err
	}

	return &ExpenseList{Expenses: expenses, BalanceActual: cajon}, nil
}

// DeleteExpense removes one of the user's most recent expenses, credits the
// cajón and patches every later snapshot.
func (l *Ledger) DeleteExpense(ctx context.Context, userID, expenseID uint) (*DeleteExpenseResult, error) {
	var result DeleteExpenseResult
	err := l.conn(ctx).Transaction(func(tx *gorm.DB) error {
		exp, err := loadExpense(tx, userID, expenseID)
		if err != nil {
			return err
		}

		bal, err := findBalance(tx, userID, true)
		if err != nil {
			return err
		}

		ok, err := withinDeleteWindow(tx, &models.Expense{}, userID, exp.ID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrExpenseOutsideWindow
		}

		undo := expenseEffect(exp).inverse()
		if err := applyEffect(tx, bal, undo); err != nil {
			return err
		}

		report, err := repairAfter(tx, userID, anchor{
			table:     exp.TableName(),
			id:        exp.ID,
			fecha:     exp.Fecha,
			createdAt: exp.CreatedAt,
		}, undo)
		if err != nil {
			return err
		}

		if err := tx.Delete(exp).Error; err != nil {
			return fmt.Errorf("delete expense: %w", err)
		}

		result = DeleteExpenseResult{Balance: bal, GastosActualizados: report.Expenses, Repair: report}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("user %d deleted expense %d, repaired %d snapshots", userID, expenseID, result.Repair.Total())
	return &result, nil
}
