package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cuentas/models"

	"gorm.io/gorm"
)

// ListExpenseTypes returns the shared defaults plus the user's own types
func (l *Ledger) ListExpenseTypes(ctx context.Context, userID uint) ([]models.ExpenseType, error) {
	var types []models.ExpenseType
	if err := l.conn(ctx).
		Where("is_default = ? OR user_id = ?", true, userID).
		Order("is_default DESC, id ASC").
		Find(&types).Error; err != nil {
		return nil, fmt.Errorf("list expense types: %w", err)
	}
	return types, nil
}

// CreateExpenseType adds a custom type owned by the user
func (l *Ledger) CreateExpenseType(ctx context.Context, userID uint, nombre string) (*models.ExpenseType, error) {
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return nil, ErrNameRequired
	}
	if len([]rune(nombre)) > maxDescriptionLen {
		return nil, ErrNameTooLong
	}

	owner := userID
	et := models.ExpenseType{Nombre: nombre, UserID: &owner, IsDefault: false}
	if err := l.conn(ctx).Create(&et).Error; err != nil {
		return nil, fmt.Errorf("create expense type: %w", err)
	}
	return &et, nil
}

// DeleteExpenseType removes a custom type that no expense references.
// Default types and types of other users are forbidden.
func (l *Ledger) DeleteExpenseType(ctx context.Context, userID, typeID uint) error {
	return l.conn(ctx).Transaction(func(tx *gorm.DB) error {
		var et models.ExpenseType
		if err := tx.First(&et, typeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrExpenseTypeNotFound
			}
			return fmt.Errorf("load expense type: %w", err)
		}
		if et.IsDefault {
			return ErrDefaultExpenseType
		}
		if et.UserID == nil || *et.UserID != userID {
			return ErrNotOwner
		}

		var used int64
		if err := tx.Model(&models.Expense{}).Where("expense_type_id = ?", et.ID).Count(&used).Error; err != nil {
			return fmt.Errorf("count expenses: %w", err)
		}
		if used > 0 {
			return ErrExpenseTypeInUse
		}

		if err := tx.Delete(&et).Error; err != nil {
			return fmt.Errorf("delete expense type: %w", err)
		}
		return nil
	})
}

// visibleExpenseType loads a type the user may read
func visibleExpenseType(db *gorm.DB, userID, typeID uint) (*models.ExpenseType, error) {
	var et models.ExpenseType
	if err := db.First(&et, typeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExpenseTypeNotFound
		}
		return nil, fmt.Errorf("load expense type: %w", err)
	}
	if !et.VisibleTo(userID) {
		return nil, ErrNotOwner
	}
	return &et, nil
}
