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

const defaultTransferDescription = "Transferencia"

// TransferInput a move between pools
type TransferInput struct {
	Tipo        models.TransferType
	Cantidad    decimal.Decimal
	Descripcion string
}

// TransferResult the stored transfer and the balance after it
type TransferResult struct {
	Transfer *models.TransferRecord `json:"transfer"`
	Balance  *models.Balance        `json:"balance"`
}

// DeleteTransferResult balance after the deletion and the snapshots it patched
type DeleteTransferResult struct {
	Balance *models.Balance `json:"balance"`
	Repair  RepairReport    `json:"repair"`
}

// CreateTransfer moves money between pools. The source pool must cover the amount.
func (l *Ledger) CreateTransfer(ctx context.Context, userID uint, in TransferInput) (*TransferResult, error) {
	if !in.Tipo.Valid() {
		return nil, ErrInvalidTransferType
	}
	amount, err := normalizeAmount(in.Cantidad)
	if err != nil {
		return nil, err
	}
	desc, err := optionalDescription(in.Descripcion, defaultTransferDescription)
	if err != nil {
		return nil, err
	}

	var result TransferResult
	err = l.conn(ctx).Transaction(func(tx *gorm.DB) error {
		bal, err := findBalance(tx, userID, true)
		if err != nil {
			return err
		}

		if bal.Amount(in.Tipo.Source()).LessThan(amount) {
			if in.Tipo.Source() == models.PoolBanco {
				return ErrInsufficientBanco
			}
			return ErrInsufficientCajon
		}

		bancoBefore, cajonBefore := bal.Banco, bal.Cajon
		rec := models.TransferRecord{
			UserID:        userID,
			Cantidad:      amount,
			Tipo:          in.Tipo,
			BancoAnterior: bancoBefore,
			CajonAnterior: cajonBefore,
			Descripcion:   desc,
		}
		if err := applyEffect(tx, bal, transferEffect(&rec)); err != nil {
			return err
		}

		now := l.now()
		rec.BancoPosterior = bal.Banco
		rec.CajonPosterior = bal.Cajon
		rec.Fecha = now
		rec.CreatedAt = now
		rec.UpdatedAt = now
		if err := tx.Create(&rec).Error; err != nil {
			return fmt.Errorf("create transfer: %w", err)
		}

		result = TransferResult{Transfer: &rec, Balance: bal}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ListTransfers returns all transfers of the user, newest first
func (l *Ledger) ListTransfers(ctx context.Context, userID uint) ([]models.TransferRecord, error) {
	var transfers []models.TransferRecord
	if err := l.conn(ctx).
		Where("user_id = ?", userID).
		Order("fecha DESC, created_at DESC, id DESC").
		Find(&transfers).Error; err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	return transfers, nil
}

// DeleteTransfer removes one of the user's most recent transfers, reverses it
// on both pools and patches every later snapshot.
func (l *Ledger) DeleteTransfer(ctx context.Context, userID, transferID uint) (*DeleteTransferResult, error) {
	var result DeleteTransferResult
	err := l.conn(ctx).Transaction(func(tx *gorm.DB) error {
		var rec models.TransferRecord
		if err := tx.First(&rec, transferID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTransferNotFound
			}
			return fmt.Errorf("load transfer: %w", err)
		}
		if rec.UserID != userID {
			return ErrNotOwner
		}

		bal, err := findBalance(tx, userID, true)
		if err != nil {
			return err
		}

		ok, err := withinDeleteWindow(tx, &models.TransferRecord{}, userID, rec.ID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrTransferOutsideWindow
		}

		undo := transferEffect(&rec).inverse()
		if err := applyEffect(tx, bal, undo); err != nil {
			return err
		}

		report, err := repairAfter(tx, userID, anchor{
			table:     rec.TableName(),
			id:        rec.ID,
			fecha:     rec.Fecha,
			createdAt: rec.CreatedAt,
		}, undo)
		if err != nil {
			return err
		}

		if err := tx.Delete(&rec).Error; err != nil {
			return fmt.Errorf("delete transfer: %w", err)
		}

		result = DeleteTransferResult{Balance: bal, Repair: report}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("user %d deleted transfer %d, repaired %d snapshots", userID, transferID, result.Repair.Total())
	return &result, nil
}
