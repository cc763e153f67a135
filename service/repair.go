package service

import (
	"fmt"
	"time"

	"cuentas/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// effect net change a movement made to both pools
type effect struct {
	banco decimal.Decimal
	cajon decimal.Decimal
}

func (e effect) inverse() effect {
	return effect{banco: e.banco.Neg(), cajon: e.cajon.Neg()}
}

func (e effect) on(p models.Pool) decimal.Decimal {
	if p == models.PoolBanco {
		return e.banco
	}
	return e.cajon
}

func (e effect) isZero() bool {
	return e.banco.IsZero() && e.cajon.IsZero()
}

func depositEffect(d *models.Deposit) effect {
	if d.Tipo.Pool() == models.PoolBanco {
		return effect{banco: d.Cantidad}
	}
	return effect{cajon: d.Cantidad}
}

func expenseEffect(e *models.Expense) effect {
	return effect{cajon: e.Monto.Neg()}
}

func transferEffect(t *models.TransferRecord) effect {
	if t.Tipo == models.TransferBancoACajon {
		return effect{banco: t.Cantidad.Neg(), cajon: t.Cantidad}
	}
	return effect{banco: t.Cantidad, cajon: t.Cantidad.Neg()}
}

// anchor position of a removed movement in ledger order
type anchor struct {
	table     string
	id        uint
	fecha     time.Time
	createdAt time.Time
}

// RepairReport number of later records whose snapshots were patched
type RepairReport struct {
	Expenses  int `json:"expenses"`
	Transfers int `json:"transfers"`
	Deposits  int `json:"deposits"`
}

// Total records patched across all kinds
func (r RepairReport) Total() int {
	return r.Expenses + r.Transfers + r.Deposits
}

// after selects records that follow the anchor: fecha on or after the anchor's
// calendar day and created strictly later. Rows of the anchor's own table with
// an identical created_at are ordered by id.
func after(at anchor, table string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Where("fecha >= ?", startOfDay(at.fecha))
		if table == at.table {
			return db.Where("(created_at > ? OR (created_at = ? AND id > ?))", at.createdAt, at.createdAt, at.id)
		}
		return db.Where("created_at > ?", at.createdAt)
	}
}

const ledgerOrderAsc = "fecha ASC, created_at ASC, id ASC"

// repairAfter shifts every snapshot recorded after the anchor by undo, the
// inverse of the removed movement's effect. This is a forward patch: each later
// snapshot differs from a full replay without the removed movement by exactly
// that constant, so no replay is needed.
func repairAfter(tx *gorm.DB, userID uint, at anchor, undo effect) (RepairReport, error) {
	var report RepairReport
	if undo.isZero() {
		return report, nil
	}

	if !undo.cajon.IsZero() {
		var expenses []models.Expense
		if err := tx.Where("user_id = ?", userID).
			Scopes(after(at, models.Expense{}.TableName())).
			Order(ledgerOrderAsc).
			Find(&expenses).Error; err != nil {
			return report, fmt.Errorf("load later expenses: %w", err)
		}
		for i := range expenses {
			e := &expenses[i]
			e.CajonPosterior = e.CajonPosterior.Add(undo.cajon)
			if err := tx.Model(e).Update("cajon_posterior", e.CajonPosterior).Error; err != nil {
				return report, fmt.Errorf("repair expense %d: %w", e.ID, err)
			}
		}
		report.Expenses = len(expenses)
	}

	var transfers []models.TransferRecord
	if err := tx.Where("user_id = ?", userID).
		Scopes(after(at, models.TransferRecord{}.TableName())).
		Order(ledgerOrderAsc).
		Find(&transfers).Error; err != nil {
		return report, fmt.Errorf("load later transfers: %w", err)
	}
	for i := range transfers {
		t := &transfers[i]
		t.BancoAnterior = t.BancoAnterior.Add(undo.banco)
		t.BancoPosterior = t.BancoPosterior.Add(undo.banco)
		t.CajonAnterior = t.CajonAnterior.Add(undo.cajon)
		t.CajonPosterior = t.CajonPosterior.Add(undo.cajon)
		if err := tx.Model(t).Updates(map[string]interface{}{
			"banco_anterior":  t.BancoAnterior,
			"banco_posterior": t.BancoPosterior,
			"cajon_anterior":  t.CajonAnterior,
			"cajon_posterior": t.CajonPosterior,
		}).Error; err != nil {
			return report, fmt.Errorf("repair transfer %d: %w", t.ID, err)
		}
	}
	report.Transfers = len(transfers)

	var deposits []models.Deposit
	if err := tx.Where("user_id = ?", userID).
		Scopes(after(at, models.Deposit{}.TableName())).
		Order(ledgerOrderAsc).
		Find(&deposits).Error; err != nil {
		return report, fmt.Errorf("load later deposits: %w", err)
	}
	for i := range deposits {
		d := &deposits[i]
		delta := undo.on(d.Tipo.Pool())
		if delta.IsZero() {
			continue
		}
		d.BalanceAnterior = d.BalanceAnterior.Add(delta)
		d.BalancePosterior = d.BalancePosterior.Add(delta)
		if err := tx.Model(d).Updates(map[string]interface{}{
			"balance_anterior":  d.BalanceAnterior,
			"balance_posterior": d.BalancePosterior,
		}).Error; err != nil {
			return report, fmt.Errorf("repair deposit %d: %w", d.ID, err)
		}
		report.Deposits++
	}

	return report, nil
}
