package service

import (
	"context"
	"fmt"

	"cuentas/models"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

func depositMovement(d *models.Deposit) models.Movement {
	tipo := d.Tipo
	return models.Movement{
		ID:               d.ID,
		Cantidad:         d.Cantidad,
		Descripcion:      d.Descripcion,
		Fecha:            d.Fecha,
		BalancePosterior: d.BalancePosterior,
		CreatedAt:        d.CreatedAt,
		TipoMovimiento:   models.MovementDeposito,
		TipoDeposito:     &tipo,
	}
}

// movementFeedSQL merges the three movement tables into the Movement shape.
// balance_posterior is the deposit's pool snapshot or the cajón snapshot otherwise.
const movementFeedSQL = `SELECT id, cantidad, descripcion, fecha, balance_posterior, created_at,
	'deposito' AS tipo_movimiento, tipo AS tipo_deposito, NULL AS tipo
FROM bank_deposits WHERE user_id = @user
UNION ALL
SELECT id, monto, descripcion, fecha, cajon_posterior, created_at,
	'gasto', NULL, NULL
FROM expenses WHERE user_id = @user
UNION ALL
SELECT id, cantidad, descripcion, fecha, cajon_posterior, created_at,
	'transferencia', NULL, tipo
FROM transfer_records WHERE user_id = @user
ORDER BY created_at DESC, id DESC`

// fetchMovements returns the merged feed newest first, one window of it when
// limit > 0. The database pages the union, so a page costs the same at any depth.
func fetchMovements(ctx context.Context, db *gorm.DB, userID uint, limit, offset int) ([]models.Movement, error) {
	query := movementFeedSQL
	args := map[string]interface{}{"user": userID}
	if limit > 0 {
		query += " LIMIT @limit OFFSET @offset"
		args["limit"] = limit
		args["offset"] = offset
	}

	movements := []models.Movement{}
	if err := db.WithContext(ctx).Raw(query, args).Scan(&movements).Error; err != nil {
		return nil, fmt.Errorf("load movements: %w", err)
	}
	return movements, nil
}

// ListMovements returns one page of the merged deposit, expense and transfer
// feed, newest first.
func (l *Ledger) ListMovements(ctx context.Context, userID uint, page int) (*Page[models.Movement], error) {
	page = normalizePage(page)
	db := l.conn(ctx)

	var counts [3]int64
	g, gctx := errgroup.WithContext(ctx)
	for i, model := range []interface{}{&models.Deposit{}, &models.Expense{}, &models.TransferRecord{}} {
		i, model := i, model
		g.Go(func() error {
			return db.WithContext(gctx).Model(model).Where("user_id = ?", userID).Count(&counts[i]).Error
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("count movements: %w", err)
	}

	list, err := fetchMovements(ctx, db, userID, PageSize, pageOffset(page))
	if err != nil {
		return nil, err
	}

	return &Page[models.Movement]{
		Total:    counts[0] + counts[1] + counts[2],
		Page:     page,
		PageSize: PageSize,
		List:     list,
	}, nil
}
