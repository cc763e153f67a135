package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cuentas/models"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TypeTotal spending of one expense type inside a window
type TypeTotal struct {
	ExpenseTypeID uint            `json:"expense_type_id"`
	TipoNombre    string          `json:"tipo_nombre"`
	Total         decimal.Decimal `json:"total"`
}

// MonthlySummaryResult spending per type and cartera income of one month
type MonthlySummaryResult struct {
	Mes      string          `json:"mes"`
	Gastos   []TypeTotal     `json:"gastos"`
	Ingresos decimal.Decimal `json:"ingresos"`
}

// SeasonSummaryResult spending per type and cartera income since the season start
type SeasonSummaryResult struct {
	Summary     []TypeTotal     `json:"summary"`
	Ingresos    decimal.Decimal `json:"ingresos"`
	SeasonStart time.Time       `json:"season_start"`
}

// ExpenseFilter window of ListExpensesByType. Season takes precedence over Date.
type ExpenseFilter struct {
	Date   string
	Season bool
}

type sumRow struct {
	Total decimal.Decimal
}

func typeTotals(db *gorm.DB, userID uint, scope func(*gorm.DB) *gorm.DB) ([]TypeTotal, error) {
	var totals []TypeTotal
	if err := db.Table("expenses").
		Select("expense_types.id AS expense_type_id, expense_types.nombre AS tipo_nombre, SUM(expenses.monto) AS total").
		Joins("JOIN expense_types ON expense_types.id = expenses.expense_type_id").
		Where("expenses.user_id = ?", userID).
		Scopes(scope).
		Group("expense_types.id, expense_types.nombre").
		Order("expense_types.id").
		Scan(&totals).Error; err != nil {
		return nil, fmt.Errorf("sum expenses: %w", err)
	}
	for i := range totals {
		totals[i].Total = totals[i].Total.Round(2)
	}
	if totals == nil {
		totals = []TypeTotal{}
	}
	return totals, nil
}

func carteraIncome(db *gorm.DB, userID uint, scope func(*gorm.DB) *gorm.DB) (decimal.Decimal, error) {
	var row sumRow
	if err := db.Model(&models.Deposit{}).
		Select("COALESCE(SUM(cantidad), 0) AS total").
		Where("user_id = ? AND tipo = ?", userID, models.DepositCartera).
		Scopes(scope).
		Scan(&row).Error; err != nil {
		return decimal.Zero, fmt.Errorf("sum income: %w", err)
	}
	return row.Total.Round(2), nil
}

func between(column string, from, to time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" >= ? AND "+column+" < ?", from, to)
	}
}

func since(column string, from time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" >= ?", from)
	}
}

// MonthlySummary totals expenses by fecha inside the month ("2006-01"; empty is
// the current month) together with the month's cartera deposits.
func (l *Ledger) MonthlySummary(ctx context.Context, userID uint, month string) (*MonthlySummaryResult, error) {
	first, err := parseMonth(month, l.now())
	if err != nil {
		return nil, err
	}
	next := first.AddDate(0, 1, 0)

	result := MonthlySummaryResult{Mes: first.Format("2006-01")}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		totals, err := typeTotals(l.conn(gctx), userID, between("expenses.fecha", first, next))
		result.Gastos = totals
		return err
	})
	g.Go(func() error {
		income, err := carteraIncome(l.conn(gctx), userID, between("fecha", first, next))
		result.Ingresos = income
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &result, nil
}

// SeasonSummary totals expenses and cartera deposits created since the season
// start. The season starts now when the user has none yet.
func (l *Ledger) SeasonSummary(ctx context.Context, userID uint) (*SeasonSummaryResult, error) {
	start, err := l.seasonStart(l.conn(ctx), userID)
	if err != nil {
		return nil, err
	}

	result := SeasonSummaryResult{SeasonStart: start}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		totals, err := typeTotals(l.conn(gctx), userID, since("expenses.created_at", start))
		result.Summary = totals
		return err
	})
	g.Go(func() error {
		income, err := carteraIncome(l.conn(gctx), userID, since("created_at", start))
		result.Ingresos = income
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &result, nil
}

// ResetSeason moves the season start to now. No movement is touched.
func (l *Ledger) ResetSeason(ctx context.Context, userID uint) (time.Time, error) {
	now := l.now()
	setting := models.SeasonSetting{UserID: userID, SeasonStart: now, CreatedAt: now, UpdatedAt: now}
	if err := l.conn(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"season_start", "updated_at"}),
	}).Create(&setting).Error; err != nil {
		return time.Time{}, fmt.Errorf("reset season: %w", err)
	}
	return now, nil
}

// findSeasonStart returns the stored season start, or ok=false without one
func findSeasonStart(db *gorm.DB, userID uint) (time.Time, bool, error) {
	var setting models.SeasonSetting
	err := db.Where("user_id = ?", userID).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("load season: %w", err)
	}
	return setting.SeasonStart, true, nil
}

func (l *Ledger) seasonStart(db *gorm.DB, userID uint) (time.Time, error) {
	start, ok, err := findSeasonStart(db, userID)
	if err != nil || ok {
		return start, err
	}

	now := l.now()
	setting := models.SeasonSetting{UserID: userID, SeasonStart: now, CreatedAt: now, UpdatedAt: now}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(&setting).Error; err != nil {
		return time.Time{}, fmt.Errorf("create season: %w", err)
	}

	start, _, err = findSeasonStart(db, userID)
	return start, err
}

// ListExpensesByType pages the user's expenses of one type, either for a
// month (by fecha) or for the current season (by created_at).
func (l *Ledger) ListExpensesByType(ctx context.Context, userID, typeID uint, filter ExpenseFilter, page int) (*Page[models.Expense], error) {
	db := l.conn(ctx)
	if _, err := visibleExpenseType(db, userID, typeID); err != nil {
		return nil, err
	}

	var window func(*gorm.DB) *gorm.DB
	if filter.Season {
		start, err := l.seasonStart(db, userID)
		if err != nil {
			return nil, err
		}
		window = since("created_at", start)
	} else {
		first, err := parseMonth(filter.Date, l.now())
		if err != nil {
			return nil, err
		}
		window = between("fecha", first, first.AddDate(0, 1, 0))
	}

	query := func() *gorm.DB {
		return db.Model(&models.Expense{}).
			Where("user_id = ? AND expense_type_id = ?", userID, typeID).
			Scopes(window)
	}

	var total int64
	if err := query().Count(&total).Error; err != nil {
		return nil, fmt.Errorf("count expenses: %w", err)
	}

	page = normalizePage(page)
	expenses := []models.Expense{}
	if err := query().
		Preload("ExpenseType").
		Order("fecha DESC, created_at DESC, id DESC").
		Offset(pageOffset(page)).
		Limit(PageSize).
		Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}

	return &Page[models.Expense]{Total: total, Page: page, PageSize: PageSize, List: expenses}, nil
}

func (l *Ledger) incomeList(db *gorm.DB, userID uint, scope func(*gorm.DB) *gorm.DB) ([]models.Movement, error) {
	var deposits []models.Deposit
	if err := db.Where("user_id = ? AND tipo = ?", userID, models.DepositCartera).
		Scopes(scope).
		Order("fecha DESC, created_at DESC, id DESC").
		Find(&deposits).Error; err != nil {
		return nil, fmt.Errorf("list income: %w", err)
	}
	movements := make([]models.Movement, 0, len(deposits))
	for i := range deposits {
		movements = append(movements, depositMovement(&deposits[i]))
	}
	return movements, nil
}

// MonthIncome lists the cartera deposits of the month containing date
func (l *Ledger) MonthIncome(ctx context.Context, userID uint, date string) ([]models.Movement, error) {
	first, err := parseMonth(date, l.now())
	if err != nil {
		return nil, err
	}
	return l.incomeList(l.conn(ctx), userID, between("fecha", first, first.AddDate(0, 1, 0)))
}

// SeasonIncome lists the cartera deposits dated since the season start, or
// since the start of the current month when the user has no season.
func (l *Ledger) SeasonIncome(ctx context.Context, userID uint) ([]models.Movement, error) {
	db := l.conn(ctx)
	start, ok, err := findSeasonStart(db, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		start = startOfMonth(l.now())
	}
	return l.incomeList(db, userID, since("fecha", start))
}
