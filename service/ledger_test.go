package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"testing"
	"time"

	"cuentas/config"
	"cuentas/database"
	"cuentas/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// testClock returns a clock that advances by step on every read
func testClock(start time.Time, step time.Duration) func() time.Time {
	current := start.Add(-step)
	return func() time.Time {
		current = current.Add(step)
		return current
	}
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := database.Open(config.DatabaseConfig{
		Driver:   "sqlite",
		Path:     fmt.Sprintf("file:%s?mode=memory&cache=shared", name),
		LogLevel: "silent",
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	require.NoError(t, database.SeedExpenseTypes(db))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func setupTestLedger(t *testing.T, step time.Duration) (*Ledger, *gorm.DB) {
	db := setupTestDB(t)
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	return NewLedger(db).WithClock(testClock(start, step)), db
}

func createUser(t *testing.T, db *gorm.DB, name string) uint {
	t.Helper()
	u := models.User{Name: name, Email: name + "@example.com"}
	require.NoError(t, db.Create(&u).Error)
	return u.ID
}

func defaultType(t *testing.T, db *gorm.DB, nombre string) uint {
	t.Helper()
	var et models.ExpenseType
	require.NoError(t, db.Where("nombre = ? AND is_default = ?", nombre, true).First(&et).Error)
	return et.ID
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertAmount(t *testing.T, expected string, actual decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.Equal(t, dec(expected).StringFixed(2), actual.StringFixed(2), msgAndArgs...)
}

func TestLedger_Scenario(t *testing.T) {
	l, db := setupTestLedger(t, time.Second)
	ctx := context.Background()
	userID := createUser(t, db, "ana")

	bal, err := l.GetBalance(ctx, userID)
	require.NoError(t, err)
	assertAmount(t, "0", bal.Banco)
	assertAmount(t, "0", bal.Cajon)

	dep, err := l.Deposit(ctx, userID, DepositInput{Pool: models.PoolBanco, Cantidad: dec("100"), Descripcion: "salary"})
	require.NoError(t, err)
	assertAmount(t, "100", dep.Balance.Banco)
	assertAmount(t, "0", dep.Balance.Cajon)
	assert.Equal(t, models.DepositBanco, dep.Deposito.Tipo)
	assertAmount(t, "0", dep.Deposito.BalanceAnterior)
	assertAmount(t, "100", dep.Deposito.BalancePosterior)

	tr, err := l.CreateTransfer(ctx, userID, TransferInput{Tipo: models.TransferBancoACajon, Cantidad: dec("40")})
	require.NoError(t, err)
	assertAmount(t, "60", tr.Balance.Banco)
	assertAmount(t, "40", tr.Balance.Cajon)
	assertAmount(t, "100", tr.Transfer.BancoAnterior)
	assertAmount(t, "0", tr.Transfer.CajonAnterior)
	assertAmount(t, "60", tr.Transfer.BancoPosterior)
	assertAmount(t, "40", tr.Transfer.CajonPosterior)
	assert.Equal(t, "Transferencia", tr.Transfer.Descripcion)

	exp, err := l.CreateExpense(ctx, userID, ExpenseInput{ExpenseTypeID: defaultType(t, db, "Comida"), Monto: dec("15"), Descripcion: "food"})
	require.NoError(t, err)
	assertAmount(t, "60", exp.Balance.Banco)
	assertAmount(t, "25", exp.Balance.Cajon)
	assertAmount(t, "25", exp.Expense.CajonPosterior)
	require.NotNil(t, exp.Expense.ExpenseType)
	assert.Equal(t, "Comida", exp.Expense.ExpenseType.Nombre)

	del, err := l.DeleteTransfer(ctx, userID, tr.Transfer.ID)
	require.NoError(t, err)
	// as if the transfer never happened: the surviving expense still debits the cajón
	assertAmount(t, "100", del.Balance.Banco)
	assertAmount(t, "-15", del.Balance.Cajon)
	assert.Equal(t, 1, del.Repair.Expenses)

	got, err := l.GetExpense(ctx, userID, exp.Expense.ID)
	require.NoError(t, err)
	assertAmount(t, "-15", got.CajonPosterior)

	var transfers int64
	require.NoError(t, db.Model(&models.TransferRecord{}).Count(&transfers).Error)
	assert.Zero(t, transfers)

	assertReplayMatches(t, db, userID)
}

func TestLedger_DeleteExpenseRepairsLaterSnapshots(t *testing.T) {
	l, db := setupTestLedger(t, time.Second)
	ctx := context.Background()
	userID := createUser(t, db, "luis")
	comida := defaultType(t, db, "Comida")

	_, err := l.Deposit(ctx, userID, DepositInput{Pool: models.PoolCajon, Cantidad: dec("50"), Descripcion: "cash"})
	require.NoError(t, err)
	first, err := l.CreateExpense(ctx, userID, ExpenseInput{ExpenseTypeID: comida, Monto: dec("10"), Descripcion: "a"})
	require.NoError(t, err)
	_, err = l.CreateExpense(ctx, userID, ExpenseInput{ExpenseTypeID: comida, Monto: dec("5.5"), Descripcion: "b"})
	require.NoError(t, err)
	tr, err := l.CreateTransfer(ctx, userID, TransferInput{Tipo: models.TransferCajonABanco, Cantidad: dec("20"), Descripcion: "ahorro"})
	require.NoError(t, err)
	dep, err := l.Deposit(ctx, userID, DepositInput{Pool: models.PoolCajon, Cantidad: dec("3"), Descripcion: "tip"})
	require.NoError(t, err)

	res, err := l.DeleteExpense(ctx, userID, first.Expense.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, res.GastosActualizados)
	assert.Equal(t, RepairReport{Expenses: 1, Transfers: 1, Deposits: 1}, res.Repair)
	assertAmount(t, "20", res.Balance.Banco)
	assertAmount(t, "27.5", res.Balance.Cajon)

	var later models.TransferRecord
	require.NoError(t, db.First(&later, tr.Transfer.ID).Error)
	assertAmount(t, "44.5", later.CajonAnterior)
	assertAmount(t, "24.5", later.CajonPosterior)
	assertAmount(t, "0", later.BancoAnterior)
	assertAmount(t, "20", later.BancoPosterior)

	var tip models.Deposit
	require.NoError(t, db.First(&tip, dep.Deposito.ID).Error)
	assertAmount(t, "24.5", tip.BalanceAnterior)
	assertAmount(t, "27.5", tip.BalancePosterior)

	_, err = l.GetExpense(ctx, userID, first.Expense.ID)
	assert.ErrorIs(t, err, ErrExpenseNotFound)

	assertReplayMatches(t, db, userID)
}

func TestLedger_DeleteWindow(t *testing.T) {
	l, db := setupTestLedger(t, time.Second)
	ctx := context.Background()
	userID := createUser(t, db, "eva")
	comida := defaultType(t, db, "Comida")

	_, err := l.Deposit(ctx, userID, DepositInput{Pool: models.PoolBanco, Cantidad: dec("1000"), Descripcion: "salary"})
	require.NoError(t, err)

	var expenseIDs, transferIDs []uint
	for i := 0; i < DeleteWindow+1; i++ {
		tr, err := l.CreateTransfer(ctx, userID, TransferInput{Tipo: models.TransferBancoACajon, Cantidad: dec("10")})
		require.NoError(t, err)
		transferIDs = append(transferIDs, tr.Transfer.ID)

		exp, err := l.CreateExpense(ctx, userID, ExpenseInput{ExpenseTypeID: comida, Monto: dec("1"), Descripcion: fmt.Sprintf("gasto %d", i)})
		require.NoError(t, err)
		expenseIDs = append(expenseIDs, exp.Expense.ID)
	}

	before, err := l.GetBalance(ctx, userID)
	require.NoError(t, err)
	var snapshot []models.Expense
	require.NoError(t, db.Order("id").Find(&snapshot).Error)

	_, err = l.DeleteExpense(ctx, userID, expenseIDs[0])
	assert.ErrorIs(t, err, ErrExpenseOutsideWindow)
	assert.ErrorIs(t, err, ErrBusinessRule)

	_, err = l.DeleteTransfer(ctx, userID, transferIDs[0])
	assert.ErrorIs(t, err, ErrTransferOutsideWindow)

	after, err := l.GetBalance(ctx, userID)
	require.NoError(t, err)
	assertAmount(t, before.Banco.String(), after.Banco)
	assertAmount(t, before.Cajon.String(), after.Cajon)

	var unchanged []models.Expense
	require.NoError(t, db.Order("id").Find(&unchanged).Error)
	require.Len(t, unchanged, len(snapshot))
	for i := range snapshot {
		assertAmount(t, snapshot[i].CajonPosterior.String(), unchanged[i].CajonPosterior)
	}

	// the second oldest is inside the window
	_, err = l.DeleteExpense(ctx, userID, expenseIDs[1])
	require.NoError(t, err)
	_, err = l.DeleteTransfer(ctx, userID, transferIDs[1])
	require.NoError(t, err)

	assertReplayMatches(t, db, userID)
}

func TestLedger_OwnershipAndNotFound(t *testing.T) {
	l, db := setupTestLedger(t, time.Second)
	ctx := context.Background()
	owner := createUser(t, db, "owner")
	other := createUser(t, db, "other")

	_, err := l.Deposit(ctx, owner, DepositInput{Pool: models.PoolBanco, Cantidad: dec("100"), Descripcion: "salary"})
	require.NoError(t, err)
	tr, err := l.CreateTransfer(ctx, owner, TransferInput{Tipo: models.TransferBancoACajon, Cantidad: dec("50")})
	require.NoError(t, err)
	exp, err := l.CreateExpense(ctx, owner, ExpenseInput{ExpenseTypeID: defaultType(t, db, "Viajes"), Monto: dec("5"), Descripcion: "bus"})
	require.NoError(t, err)

	_, err = l.GetExpense(ctx, other, exp.Expense.ID)
	assert.ErrorIs(t, err, ErrNotOwner)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = l.DeleteExpense(ctx, other, exp.Expense.ID)
	assert.ErrorIs(t, err, ErrNotOwner)

	_, err = l.DeleteTransfer(ctx, other, tr.Transfer.ID)
	assert.ErrorIs(t, err, ErrNotOwner)

	_, err = l.DeleteExpense(ctx, owner, 9999)
	assert.ErrorIs(t, err, ErrExpenseNotFound)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = l.DeleteTransfer(ctx, owner, 9999)
	assert.ErrorIs(t, err, ErrTransferNotFound)
}

func TestLedger_Validation(t *testing.T) {
	l, db := setupTestLedger(t, time.Second)
	ctx := context.Background()
	userID := createUser(t, db, "val")
	comida := defaultType(t, db, "Comida")

	tests := []struct {
		name string
		run  func() error
		want error
	}{
		{"deposit zero", func() error {
			_, err := l.Deposit(ctx, userID, DepositInput{Pool: models.PoolBanco, Cantidad: dec("0"), Descripcion: "x"})
			return err
		}, ErrInvalidAmount},
		{"deposit rounds to zero", func() error {
			_, err := l.Deposit(ctx, userID, DepositInput{Pool: models.PoolBanco, Cantidad: dec("0.001"), Descripcion: "x"})
			return err
		}, ErrInvalidAmount},
		{"deposit bad pool", func() error {
			_, err := l.Deposit(ctx, userID, DepositInput{Pool: "cartera", Cantidad: dec("1"), Descripcion: "x"})
			return err
		}, ErrInvalidPool},
		{"deposit without description", func() error {
			_, err := l.Deposit(ctx, userID, DepositInput{Pool: models.PoolCajon, Cantidad: dec("1"), Descripcion: "  "})
			return err
		}, ErrDescriptionRequired},
		{"deposit long description", func() error {
			_, err := l.Deposit(ctx, userID, DepositInput{Pool: models.PoolCajon, Cantidad: dec("1"), Descripcion: strings.Repeat("ñ", 256)})
			return err
		}, ErrDescriptionTooLong},
		{"expense negative", func() error {
			_, err := l.CreateExpense(ctx, userID, ExpenseInput{ExpenseTypeID: comida, Monto: dec("-3"), Descripcion: "x"})
			return err
		}, ErrInvalidAmount},
		{"expense unknown type", func() error {
			_, err := l.CreateExpense(ctx, userID, ExpenseInput{ExpenseTypeID: 9999, Monto: dec("3"), Descripcion: "x"})
			return err
		}, ErrInvalidExpenseType},
		{"transfer bad direction", func() error {
			_, err := l.CreateTransfer(ctx, userID, TransferInput{Tipo: "sideways", Cantidad: dec("3")})
			return err
		}, ErrInvalidTransferType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}

	// nothing was written
	var count int64
	require.NoError(t, db.Model(&models.Balance{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestLedger_NoBalanceYet(t *testing.T) {
	l, db := setupTestLedger(t, time.Second)
	ctx := context.Background()
	userID := createUser(t, db, "nuevo")

	_, err := l.CreateExpense(ctx, userID, ExpenseInput{ExpenseTypeID: defaultType(t, db, "Comida"), Monto: dec("3"), Descripcion: "x"})
	assert.ErrorIs(t, err, ErrNoBalance)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = l.CreateTransfer(ctx, userID, TransferInput{Tipo: models.TransferBancoACajon, Cantidad: dec("3")})
	assert.ErrorIs(t, err, ErrNoBalance)

	list, err := l.ListExpenses(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, list.Expenses)
	assertAmount(t, "0", list.BalanceActual)
}

func TestLedger_InsufficientFunds(t *testing.T) {
	l, db := setupTestLedger(t, time.Second)
	ctx := context.Background()
	userID := createUser(t, db, "pobre")

	_, err := l.Deposit(ctx, userID, DepositInput{Pool: models.PoolBanco, Cantidad: dec("30"), Descripcion: "salary"})
	require.NoError(t, err)

	_, err = l.CreateTransfer(ctx, userID, TransferInput{Tipo: models.TransferBancoACajon, Cantidad: dec("30.01")})
	assert.ErrorIs(t, err, ErrInsufficientBanco)

	_, err = l.CreateTransfer(ctx, userID, TransferInput{Tipo: models.TransferCajonABanco, Cantidad: dec("1")})
	assert.ErrorIs(t, err, ErrInsufficientCajon)

	bal, err := l.GetBalance(ctx, userID)
	require.NoError(t, err)
	assertAmount(t, "30", bal.Banco)
	assertAmount(t, "0", bal.Cajon)

	// the full amount is allowed
	_, err = l.CreateTransfer(ctx, userID, TransferInput{Tipo: models.TransferBancoACajon, Cantidad: dec("30")})
	require.NoError(t, err)

	// expenses are not floored
	res, err := l.CreateExpense(ctx, userID, ExpenseInput{ExpenseTypeID: defaultType(t, db, "Caprichos"), Monto: dec("45"), Descripcion: "x"})
	require.NoError(t, err)
	assertAmount(t, "-15", res.Balance.Cajon)
}

func TestLedger_GetBalanceIsIdempotent(t *testing.T) {
	l, db := setupTestLedger(t, time.Second)
	ctx := context.Background()
	userID := createUser(t, db, "idem")

	first, err := l.GetBalance(ctx, userID)
	require.NoError(t, err)
	second, err := l.GetBalance(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&models.Balance{}).Where("user_id = ?", userID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

// randomized sequence over several days; every stored snapshot must match a replay
func TestLedger_RandomReplayInvariant(t *testing.T) {
	l, db := setupTestLedger(t, 47*time.Minute)
	ctx := context.Background()
	userID := createUser(t, db, "replay")
	types := []uint{defaultType(t, db, "Comida"), defaultType(t, db, "Viajes")}
	rng := rand.New(rand.NewSource(42))

	amount := func() decimal.Decimal {
		return decimal.New(int64(rng.Intn(5000)+1), -2)
	}

	_, err := l.Deposit(ctx, userID, DepositInput{Pool: models.PoolBanco, Cantidad: dec("200"), Descripcion: "inicio"})
	require.NoError(t, err)

	deletes := 0
	for i := 0; i < 150; i++ {
		switch op := rng.Intn(6); op {
		case 0:
			pool := models.PoolBanco
			if rng.Intn(2) == 0 {
				pool = models.PoolCajon
			}
			_, err = l.Deposit(ctx, userID, DepositInput{Pool: pool, Cantidad: amount(), Descripcion: "dep"})
			require.NoError(t, err)
		case 1, 2:
			_, err = l.CreateExpense(ctx, userID, ExpenseInput{ExpenseTypeID: types[rng.Intn(len(types))], Monto: amount(), Descripcion: "exp"})
			require.NoError(t, err)
		case 3:
			tipo := models.TransferBancoACajon
			if rng.Intn(2) == 0 {
				tipo = models.TransferCajonABanco
			}
			_, err = l.CreateTransfer(ctx, userID, TransferInput{Tipo: tipo, Cantidad: amount()})
			if err != nil {
				require.True(t, errors.Is(err, ErrInsufficientBanco) || errors.Is(err, ErrInsufficientCajon), err)
			}
		case 4:
			var ids []uint
			require.NoError(t, db.Model(&models.Expense{}).Where("user_id = ?", userID).
				Order("fecha DESC, created_at DESC, id DESC").Limit(DeleteWindow).Pluck("id", &ids).Error)
			if len(ids) > 0 {
				_, err = l.DeleteExpense(ctx, userID, ids[rng.Intn(len(ids))])
				require.NoError(t, err)
				deletes++
			}
		case 5:
			var ids []uint
			require.NoError(t, db.Model(&models.TransferRecord{}).Where("user_id = ?", userID).
				Order("fecha DESC, created_at DESC, id DESC").Limit(DeleteWindow).Pluck("id", &ids).Error)
			if len(ids) > 0 {
				_, err = l.DeleteTransfer(ctx, userID, ids[rng.Intn(len(ids))])
				require.NoError(t, err)
				deletes++
			}
		}
	}

	require.Greater(t, deletes, 0)
	assertReplayMatches(t, db, userID)
}

type replayEntry struct {
	createdAt time.Time
	check     func(banco, cajon decimal.Decimal)
	eff       effect
}

// assertReplayMatches replays every surviving movement in ledger order and
// compares each stored snapshot and the live balance
func assertReplayMatches(t *testing.T, db *gorm.DB, userID uint) {
	t.Helper()

	var (
		deposits  []models.Deposit
		expenses  []models.Expense
		transfers []models.TransferRecord
	)
	require.NoError(t, db.Where("user_id = ?", userID).Find(&deposits).Error)
	require.NoError(t, db.Where("user_id = ?", userID).Find(&expenses).Error)
	require.NoError(t, db.Where("user_id = ?", userID).Find(&transfers).Error)

	var entries []replayEntry
	for i := range deposits {
		d := deposits[i]
		entries = append(entries, replayEntry{createdAt: d.CreatedAt, eff: depositEffect(&d), check: func(banco, cajon decimal.Decimal) {
			after := banco
			if d.Tipo.Pool() == models.PoolCajon {
				after = cajon
			}
			assertAmount(t, after.String(), d.BalancePosterior, "deposit %d posterior", d.ID)
			assertAmount(t, after.Sub(d.Cantidad).String(), d.BalanceAnterior, "deposit %d anterior", d.ID)
		}})
	}
	for i := range expenses {
		e := expenses[i]
		entries = append(entries, replayEntry{createdAt: e.CreatedAt, eff: expenseEffect(&e), check: func(_, cajon decimal.Decimal) {
			assertAmount(t, cajon.String(), e.CajonPosterior, "expense %d", e.ID)
		}})
	}
	for i := range transfers {
		tr := transfers[i]
		eff := transferEffect(&tr)
		entries = append(entries, replayEntry{createdAt: tr.CreatedAt, eff: eff, check: func(banco, cajon decimal.Decimal) {
			assertAmount(t, banco.String(), tr.BancoPosterior, "transfer %d banco", tr.ID)
			assertAmount(t, cajon.String(), tr.CajonPosterior, "transfer %d cajon", tr.ID)
			assertAmount(t, banco.Sub(eff.banco).String(), tr.BancoAnterior, "transfer %d banco anterior", tr.ID)
			assertAmount(t, cajon.Sub(eff.cajon).String(), tr.CajonAnterior, "transfer %d cajon anterior", tr.ID)
		}})
	}

	// fecha always falls on the created_at day, so created_at alone gives ledger order
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].createdAt.Before(entries[j].createdAt)
	})

	banco, cajon := decimal.Zero, decimal.Zero
	for _, e := range entries {
		banco = banco.Add(e.eff.banco)
		cajon = cajon.Add(e.eff.cajon)
		e.check(banco, cajon)
	}

	var bal models.Balance
	require.NoError(t, db.Where("user_id = ?", userID).First(&bal).Error)
	assertAmount(t, banco.String(), bal.Banco, "live banco")
	assertAmount(t, cajon.String(), bal.Cajon, "live cajon")
}
