package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"cuentas/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// lockedClock is testClock safe for concurrent readers
func lockedClock(start time.Time, step time.Duration) func() time.Time {
	var mu sync.Mutex
	next := testClock(start, step)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return next()
	}
}

func loadBalance(t *testing.T, db *gorm.DB, userID uint) models.Balance {
	t.Helper()
	var bal models.Balance
	require.NoError(t, db.Where("user_id = ?", userID).First(&bal).Error)
	return bal
}

func TestLedger_FailedWriteRollsBack(t *testing.T) {
	ctx := context.Background()

	t.Run("deposit", func(t *testing.T) {
		l, db := setupTestLedger(t, time.Second)
		userID := createUser(t, db, "dep")
		_, err := l.Deposit(ctx, userID, DepositInput{Pool: models.PoolBanco, Cantidad: dec("100"), Descripcion: "salary"})
		require.NoError(t, err)

		require.NoError(t, db.Migrator().DropTable(&models.Deposit{}))

		_, err = l.Deposit(ctx, userID, DepositInput{Pool: models.PoolCajon, Cantidad: dec("5"), Descripcion: "propina"})
		require.Error(t, err)
		assert.ErrorContains(t, err, "create deposit")

		bal := loadBalance(t, db, userID)
		assertAmount(t, "100", bal.Banco)
		assertAmount(t, "0", bal.Cajon)
	})

	t.Run("create transfer", func(t *testing.T) {
		l, db := setupTestLedger(t, time.Second)
		userID := createUser(t, db, "tr")
		_, err := l.Deposit(ctx, userID, DepositInput{Pool: models.PoolBanco, Cantidad: dec("100"), Descripcion: "salary"})
		require.NoError(t, err)

		require.NoError(t, db.Migrator().DropTable(&models.TransferRecord{}))

		_, err = l.CreateTransfer(ctx, userID, TransferInput{Tipo: models.TransferBancoACajon, Cantidad: dec("40")})
		require.Error(t, err)
		assert.ErrorContains(t, err, "create transfer")

		bal := loadBalance(t, db, userID)
		assertAmount(t, "100", bal.Banco)
		assertAmount(t, "0", bal.Cajon)
	})

	t.Run("delete expense", func(t *testing.T) {
		l, db := setupTestLedger(t, time.Second)
		userID := createUser(t, db, "delexp")
		comida := defaultType(t, db, "Comida")
		_, err := l.Deposit(ctx, userID, DepositInput{Pool: models.PoolCajon, Cantidad: dec("50"), Descripcion: "efectivo"})
		require.NoError(t, err)
		first, err := l.CreateExpense(ctx, userID, ExpenseInput{ExpenseTypeID: comida, Monto: dec("10"), Descripcion: "a"})
		require.NoError(t, err)
		second, err := l.CreateExpense(ctx, userID, ExpenseInput{ExpenseTypeID: comida, Monto: dec("5"), Descripcion: "b"})
		require.NoError(t, err)

		// the later expense is patched before the transfer lookup fails
		require.NoError(t, db.Migrator().DropTable(&models.TransferRecord{}))

		_, err = l.DeleteExpense(ctx, userID, first.Expense.ID)
		require.Error(t, err)

		bal := loadBalance(t, db, userID)
		assertAmount(t, "35", bal.Cajon)

		var kept []models.Expense
		require.NoError(t, db.Where("user_id = ?", userID).Order("id").Find(&kept).Error)
		require.Len(t, kept, 2)
		assert.Equal(t, first.Expense.ID, kept[0].ID)
		assert.Equal(t, second.Expense.ID, kept[1].ID)
		assertAmount(t, "35", kept[1].CajonPosterior)
	})

	t.Run("delete transfer", func(t *testing.T) {
		l, db := setupTestLedger(t, time.Second)
		userID := createUser(t, db, "deltr")
		_, err := l.Deposit(ctx, userID, DepositInput{Pool: models.PoolBanco, Cantidad: dec("100"), Descripcion: "salary"})
		require.NoError(t, err)
		tr, err := l.CreateTransfer(ctx, userID, TransferInput{Tipo: models.TransferBancoACajon, Cantidad: dec("40")})
		require.NoError(t, err)
		exp, err := l.CreateExpense(ctx, userID, ExpenseInput{ExpenseTypeID: defaultType(t, db, "Comida"), Monto: dec("15"), Descripcion: "food"})
		require.NoError(t, err)

		require.NoError(t, db.Migrator().DropTable(&models.Deposit{}))

		_, err = l.DeleteTransfer(ctx, userID, tr.Transfer.ID)
		require.Error(t, err)

		bal := loadBalance(t, db, userID)
		assertAmount(t, "60", bal.Banco)
		assertAmount(t, "25", bal.Cajon)

		var transfers int64
		require.NoError(t, db.Model(&models.TransferRecord{}).Where("id = ?", tr.Transfer.ID).Count(&transfers).Error)
		assert.Equal(t, int64(1), transfers)

		var got models.Expense
		require.NoError(t, db.First(&got, exp.Expense.ID).Error)
		assertAmount(t, "25", got.CajonPosterior)
	})
}

func TestLedger_DepositLocksAfterInsert(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	l := NewLedger(db).WithClock(func() time.Time { return now })

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `balances`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("SELECT .* FROM `balances` .*FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "banco", "cajon", "created_at", "updated_at"}).
			AddRow(1, 5, "100.00", "0.00", now, now))
	mock.ExpectExec("UPDATE `balances`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `bank_deposits`").
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	_, err = l.Deposit(context.Background(), 5, DepositInput{Pool: models.PoolBanco, Cantidad: dec("10"), Descripcion: "salary"})
	assert.ErrorContains(t, err, "disk full")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLedger_ConcurrentMutationsSerialize(t *testing.T) {
	db := setupTestDB(t)
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	l := NewLedger(db).WithClock(lockedClock(start, time.Second))
	ctx := context.Background()
	userID := createUser(t, db, "concurrente")
	comida := defaultType(t, db, "Comida")

	_, err := l.GetBalance(ctx, userID)
	require.NoError(t, err)

	const n = 30
	var g errgroup.Group
	for i := 0; i < n; i++ {
		g.Go(func() error {
			_, err := l.Deposit(ctx, userID, DepositInput{Pool: models.PoolCajon, Cantidad: dec("2"), Descripcion: "efectivo"})
			return err
		})
		g.Go(func() error {
			_, err := l.CreateExpense(ctx, userID, ExpenseInput{ExpenseTypeID: comida, Monto: dec("1"), Descripcion: "café"})
			return err
		})
	}
	require.NoError(t, g.Wait())

	bal := loadBalance(t, db, userID)
	assertAmount(t, "30", bal.Cajon)
	assertAmount(t, "0", bal.Banco)

	var expenses, deposits int64
	require.NoError(t, db.Model(&models.Expense{}).Where("user_id = ?", userID).Count(&expenses).Error)
	require.NoError(t, db.Model(&models.Deposit{}).Where("user_id = ?", userID).Count(&deposits).Error)
	assert.Equal(t, int64(n), expenses)
	assert.Equal(t, int64(n), deposits)

	assertReplayMatches(t, db, userID)
}

func TestLedger_ConcurrentFirstDepositsShareOneBalance(t *testing.T) {
	db := setupTestDB(t)
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	l := NewLedger(db).WithClock(lockedClock(start, time.Second))
	ctx := context.Background()
	userID := createUser(t, db, "primero")

	var g errgroup.Group
	for i := 0; i < 10; i++ {
		g.Go(func() error {
			_, err := l.Deposit(ctx, userID, DepositInput{Pool: models.PoolBanco, Cantidad: dec("5"), Descripcion: "inicio"})
			return err
		})
	}
	require.NoError(t, g.Wait())

	var count int64
	require.NoError(t, db.Model(&models.Balance{}).Where("user_id = ?", userID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
	assertAmount(t, "50", loadBalance(t, db, userID).Banco)
	assertReplayMatches(t, db, userID)
}
