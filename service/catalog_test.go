package service

import (
	"context"
	"testing"
	"time"

	"cuentas/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedger_ExpenseTypes(t *testing.T) {
	l, db := setupTestLedger(t, time.Second)
	ctx := context.Background()
	userID := createUser(t, db, "tipos")
	other := createUser(t, db, "otro")

	own, err := l.CreateExpenseType(ctx, userID, "  Mascotas ")
	require.NoError(t, err)
	assert.Equal(t, "Mascotas", own.Nombre)
	assert.False(t, own.IsDefault)
	_, err = l.CreateExpenseType(ctx, other, "Ajeno")
	require.NoError(t, err)

	_, err = l.CreateExpenseType(ctx, userID, "")
	assert.ErrorIs(t, err, ErrNameRequired)

	types, err := l.ListExpenseTypes(ctx, userID)
	require.NoError(t, err)
	var names []string
	for _, et := range types {
		names = append(names, et.Nombre)
	}
	assert.Equal(t, append(models.DefaultExpenseTypes(), "Mascotas"), names)

	err = l.DeleteExpenseType(ctx, userID, defaultType(t, db, "Comida"))
	assert.ErrorIs(t, err, ErrDefaultExpenseType)
	assert.ErrorIs(t, err, ErrForbidden)

	err = l.DeleteExpenseType(ctx, other, own.ID)
	assert.ErrorIs(t, err, ErrNotOwner)

	_, err = l.Deposit(ctx, userID, DepositInput{Pool: models.PoolCajon, Cantidad: dec("10"), Descripcion: "cash"})
	require.NoError(t, err)
	_, err = l.CreateExpense(ctx, other, ExpenseInput{ExpenseTypeID: own.ID, Monto: dec("1"), Descripcion: "x"})
	assert.ErrorIs(t, err, ErrInvalidExpenseType)
	exp, err := l.CreateExpense(ctx, userID, ExpenseInput{ExpenseTypeID: own.ID, Monto: dec("1"), Descripcion: "x"})
	require.NoError(t, err)

	err = l.DeleteExpenseType(ctx, userID, own.ID)
	assert.ErrorIs(t, err, ErrExpenseTypeInUse)
	assert.ErrorIs(t, err, ErrBusinessRule)

	_, err = l.DeleteExpense(ctx, userID, exp.Expense.ID)
	require.NoError(t, err)
	require.NoError(t, l.DeleteExpenseType(ctx, userID, own.ID))

	err = l.DeleteExpenseType(ctx, userID, own.ID)
	assert.ErrorIs(t, err, ErrExpenseTypeNotFound)
}

func TestLedger_Budgets(t *testing.T) {
	l, db := setupTestLedger(t, time.Second)
	ctx := context.Background()
	userID := createUser(t, db, "presupuesto")
	other := createUser(t, db, "otro")

	march, err := l.CreateBudget(ctx, userID, BudgetInput{Monto: dec("300"), Mes: "2026-03-01"})
	require.NoError(t, err)
	assert.True(t, march.Activo)

	_, err = l.CreateBudget(ctx, userID, BudgetInput{Monto: dec("100"), Mes: "2026-03-20"})
	assert.ErrorIs(t, err, ErrBudgetExists)

	// another user's month is independent
	_, err = l.CreateBudget(ctx, other, BudgetInput{Monto: dec("100"), Mes: "2026-03-20"})
	require.NoError(t, err)

	_, err = l.CreateBudget(ctx, userID, BudgetInput{Monto: dec("-1"), Mes: "2026-04-01"})
	assert.ErrorIs(t, err, ErrNegativeAmount)
	_, err = l.CreateBudget(ctx, userID, BudgetInput{Monto: dec("1"), Mes: "2026/04/01"})
	assert.ErrorIs(t, err, ErrInvalidDate)

	april, err := l.CreateBudget(ctx, userID, BudgetInput{Monto: dec("0"), Mes: "2026-04-01"})
	require.NoError(t, err)

	budgets, err := l.ListBudgets(ctx, userID)
	require.NoError(t, err)
	require.Len(t, budgets, 2)
	assert.Equal(t, april.ID, budgets[0].ID)

	err = l.DeleteBudget(ctx, other, march.ID)
	assert.ErrorIs(t, err, ErrNotOwner)
	require.NoError(t, l.DeleteBudget(ctx, userID, march.ID))
	err = l.DeleteBudget(ctx, userID, march.ID)
	assert.ErrorIs(t, err, ErrBudgetNotFound)

	// the month is free again
	_, err = l.CreateBudget(ctx, userID, BudgetInput{Monto: dec("250"), Mes: "2026-03-05"})
	require.NoError(t, err)
}

func TestLedger_UserDeleteCascades(t *testing.T) {
	l, db := setupTestLedger(t, time.Second)
	ctx := context.Background()
	userID := createUser(t, db, "baja")

	_, err := l.Deposit(ctx, userID, DepositInput{Pool: models.PoolBanco, Cantidad: dec("100"), Descripcion: "salary"})
	require.NoError(t, err)
	_, err = l.CreateTransfer(ctx, userID, TransferInput{Tipo: models.TransferBancoACajon, Cantidad: dec("20")})
	require.NoError(t, err)
	own, err := l.CreateExpenseType(ctx, userID, "Propio")
	require.NoError(t, err)
	_, err = l.CreateExpense(ctx, userID, ExpenseInput{ExpenseTypeID: own.ID, Monto: dec("5"), Descripcion: "x"})
	require.NoError(t, err)
	_, err = l.CreateBudget(ctx, userID, BudgetInput{Monto: dec("50"), Mes: "2026-03-01"})
	require.NoError(t, err)
	_, err = l.ResetSeason(ctx, userID)
	require.NoError(t, err)

	require.NoError(t, db.Delete(&models.User{}, userID).Error)

	for _, model := range []interface{}{
		&models.Balance{}, &models.Deposit{}, &models.Expense{}, &models.TransferRecord{},
		&models.MonthlyBudget{}, &models.SeasonSetting{},
	} {
		var count int64
		require.NoError(t, db.Model(model).Where("user_id = ?", userID).Count(&count).Error)
		assert.Zero(t, count, "%T", model)
	}

	var defaults int64
	require.NoError(t, db.Model(&models.ExpenseType{}).Where("is_default = ?", true).Count(&defaults).Error)
	assert.Equal(t, int64(len(models.DefaultExpenseTypes())), defaults)
}
