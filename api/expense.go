package api

import (
	"cuentas/middleware"
	"cuentas/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ExpenseHandler expense handler
type ExpenseHandler struct{}

// NewExpenseHandler creates the expense handler
func NewExpenseHandler() *ExpenseHandler {
	return &ExpenseHandler{}
}

// CreateExpenseRequest new cajón expense
type CreateExpenseRequest struct {
	ExpenseTypeID uint            `json:"expense_type_id" binding:"required" example:"1"`
	Monto         decimal.Decimal `json:"monto" swaggertype:"number" example:"15.50"`
	Descripcion   string          `json:"descripcion" example:"Almuerzo"`
}

// Create records an expense
// @Summary Registrar gasto
// @Description Resta el monto del cajón. El cajón puede quedar en negativo.
// @Tags Gastos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateExpenseRequest true "Gasto"
// @Success 201 {object} Response{data=service.ExpenseResult} "Gasto registrado"
// @Failure 400 {object} Response "Datos inválidos"
// @Failure 401 {object} Response "No autenticado"
// @Failure 404 {object} Response "El usuario todavía no tiene balance"
// @Router /api/v1/expenses [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "datos inválidos"))
		return
	}

	res, err := ledger().CreateExpense(c.Request.Context(), userID, service.ExpenseInput{
		ExpenseTypeID: req.ExpenseTypeID,
		Monto:         req.Monto,
		Descripcion:   req.Descripcion,
	})
	if err != nil {
		respondError(c, err, "error al procesar el gasto")
		return
	}
	Created(c, "gasto registrado", res)
}

// List all expenses with the current cajón
// @Summary Listar gastos
// @Tags Gastos
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=service.ExpenseList} "OK"
// @Failure 401 {object} Response "No autenticado"
// @Router /api/v1/expenses [get]
func (h *ExpenseHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	list, err := ledger().ListExpenses(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "error al obtener los gastos")
		return
	}
	Success(c, list)
}

// Get one expense
// @Summary Obtener gasto
// @Tags Gastos
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID del gasto"
// @Success 200 {object} Response{data=models.Expense} "OK"
// @Failure 403 {object} Response "No autorizado"
// @Failure 404 {object} Response "Gasto no encontrado"
// @Router /api/v1/expenses/{id} [get]
func (h *ExpenseHandler) Get(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	exp, err := ledger().GetExpense(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, err, "error al obtener el gasto")
		return
	}
	Success(c, exp)
}

// Delete removes one of the last 10 expenses and repairs later snapshots
// @Summary Eliminar gasto
// @Description Solo se pueden eliminar los últimos 10 gastos. Devuelve el monto al cajón y corrige los saldos posteriores.
// @Tags Gastos
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID del gasto"
// @Success 200 {object} Response{data=service.DeleteExpenseResult} "Gasto eliminado"
// @Failure 403 {object} Response "No autorizado"
// @Failure 404 {object} Response "Gasto no encontrado"
// @Failure 422 {object} Response "Fuera de los últimos 10 gastos"
// @Router /api/v1/expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	res, err := ledger().DeleteExpense(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, err, "error al eliminar el gasto")
		return
	}
	SuccessWithMessage(c, "gasto eliminado correctamente", res)
}
