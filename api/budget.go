package api

import (
	"cuentas/middleware"
	"cuentas/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// BudgetHandler monthly budget handler
type BudgetHandler struct{}

// NewBudgetHandler creates the budget handler
func NewBudgetHandler() *BudgetHandler {
	return &BudgetHandler{}
}

// CreateBudgetRequest monthly spending target
type CreateBudgetRequest struct {
	Monto decimal.Decimal `json:"monto" swaggertype:"number" example:"300"`
	Mes   string          `json:"mes" binding:"required" example:"2026-03-01"`
}

// List budgets, latest month first
// @Summary Listar presupuestos
// @Tags Presupuestos
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]models.MonthlyBudget} "OK"
// @Router /api/v1/monthly-budgets [get]
func (h *BudgetHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	budgets, err := ledger().ListBudgets(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "error al obtener los presupuestos")
		return
	}
	Success(c, budgets)
}

// Create adds an active budget for a month
// @Summary Crear presupuesto
// @Tags Presupuestos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateBudgetRequest true "Presupuesto"
// @Success 201 {object} Response{data=models.MonthlyBudget} "Presupuesto creado"
// @Failure 400 {object} Response "Datos inválidos"
// @Failure 422 {object} Response "Ya existe un presupuesto activo para este mes"
// @Router /api/v1/monthly-budgets [post]
func (h *BudgetHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "datos inválidos"))
		return
	}

	budget, err := ledger().CreateBudget(c.Request.Context(), userID, service.BudgetInput{Monto: req.Monto, Mes: req.Mes})
	if err != nil {
		respondError(c, err, "error al crear el presupuesto")
		return
	}
	Created(c, "presupuesto creado", budget)
}

// Delete removes a budget
// @Summary Eliminar presupuesto
// @Tags Presupuestos
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID del presupuesto"
// @Success 200 {object} Response "Presupuesto eliminado"
// @Failure 403 {object} Response "No autorizado"
// @Failure 404 {object} Response "No encontrado"
// @Router /api/v1/monthly-budgets/{id} [delete]
func (h *BudgetHandler) Delete(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := ledger().DeleteBudget(c.Request.Context(), userID, id); err != nil {
		respondError(c, err, "error al eliminar el presupuesto")
		return
	}
	SuccessWithMessage(c, "presupuesto mensual eliminado correctamente", nil)
}
