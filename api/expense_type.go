package api

import (
	"cuentas/middleware"

	"github.com/gin-gonic/gin"
)

// ExpenseTypeHandler expense type catalog handler
type ExpenseTypeHandler struct{}

// NewExpenseTypeHandler creates the expense type handler
func NewExpenseTypeHandler() *ExpenseTypeHandler {
	return &ExpenseTypeHandler{}
}

// CreateExpenseTypeRequest custom expense type
type CreateExpenseTypeRequest struct {
	Nombre string `json:"nombre" binding:"required,max=255" example:"Mascotas"`
}

// List default types plus the caller's own
// @Summary Listar tipos de gasto
// @Tags Tipos de gasto
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]models.ExpenseType} "OK"
// @Router /api/v1/expense-types [get]
func (h *ExpenseTypeHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	types, err := ledger().ListExpenseTypes(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "error al obtener los tipos de gasto")
		return
	}
	Success(c, types)
}

// Create adds a custom type
// @Summary Crear tipo de gasto
// @Tags Tipos de gasto
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateExpenseTypeRequest true "Tipo de gasto"
// @Success 201 {object} Response{data=models.ExpenseType} "Tipo creado"
// @Failure 400 {object} Response "Datos inválidos"
// @Router /api/v1/expense-types [post]
func (h *ExpenseTypeHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req CreateExpenseTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "el nombre es obligatorio"))
		return
	}

	et, err := ledger().CreateExpenseType(c.Request.Context(), userID, req.Nombre)
	if err != nil {
		respondError(c, err, "error al crear el tipo de gasto")
		return
	}
	Created(c, "tipo de gasto creado", et)
}

// Delete removes an unused custom type
// @Summary Eliminar tipo de gasto
// @Tags Tipos de gasto
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID del tipo"
// @Success 200 {object} Response "Tipo eliminado"
// @Failure 403 {object} Response "Predeterminado o ajeno"
// @Failure 404 {object} Response "No encontrado"
// @Failure 422 {object} Response "Tiene gastos asociados"
// @Router /api/v1/expense-types/{id} [delete]
func (h *ExpenseTypeHandler) Delete(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := ledger().DeleteExpenseType(c.Request.Context(), userID, id); err != nil {
		respondError(c, err, "error al eliminar el tipo de gasto")
		return
	}
	SuccessWithMessage(c, "tipo de gasto eliminado correctamente", nil)
}
