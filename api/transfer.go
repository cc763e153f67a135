package api

import (
	"cuentas/middleware"
	"cuentas/models"
	"cuentas/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// TransferHandler transfer handler
type TransferHandler struct{}

// NewTransferHandler creates the transfer handler
func NewTransferHandler() *TransferHandler {
	return &TransferHandler{}
}

// CreateTransferRequest move money between pools
type CreateTransferRequest struct {
	Tipo        models.TransferType `json:"tipo" binding:"required" example:"banco_a_cajon"`
	Cantidad    decimal.Decimal     `json:"cantidad" swaggertype:"number" example:"40"`
	Descripcion string              `json:"descripcion" example:"Retiro cajero"`
}

// Create records a transfer
// @Summary Registrar transferencia
// @Description El origen debe cubrir la cantidad.
// @Tags Transferencias
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTransferRequest true "Transferencia"
// @Success 201 {object} Response{data=service.TransferResult} "Transferencia registrada"
// @Failure 400 {object} Response "Datos inválidos"
// @Failure 404 {object} Response "El usuario todavía no tiene balance"
// @Failure 422 {object} Response "Fondos insuficientes"
// @Router /api/v1/transfers [post]
func (h *TransferHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req CreateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "datos inválidos"))
		return
	}

	res, err := ledger().CreateTransfer(c.Request.Context(), userID, service.TransferInput{
		Tipo:        req.Tipo,
		Cantidad:    req.Cantidad,
		Descripcion: req.Descripcion,
	})
	if err != nil {
		respondError(c, err, "error al procesar la transferencia")
		return
	}
	Created(c, "transferencia registrada", res)
}

// List all transfers, newest first
// @Summary Listar transferencias
// @Tags Transferencias
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]models.TransferRecord} "OK"
// @Router /api/v1/transfers [get]
func (h *TransferHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	transfers, err := ledger().ListTransfers(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "error al obtener las transferencias")
		return
	}
	Success(c, transfers)
}

// Delete removes one of the last 10 transfers and repairs later snapshots
// @Summary Eliminar transferencia
// @Tags Transferencias
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID de la transferencia"
// @Success 200 {object} Response{data=service.DeleteTransferResult} "Transferencia eliminada"
// @Failure 403 {object} Response "No autorizado"
// @Failure 404 {object} Response "Transferencia no encontrada"
// @Failure 422 {object} Response "Fuera de las últimas 10 transferencias"
// @Router /api/v1/transfers/{id} [delete]
func (h *TransferHandler) Delete(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	res, err := ledger().DeleteTransfer(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, err, "error al eliminar la transferencia")
		return
	}
	SuccessWithMessage(c, "transferencia eliminada correctamente", res)
}
