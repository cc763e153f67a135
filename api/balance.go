package api

import (
	"cuentas/database"
	"cuentas/middleware"
	"cuentas/models"
	"cuentas/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ledger binds the ledger to the shared connection
func ledger() *service.Ledger {
	return service.NewLedger(database.DB)
}

// BalanceHandler balance and deposit handler
type BalanceHandler struct{}

// NewBalanceHandler creates the balance handler
func NewBalanceHandler() *BalanceHandler {
	return &BalanceHandler{}
}

// DepositRequest deposit into one pool
type DepositRequest struct {
	Cantidad    decimal.Decimal `json:"cantidad" swaggertype:"number" example:"100.50"`
	Descripcion string          `json:"descripcion" example:"Nómina"`
}

// Get current balance
// @Summary Balance actual
// @Description Devuelve los totales de banco y cajón; crea el balance en cero en el primer acceso
// @Tags Balance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=models.Balance} "OK"
// @Failure 401 {object} Response "No autenticado"
// @Router /api/v1/balance [get]
func (h *BalanceHandler) Get(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	bal, err := ledger().GetBalance(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "error al obtener el balance")
		return
	}
	Success(c, bal)
}

// AddToBanco deposit into banco
// @Summary Ingresar en banco
// @Tags Balance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body DepositRequest true "Depósito"
// @Success 201 {object} Response{data=service.DepositResult} "Depósito registrado"
// @Failure 400 {object} Response "Datos inválidos"
// @Failure 401 {object} Response "No autenticado"
// @Router /api/v1/balance/add-to-banco [post]
func (h *BalanceHandler) AddToBanco(c *gin.Context) {
	h.deposit(c, models.PoolBanco)
}

// AddToCajon deposit into cajón (stored as a cartera deposit)
// @Summary Ingresar en cajón
// @Tags Balance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body DepositRequest true "Depósito"
// @Success 201 {object} Response{data=service.DepositResult} "Depósito registrado"
// @Failure 400 {object} Response "Datos inválidos"
// @Failure 401 {object} Response "No autenticado"
// @Router /api/v1/balance/add-to-cajon [post]
func (h *BalanceHandler) AddToCajon(c *gin.Context) {
	h.deposit(c, models.PoolCajon)
}

func (h *BalanceHandler) deposit(c *gin.Context, pool models.Pool) {
	userID := middleware.GetCurrentUserID(c)

	var req DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "datos inválidos"))
		return
	}

	res, err := ledger().Deposit(c.Request.Context(), userID, service.DepositInput{
		Pool:        pool,
		Cantidad:    req.Cantidad,
		Descripcion: req.Descripcion,
	})
	if err != nil {
		respondError(c, err, "error al registrar el depósito")
		return
	}
	Created(c, "depósito registrado", res)
}

// DepositHistory all deposits, newest first
// @Summary Historial de depósitos
// @Tags Balance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]models.Deposit} "OK"
// @Failure 401 {object} Response "No autenticado"
// @Router /api/v1/balance/deposit-history [get]
func (h *BalanceHandler) DepositHistory(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	deposits, err := ledger().ListDeposits(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "error al obtener el historial")
		return
	}
	Success(c, deposits)
}
