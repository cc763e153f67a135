package api

import (
	"cuentas/middleware"

	"github.com/gin-gonic/gin"
)

// MovementHandler unified movement feed handler
type MovementHandler struct{}

// NewMovementHandler creates the movement handler
func NewMovementHandler() *MovementHandler {
	return &MovementHandler{}
}

// List one page of deposits, expenses and transfers, newest first
// @Summary Movimientos
// @Tags Movimientos
// @Produce json
// @Security BearerAuth
// @Param page query int false "Página" default(1)
// @Success 200 {object} Response{data=PageResponse{list=[]models.Movement}} "OK"
// @Router /api/v1/movements [get]
func (h *MovementHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	page, err := ledger().ListMovements(c.Request.Context(), userID, pageParam(c))
	if err != nil {
		respondError(c, err, "error al obtener los movimientos")
		return
	}
	Success(c, PageResponse{Total: page.Total, Page: page.Page, PageSize: page.PageSize, List: page.List})
}

// MonthIncome cartera deposits of a month
// @Summary Ingresos del mes
// @Tags Movimientos
// @Produce json
// @Security BearerAuth
// @Param fecha path string true "Fecha dentro del mes (YYYY-MM-DD)"
// @Success 200 {object} Response{data=[]models.Movement} "OK"
// @Failure 400 {object} Response "Fecha inválida"
// @Router /api/v1/movements/ingresos/mes/{fecha} [get]
func (h *MovementHandler) MonthIncome(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	list, err := ledger().MonthIncome(c.Request.Context(), userID, c.Param("fecha"))
	if err != nil {
		respondError(c, err, "error al obtener los ingresos del mes")
		return
	}
	Success(c, list)
}

// SeasonIncome cartera deposits since the season start
// @Summary Ingresos de la temporada
// @Tags Movimientos
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]models.Movement} "OK"
// @Router /api/v1/movements/ingresos/temporada [get]
func (h *MovementHandler) SeasonIncome(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	list, err := ledger().SeasonIncome(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "error al obtener los ingresos de la temporada")
		return
	}
	Success(c, list)
}
