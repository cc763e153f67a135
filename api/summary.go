package api

import (
	"strconv"

	"cuentas/middleware"
	"cuentas/service"

	"github.com/gin-gonic/gin"
)

// MonthlySummary spending per type and cartera income of a month
// @Summary Resumen mensual
// @Description Agrupa los gastos por tipo según su fecha. Sin date se usa el mes actual.
// @Tags Resúmenes
// @Produce json
// @Security BearerAuth
// @Param date query string false "Mes (YYYY-MM)"
// @Success 200 {object} Response{data=service.MonthlySummaryResult} "OK"
// @Failure 400 {object} Response "Mes inválido"
// @Router /api/v1/expenses/monthly-summary [get]
func (h *ExpenseHandler) MonthlySummary(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	sum, err := ledger().MonthlySummary(c.Request.Context(), userID, c.Query("date"))
	if err != nil {
		respondError(c, err, "error al obtener el resumen mensual")
		return
	}
	Success(c, sum)
}

// SeasonSummary spending per type and cartera income since the season start
// @Summary Resumen de temporada
// @Description Agrupa los gastos creados desde el inicio de la temporada. La temporada empieza ahora si no existe.
// @Tags Resúmenes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=service.SeasonSummaryResult} "OK"
// @Router /api/v1/expenses/season-summary [get]
func (h *ExpenseHandler) SeasonSummary(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	sum, err := ledger().SeasonSummary(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "error al obtener el resumen de temporada")
		return
	}
	Success(c, sum)
}

// ResetSeason moves the season start to now
// @Summary Reiniciar temporada
// @Tags Resúmenes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response "Temporada reiniciada"
// @Router /api/v1/expenses/reset-season [post]
func (h *ExpenseHandler) ResetSeason(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	start, err := ledger().ResetSeason(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "error al reiniciar la temporada")
		return
	}
	SuccessWithMessage(c, "temporada reiniciada exitosamente", gin.H{"season_start": start})
}

// ByType pages the expenses of one type for a month or the season
// @Summary Gastos por tipo
// @Tags Resúmenes
// @Produce json
// @Security BearerAuth
// @Param typeId path int true "ID del tipo de gasto"
// @Param date query string false "Mes (YYYY-MM)"
// @Param isSeasonView query bool false "Filtrar por temporada"
// @Param page query int false "Página" default(1)
// @Success 200 {object} Response{data=PageResponse{list=[]models.Expense}} "OK"
// @Failure 403 {object} Response "No autorizado"
// @Router /api/v1/expenses/by-type/{typeId} [get]
func (h *ExpenseHandler) ByType(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	typeID, ok := parseID(c, "typeId")
	if !ok {
		return
	}
	season, _ := strconv.ParseBool(c.DefaultQuery("isSeasonView", "false"))

	page, err := ledger().ListExpensesByType(c.Request.Context(), userID, typeID, service.ExpenseFilter{
		Date:   c.Query("date"),
		Season: season,
	}, pageParam(c))
	if err != nil {
		respondError(c, err, "error al obtener los gastos")
		return
	}
	Success(c, PageResponse{Total: page.Total, Page: page.Page, PageSize: page.PageSize, List: page.List})
}
