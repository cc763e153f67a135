package api

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"cuentas/middleware"

	"github.com/gin-gonic/gin"
)

// ExportHandler export handler
type ExportHandler struct{}

// NewExportHandler creates the export handler
func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

// ExportCSV the full movement feed as CSV
// @Summary Exportar movimientos (CSV)
// @Tags Exportar
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {file} file "Archivo CSV"
// @Failure 401 {object} Response "No autenticado"
// @Router /api/v1/export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	buf := new(bytes.Buffer)
	if err := ledger().ExportMovementsCSV(c.Request.Context(), userID, buf); err != nil {
		respondError(c, err, "error al generar el CSV")
		return
	}

	filename := fmt.Sprintf("movimientos_%s.csv", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportExcel movements, expenses, transfers and deposits as an xlsx workbook
// @Summary Exportar a Excel
// @Tags Exportar
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} file "Archivo xlsx"
// @Failure 401 {object} Response "No autenticado"
// @Router /api/v1/export/excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	f, err := ledger().ExportWorkbook(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "error al generar el Excel")
		return
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "error al generar el Excel"))
		return
	}

	filename := fmt.Sprintf("cuentas_%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
