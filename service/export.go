package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"cuentas/models"

	"github.com/xuri/excelize/v2"
)

const exportTimeLayout = "2006-01-02 15:04:05"

var movementHeaders = []string{"ID", "Tipo", "Cantidad", "Descripción", "Fecha", "Balance posterior", "Creado"}

func movementRow(m models.Movement) []string {
	tipo := string(m.TipoMovimiento)
	switch {
	case m.TipoDeposito != nil:
		tipo += "/" + string(*m.TipoDeposito)
	case m.Tipo != nil:
		tipo += "/" + string(*m.Tipo)
	}
	return []string{
		fmt.Sprintf("%d", m.ID),
		tipo,
		m.Cantidad.StringFixed(2),
		m.Descripcion,
		m.Fecha.Format(exportTimeLayout),
		m.BalancePosterior.StringFixed(2),
		m.CreatedAt.Format(exportTimeLayout),
	}
}

// ExportMovementsCSV writes the full movement feed as CSV, newest first
func (l *Ledger) ExportMovementsCSV(ctx context.Context, userID uint, w io.Writer) error {
	movements, err := fetchMovements(ctx, l.conn(ctx), userID, 0, 0)
	if err != nil {
		return err
	}

	// BOM so spreadsheet apps detect UTF-8
	if _, err := io.WriteString(w, "\xEF\xBB\xBF"); err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(movementHeaders); err != nil {
		return err
	}
	for _, m := range movements {
		if err := writer.Write(movementRow(m)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

type sheet struct {
	name    string
	headers []string
	widths  []float64
	rows    [][]interface{}
}

// ExportWorkbook builds an xlsx workbook with one sheet per record kind.
// The caller must Close the returned file.
func (l *Ledger) ExportWorkbook(ctx context.Context, userID uint) (*excelize.File, error) {
	db := l.conn(ctx)

	movements, err := fetchMovements(ctx, db, userID, 0, 0)
	if err != nil {
		return nil, err
	}
	expenses, err := l.ListExpenses(ctx, userID)
	if err != nil {
		return nil, err
	}
	transfers, err := l.ListTransfers(ctx, userID)
	if err != nil {
		return nil, err
	}
	deposits, err := l.ListDeposits(ctx, userID)
	if err != nil {
		return nil, err
	}

	sheets := []sheet{
		{name: "Movimientos", headers: movementHeaders, widths: []float64{10, 22, 12, 30, 20, 18, 20}},
		{name: "Gastos", headers: []string{"ID", "Tipo de gasto", "Monto", "Descripción", "Fecha", "Cajón posterior", "Creado"}, widths: []float64{10, 18, 12, 30, 14, 16, 20}},
		{name: "Transferencias", headers: []string{"ID", "Tipo", "Cantidad", "Descripción", "Banco anterior", "Banco posterior", "Cajón anterior", "Cajón posterior", "Fecha"}, widths: []float64{10, 16, 12, 30, 16, 16, 16, 16, 20}},
		{name: "Depositos", headers: []string{"ID", "Tipo", "Cantidad", "Descripción", "Balance anterior", "Balance posterior", "Fecha"}, widths: []float64{10, 12, 12, 30, 18, 18, 20}},
	}

	for _, m := range movements {
		row := movementRow(m)
		sheets[0].rows = append(sheets[0].rows, []interface{}{
			m.ID, row[1], m.Cantidad.InexactFloat64(), m.Descripcion, row[4], m.BalancePosterior.InexactFloat64(), row[6],
		})
	}
	for _, e := range expenses.Expenses {
		tipo := ""
		if e.ExpenseType != nil {
			tipo = e.ExpenseType.Nombre
		}
		sheets[1].rows = append(sheets[1].rows, []interface{}{
			e.ID, tipo, e.Monto.InexactFloat64(), e.Descripcion, e.Fecha.Format("2006-01-02"),
			e.CajonPosterior.InexactFloat64(), e.CreatedAt.Format(exportTimeLayout),
		})
	}
	for _, t := range transfers {
		sheets[2].rows = append(sheets[2].rows, []interface{}{
			t.ID, string(t.Tipo), t.Cantidad.InexactFloat64(), t.Descripcion,
			t.BancoAnterior.InexactFloat64(), t.BancoPosterior.InexactFloat64(),
			t.CajonAnterior.InexactFloat64(), t.CajonPosterior.InexactFloat64(),
			t.Fecha.Format(exportTimeLayout),
		})
	}
	for _, d := range deposits {
		sheets[3].rows = append(sheets[3].rows, []interface{}{
			d.ID, string(d.Tipo), d.Cantidad.InexactFloat64(), d.Descripcion,
			d.BalanceAnterior.InexactFloat64(), d.BalancePosterior.InexactFloat64(),
			d.Fecha.Format(exportTimeLayout),
		})
	}

	f := excelize.NewFile()
	if err := writeSheets(f, sheets); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func writeSheets(f *excelize.File, sheets []sheet) error {
	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})
	if err != nil {
		return err
	}
	dataStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})
	if err != nil {
		return err
	}

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.name); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(s.name); err != nil {
			return err
		}

		for col, width := range s.widths {
			name, _ := excelize.ColumnNumberToName(col + 1)
			if err := f.SetColWidth(s.name, name, name, width); err != nil {
				return err
			}
		}

		for col, header := range s.headers {
			cell, _ := excelize.CoordinatesToCellName(col+1, 1)
			f.SetCellValue(s.name, cell, header)
			f.SetCellStyle(s.name, cell, cell, headerStyle)
		}

		last, _ := excelize.ColumnNumberToName(len(s.headers))
		for r, values := range s.rows {
			row := r + 2
			for col, v := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, row)
				f.SetCellValue(s.name, cell, v)
			}
			f.SetCellStyle(s.name, fmt.Sprintf("A%d", row), fmt.Sprintf("%s%d", last, row), dataStyle)
		}
	}
	return nil
}
