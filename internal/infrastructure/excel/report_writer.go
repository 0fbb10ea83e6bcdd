// Package excel serializa el reporte mensual a un libro xlsx con una hoja de
// ventas y una de gastos.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Gestion-api/internal/application/stats"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

const (
	sheetSales    = "Ventas"
	sheetExpenses = "Gastos"
)

var _ stats.ReportWriter = (*ReportWriter)(nil)

// ReportWriter implementa stats.ReportWriter usando excelize.
type ReportWriter struct{}

// NewReportWriter construye el escritor de reportes.
func NewReportWriter() *ReportWriter {
	return &ReportWriter{}
}

// WriteMonthlyReport arma el libro del período y devuelve sus bytes.
func (w *ReportWriter) WriteMonthlyReport(period string, sales []repository.SaleReportRow, expenses []repository.ExpenseReportRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeSalesSheet(f, sales); err != nil {
		return nil, err
	}
	if err := writeExpensesSheet(f, expenses); err != nil {
		return nil, err
	}

	// La hoja por defecto sobra una vez creadas las del reporte.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("excel: eliminar hoja por defecto: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: serializar reporte %s: %w", period, err)
	}
	return buf.Bytes(), nil
}

func writeSalesSheet(f *excelize.File, sales []repository.SaleReportRow) error {
	if _, err := f.NewSheet(sheetSales); err != nil {
		return fmt.Errorf("excel: crear hoja de ventas: %w", err)
	}
	header := []interface{}{"Número", "Fecha", "Cliente", "Método de pago", "Subtotal", "Descuento", "Impuesto", "Total"}
	if err := f.SetSheetRow(sheetSales, "A1", &header); err != nil {
		return fmt.Errorf("excel: cabecera de ventas: %w", err)
	}
	for i, s := range sales {
		cell := fmt.Sprintf("A%d", i+2)
		rowValues := []interface{}{
			s.Number,
			s.SaleDate.Format("2006-01-02 15:04"),
			s.CustomerName,
			s.PaymentMethod,
			s.Subtotal.InexactFloat64(),
			s.Discount.InexactFloat64(),
			s.Tax.InexactFloat64(),
			s.Total.InexactFloat64(),
		}
		if err := f.SetSheetRow(sheetSales, cell, &rowValues); err != nil {
			return fmt.Errorf("excel: fila de venta %s: %w", s.Number, err)
		}
	}
	return nil
}

func writeExpensesSheet(f *excelize.File, expenses []repository.ExpenseReportRow) error {
	if _, err := f.NewSheet(sheetExpenses); err != nil {
		return fmt.Errorf("excel: crear hoja de gastos: %w", err)
	}
	header := []interface{}{"Categoría", "Monto", "Estado", "Nota", "Fecha"}
	if err := f.SetSheetRow(sheetExpenses, "A1", &header); err != nil {
		return fmt.Errorf("excel: cabecera de gastos: %w", err)
	}
	for i, e := range expenses {
		cell := fmt.Sprintf("A%d", i+2)
		rowValues := []interface{}{
			e.Category,
			e.Amount.InexactFloat64(),
			e.Status,
			e.Note,
			e.CreatedAt.Format("2006-01-02"),
		}
		if err := f.SetSheetRow(sheetExpenses, cell, &rowValues); err != nil {
			return fmt.Errorf("excel: fila de gasto: %w", err)
		}
	}
	return nil
}
