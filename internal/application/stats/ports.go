package stats

import "github.com/jhoicas/Gestion-api/internal/domain/repository"

// ReportWriter serializa el reporte mensual (ventas y gastos) a un archivo
// descargable, hoja por hoja.
type ReportWriter interface {
	WriteMonthlyReport(period string, sales []repository.SaleReportRow, expenses []repository.ExpenseReportRow) ([]byte, error)
}
