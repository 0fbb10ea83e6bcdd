package stats

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// periodRe valida el período del reporte: YYYY-MM con mes 01..12.
var periodRe = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// ExportUseCase genera el reporte mensual descargable de ventas y gastos.
type ExportUseCase struct {
	analytics repository.AnalyticsRepository
	writer    ReportWriter
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(analytics repository.AnalyticsRepository, writer ReportWriter) *ExportUseCase {
	return &ExportUseCase{analytics: analytics, writer: writer}
}

// ExportMonth arma el reporte del período (YYYY-MM) y devuelve los bytes del
// archivo junto con el nombre sugerido.
func (uc *ExportUseCase) ExportMonth(ctx context.Context, period string) ([]byte, string, error) {
	if !periodRe.MatchString(period) {
		return nil, "", domain.ErrInvalidInput
	}
	monthStart, err := time.Parse("2006-01", period)
	if err != nil {
		return nil, "", domain.ErrInvalidInput
	}
	monthEnd := monthStart.AddDate(0, 1, 0)

	sales, err := uc.analytics.ListSaleRows(ctx, monthStart, monthEnd)
	if err != nil {
		return nil, "", err
	}
	expenses, err := uc.analytics.ListExpenseRows(ctx, monthStart, monthEnd)
	if err != nil {
		return nil, "", err
	}

	data, err := uc.writer.WriteMonthlyReport(period, sales, expenses)
	if err != nil {
		return nil, "", err
	}
	return data, fmt.Sprintf("reporte-%s.xlsx", period), nil
}
