package stats

import (
	"context"
	"time"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

const topProductsLimit = 5

// DashboardUseCase arma el resumen del dashboard a partir de las consultas de analítica.
type DashboardUseCase struct {
	analytics repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analytics repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analytics: analytics}
}

// GetDashboard devuelve los indicadores del día y del mes en curso.
func (uc *DashboardUseCase) GetDashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	todayTotal, todayCount, err := uc.analytics.GetSalesTotals(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	monthTotal, monthCount, err := uc.analytics.GetSalesTotals(ctx, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}
	monthExpenses, err := uc.analytics.GetExpenseTotal(ctx, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}
	valuation, err := uc.analytics.GetInventoryValuation(ctx)
	if err != nil {
		return nil, err
	}
	lowStock, err := uc.analytics.CountLowStock(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := uc.analytics.CountPendingQuotations(ctx)
	if err != nil {
		return nil, err
	}
	top, err := uc.analytics.GetTopProducts(ctx, monthStart, monthEnd, topProductsLimit)
	if err != nil {
		return nil, err
	}

	resp := &dto.DashboardResponse{
		TodaySalesTotal:    todayTotal,
		TodaySalesCount:    todayCount,
		MonthSalesTotal:    monthTotal,
		MonthSalesCount:    monthCount,
		MonthExpenseTotal:  monthExpenses,
		InventoryValuation: valuation,
		LowStockCount:      lowStock,
		PendingQuotations:  pending,
		TopProducts:        make([]dto.TopProductDTO, 0, len(top)),
	}
	for _, p := range top {
		resp.TopProducts = append(resp.TopProducts, dto.TopProductDTO{
			ProductCode: p.ProductCode,
			Name:        p.Name,
			UnitsSold:   p.UnitsSold,
			Revenue:     p.Revenue,
		})
	}
	return resp, nil
}
