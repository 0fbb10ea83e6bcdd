package dto

import "github.com/shopspring/decimal"

// TopProductDTO producto del ranking de ventas.
type TopProductDTO struct {
	ProductCode string          `json:"product_code"`
	Name        string          `json:"name"`
	UnitsSold   decimal.Decimal `json:"units_sold"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// DashboardResponse resumen del dashboard (GET /api/stats/dashboard).
type DashboardResponse struct {
	TodaySalesTotal    decimal.Decimal `json:"today_sales_total"`
	TodaySalesCount    int             `json:"today_sales_count"`
	MonthSalesTotal    decimal.Decimal `json:"month_sales_total"`
	MonthSalesCount    int             `json:"month_sales_count"`
	MonthExpenseTotal  decimal.Decimal `json:"month_expense_total"`
	InventoryValuation decimal.Decimal `json:"inventory_valuation"`
	LowStockCount      int             `json:"low_stock_count"`
	PendingQuotations  int             `json:"pending_quotations"`
	TopProducts        []TopProductDTO `json:"top_products"`
}
