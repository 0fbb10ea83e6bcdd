package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gestion-api/internal/application/stats"
)

// StatsHandler endpoints del dashboard y del reporte mensual.
type StatsHandler struct {
	dashboardUC *stats.DashboardUseCase
	exportUC    *stats.ExportUseCase
}

// NewStatsHandler construye el handler.
func NewStatsHandler(dashboardUC *stats.DashboardUseCase, exportUC *stats.ExportUseCase) *StatsHandler {
	return &StatsHandler{dashboardUC: dashboardUC, exportUC: exportUC}
}

// Dashboard maneja GET /api/stats/dashboard
func (h *StatsHandler) Dashboard(c *fiber.Ctx) error {
	resp, err := h.dashboardUC.GetDashboard(c.Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(resp)
}

// Export maneja GET /api/stats/export?period=YYYY-MM
// Descarga el reporte xlsx de ventas y gastos del período.
func (h *StatsHandler) Export(c *fiber.Ctx) error {
	period := c.Query("period")
	if period == "" {
		return badRequest(c, "VALIDATION", "period requerido (YYYY-MM)")
	}
	data, filename, err := h.exportUC.ExportMonth(c.Context(), period)
	if err != nil {
		return errorResponse(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(data)
}
