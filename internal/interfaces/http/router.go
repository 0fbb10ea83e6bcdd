package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gestion-api/internal/application/auth"
	"github.com/jhoicas/Gestion-api/internal/application/expense"
	"github.com/jhoicas/Gestion-api/internal/application/inventory"
	"github.com/jhoicas/Gestion-api/internal/application/investor"
	"github.com/jhoicas/Gestion-api/internal/application/notify"
	"github.com/jhoicas/Gestion-api/internal/application/payroll"
	"github.com/jhoicas/Gestion-api/internal/application/purchase"
	"github.com/jhoicas/Gestion-api/internal/application/quotation"
	"github.com/jhoicas/Gestion-api/internal/application/sales"
	"github.com/jhoicas/Gestion-api/internal/application/stats"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// RouterDeps dependencias para el registro de rutas.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	InventoryUC *inventory.InventoryUseCase
	QuotationUC *quotation.QuotationUseCase
	AcceptUC    *quotation.AcceptQuotationUseCase
	PDFUC       *quotation.PDFUseCase
	CreateSale  *sales.CreateSaleUseCase
	SalesUC     *sales.SalesUseCase
	PurchaseUC  *purchase.PurchaseUseCase
	ReceiveUC   *purchase.ReceiveOrderUseCase
	ExpenseUC   *expense.ExpenseUseCase
	PayrollUC   *payroll.PayrollUseCase
	InvestorUC  *investor.InvestorUseCase
	DashboardUC *stats.DashboardUseCase
	ExportUC    *stats.ExportUseCase
	NotifyUC    *notify.NotifyUseCase

	JWTSecret      string
	MetricsEnabled bool
}

// Router registra todas las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC)
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	quotationHandler := NewQuotationHandler(deps.QuotationUC, deps.AcceptUC, deps.PDFUC)
	saleHandler := NewSaleHandler(deps.CreateSale, deps.SalesUC)
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC, deps.ReceiveUC)
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	payrollHandler := NewPayrollHandler(deps.PayrollUC)
	investorHandler := NewInvestorHandler(deps.InvestorUC)
	statsHandler := NewStatsHandler(deps.DashboardUC, deps.ExportUC)
	notificationHandler := NewNotificationHandler(deps.NotifyUC)

	if deps.MetricsEnabled {
		app.Use(MetricsMiddleware())
		app.Get("/metrics", MetricsHandler())
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Rutas públicas de autenticación.
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.Refresh)
	authGroup.Post("/logout", authHandler.Logout)

	// Todo lo demás exige token.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	manager := RequireRole(entity.RoleAdmin, entity.RoleGerente)

	// Inventario. El ajuste manual de existencias es solo para admin.
	inventoryGroup := protected.Group("/inventory")
	inventoryGroup.Post("/", inventoryHandler.Create)
	inventoryGroup.Get("/", inventoryHandler.List)
	inventoryGroup.Get("/low-stock", inventoryHandler.LowStock)
	inventoryGroup.Get("/:id", inventoryHandler.Get)
	inventoryGroup.Put("/:id", inventoryHandler.Update)
	inventoryGroup.Delete("/:id", RequireRole(entity.RoleAdmin), inventoryHandler.Delete)
	inventoryGroup.Post("/:id/adjust", RequireRole(entity.RoleAdmin), inventoryHandler.AdjustStock)

	// Cotizaciones.
	quotationGroup := protected.Group("/quotations")
	quotationGroup.Post("/", quotationHandler.Create)
	quotationGroup.Get("/", quotationHandler.List)
	quotationGroup.Get("/:id", quotationHandler.Get)
	quotationGroup.Patch("/:id/status", quotationHandler.UpdateStatus)
	quotationGroup.Post("/:id/accept", quotationHandler.Accept)
	quotationGroup.Get("/:id/pdf", quotationHandler.PDF)

	// Ventas al detal.
	saleGroup := protected.Group("/retail-sales")
	saleGroup.Post("/", saleHandler.Create)
	saleGroup.Get("/", saleHandler.List)
	saleGroup.Get("/:id", saleHandler.Get)

	// Órdenes de compra a proveedor: gestión, no venta.
	purchaseGroup := protected.Group("/purchase-orders", manager)
	purchaseGroup.Post("/", purchaseHandler.Create)
	purchaseGroup.Get("/", purchaseHandler.List)
	purchaseGroup.Get("/:id", purchaseHandler.Get)
	purchaseGroup.Patch("/:id/status", purchaseHandler.UpdateStatus)
	purchaseGroup.Post("/:id/receive", purchaseHandler.Receive)

	// Gastos: cualquiera registra, solo admin/gerente aprueba o rechaza.
	expenseGroup := protected.Group("/expenses")
	expenseGroup.Post("/", expenseHandler.Create)
	expenseGroup.Get("/", expenseHandler.List)
	expenseGroup.Get("/:id", expenseHandler.Get)
	expenseGroup.Put("/:id", expenseHandler.Update)
	expenseGroup.Patch("/:id/status", manager, expenseHandler.SetStatus)

	// Nómina.
	employeeGroup := protected.Group("/employees", manager)
	employeeGroup.Post("/", payrollHandler.CreateEmployee)
	employeeGroup.Get("/", payrollHandler.ListEmployees)
	employeeGroup.Get("/:id", payrollHandler.GetEmployee)
	employeeGroup.Put("/:id", payrollHandler.UpdateEmployee)
	employeeGroup.Delete("/:id", payrollHandler.DeleteEmployee)
	employeeGroup.Get("/:id/payments", payrollHandler.ListPaymentsByEmployee)

	payrollGroup := protected.Group("/payroll", manager)
	payrollGroup.Post("/payments", payrollHandler.PaySalary)
	payrollGroup.Get("/payments", payrollHandler.ListPaymentsByPeriod)

	// Inversores.
	investorGroup := protected.Group("/investors", manager)
	investorGroup.Post("/", investorHandler.Create)
	investorGroup.Get("/", investorHandler.List)
	investorGroup.Get("/:id", investorHandler.Get)
	investorGroup.Put("/:id", investorHandler.Update)
	investorGroup.Get("/:id/investments", investorHandler.ListInvestments)

	// Estadísticas y reporte mensual.
	statsGroup := protected.Group("/stats", manager)
	statsGroup.Get("/dashboard", statsHandler.Dashboard)
	statsGroup.Get("/export", statsHandler.Export)

	// Dispositivos para notificaciones push.
	deviceGroup := protected.Group("/devices")
	deviceGroup.Post("/", notificationHandler.RegisterDevice)
	deviceGroup.Delete("/:token", notificationHandler.UnregisterDevice)
}
