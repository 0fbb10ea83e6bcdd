package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

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
	infraexcel "github.com/jhoicas/Gestion-api/internal/infrastructure/excel"
	infrafcm "github.com/jhoicas/Gestion-api/internal/infrastructure/fcm"
	infrapdf "github.com/jhoicas/Gestion-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Gestion-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Gestion-api/internal/infrastructure/redisstore"
	httpRouter "github.com/jhoicas/Gestion-api/internal/interfaces/http"
	"github.com/jhoicas/Gestion-api/pkg/config"
	"github.com/jhoicas/Gestion-api/pkg/logger"
)

func runMigrations(dsn string) error {
	sqlDB, err := goose.OpenDBWithDriver("pgx", dsn)
	if err != nil {
		return err
	}
	defer func() { _ = sqlDB.Close() }()
	return goose.Up(sqlDB, "migrations")
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if err := runMigrations(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Msg("conexión a Redis")
	}
	defer redisClient.Close()

	// Repositorios sobre el pool. Las variantes transaccionales las crea el
	// TxRunner sobre la tx de cada workflow.
	userRepo := postgres.NewUserRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	quotationRepo := postgres.NewQuotationRepository(pool)
	purchaseRepo := postgres.NewPurchaseOrderRepository(pool)
	saleRepo := postgres.NewRetailSaleRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	investorRepo := postgres.NewInvestorRepository(pool)
	deviceRepo := postgres.NewDeviceTokenRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	tokenStore := redisstore.NewTokenStore(redisClient)
	fcmClient := infrafcm.NewClient(cfg.FCM.ServerKey)
	notifyUC := notify.NewNotifyUseCase(deviceRepo, fcmClient, log)

	authUC := auth.NewAuthUseCase(userRepo, tokenStore, auth.JWTConfig{
		Secret:      cfg.JWT.Secret,
		ExpMinutes:  cfg.JWT.Expiration,
		RefreshDays: cfg.JWT.RefreshDays,
		Issuer:      cfg.JWT.Issuer,
	})

	inventoryUC := inventory.NewInventoryUseCase(inventoryRepo)
	quotationUC := quotation.NewQuotationUseCase(quotationRepo, inventoryRepo, txRunner)
	acceptUC := quotation.NewAcceptQuotationUseCase(quotationUC, quotationRepo, txRunner, notifyUC)
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name)
	pdfUC := quotation.NewPDFUseCase(quotationRepo, inventoryRepo, pdfGenerator)

	createSaleUC := sales.NewCreateSaleUseCase(txRunner, notifyUC)
	salesUC := sales.NewSalesUseCase(saleRepo)

	purchaseUC := purchase.NewPurchaseUseCase(purchaseRepo, inventoryRepo, investorRepo, txRunner)
	receiveUC := purchase.NewReceiveOrderUseCase(purchaseUC, purchaseRepo, txRunner, notifyUC)

	expenseUC := expense.NewExpenseUseCase(expenseRepo)
	payrollUC := payroll.NewPayrollUseCase(employeeRepo)
	investorUC := investor.NewInvestorUseCase(investorRepo)

	dashboardUC := stats.NewDashboardUseCase(analyticsRepo)
	reportWriter := infraexcel.NewReportWriter()
	exportUC := stats.NewExportUseCase(analyticsRepo, reportWriter)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		InventoryUC:    inventoryUC,
		QuotationUC:    quotationUC,
		AcceptUC:       acceptUC,
		PDFUC:          pdfUC,
		CreateSale:     createSaleUC,
		SalesUC:        salesUC,
		PurchaseUC:     purchaseUC,
		ReceiveUC:      receiveUC,
		ExpenseUC:      expenseUC,
		PayrollUC:      payrollUC,
		InvestorUC:     investorUC,
		DashboardUC:    dashboardUC,
		ExportUC:       exportUC,
		NotifyUC:       notifyUC,
		JWTSecret:      cfg.JWT.Secret,
		MetricsEnabled: cfg.Metrics.Enabled,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
