package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/stock-alerts/internal/application/alerts"
	"github.com/tu-usuario/stock-alerts/internal/application/inventory"
	"github.com/tu-usuario/stock-alerts/internal/application/usecase"
	infrapdf "github.com/tu-usuario/stock-alerts/internal/infrastructure/pdf"
	"github.com/tu-usuario/stock-alerts/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/stock-alerts/internal/interfaces/http"
	"github.com/tu-usuario/stock-alerts/pkg/config"
	"github.com/tu-usuario/stock-alerts/pkg/logger"
)

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

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	historyRepo := postgres.NewInventoryHistoryRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	bundleRepo := postgres.NewBundleRepository(pool)
	thresholdRepo := postgres.NewThresholdRepository(pool)
	salesRepo := postgres.NewSalesRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	createProductUC := inventory.NewCreateProductUseCase(txRunner, warehouseRepo)
	adjustQuantityUC := inventory.NewAdjustQuantityUseCase(txRunner, warehouseRepo, cfg.Inventory.AllowNegative)
	bundleUC := inventory.NewBundleUseCase(productRepo, bundleRepo)
	historyUC := inventory.NewHistoryUseCase(historyRepo, warehouseRepo)

	lowStockUC := alerts.NewLowStockUseCase(
		companyRepo, warehouseRepo, inventoryRepo,
		salesRepo, thresholdRepo, supplierRepo,
		cfg.Inventory.AlertWindowDays,
	)
	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := alerts.NewReportUseCase(companyRepo, lowStockUC, pdfGenerator)

	companyUC := usecase.NewCompanyUseCase(companyRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo, companyRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo, productRepo)
	thresholdUC := usecase.NewThresholdUseCase(thresholdRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Stock Alerts API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC:      companyUC,
		WarehouseUC:    warehouseUC,
		ProductUC:      productUC,
		SupplierUC:     supplierUC,
		ThresholdUC:    thresholdUC,
		CreateProduct:  createProductUC,
		AdjustQuantity: adjustQuantityUC,
		BundleUC:       bundleUC,
		HistoryUC:      historyUC,
		LowStock:       lowStockUC,
		Report:         reportUC,
		AlertTimeout:   time.Duration(cfg.Inventory.AlertTimeoutSec) * time.Second,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("apagando servidor")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
}
