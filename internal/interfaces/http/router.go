package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/stock-alerts/internal/application/alerts"
	"github.com/tu-usuario/stock-alerts/internal/application/inventory"
	"github.com/tu-usuario/stock-alerts/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC      *usecase.CompanyUseCase
	WarehouseUC    *usecase.WarehouseUseCase
	ProductUC      *usecase.ProductUseCase
	SupplierUC     *usecase.SupplierUseCase
	ThresholdUC    *usecase.ThresholdUseCase
	CreateProduct  *inventory.CreateProductUseCase
	AdjustQuantity *inventory.AdjustQuantityUseCase
	BundleUC       *inventory.BundleUseCase
	HistoryUC      *inventory.HistoryUseCase
	LowStock       *alerts.LowStockUseCase
	Report         *alerts.ReportUseCase
	AlertTimeout   time.Duration
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Companies (público por ahora; se puede proteger con AuthMiddleware(deps.JWTSecret))
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Warehouses (protegido)
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)

	// Products (protegido). La creación incluye el stock inicial.
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.CreateProduct, deps.BundleUC, deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/:id/bundle-items", productHandler.AddBundleItem)

	// Inventory (protegido)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.AdjustQuantity, deps.HistoryUC)
	invGroup.Post("/adjustments", inventoryHandler.Adjust)
	invGroup.Get("/history", inventoryHandler.History)

	// Suppliers y thresholds (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC, deps.ThresholdUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/:id/products", supplierHandler.LinkProduct)

	thresholds := protected.Group("/thresholds")
	thresholds.Put("/", supplierHandler.UpsertThreshold)
	thresholds.Get("/", supplierHandler.ListThresholds)

	// Alertas de stock bajo (protegido)
	alertHandler := NewAlertHandler(deps.LowStock, deps.Report, deps.AlertTimeout)
	protected.Get("/companies/:id/low-stock-alerts", alertHandler.LowStock)
	protected.Get("/companies/:id/low-stock-alerts/pdf", alertHandler.LowStockPDF)
}
