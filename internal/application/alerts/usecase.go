package alerts

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tu-usuario/stock-alerts/internal/application/dto"
	"github.com/tu-usuario/stock-alerts/internal/domain"
	"github.com/tu-usuario/stock-alerts/internal/domain/alerting"
	"github.com/tu-usuario/stock-alerts/internal/domain/repository"
)

// DefaultWindowDays ventana de ventas para el cálculo de alertas.
const DefaultWindowDays = 30

// maxParallelWarehouses acota el fan-out de lecturas concurrentes contra la BD.
const maxParallelWarehouses = 4

// LowStockUseCase calcula las alertas de stock bajo de una empresa: por cada
// bodega cruza inventario, ventas de la ventana y umbrales por tipo de producto.
// Es lectura pura; las bodegas se consultan en paralelo y cada una escribe en su
// propio slot del resultado, así la salida es estable para un mismo snapshot.
type LowStockUseCase struct {
	companyRepo   repository.CompanyRepository
	warehouseRepo repository.WarehouseRepository
	inventoryRepo repository.InventoryRepository
	salesRepo     repository.SalesRepository
	thresholdRepo repository.ThresholdRepository
	supplierRepo  repository.SupplierRepository
	windowDays    int
}

// NewLowStockUseCase construye el motor de alertas. windowDays <= 0 usa DefaultWindowDays.
func NewLowStockUseCase(
	companyRepo repository.CompanyRepository,
	warehouseRepo repository.WarehouseRepository,
	inventoryRepo repository.InventoryRepository,
	salesRepo repository.SalesRepository,
	thresholdRepo repository.ThresholdRepository,
	supplierRepo repository.SupplierRepository,
	windowDays int,
) *LowStockUseCase {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	return &LowStockUseCase{
		companyRepo:   companyRepo,
		warehouseRepo: warehouseRepo,
		inventoryRepo: inventoryRepo,
		salesRepo:     salesRepo,
		thresholdRepo: thresholdRepo,
		supplierRepo:  supplierRepo,
		windowDays:    windowDays,
	}
}

// Compute devuelve la lista completa de alertas de la empresa.
// Empresa inexistente → domain.ErrNotFound. Empresa sin bodegas → lista vacía, total 0.
// Si el deadline del ctx vence, aborta las sub-consultas pendientes y devuelve
// domain.ErrTimeout en lugar de presentar un resultado parcial como completo.
func (uc *LowStockUseCase) Compute(ctx context.Context, companyID string) (*dto.LowStockReportDTO, error) {
	if companyID == "" {
		return nil, domain.ErrInvalidInput
	}
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	warehouses, err := uc.warehouseRepo.AllByCompany(companyID)
	if err != nil {
		return nil, err
	}
	report := &dto.LowStockReportDTO{CompanyID: companyID, Alerts: []dto.LowStockAlertDTO{}}
	if len(warehouses) == 0 {
		return report, nil
	}

	// Umbrales una sola vez por cómputo: el mapa es inmutable durante el fan-out.
	thresholds, err := uc.thresholdRepo.All()
	if err != nil {
		return nil, err
	}

	since := time.Now().AddDate(0, 0, -uc.windowDays)

	// Un slot por bodega preserva el orden de iteración pese al paralelismo.
	slots := make([][]dto.LowStockAlertDTO, len(warehouses))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelWarehouses)
	for i, wh := range warehouses {
		i, wh := i, wh
		g.Go(func() error {
			alerts, err := uc.computeWarehouse(gctx, wh.ID, wh.Name, thresholds, since)
			if err != nil {
				return err
			}
			slots[i] = alerts
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		// Deadline vencido o llamador cancelado: el cómputo quedó incompleto,
		// nunca se presenta un resultado parcial como reporte.
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return nil, domain.ErrTimeout
		}
		return nil, err
	}

	for _, alerts := range slots {
		report.Alerts = append(report.Alerts, alerts...)
	}
	report.Total = len(report.Alerts)
	return report, nil
}

// computeWarehouse evalúa cada registro de inventario de la bodega.
// Reglas de salto: producto sin ventas en la ventana (SKU muerto, alerta no
// accionable), tipo sin umbral configurado (riesgo no evaluable) y cantidad
// por encima del umbral.
func (uc *LowStockUseCase) computeWarehouse(
	ctx context.Context,
	warehouseID, warehouseName string,
	thresholds map[string]int64,
	since time.Time,
) ([]dto.LowStockAlertDTO, error) {
	rows, err := uc.inventoryRepo.ListByWarehouse(ctx, warehouseID)
	if err != nil {
		return nil, err
	}

	var alerts []dto.LowStockAlertDTO
	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		salesSum, err := uc.salesRepo.SumQuantitySold(ctx, row.ProductID, warehouseID, since)
		if err != nil {
			return nil, err
		}
		if salesSum <= 0 {
			continue
		}

		threshold, ok := thresholds[row.ProductType]
		if !ok {
			continue
		}
		if row.Quantity >= threshold {
			continue
		}

		alert := dto.LowStockAlertDTO{
			ProductID:         row.ProductID,
			ProductName:       row.ProductName,
			SKU:               row.SKU,
			WarehouseID:       warehouseID,
			WarehouseName:     warehouseName,
			CurrentStock:      row.Quantity,
			Threshold:         threshold,
			DaysUntilStockout: alerting.DaysUntilStockout(row.Quantity, salesSum, uc.windowDays),
		}

		supplier, err := uc.supplierRepo.PrimaryForProduct(ctx, row.ProductID)
		if err != nil {
			return nil, err
		}
		if supplier != nil {
			alert.Supplier = &dto.AlertSupplierDTO{ID: supplier.ID, Name: supplier.Name, Contact: supplier.Contact}
		}

		alerts = append(alerts, alert)
	}
	return alerts, nil
}
