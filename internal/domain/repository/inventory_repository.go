package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/stock-alerts/internal/domain/entity"
)

// WarehouseStockRow es la vista de inventario+producto que consume el motor de alertas.
type WarehouseStockRow struct {
	ProductID   string
	ProductName string
	SKU         string
	ProductType string
	Quantity    int64
}

// InventoryRepository define el puerto para el registro de inventario por (producto, bodega).
// Get/GetForUpdate devuelven nil (sin error) cuando el par no existe.
type InventoryRepository interface {
	Create(record *entity.InventoryRecord) error
	Get(productID, warehouseID string) (*entity.InventoryRecord, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE); usar dentro de una tx.
	GetForUpdate(productID, warehouseID string) (*entity.InventoryRecord, error)
	UpdateQuantity(productID, warehouseID string, quantity int64, updatedAt time.Time) error
	// ListByWarehouse devuelve el inventario de una bodega con datos de producto,
	// en orden estable por SKU. Lectura pura del motor de alertas.
	ListByWarehouse(ctx context.Context, warehouseID string) ([]WarehouseStockRow, error)
}

// InventoryHistoryRepository define el puerto del historial append-only de inventario.
type InventoryHistoryRepository interface {
	Create(entry *entity.InventoryHistoryEntry) error
	ListByProductAndWarehouse(productID, warehouseID string, limit, offset int) ([]*entity.InventoryHistoryEntry, error)
}
