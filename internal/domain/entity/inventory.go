package entity

import "time"

// Razones estándar de cambio de inventario.
const (
	ReasonInitialStock = "initial stock"
)

// InventoryRecord representa la cantidad actual de un producto en una bodega.
// Existe exactamente un registro por par (producto, bodega); se crea al estocar
// el producto por primera vez y nunca se borra en silencio.
type InventoryRecord struct {
	ProductID   string
	WarehouseID string
	Quantity    int64
	UpdatedAt   time.Time
}

// InventoryHistoryEntry es una fila inmutable del historial de cambios de inventario.
// Se escribe exactamente una por mutación de cantidad, en la misma transacción.
type InventoryHistoryEntry struct {
	ID          string
	ProductID   string
	WarehouseID string
	OldQuantity int64
	NewQuantity int64
	Reason      string
	CreatedAt   time.Time
}
