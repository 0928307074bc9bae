package dto

import "time"

// AdjustQuantityRequest body para POST /api/inventory/adjustments.
// Delta puede ser positivo o negativo; Reason queda en el historial.
type AdjustQuantityRequest struct {
	ProductID   string `json:"product_id" validate:"required"`
	WarehouseID string `json:"warehouse_id" validate:"required"`
	Delta       int64  `json:"delta"`
	Reason      string `json:"reason" validate:"required"`
}

// AdjustQuantityResponse respuesta del ajuste con la cantidad resultante.
type AdjustQuantityResponse struct {
	ProductID   string `json:"product_id"`
	WarehouseID string `json:"warehouse_id"`
	OldQuantity int64  `json:"old_quantity"`
	NewQuantity int64  `json:"new_quantity"`
}

// HistoryEntryResponse una fila del historial de inventario.
type HistoryEntryResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	WarehouseID string    `json:"warehouse_id"`
	OldQuantity int64     `json:"old_quantity"`
	NewQuantity int64     `json:"new_quantity"`
	Reason      string    `json:"reason"`
	CreatedAt   time.Time `json:"created_at"`
}

// HistoryListResponse historial paginado de un par (producto, bodega).
type HistoryListResponse struct {
	Items []HistoryEntryResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}
