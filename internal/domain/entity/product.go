package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo (multi-bodega).
// El SKU es único global y sensible a mayúsculas; la unicidad la garantiza la BD.
// El stock se maneja por bodega en InventoryRecord, nunca aquí.
type Product struct {
	ID          string
	CompanyID   string
	SKU         string
	Name        string
	Price       decimal.Decimal // precio de venta, nunca negativo
	ProductType string          // clave para resolver el umbral de stock bajo
	IsBundle    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
