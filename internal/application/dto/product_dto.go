package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductWithStockRequest body para POST /api/products.
// Crea el producto y su registro de inventario inicial en una sola transacción.
// Price viaja como string decimal para no perder precisión en el JSON.
type CreateProductWithStockRequest struct {
	Name            string `json:"name" validate:"required,min=1,max=200"`
	SKU             string `json:"sku" validate:"required,min=1,max=100"`
	Price           string `json:"price" validate:"required"`
	ProductType     string `json:"product_type"`
	WarehouseID     string `json:"warehouse_id" validate:"required"`
	InitialQuantity *int64 `json:"initial_quantity,omitempty"` // default 0
}

// CreateProductResponse respuesta de creación.
type CreateProductResponse struct {
	ProductID string `json:"product_id"`
	Status    string `json:"status"` // "created"
}

// ProductResponse salida de un producto del catálogo.
type ProductResponse struct {
	ID          string          `json:"id"`
	CompanyID   string          `json:"company_id"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	ProductType string          `json:"product_type"`
	IsBundle    bool            `json:"is_bundle"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// AddBundleItemRequest body para POST /api/products/:id/bundle-items.
type AddBundleItemRequest struct {
	ChildProductID string `json:"child_product_id" validate:"required"`
	Quantity       int64  `json:"quantity" validate:"required,min=1"`
}
