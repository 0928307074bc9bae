package dto

import "time"

// CreateSupplierRequest entrada para crear un proveedor.
type CreateSupplierRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Contact string `json:"contact"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Contact   string    `json:"contact"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SupplierListResponse lista paginada de proveedores.
type SupplierListResponse struct {
	Items []SupplierResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// LinkSupplierRequest body para vincular proveedor y producto.
// Rank define la preferencia de reorden (menor = primario).
type LinkSupplierRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Rank      int    `json:"rank" validate:"min=0"`
}

// UpsertThresholdRequest body para configurar el umbral de un tipo de producto.
type UpsertThresholdRequest struct {
	ProductType string `json:"product_type" validate:"required"`
	Threshold   int64  `json:"threshold" validate:"min=0"`
}
