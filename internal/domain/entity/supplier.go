package entity

import "time"

// Supplier representa un proveedor. Relación muchos-a-muchos con Product vía SupplierProduct.
type Supplier struct {
	ID        string
	Name      string
	Contact   string // teléfono, email o persona de contacto
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SupplierProduct vincula un proveedor con un producto.
// El proveedor "primario" de un producto es el vínculo con menor (Rank, SupplierID);
// ese orden es contrato, no accidente del query.
type SupplierProduct struct {
	SupplierID string
	ProductID  string
	Rank       int
	CreatedAt  time.Time
}
