package repository

import (
	"context"

	"github.com/tu-usuario/stock-alerts/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para Supplier y sus vínculos con productos.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	List(limit, offset int) ([]*entity.Supplier, error)
	// Link vincula proveedor y producto con un rank de preferencia.
	// Devuelve domain.ErrDuplicate si el par ya existe.
	Link(link *entity.SupplierProduct) error
	// PrimaryForProduct devuelve el proveedor primario: el vínculo con menor
	// (rank, supplier_id). nil sin error cuando el producto no tiene proveedores.
	PrimaryForProduct(ctx context.Context, productID string) (*entity.Supplier, error)
}
