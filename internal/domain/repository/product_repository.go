package repository

import "github.com/tu-usuario/stock-alerts/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Create devuelve domain.ErrDuplicate si el SKU ya existe (constraint único en BD).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Product, error)
	SetBundleFlag(id string, isBundle bool) error
}
