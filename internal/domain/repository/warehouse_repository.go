package repository

import "github.com/tu-usuario/stock-alerts/internal/domain/entity"

// WarehouseRepository define el puerto de persistencia para Warehouse (DIP).
type WarehouseRepository interface {
	Create(warehouse *entity.Warehouse) error
	GetByID(id string) (*entity.Warehouse, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Warehouse, error)
	// AllByCompany devuelve todas las bodegas de la empresa en orden estable
	// (created_at, id). Lo usa el motor de alertas para iterar completo.
	AllByCompany(companyID string) ([]*entity.Warehouse, error)
}
