package repository

import "github.com/tu-usuario/stock-alerts/internal/domain/entity"

// BundleRepository define el puerto para la composición de bundles.
type BundleRepository interface {
	// AddItem inserta una relación padre → hijo. Devuelve domain.ErrDuplicate si el par ya existe.
	AddItem(item *entity.BundleItem) error
	// ListChildren devuelve los hijos directos de un bundle en orden estable.
	ListChildren(bundleID string) ([]*entity.BundleItem, error)
}
