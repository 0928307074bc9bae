package inventory

import (
	"context"

	"github.com/tu-usuario/stock-alerts/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza la atomicidad del path de escritura: producto + registro de inventario +
// entrada de historial se confirman juntos o ninguno persiste.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		inventoryRepo repository.InventoryRepository,
		historyRepo repository.InventoryHistoryRepository,
	) error) error
}
