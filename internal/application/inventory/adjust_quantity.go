package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/stock-alerts/internal/application/dto"
	"github.com/tu-usuario/stock-alerts/internal/domain"
	"github.com/tu-usuario/stock-alerts/internal/domain/entity"
	"github.com/tu-usuario/stock-alerts/internal/domain/repository"
)

// AdjustQuantityUseCase aplica un delta al inventario de un (producto, bodega)
// con bloqueo de fila (SELECT FOR UPDATE) y escribe la entrada de historial en
// la misma transacción. Dos ajustes concurrentes serializan en la BD: el
// historial queda en orden de commit y la cantidad final refleja ambos deltas.
type AdjustQuantityUseCase struct {
	txRunner      TxRunner
	warehouseRepo repository.WarehouseRepository
	allowNegative bool
}

// NewAdjustQuantityUseCase construye el caso de uso. allowNegative habilita
// backorders (cantidad resultante < 0); por defecto la política es rechazarlos.
func NewAdjustQuantityUseCase(txRunner TxRunner, warehouseRepo repository.WarehouseRepository, allowNegative bool) *AdjustQuantityUseCase {
	return &AdjustQuantityUseCase{txRunner: txRunner, warehouseRepo: warehouseRepo, allowNegative: allowNegative}
}

// Adjust aplica el delta. La bodega debe pertenecer a la empresa del llamador
// (domain.ErrForbidden si no). Sin registro para el par → domain.ErrNotFound.
// Resultado negativo con backorders deshabilitados → domain.ErrInsufficientStock.
func (uc *AdjustQuantityUseCase) Adjust(ctx context.Context, companyID string, in dto.AdjustQuantityRequest) (*dto.AdjustQuantityResponse, error) {
	if companyID == "" || in.ProductID == "" || in.WarehouseID == "" || in.Reason == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Delta == 0 {
		return nil, domain.ErrInvalidInput
	}

	wh, err := uc.warehouseRepo.GetByID(in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if wh == nil {
		return nil, domain.ErrNotFound
	}
	if wh.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}

	var out dto.AdjustQuantityResponse
	err = uc.txRunner.Run(ctx, func(
		_ repository.ProductRepository,
		inventoryRepo repository.InventoryRepository,
		historyRepo repository.InventoryHistoryRepository,
	) error {
		record, err := inventoryRepo.GetForUpdate(in.ProductID, in.WarehouseID)
		if err != nil {
			return err
		}
		if record == nil {
			return domain.ErrNotFound
		}

		newQty := record.Quantity + in.Delta
		if newQty < 0 && !uc.allowNegative {
			return domain.ErrInsufficientStock
		}

		now := time.Now()
		if err := inventoryRepo.UpdateQuantity(in.ProductID, in.WarehouseID, newQty, now); err != nil {
			return err
		}
		entry := &entity.InventoryHistoryEntry{
			ID:          uuid.New().String(),
			ProductID:   in.ProductID,
			WarehouseID: in.WarehouseID,
			OldQuantity: record.Quantity,
			NewQuantity: newQty,
			Reason:      in.Reason,
			CreatedAt:   now,
		}
		if err := historyRepo.Create(entry); err != nil {
			return err
		}

		out = dto.AdjustQuantityResponse{
			ProductID:   in.ProductID,
			WarehouseID: in.WarehouseID,
			OldQuantity: record.Quantity,
			NewQuantity: newQty,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
