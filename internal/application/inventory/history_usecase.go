package inventory

import (
	"github.com/tu-usuario/stock-alerts/internal/application/dto"
	"github.com/tu-usuario/stock-alerts/internal/domain"
	"github.com/tu-usuario/stock-alerts/internal/domain/repository"
)

// HistoryUseCase lectura del historial append-only de un (producto, bodega).
type HistoryUseCase struct {
	historyRepo   repository.InventoryHistoryRepository
	warehouseRepo repository.WarehouseRepository
}

// NewHistoryUseCase construye el caso de uso.
func NewHistoryUseCase(historyRepo repository.InventoryHistoryRepository, warehouseRepo repository.WarehouseRepository) *HistoryUseCase {
	return &HistoryUseCase{historyRepo: historyRepo, warehouseRepo: warehouseRepo}
}

// List devuelve el historial en orden de commit (created_at, id).
// La bodega debe pertenecer a la empresa del llamador (domain.ErrForbidden si no).
// Limit/offset fuera de rango se normalizan con los defaults de paginación.
func (uc *HistoryUseCase) List(companyID, productID, warehouseID string, limit, offset int) (*dto.HistoryListResponse, error) {
	if companyID == "" || productID == "" || warehouseID == "" {
		return nil, domain.ErrInvalidInput
	}

	wh, err := uc.warehouseRepo.GetByID(warehouseID)
	if err != nil {
		return nil, err
	}
	if wh == nil {
		return nil, domain.ErrNotFound
	}
	if wh.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}

	page := dto.PageRequest{Limit: limit, Offset: offset}
	page.DefaultPage()

	entries, err := uc.historyRepo.ListByProductAndWarehouse(productID, warehouseID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.HistoryEntryResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, dto.HistoryEntryResponse{
			ID:          e.ID,
			ProductID:   e.ProductID,
			WarehouseID: e.WarehouseID,
			OldQuantity: e.OldQuantity,
			NewQuantity: e.NewQuantity,
			Reason:      e.Reason,
			CreatedAt:   e.CreatedAt,
		})
	}
	return &dto.HistoryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}
