package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/stock-alerts/internal/application/dto"
	"github.com/tu-usuario/stock-alerts/internal/domain"
	"github.com/tu-usuario/stock-alerts/internal/domain/entity"
	"github.com/tu-usuario/stock-alerts/internal/domain/repository"
)

// CreateProductUseCase crea un producto junto con su stock inicial en una bodega,
// como unidad atómica: producto, registro de inventario y primera entrada de
// historial se insertan en la misma transacción.
type CreateProductUseCase struct {
	txRunner      TxRunner
	warehouseRepo repository.WarehouseRepository
}

// NewCreateProductUseCase construye el caso de uso.
func NewCreateProductUseCase(txRunner TxRunner, warehouseRepo repository.WarehouseRepository) *CreateProductUseCase {
	return &CreateProductUseCase{txRunner: txRunner, warehouseRepo: warehouseRepo}
}

// CreateWithStock valida la entrada sin tocar la BD y luego ejecuta la transacción.
// Colisión de SKU (constraint único) → domain.ErrDuplicate con rollback completo.
// Validación fallida → domain.ErrInvalidInput antes de cualquier escritura.
func (uc *CreateProductUseCase) CreateWithStock(
	ctx context.Context,
	companyID string,
	in dto.CreateProductWithStockRequest,
) (*dto.CreateProductResponse, error) {
	if companyID == "" || in.Name == "" || in.SKU == "" || in.WarehouseID == "" {
		return nil, domain.ErrInvalidInput
	}
	price, err := decimal.NewFromString(in.Price)
	if err != nil || price.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	initialQty := int64(0)
	if in.InitialQuantity != nil {
		if *in.InitialQuantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		initialQty = *in.InitialQuantity
	}

	// La bodega debe existir y pertenecer a la empresa antes de intentar persistir.
	wh, err := uc.warehouseRepo.GetByID(in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if wh == nil {
		return nil, domain.ErrInvalidInput
	}
	if wh.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}

	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		SKU:         in.SKU,
		Name:        in.Name,
		Price:       price,
		ProductType: in.ProductType,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		inventoryRepo repository.InventoryRepository,
		historyRepo repository.InventoryHistoryRepository,
	) error {
		if err := productRepo.Create(product); err != nil {
			return err
		}
		record := &entity.InventoryRecord{
			ProductID:   product.ID,
			WarehouseID: wh.ID,
			Quantity:    initialQty,
			UpdatedAt:   now,
		}
		if err := inventoryRepo.Create(record); err != nil {
			return err
		}
		entry := &entity.InventoryHistoryEntry{
			ID:          uuid.New().String(),
			ProductID:   product.ID,
			WarehouseID: wh.ID,
			OldQuantity: 0,
			NewQuantity: initialQty,
			Reason:      entity.ReasonInitialStock,
			CreatedAt:   now,
		}
		return historyRepo.Create(entry)
	})
	if err != nil {
		return nil, err
	}

	return &dto.CreateProductResponse{ProductID: product.ID, Status: "created"}, nil
}
