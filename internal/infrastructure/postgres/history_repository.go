package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tu-usuario/stock-alerts/internal/domain/entity"
	"github.com/tu-usuario/stock-alerts/internal/domain/repository"
)

var _ repository.InventoryHistoryRepository = (*InventoryHistoryRepo)(nil)

// InventoryHistoryRepo implementación del historial append-only sobre PostgreSQL.
// Solo INSERT y SELECT: las filas jamás se actualizan ni se borran.
type InventoryHistoryRepo struct {
	q Querier
}

// NewInventoryHistoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryHistoryRepository(q Querier) *InventoryHistoryRepo {
	return &InventoryHistoryRepo{q: q}
}

// Create persiste una entrada de historial.
func (r *InventoryHistoryRepo) Create(entry *entity.InventoryHistoryEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	query := `
		INSERT INTO inventory_history (id, product_id, warehouse_id, old_quantity, new_quantity, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.ProductID, entry.WarehouseID,
		entry.OldQuantity, entry.NewQuantity, entry.Reason, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert history entry: %w", err)
	}
	return nil
}

// ListByProductAndWarehouse devuelve el historial del par en orden de commit.
func (r *InventoryHistoryRepo) ListByProductAndWarehouse(productID, warehouseID string, limit, offset int) ([]*entity.InventoryHistoryEntry, error) {
	query := `
		SELECT id, product_id, warehouse_id, old_quantity, new_quantity, reason, created_at
		FROM inventory_history
		WHERE product_id = $1 AND warehouse_id = $2
		ORDER BY created_at ASC, id ASC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, productID, warehouseID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryHistoryEntry
	for rows.Next() {
		var e entity.InventoryHistoryEntry
		if err := rows.Scan(&e.ID, &e.ProductID, &e.WarehouseID,
			&e.OldQuantity, &e.NewQuantity, &e.Reason, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan history entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
