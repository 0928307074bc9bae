package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/stock-alerts/internal/domain"
	"github.com/tu-usuario/stock-alerts/internal/domain/entity"
	"github.com/tu-usuario/stock-alerts/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Create inserta el registro de inventario del par (producto, bodega).
// El PK compuesto garantiza un solo registro por par; colisión → domain.ErrDuplicate.
func (r *InventoryRepo) Create(record *entity.InventoryRecord) error {
	query := `
		INSERT INTO inventory_records (product_id, warehouse_id, quantity, updated_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		record.ProductID, record.WarehouseID, record.Quantity, record.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert inventory record: %w", err)
	}
	return nil
}

// Get obtiene el registro del par; nil si no existe.
func (r *InventoryRepo) Get(productID, warehouseID string) (*entity.InventoryRecord, error) {
	query := `
		SELECT product_id, warehouse_id, quantity, updated_at
		FROM inventory_records WHERE product_id = $1 AND warehouse_id = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, productID, warehouseID), "get inventory record")
}

// GetForUpdate obtiene el registro y bloquea la fila (SELECT FOR UPDATE).
// Usar dentro de una transacción: serializa ajustes concurrentes del mismo par.
func (r *InventoryRepo) GetForUpdate(productID, warehouseID string) (*entity.InventoryRecord, error) {
	query := `
		SELECT product_id, warehouse_id, quantity, updated_at
		FROM inventory_records WHERE product_id = $1 AND warehouse_id = $2
		FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, productID, warehouseID), "get inventory record for update")
}

// UpdateQuantity fija la cantidad del par. El registro nunca se borra.
func (r *InventoryRepo) UpdateQuantity(productID, warehouseID string, quantity int64, updatedAt time.Time) error {
	query := `
		UPDATE inventory_records SET quantity = $3, updated_at = $4
		WHERE product_id = $1 AND warehouse_id = $2`
	cmd, err := r.q.Exec(context.Background(), query, productID, warehouseID, quantity, updatedAt)
	if err != nil {
		return fmt.Errorf("update inventory quantity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByWarehouse devuelve el inventario de la bodega con datos de producto,
// ordenado por SKU para que el motor de alertas itere en orden estable.
func (r *InventoryRepo) ListByWarehouse(ctx context.Context, warehouseID string) ([]repository.WarehouseStockRow, error) {
	query := `
		SELECT i.product_id, p.name, p.sku, p.product_type, i.quantity
		FROM inventory_records i
		JOIN products p ON p.id = i.product_id
		WHERE i.warehouse_id = $1
		ORDER BY p.sku ASC`
	rows, err := r.q.Query(ctx, query, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("list inventory by warehouse: %w", err)
	}
	defer rows.Close()
	var list []repository.WarehouseStockRow
	for rows.Next() {
		var row repository.WarehouseStockRow
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.SKU, &row.ProductType, &row.Quantity); err != nil {
			return nil, fmt.Errorf("scan inventory row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

func (r *InventoryRepo) scanOne(row pgx.Row, op string) (*entity.InventoryRecord, error) {
	var rec entity.InventoryRecord
	err := row.Scan(&rec.ProductID, &rec.WarehouseID, &rec.Quantity, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &rec, nil
}
