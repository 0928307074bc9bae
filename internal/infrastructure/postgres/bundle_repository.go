package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/stock-alerts/internal/domain"
	"github.com/tu-usuario/stock-alerts/internal/domain/entity"
	"github.com/tu-usuario/stock-alerts/internal/domain/repository"
)

var _ repository.BundleRepository = (*BundleRepo)(nil)

// BundleRepo implementación de BundleRepository sobre PostgreSQL.
type BundleRepo struct {
	q Querier
}

// NewBundleRepository construye el adaptador de composición de bundles.
func NewBundleRepository(q Querier) *BundleRepo {
	return &BundleRepo{q: q}
}

// AddItem inserta la relación padre → hijo. PK compuesto → domain.ErrDuplicate en repetidos.
func (r *BundleRepo) AddItem(item *entity.BundleItem) error {
	query := `
		INSERT INTO bundle_items (bundle_id, child_id, quantity, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		item.BundleID, item.ChildID, item.Quantity, item.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert bundle item: %w", err)
	}
	return nil
}

// ListChildren devuelve los hijos directos del bundle en orden estable.
func (r *BundleRepo) ListChildren(bundleID string) ([]*entity.BundleItem, error) {
	query := `
		SELECT bundle_id, child_id, quantity, created_at
		FROM bundle_items WHERE bundle_id = $1 ORDER BY child_id ASC`
	rows, err := r.q.Query(context.Background(), query, bundleID)
	if err != nil {
		return nil, fmt.Errorf("list bundle children: %w", err)
	}
	defer rows.Close()
	var list []*entity.BundleItem
	for rows.Next() {
		var it entity.BundleItem
		if err := rows.Scan(&it.BundleID, &it.ChildID, &it.Quantity, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan bundle item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}
