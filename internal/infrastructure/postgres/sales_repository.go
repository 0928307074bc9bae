package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/stock-alerts/internal/domain/repository"
)

var _ repository.SalesRepository = (*SalesRepo)(nil)

// SalesRepo agregación de solo lectura sobre el almacén de ventas.
// COALESCE devuelve 0 cuando el par no tiene ventas en la ventana, así
// "sin filas" y "suma cero" son el mismo resultado para el motor de alertas.
type SalesRepo struct {
	q Querier
}

// NewSalesRepository construye el adaptador de agregación de ventas.
func NewSalesRepository(q Querier) *SalesRepo {
	return &SalesRepo{q: q}
}

// SumQuantitySold suma las unidades vendidas del (producto, bodega) desde since.
func (r *SalesRepo) SumQuantitySold(ctx context.Context, productID, warehouseID string, since time.Time) (int64, error) {
	const query = `
	SELECT COALESCE(SUM(quantity), 0)
	FROM sales_records
	WHERE product_id = $1
	  AND warehouse_id = $2
	  AND sold_at >= $3`
	var sum int64
	err := r.q.QueryRow(ctx, query, productID, warehouseID, since).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("sum quantity sold: %w", err)
	}
	return sum, nil
}
