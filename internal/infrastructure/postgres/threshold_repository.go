package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/stock-alerts/internal/domain/entity"
	"github.com/tu-usuario/stock-alerts/internal/domain/repository"
)

var _ repository.ThresholdRepository = (*ThresholdRepo)(nil)

// ThresholdRepo implementación del mapa tipo → umbral sobre PostgreSQL.
type ThresholdRepo struct {
	q Querier
}

// NewThresholdRepository construye el adaptador de umbrales.
func NewThresholdRepository(q Querier) *ThresholdRepo {
	return &ThresholdRepo{q: q}
}

// ThresholdForType devuelve el umbral configurado para el tipo, o nil si no hay mapeo.
func (r *ThresholdRepo) ThresholdForType(productType string) (*int64, error) {
	query := `SELECT threshold FROM product_thresholds WHERE product_type = $1`
	var threshold int64
	err := r.q.QueryRow(context.Background(), query, productType).Scan(&threshold)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("threshold for type: %w", err)
	}
	return &threshold, nil
}

// All devuelve el mapa completo tipo → umbral.
func (r *ThresholdRepo) All() (map[string]int64, error) {
	rows, err := r.q.Query(context.Background(), `SELECT product_type, threshold FROM product_thresholds`)
	if err != nil {
		return nil, fmt.Errorf("all thresholds: %w", err)
	}
	defer rows.Close()
	out := make(map[string]int64)
	for rows.Next() {
		var productType string
		var threshold int64
		if err := rows.Scan(&productType, &threshold); err != nil {
			return nil, fmt.Errorf("scan threshold: %w", err)
		}
		out[productType] = threshold
	}
	return out, rows.Err()
}

// Upsert crea o reemplaza el umbral del tipo.
func (r *ThresholdRepo) Upsert(threshold *entity.ProductThreshold) error {
	query := `
		INSERT INTO product_thresholds (product_type, threshold, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (product_type)
		DO UPDATE SET threshold = EXCLUDED.threshold, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		threshold.ProductType, threshold.Threshold, threshold.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert threshold: %w", err)
	}
	return nil
}
