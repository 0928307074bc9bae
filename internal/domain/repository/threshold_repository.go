package repository

import "github.com/tu-usuario/stock-alerts/internal/domain/entity"

// ThresholdRepository define el puerto del mapa tipo de producto → umbral de stock bajo.
type ThresholdRepository interface {
	// ThresholdForType devuelve el umbral configurado para el tipo,
	// o nil sin error cuando el tipo no tiene mapeo (resultado distinguible).
	ThresholdForType(productType string) (*int64, error)
	// All devuelve el mapa completo; el motor de alertas lo carga una sola vez por cómputo.
	All() (map[string]int64, error)
	Upsert(threshold *entity.ProductThreshold) error
}
