package repository

import (
	"context"
	"time"
)

// SalesRepository es la interfaz de lectura hacia el almacén de ventas (colaborador externo).
// El motor de alertas depende de su contrato: suma de unidades vendidas por
// (producto, bodega) desde un instante dado. Sin ventas devuelve 0, nunca error.
type SalesRepository interface {
	SumQuantitySold(ctx context.Context, productID, warehouseID string, since time.Time) (int64, error)
}
