package entity

import "time"

// ProductThreshold mapea un tipo de producto a su umbral de stock bajo.
// La ausencia de mapeo para un tipo es un resultado distinguible ("no evaluable"),
// nunca un default implícito.
type ProductThreshold struct {
	ProductType string
	Threshold   int64
	UpdatedAt   time.Time
}
