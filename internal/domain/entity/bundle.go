package entity

import "time"

// BundleItem compone un bundle: el producto padre contiene Quantity unidades del hijo.
// Padre e hijo son productos ordinarios; la relación solo codifica composición.
// La aciclicidad se valida al escribir (ver BundleUseCase), no aquí.
type BundleItem struct {
	BundleID  string
	ChildID   string
	Quantity  int64
	CreatedAt time.Time
}
