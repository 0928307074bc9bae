package dto

// AlertSupplierDTO proveedor primario sugerido para reorden (nullable en la alerta).
type AlertSupplierDTO struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

// LowStockAlertDTO una alerta de riesgo de quiebre de stock para un (producto, bodega).
// DaysUntilStockout es nil cuando no hay promedio de venta (indefinido).
type LowStockAlertDTO struct {
	ProductID         string            `json:"product_id"`
	ProductName       string            `json:"product_name"`
	SKU               string            `json:"sku"`
	WarehouseID       string            `json:"warehouse_id"`
	WarehouseName     string            `json:"warehouse_name"`
	CurrentStock      int64             `json:"current_stock"`
	Threshold         int64             `json:"threshold"`
	DaysUntilStockout *int              `json:"days_until_stockout"`
	Supplier          *AlertSupplierDTO `json:"supplier"`
}

// LowStockReportDTO lista completa de alertas de una empresa.
// El orden es estable: bodegas por creación, productos por SKU dentro de cada bodega.
type LowStockReportDTO struct {
	CompanyID string             `json:"company_id"`
	Alerts    []LowStockAlertDTO `json:"alerts"`
	Total     int                `json:"total"`
}
