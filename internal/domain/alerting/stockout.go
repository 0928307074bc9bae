package alerting

import "math"

// DaysUntilStockout estima los días hasta agotar stock (servicio de dominio).
// VentaDiariaPromedio = ventasVentana / diasVentana
// Dias = floor(cantidadActual / VentaDiariaPromedio)
// Devuelve nil cuando no hay ventas en la ventana (indefinido, evita división por cero).
func DaysUntilStockout(quantity, salesSum int64, windowDays int) *int {
	if windowDays <= 0 || salesSum <= 0 {
		return nil
	}
	avgDaily := float64(salesSum) / float64(windowDays)
	days := int(math.Floor(float64(quantity) / avgDaily))
	return &days
}

// AverageDailySales devuelve el promedio diario de ventas de la ventana.
func AverageDailySales(salesSum int64, windowDays int) float64 {
	if windowDays <= 0 {
		return 0
	}
	return float64(salesSum) / float64(windowDays)
}
