package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/stock-alerts/internal/application/alerts"
	"github.com/tu-usuario/stock-alerts/internal/application/dto"
)

// AlertHandler expone el reporte de alertas de stock bajo (protegido).
// Cada petición corre con un deadline propio; si el cómputo lo excede
// se responde 504 en lugar de dejar la conexión colgada.
type AlertHandler struct {
	lowStockUC *alerts.LowStockUseCase
	reportUC   *alerts.ReportUseCase
	timeout    time.Duration
}

// NewAlertHandler construye el handler.
func NewAlertHandler(lowStockUC *alerts.LowStockUseCase, reportUC *alerts.ReportUseCase, timeout time.Duration) *AlertHandler {
	return &AlertHandler{lowStockUC: lowStockUC, reportUC: reportUC, timeout: timeout}
}

// LowStock godoc
// @Summary      Reporte de alertas de stock bajo
// @Description  Recorre todas las bodegas de la empresa y devuelve los productos por debajo de su umbral, con proyección de quiebre y proveedor primario.
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.LowStockReportDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      504  {object}  dto.ErrorResponse
// @Router       /api/companies/{id}/low-stock-alerts [get]
func (h *AlertHandler) LowStock(c *fiber.Ctx) error {
	companyID := c.Params("id")
	if companyID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if tokenCompany := GetCompanyID(c); tokenCompany != "" && tokenCompany != companyID {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "la empresa no corresponde al token"})
	}
	ctx, cancel := context.WithTimeout(c.UserContext(), h.timeout)
	defer cancel()

	out, err := h.lowStockUC.Compute(ctx, companyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// LowStockPDF godoc
// @Summary      Reporte de alertas de stock bajo en PDF
// @Tags         alerts
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la empresa"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      504  {object}  dto.ErrorResponse
// @Router       /api/companies/{id}/low-stock-alerts/pdf [get]
func (h *AlertHandler) LowStockPDF(c *fiber.Ctx) error {
	companyID := c.Params("id")
	if companyID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if tokenCompany := GetCompanyID(c); tokenCompany != "" && tokenCompany != companyID {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "la empresa no corresponde al token"})
	}
	ctx, cancel := context.WithTimeout(c.UserContext(), h.timeout)
	defer cancel()

	pdfBytes, err := h.reportUC.GeneratePDF(ctx, companyID)
	if err != nil {
		return respondError(c, err)
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="alertas-stock-bajo.pdf"`)
	return c.Send(pdfBytes)
}
