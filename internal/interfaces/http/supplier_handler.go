package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/stock-alerts/internal/application/dto"
	"github.com/tu-usuario/stock-alerts/internal/application/usecase"
)

// SupplierHandler maneja proveedores y umbrales de alerta (protegido).
type SupplierHandler struct {
	uc          *usecase.SupplierUseCase
	thresholdUC *usecase.ThresholdUseCase
}

// NewSupplierHandler construye el handler.
func NewSupplierHandler(uc *usecase.SupplierUseCase, thresholdUC *usecase.ThresholdUseCase) *SupplierHandler {
	return &SupplierHandler{uc: uc, thresholdUC: thresholdUC}
}

// Create godoc
// @Summary      Crear proveedor
// @Tags         suppliers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSupplierRequest  true  "Datos del proveedor"
// @Success      201   {object}  dto.SupplierResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/suppliers [post]
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar proveedores
// @Tags         suppliers
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite de resultados"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.SupplierListResponse
// @Router       /api/suppliers [get]
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// LinkProduct godoc
// @Summary      Vincular proveedor a producto
// @Description  Rank define la preferencia de reorden; el menor rank es el proveedor primario.
// @Tags         suppliers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del proveedor"
// @Param        body  body  dto.LinkSupplierRequest  true  "Producto y rank"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id}/products [post]
func (h *SupplierHandler) LinkProduct(c *fiber.Ctx) error {
	supplierID := c.Params("id")
	if supplierID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.LinkSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.LinkProduct(supplierID, in); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "linked"})
}

// UpsertThreshold godoc
// @Summary      Configurar umbral por tipo de producto
// @Description  Los tipos sin umbral configurado quedan fuera del motor de alertas.
// @Tags         thresholds
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpsertThresholdRequest  true  "Tipo y umbral"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/thresholds [put]
func (h *SupplierHandler) UpsertThreshold(c *fiber.Ctx) error {
	var in dto.UpsertThresholdRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.thresholdUC.Upsert(in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

// ListThresholds godoc
// @Summary      Listar umbrales configurados
// @Tags         thresholds
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]int64
// @Router       /api/thresholds [get]
func (h *SupplierHandler) ListThresholds(c *fiber.Ctx) error {
	out, err := h.thresholdUC.All()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
