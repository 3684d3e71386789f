package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/hostaly/hostaly-api/internal/application/dto"
	"github.com/hostaly/hostaly-api/internal/application/inventory"
	"github.com/hostaly/hostaly-api/internal/application/usecase"
	"github.com/hostaly/hostaly-api/internal/domain/entity"
)

// InventoryHandler maneja las peticiones HTTP de existencias (protegido).
type InventoryHandler struct {
	stock  *inventory.StockUseCase
	secLog *usecase.SecurityLogUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(stock *inventory.StockUseCase, secLog *usecase.SecurityLogUseCase) *InventoryHandler {
	return &InventoryHandler{stock: stock, secLog: secLog}
}

// List godoc
// @Summary      Listar existencias
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        location_type  query  string  false  "GENERAL | ROOM | WAREHOUSE"
// @Param        location_id    query  string  false  "habitación o bodega"
// @Success      200  {object}  dto.InventoryListResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	orgID := GetOrganizationID(c)
	var locationType, locationID *string
	if v := c.Query("location_type"); v != "" {
		locationType = &v
	}
	if v := c.Query("location_id"); v != "" {
		locationID = &v
	}
	resp, err := h.stock.List(orgID, locationType, locationID)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(resp)
}

// GetByID godoc
// @Summary      Obtener existencia por ID
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InventoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [get]
func (h *InventoryHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.stock.GetByID(c.Params("id"), GetOrganizationID(c))
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(resp)
}

// Create godoc
// @Summary      Dar de alta existencia de un artículo en una ubicación
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      201  {object}  dto.InventoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/inventory [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	orgID := GetOrganizationID(c)
	var in dto.CreateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.stock.Create(orgID, in)
	if err != nil {
		return handleDomainError(c, err)
	}
	_ = h.secLog.Log(orgID, "inventario", entity.SeverityInfo,
		fmt.Sprintf("alta de existencia %s (artículo %s, %s)", resp.ID, in.ArticleID, in.LocationType),
		GetUserID(c), GetOriginIP(c))
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Delete godoc
// @Summary      Eliminar existencia (acción administrativa, sin asiento)
// @Tags         inventory
// @Security     Bearer
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	orgID := GetOrganizationID(c)
	id := c.Params("id")
	if err := h.stock.Delete(id, orgID); err != nil {
		return handleDomainError(c, err)
	}
	_ = h.secLog.Log(orgID, "inventario", entity.SeverityWarning,
		fmt.Sprintf("borrado administrativo de existencia %s", id),
		GetUserID(c), GetOriginIP(c))
	return c.SendStatus(fiber.StatusNoContent)
}

// SyncGeneral godoc
// @Summary      Sincronizar stock general (idempotente)
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SyncGeneralResponse
// @Router       /api/inventory/sync-general [post]
func (h *InventoryHandler) SyncGeneral(c *fiber.Ctx) error {
	orgID := GetOrganizationID(c)
	resp, err := h.stock.SyncGeneral(orgID)
	if err != nil {
		return handleDomainError(c, err)
	}
	if resp.Created > 0 {
		_ = h.secLog.Log(orgID, "inventario", entity.SeverityInfo,
			fmt.Sprintf("sincronización de stock general: %d registros creados", resp.Created),
			GetUserID(c), GetOriginIP(c))
	}
	return c.JSON(resp)
}
