package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hostaly/hostaly-api/internal/application/dto"
	"github.com/hostaly/hostaly-api/internal/application/usecase"
)

// CatalogHandler lectura de datos de referencia: artículos y habitaciones.
type CatalogHandler struct {
	catalog *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(catalog *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListArticles godoc
// @Summary      Listar artículos
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ArticleResponse
// @Router       /api/articles [get]
func (h *CatalogHandler) ListArticles(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	items, err := h.catalog.ListArticles(GetOrganizationID(c), page)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(fiber.Map{"items": items, "total": len(items)})
}

// GetArticle godoc
// @Summary      Obtener artículo por ID
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ArticleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/articles/{id} [get]
func (h *CatalogHandler) GetArticle(c *fiber.Ctx) error {
	resp, err := h.catalog.GetArticle(c.Params("id"), GetOrganizationID(c))
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(resp)
}

// ListRooms godoc
// @Summary      Listar habitaciones
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.RoomResponse
// @Router       /api/rooms [get]
func (h *CatalogHandler) ListRooms(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	items, err := h.catalog.ListRooms(GetOrganizationID(c), page)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(fiber.Map{"items": items, "total": len(items)})
}

// GetRoom godoc
// @Summary      Obtener habitación por ID
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.RoomResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/rooms/{id} [get]
func (h *CatalogHandler) GetRoom(c *fiber.Ctx) error {
	resp, err := h.catalog.GetRoom(c.Params("id"), GetOrganizationID(c))
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(resp)
}
