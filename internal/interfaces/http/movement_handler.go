package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/hostaly/hostaly-api/internal/application/dto"
	"github.com/hostaly/hostaly-api/internal/application/inventory"
)

// MovementHandler consultas de los dos ledgers: historial de movimientos y
// log de entradas/salidas (protegido).
type MovementHandler struct {
	movements *inventory.MovementUseCase
	stockLog  *inventory.StockLogUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(movements *inventory.MovementUseCase, stockLog *inventory.StockLogUseCase) *MovementHandler {
	return &MovementHandler{movements: movements, stockLog: stockLog}
}

// List godoc
// @Summary      Historial paginado de un registro de existencia
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        kind       query  string  false  "Ajuste | Consumo | ..."
// @Param        date_from  query  string  false  "RFC 3339"
// @Param        date_to    query  string  false  "RFC 3339"
// @Param        actor_id   query  string  false  "actor"
// @Param        page       query  int     false  "página (>= 1)"
// @Param        page_size  query  int     false  "tamaño [1,100]"
// @Success      200  {object}  dto.MovementListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id}/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	var in dto.MovementListRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	resp, err := h.movements.List(c.Params("id"), GetOrganizationID(c), in)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(resp)
}

// Record godoc
// @Summary      Asiento directo de un movimiento (sin mutación de cantidad)
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      201  {object}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id}/movements [post]
func (h *MovementHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.movements.Record(c.Params("id"), GetOrganizationID(c), in, GetUserID(c), GetOriginIP(c))
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetByID godoc
// @Summary      Obtener un movimiento por ID
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [get]
func (h *MovementHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id de movimiento inválido"})
	}
	resp, err := h.movements.GetByID(id, GetOrganizationID(c))
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(resp)
}

// ListStockByArticle godoc
// @Summary      Entradas/salidas de un artículo (ledger secundario)
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        date_from  query  string  false  "RFC 3339"
// @Param        date_to    query  string  false  "RFC 3339"
// @Param        limit      query  int     false  "tamaño [1,100]"
// @Param        offset     query  int     false  "desplazamiento"
// @Success      200  {array}  dto.StockMovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/articles/{id}/stock-movements [get]
func (h *MovementHandler) ListStockByArticle(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	var from, to *time.Time
	if v := c.Query("date_from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "date_from inválido"})
		}
		from = &t
	}
	if v := c.Query("date_to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "date_to inválido"})
		}
		to = &t
	}
	items, err := h.stockLog.ListByArticle(c.Params("id"), GetOrganizationID(c), from, to, page)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(fiber.Map{"items": items, "total": len(items)})
}

// Statistics godoc
// @Summary      Agregados del historial de la organización
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        date_from  query  string  false  "RFC 3339"
// @Param        date_to    query  string  false  "RFC 3339"
// @Success      200  {object}  dto.MovementStatsResponse
// @Router       /api/movements/stats [get]
func (h *MovementHandler) Statistics(c *fiber.Ctx) error {
	var from, to *time.Time
	if v := c.Query("date_from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "date_from inválido"})
		}
		from = &t
	}
	if v := c.Query("date_to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "date_to inválido"})
		}
		to = &t
	}
	resp, err := h.movements.Statistics(GetOrganizationID(c), from, to)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(resp)
}
