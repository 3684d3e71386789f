package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hostaly/hostaly-api/internal/application/dto"
	"github.com/hostaly/hostaly-api/internal/application/usecase"
)

// SecurityLogHandler consulta del log de auditoría/seguridad (solo admin).
type SecurityLogHandler struct {
	secLog *usecase.SecurityLogUseCase
}

// NewSecurityLogHandler construye el handler.
func NewSecurityLogHandler(secLog *usecase.SecurityLogUseCase) *SecurityLogHandler {
	return &SecurityLogHandler{secLog: secLog}
}

// List godoc
// @Summary      Listar entradas del log de seguridad
// @Tags         security
// @Security     Bearer
// @Produce      json
// @Param        module  query  string  false  "filtrar por módulo"
// @Success      200  {array}  dto.SecurityLogEntryResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/security-log [get]
func (h *SecurityLogHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	items, err := h.secLog.List(GetOrganizationID(c), c.Query("module"), page)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(fiber.Map{"items": items, "total": len(items)})
}
