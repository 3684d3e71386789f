package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/hostaly/hostaly-api/internal/application/dto"
	"github.com/hostaly/hostaly-api/internal/domain"
	"github.com/rs/zerolog/log"
)

// handleDomainError mapea la taxonomía de errores de dominio a respuestas
// HTTP. Las condiciones esperadas viajan como valores; cualquier otro fallo
// se loggea con contexto y sale como error genérico sin detalle interno.
func handleDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado", Detail: "el recurso no existe o no pertenece a la organización"})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "el registro ya existe", Detail: "ya hay existencia de ese artículo en esa ubicación"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente", Detail: "la cantidad disponible no cubre el consumo solicitado"})
	case errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "usuario no encontrado"})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
	default:
		log.Error().Err(err).
			Str("org", GetOrganizationID(c)).
			Str("actor", GetUserID(c)).
			Str("path", c.Path()).
			Msg("fallo inesperado")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno", Detail: "la operación no pudo completarse"})
	}
}
