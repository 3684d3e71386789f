package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hostaly/hostaly-api/internal/application/auth"
	"github.com/hostaly/hostaly-api/internal/application/dto"
)

// AuthHandler registro y login (público).
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// RegisterOrganization godoc
// @Summary      Registrar organización con su primer usuario administrador
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      201  {object}  dto.RegisterOrganizationResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/auth/organizations [post]
func (h *AuthHandler) RegisterOrganization(c *fiber.Ctx) error {
	var in dto.RegisterOrganizationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.RegisterOrganization(in)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      201  {object}  dto.UserResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.RegisterUser(in)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Login godoc
// @Summary      Login con email y password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.LoginResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Login(in)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(resp)
}
