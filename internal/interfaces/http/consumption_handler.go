package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/hostaly/hostaly-api/internal/application/dto"
	"github.com/hostaly/hostaly-api/internal/application/inventory"
	"github.com/hostaly/hostaly-api/internal/application/usecase"
	"github.com/hostaly/hostaly-api/internal/domain/entity"
)

// ConsumptionHandler maneja ajustes y consumos (protegido). Es la fachada
// HTTP del poster: toda mutación de cantidad con auditoría entra por aquí.
type ConsumptionHandler struct {
	poster *inventory.PosterUseCase
	batch  *inventory.BatchUseCase
	secLog *usecase.SecurityLogUseCase
}

// NewConsumptionHandler construye el handler.
func NewConsumptionHandler(poster *inventory.PosterUseCase, batch *inventory.BatchUseCase, secLog *usecase.SecurityLogUseCase) *ConsumptionHandler {
	return &ConsumptionHandler{poster: poster, batch: batch, secLog: secLog}
}

// PostAdjustment godoc
// @Summary      Ajuste manual de cantidad con asiento "Ajuste"
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      201  {object}  dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id}/adjustment [post]
func (h *ConsumptionHandler) PostAdjustment(c *fiber.Ctx) error {
	orgID := GetOrganizationID(c)
	actorID := GetUserID(c)
	inventoryID := c.Params("id")
	var in dto.AdjustmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	mov, err := h.poster.PostAdjustment(c.Context(), inventoryID, in.NewQuantity, in.Reason, orgID, actorID, GetOriginIP(c))
	if err != nil {
		return handleDomainError(c, err)
	}
	_ = h.secLog.Log(orgID, "ledger", entity.SeverityInfo,
		fmt.Sprintf("ajuste de existencia %s: %d -> %d (%s)", inventoryID, mov.QuantityBefore, mov.QuantityAfter, in.Reason),
		actorID, GetOriginIP(c))
	return c.Status(fiber.StatusCreated).JSON(toMovementDTO(mov))
}

// PostConsumption godoc
// @Summary      Consumo estricto: rechaza si el stock no alcanza
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      201  {object}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse  "INSUFFICIENT_STOCK"
// @Router       /api/inventory/{id}/consumption [post]
func (h *ConsumptionHandler) PostConsumption(c *fiber.Ctx) error {
	orgID := GetOrganizationID(c)
	actorID := GetUserID(c)
	var in dto.ConsumptionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	mov, err := h.poster.PostConsumption(c.Context(), c.Params("id"), in.Quantity, in.CorrelationID, in.Details, orgID, actorID, GetOriginIP(c))
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovementDTO(mov))
}

// PostBatch godoc
// @Summary      Consumo por lotes (flujo grueso, política de recorte configurable)
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.BatchConsumptionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/consumptions/batch [post]
func (h *ConsumptionHandler) PostBatch(c *fiber.Ctx) error {
	orgID := GetOrganizationID(c)
	actorID := GetUserID(c)
	var in dto.BatchConsumptionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.batch.PostBatch(c.Context(), orgID, actorID, in.Items)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(resp)
}

func toMovementDTO(m *entity.Movement) *dto.MovementResponse {
	resp := &dto.MovementResponse{
		ID:             m.ID,
		InventoryID:    m.InventoryID,
		Kind:           m.Kind,
		QuantityBefore: m.QuantityBefore,
		QuantityAfter:  m.QuantityAfter,
		QuantityDelta:  m.QuantityDelta,
		Reason:         m.Reason,
		DocumentNumber: m.DocumentNumber,
		TransferID:     m.TransferID,
		CreatedAt:      m.CreatedAt,
		CreatedBy:      m.CreatedBy,
		OriginIP:       m.OriginIP,
	}
	if m.Metadata != nil {
		resp.Metadata = &dto.MovementMetadataDTO{
			CorrelationID: m.Metadata.CorrelationID,
			Details:       m.Metadata.Details,
			Extra:         m.Metadata.Extra,
		}
	}
	return resp
}
