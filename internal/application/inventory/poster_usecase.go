package inventory

import (
	"context"
	"time"

	"github.com/hostaly/hostaly-api/internal/domain"
	"github.com/hostaly/hostaly-api/internal/domain/entity"
	"github.com/hostaly/hostaly-api/internal/domain/repository"
	"github.com/hostaly/hostaly-api/pkg/metrics"
)

// PosterUseCase es el único componente que combina la mutación de cantidad
// con su asiento de auditoría. Cada operación corre dentro de una transacción
// (TxRunner) con bloqueo de fila (SELECT FOR UPDATE): o se confirman la
// cantidad y el movimiento juntos, o se revierte todo.
type PosterUseCase struct {
	txRunner TxRunner
}

// NewPosterUseCase construye el caso de uso.
func NewPosterUseCase(txRunner TxRunner) *PosterUseCase {
	return &PosterUseCase{txRunner: txRunner}
}

// PostAdjustment fija la cantidad en newQuantity y registra un movimiento
// "Ajuste" con before = cantidad previa y after = newQuantity. Un ajuste
// puede bajar a 0 o subir; nunca por debajo de 0.
func (uc *PosterUseCase) PostAdjustment(
	ctx context.Context,
	inventoryID string, newQuantity int64, reason string,
	organizationID, actorID string, originIP *string,
) (*entity.Movement, error) {
	if newQuantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	var result *entity.Movement
	err := uc.txRunner.Run(ctx, func(
		invRepo repository.InventoryRepository,
		movRepo repository.MovementRepository,
	) error {
		rec, err := invRepo.GetForUpdate(inventoryID, organizationID)
		if err != nil {
			return err
		}
		if rec == nil {
			return domain.ErrNotFound
		}
		before := rec.Quantity
		if err := invRepo.UpdateQuantity(inventoryID, organizationID, newQuantity); err != nil {
			return err
		}
		mov := &entity.Movement{
			InventoryID:    inventoryID,
			OrganizationID: organizationID,
			Kind:           entity.MovementKindAdjustment,
			QuantityBefore: before,
			QuantityAfter:  newQuantity,
			QuantityDelta:  newQuantity - before,
			Reason:         reason,
			CreatedAt:      time.Now(),
			CreatedBy:      actorID,
			OriginIP:       originIP,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		result = mov
		return nil
	})
	if err != nil {
		return nil, err
	}
	metrics.MovementsRecorded.WithLabelValues(entity.MovementKindAdjustment).Inc()
	return result, nil
}

// PostConsumption descuenta quantity del registro y asienta un movimiento
// "Consumo". Rechaza con ErrInsufficientStock si la cantidad actual no
// alcanza: nunca recorta a 0 en silencio.
func (uc *PosterUseCase) PostConsumption(
	ctx context.Context,
	inventoryID string, quantity int64,
	correlationID, details string,
	organizationID, actorID string, originIP *string,
) (*entity.Movement, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	var result *entity.Movement
	err := uc.txRunner.Run(ctx, func(
		invRepo repository.InventoryRepository,
		movRepo repository.MovementRepository,
	) error {
		rec, err := invRepo.GetForUpdate(inventoryID, organizationID)
		if err != nil {
			return err
		}
		if rec == nil {
			return domain.ErrNotFound
		}
		if rec.Quantity < quantity {
			return domain.ErrInsufficientStock
		}
		newQuantity := rec.Quantity - quantity
		if err := invRepo.UpdateQuantity(inventoryID, organizationID, newQuantity); err != nil {
			return err
		}
		var meta *entity.MovementMetadata
		if correlationID != "" || details != "" {
			meta = &entity.MovementMetadata{CorrelationID: correlationID, Details: details}
		}
		mov := &entity.Movement{
			InventoryID:    inventoryID,
			OrganizationID: organizationID,
			Kind:           entity.MovementKindConsumption,
			QuantityBefore: rec.Quantity,
			QuantityAfter:  newQuantity,
			QuantityDelta:  -quantity,
			CreatedAt:      time.Now(),
			CreatedBy:      actorID,
			OriginIP:       originIP,
			Metadata:       meta,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		result = mov
		return nil
	})
	if err != nil {
		if err == domain.ErrInsufficientStock {
			metrics.InsufficientStockRejections.Inc()
		}
		return nil, err
	}
	metrics.MovementsRecorded.WithLabelValues(entity.MovementKindConsumption).Inc()
	return result, nil
}
