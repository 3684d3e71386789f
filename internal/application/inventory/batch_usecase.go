package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hostaly/hostaly-api/internal/application/dto"
	"github.com/hostaly/hostaly-api/internal/domain"
	"github.com/hostaly/hostaly-api/internal/domain/entity"
	"github.com/hostaly/hostaly-api/internal/domain/repository"
	"github.com/hostaly/hostaly-api/pkg/metrics"
)

// BatchUseCase flujo grueso de consumos: varias líneas de artículo en una
// sola transacción, contra la habitación indicada o el stock general.
//
// Su política ante stock insuficiente es deliberadamente distinta de la del
// PosterUseCase y configurable por sitio de llamada: con clampToZero la línea
// se recorta al piso de 0 en vez de rechazarse. Cada línea asienta un
// StockMovement (ledger secundario) etiquetado por el signo del cambio.
type BatchUseCase struct {
	txRunner    TxRunner
	articleRepo repository.ArticleRepository
	clampToZero bool
}

// NewBatchUseCase construye el caso de uso. clampToZero elige la política
// ante stock insuficiente: recortar a 0 (true) o rechazar el lote (false).
func NewBatchUseCase(txRunner TxRunner, articleRepo repository.ArticleRepository, clampToZero bool) *BatchUseCase {
	return &BatchUseCase{txRunner: txRunner, articleRepo: articleRepo, clampToZero: clampToZero}
}

// PostBatch aplica todas las líneas o ninguna. Para cada línea localiza (o
// crea con cantidad 0) la existencia del artículo en la ubicación objetivo,
// descuenta según la política y asienta el StockMovement correspondiente.
func (uc *BatchUseCase) PostBatch(
	ctx context.Context,
	organizationID, actorID string,
	items []dto.BatchConsumptionItem,
) (*dto.BatchConsumptionResponse, error) {
	if len(items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range items {
		if item.ArticleID == "" || item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		article, err := uc.articleRepo.GetByID(item.ArticleID)
		if err != nil {
			return nil, err
		}
		if article == nil || article.OrganizationID != organizationID {
			return nil, domain.ErrNotFound
		}
	}

	clamped := 0
	err := uc.txRunner.RunStock(ctx, func(
		invRepo repository.InventoryRepository,
		stockRepo repository.StockMovementRepository,
	) error {
		now := time.Now()
		for _, item := range items {
			locationType := entity.LocationGeneral
			var locationID *string
			if item.RoomID != nil && *item.RoomID != "" {
				locationType = entity.LocationRoom
				locationID = item.RoomID
			}

			rec, err := invRepo.GetByLocation(item.ArticleID, organizationID, locationType, locationID)
			if err != nil {
				return err
			}
			if rec == nil {
				rec = &entity.InventoryRecord{
					ID:             uuid.New().String(),
					ArticleID:      item.ArticleID,
					OrganizationID: organizationID,
					LocationType:   locationType,
					LocationID:     locationID,
					Quantity:       0,
					RegisteredAt:   now,
					UpdatedAt:      now,
				}
				if err := invRepo.Create(rec); err != nil {
					return err
				}
			}

			consumed := item.Quantity
			if rec.Quantity < consumed {
				if !uc.clampToZero {
					return domain.ErrInsufficientStock
				}
				consumed = rec.Quantity
				clamped++
			}
			if consumed > 0 {
				if err := invRepo.UpdateQuantity(rec.ID, organizationID, rec.Quantity-consumed); err != nil {
					return err
				}
				sm := &entity.StockMovement{
					ID:             uuid.New().String(),
					OrganizationID: organizationID,
					ArticleID:      item.ArticleID,
					Quantity:       consumed,
					Direction:      entity.StockDirectionOut,
					CreatedAt:      now,
					CreatedBy:      actorID,
				}
				if err := stockRepo.Create(sm); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		if err == domain.ErrInsufficientStock {
			metrics.InsufficientStockRejections.Inc()
		}
		return nil, err
	}
	metrics.BatchLinesApplied.Add(float64(len(items)))
	return &dto.BatchConsumptionResponse{Applied: len(items), Clamped: clamped}, nil
}
