package repository

import (
	"time"

	"github.com/hostaly/hostaly-api/internal/domain/entity"
)

// StockMovementRepository define el puerto del ledger secundario de entradas
// y salidas (flujo grueso de consumos). Append-only igual que Movement.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	ListByArticle(articleID, organizationID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error)
}
