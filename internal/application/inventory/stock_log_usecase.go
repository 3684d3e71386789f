package inventory

import (
	"time"

	"github.com/hostaly/hostaly-api/internal/application/dto"
	"github.com/hostaly/hostaly-api/internal/domain"
	"github.com/hostaly/hostaly-api/internal/domain/repository"
)

// StockLogUseCase lado de consulta del ledger secundario de entradas y
// salidas que escribe el flujo de consumo por lotes.
type StockLogUseCase struct {
	stockRepo   repository.StockMovementRepository
	articleRepo repository.ArticleRepository
}

// NewStockLogUseCase construye el caso de uso.
func NewStockLogUseCase(stockRepo repository.StockMovementRepository, articleRepo repository.ArticleRepository) *StockLogUseCase {
	return &StockLogUseCase{stockRepo: stockRepo, articleRepo: articleRepo}
}

// ListByArticle lista los asientos de entrada/salida de un artículo en un
// rango de fechas opcional. ErrNotFound si el artículo no pertenece a la
// organización.
func (uc *StockLogUseCase) ListByArticle(articleID, organizationID string, from, to *time.Time, page dto.PageRequest) ([]dto.StockMovementResponse, error) {
	article, err := uc.articleRepo.GetByID(articleID)
	if err != nil {
		return nil, err
	}
	if article == nil || article.OrganizationID != organizationID {
		return nil, domain.ErrNotFound
	}
	page.DefaultPage()
	movements, err := uc.stockRepo.ListByArticle(articleID, organizationID, from, to, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockMovementResponse, 0, len(movements))
	for _, m := range movements {
		items = append(items, dto.StockMovementResponse{
			ID:        m.ID,
			ArticleID: m.ArticleID,
			Quantity:  m.Quantity,
			Direction: m.Direction,
			CreatedAt: m.CreatedAt,
			CreatedBy: m.CreatedBy,
		})
	}
	return items, nil
}
