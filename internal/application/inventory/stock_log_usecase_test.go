package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostaly/hostaly-api/internal/application/dto"
	"github.com/hostaly/hostaly-api/internal/application/inventory"
	"github.com/hostaly/hostaly-api/internal/domain"
	"github.com/hostaly/hostaly-api/internal/domain/entity"
)

func TestStockLog_ListaLoAsentadoPorElLote(t *testing.T) {
	batchUC, invRepo, stockRepo, articleRepo := newBatchFixture(true)
	logUC := inventory.NewStockLogUseCase(stockRepo, articleRepo)
	seedArticle(articleRepo, "art-1", orgA, "Agua mineral")

	invRepo.put(&entity.InventoryRecord{ID: "a", ArticleID: "art-1", OrganizationID: orgA, LocationType: entity.LocationGeneral, Quantity: 10})

	_, err := batchUC.PostBatch(context.Background(), orgA, "user-1", []dto.BatchConsumptionItem{
		{ArticleID: "art-1", Quantity: 3},
		{ArticleID: "art-1", Quantity: 2},
	})
	require.NoError(t, err)

	// El ledger secundario es consultable: devuelve exactamente lo asentado.
	items, err := logUC.ListByArticle("art-1", orgA, nil, nil, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, items, 2)
	var total int64
	for _, item := range items {
		assert.Equal(t, "art-1", item.ArticleID)
		assert.Equal(t, entity.StockDirectionOut, item.Direction)
		assert.Equal(t, "user-1", item.CreatedBy)
		total += item.Quantity
	}
	assert.Equal(t, int64(5), total)
}

func TestStockLog_ArticuloAjenoEsNotFound(t *testing.T) {
	_, _, stockRepo, articleRepo := newBatchFixture(true)
	logUC := inventory.NewStockLogUseCase(stockRepo, articleRepo)
	seedArticle(articleRepo, "art-1", orgB, "Vino")

	// Artículo de otra organización: mismo error que inexistente.
	_, err := logUC.ListByArticle("art-1", orgA, nil, nil, dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = logUC.ListByArticle("no-existe", orgA, nil, nil, dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStockLog_SinAsientosDevuelveVacio(t *testing.T) {
	_, _, stockRepo, articleRepo := newBatchFixture(true)
	logUC := inventory.NewStockLogUseCase(stockRepo, articleRepo)
	seedArticle(articleRepo, "art-1", orgA, "Agua mineral")

	items, err := logUC.ListByArticle("art-1", orgA, nil, nil, dto.PageRequest{})
	require.NoError(t, err)
	assert.Empty(t, items)
}
