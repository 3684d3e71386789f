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

func newBatchFixture(clampToZero bool) (*inventory.BatchUseCase, *fakeInventoryRepo, *fakeStockMovementRepo, *fakeArticleRepo) {
	invRepo := newFakeInventoryRepo()
	stockRepo := &fakeStockMovementRepo{}
	articleRepo := newFakeArticleRepo()
	runner := &fakeTxRunner{inv: invRepo, mov: newFakeMovementRepo(), stock: stockRepo}
	uc := inventory.NewBatchUseCase(runner, articleRepo, clampToZero)
	return uc, invRepo, stockRepo, articleRepo
}

func TestPostBatch_DescuentaVariasLineas(t *testing.T) {
	uc, invRepo, stockRepo, articleRepo := newBatchFixture(true)
	seedArticle(articleRepo, "art-1", orgA, "Agua mineral")
	seedArticle(articleRepo, "art-2", orgA, "Chocolatina")
	roomID := "room-1"

	invRepo.put(&entity.InventoryRecord{ID: "a", ArticleID: "art-1", OrganizationID: orgA, LocationType: entity.LocationRoom, LocationID: &roomID, Quantity: 10})
	invRepo.put(&entity.InventoryRecord{ID: "b", ArticleID: "art-2", OrganizationID: orgA, LocationType: entity.LocationGeneral, Quantity: 5})

	resp, err := uc.PostBatch(context.Background(), orgA, "user-1", []dto.BatchConsumptionItem{
		{ArticleID: "art-1", RoomID: &roomID, Quantity: 3},
		{ArticleID: "art-2", Quantity: 2}, // sin habitación: stock general
	})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Applied)
	assert.Equal(t, 0, resp.Clamped)

	recA, _ := invRepo.GetByID("a", orgA)
	recB, _ := invRepo.GetByID("b", orgA)
	assert.Equal(t, int64(7), recA.Quantity)
	assert.Equal(t, int64(3), recB.Quantity)

	require.Len(t, stockRepo.movements, 2)
	for _, m := range stockRepo.movements {
		assert.Equal(t, entity.StockDirectionOut, m.Direction)
		assert.Equal(t, "user-1", m.CreatedBy)
	}
}

func TestPostBatch_CreaRegistroAusenteConCero(t *testing.T) {
	uc, invRepo, stockRepo, articleRepo := newBatchFixture(true)
	seedArticle(articleRepo, "art-1", orgA, "Agua mineral")
	roomID := "room-1"

	// No hay existencia en la habitación: se crea con 0 y el consumo se
	// recorta entero, sin asiento de salida (no se movió nada).
	resp, err := uc.PostBatch(context.Background(), orgA, "user-1", []dto.BatchConsumptionItem{
		{ArticleID: "art-1", RoomID: &roomID, Quantity: 4},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Applied)
	assert.Equal(t, 1, resp.Clamped)

	rec, err := invRepo.GetByLocation("art-1", orgA, entity.LocationRoom, &roomID)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, int64(0), rec.Quantity)
	assert.Empty(t, stockRepo.movements)
}

func TestPostBatch_ClampRecortaAlPiso(t *testing.T) {
	uc, invRepo, stockRepo, articleRepo := newBatchFixture(true)
	seedArticle(articleRepo, "art-1", orgA, "Agua mineral")

	invRepo.put(&entity.InventoryRecord{ID: "a", ArticleID: "art-1", OrganizationID: orgA, LocationType: entity.LocationGeneral, Quantity: 3})

	resp, err := uc.PostBatch(context.Background(), orgA, "user-1", []dto.BatchConsumptionItem{
		{ArticleID: "art-1", Quantity: 10},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Clamped)

	rec, _ := invRepo.GetByID("a", orgA)
	assert.Equal(t, int64(0), rec.Quantity)

	// El asiento refleja lo realmente movido, no lo pedido.
	require.Len(t, stockRepo.movements, 1)
	assert.Equal(t, int64(3), stockRepo.movements[0].Quantity)
}

func TestPostBatch_SinClampRechazaElLoteEntero(t *testing.T) {
	uc, invRepo, stockRepo, articleRepo := newBatchFixture(false)
	seedArticle(articleRepo, "art-1", orgA, "Agua mineral")
	seedArticle(articleRepo, "art-2", orgA, "Chocolatina")

	invRepo.put(&entity.InventoryRecord{ID: "a", ArticleID: "art-1", OrganizationID: orgA, LocationType: entity.LocationGeneral, Quantity: 10})
	invRepo.put(&entity.InventoryRecord{ID: "b", ArticleID: "art-2", OrganizationID: orgA, LocationType: entity.LocationGeneral, Quantity: 1})

	_, err := uc.PostBatch(context.Background(), orgA, "user-1", []dto.BatchConsumptionItem{
		{ArticleID: "art-1", Quantity: 5}, // esta línea sola sí cabría
		{ArticleID: "art-2", Quantity: 3}, // esta no: revierte todo
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	recA, _ := invRepo.GetByID("a", orgA)
	recB, _ := invRepo.GetByID("b", orgA)
	assert.Equal(t, int64(10), recA.Quantity)
	assert.Equal(t, int64(1), recB.Quantity)
	assert.Empty(t, stockRepo.movements)
}

func TestPostBatch_ValidaLineasAntesDeTocarNada(t *testing.T) {
	uc, invRepo, _, articleRepo := newBatchFixture(true)
	seedArticle(articleRepo, "art-1", orgA, "Agua mineral")
	seedArticle(articleRepo, "art-ajeno", orgB, "Vino")

	invRepo.put(&entity.InventoryRecord{ID: "a", ArticleID: "art-1", OrganizationID: orgA, LocationType: entity.LocationGeneral, Quantity: 10})

	_, err := uc.PostBatch(context.Background(), orgA, "user-1", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.PostBatch(context.Background(), orgA, "user-1", []dto.BatchConsumptionItem{
		{ArticleID: "art-1", Quantity: 0},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.PostBatch(context.Background(), orgA, "user-1", []dto.BatchConsumptionItem{
		{ArticleID: "art-1", Quantity: 2},
		{ArticleID: "art-ajeno", Quantity: 1},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	rec, _ := invRepo.GetByID("a", orgA)
	assert.Equal(t, int64(10), rec.Quantity)
}
