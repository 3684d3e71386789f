package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostaly/hostaly-api/internal/application/inventory"
	"github.com/hostaly/hostaly-api/internal/domain"
	"github.com/hostaly/hostaly-api/internal/domain/entity"
)

const (
	orgA = "11111111-1111-1111-1111-111111111111"
	orgB = "22222222-2222-2222-2222-222222222222"
)

func newPosterFixture() (*inventory.PosterUseCase, *fakeInventoryRepo, *fakeMovementRepo) {
	invRepo := newFakeInventoryRepo()
	movRepo := newFakeMovementRepo()
	runner := &fakeTxRunner{inv: invRepo, mov: movRepo, stock: &fakeStockMovementRepo{}}
	return inventory.NewPosterUseCase(runner), invRepo, movRepo
}

func seedRecord(invRepo *fakeInventoryRepo, id, org string, quantity int64) {
	invRepo.put(&entity.InventoryRecord{
		ID:             id,
		ArticleID:      "art-1",
		OrganizationID: org,
		LocationType:   entity.LocationGeneral,
		Quantity:       quantity,
		RegisteredAt:   time.Now(),
		UpdatedAt:      time.Now(),
	})
}

func TestPostConsumption_DescuentaYAsienta(t *testing.T) {
	uc, invRepo, movRepo := newPosterFixture()
	seedRecord(invRepo, "inv-1", orgA, 10)

	mov, err := uc.PostConsumption(context.Background(), "inv-1", 4, "corr-1", "minibar hab 204", orgA, "user-1", nil)
	require.NoError(t, err)

	assert.Equal(t, entity.MovementKindConsumption, mov.Kind)
	assert.Equal(t, int64(10), mov.QuantityBefore)
	assert.Equal(t, int64(6), mov.QuantityAfter)
	assert.Equal(t, int64(-4), mov.QuantityDelta)
	assert.Equal(t, "user-1", mov.CreatedBy)
	require.NotNil(t, mov.Metadata)
	assert.Equal(t, "corr-1", mov.Metadata.CorrelationID)
	assert.Equal(t, "minibar hab 204", mov.Metadata.Details)

	rec, _ := invRepo.GetByID("inv-1", orgA)
	assert.Equal(t, int64(6), rec.Quantity)
	assert.Len(t, movRepo.movements, 1)
}

func TestPostConsumption_StockInsuficienteNoMuta(t *testing.T) {
	uc, invRepo, movRepo := newPosterFixture()
	seedRecord(invRepo, "inv-1", orgA, 10)

	_, err := uc.PostConsumption(context.Background(), "inv-1", 20, "", "", orgA, "user-1", nil)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Rollback completo: ni cantidad tocada ni asiento escrito.
	rec, _ := invRepo.GetByID("inv-1", orgA)
	assert.Equal(t, int64(10), rec.Quantity)
	assert.Empty(t, movRepo.movements)
}

func TestPostConsumption_CantidadExactaBajaACero(t *testing.T) {
	uc, invRepo, _ := newPosterFixture()
	seedRecord(invRepo, "inv-1", orgA, 5)

	mov, err := uc.PostConsumption(context.Background(), "inv-1", 5, "", "", orgA, "user-1", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), mov.QuantityAfter)
	assert.Nil(t, mov.Metadata)
}

func TestPostConsumption_CantidadInvalida(t *testing.T) {
	uc, _, _ := newPosterFixture()

	for _, qty := range []int64{0, -3} {
		_, err := uc.PostConsumption(context.Background(), "inv-1", qty, "", "", orgA, "user-1", nil)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestPostConsumption_OtraOrganizacionEsNotFound(t *testing.T) {
	uc, invRepo, movRepo := newPosterFixture()
	seedRecord(invRepo, "inv-1", orgA, 10)

	// El registro existe pero pertenece a otra organización: mismo error que
	// si no existiera, sin filtrar su existencia.
	_, err := uc.PostConsumption(context.Background(), "inv-1", 1, "", "", orgB, "user-9", nil)
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, movRepo.movements)
}

func TestPostAdjustment_FijaCantidadYCalculaDelta(t *testing.T) {
	uc, invRepo, _ := newPosterFixture()
	seedRecord(invRepo, "inv-1", orgA, 6)

	mov, err := uc.PostAdjustment(context.Background(), "inv-1", 50, "reposición semanal", orgA, "admin-1", nil)
	require.NoError(t, err)

	assert.Equal(t, entity.MovementKindAdjustment, mov.Kind)
	assert.Equal(t, int64(6), mov.QuantityBefore)
	assert.Equal(t, int64(50), mov.QuantityAfter)
	assert.Equal(t, int64(44), mov.QuantityDelta)
	assert.Equal(t, "reposición semanal", mov.Reason)

	rec, _ := invRepo.GetByID("inv-1", orgA)
	assert.Equal(t, int64(50), rec.Quantity)
}

func TestPostAdjustment_HaciaAbajoYACero(t *testing.T) {
	uc, invRepo, _ := newPosterFixture()
	seedRecord(invRepo, "inv-1", orgA, 8)

	mov, err := uc.PostAdjustment(context.Background(), "inv-1", 0, "merma", orgA, "admin-1", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(-8), mov.QuantityDelta)

	rec, _ := invRepo.GetByID("inv-1", orgA)
	assert.Equal(t, int64(0), rec.Quantity)
}

func TestPostAdjustment_NegativoRechazado(t *testing.T) {
	uc, invRepo, movRepo := newPosterFixture()
	seedRecord(invRepo, "inv-1", orgA, 8)

	_, err := uc.PostAdjustment(context.Background(), "inv-1", -1, "x", orgA, "admin-1", nil)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, movRepo.movements)
}

func TestPostAdjustment_RegistroInexistente(t *testing.T) {
	uc, _, _ := newPosterFixture()

	_, err := uc.PostAdjustment(context.Background(), "no-existe", 10, "x", orgA, "admin-1", nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPoster_AsientosConsecutivosEncadenan(t *testing.T) {
	uc, invRepo, movRepo := newPosterFixture()
	seedRecord(invRepo, "inv-1", orgA, 30)

	_, err := uc.PostConsumption(context.Background(), "inv-1", 10, "", "", orgA, "user-1", nil)
	require.NoError(t, err)
	_, err = uc.PostConsumption(context.Background(), "inv-1", 5, "", "", orgA, "user-1", nil)
	require.NoError(t, err)
	_, err = uc.PostAdjustment(context.Background(), "inv-1", 40, "reposición", orgA, "admin-1", nil)
	require.NoError(t, err)

	require.Len(t, movRepo.movements, 3)
	// Cada asiento parte de donde terminó el anterior, y el invariante
	// after = before + delta se cumple en todos.
	prev := int64(30)
	for _, m := range movRepo.movements {
		assert.Equal(t, prev, m.QuantityBefore)
		assert.Equal(t, m.QuantityBefore+m.QuantityDelta, m.QuantityAfter)
		prev = m.QuantityAfter
	}
	assert.Equal(t, int64(40), prev)
}
