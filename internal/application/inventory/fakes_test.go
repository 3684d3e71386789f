package inventory_test

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/hostaly/hostaly-api/internal/application/inventory"
	"github.com/hostaly/hostaly-api/internal/domain"
	"github.com/hostaly/hostaly-api/internal/domain/entity"
	"github.com/hostaly/hostaly-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia. El fakeTxRunner toma un
// snapshot antes de ejecutar el callback y lo restaura si falla, imitando el
// Commit/Rollback del runner real.
// ──────────────────────────────────────────────────────────────────────────────

type fakeInventoryRepo struct {
	records map[string]*entity.InventoryRecord
	// knownArticles alimenta la reconciliación de SyncGeneral.
	knownArticles []string
}

func newFakeInventoryRepo() *fakeInventoryRepo {
	return &fakeInventoryRepo{records: map[string]*entity.InventoryRecord{}}
}

func (f *fakeInventoryRepo) put(rec *entity.InventoryRecord) {
	cp := *rec
	f.records[rec.ID] = &cp
}

func (f *fakeInventoryRepo) snapshot() map[string]*entity.InventoryRecord {
	snap := make(map[string]*entity.InventoryRecord, len(f.records))
	for k, v := range f.records {
		cp := *v
		snap[k] = &cp
	}
	return snap
}

func (f *fakeInventoryRepo) List(organizationID string, filter repository.InventoryFilter) ([]*entity.InventoryRecord, error) {
	var list []*entity.InventoryRecord
	for _, rec := range f.records {
		if rec.OrganizationID != organizationID {
			continue
		}
		if filter.LocationType != nil && rec.LocationType != *filter.LocationType {
			continue
		}
		if filter.LocationID != nil && (rec.LocationID == nil || *rec.LocationID != *filter.LocationID) {
			continue
		}
		cp := *rec
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (f *fakeInventoryRepo) GetByID(id, organizationID string) (*entity.InventoryRecord, error) {
	rec, ok := f.records[id]
	if !ok || rec.OrganizationID != organizationID {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (f *fakeInventoryRepo) GetByLocation(articleID, organizationID, locationType string, locationID *string) (*entity.InventoryRecord, error) {
	for _, rec := range f.records {
		if rec.ArticleID != articleID || rec.OrganizationID != organizationID || rec.LocationType != locationType {
			continue
		}
		if (rec.LocationID == nil) != (locationID == nil) {
			continue
		}
		if locationID != nil && *rec.LocationID != *locationID {
			continue
		}
		cp := *rec
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeInventoryRepo) Create(rec *entity.InventoryRecord) error {
	existing, _ := f.GetByLocation(rec.ArticleID, rec.OrganizationID, rec.LocationType, rec.LocationID)
	if existing != nil {
		return domain.ErrConflict
	}
	f.put(rec)
	return nil
}

func (f *fakeInventoryRepo) UpdateQuantity(id, organizationID string, quantity int64) error {
	rec, ok := f.records[id]
	if !ok || rec.OrganizationID != organizationID {
		return domain.ErrNotFound
	}
	rec.Quantity = quantity
	rec.UpdatedAt = time.Now()
	return nil
}

func (f *fakeInventoryRepo) Delete(id, organizationID string) (bool, error) {
	rec, ok := f.records[id]
	if !ok || rec.OrganizationID != organizationID {
		return false, nil
	}
	delete(f.records, id)
	return true, nil
}

func (f *fakeInventoryRepo) SyncGeneral(organizationID string) (int, error) {
	// La reconciliación real vive en SQL; el fake la simula con la lista de
	// artículos registrada por el test.
	created := 0
	for _, articleID := range f.knownArticles {
		existing, _ := f.GetByLocation(articleID, organizationID, entity.LocationGeneral, nil)
		if existing != nil {
			continue
		}
		f.put(&entity.InventoryRecord{
			ID:             uuid.New().String(),
			ArticleID:      articleID,
			OrganizationID: organizationID,
			LocationType:   entity.LocationGeneral,
			Quantity:       0,
			RegisteredAt:   time.Now(),
			UpdatedAt:      time.Now(),
		})
		created++
	}
	return created, nil
}

func (f *fakeInventoryRepo) GetForUpdate(id, organizationID string) (*entity.InventoryRecord, error) {
	return f.GetByID(id, organizationID)
}

var _ repository.InventoryRepository = (*fakeInventoryRepo)(nil)

type fakeMovementRepo struct {
	movements []*entity.Movement
	nextID    int64
}

func newFakeMovementRepo() *fakeMovementRepo {
	return &fakeMovementRepo{nextID: 1}
}

func (f *fakeMovementRepo) Create(m *entity.Movement) error {
	cp := *m
	cp.ID = f.nextID
	f.nextID++
	f.movements = append(f.movements, &cp)
	m.ID = cp.ID
	return nil
}

func (f *fakeMovementRepo) GetByID(id int64, organizationID string) (*entity.Movement, error) {
	for _, m := range f.movements {
		if m.ID == id && m.OrganizationID == organizationID {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeMovementRepo) List(inventoryID, organizationID string, filter repository.MovementFilter) ([]*entity.Movement, int64, error) {
	var matched []*entity.Movement
	for _, m := range f.movements {
		if m.InventoryID != inventoryID || m.OrganizationID != organizationID {
			continue
		}
		if filter.Kind != nil && m.Kind != *filter.Kind {
			continue
		}
		if filter.ActorID != nil && m.CreatedBy != *filter.ActorID {
			continue
		}
		cp := *m
		matched = append(matched, &cp)
	}
	sort.Slice(matched, func(i, j int) bool {
		if filter.Descending {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})
	total := int64(len(matched))
	start := (filter.Page - 1) * filter.PageSize
	if start >= len(matched) {
		return nil, total, nil
	}
	end := start + filter.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (f *fakeMovementRepo) Statistics(organizationID string, from, to *time.Time) (*repository.MovementStats, error) {
	stats := &repository.MovementStats{CountByKind: map[string]int64{}}
	for _, m := range f.movements {
		if m.OrganizationID != organizationID {
			continue
		}
		stats.TotalCount++
		stats.CountByKind[m.Kind]++
	}
	return stats, nil
}

var _ repository.MovementRepository = (*fakeMovementRepo)(nil)

type fakeStockMovementRepo struct {
	movements []*entity.StockMovement
}

func (f *fakeStockMovementRepo) Create(m *entity.StockMovement) error {
	cp := *m
	f.movements = append(f.movements, &cp)
	return nil
}

func (f *fakeStockMovementRepo) ListByArticle(articleID, organizationID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	var list []*entity.StockMovement
	for _, m := range f.movements {
		if m.ArticleID == articleID && m.OrganizationID == organizationID {
			cp := *m
			list = append(list, &cp)
		}
	}
	return list, nil
}

var _ repository.StockMovementRepository = (*fakeStockMovementRepo)(nil)

type fakeArticleRepo struct {
	articles map[string]*entity.Article
}

func newFakeArticleRepo() *fakeArticleRepo {
	return &fakeArticleRepo{articles: map[string]*entity.Article{}}
}

func (f *fakeArticleRepo) put(a *entity.Article) {
	f.articles[a.ID] = a
}

func (f *fakeArticleRepo) GetByID(id string) (*entity.Article, error) {
	return f.articles[id], nil
}

func (f *fakeArticleRepo) ListByOrganization(organizationID string, limit, offset int) ([]*entity.Article, error) {
	var list []*entity.Article
	for _, a := range f.articles {
		if a.OrganizationID == organizationID {
			list = append(list, a)
		}
	}
	return list, nil
}

var _ repository.ArticleRepository = (*fakeArticleRepo)(nil)

type fakeRoomRepo struct {
	rooms map[string]*entity.Room
}

func newFakeRoomRepo() *fakeRoomRepo {
	return &fakeRoomRepo{rooms: map[string]*entity.Room{}}
}

func (f *fakeRoomRepo) GetByID(id string) (*entity.Room, error) {
	return f.rooms[id], nil
}

func (f *fakeRoomRepo) ListByOrganization(organizationID string, limit, offset int) ([]*entity.Room, error) {
	var list []*entity.Room
	for _, r := range f.rooms {
		if r.OrganizationID == organizationID {
			list = append(list, r)
		}
	}
	return list, nil
}

var _ repository.RoomRepository = (*fakeRoomRepo)(nil)

type fakeWarehouseRepo struct {
	warehouses map[string]*entity.Warehouse
}

func newFakeWarehouseRepo() *fakeWarehouseRepo {
	return &fakeWarehouseRepo{warehouses: map[string]*entity.Warehouse{}}
}

func (f *fakeWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	return f.warehouses[id], nil
}

func (f *fakeWarehouseRepo) ListByOrganization(organizationID string, limit, offset int) ([]*entity.Warehouse, error) {
	var list []*entity.Warehouse
	for _, w := range f.warehouses {
		if w.OrganizationID == organizationID {
			list = append(list, w)
		}
	}
	return list, nil
}

var _ repository.WarehouseRepository = (*fakeWarehouseRepo)(nil)

// fakeTxRunner ejecuta el callback sobre los fakes compartidos con semántica
// de rollback: si fn devuelve error, el estado previo se restaura completo.
type fakeTxRunner struct {
	inv   *fakeInventoryRepo
	mov   *fakeMovementRepo
	stock *fakeStockMovementRepo
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	invRepo repository.InventoryRepository,
	movRepo repository.MovementRepository,
) error) error {
	invSnap := r.inv.snapshot()
	movSnap := make([]*entity.Movement, len(r.mov.movements))
	copy(movSnap, r.mov.movements)
	nextID := r.mov.nextID

	if err := fn(r.inv, r.mov); err != nil {
		r.inv.records = invSnap
		r.mov.movements = movSnap
		r.mov.nextID = nextID
		return err
	}
	return nil
}

func (r *fakeTxRunner) RunStock(ctx context.Context, fn func(
	invRepo repository.InventoryRepository,
	stockRepo repository.StockMovementRepository,
) error) error {
	invSnap := r.inv.snapshot()
	stockSnap := make([]*entity.StockMovement, len(r.stock.movements))
	copy(stockSnap, r.stock.movements)

	if err := fn(r.inv, r.stock); err != nil {
		r.inv.records = invSnap
		r.stock.movements = stockSnap
		return err
	}
	return nil
}

var _ inventory.TxRunner = (*fakeTxRunner)(nil)
