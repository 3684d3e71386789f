package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/hostaly/hostaly-api/internal/domain"
	"github.com/hostaly/hostaly-api/internal/domain/entity"
	"github.com/hostaly/hostaly-api/internal/domain/repository"
	"github.com/jackc/pgx/v5"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL
// (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

const inventoryColumns = `id, article_id, organization_id, location_type, location_id, quantity, registered_at, updated_at`

// List lista existencias de la organización, filtrables por ubicación.
func (r *InventoryRepo) List(organizationID string, filter repository.InventoryFilter) ([]*entity.InventoryRecord, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory WHERE organization_id = $1`
	args := []any{organizationID}
	pos := 2
	if filter.LocationType != nil {
		query += fmt.Sprintf(" AND location_type = $%d", pos)
		args = append(args, *filter.LocationType)
		pos++
	}
	if filter.LocationID != nil {
		query += fmt.Sprintf(" AND location_id = $%d", pos)
		args = append(args, *filter.LocationID)
		pos++
	}
	query += " ORDER BY registered_at DESC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()

	var list []*entity.InventoryRecord
	for rows.Next() {
		rec, err := scanInventory(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}

// GetByID obtiene una existencia por ID dentro de la organización.
func (r *InventoryRepo) GetByID(id, organizationID string) (*entity.InventoryRecord, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory WHERE id = $1 AND organization_id = $2`
	rec, err := scanInventory(r.q.QueryRow(context.Background(), query, id, organizationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return rec, nil
}

// GetByLocation busca el registro de un artículo en una ubicación exacta.
// IS NOT DISTINCT FROM trata el NULL de GENERAL como valor comparable.
func (r *InventoryRepo) GetByLocation(articleID, organizationID, locationType string, locationID *string) (*entity.InventoryRecord, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory
		WHERE article_id = $1 AND organization_id = $2 AND location_type = $3
		AND location_id IS NOT DISTINCT FROM $4`
	rec, err := scanInventory(r.q.QueryRow(context.Background(), query, articleID, organizationID, locationType, locationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory by location: %w", err)
	}
	return rec, nil
}

// Create inserta una existencia nueva. Mapea el índice único de
// (artículo, ubicación) a domain.ErrConflict.
func (r *InventoryRepo) Create(rec *entity.InventoryRecord) error {
	query := `
		INSERT INTO inventory (id, article_id, organization_id, location_type, location_id, quantity, registered_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		rec.ID, rec.ArticleID, rec.OrganizationID, rec.LocationType, rec.LocationID,
		rec.Quantity, rec.RegisteredAt, rec.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("create inventory: %w", err)
	}
	return nil
}

// UpdateQuantity sobreescribe la cantidad y refresca updated_at.
func (r *InventoryRepo) UpdateQuantity(id, organizationID string, quantity int64) error {
	query := `UPDATE inventory SET quantity = $3, updated_at = now() WHERE id = $1 AND organization_id = $2`
	tag, err := r.q.Exec(context.Background(), query, id, organizationID, quantity)
	if err != nil {
		return fmt.Errorf("update inventory quantity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete borra físicamente la existencia.
func (r *InventoryRepo) Delete(id, organizationID string) (bool, error) {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM inventory WHERE id = $1 AND organization_id = $2`, id, organizationID)
	if err != nil {
		return false, fmt.Errorf("delete inventory: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// SyncGeneral crea con cantidad 0 el registro GENERAL de cada artículo de la
// organización que no lo tenga. El anti-join lo hace idempotente.
func (r *InventoryRepo) SyncGeneral(organizationID string) (int, error) {
	query := `
		INSERT INTO inventory (id, article_id, organization_id, location_type, location_id, quantity, registered_at, updated_at)
		SELECT gen_random_uuid(), a.id, a.organization_id, 'GENERAL', NULL, 0, now(), now()
		FROM articles a
		WHERE a.organization_id = $1
		  AND NOT EXISTS (
			SELECT 1 FROM inventory i
			WHERE i.article_id = a.id
			  AND i.organization_id = a.organization_id
			  AND i.location_type = 'GENERAL'
		  )`
	tag, err := r.q.Exec(context.Background(), query, organizationID)
	if err != nil {
		return 0, fmt.Errorf("sync general stock: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// GetForUpdate obtiene la existencia y bloquea la fila (SELECT FOR UPDATE).
func (r *InventoryRepo) GetForUpdate(id, organizationID string) (*entity.InventoryRecord, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory
		WHERE id = $1 AND organization_id = $2 FOR UPDATE`
	rec, err := scanInventory(r.q.QueryRow(context.Background(), query, id, organizationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory for update: %w", err)
	}
	return rec, nil
}

func scanInventory(row pgx.Row) (*entity.InventoryRecord, error) {
	var rec entity.InventoryRecord
	err := row.Scan(
		&rec.ID, &rec.ArticleID, &rec.OrganizationID, &rec.LocationType,
		&rec.LocationID, &rec.Quantity, &rec.RegisteredAt, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
