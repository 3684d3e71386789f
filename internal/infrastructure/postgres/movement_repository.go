package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hostaly/hostaly-api/internal/domain/entity"
	"github.com/hostaly/hostaly-api/internal/domain/repository"
	"github.com/jackc/pgx/v5"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del historial de movimientos sobre PostgreSQL
// (usable con pool o tx). Solo INSERT y SELECT: la tabla es append-only.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

const movementColumns = `id, inventory_id, organization_id, kind, quantity_before, quantity_after,
		quantity_delta, reason, document_number, transfer_id, created_at, created_by, origin_ip, metadata`

// Create asienta un movimiento. El id (bigserial) vuelve por RETURNING para
// que el caller conserve el orden de inserción.
func (r *MovementRepo) Create(m *entity.Movement) error {
	query := `
		INSERT INTO movements (inventory_id, organization_id, kind, quantity_before, quantity_after,
			quantity_delta, reason, document_number, transfer_id, created_at, created_by, origin_ip, metadata)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		m.InventoryID, m.OrganizationID, m.Kind, m.QuantityBefore, m.QuantityAfter,
		m.QuantityDelta, m.Reason, m.DocumentNumber, m.TransferID, m.CreatedAt,
		m.CreatedBy, m.OriginIP, m.Metadata,
	).Scan(&m.ID)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID dentro de la organización.
func (r *MovementRepo) GetByID(id int64, organizationID string) (*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE id = $1 AND organization_id = $2`
	m, err := scanMovement(r.q.QueryRow(context.Background(), query, id, organizationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

// List devuelve una página del historial más el total de filas del filtro.
func (r *MovementRepo) List(inventoryID, organizationID string, filter repository.MovementFilter) ([]*entity.Movement, int64, error) {
	where := ` FROM movements WHERE inventory_id = $1 AND organization_id = $2`
	args := []any{inventoryID, organizationID}
	pos := 3
	if filter.Kind != nil {
		where += fmt.Sprintf(" AND kind = $%d", pos)
		args = append(args, *filter.Kind)
		pos++
	}
	if filter.ActorID != nil {
		where += fmt.Sprintf(" AND created_by = $%d", pos)
		args = append(args, *filter.ActorID)
		pos++
	}
	if filter.DateFrom != nil {
		where += fmt.Sprintf(" AND created_at >= $%d", pos)
		args = append(args, *filter.DateFrom)
		pos++
	}
	if filter.DateTo != nil {
		where += fmt.Sprintf(" AND created_at <= $%d", pos)
		args = append(args, *filter.DateTo)
		pos++
	}

	var total int64
	if err := r.q.QueryRow(context.Background(), "SELECT count(*)"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count movements: %w", err)
	}

	direction := "ASC"
	if filter.Descending {
		direction = "DESC"
	}
	// SortBy viene saneado del caso de uso (lista cerrada de columnas).
	query := "SELECT " + movementColumns + where +
		fmt.Sprintf(" ORDER BY %s %s, id %s LIMIT $%d OFFSET $%d", filter.SortBy, direction, direction, pos, pos+1)
	args = append(args, filter.PageSize, (filter.Page-1)*filter.PageSize)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.Movement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, total, rows.Err()
}

// Statistics agregados de solo lectura: total, por clase, por día (últimos
// 30 días) y top 10 actores (últimos 30 días).
func (r *MovementRepo) Statistics(organizationID string, from, to *time.Time) (*repository.MovementStats, error) {
	ctx := context.Background()
	stats := &repository.MovementStats{CountByKind: map[string]int64{}}

	rangeWhere := ` WHERE organization_id = $1`
	args := []any{organizationID}
	pos := 2
	if from != nil {
		rangeWhere += fmt.Sprintf(" AND created_at >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		rangeWhere += fmt.Sprintf(" AND created_at <= $%d", pos)
		args = append(args, *to)
		pos++
	}

	if err := r.q.QueryRow(ctx, "SELECT count(*) FROM movements"+rangeWhere, args...).Scan(&stats.TotalCount); err != nil {
		return nil, fmt.Errorf("movement stats total: %w", err)
	}

	rows, err := r.q.Query(ctx, "SELECT kind, count(*) FROM movements"+rangeWhere+" GROUP BY kind", args...)
	if err != nil {
		return nil, fmt.Errorf("movement stats by kind: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var kind string
		var count int64
		if err := rows.Scan(&kind, &count); err != nil {
			return nil, fmt.Errorf("scan kind count: %w", err)
		}
		stats.CountByKind[kind] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	const byDay = `
		SELECT date_trunc('day', created_at) AS day, count(*)
		FROM movements
		WHERE organization_id = $1 AND created_at >= now() - interval '30 days'
		GROUP BY day ORDER BY day`
	dayRows, err := r.q.Query(ctx, byDay, organizationID)
	if err != nil {
		return nil, fmt.Errorf("movement stats by day: %w", err)
	}
	defer dayRows.Close()
	for dayRows.Next() {
		var dc repository.DayCount
		if err := dayRows.Scan(&dc.Day, &dc.Count); err != nil {
			return nil, fmt.Errorf("scan day count: %w", err)
		}
		stats.CountByDay = append(stats.CountByDay, dc)
	}
	if err := dayRows.Err(); err != nil {
		return nil, err
	}

	const topActors = `
		SELECT created_by, count(*) AS c
		FROM movements
		WHERE organization_id = $1 AND created_at >= now() - interval '30 days'
		GROUP BY created_by ORDER BY c DESC LIMIT 10`
	actorRows, err := r.q.Query(ctx, topActors, organizationID)
	if err != nil {
		return nil, fmt.Errorf("movement stats top actors: %w", err)
	}
	defer actorRows.Close()
	for actorRows.Next() {
		var ac repository.ActorCount
		if err := actorRows.Scan(&ac.ActorID, &ac.Count); err != nil {
			return nil, fmt.Errorf("scan actor count: %w", err)
		}
		stats.TopActors = append(stats.TopActors, ac)
	}
	return stats, actorRows.Err()
}

func scanMovement(row pgx.Row) (*entity.Movement, error) {
	var m entity.Movement
	err := row.Scan(
		&m.ID, &m.InventoryID, &m.OrganizationID, &m.Kind, &m.QuantityBefore, &m.QuantityAfter,
		&m.QuantityDelta, &m.Reason, &m.DocumentNumber, &m.TransferID, &m.CreatedAt,
		&m.CreatedBy, &m.OriginIP, &m.Metadata,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
