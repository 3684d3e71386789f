package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/hostaly/hostaly-api/internal/domain/entity"
	"github.com/hostaly/hostaly-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo ledger secundario de entradas/salidas sobre PostgreSQL
// (usable con pool o tx). Append-only.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create asienta un movimiento de entrada/salida.
func (r *StockMovementRepo) Create(m *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (id, organization_id, article_id, quantity, direction, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.OrganizationID, m.ArticleID, m.Quantity, m.Direction, m.CreatedAt, m.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

// ListByArticle lista entradas/salidas de un artículo en un rango de fechas.
func (r *StockMovementRepo) ListByArticle(articleID, organizationID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, organization_id, article_id, quantity, direction, created_at, created_by
		FROM stock_movements WHERE article_id = $1 AND organization_id = $2`
	args := []any{articleID, organizationID}
	pos := 3
	if from != nil {
		query += fmt.Sprintf(" AND created_at >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND created_at <= $%d", pos)
		args = append(args, *to)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.OrganizationID, &m.ArticleID, &m.Quantity, &m.Direction, &m.CreatedAt, &m.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
