package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/hostaly/hostaly-api/internal/domain/entity"
	"github.com/hostaly/hostaly-api/internal/domain/repository"
	"github.com/jackc/pgx/v5"
)

var (
	_ repository.ArticleRepository   = (*ArticleRepo)(nil)
	_ repository.RoomRepository      = (*RoomRepo)(nil)
	_ repository.WarehouseRepository = (*WarehouseRepo)(nil)
)

// ArticleRepo lectura de artículos (dato de referencia del ledger).
type ArticleRepo struct {
	q Querier
}

// NewArticleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewArticleRepository(q Querier) *ArticleRepo {
	return &ArticleRepo{q: q}
}

// GetByID obtiene un artículo por ID.
func (r *ArticleRepo) GetByID(id string) (*entity.Article, error) {
	query := `SELECT id, organization_id, name, price, image_url, created_at, updated_at FROM articles WHERE id = $1`
	var a entity.Article
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.OrganizationID, &a.Name, &a.Price, &a.ImageURL, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get article: %w", err)
	}
	return &a, nil
}

// ListByOrganization lista artículos de la organización con paginación.
func (r *ArticleRepo) ListByOrganization(organizationID string, limit, offset int) ([]*entity.Article, error) {
	query := `
		SELECT id, organization_id, name, price, image_url, created_at, updated_at
		FROM articles WHERE organization_id = $1
		ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, organizationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()

	var list []*entity.Article
	for rows.Next() {
		var a entity.Article
		if err := rows.Scan(&a.ID, &a.OrganizationID, &a.Name, &a.Price, &a.ImageURL, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// RoomRepo lectura de habitaciones.
type RoomRepo struct {
	q Querier
}

// NewRoomRepository construye el adaptador.
func NewRoomRepository(q Querier) *RoomRepo {
	return &RoomRepo{q: q}
}

// GetByID obtiene una habitación por ID.
func (r *RoomRepo) GetByID(id string) (*entity.Room, error) {
	query := `SELECT id, organization_id, name, number, created_at FROM rooms WHERE id = $1`
	var room entity.Room
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&room.ID, &room.OrganizationID, &room.Name, &room.Number, &room.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get room: %w", err)
	}
	return &room, nil
}

// ListByOrganization lista habitaciones de la organización con paginación.
func (r *RoomRepo) ListByOrganization(organizationID string, limit, offset int) ([]*entity.Room, error) {
	query := `
		SELECT id, organization_id, name, number, created_at
		FROM rooms WHERE organization_id = $1
		ORDER BY number LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, organizationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer rows.Close()

	var list []*entity.Room
	for rows.Next() {
		var room entity.Room
		if err := rows.Scan(&room.ID, &room.OrganizationID, &room.Name, &room.Number, &room.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan room: %w", err)
		}
		list = append(list, &room)
	}
	return list, rows.Err()
}

// WarehouseRepo lectura de bodegas auxiliares.
type WarehouseRepo struct {
	q Querier
}

// NewWarehouseRepository construye el adaptador.
func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{q: q}
}

// GetByID obtiene una bodega por ID.
func (r *WarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	query := `SELECT id, organization_id, name, created_at FROM warehouses WHERE id = $1`
	var w entity.Warehouse
	err := r.q.QueryRow(context.Background(), query, id).Scan(&w.ID, &w.OrganizationID, &w.Name, &w.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse: %w", err)
	}
	return &w, nil
}

// ListByOrganization lista bodegas de la organización con paginación.
func (r *WarehouseRepo) ListByOrganization(organizationID string, limit, offset int) ([]*entity.Warehouse, error) {
	query := `
		SELECT id, organization_id, name, created_at
		FROM warehouses WHERE organization_id = $1
		ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, organizationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	defer rows.Close()

	var list []*entity.Warehouse
	for rows.Next() {
		var w entity.Warehouse
		if err := rows.Scan(&w.ID, &w.OrganizationID, &w.Name, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan warehouse: %w", err)
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}
