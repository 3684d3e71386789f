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

var (
	_ repository.UserRepository         = (*UserRepo)(nil)
	_ repository.OrganizationRepository = (*OrganizationRepo)(nil)
)

// UserRepo persistencia de usuarios sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, organization_id, email, password_hash, name, role, status, created_at, updated_at`

// Create persiste un usuario nuevo.
func (r *UserRepo) Create(u *entity.User) error {
	query := `
		INSERT INTO users (id, organization_id, email, password_hash, name, role, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.OrganizationID, u.Email, u.PasswordHash, u.Name, u.Role, u.Status, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// FindByEmail busca por email. El email es único global (índice en el
// esquema), así que hay a lo sumo una fila.
func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.scanUser(r.q.QueryRow(context.Background(), query, email))
}

func (r *UserRepo) scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.OrganizationID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &u.Status, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// OrganizationRepo persistencia de organizaciones (tenants).
type OrganizationRepo struct {
	q Querier
}

// NewOrganizationRepository construye el adaptador.
func NewOrganizationRepository(q Querier) *OrganizationRepo {
	return &OrganizationRepo{q: q}
}

// Create persiste una organización nueva.
func (r *OrganizationRepo) Create(org *entity.Organization) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO organizations (id, name, created_at) VALUES ($1, $2, $3)`,
		org.ID, org.Name, org.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create organization: %w", err)
	}
	return nil
}

// GetByID obtiene una organización por ID.
func (r *OrganizationRepo) GetByID(id string) (*entity.Organization, error) {
	var org entity.Organization
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, created_at FROM organizations WHERE id = $1`, id,
	).Scan(&org.ID, &org.Name, &org.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get organization: %w", err)
	}
	return &org, nil
}
