package postgres

import (
	"context"
	"fmt"

	"github.com/hostaly/hostaly-api/internal/domain/entity"
	"github.com/hostaly/hostaly-api/internal/domain/repository"
)

var _ repository.SecurityLogRepository = (*SecurityLogRepo)(nil)

// SecurityLogRepo log de auditoría/seguridad sobre PostgreSQL. Append-only.
type SecurityLogRepo struct {
	q Querier
}

// NewSecurityLogRepository construye el adaptador.
func NewSecurityLogRepository(q Querier) *SecurityLogRepo {
	return &SecurityLogRepo{q: q}
}

// Append asienta una entrada del log.
func (r *SecurityLogRepo) Append(e *entity.SecurityLogEntry) error {
	query := `
		INSERT INTO security_log (organization_id, module, severity, message, actor_id, origin_ip, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		e.OrganizationID, e.Module, e.Severity, e.Message, e.ActorID, e.OriginIP, e.CreatedAt,
	).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("append security log: %w", err)
	}
	return nil
}

// List lista entradas de la organización, opcionalmente por módulo.
func (r *SecurityLogRepo) List(organizationID string, module *string, limit, offset int) ([]*entity.SecurityLogEntry, error) {
	query := `
		SELECT id, organization_id, module, severity, message, actor_id, origin_ip, created_at
		FROM security_log WHERE organization_id = $1`
	args := []any{organizationID}
	pos := 2
	if module != nil {
		query += fmt.Sprintf(" AND module = $%d", pos)
		args = append(args, *module)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list security log: %w", err)
	}
	defer rows.Close()

	var list []*entity.SecurityLogEntry
	for rows.Next() {
		var e entity.SecurityLogEntry
		if err := rows.Scan(&e.ID, &e.OrganizationID, &e.Module, &e.Severity, &e.Message, &e.ActorID, &e.OriginIP, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan security log: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
