package repository

import "github.com/hostaly/hostaly-api/internal/domain/entity"

// SecurityLogRepository puerto del log de auditoría/seguridad. Append-only.
type SecurityLogRepository interface {
	Append(entry *entity.SecurityLogEntry) error
	List(organizationID string, module *string, limit, offset int) ([]*entity.SecurityLogEntry, error)
}
