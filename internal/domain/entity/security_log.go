package entity

import "time"

// Severidades del log de seguridad.
const (
	SeverityInfo    = "info"
	SeverityWarning = "warning"
	SeverityAlert   = "alert"
)

// SecurityLogEntry entrada del log de auditoría/seguridad: texto legible
// etiquetado por módulo y severidad. Lo escriben las capas superiores
// alrededor de acciones administrativas; el ledger nunca escribe aquí.
type SecurityLogEntry struct {
	ID             int64
	OrganizationID string
	Module         string
	Severity       string
	Message        string
	ActorID        string
	OriginIP       *string
	CreatedAt      time.Time
}
