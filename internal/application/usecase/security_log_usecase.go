package usecase

import (
	"time"

	"github.com/hostaly/hostaly-api/internal/application/dto"
	"github.com/hostaly/hostaly-api/internal/domain/entity"
	"github.com/hostaly/hostaly-api/internal/domain/repository"
)

// SecurityLogUseCase escribe y consulta el log de auditoría/seguridad.
// Lo invocan las capas superiores (handlers HTTP) alrededor de acciones
// administrativas; el ledger de inventario nunca escribe aquí directamente.
type SecurityLogUseCase struct {
	repo repository.SecurityLogRepository
}

// NewSecurityLogUseCase construye el caso de uso.
func NewSecurityLogUseCase(repo repository.SecurityLogRepository) *SecurityLogUseCase {
	return &SecurityLogUseCase{repo: repo}
}

// Log asienta una entrada. Best-effort desde el punto de vista del caller:
// los errores se devuelven pero no deben abortar la operación de negocio ya
// confirmada.
func (uc *SecurityLogUseCase) Log(organizationID, module, severity, message, actorID string, originIP *string) error {
	return uc.repo.Append(&entity.SecurityLogEntry{
		OrganizationID: organizationID,
		Module:         module,
		Severity:       severity,
		Message:        message,
		ActorID:        actorID,
		OriginIP:       originIP,
		CreatedAt:      time.Now(),
	})
}

// List lista entradas de la organización, opcionalmente por módulo.
func (uc *SecurityLogUseCase) List(organizationID string, module string, page dto.PageRequest) ([]dto.SecurityLogEntryResponse, error) {
	page.DefaultPage()
	var modFilter *string
	if module != "" {
		modFilter = &module
	}
	entries, err := uc.repo.List(organizationID, modFilter, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SecurityLogEntryResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, dto.SecurityLogEntryResponse{
			ID:        e.ID,
			Module:    e.Module,
			Severity:  e.Severity,
			Message:   e.Message,
			ActorID:   e.ActorID,
			OriginIP:  e.OriginIP,
			CreatedAt: e.CreatedAt,
		})
	}
	return items, nil
}
