package inventory

import (
	"time"

	"github.com/hostaly/hostaly-api/internal/application/dto"
	"github.com/hostaly/hostaly-api/internal/domain"
	"github.com/hostaly/hostaly-api/internal/domain/entity"
	"github.com/hostaly/hostaly-api/internal/domain/repository"
)

// Límites de paginación del historial.
const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// MovementUseCase lado de consulta del historial de movimientos, más el
// append directo (sin mutación de cantidad) para categorías libres.
type MovementUseCase struct {
	movRepo repository.MovementRepository
	invRepo repository.InventoryRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(movRepo repository.MovementRepository, invRepo repository.InventoryRepository) *MovementUseCase {
	return &MovementUseCase{movRepo: movRepo, invRepo: invRepo}
}

// Record asienta un movimiento directamente. Append puro: calcula el delta y
// no toca la cantidad del registro. ErrNotFound si el registro de existencia
// no pertenece a la organización.
func (uc *MovementUseCase) Record(
	inventoryID, organizationID string,
	in dto.RecordMovementRequest,
	actorID string, originIP *string,
) (*dto.MovementResponse, error) {
	if in.Kind == "" || in.QuantityAfter < 0 {
		return nil, domain.ErrInvalidInput
	}
	rec, err := uc.invRepo.GetByID(inventoryID, organizationID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	mov := &entity.Movement{
		InventoryID:    inventoryID,
		OrganizationID: organizationID,
		Kind:           in.Kind,
		QuantityBefore: in.QuantityBefore,
		QuantityAfter:  in.QuantityAfter,
		QuantityDelta:  in.QuantityAfter - in.QuantityBefore,
		Reason:         in.Reason,
		DocumentNumber: in.DocumentNumber,
		TransferID:     in.TransferID,
		CreatedAt:      time.Now(),
		CreatedBy:      actorID,
		OriginIP:       originIP,
		Metadata:       metadataFromDTO(in.Metadata),
	}
	if err := uc.movRepo.Create(mov); err != nil {
		return nil, err
	}
	return toMovementResponse(mov), nil
}

// List devuelve una página del historial de un registro de existencia.
// Página y tamaño se recortan a rangos sanos; orden por defecto: fecha
// descendente.
func (uc *MovementUseCase) List(inventoryID, organizationID string, in dto.MovementListRequest) (*dto.MovementListResponse, error) {
	rec, err := uc.invRepo.GetByID(inventoryID, organizationID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}

	filter, err := buildFilter(in)
	if err != nil {
		return nil, err
	}
	movements, total, err := uc.movRepo.List(inventoryID, organizationID, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		items = append(items, *toMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Page: filter.Page, PageSize: filter.PageSize, Total: total},
	}, nil
}

// GetByID obtiene un movimiento por ID dentro de la organización.
func (uc *MovementUseCase) GetByID(id int64, organizationID string) (*dto.MovementResponse, error) {
	mov, err := uc.movRepo.GetByID(id, organizationID)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, domain.ErrNotFound
	}
	return toMovementResponse(mov), nil
}

// Statistics agregados de solo lectura del historial de la organización.
func (uc *MovementUseCase) Statistics(organizationID string, from, to *time.Time) (*dto.MovementStatsResponse, error) {
	stats, err := uc.movRepo.Statistics(organizationID, from, to)
	if err != nil {
		return nil, err
	}
	resp := &dto.MovementStatsResponse{
		TotalCount:  stats.TotalCount,
		CountByKind: stats.CountByKind,
		CountByDay:  make([]dto.DayCountDTO, 0, len(stats.CountByDay)),
		TopActors:   make([]dto.ActorCountDTO, 0, len(stats.TopActors)),
	}
	for _, d := range stats.CountByDay {
		resp.CountByDay = append(resp.CountByDay, dto.DayCountDTO{Day: d.Day.Format("2006-01-02"), Count: d.Count})
	}
	for _, a := range stats.TopActors {
		resp.TopActors = append(resp.TopActors, dto.ActorCountDTO{ActorID: a.ActorID, Count: a.Count})
	}
	return resp, nil
}

// buildFilter sanea paginación y ordenación y parsea las fechas RFC 3339.
func buildFilter(in dto.MovementListRequest) (repository.MovementFilter, error) {
	filter := repository.MovementFilter{
		SortBy:     repository.MovementSortByDate,
		Descending: true,
		Page:       in.Page,
		PageSize:   in.PageSize,
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = defaultPageSize
	}
	if filter.PageSize > maxPageSize {
		filter.PageSize = maxPageSize
	}
	switch in.SortBy {
	case "", repository.MovementSortByDate:
	case repository.MovementSortByKind, repository.MovementSortByDelta:
		filter.SortBy = in.SortBy
	default:
		return filter, domain.ErrInvalidInput
	}
	if in.Desc != nil {
		filter.Descending = *in.Desc
	}
	if in.Kind != "" {
		filter.Kind = &in.Kind
	}
	if in.ActorID != "" {
		filter.ActorID = &in.ActorID
	}
	if in.DateFrom != "" {
		t, err := time.Parse(time.RFC3339, in.DateFrom)
		if err != nil {
			return filter, domain.ErrInvalidInput
		}
		filter.DateFrom = &t
	}
	if in.DateTo != "" {
		t, err := time.Parse(time.RFC3339, in.DateTo)
		if err != nil {
			return filter, domain.ErrInvalidInput
		}
		filter.DateTo = &t
	}
	return filter, nil
}

func metadataFromDTO(m *dto.MovementMetadataDTO) *entity.MovementMetadata {
	if m == nil {
		return nil
	}
	return &entity.MovementMetadata{CorrelationID: m.CorrelationID, Details: m.Details, Extra: m.Extra}
}

func toMovementResponse(m *entity.Movement) *dto.MovementResponse {
	resp := &dto.MovementResponse{
		ID:             m.ID,
		InventoryID:    m.InventoryID,
		Kind:           m.Kind,
		QuantityBefore: m.QuantityBefore,
		QuantityAfter:  m.QuantityAfter,
		QuantityDelta:  m.QuantityDelta,
		Reason:         m.Reason,
		DocumentNumber: m.DocumentNumber,
		TransferID:     m.TransferID,
		CreatedAt:      m.CreatedAt,
		CreatedBy:      m.CreatedBy,
		OriginIP:       m.OriginIP,
	}
	if m.Metadata != nil {
		resp.Metadata = &dto.MovementMetadataDTO{
			CorrelationID: m.Metadata.CorrelationID,
			Details:       m.Metadata.Details,
			Extra:         m.Metadata.Extra,
		}
	}
	return resp
}
