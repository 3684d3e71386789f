package repository

import (
	"time"

	"github.com/hostaly/hostaly-api/internal/domain/entity"
)

// Campos de ordenación aceptados por List.
const (
	MovementSortByDate  = "created_at"
	MovementSortByKind  = "kind"
	MovementSortByDelta = "quantity_delta"
)

// MovementFilter filtros y paginación para el historial de movimientos.
// Page y PageSize llegan ya saneados desde el caso de uso.
type MovementFilter struct {
	Kind       *string
	DateFrom   *time.Time
	DateTo     *time.Time
	ActorID    *string
	SortBy     string
	Descending bool
	Page       int
	PageSize   int
}

// DayCount movimientos por día (agregación).
type DayCount struct {
	Day   time.Time
	Count int64
}

// ActorCount movimientos por actor (agregación).
type ActorCount struct {
	ActorID string
	Count   int64
}

// MovementStats agregados de solo lectura sobre el historial.
type MovementStats struct {
	TotalCount  int64
	CountByKind map[string]int64
	CountByDay  []DayCount   // últimos 30 días
	TopActors   []ActorCount // últimos 30 días, top 10
}

// MovementRepository define el puerto de persistencia del historial de
// movimientos. Create es append puro: nunca hay Update ni Delete.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	GetByID(id int64, organizationID string) (*entity.Movement, error)
	// List devuelve la página pedida y el total de filas que cumplen el filtro.
	List(inventoryID, organizationID string, filter MovementFilter) ([]*entity.Movement, int64, error)
	Statistics(organizationID string, from, to *time.Time) (*MovementStats, error)
}
