package dto

import "time"

// MovementListRequest query params para el historial de movimientos.
type MovementListRequest struct {
	Kind     string `query:"kind"`
	DateFrom string `query:"date_from"` // RFC 3339
	DateTo   string `query:"date_to"`
	ActorID  string `query:"actor_id"`
	SortBy   string `query:"sort_by"`
	Desc     *bool  `query:"desc"`
	Page     int    `query:"page"`
	PageSize int    `query:"page_size"`
}

// MovementMetadataDTO metadatos estructurados de un movimiento.
type MovementMetadataDTO struct {
	CorrelationID string            `json:"correlation_id,omitempty"`
	Details       string            `json:"details,omitempty"`
	Extra         map[string]string `json:"extra,omitempty"`
}

// MovementResponse un asiento del historial.
type MovementResponse struct {
	ID             int64                `json:"id"`
	InventoryID    string               `json:"inventory_id"`
	Kind           string               `json:"kind"`
	QuantityBefore int64                `json:"quantity_before"`
	QuantityAfter  int64                `json:"quantity_after"`
	QuantityDelta  int64                `json:"quantity_delta"`
	Reason         string               `json:"reason,omitempty"`
	DocumentNumber *string              `json:"document_number,omitempty"`
	TransferID     *string              `json:"transfer_id,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
	CreatedBy      string               `json:"created_by"`
	OriginIP       *string              `json:"origin_ip,omitempty"`
	Metadata       *MovementMetadataDTO `json:"metadata,omitempty"`
}

// MovementListResponse página del historial.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// RecordMovementRequest body para el append directo de un movimiento.
type RecordMovementRequest struct {
	Kind           string               `json:"kind"`
	QuantityBefore int64                `json:"quantity_before"`
	QuantityAfter  int64                `json:"quantity_after"`
	Reason         string               `json:"reason"`
	DocumentNumber *string              `json:"document_number,omitempty"`
	TransferID     *string              `json:"transfer_id,omitempty"`
	Metadata       *MovementMetadataDTO `json:"metadata,omitempty"`
}

// DayCountDTO movimientos por día.
type DayCountDTO struct {
	Day   string `json:"day"` // YYYY-MM-DD
	Count int64  `json:"count"`
}

// ActorCountDTO movimientos por actor.
type ActorCountDTO struct {
	ActorID string `json:"actor_id"`
	Count   int64  `json:"count"`
}

// MovementStatsResponse agregados del historial.
type MovementStatsResponse struct {
	TotalCount  int64            `json:"total_count"`
	CountByKind map[string]int64 `json:"count_by_kind"`
	CountByDay  []DayCountDTO    `json:"count_by_day"`
	TopActors   []ActorCountDTO  `json:"top_actors"`
}
