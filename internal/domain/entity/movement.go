package entity

import "time"

// Clases de movimiento incorporadas. La columna admite texto libre para
// categorías nuevas sin migración.
const (
	MovementKindAdjustment  = "Ajuste"
	MovementKindConsumption = "Consumo"
)

// MovementMetadata metadatos estructurados opcionales de un movimiento.
// Se serializa como jsonb; preferir campos tipados sobre Extra.
type MovementMetadata struct {
	CorrelationID string            `json:"correlation_id,omitempty"`
	Details       string            `json:"details,omitempty"`
	Extra         map[string]string `json:"extra,omitempty"`
}

// Movement registro inmutable de un cambio de cantidad sobre un InventoryRecord.
// Invariante: QuantityAfter = QuantityBefore + QuantityDelta, QuantityAfter >= 0.
// Solo se inserta, nunca se actualiza ni se borra: es la pista de auditoría.
type Movement struct {
	ID             int64 // bigserial: creciente por orden de inserción
	InventoryID    string
	OrganizationID string
	Kind           string
	QuantityBefore int64
	QuantityAfter  int64
	QuantityDelta  int64 // after - before, con signo
	Reason         string
	DocumentNumber *string
	TransferID     *string
	CreatedAt      time.Time
	CreatedBy      string  // id del actor; opaco para el ledger
	OriginIP       *string // dirección de origen, si el caller la aporta
	Metadata       *MovementMetadata
}
