package entity

import "time"

// Room habitación del hotel. Dato de referencia para el ledger (ubicación
// de stock y contexto de consumos de huéspedes).
type Room struct {
	ID             string
	OrganizationID string
	Name           string
	Number         string
	CreatedAt      time.Time
}

// Warehouse bodega/almacén auxiliar de la propiedad.
type Warehouse struct {
	ID             string
	OrganizationID string
	Name           string
	CreatedAt      time.Time
}
