package entity

import "time"

// Tipos de ubicación de stock.
const (
	LocationGeneral   = "GENERAL"   // bodega general, sin ubicación concreta
	LocationRoom      = "ROOM"      // habitación
	LocationWarehouse = "WAREHOUSE" // bodega/almacén auxiliar
)

// ValidLocationType indica si el tipo de ubicación es uno de los conocidos.
func ValidLocationType(t string) bool {
	return t == LocationGeneral || t == LocationRoom || t == LocationWarehouse
}

// InventoryRecord representa la existencia actual de un artículo en una ubicación.
// Única por (artículo, organización, tipo de ubicación, ubicación); LocationID es
// nil cuando LocationType es GENERAL. La cantidad nunca baja de cero.
type InventoryRecord struct {
	ID             string
	ArticleID      string
	OrganizationID string
	LocationType   string
	LocationID     *string // habitación o bodega; nil en GENERAL
	Quantity       int64
	RegisteredAt   time.Time
	UpdatedAt      time.Time
}
