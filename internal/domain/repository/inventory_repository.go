package repository

import "github.com/hostaly/hostaly-api/internal/domain/entity"

// InventoryFilter filtros opcionales para listar existencias.
type InventoryFilter struct {
	LocationType *string
	LocationID   *string
}

// InventoryRepository define el puerto de persistencia para existencias por
// (artículo, ubicación), siempre acotado por organización. Usado dentro de
// transacciones para garantizar consistencia con los movimientos.
type InventoryRepository interface {
	List(organizationID string, filter InventoryFilter) ([]*entity.InventoryRecord, error)
	GetByID(id, organizationID string) (*entity.InventoryRecord, error)
	// GetByLocation busca el registro de un artículo en una ubicación exacta
	// (LocationID nil = GENERAL). Devuelve nil si no existe.
	GetByLocation(articleID, organizationID, locationType string, locationID *string) (*entity.InventoryRecord, error)
	Create(record *entity.InventoryRecord) error
	// UpdateQuantity sobreescribe la cantidad y refresca updated_at.
	// No escribe movimiento: eso es responsabilidad del caller transaccional.
	UpdateQuantity(id, organizationID string, quantity int64) error
	// Delete borra físicamente el registro (acción administrativa).
	// Devuelve false si no existe o no pertenece a la organización.
	Delete(id, organizationID string) (bool, error)
	// SyncGeneral crea con cantidad 0 el registro GENERAL de cada artículo de
	// la organización que aún no lo tenga. Idempotente; devuelve cuántos creó.
	SyncGeneral(organizationID string) (int, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE) antes de devolverla.
	GetForUpdate(id, organizationID string) (*entity.InventoryRecord, error)
}
