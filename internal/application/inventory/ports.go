package inventory

import (
	"context"

	"github.com/hostaly/hostaly-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad entre la mutación de
// cantidad y su asiento de auditoría: o se confirman juntos o ninguno.
type TxRunner interface {
	// Run transacción del flujo estricto: existencias + historial.
	Run(ctx context.Context, fn func(
		invRepo repository.InventoryRepository,
		movRepo repository.MovementRepository,
	) error) error

	// RunStock transacción del flujo grueso por lotes: existencias + ledger
	// secundario de entradas/salidas.
	RunStock(ctx context.Context, fn func(
		invRepo repository.InventoryRepository,
		stockRepo repository.StockMovementRepository,
	) error) error
}
