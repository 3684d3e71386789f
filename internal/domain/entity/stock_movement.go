package entity

import "time"

// Dirección de un movimiento en el ledger secundario.
const (
	StockDirectionIn  = 1 // entrada
	StockDirectionOut = 2 // salida
)

// StockMovement asiento del ledger secundario que usa el flujo grueso de
// consumos (consumo por habitación / stock general). Menos estructurado que
// Movement: cantidad absoluta más código de dirección. También append-only.
type StockMovement struct {
	ID             string
	OrganizationID string
	ArticleID      string
	Quantity       int64 // cantidad movida, siempre positiva
	Direction      int   // StockDirectionIn | StockDirectionOut
	CreatedAt      time.Time
	CreatedBy      string
}
