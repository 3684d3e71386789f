package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Article artículo consumible (minibar, room service). Dato de referencia:
// el ledger solo verifica su existencia y pertenencia a la organización.
type Article struct {
	ID             string
	OrganizationID string
	Name           string
	Price          decimal.Decimal
	ImageURL       string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
