package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInventoryRequest body para POST /api/inventory.
// LocationID debe omitirse cuando LocationType es GENERAL.
type CreateInventoryRequest struct {
	ArticleID       string  `json:"article_id"`
	LocationType    string  `json:"location_type"`
	LocationID      *string `json:"location_id,omitempty"`
	InitialQuantity int64   `json:"initial_quantity"`
}

// InventoryResponse existencia enriquecida con datos de referencia.
type InventoryResponse struct {
	ID           string          `json:"id"`
	ArticleID    string          `json:"article_id"`
	ArticleName  string          `json:"article_name,omitempty"`
	ArticlePrice decimal.Decimal `json:"article_price"`
	LocationType string          `json:"location_type"`
	LocationID   *string         `json:"location_id,omitempty"`
	LocationName string          `json:"location_name,omitempty"`
	Quantity     int64           `json:"quantity"`
	RegisteredAt time.Time       `json:"registered_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// InventoryListResponse listado de existencias.
type InventoryListResponse struct {
	Items []InventoryResponse `json:"items"`
	Total int                 `json:"total"`
}

// SyncGeneralResponse resultado de la sincronización del stock general.
type SyncGeneralResponse struct {
	Created int `json:"created"`
}
