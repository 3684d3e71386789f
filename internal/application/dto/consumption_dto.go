package dto

import "time"

// AdjustmentRequest body para POST /api/inventory/:id/adjustment.
type AdjustmentRequest struct {
	NewQuantity int64  `json:"new_quantity"`
	Reason      string `json:"reason"`
}

// ConsumptionRequest body para POST /api/inventory/:id/consumption.
type ConsumptionRequest struct {
	Quantity      int64  `json:"quantity"`
	CorrelationID string `json:"correlation_id,omitempty"`
	Details       string `json:"details,omitempty"`
}

// BatchConsumptionItem una línea del consumo por lotes. RoomID vacío
// significa consumo contra el stock general.
type BatchConsumptionItem struct {
	ArticleID string  `json:"article_id"`
	RoomID    *string `json:"room_id,omitempty"`
	Quantity  int64   `json:"quantity"`
}

// BatchConsumptionRequest body para POST /api/consumptions/batch.
type BatchConsumptionRequest struct {
	Items []BatchConsumptionItem `json:"items"`
}

// BatchConsumptionResponse resumen del lote aplicado.
type BatchConsumptionResponse struct {
	Applied int `json:"applied"`
	Clamped int `json:"clamped"` // líneas recortadas a 0 (política clamp)
}

// StockMovementResponse asiento del ledger secundario de entradas/salidas.
type StockMovementResponse struct {
	ID        string    `json:"id"`
	ArticleID string    `json:"article_id"`
	Quantity  int64     `json:"quantity"`
	Direction int       `json:"direction"` // 1 = entrada, 2 = salida
	CreatedAt time.Time `json:"created_at"`
	CreatedBy string    `json:"created_by"`
}
