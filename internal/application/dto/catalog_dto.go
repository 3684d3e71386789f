package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ArticleResponse artículo de referencia.
type ArticleResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	ImageURL  string          `json:"image_url,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// RoomResponse habitación.
type RoomResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Number    string    `json:"number"`
	CreatedAt time.Time `json:"created_at"`
}

// SecurityLogEntryResponse entrada del log de seguridad.
type SecurityLogEntryResponse struct {
	ID        int64     `json:"id"`
	Module    string    `json:"module"`
	Severity  string    `json:"severity"`
	Message   string    `json:"message"`
	ActorID   string    `json:"actor_id"`
	OriginIP  *string   `json:"origin_ip,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
