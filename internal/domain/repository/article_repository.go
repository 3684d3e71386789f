package repository

import "github.com/hostaly/hostaly-api/internal/domain/entity"

// ArticleRepository puerto de lectura de artículos (dato de referencia).
type ArticleRepository interface {
	GetByID(id string) (*entity.Article, error)
	ListByOrganization(organizationID string, limit, offset int) ([]*entity.Article, error)
}

// RoomRepository puerto de lectura de habitaciones.
type RoomRepository interface {
	GetByID(id string) (*entity.Room, error)
	ListByOrganization(organizationID string, limit, offset int) ([]*entity.Room, error)
}

// WarehouseRepository puerto de lectura de bodegas auxiliares.
type WarehouseRepository interface {
	GetByID(id string) (*entity.Warehouse, error)
	ListByOrganization(organizationID string, limit, offset int) ([]*entity.Warehouse, error)
}
