package repository

import "github.com/hostaly/hostaly-api/internal/domain/entity"

// UserRepository puerto de persistencia de usuarios. El email es único
// global, así que FindByEmail resuelve sin ambigüedad entre organizaciones.
type UserRepository interface {
	Create(user *entity.User) error
	FindByEmail(email string) (*entity.User, error)
}

// OrganizationRepository puerto de persistencia de organizaciones (tenants).
type OrganizationRepository interface {
	Create(org *entity.Organization) error
	GetByID(id string) (*entity.Organization, error)
}
