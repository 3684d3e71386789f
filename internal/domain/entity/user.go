package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin        = "admin"
	RoleReception    = "recepcion"
	RoleHousekeeping = "camarera"
)

// User usuario del sistema; actor de los movimientos de inventario.
type User struct {
	ID             string
	OrganizationID string
	Email          string
	PasswordHash   string
	Name           string
	Role           string
	Status         string // active | disabled
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Organization entidad propietaria (tenant). Todo registro del ledger
// se particiona por ella.
type Organization struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
