package dto

import "time"

// RegisterOrganizationRequest body para POST /api/auth/organizations: alta
// de organización junto con su primer usuario administrador.
type RegisterOrganizationRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	UserName string `json:"user_name,omitempty"`
}

// OrganizationResponse organización registrada.
type OrganizationResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// RegisterOrganizationResponse organización + admin inicial + token de
// sesión, para que el tenant quede operativo en una sola llamada.
type RegisterOrganizationResponse struct {
	Organization OrganizationResponse `json:"organization"`
	User         UserResponse         `json:"user"`
	Token        string               `json:"token"`
}

// RegisterRequest body para POST /api/auth/register.
type RegisterRequest struct {
	OrganizationID string `json:"organization_id"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	Name           string `json:"name"`
	Role           string `json:"role,omitempty"`
}

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse usuario sin campos sensibles.
type UserResponse struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	Role           string    `json:"role"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

// LoginResponse token + usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
