package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// El aislamiento de tenant se reporta como ErrNotFound para no filtrar
// la existencia de recursos de otra organización.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInsufficientStock  = errors.New("stock insuficiente")
)
