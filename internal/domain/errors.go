package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Las denegaciones de negocio son valores, nunca panics.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrNotAuthenticated   = errors.New("se requiere iniciar sesión")
	ErrNotAuthorized      = errors.New("no autorizado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrNotMember          = errors.New("el usuario no es miembro de la empresa")
)
