package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrDuplicate          = errors.New("valor duplicado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrNoStockRecord      = errors.New("no existe registro de stock para el producto y la ubicación")
	ErrNoStagedChange     = errors.New("no hay cambio de estado pendiente")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
)
