package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock insuficiente")

	// Transiciones de estado de documentos numerados.
	ErrInvalidTransition = errors.New("transición de estado no permitida")
	ErrAlreadyAccepted   = errors.New("la cotización ya fue aceptada")
	ErrAlreadyRejected   = errors.New("la cotización ya fue rechazada")
	ErrLocked            = errors.New("el documento está bloqueado en su estado actual")
)
