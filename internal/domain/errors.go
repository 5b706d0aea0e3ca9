package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrValidation   = errors.New("la planilla contiene filas inválidas")
	ErrConflict     = errors.New("conflicto con el estado actual")
	ErrTooLarge     = errors.New("la planilla excede el máximo de filas permitido")
)
