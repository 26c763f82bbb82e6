package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas). Los handlers HTTP mapean
// cada sentinela a un status; el mensaje envuelto llega intacto al cliente.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrDuplicate          = errors.New("duplicate resource")
	ErrEmailAlreadyExists = errors.New("email already registered")
)

// NotFound construye un ErrNotFound nombrando la entidad referida que falta
// ("Blood not found", "Donor not found", ...).
func NotFound(entity string) error {
	return fmt.Errorf("%w: %s not found", ErrNotFound, entity)
}

// Invalid construye un ErrInvalidInput con la razón específica de la
// validación que falló.
func Invalid(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, reason)
}
