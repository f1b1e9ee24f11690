package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrConflict     = errors.New("conflicto con el estado actual")
	ErrReferenced   = errors.New("recurso referenciado por otros registros")
)

// ValidationError indica un campo inválido. errors.Is(err, ErrInvalidInput) es verdadero.
type ValidationError struct {
	Field  string
	Reason string
}

// NewValidationError construye un ValidationError para el campo indicado.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("campo %q inválido: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

// NotFoundError indica que el id no resuelve. errors.Is(err, ErrNotFound) es verdadero.
type NotFoundError struct {
	Entity string
	ID     string
}

// NewNotFoundError construye un NotFoundError.
func NewNotFoundError(entity, id string) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q no encontrado", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ReferentialConstraintError bloquea el borrado de una entidad aún referenciada.
type ReferentialConstraintError struct {
	Entity       string
	ID           string
	ReferencedBy string
	Count        int
}

func (e *ReferentialConstraintError) Error() string {
	return fmt.Sprintf("%s %q referenciado por %d %s", e.Entity, e.ID, e.Count, e.ReferencedBy)
}

func (e *ReferentialConstraintError) Is(target error) bool { return target == ErrReferenced }
