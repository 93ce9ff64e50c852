package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Common domain errors
var (
	// ErrNotFound is returned when a requested resource is not found
	ErrNotFound = errors.New("resource not found")
	// ErrAlreadyExists is returned when trying to create a resource that already exists
	ErrAlreadyExists = errors.New("resource already exists")
	// ErrInvalidReference is returned when a resource refers to another one that does not exist
	ErrInvalidReference = errors.New("referenced resource does not exist")
)

// EntityNotFoundError is returned by use cases when a lookup by public id finds nothing.
type EntityNotFoundError struct {
	Entity string
	ID     uuid.UUID
}

// NewEntityNotFound builds an EntityNotFoundError for the given entity kind and id.
func NewEntityNotFound(entity string, id uuid.UUID) *EntityNotFoundError {
	return &EntityNotFoundError{Entity: entity, ID: id}
}

func (e *EntityNotFoundError) Error() string {
	if e.ID == uuid.Nil {
		return fmt.Sprintf("%s not found", e.Entity)
	}
	return fmt.Sprintf("%s with ID '%s' not found", e.Entity, e.ID)
}

// Is lets errors.Is(err, ErrNotFound) match any EntityNotFoundError.
func (e *EntityNotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
