package service

import (
	"errors"
	"fmt"

	"github.com/pageza/recipe-api/backend/internal/database"
)

var (
	// ErrValidation marks invalid request input
	ErrValidation = errors.New("validation failed")
	// ErrNotFound is returned when the target recipe does not exist
	ErrNotFound = database.ErrNotFound
)

// FieldError describes one invalid field and wraps ErrValidation
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

func (e *FieldError) Unwrap() error {
	return ErrValidation
}

func invalid(field, message string) error {
	return &FieldError{Field: field, Message: message}
}
