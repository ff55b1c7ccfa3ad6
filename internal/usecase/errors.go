package usecase

import (
	"errors"
	"fmt"

	"yamdb/pkg/utils"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("you do not have permission to perform this action")
	ErrUnauthenticated = errors.New("authentication credentials were not provided")
	ErrInvalidCode     = errors.New("invalid confirmation code")
)

// ValidationError carries per-field messages and maps to 400.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + utils.FormatValidationErrors(e.Fields)
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// validate runs struct tags and returns a *ValidationError when any field fails.
func validate(req any) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}

func notFound(what string) error {
	return fmt.Errorf("%s %w", what, ErrNotFound)
}
